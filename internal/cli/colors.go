package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/stylecfg/internal/color"
)

var colorsAll bool

func init() {
	rootCmd.AddCommand(colorsCmd)
	colorsCmd.Flags().BoolVarP(&colorsAll, "all", "a", false, "include built-in color names")
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List color aliases",
	Long:  "List the color aliases defined by the theme document. With --all, built-in names are listed too; document aliases shadow built-ins of the same name.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTheme(resolveSource(nil))
		if err != nil {
			return err
		}

		local := t.Colors()
		entries := make([]ColorOutput, 0, len(local))
		for name, c := range local {
			entries = append(entries, colorOutput(name, c, true))
		}
		if colorsAll {
			for _, name := range color.BuiltinNames() {
				if _, shadowed := local[name]; shadowed {
					continue
				}
				c, _ := color.Builtin(name)
				entries = append(entries, colorOutput(name, c, false))
			}
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, entries)
		}

		swatches := useColor()
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Name, e.Value, formatYesNo(e.Document), colorCell(&e.color, swatches)})
		}
		headers := []string{"NAME", "VALUE", "DOCUMENT", "HEX"}
		return writeTable(out, headers, rows)
	},
}

// ColorOutput is one alias in JSON output.
type ColorOutput struct {
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Value    string `json:"value"`
	Document bool   `json:"document"`

	color color.Color
}

func colorOutput(name string, c color.Color, document bool) ColorOutput {
	return ColorOutput{Name: name, Hex: c.Hex(), Value: c.String(), Document: document, color: c}
}
