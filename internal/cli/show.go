package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/stylecfg/internal/style"
	"github.com/opencode-ai/stylecfg/internal/theme"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <widget> [variant]",
	Short: "Show a resolved widget style",
	Long: fmt.Sprintf("Print every resolved field of one widget variant, after the cascade has been applied.\n\nWidget kinds: %v",
		theme.WidgetKinds()),
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		widget := args[0]
		variant := style.DefaultVariant
		if len(args) > 1 {
			variant = args[1]
		}

		t, err := loadTheme(resolveSource(nil))
		if err != nil {
			return err
		}
		sheet, err := t.Lookup(widget, variant)
		if err != nil {
			return err
		}

		fields := style.Describe(sheet)
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			rows := make([]FieldOutput, 0, len(fields))
			for _, f := range fields {
				row := FieldOutput{Path: f.Path, Value: f.Value}
				if f.Color != nil {
					row.Hex = f.Color.Hex()
				}
				rows = append(rows, row)
			}
			return WriteOutput(out, rows)
		}

		swatches := useColor()
		rows := make([][]string, 0, len(fields))
		for _, f := range fields {
			rows = append(rows, []string{f.Path, f.Value, colorCell(f.Color, swatches)})
		}
		return writeTable(out, []string{"FIELD", "VALUE", "HEX"}, rows)
	},
}

// FieldOutput is one resolved field in JSON output.
type FieldOutput struct {
	Path  string `json:"path"`
	Value string `json:"value"`
	Hex   string `json:"hex,omitempty"`
}
