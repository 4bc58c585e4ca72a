package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/stylecfg/internal/theme"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesCatCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List bundled themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := theme.BuiltinNames()
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), names)
		}
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME"}, rows)
	},
}

var themesCatCmd = &cobra.Command{
	Use:   "cat <name>",
	Short: "Print the document of a bundled theme",
	Long:  "Print the TOML document of a bundled theme, e.g. as a starting point for a custom theme.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := theme.BuiltinSource(args[0])
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
