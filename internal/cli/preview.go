package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/stylecfg/internal/reload"
	"github.com/opencode-ai/stylecfg/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [path]",
	Short: "Browse a theme interactively with live reload",
	Long:  "Open a terminal view of every widget variant. When the theme comes from a file and watch.enabled is set, edits to the file show up as soon as they parse.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !IsInteractive() {
			return &PreflightError{
				Message:  "preview requires an interactive terminal",
				Hint:     "Run without --non-interactive and with a TTY, or use check/show",
				NextStep: "stylecfg show button",
			}
		}

		src := resolveSource(args)
		rt, err := openReloadable(src)
		if err != nil {
			return err
		}
		defer rt.Close()

		return tui.Run(cmd.Context(), tui.Config{Theme: rt, Name: src.String()})
	},
}

// openReloadable watches file sources when watching is enabled and wraps
// everything else as a static theme.
func openReloadable(src themeSource) (*reload.Theme, error) {
	watch := true
	if cfg := GetConfig(); cfg != nil {
		watch = cfg.Watch.Enabled
	}
	if src.Path != "" && watch {
		return reload.FromPath(src.Path)
	}

	t, err := loadTheme(src)
	if err != nil {
		return nil, err
	}
	return reload.Static(t), nil
}
