package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/stylecfg/internal/reload"
	"github.com/opencode-ai/stylecfg/internal/theme"
)

var watchDebounce time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "coalesce changes within this window (default watch.debounce)")
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a theme document and report every reload",
	Long:  "Watch a theme document and re-parse it on every change. A document that fails to parse is reported and the previous theme stays active.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := resolveSource(args)
		if src.Path == "" {
			return &PreflightError{
				Message:  fmt.Sprintf("cannot watch bundled theme %q", src.Builtin),
				Hint:     "Watching needs a theme document on disk",
				NextStep: "stylecfg themes cat " + src.Builtin + " > theme.toml && stylecfg watch theme.toml",
			}
		}

		rt, err := reload.FromPath(src.Path)
		if err != nil {
			return err
		}
		defer rt.Close()

		debounce := watchDebounce
		if !cmd.Flags().Changed("debounce") {
			if cfg := GetConfig(); cfg != nil {
				debounce = cfg.Watch.Debounce
			}
		}

		out := cmd.OutOrStdout()
		path, _ := rt.Path()
		if !IsJSONOutput() {
			fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", path)
		}

		err = rt.Follow(cmd.Context(), debounce, func(t *theme.Theme, reloadErr error) {
			event := WatchEvent{Time: time.Now().UTC(), Path: path, OK: reloadErr == nil}
			if reloadErr != nil {
				event.Kind = errorKind(reloadErr)
				event.Error = reloadErr.Error()
			} else {
				event.Colors = len(t.Colors())
			}

			if IsJSONOutput() {
				_ = writeJSONLine(out, event)
				return
			}
			stamp := event.Time.Local().Format("15:04:05")
			if event.OK {
				fmt.Fprintf(out, "%s reloaded %s (%d color aliases)\n", stamp, path, event.Colors)
			} else {
				fmt.Fprintf(out, "%s reload failed (%s error), keeping previous theme: %s\n", stamp, event.Kind, event.Error)
			}
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

// WatchEvent is one reload outcome in JSON output.
type WatchEvent struct {
	Time   time.Time `json:"time"`
	Path   string    `json:"path"`
	OK     bool      `json:"ok"`
	Kind   string    `json:"kind,omitempty"`
	Error  string    `json:"error,omitempty"`
	Colors int       `json:"colors,omitempty"`
}
