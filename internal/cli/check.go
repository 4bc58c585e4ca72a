package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/stylecfg/internal/theme"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Validate theme documents",
	Long:  "Parse one or more theme documents and report the variants defined for every widget kind. Exits non-zero when any document fails.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := make([]themeSource, 0, len(args))
		for _, arg := range args {
			sources = append(sources, themeSource{Path: arg})
		}
		if len(sources) == 0 {
			sources = append(sources, resolveSource(nil))
		}

		results := make([]CheckResult, 0, len(sources))
		failed := 0
		for _, src := range sources {
			result := checkSource(src)
			if !result.OK {
				failed++
			}
			results = append(results, result)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			if err := WriteOutput(out, results); err != nil {
				return err
			}
		} else {
			for i, result := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := writeCheckResult(cmd, result); err != nil {
					return err
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d theme documents failed", failed, len(results))
		}
		return nil
	},
}

// CheckResult is the outcome of checking one document.
type CheckResult struct {
	Source   string              `json:"source"`
	OK       bool                `json:"ok"`
	Kind     string              `json:"kind,omitempty"`
	Error    string              `json:"error,omitempty"`
	Colors   int                 `json:"colors"`
	Variants map[string][]string `json:"variants,omitempty"`
}

func checkSource(src themeSource) CheckResult {
	result := CheckResult{Source: src.String()}

	t, err := loadTheme(src)
	if err != nil {
		result.Kind = errorKind(err)
		result.Error = err.Error()
		return result
	}

	result.OK = true
	result.Colors = len(t.Colors())
	result.Variants = make(map[string][]string)
	for _, kind := range theme.WidgetKinds() {
		names, err := t.Variants(kind)
		if err != nil {
			continue
		}
		result.Variants[kind] = names
	}
	return result
}

func writeCheckResult(cmd *cobra.Command, result CheckResult) error {
	out := cmd.OutOrStdout()
	if !result.OK {
		fmt.Fprintf(out, "%s: FAILED (%s error)\n  %s\n", result.Source, result.Kind, result.Error)
		return nil
	}

	fmt.Fprintf(out, "%s: ok, %d color aliases\n", result.Source, result.Colors)
	rows := make([][]string, 0, len(result.Variants))
	for _, kind := range theme.WidgetKinds() {
		names := result.Variants[kind]
		rows = append(rows, []string{kind, fmt.Sprintf("%d", len(names)), listCell(names)})
	}
	return writeTable(out, []string{"WIDGET", "COUNT", "VARIANTS"}, rows)
}
