package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/stylecfg/internal/color"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	cfgFile, logLevel, logFormat = "", "", ""
	jsonOutput, noColor, nonInteractive = false, false, false
	themePath, builtinName = "", ""
	colorsAll = false
	watchDebounce = 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDoc(t *testing.T, name, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestCheckValidDocument(t *testing.T) {
	path := writeDoc(t, "theme.toml", `
[color]
brand = [0.1, 0.2, 0.3]

[button.primary.active]
background = "brand"
`)
	out, err := runCLI(t, "check", path)
	require.NoError(t, err)
	require.Contains(t, out, path+": ok, 1 color aliases")
	require.Contains(t, out, "default, primary")
}

func TestCheckReportsFailuresAsJSON(t *testing.T) {
	good := writeDoc(t, "good.toml", "")
	bad := writeDoc(t, "bad.toml", "[text]\ncolor = \"nosuchcolor\"\n")

	out, err := runCLI(t, "--json", "check", good, bad)
	require.Error(t, err)

	var results []CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	require.True(t, results[0].OK)
	require.False(t, results[1].OK)
	require.Equal(t, "color", results[1].Kind)
	require.Contains(t, results[1].Error, "cannot find color alias 'nosuchcolor'")
}

func TestCheckDefaultsToConfiguredBuiltin(t *testing.T) {
	out, err := runCLI(t, "check")
	require.NoError(t, err)
	require.Contains(t, out, "builtin:light: ok")
}

func TestShowResolvedField(t *testing.T) {
	out, err := runCLI(t, "--builtin", "dark", "--json", "show", "button", "primary")
	require.NoError(t, err)

	var fields []FieldOutput
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	byPath := make(map[string]FieldOutput)
	for _, f := range fields {
		byPath[f.Path] = f
	}
	require.Equal(t, "#ffffff", byPath["style.active.text_color"].Hex)
	require.Equal(t, "-", byPath["padding"].Value)

	_, err = runCLI(t, "--builtin", "dark", "show", "button", "nonexistent")
	require.Error(t, err)
}

func TestColors(t *testing.T) {
	path := writeDoc(t, "theme.yaml", "color:\n  brand: [\"0xff\", \"0x00\", \"0x00\"]\n")

	out, err := runCLI(t, "--theme", path, "colors")
	require.NoError(t, err)
	require.Contains(t, out, "brand")
	require.Contains(t, out, "#ff0000")
	require.NotContains(t, out, "cornflowerblue")

	out, err = runCLI(t, "--theme", path, "--json", "colors", "--all")
	require.NoError(t, err)
	var entries []ColorOutput
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	found := map[string]bool{}
	for _, e := range entries {
		found[e.Name] = e.Document
	}
	require.True(t, found["brand"])
	require.Contains(t, found, "cornflowerblue")
	require.False(t, found["cornflowerblue"])
}

func TestThemes(t *testing.T) {
	out, err := runCLI(t, "themes")
	require.NoError(t, err)
	require.Contains(t, out, "dark")
	require.Contains(t, out, "light")

	out, err = runCLI(t, "themes", "cat", "dark")
	require.NoError(t, err)
	require.Contains(t, out, "[color]")
}

func TestWatchRejectsBuiltin(t *testing.T) {
	_, err := runCLI(t, "--builtin", "dark", "watch")
	require.Error(t, err)
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, ExitCode(err))
}

func TestPreviewNeedsTerminal(t *testing.T) {
	_, err := runCLI(t, "--non-interactive", "preview")
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
}

func TestTableCells(t *testing.T) {
	require.Equal(t, "-", listCell(nil))
	require.Equal(t, "default, primary", listCell([]string{"default", "primary"}))

	require.Empty(t, colorCell(nil, true))
	c := color.RGB8(0x12, 0x34, 0x56)
	require.Equal(t, "#123456", colorCell(&c, false))
	require.Contains(t, colorCell(&c, true), "#123456")

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"NAME", "HEX"}, [][]string{{"accent", "#123456"}}))
	require.Equal(t, "NAME    HEX\naccent  #123456\n", buf.String())
}
