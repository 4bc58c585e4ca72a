package cli

import (
	"errors"
	"strings"

	"github.com/opencode-ai/stylecfg/internal/theme"
)

// themeSource names where a theme document comes from.
type themeSource struct {
	Path    string
	Builtin string
}

func (s themeSource) String() string {
	if s.Path != "" {
		return s.Path
	}
	return "builtin:" + s.Builtin
}

// resolveSource picks the document: an explicit path argument, then
// --theme, then --builtin, then the configured path and builtin.
func resolveSource(args []string) themeSource {
	switch {
	case len(args) > 0 && strings.TrimSpace(args[0]) != "":
		return themeSource{Path: args[0]}
	case themePath != "":
		return themeSource{Path: themePath}
	case builtinName != "":
		return themeSource{Builtin: builtinName}
	}
	if cfg := GetConfig(); cfg != nil {
		if cfg.Theme.Path != "" {
			return themeSource{Path: cfg.Theme.Path}
		}
		if cfg.Theme.Builtin != "" {
			return themeSource{Builtin: cfg.Theme.Builtin}
		}
	}
	return themeSource{Builtin: "light"}
}

func loadTheme(src themeSource) (*theme.Theme, error) {
	if src.Path != "" {
		return theme.ParseFile(src.Path)
	}
	return theme.Builtin(src.Builtin)
}

// errorKind labels a parse failure for output.
func errorKind(err error) string {
	switch {
	case errors.Is(err, theme.ErrIO):
		return "io"
	case errors.Is(err, theme.ErrColor):
		return "color"
	case errors.Is(err, theme.ErrFormat):
		return "format"
	}
	return "other"
}
