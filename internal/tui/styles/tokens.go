// Package styles maps a resolved theme onto the semantic color roles the
// preview chrome is drawn with.
package styles

import (
	"github.com/opencode-ai/stylecfg/internal/color"
	"github.com/opencode-ai/stylecfg/internal/theme"
)

// ThemeTokens defines the semantic color roles for the TUI as #rrggbb strings.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// roles maps color role names to the tokens they set.
func (t *ThemeTokens) roles() map[string]*string {
	return map[string]*string{
		"background": &t.Background,
		"panel":      &t.Panel,
		"text":       &t.Text,
		"muted":      &t.TextMuted,
		"border":     &t.Border,
		"accent":     &t.Accent,
		"focus":      &t.Focus,
		"success":    &t.Success,
		"warning":    &t.Warning,
		"error":      &t.Error,
		"info":       &t.Info,
	}
}

// apply sets every role named in colors.
func (t *ThemeTokens) apply(colors map[string]color.Color) {
	for role, dst := range t.roles() {
		if c, ok := colors[role]; ok {
			*dst = c.Hex()
		}
	}
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// FromTheme derives chrome tokens from a style document. Roles the document
// does not express come from DefaultTheme. Document aliases named after a
// role ("accent", "error", ...) win over derived values.
func FromTheme(name string, t *theme.Theme) Theme {
	tokens := DefaultTheme.Tokens

	container := t.Container().Default().Style
	if bg, ok := container.Background.Get(); ok {
		tokens.Background = bg.Hex()
	}
	if card, err := t.Container().Get("card"); err == nil {
		if bg, ok := card.Style.Background.Get(); ok {
			tokens.Panel = bg.Hex()
		}
	} else if bg, ok := container.Background.Get(); ok {
		tokens.Panel = bg.Hex()
	}
	if c := t.Text().Default().Color; c != nil {
		tokens.Text = c.Hex()
	} else if c, ok := container.TextColor.Get(); ok {
		tokens.Text = c.Hex()
	}

	input := t.TextInput().Default().Style
	tokens.TextMuted = input.PlaceholderColor.Hex()
	tokens.Border = input.Active.BorderColor.Hex()
	tokens.Focus = input.Focused.BorderColor.Hex()
	tokens.Accent = t.ProgressBar().Default().Style.Bar.Hex()
	tokens.Info = t.PickList().Default().Style.Menu.SelectedBackground.Hex()

	tokens.apply(t.Colors())

	return Theme{Name: name, Tokens: tokens}
}
