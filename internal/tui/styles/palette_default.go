package styles

import "github.com/opencode-ai/stylecfg/internal/color"

// defaultPalette fills the chrome roles a document leaves open. Keys are
// the role names documents can override with aliases of the same name.
var defaultPalette = map[string]color.Color{
	"background": color.RGB8(0x0b, 0x0f, 0x14),
	"panel":      color.RGB8(0x12, 0x18, 0x21),
	"text":       color.RGB8(0xe6, 0xed, 0xf3),
	"muted":      color.RGB8(0x8b, 0x9a, 0xae),
	"border":     color.RGB8(0x22, 0x30, 0x43),
	"accent":     color.RGB8(0x5b, 0x8d, 0xef),
	"focus":      color.RGB8(0x7a, 0xa2, 0xf7),
	"success":    color.RGB8(0x3f, 0xb9, 0x50),
	"warning":    color.RGB8(0xd2, 0x99, 0x22),
	"error":      color.RGB8(0xf8, 0x51, 0x49),
	"info":       color.RGB8(0x58, 0xa6, 0xff),
}

// DefaultTheme is the fallback palette for roles a document leaves open.
var DefaultTheme = Theme{Name: "default", Tokens: paletteTokens(defaultPalette)}

func paletteTokens(palette map[string]color.Color) ThemeTokens {
	var tokens ThemeTokens
	tokens.apply(palette)
	return tokens
}
