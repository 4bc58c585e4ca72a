// Package color parses color literals from style documents and resolves
// named color aliases.
package color

import (
	"fmt"
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color with four normalized channels. Channels are not clamped
// on construction; values outside [0, 1] are kept as written.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Common colors.
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// RGB returns an opaque color from float channels.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color from float channels.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 returns an opaque color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 1)
}

// RGBA8 returns a color from 8-bit color channels and a float alpha.
func RGBA8(r, g, b uint8, a float32) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: a}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// ScaleAlpha returns c with its alpha multiplied by factor.
func (c Color) ScaleAlpha(factor float32) Color {
	c.A *= factor
	return c
}

// NRGBA64 converts c to a non-premultiplied 16-bit color, clamping channels.
func (c Color) NRGBA64() stdcolor.NRGBA64 {
	return stdcolor.NRGBA64{
		R: to16(c.R),
		G: to16(c.G),
		B: to16(c.B),
		A: to16(c.A),
	}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA64().RGBA()
}

// Hex formats the clamped RGB channels as #rrggbb. Alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{R: float64(clamp(c.R)), G: float64(clamp(c.G)), B: float64(clamp(c.B))}.Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func to16(v float32) uint16 {
	return uint16(clamp(v)*0xffff + 0.5)
}

// Optional is a color that may be unset, used where the toolkit treats a
// missing color differently from any concrete color.
type Optional struct {
	Color Color
	Valid bool
}

// Some returns a set Optional.
func Some(c Color) Optional {
	return Optional{Color: c, Valid: true}
}

// Get returns the color and whether it is set.
func (o Optional) Get() (Color, bool) {
	return o.Color, o.Valid
}

// ScaleAlpha scales the alpha of a set color and leaves an unset one alone.
func (o Optional) ScaleAlpha(factor float32) Optional {
	if !o.Valid {
		return o
	}
	return Some(o.Color.ScaleAlpha(factor))
}
