// Package style resolves per-widget style sheets from sparse document
// overrides. Every widget kind starts from a fixed baseline appearance,
// derives its interaction states from it, and overlays the user's patches
// in a fixed order.
package style

import (
	"fmt"

	"github.com/opencode-ai/stylecfg/internal/color"
)

// patch overwrites dst when src is set.
func patch[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// patchOptional sets an optional color when src is set.
func patchOptional(dst *color.Optional, src *color.Color) {
	if src != nil {
		*dst = color.Some(*src)
	}
}

// LengthKind selects how a widget dimension is sized.
type LengthKind uint8

const (
	LengthShrink LengthKind = iota
	LengthFill
	LengthFillPortion
	LengthUnits
)

func (k LengthKind) String() string {
	switch k {
	case LengthShrink:
		return "shrink"
	case LengthFill:
		return "fill"
	case LengthFillPortion:
		return "fill_portion"
	case LengthUnits:
		return "units"
	}
	return fmt.Sprintf("LengthKind(%d)", uint8(k))
}

// Length is a widget dimension. Value is the portion for LengthFillPortion
// and the size for LengthUnits.
type Length struct {
	Kind  LengthKind
	Value uint16
}

func (l Length) String() string {
	switch l.Kind {
	case LengthFillPortion, LengthUnits:
		return fmt.Sprintf("%s(%d)", l.Kind, l.Value)
	}
	return l.Kind.String()
}

// Alignment aligns children along an axis.
type Alignment string

const (
	AlignStart  Alignment = "start"
	AlignCenter Alignment = "center"
	AlignEnd    Alignment = "end"
	AlignFill   Alignment = "fill"
)

// Horizontal is a horizontal alignment.
type Horizontal string

const (
	AlignLeft    Horizontal = "left"
	AlignHCenter Horizontal = "center"
	AlignRight   Horizontal = "right"
)

// Vertical is a vertical alignment.
type Vertical string

const (
	AlignTop     Vertical = "top"
	AlignVCenter Vertical = "center"
	AlignBottom  Vertical = "bottom"
)

// Vector is a 2D offset.
type Vector struct {
	X float32
	Y float32
}

// Add returns the component-wise sum.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// ShapeKind selects the slider handle shape.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota
	ShapeCircle
)

// HandleShape is the shape of a slider handle. Radius applies to circles;
// Width and BorderRadius apply to rectangles.
type HandleShape struct {
	Kind         ShapeKind
	Radius       float32
	Width        uint16
	BorderRadius float32
}

// FillKind selects how a rule fills its axis.
type FillKind uint8

const (
	FillFull FillKind = iota
	FillPercent
	FillPadded
	FillAsymmetricPadding
)

// FillMode describes how much of its axis a rule covers.
type FillMode struct {
	Kind    FillKind
	Percent float32
	Start   uint16
	End     uint16
}
