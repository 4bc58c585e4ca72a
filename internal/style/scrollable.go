package style

import "github.com/opencode-ai/stylecfg/internal/color"

// ScrollerAppearance is the look of the draggable scroller.
type ScrollerAppearance struct {
	Color        color.Color
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.Color
}

// ScrollbarAppearance is the look of a scrollbar in one interaction state.
type ScrollbarAppearance struct {
	Background   color.Optional
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.Color
	Scroller     ScrollerAppearance
}

// ScrollableStyle holds the scrollbar states.
type ScrollableStyle struct {
	Active   ScrollbarAppearance
	Hovered  ScrollbarAppearance
	Dragging ScrollbarAppearance
}

// ScrollableSheet is a resolved scrollable variant.
type ScrollableSheet struct {
	Spacing         *uint16
	Padding         *uint16
	Width           *Length
	Height          *Length
	MaxWidth        *uint32
	MaxHeight       *uint32
	AlignItems      *Alignment
	ScrollbarWidth  *uint16
	ScrollbarMargin *uint16
	ScrollerWidth   *uint16
	Style           ScrollableStyle
}

type scrollerPatch struct {
	Color        *color.Color `mapstructure:"color"`
	BorderRadius *float32     `mapstructure:"border_radius"`
	BorderWidth  *float32     `mapstructure:"border_width"`
	BorderColor  *color.Color `mapstructure:"border_color"`
}

type scrollbarPatch struct {
	Background   *color.Color   `mapstructure:"background"`
	BorderRadius *float32       `mapstructure:"border_radius"`
	BorderWidth  *float32       `mapstructure:"border_width"`
	BorderColor  *color.Color   `mapstructure:"border_color"`
	Scroller     *scrollerPatch `mapstructure:"scroller"`
}

func (p scrollbarPatch) apply(a *ScrollbarAppearance) {
	patchOptional(&a.Background, p.Background)
	patch(&a.BorderRadius, p.BorderRadius)
	patch(&a.BorderWidth, p.BorderWidth)
	patch(&a.BorderColor, p.BorderColor)
	if s := p.Scroller; s != nil {
		patch(&a.Scroller.Color, s.Color)
		patch(&a.Scroller.BorderRadius, s.BorderRadius)
		patch(&a.Scroller.BorderWidth, s.BorderWidth)
		patch(&a.Scroller.BorderColor, s.BorderColor)
	}
}

type scrollableInput struct {
	Spacing         *uint16    `mapstructure:"spacing"`
	Padding         *uint16    `mapstructure:"padding"`
	Width           *Length    `mapstructure:"width"`
	Height          *Length    `mapstructure:"height"`
	MaxWidth        *uint32    `mapstructure:"max_width"`
	MaxHeight       *uint32    `mapstructure:"max_height"`
	AlignItems      *Alignment `mapstructure:"align_items"`
	ScrollbarWidth  *uint16    `mapstructure:"scrollbar_width"`
	ScrollbarMargin *uint16    `mapstructure:"scrollbar_margin"`
	ScrollerWidth   *uint16    `mapstructure:"scroller_width"`

	Active   scrollbarPatch `mapstructure:"active"`
	Hovered  scrollbarPatch `mapstructure:"hovered"`
	Dragging scrollbarPatch `mapstructure:"dragging"`
}

func resolveScrollable(in scrollableInput) ScrollableSheet {
	active := ScrollbarAppearance{
		BorderRadius: 5,
		BorderColor:  color.Transparent,
		Scroller: ScrollerAppearance{
			Color:        color.RGBA(0, 0, 0, 0.7),
			BorderRadius: 5,
			BorderColor:  color.Transparent,
		},
	}
	in.Active.apply(&active)

	hovered := active
	hovered.Background = color.Some(color.RGBA(0, 0, 0, 0.3))
	in.Hovered.apply(&hovered)

	dragging := hovered
	in.Dragging.apply(&dragging)

	return ScrollableSheet{
		Spacing:         in.Spacing,
		Padding:         in.Padding,
		Width:           in.Width,
		Height:          in.Height,
		MaxWidth:        in.MaxWidth,
		MaxHeight:       in.MaxHeight,
		AlignItems:      in.AlignItems,
		ScrollbarWidth:  in.ScrollbarWidth,
		ScrollbarMargin: in.ScrollbarMargin,
		ScrollerWidth:   in.ScrollerWidth,
		Style: ScrollableStyle{
			Active:   active,
			Hovered:  hovered,
			Dragging: dragging,
		},
	}
}

// Scrollable decodes the scrollable section.
func (d *Decoder) Scrollable(section any) (Map[ScrollableSheet], error) {
	return decodeMap(d, "scrollable", section, resolveScrollable)
}
