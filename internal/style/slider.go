package style

import "github.com/opencode-ai/stylecfg/internal/color"

// HandleAppearance is the look of a slider handle.
type HandleAppearance struct {
	Shape       HandleShape
	Color       color.Color
	BorderWidth float32
	BorderColor color.Color
}

// SliderAppearance is the look of a slider in one interaction state.
type SliderAppearance struct {
	RailColors [2]color.Color
	Handle     HandleAppearance
}

// SliderStyle holds the slider states.
type SliderStyle struct {
	Active   SliderAppearance
	Hovered  SliderAppearance
	Dragging SliderAppearance
}

// SliderSheet is a resolved slider variant.
type SliderSheet struct {
	Width  *Length
	Height *uint16
	Style  SliderStyle
}

type handlePatch struct {
	Shape       *HandleShape `mapstructure:"shape"`
	Color       *color.Color `mapstructure:"color"`
	BorderWidth *float32     `mapstructure:"border_width"`
	BorderColor *color.Color `mapstructure:"border_color"`
}

type sliderPatch struct {
	RailColors *[2]color.Color `mapstructure:"rail_colors"`
	Handle     *handlePatch    `mapstructure:"handle"`
}

func (p sliderPatch) apply(a *SliderAppearance) {
	patch(&a.RailColors, p.RailColors)
	if h := p.Handle; h != nil {
		patch(&a.Handle.Shape, h.Shape)
		patch(&a.Handle.Color, h.Color)
		patch(&a.Handle.BorderWidth, h.BorderWidth)
		patch(&a.Handle.BorderColor, h.BorderColor)
	}
}

type sliderInput struct {
	Width  *Length `mapstructure:"width"`
	Height *uint16 `mapstructure:"height"`

	Active   sliderPatch `mapstructure:"active"`
	Hovered  sliderPatch `mapstructure:"hovered"`
	Dragging sliderPatch `mapstructure:"dragging"`
}

func resolveSlider(in sliderInput) SliderSheet {
	active := SliderAppearance{
		RailColors: [2]color.Color{color.RGBA(0.6, 0.6, 0.6, 0.5), color.White},
		Handle: HandleAppearance{
			Shape:       HandleShape{Kind: ShapeRectangle, Width: 8, BorderRadius: 4},
			Color:       color.RGB(0.95, 0.95, 0.95),
			BorderWidth: 1,
			BorderColor: color.RGB(0.6, 0.6, 0.6),
		},
	}
	in.Active.apply(&active)

	hovered := active
	hovered.Handle.Color = color.RGB(0.90, 0.90, 0.90)
	in.Hovered.apply(&hovered)

	dragging := active
	dragging.Handle.Color = color.RGB(0.85, 0.85, 0.85)
	in.Dragging.apply(&dragging)

	return SliderSheet{
		Width:  in.Width,
		Height: in.Height,
		Style: SliderStyle{
			Active:   active,
			Hovered:  hovered,
			Dragging: dragging,
		},
	}
}

// Slider decodes the slider section.
func (d *Decoder) Slider(section any) (Map[SliderSheet], error) {
	return decodeMap(d, "slider", section, resolveSlider)
}
