package style

import "github.com/opencode-ai/stylecfg/internal/color"

// RadioAppearance is the look of a radio button in one interaction state.
type RadioAppearance struct {
	Background  color.Color
	DotColor    color.Color
	BorderWidth float32
	BorderColor color.Color
	TextColor   color.Optional
}

// RadioStyle holds the radio states.
type RadioStyle struct {
	Active  RadioAppearance
	Hovered RadioAppearance
}

// RadioSheet is a resolved radio variant.
type RadioSheet struct {
	Width    *Length
	Size     *uint16
	Spacing  *uint16
	TextSize *uint16
	Style    RadioStyle
}

type radioPatch struct {
	Background  *color.Color `mapstructure:"background"`
	DotColor    *color.Color `mapstructure:"dot_color"`
	BorderWidth *float32     `mapstructure:"border_width"`
	BorderColor *color.Color `mapstructure:"border_color"`
	TextColor   *color.Color `mapstructure:"text_color"`
}

func (p radioPatch) apply(a *RadioAppearance) {
	patch(&a.Background, p.Background)
	patch(&a.DotColor, p.DotColor)
	patch(&a.BorderWidth, p.BorderWidth)
	patch(&a.BorderColor, p.BorderColor)
	patchOptional(&a.TextColor, p.TextColor)
}

type radioInput struct {
	Width    *Length `mapstructure:"width"`
	Size     *uint16 `mapstructure:"size"`
	Spacing  *uint16 `mapstructure:"spacing"`
	TextSize *uint16 `mapstructure:"text_size"`

	Active  radioPatch `mapstructure:"active"`
	Hovered radioPatch `mapstructure:"hovered"`
}

func resolveRadio(in radioInput) RadioSheet {
	active := RadioAppearance{
		Background:  color.RGB(0.95, 0.95, 0.95),
		DotColor:    color.RGB(0.3, 0.3, 0.3),
		BorderWidth: 1,
		BorderColor: color.RGB(0.6, 0.6, 0.6),
	}
	in.Active.apply(&active)

	hovered := active
	hovered.Background = color.RGB(0.90, 0.90, 0.90)
	in.Hovered.apply(&hovered)

	return RadioSheet{
		Width:    in.Width,
		Size:     in.Size,
		Spacing:  in.Spacing,
		TextSize: in.TextSize,
		Style:    RadioStyle{Active: active, Hovered: hovered},
	}
}

// Radio decodes the radio section.
func (d *Decoder) Radio(section any) (Map[RadioSheet], error) {
	return decodeMap(d, "radio", section, resolveRadio)
}
