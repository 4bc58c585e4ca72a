package style

import "github.com/opencode-ai/stylecfg/internal/color"

// ButtonAppearance is the look of a button in one interaction state.
type ButtonAppearance struct {
	ShadowOffset Vector
	Background   color.Optional
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.Color
	TextColor    color.Color
}

// ButtonStyle holds a button appearance per interaction state.
type ButtonStyle struct {
	Active   ButtonAppearance
	Hovered  ButtonAppearance
	Pressed  ButtonAppearance
	Disabled ButtonAppearance
}

// ButtonSheet is a resolved button variant.
type ButtonSheet struct {
	Width   *Length
	Height  *Length
	Padding *uint16
	Style   ButtonStyle
}

type buttonPatch struct {
	ShadowOffset *Vector      `mapstructure:"shadow_offset"`
	Background   *color.Color `mapstructure:"background"`
	BorderRadius *float32     `mapstructure:"border_radius"`
	BorderWidth  *float32     `mapstructure:"border_width"`
	BorderColor  *color.Color `mapstructure:"border_color"`
	TextColor    *color.Color `mapstructure:"text_color"`
}

func (p buttonPatch) apply(a *ButtonAppearance) {
	patch(&a.ShadowOffset, p.ShadowOffset)
	patchOptional(&a.Background, p.Background)
	patch(&a.BorderRadius, p.BorderRadius)
	patch(&a.BorderWidth, p.BorderWidth)
	patch(&a.BorderColor, p.BorderColor)
	patch(&a.TextColor, p.TextColor)
}

type buttonInput struct {
	Width   *Length `mapstructure:"width"`
	Height  *Length `mapstructure:"height"`
	Padding *uint16 `mapstructure:"padding"`

	Active   buttonPatch `mapstructure:"active"`
	Hovered  buttonPatch `mapstructure:"hovered"`
	Pressed  buttonPatch `mapstructure:"pressed"`
	Disabled buttonPatch `mapstructure:"disabled"`
}

func resolveButton(in buttonInput) ButtonSheet {
	active := ButtonAppearance{
		BorderColor: color.Transparent,
		TextColor:   color.Black,
	}
	in.Active.apply(&active)

	hovered := active
	hovered.ShadowOffset = active.ShadowOffset.Add(Vector{X: 0, Y: 1})
	in.Hovered.apply(&hovered)

	pressed := active
	pressed.ShadowOffset = Vector{}
	in.Pressed.apply(&pressed)

	disabled := active
	disabled.ShadowOffset = Vector{}
	disabled.Background = active.Background.ScaleAlpha(0.5)
	disabled.TextColor = active.TextColor.ScaleAlpha(0.5)
	in.Disabled.apply(&disabled)

	return ButtonSheet{
		Width:   in.Width,
		Height:  in.Height,
		Padding: in.Padding,
		Style: ButtonStyle{
			Active:   active,
			Hovered:  hovered,
			Pressed:  pressed,
			Disabled: disabled,
		},
	}
}

// Button decodes the button section.
func (d *Decoder) Button(section any) (Map[ButtonSheet], error) {
	return decodeMap(d, "button", section, resolveButton)
}
