package style

import "github.com/opencode-ai/stylecfg/internal/color"

// TextInputAppearance is the look of a text input in one interaction state.
type TextInputAppearance struct {
	Background   color.Color
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.Color
}

// TextInputStyle holds the text input states and its text colors.
type TextInputStyle struct {
	Active           TextInputAppearance
	Focused          TextInputAppearance
	Hovered          TextInputAppearance
	PlaceholderColor color.Color
	ValueColor       color.Color
	SelectionColor   color.Color
}

// TextInputSheet is a resolved text input variant.
type TextInputSheet struct {
	Width   *Length
	Padding *uint16
	Size    *uint16
	Style   TextInputStyle
}

type textInputPatch struct {
	Background   *color.Color `mapstructure:"background"`
	BorderRadius *float32     `mapstructure:"border_radius"`
	BorderWidth  *float32     `mapstructure:"border_width"`
	BorderColor  *color.Color `mapstructure:"border_color"`
}

func (p textInputPatch) apply(a *TextInputAppearance) {
	patch(&a.Background, p.Background)
	patch(&a.BorderRadius, p.BorderRadius)
	patch(&a.BorderWidth, p.BorderWidth)
	patch(&a.BorderColor, p.BorderColor)
}

type textInputInput struct {
	Width   *Length `mapstructure:"width"`
	Padding *uint16 `mapstructure:"padding"`
	Size    *uint16 `mapstructure:"size"`

	Active           textInputPatch `mapstructure:"active"`
	Focused          textInputPatch `mapstructure:"focused"`
	Hovered          textInputPatch `mapstructure:"hovered"`
	PlaceholderColor *color.Color   `mapstructure:"placeholder_color"`
	ValueColor       *color.Color   `mapstructure:"value_color"`
	SelectionColor   *color.Color   `mapstructure:"selection_color"`
}

func resolveTextInput(in textInputInput) TextInputSheet {
	active := TextInputAppearance{
		Background:   color.White,
		BorderRadius: 5,
		BorderWidth:  1,
		BorderColor:  color.RGB(0.7, 0.7, 0.7),
	}
	in.Active.apply(&active)

	focused := active
	focused.BorderColor = color.RGB(0.5, 0.5, 0.5)
	in.Focused.apply(&focused)

	hovered := focused
	in.Hovered.apply(&hovered)

	style := TextInputStyle{
		Active:           active,
		Focused:          focused,
		Hovered:          hovered,
		PlaceholderColor: color.RGB(0.7, 0.7, 0.7),
		ValueColor:       color.RGB(0.3, 0.3, 0.3),
		SelectionColor:   color.RGB(0.8, 0.8, 1.0),
	}
	patch(&style.PlaceholderColor, in.PlaceholderColor)
	patch(&style.ValueColor, in.ValueColor)
	patch(&style.SelectionColor, in.SelectionColor)

	return TextInputSheet{
		Width:   in.Width,
		Padding: in.Padding,
		Size:    in.Size,
		Style:   style,
	}
}

// TextInput decodes the text_input section.
func (d *Decoder) TextInput(section any) (Map[TextInputSheet], error) {
	return decodeMap(d, "text_input", section, resolveTextInput)
}
