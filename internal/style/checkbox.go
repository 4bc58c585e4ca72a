package style

import "github.com/opencode-ai/stylecfg/internal/color"

// CheckboxAppearance is the look of a checkbox in one interaction state.
type CheckboxAppearance struct {
	Background     color.Color
	CheckmarkColor color.Color
	BorderRadius   float32
	BorderWidth    float32
	BorderColor    color.Color
	TextColor      color.Optional
}

// CheckboxStyle holds the checked and unchecked appearances for the
// active and hovered states.
type CheckboxStyle struct {
	Active         CheckboxAppearance
	ActiveChecked  CheckboxAppearance
	Hovered        CheckboxAppearance
	HoveredChecked CheckboxAppearance
}

// Appearance picks the appearance for a state.
func (s CheckboxStyle) Appearance(hovered, checked bool) CheckboxAppearance {
	switch {
	case hovered && checked:
		return s.HoveredChecked
	case hovered:
		return s.Hovered
	case checked:
		return s.ActiveChecked
	default:
		return s.Active
	}
}

// CheckboxSheet is a resolved checkbox variant.
type CheckboxSheet struct {
	Width    *Length
	Size     *uint16
	Spacing  *uint16
	TextSize *uint16
	Style    CheckboxStyle
}

type checkboxPatch struct {
	Background     *color.Color `mapstructure:"background"`
	CheckmarkColor *color.Color `mapstructure:"checkmark_color"`
	BorderRadius   *float32     `mapstructure:"border_radius"`
	BorderWidth    *float32     `mapstructure:"border_width"`
	BorderColor    *color.Color `mapstructure:"border_color"`
	TextColor      *color.Color `mapstructure:"text_color"`
}

func (p checkboxPatch) apply(a *CheckboxAppearance) {
	patch(&a.Background, p.Background)
	patch(&a.CheckmarkColor, p.CheckmarkColor)
	patch(&a.BorderRadius, p.BorderRadius)
	patch(&a.BorderWidth, p.BorderWidth)
	patch(&a.BorderColor, p.BorderColor)
	patchOptional(&a.TextColor, p.TextColor)
}

// checkboxState is the unchecked patch with the checked patch nested under "checked".
type checkboxState struct {
	Unchecked checkboxPatch `mapstructure:",squash"`
	Checked   checkboxPatch `mapstructure:"checked"`
}

type checkboxInput struct {
	Width    *Length `mapstructure:"width"`
	Size     *uint16 `mapstructure:"size"`
	Spacing  *uint16 `mapstructure:"spacing"`
	TextSize *uint16 `mapstructure:"text_size"`

	Active  checkboxState `mapstructure:"active"`
	Hovered checkboxState `mapstructure:"hovered"`
}

func resolveCheckbox(in checkboxInput) CheckboxSheet {
	active := CheckboxAppearance{
		Background:     color.RGB(0.95, 0.95, 0.95),
		CheckmarkColor: color.RGB(0.3, 0.3, 0.3),
		BorderRadius:   5,
		BorderWidth:    1,
		BorderColor:    color.RGB(0.6, 0.6, 0.6),
	}
	in.Active.Unchecked.apply(&active)

	activeChecked := active
	in.Active.Checked.apply(&activeChecked)

	hovered := active
	hovered.Background = color.RGB(0.90, 0.90, 0.90)

	hoveredChecked := activeChecked
	hoveredChecked.Background = color.RGB(0.90, 0.90, 0.90)

	in.Hovered.Unchecked.apply(&hovered)
	in.Hovered.Unchecked.apply(&hoveredChecked)
	in.Hovered.Checked.apply(&hoveredChecked)

	return CheckboxSheet{
		Width:    in.Width,
		Size:     in.Size,
		Spacing:  in.Spacing,
		TextSize: in.TextSize,
		Style: CheckboxStyle{
			Active:         active,
			ActiveChecked:  activeChecked,
			Hovered:        hovered,
			HoveredChecked: hoveredChecked,
		},
	}
}

// Checkbox decodes the checkbox section.
func (d *Decoder) Checkbox(section any) (Map[CheckboxSheet], error) {
	return decodeMap(d, "checkbox", section, resolveCheckbox)
}
