package style

import "github.com/opencode-ai/stylecfg/internal/color"

// RuleAppearance is the look of a horizontal or vertical rule.
type RuleAppearance struct {
	Color  color.Color
	Width  uint16
	Radius float32
	Fill   FillMode
}

// RuleSheet is a resolved rule variant.
type RuleSheet struct {
	Style RuleAppearance
}

type ruleInput struct {
	Color    *color.Color `mapstructure:"color"`
	Width    *uint16      `mapstructure:"width"`
	Radius   *float32     `mapstructure:"radius"`
	FillMode *FillMode    `mapstructure:"fill_mode"`
}

func resolveRule(in ruleInput) RuleSheet {
	style := RuleAppearance{
		Color: color.RGBA(0.6, 0.6, 0.6, 0.51),
		Width: 1,
		Fill:  FillMode{Kind: FillPercent, Percent: 90},
	}
	patch(&style.Color, in.Color)
	patch(&style.Width, in.Width)
	patch(&style.Radius, in.Radius)
	patch(&style.Fill, in.FillMode)

	return RuleSheet{Style: style}
}

// Rule decodes the rule section.
func (d *Decoder) Rule(section any) (Map[RuleSheet], error) {
	return decodeMap(d, "rule", section, resolveRule)
}
