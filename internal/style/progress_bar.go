package style

import "github.com/opencode-ai/stylecfg/internal/color"

// ProgressBarAppearance is the look of a progress bar.
type ProgressBarAppearance struct {
	Background   color.Color
	Bar          color.Color
	BorderRadius float32
}

// ProgressBarSheet is a resolved progress bar variant.
type ProgressBarSheet struct {
	Width  *Length
	Height *Length
	Style  ProgressBarAppearance
}

type progressBarInput struct {
	Width  *Length `mapstructure:"width"`
	Height *Length `mapstructure:"height"`

	Background   *color.Color `mapstructure:"background"`
	Bar          *color.Color `mapstructure:"bar"`
	BorderRadius *float32     `mapstructure:"border_radius"`
}

func resolveProgressBar(in progressBarInput) ProgressBarSheet {
	style := ProgressBarAppearance{
		Background:   color.RGB(0.6, 0.6, 0.6),
		Bar:          color.RGB(0.3, 0.9, 0.3),
		BorderRadius: 5,
	}
	patch(&style.Background, in.Background)
	patch(&style.Bar, in.Bar)
	patch(&style.BorderRadius, in.BorderRadius)

	return ProgressBarSheet{Width: in.Width, Height: in.Height, Style: style}
}

// ProgressBar decodes the progress_bar section.
func (d *Decoder) ProgressBar(section any) (Map[ProgressBarSheet], error) {
	return decodeMap(d, "progress_bar", section, resolveProgressBar)
}
