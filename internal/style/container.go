package style

import "github.com/opencode-ai/stylecfg/internal/color"

// ContainerAppearance is the look of a container.
type ContainerAppearance struct {
	TextColor    color.Optional
	Background   color.Optional
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.Color
}

// ContainerSheet is a resolved container variant.
type ContainerSheet struct {
	Padding   *uint16
	Width     *Length
	Height    *Length
	MaxWidth  *uint32
	MaxHeight *uint32
	AlignX    *Horizontal
	AlignY    *Vertical
	Style     ContainerAppearance
}

type containerInput struct {
	Padding   *uint16     `mapstructure:"padding"`
	Width     *Length     `mapstructure:"width"`
	Height    *Length     `mapstructure:"height"`
	MaxWidth  *uint32     `mapstructure:"max_width"`
	MaxHeight *uint32     `mapstructure:"max_height"`
	AlignX    *Horizontal `mapstructure:"align_x"`
	AlignY    *Vertical   `mapstructure:"align_y"`

	TextColor    *color.Color `mapstructure:"text_color"`
	Background   *color.Color `mapstructure:"background"`
	BorderRadius *float32     `mapstructure:"border_radius"`
	BorderWidth  *float32     `mapstructure:"border_width"`
	BorderColor  *color.Color `mapstructure:"border_color"`
}

func resolveContainer(in containerInput) ContainerSheet {
	style := ContainerAppearance{BorderColor: color.Transparent}
	patchOptional(&style.TextColor, in.TextColor)
	patchOptional(&style.Background, in.Background)
	patch(&style.BorderRadius, in.BorderRadius)
	patch(&style.BorderWidth, in.BorderWidth)
	patch(&style.BorderColor, in.BorderColor)

	return ContainerSheet{
		Padding:   in.Padding,
		Width:     in.Width,
		Height:    in.Height,
		MaxWidth:  in.MaxWidth,
		MaxHeight: in.MaxHeight,
		AlignX:    in.AlignX,
		AlignY:    in.AlignY,
		Style:     style,
	}
}

// Container decodes the container section.
func (d *Decoder) Container(section any) (Map[ContainerSheet], error) {
	return decodeMap(d, "container", section, resolveContainer)
}
