package style

import "github.com/opencode-ai/stylecfg/internal/color"

// Sheets in this file carry layout only. Unset fields leave the widget's
// own defaults in place.

type ImageSheet struct {
	Width  *Length `mapstructure:"width"`
	Height *Length `mapstructure:"height"`
}

// Image decodes the image section.
func (d *Decoder) Image(section any) (Map[ImageSheet], error) {
	return decodeMap(d, "image", section, identity[ImageSheet])
}

type ImageViewerSheet struct {
	Padding   *uint16  `mapstructure:"padding"`
	Width     *Length  `mapstructure:"width"`
	Height    *Length  `mapstructure:"height"`
	MinScale  *float32 `mapstructure:"min_scale"`
	MaxScale  *float32 `mapstructure:"max_scale"`
	ScaleStep *float32 `mapstructure:"scale_step"`
}

// ImageViewer decodes the image_viewer section.
func (d *Decoder) ImageViewer(section any) (Map[ImageViewerSheet], error) {
	return decodeMap(d, "image_viewer", section, identity[ImageViewerSheet])
}

type QRCodeSheet struct {
	Dark     *color.Color `mapstructure:"dark"`
	Light    *color.Color `mapstructure:"light"`
	CellSize *uint16      `mapstructure:"cell_size"`
}

// QRCode decodes the qr_code section.
func (d *Decoder) QRCode(section any) (Map[QRCodeSheet], error) {
	return decodeMap(d, "qr_code", section, identity[QRCodeSheet])
}

type SvgSheet struct {
	Width  *Length `mapstructure:"width"`
	Height *Length `mapstructure:"height"`
}

// Svg decodes the svg section.
func (d *Decoder) Svg(section any) (Map[SvgSheet], error) {
	return decodeMap(d, "svg", section, identity[SvgSheet])
}

type TextSheet struct {
	Size                *uint16      `mapstructure:"size"`
	Color               *color.Color `mapstructure:"color"`
	Width               *Length      `mapstructure:"width"`
	Height              *Length      `mapstructure:"height"`
	HorizontalAlignment *Horizontal  `mapstructure:"horizontal_alignment"`
	VerticalAlignment   *Vertical    `mapstructure:"vertical_alignment"`
}

// Text decodes the text section.
func (d *Decoder) Text(section any) (Map[TextSheet], error) {
	return decodeMap(d, "text", section, identity[TextSheet])
}

func identity[S any](s S) S { return s }
