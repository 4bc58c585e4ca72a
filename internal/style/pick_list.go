package style

import "github.com/opencode-ai/stylecfg/internal/color"

// PickListAppearance is the look of a closed pick list.
type PickListAppearance struct {
	TextColor        color.Color
	PlaceholderColor color.Color
	Background       color.Color
	BorderRadius     float32
	BorderWidth      float32
	BorderColor      color.Color
	IconSize         float32
}

// MenuAppearance is the look of an open pick list menu.
type MenuAppearance struct {
	TextColor          color.Color
	Background         color.Color
	BorderWidth        float32
	BorderColor        color.Color
	SelectedTextColor  color.Color
	SelectedBackground color.Color
}

// PickListStyle holds the pick list states and its menu.
type PickListStyle struct {
	Menu    MenuAppearance
	Active  PickListAppearance
	Hovered PickListAppearance
}

// PickListSheet is a resolved pick list variant.
type PickListSheet struct {
	Padding  *uint16
	Width    *Length
	TextSize *uint16
	Style    PickListStyle
}

type pickListPatch struct {
	TextColor        *color.Color `mapstructure:"text_color"`
	PlaceholderColor *color.Color `mapstructure:"placeholder_color"`
	Background       *color.Color `mapstructure:"background"`
	BorderRadius     *float32     `mapstructure:"border_radius"`
	BorderWidth      *float32     `mapstructure:"border_width"`
	BorderColor      *color.Color `mapstructure:"border_color"`
	IconSize         *float32     `mapstructure:"icon_size"`
}

func (p pickListPatch) apply(a *PickListAppearance) {
	patch(&a.TextColor, p.TextColor)
	patch(&a.PlaceholderColor, p.PlaceholderColor)
	patch(&a.Background, p.Background)
	patch(&a.BorderRadius, p.BorderRadius)
	patch(&a.BorderWidth, p.BorderWidth)
	patch(&a.BorderColor, p.BorderColor)
	patch(&a.IconSize, p.IconSize)
}

type menuPatch struct {
	TextColor          *color.Color `mapstructure:"text_color"`
	Background         *color.Color `mapstructure:"background"`
	BorderWidth        *float32     `mapstructure:"border_width"`
	BorderColor        *color.Color `mapstructure:"border_color"`
	SelectedTextColor  *color.Color `mapstructure:"selected_text_color"`
	SelectedBackground *color.Color `mapstructure:"selected_background"`
}

func (p menuPatch) apply(a *MenuAppearance) {
	patch(&a.TextColor, p.TextColor)
	patch(&a.Background, p.Background)
	patch(&a.BorderWidth, p.BorderWidth)
	patch(&a.BorderColor, p.BorderColor)
	patch(&a.SelectedTextColor, p.SelectedTextColor)
	patch(&a.SelectedBackground, p.SelectedBackground)
}

type pickListInput struct {
	Padding  *uint16 `mapstructure:"padding"`
	Width    *Length `mapstructure:"width"`
	TextSize *uint16 `mapstructure:"text_size"`

	Menu    menuPatch     `mapstructure:"menu"`
	Active  pickListPatch `mapstructure:"active"`
	Hovered pickListPatch `mapstructure:"hovered"`
}

func resolvePickList(in pickListInput) PickListSheet {
	menu := MenuAppearance{
		TextColor:          color.Black,
		Background:         color.RGB(0.87, 0.87, 0.87),
		BorderWidth:        1,
		BorderColor:        color.RGB(0.7, 0.7, 0.7),
		SelectedTextColor:  color.White,
		SelectedBackground: color.RGB(0.4, 0.4, 1.0),
	}
	in.Menu.apply(&menu)

	active := PickListAppearance{
		TextColor:        color.Black,
		PlaceholderColor: color.RGB(0.4, 0.4, 0.4),
		Background:       color.RGB(0.87, 0.87, 0.87),
		BorderWidth:      1,
		BorderColor:      color.RGB(0.7, 0.7, 0.7),
		IconSize:         0.7,
	}
	in.Active.apply(&active)

	hovered := active
	hovered.BorderColor = color.Black
	in.Hovered.apply(&hovered)

	return PickListSheet{
		Padding:  in.Padding,
		Width:    in.Width,
		TextSize: in.TextSize,
		Style: PickListStyle{
			Menu:    menu,
			Active:  active,
			Hovered: hovered,
		},
	}
}

// PickList decodes the pick_list section.
func (d *Decoder) PickList(section any) (Map[PickListSheet], error) {
	return decodeMap(d, "pick_list", section, resolvePickList)
}
