package style

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/stylecfg/internal/color"
)

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	aliases := color.NewAliases()
	aliases.Define("accent", color.RGB(0.2, 0.4, 0.8))
	return NewDecoder(aliases, zerolog.Nop())
}

func TestButtonBaseline(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Button(nil)
	require.NoError(t, err)
	require.Equal(t, []string{DefaultVariant}, m.Names())

	s := m.Default().Style
	require.Equal(t, Vector{}, s.Active.ShadowOffset)
	require.False(t, s.Active.Background.Valid)
	require.Equal(t, color.Black, s.Active.TextColor)
	require.Equal(t, color.Transparent, s.Active.BorderColor)
	require.Equal(t, Vector{X: 0, Y: 1}, s.Hovered.ShadowOffset)
	require.Equal(t, Vector{}, s.Pressed.ShadowOffset)
	require.Equal(t, color.RGBA(0, 0, 0, 0.5), s.Disabled.TextColor)
}

func TestButtonDisabledHalvesAlpha(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Button(map[string]any{
		"primary": map[string]any{
			"active": map[string]any{
				"background":    "accent",
				"shadow_offset": []any{1.0, 2.0},
				"text_color":    "white",
			},
			"hovered": map[string]any{"border_width": 2.0},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{DefaultVariant, "primary"}, m.Names())

	primary, err := m.Get("primary")
	require.NoError(t, err)
	s := primary.Style

	bg, ok := s.Active.Background.Get()
	require.True(t, ok)
	require.Equal(t, color.RGB(0.2, 0.4, 0.8), bg)

	require.Equal(t, Vector{X: 1, Y: 3}, s.Hovered.ShadowOffset)
	require.Equal(t, float32(2), s.Hovered.BorderWidth)
	require.Equal(t, float32(0), s.Pressed.BorderWidth)

	disabled, ok := s.Disabled.Background.Get()
	require.True(t, ok)
	require.InDelta(t, 0.5, disabled.A, 1e-6)
	require.InDelta(t, 0.5, s.Disabled.TextColor.A, 1e-6)
	require.Equal(t, Vector{}, s.Disabled.ShadowOffset)

	// The default variant is still the untouched baseline.
	require.False(t, m.Default().Style.Active.Background.Valid)
}

func TestFlattenedSectionIsDefault(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Button(map[string]any{
		"padding": int64(4),
		"active":  map[string]any{"border_radius": 3.0},
	})
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	def := m.Default()
	require.NotNil(t, def.Padding)
	require.Equal(t, uint16(4), *def.Padding)
	require.Equal(t, float32(3), def.Style.Active.BorderRadius)
	require.Equal(t, float32(3), def.Style.Disabled.BorderRadius)
}

func TestGetMissingVariant(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Container(nil)
	require.NoError(t, err)

	_, err = m.Get("nonexistent")
	require.ErrorIs(t, err, ErrVariantNotFound)
	require.Contains(t, err.Error(), `"nonexistent"`)
}

func TestExplicitDefaultVariant(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Container(map[string]any{
		"default": map[string]any{"background": "accent"},
		"card":    map[string]any{"border_width": 1.0},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"card", DefaultVariant}, m.Names())

	bg, ok := m.Default().Style.Background.Get()
	require.True(t, ok)
	require.Equal(t, color.RGB(0.2, 0.4, 0.8), bg)
}

func TestCheckboxCascadeOrder(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Checkbox(map[string]any{
		"active": map[string]any{
			"border_width": 2.0,
			"checked":      map[string]any{"background": "black"},
		},
		"hovered": map[string]any{
			"checkmark_color": "white",
			"checked":         map[string]any{"border_radius": 1.0},
		},
	})
	require.NoError(t, err)
	s := m.Default().Style

	require.Equal(t, color.RGB(0.95, 0.95, 0.95), s.Active.Background)
	require.Equal(t, float32(2), s.Active.BorderWidth)
	require.Equal(t, color.Black, s.ActiveChecked.Background)
	require.Equal(t, float32(2), s.ActiveChecked.BorderWidth)

	require.Equal(t, color.RGB(0.90, 0.90, 0.90), s.Hovered.Background)
	require.Equal(t, color.White, s.Hovered.CheckmarkColor)
	require.Equal(t, float32(5), s.Hovered.BorderRadius)

	// hovered_checked derives from active_checked, then takes both hovered patches.
	require.Equal(t, color.RGB(0.90, 0.90, 0.90), s.HoveredChecked.Background)
	require.Equal(t, color.White, s.HoveredChecked.CheckmarkColor)
	require.Equal(t, float32(1), s.HoveredChecked.BorderRadius)

	require.Equal(t, s.HoveredChecked, s.Appearance(true, true))
	require.Equal(t, s.Active, s.Appearance(false, false))
}

func TestScrollableDraggingFollowsHovered(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Scrollable(map[string]any{
		"hovered": map[string]any{
			"scroller": map[string]any{"color": "red"},
		},
		"dragging": map[string]any{"border_width": 1.0},
	})
	require.NoError(t, err)
	s := m.Default().Style

	require.False(t, s.Active.Background.Valid)
	require.Equal(t, color.RGBA(0, 0, 0, 0.7), s.Active.Scroller.Color)

	bg, ok := s.Hovered.Background.Get()
	require.True(t, ok)
	require.Equal(t, color.RGBA(0, 0, 0, 0.3), bg)
	require.Equal(t, color.RGB8(255, 0, 0), s.Hovered.Scroller.Color)

	require.Equal(t, color.RGB8(255, 0, 0), s.Dragging.Scroller.Color)
	require.Equal(t, float32(1), s.Dragging.BorderWidth)
	require.Equal(t, float32(0), s.Hovered.BorderWidth)
}

func TestSliderStates(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Slider(map[string]any{
		"height": int64(20),
		"active": map[string]any{
			"rail_colors": []any{"black", "white"},
			"handle": map[string]any{
				"shape": map[string]any{"circle": map[string]any{"radius": 6.0}},
			},
		},
	})
	require.NoError(t, err)
	sheet := m.Default()
	require.Equal(t, uint16(20), *sheet.Height)

	s := sheet.Style
	require.Equal(t, [2]color.Color{color.Black, color.White}, s.Active.RailColors)
	require.Equal(t, HandleShape{Kind: ShapeCircle, Radius: 6}, s.Active.Handle.Shape)
	require.Equal(t, color.RGB(0.95, 0.95, 0.95), s.Active.Handle.Color)
	require.Equal(t, color.RGB(0.90, 0.90, 0.90), s.Hovered.Handle.Color)
	require.Equal(t, color.RGB(0.85, 0.85, 0.85), s.Dragging.Handle.Color)
	require.Equal(t, HandleShape{Kind: ShapeCircle, Radius: 6}, s.Dragging.Handle.Shape)

	base, err := d.Slider(nil)
	require.NoError(t, err)
	require.Equal(t, HandleShape{Kind: ShapeRectangle, Width: 8, BorderRadius: 4}, base.Default().Style.Active.Handle.Shape)
}

func TestTextInputHoveredFollowsFocused(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.TextInput(map[string]any{
		"focused":         map[string]any{"border_width": 3.0},
		"selection_color": "accent",
	})
	require.NoError(t, err)
	s := m.Default().Style

	require.Equal(t, color.RGB(0.7, 0.7, 0.7), s.Active.BorderColor)
	require.Equal(t, color.RGB(0.5, 0.5, 0.5), s.Focused.BorderColor)
	require.Equal(t, s.Focused, s.Hovered)
	require.Equal(t, color.RGB(0.2, 0.4, 0.8), s.SelectionColor)
	require.Equal(t, color.RGB(0.7, 0.7, 0.7), s.PlaceholderColor)
}

func TestPickListMenu(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.PickList(map[string]any{
		"menu":   map[string]any{"selected_background": "accent"},
		"active": map[string]any{"icon_size": 0.5},
	})
	require.NoError(t, err)
	s := m.Default().Style

	require.Equal(t, color.RGB(0.2, 0.4, 0.8), s.Menu.SelectedBackground)
	require.Equal(t, color.White, s.Menu.SelectedTextColor)
	require.Equal(t, float32(0.5), s.Hovered.IconSize)
	require.Equal(t, color.Black, s.Hovered.BorderColor)
}

func TestRuleFillModes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  FillMode
	}{
		{name: "full", value: "full", want: FillMode{Kind: FillFull}},
		{name: "percent", value: map[string]any{"percent": 50.0}, want: FillMode{Kind: FillPercent, Percent: 50}},
		{name: "padded", value: map[string]any{"padded": int64(4)}, want: FillMode{Kind: FillPadded, Start: 4, End: 4}},
		{name: "asymmetric", value: map[string]any{"asymmetric_padding": []any{int64(1), int64(7)}}, want: FillMode{Kind: FillAsymmetricPadding, Start: 1, End: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDecoder(t)
			m, err := d.Rule(map[string]any{"fill_mode": tt.value})
			require.NoError(t, err)
			require.Equal(t, tt.want, m.Default().Style.Fill)
		})
	}

	d := newTestDecoder(t)
	m, err := d.Rule(nil)
	require.NoError(t, err)
	require.Equal(t, FillMode{Kind: FillPercent, Percent: 90}, m.Default().Style.Fill)
	require.Equal(t, uint16(1), m.Default().Style.Width)
}

func TestLayoutFields(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Container(map[string]any{
		"width":      "fill",
		"height":     map[string]any{"units": int64(100)},
		"max_width":  int64(640),
		"align_x":    "center",
		"align_y":    "bottom",
		"text_color": "accent",
	})
	require.NoError(t, err)
	c := m.Default()
	require.Equal(t, Length{Kind: LengthFill}, *c.Width)
	require.Equal(t, Length{Kind: LengthUnits, Value: 100}, *c.Height)
	require.Equal(t, uint32(640), *c.MaxWidth)
	require.Equal(t, AlignHCenter, *c.AlignX)
	require.Equal(t, AlignBottom, *c.AlignY)
	require.Nil(t, c.Padding)

	text, err := d.Text(map[string]any{
		"heading": map[string]any{"size": int64(24), "color": "accent", "horizontal_alignment": "right"},
	})
	require.NoError(t, err)
	heading, err := text.Get("heading")
	require.NoError(t, err)
	require.Equal(t, uint16(24), *heading.Size)
	require.Equal(t, color.RGB(0.2, 0.4, 0.8), *heading.Color)
	require.Equal(t, AlignRight, *heading.HorizontalAlignment)
	require.Nil(t, text.Default().Size)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		section any
		decode  func(*Decoder, any) error
	}{
		{
			name:    "unknown length",
			section: map[string]any{"width": "huge"},
			decode:  func(d *Decoder, s any) error { _, err := d.Button(s); return err },
		},
		{
			name:    "unknown alignment",
			section: map[string]any{"align_items": "diagonal"},
			decode:  func(d *Decoder, s any) error { _, err := d.Scrollable(s); return err },
		},
		{
			name:    "unknown handle shape",
			section: map[string]any{"active": map[string]any{"handle": map[string]any{"shape": "triangle"}}},
			decode:  func(d *Decoder, s any) error { _, err := d.Slider(s); return err },
		},
		{
			name:    "variant is not a table",
			section: map[string]any{"primary": "red"},
			decode:  func(d *Decoder, s any) error { _, err := d.Button(s); return err },
		},
		{
			name:    "section is not a table",
			section: []any{1, 2},
			decode:  func(d *Decoder, s any) error { _, err := d.Radio(s); return err },
		},
		{
			name:    "u16 overflow",
			section: map[string]any{"padding": int64(70000)},
			decode:  func(d *Decoder, s any) error { _, err := d.Button(s); return err },
		},
		{
			name:    "u16 just past max",
			section: map[string]any{"size": int64(65536)},
			decode:  func(d *Decoder, s any) error { _, err := d.Checkbox(s); return err },
		},
		{
			name:    "u32 overflow",
			section: map[string]any{"max_width": int64(5000000000)},
			decode:  func(d *Decoder, s any) error { _, err := d.Scrollable(s); return err },
		},
		{
			name:    "u16 from yaml int",
			section: map[string]any{"default": map[string]any{"width": 70000}},
			decode:  func(d *Decoder, s any) error { _, err := d.Rule(s); return err },
		},
		{
			name:    "u16 from float",
			section: map[string]any{"padding": 4.5},
			decode:  func(d *Decoder, s any) error { _, err := d.Container(s); return err },
		},
		{
			name: "fields mixed with variant tables",
			section: map[string]any{
				"width":   "fill",
				"primary": map[string]any{"active": map[string]any{"background": "accent"}},
			},
			decode: func(d *Decoder, s any) error { _, err := d.Button(s); return err },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(newTestDecoder(t), tt.section)
			require.Error(t, err)
			var fe *FieldError
			require.True(t, errors.As(err, &fe))
		})
	}
}

func TestIntegerFieldBounds(t *testing.T) {
	d := newTestDecoder(t)

	button, err := d.Button(map[string]any{"padding": int64(65535)})
	require.NoError(t, err)
	require.Equal(t, uint16(65535), *button.Default().Padding)

	scrollable, err := d.Scrollable(map[string]any{"max_width": int64(4294967295)})
	require.NoError(t, err)
	require.Equal(t, uint32(4294967295), *scrollable.Default().MaxWidth)

	_, err = d.Button(map[string]any{"padding": int64(-1)})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "button", fe.Path)
	require.Contains(t, fe.Error(), "out of range for u16")
}

func TestColorErrorSurfaces(t *testing.T) {
	d := newTestDecoder(t)
	_, err := d.Button(map[string]any{
		"primary": map[string]any{"active": map[string]any{"text_color": "nosuchcolor"}},
	})
	require.Error(t, err)

	var pe *color.ParseError
	require.True(t, errors.As(err, &pe))
	require.ErrorIs(t, err, color.ErrAliasNotFound)
	require.Contains(t, err.Error(), "cannot find color alias 'nosuchcolor'")

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "button.primary", fe.Path)
}

func TestDescribe(t *testing.T) {
	d := newTestDecoder(t)
	m, err := d.Button(map[string]any{"width": "fill"})
	require.NoError(t, err)

	fields := Describe(m.Default())
	byPath := make(map[string]Field, len(fields))
	for _, f := range fields {
		byPath[f.Path] = f
	}

	require.Equal(t, "fill", byPath["width"].Value)
	require.Equal(t, "-", byPath["height"].Value)
	require.Equal(t, "none", byPath["style.active.background"].Value)
	require.Equal(t, "(0, 1)", byPath["style.hovered.shadow_offset"].Value)

	text := byPath["style.active.text_color"]
	require.NotNil(t, text.Color)
	require.Equal(t, color.Black, *text.Color)

	slider, err := d.Slider(nil)
	require.NoError(t, err)
	fields = Describe(slider.Default())
	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		paths = append(paths, f.Path)
	}
	require.Contains(t, paths, "style.active.rail_colors.1")
	require.Contains(t, paths, "style.dragging.handle.shape")
}
