// Package theme parses style documents into resolved per-widget style maps.
//
// A document is a TOML (or YAML) table. The optional "color" section defines
// aliases; every other recognized top-level key is a widget section. Aliases
// may be used by any widget section regardless of where the color section
// appears in the document.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/stylecfg/internal/color"
	"github.com/opencode-ai/stylecfg/internal/logging"
	"github.com/opencode-ai/stylecfg/internal/style"
)

// ColorSection is the top-level key holding alias definitions.
const ColorSection = "color"

// Widget section keys.
const (
	WidgetButton      = "button"
	WidgetCheckbox    = "checkbox"
	WidgetContainer   = "container"
	WidgetImage       = "image"
	WidgetImageViewer = "image_viewer"
	WidgetPickList    = "pick_list"
	WidgetProgressBar = "progress_bar"
	WidgetQRCode      = "qr_code"
	WidgetRadio       = "radio"
	WidgetRule        = "rule"
	WidgetScrollable  = "scrollable"
	WidgetSlider      = "slider"
	WidgetSvg         = "svg"
	WidgetText        = "text"
	WidgetTextInput   = "text_input"
)

var widgetKinds = []string{
	WidgetButton,
	WidgetCheckbox,
	WidgetContainer,
	WidgetImage,
	WidgetImageViewer,
	WidgetPickList,
	WidgetProgressBar,
	WidgetQRCode,
	WidgetRadio,
	WidgetRule,
	WidgetScrollable,
	WidgetSlider,
	WidgetSvg,
	WidgetText,
	WidgetTextInput,
}

// ErrUnknownWidget is returned by lookups naming a widget kind that does not exist.
var ErrUnknownWidget = errors.New("unknown widget kind")

// WidgetKinds returns the widget section keys in sorted order.
func WidgetKinds() []string {
	out := make([]string, len(widgetKinds))
	copy(out, widgetKinds)
	return out
}

// Theme is an immutable, fully resolved style document.
type Theme struct {
	colors *color.Aliases

	button      style.Map[style.ButtonSheet]
	checkbox    style.Map[style.CheckboxSheet]
	container   style.Map[style.ContainerSheet]
	image       style.Map[style.ImageSheet]
	imageViewer style.Map[style.ImageViewerSheet]
	pickList    style.Map[style.PickListSheet]
	progressBar style.Map[style.ProgressBarSheet]
	qrCode      style.Map[style.QRCodeSheet]
	radio       style.Map[style.RadioSheet]
	rule        style.Map[style.RuleSheet]
	scrollable  style.Map[style.ScrollableSheet]
	slider      style.Map[style.SliderSheet]
	svg         style.Map[style.SvgSheet]
	text        style.Map[style.TextSheet]
	textInput   style.Map[style.TextInputSheet]
}

// Button returns the button styles.
func (t *Theme) Button() style.Map[style.ButtonSheet] {
	return t.button
}

// Checkbox returns the checkbox styles.
func (t *Theme) Checkbox() style.Map[style.CheckboxSheet] {
	return t.checkbox
}

// Container returns the container styles.
func (t *Theme) Container() style.Map[style.ContainerSheet] {
	return t.container
}

// Image returns the image layout sheets.
func (t *Theme) Image() style.Map[style.ImageSheet] {
	return t.image
}

// ImageViewer returns the image viewer layout sheets.
func (t *Theme) ImageViewer() style.Map[style.ImageViewerSheet] {
	return t.imageViewer
}

// PickList returns the pick list styles, including the menu.
func (t *Theme) PickList() style.Map[style.PickListSheet] {
	return t.pickList
}

// ProgressBar returns the progress bar styles.
func (t *Theme) ProgressBar() style.Map[style.ProgressBarSheet] {
	return t.progressBar
}

// QRCode returns the QR code sheets.
func (t *Theme) QRCode() style.Map[style.QRCodeSheet] {
	return t.qrCode
}

// Radio returns the radio button styles.
func (t *Theme) Radio() style.Map[style.RadioSheet] {
	return t.radio
}

// Rule returns the rule styles.
func (t *Theme) Rule() style.Map[style.RuleSheet] {
	return t.rule
}

// Scrollable returns the scrollable styles.
func (t *Theme) Scrollable() style.Map[style.ScrollableSheet] {
	return t.scrollable
}

// Slider returns the slider styles.
func (t *Theme) Slider() style.Map[style.SliderSheet] {
	return t.slider
}

// Svg returns the svg layout sheets.
func (t *Theme) Svg() style.Map[style.SvgSheet] {
	return t.svg
}

// Text returns the text sheets.
func (t *Theme) Text() style.Map[style.TextSheet] {
	return t.text
}

// TextInput returns the text input styles.
func (t *Theme) TextInput() style.Map[style.TextInputSheet] {
	return t.textInput
}

// Colors returns the document's own aliases. Built-in names are not included.
func (t *Theme) Colors() map[string]color.Color {
	return t.colors.Map()
}

// Color resolves a name against the document aliases, then the built-ins.
func (t *Theme) Color(name string) (color.Color, error) {
	return t.colors.Resolve(name)
}

// Variants returns the variant names of a widget kind.
func (t *Theme) Variants(widget string) ([]string, error) {
	switch widget {
	case WidgetButton:
		return t.button.Names(), nil
	case WidgetCheckbox:
		return t.checkbox.Names(), nil
	case WidgetContainer:
		return t.container.Names(), nil
	case WidgetImage:
		return t.image.Names(), nil
	case WidgetImageViewer:
		return t.imageViewer.Names(), nil
	case WidgetPickList:
		return t.pickList.Names(), nil
	case WidgetProgressBar:
		return t.progressBar.Names(), nil
	case WidgetQRCode:
		return t.qrCode.Names(), nil
	case WidgetRadio:
		return t.radio.Names(), nil
	case WidgetRule:
		return t.rule.Names(), nil
	case WidgetScrollable:
		return t.scrollable.Names(), nil
	case WidgetSlider:
		return t.slider.Names(), nil
	case WidgetSvg:
		return t.svg.Names(), nil
	case WidgetText:
		return t.text.Names(), nil
	case WidgetTextInput:
		return t.textInput.Names(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownWidget, widget)
}

// Lookup returns one resolved sheet as its concrete style type, for callers
// that pick the widget kind at run time.
func (t *Theme) Lookup(widget, variant string) (any, error) {
	switch widget {
	case WidgetButton:
		return get(t.button, variant)
	case WidgetCheckbox:
		return get(t.checkbox, variant)
	case WidgetContainer:
		return get(t.container, variant)
	case WidgetImage:
		return get(t.image, variant)
	case WidgetImageViewer:
		return get(t.imageViewer, variant)
	case WidgetPickList:
		return get(t.pickList, variant)
	case WidgetProgressBar:
		return get(t.progressBar, variant)
	case WidgetQRCode:
		return get(t.qrCode, variant)
	case WidgetRadio:
		return get(t.radio, variant)
	case WidgetRule:
		return get(t.rule, variant)
	case WidgetScrollable:
		return get(t.scrollable, variant)
	case WidgetSlider:
		return get(t.slider, variant)
	case WidgetSvg:
		return get(t.svg, variant)
	case WidgetText:
		return get(t.text, variant)
	case WidgetTextInput:
		return get(t.textInput, variant)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownWidget, widget)
}

func get[S any](m style.Map[S], variant string) (any, error) {
	s, err := m.Get(variant)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Default returns the theme of an empty document: every widget kind holds
// only its baseline "default" variant.
func Default() *Theme {
	t, err := build(nil, logging.Component("theme"))
	if err != nil {
		// An empty document has nothing that can fail to decode.
		panic(fmt.Sprintf("theme: default theme: %v", err))
	}
	return t
}

// Parse parses a TOML document.
func Parse(data []byte) (*Theme, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, formatError(err)
	}
	return build(doc, logging.Component("theme"))
}

// ParseString parses a TOML document held in a string.
func ParseString(text string) (*Theme, error) {
	return Parse([]byte(text))
}

// ParseYAML parses a YAML document with the same structure as the TOML form.
func ParseYAML(data []byte) (*Theme, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, formatError(err)
	}
	return build(doc, logging.Component("theme"))
}

// ParseFile reads and parses a document. Files ending in .yaml or .yml are
// read as YAML, everything else as TOML.
func ParseFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(path, err)
	}

	var t *Theme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		t, err = ParseYAML(data)
	default:
		t, err = Parse(data)
	}
	if err != nil {
		var te *Error
		if errors.As(err, &te) {
			te.Path = path
		}
		return nil, err
	}
	return t, nil
}

func build(doc map[string]any, logger zerolog.Logger) (*Theme, error) {
	aliases, err := parseColors(doc[ColorSection])
	if err != nil {
		return nil, err
	}

	for _, key := range sortedKeys(doc) {
		if key == ColorSection || isWidget(key) {
			continue
		}
		logger.Warn().Str("key", key).Msg("ignoring unknown top-level key")
	}

	d := style.NewDecoder(aliases, logger)
	t := &Theme{colors: aliases}

	if t.button, err = d.Button(doc[WidgetButton]); err != nil {
		return nil, decodeError(err)
	}
	if t.checkbox, err = d.Checkbox(doc[WidgetCheckbox]); err != nil {
		return nil, decodeError(err)
	}
	if t.container, err = d.Container(doc[WidgetContainer]); err != nil {
		return nil, decodeError(err)
	}
	if t.image, err = d.Image(doc[WidgetImage]); err != nil {
		return nil, decodeError(err)
	}
	if t.imageViewer, err = d.ImageViewer(doc[WidgetImageViewer]); err != nil {
		return nil, decodeError(err)
	}
	if t.pickList, err = d.PickList(doc[WidgetPickList]); err != nil {
		return nil, decodeError(err)
	}
	if t.progressBar, err = d.ProgressBar(doc[WidgetProgressBar]); err != nil {
		return nil, decodeError(err)
	}
	if t.qrCode, err = d.QRCode(doc[WidgetQRCode]); err != nil {
		return nil, decodeError(err)
	}
	if t.radio, err = d.Radio(doc[WidgetRadio]); err != nil {
		return nil, decodeError(err)
	}
	if t.rule, err = d.Rule(doc[WidgetRule]); err != nil {
		return nil, decodeError(err)
	}
	if t.scrollable, err = d.Scrollable(doc[WidgetScrollable]); err != nil {
		return nil, decodeError(err)
	}
	if t.slider, err = d.Slider(doc[WidgetSlider]); err != nil {
		return nil, decodeError(err)
	}
	if t.svg, err = d.Svg(doc[WidgetSvg]); err != nil {
		return nil, decodeError(err)
	}
	if t.text, err = d.Text(doc[WidgetText]); err != nil {
		return nil, decodeError(err)
	}
	if t.textInput, err = d.TextInput(doc[WidgetTextInput]); err != nil {
		return nil, decodeError(err)
	}
	return t, nil
}

// parseColors builds the document alias table. Definitions resolve against
// built-in names only.
func parseColors(section any) (*color.Aliases, error) {
	aliases := color.NewAliases()
	if section == nil {
		return aliases, nil
	}

	table, ok := section.(map[string]any)
	if !ok {
		return nil, formatError(fmt.Errorf("%s: expected a table, got %T", ColorSection, section))
	}
	for _, name := range sortedKeys(table) {
		c, err := color.Parse(table[name], nil)
		if err != nil {
			return nil, &Error{Kind: ErrColor, err: fmt.Errorf("%s.%s: %w", ColorSection, name, err)}
		}
		aliases.Define(name, c)
	}
	return aliases, nil
}

func isWidget(key string) bool {
	for _, kind := range widgetKinds {
		if kind == key {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
