package style

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/stylecfg/internal/color"
)

// DefaultVariant is the variant every style map is guaranteed to contain.
const DefaultVariant = "default"

// ErrVariantNotFound is returned when a style map has no variant of the requested name.
var ErrVariantNotFound = errors.New("style variant not found")

// FieldError locates a decoding failure inside a document.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Map holds the resolved sheets of one widget kind keyed by variant name.
type Map[S any] struct {
	sheets map[string]S
}

// Default returns the "default" variant.
func (m Map[S]) Default() S {
	return m.sheets[DefaultVariant]
}

// Get returns the named variant. There is no fallback to the default.
func (m Map[S]) Get(name string) (S, error) {
	s, ok := m.sheets[name]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: %q", ErrVariantNotFound, name)
	}
	return s, nil
}

// Names returns the variant names in sorted order.
func (m Map[S]) Names() []string {
	names := make([]string, 0, len(m.sheets))
	for name := range m.sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of variants.
func (m Map[S]) Len() int {
	return len(m.sheets)
}

// Decoder decodes widget sections of one document. Color fields resolve
// through the document's alias table.
type Decoder struct {
	aliases color.Resolver
	logger  zerolog.Logger

	// colorErr keeps the first color failure of the current decode so it
	// reaches the caller unwrapped by the decoding library.
	colorErr error
}

// NewDecoder returns a Decoder resolving aliases through r.
func NewDecoder(r color.Resolver, logger zerolog.Logger) *Decoder {
	return &Decoder{aliases: r, logger: logger}
}

// decodeMap decodes one widget section into a style map. A nil section
// yields a map holding only the baseline default.
func decodeMap[I any, S any](d *Decoder, widget string, section any, resolve func(I) S) (Map[S], error) {
	m := Map[S]{sheets: make(map[string]S)}

	if section != nil {
		table, ok := section.(map[string]any)
		if !ok {
			return m, &FieldError{Path: widget, Err: fmt.Errorf("expected a table, got %T", section)}
		}

		fields := fieldNames(reflect.TypeOf((*I)(nil)).Elem())
		if flattened(table, fields) {
			if name, ok := strayVariant(table, fields); ok {
				return m, &FieldError{
					Path: widget + "." + name,
					Err:  fmt.Errorf("variant table %q mixed with %s style fields", name, widget),
				}
			}
			var in I
			if err := d.decode(widget, table, &in); err != nil {
				return m, err
			}
			m.sheets[DefaultVariant] = resolve(in)
		} else {
			names := make([]string, 0, len(table))
			for name := range table {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				value := table[name]
				path := widget + "." + name
				variant, ok := value.(map[string]any)
				if !ok {
					return m, &FieldError{Path: path, Err: fmt.Errorf("expected a table, got %T", value)}
				}
				var in I
				if err := d.decode(path, variant, &in); err != nil {
					return m, err
				}
				m.sheets[name] = resolve(in)
			}
		}
	}

	if _, ok := m.sheets[DefaultVariant]; !ok {
		var zero I
		m.sheets[DefaultVariant] = resolve(zero)
	}
	return m, nil
}

// flattened reports whether a section is a single record for the default
// variant rather than a table of named variants.
func flattened(table map[string]any, fields map[string]struct{}) bool {
	for key := range table {
		if _, ok := fields[strings.ToLower(key)]; ok {
			return true
		}
	}
	return false
}

// strayVariant finds a table-valued key that is not a field of a flattened
// section, i.e. a variant that would otherwise be dropped.
func strayVariant(table map[string]any, fields map[string]struct{}) (string, bool) {
	names := make([]string, 0, len(table))
	for key, value := range table {
		if _, ok := fields[strings.ToLower(key)]; ok {
			continue
		}
		if _, ok := value.(map[string]any); ok {
			names = append(names, key)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}

// fieldNames lists the document keys of an input record, following squashed fields.
func fieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("mapstructure")
		name, opts, _ := strings.Cut(tag, ",")
		if strings.Contains(opts, "squash") {
			for n := range fieldNames(f.Type) {
				names[n] = struct{}{}
			}
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		names[name] = struct{}{}
	}
	return names
}

func (d *Decoder) decode(path string, input map[string]any, out any) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(d.hook),
		Metadata:   &md,
		Result:     out,
	})
	if err != nil {
		return &FieldError{Path: path, Err: err}
	}

	d.colorErr = nil
	if err := dec.Decode(input); err != nil {
		if d.colorErr != nil {
			return &FieldError{Path: path, Err: d.colorErr}
		}
		return &FieldError{Path: path, Err: err}
	}

	for _, key := range md.Unused {
		d.logger.Warn().Str("path", path).Str("field", key).Msg("ignoring unknown style field")
	}
	return nil
}

var (
	colorType      = reflect.TypeOf(color.Color{})
	railsType      = reflect.TypeOf([2]color.Color{})
	lengthType     = reflect.TypeOf(Length{})
	alignmentType  = reflect.TypeOf(Alignment(""))
	horizontalType = reflect.TypeOf(Horizontal(""))
	verticalType   = reflect.TypeOf(Vertical(""))
	vectorType     = reflect.TypeOf(Vector{})
	shapeType      = reflect.TypeOf(HandleShape{})
	fillModeType   = reflect.TypeOf(FillMode{})
)

// hook converts raw document values into the structured field types.
func (d *Decoder) hook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from == to {
		return data, nil
	}
	switch to {
	case colorType:
		c, err := color.Parse(data, d.aliases)
		if err != nil && d.colorErr == nil {
			d.colorErr = err
		}
		return c, err
	case railsType:
		items, ok := data.([]any)
		if !ok || len(items) != 2 {
			return nil, fmt.Errorf("expected a pair of colors, got %v", data)
		}
		return data, nil
	case lengthType:
		return parseLength(data)
	case alignmentType:
		return parseEnum(data, AlignStart, AlignCenter, AlignEnd, AlignFill)
	case horizontalType:
		return parseEnum(data, AlignLeft, AlignHCenter, AlignRight)
	case verticalType:
		return parseEnum(data, AlignTop, AlignVCenter, AlignBottom)
	case vectorType:
		return parseVector(data)
	case shapeType:
		return parseHandleShape(data)
	case fillModeType:
		return parseFillMode(data)
	}
	switch to.Kind() {
	case reflect.Uint16:
		return uint16Value(data)
	case reflect.Uint32:
		return uint32Value(data)
	}
	return data, nil
}

func parseEnum[T ~string](data any, allowed ...T) (T, error) {
	s, ok := data.(string)
	if !ok {
		return "", fmt.Errorf("expected one of %v, got %v", allowed, data)
	}
	for _, v := range allowed {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q, expected one of %v", s, allowed)
}

// tagged splits an externally tagged value such as {units = 100}.
func tagged(data any) (string, any, error) {
	if s, ok := data.(string); ok {
		return s, nil, nil
	}
	table, ok := data.(map[string]any)
	if !ok || len(table) != 1 {
		return "", nil, fmt.Errorf("expected a string or a single-key table, got %v", data)
	}
	for k, v := range table {
		return k, v, nil
	}
	return "", nil, nil
}

func parseLength(data any) (Length, error) {
	tag, value, err := tagged(data)
	if err != nil {
		return Length{}, err
	}
	switch tag {
	case "fill":
		return Length{Kind: LengthFill}, nil
	case "shrink":
		return Length{Kind: LengthShrink}, nil
	case "fill_portion", "units":
		n, err := uint16Value(value)
		if err != nil {
			return Length{}, fmt.Errorf("%s: %w", tag, err)
		}
		kind := LengthUnits
		if tag == "fill_portion" {
			kind = LengthFillPortion
		}
		return Length{Kind: kind, Value: n}, nil
	}
	return Length{}, fmt.Errorf("unknown variant %q, expected one of [fill fill_portion shrink units]", tag)
}

func parseVector(data any) (Vector, error) {
	switch v := data.(type) {
	case []any:
		if len(v) == 2 {
			x, xok := floatValue(v[0])
			y, yok := floatValue(v[1])
			if xok && yok {
				return Vector{X: x, Y: y}, nil
			}
		}
	case map[string]any:
		if len(v) == 2 {
			x, xok := floatValue(v["x"])
			y, yok := floatValue(v["y"])
			if xok && yok {
				return Vector{X: x, Y: y}, nil
			}
		}
	}
	return Vector{}, fmt.Errorf("expected [x, y] or {x, y}, got %v", data)
}

func parseHandleShape(data any) (HandleShape, error) {
	tag, value, err := tagged(data)
	if err != nil {
		return HandleShape{}, err
	}
	fields, _ := value.(map[string]any)
	switch tag {
	case "circle":
		radius, ok := floatValue(fields["radius"])
		if !ok {
			return HandleShape{}, fmt.Errorf("circle: missing field `radius`")
		}
		return HandleShape{Kind: ShapeCircle, Radius: radius}, nil
	case "rectangle":
		width, err := uint16Value(fields["width"])
		if err != nil {
			return HandleShape{}, fmt.Errorf("rectangle: width: %w", err)
		}
		radius, ok := floatValue(fields["border_radius"])
		if !ok {
			return HandleShape{}, fmt.Errorf("rectangle: missing field `border_radius`")
		}
		return HandleShape{Kind: ShapeRectangle, Width: width, BorderRadius: radius}, nil
	}
	return HandleShape{}, fmt.Errorf("unknown variant %q, expected one of [circle rectangle]", tag)
}

func parseFillMode(data any) (FillMode, error) {
	tag, value, err := tagged(data)
	if err != nil {
		return FillMode{}, err
	}
	switch tag {
	case "full":
		return FillMode{Kind: FillFull}, nil
	case "percent":
		p, ok := floatValue(value)
		if !ok {
			return FillMode{}, fmt.Errorf("percent: expected a number, got %v", value)
		}
		return FillMode{Kind: FillPercent, Percent: p}, nil
	case "padded":
		n, err := uint16Value(value)
		if err != nil {
			return FillMode{}, fmt.Errorf("padded: %w", err)
		}
		return FillMode{Kind: FillPadded, Start: n, End: n}, nil
	case "asymmetric_padding":
		pair, ok := value.([]any)
		if !ok || len(pair) != 2 {
			return FillMode{}, fmt.Errorf("asymmetric_padding: expected [start, end], got %v", value)
		}
		start, err := uint16Value(pair[0])
		if err != nil {
			return FillMode{}, fmt.Errorf("asymmetric_padding: %w", err)
		}
		end, err := uint16Value(pair[1])
		if err != nil {
			return FillMode{}, fmt.Errorf("asymmetric_padding: %w", err)
		}
		return FillMode{Kind: FillAsymmetricPadding, Start: start, End: end}, nil
	}
	return FillMode{}, fmt.Errorf("unknown variant %q, expected one of [full percent padded asymmetric_padding]", tag)
}

func floatValue(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case int64:
		return float32(n), true
	case int:
		return float32(n), true
	}
	return 0, false
}

func uint16Value(v any) (uint16, error) {
	var n int64
	switch x := v.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case uint64:
		if x > 0xffff {
			return 0, fmt.Errorf("%d out of range for u16", x)
		}
		n = int64(x)
	default:
		return 0, fmt.Errorf("expected an integer, got %v", v)
	}
	if n < 0 || n > 0xffff {
		return 0, fmt.Errorf("%d out of range for u16", n)
	}
	return uint16(n), nil
}

func uint32Value(v any) (uint32, error) {
	var n int64
	switch x := v.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case uint64:
		if x > 0xffffffff {
			return 0, fmt.Errorf("%d out of range for u32", x)
		}
		n = int64(x)
	default:
		return 0, fmt.Errorf("expected an integer, got %v", v)
	}
	if n < 0 || n > 0xffffffff {
		return 0, fmt.Errorf("%d out of range for u32", n)
	}
	return uint32(n), nil
}
