package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHex is returned for a hex channel without a 0x prefix or with bad digits.
	ErrInvalidHex = errors.New("invalid hex")
	// ErrNoMatch is returned when a value has none of the color literal shapes.
	ErrNoMatch = errors.New("no color literal form matches")
)

// ParseError describes a color literal that could not be turned into a Color.
type ParseError struct {
	Value any
	Err   error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a decoded document value into a Color. Shapes are tried in
// this order:
//
//  1. string: alias name
//  2. [r, g, b] floats, or ["0xRR", "0xGG", "0xBB"]
//  3. [r, g, b, a] floats, or ["0xRR", "0xGG", "0xBB", a]
//  4. {rgb = "alias", a = alpha}
//  5. {r, g, b[, a]} with float or hex channels
//
// Three-element arrays share a shape, so the element type decides between
// the float and hex forms. Alpha is always a float, even next to hex
// channels.
func Parse(value any, r Resolver) (Color, error) {
	c, err := parse(value, r)
	if err != nil {
		return Color{}, &ParseError{Value: value, Err: err}
	}
	return c, nil
}

func parse(value any, r Resolver) (Color, error) {
	switch v := value.(type) {
	case Color:
		return v, nil
	case string:
		return resolve(v, r)
	case []any:
		return parseList(v)
	case map[string]any:
		return parseTable(v, r)
	}
	return Color{}, fmt.Errorf("%w %v", ErrNoMatch, value)
}

func resolve(name string, r Resolver) (Color, error) {
	if r == nil {
		r = (*Aliases)(nil)
	}
	return r.Resolve(name)
}

func parseList(items []any) (Color, error) {
	if len(items) != 3 && len(items) != 4 {
		return Color{}, fmt.Errorf("%w %v", ErrNoMatch, items)
	}
	if channels, ok := numbers(items); ok {
		if len(channels) == 3 {
			return RGB(channels[0], channels[1], channels[2]), nil
		}
		return RGBA(channels[0], channels[1], channels[2], channels[3]), nil
	}
	if _, ok := items[0].(string); !ok {
		return Color{}, fmt.Errorf("%w %v", ErrNoMatch, items)
	}
	rgb, err := hexChannels(items[0], items[1], items[2])
	if err != nil {
		return Color{}, err
	}
	if len(items) == 3 {
		return RGB8(rgb[0], rgb[1], rgb[2]), nil
	}
	a, err := alpha(items[3])
	if err != nil {
		return Color{}, err
	}
	return RGBA8(rgb[0], rgb[1], rgb[2], a), nil
}

func parseTable(table map[string]any, r Resolver) (Color, error) {
	if name, ok := table["rgb"]; ok && len(table) == 2 {
		alias, ok := name.(string)
		if !ok {
			return Color{}, fmt.Errorf("%w %v", ErrNoMatch, table)
		}
		a, err := alpha(table["a"])
		if err != nil {
			return Color{}, err
		}
		base, err := resolve(alias, r)
		if err != nil {
			return Color{}, err
		}
		return base.WithAlpha(a), nil
	}

	rv, rok := table["r"]
	gv, gok := table["g"]
	bv, bok := table["b"]
	av, aok := table["a"]
	want := 3
	if aok {
		want = 4
	}
	if !rok || !gok || !bok || len(table) != want {
		return Color{}, fmt.Errorf("%w %v", ErrNoMatch, table)
	}

	if channels, ok := numbers([]any{rv, gv, bv}); ok {
		c := RGB(channels[0], channels[1], channels[2])
		if aok {
			a, ok := number(av)
			if !ok {
				return Color{}, fmt.Errorf("%w %v", ErrNoMatch, table)
			}
			c.A = a
		}
		return c, nil
	}

	rgb, err := hexChannels(rv, gv, bv)
	if err != nil {
		return Color{}, err
	}
	c := RGB8(rgb[0], rgb[1], rgb[2])
	if aok {
		a, err := alpha(av)
		if err != nil {
			return Color{}, err
		}
		c.A = a
	}
	return c, nil
}

func hexChannels(values ...any) ([3]uint8, error) {
	var out [3]uint8
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return out, fmt.Errorf("%w %v", ErrNoMatch, values)
		}
		b, err := ParseHex(s)
		if err != nil {
			return out, err
		}
		out[i] = b
	}
	return out, nil
}

// ParseHex parses a single 0x-prefixed hex byte such as "0xff".
func ParseHex(s string) (uint8, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(digits, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidHex, s)
	}
	return uint8(v), nil
}

// alpha accepts a number or a numeric string.
func alpha(v any) (float32, error) {
	if f, ok := number(v); ok {
		return f, nil
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha %q: %w", s, err)
		}
		return float32(f), nil
	}
	return 0, fmt.Errorf("invalid alpha %v", v)
}

func numbers(values []any) ([]float32, bool) {
	out := make([]float32, len(values))
	for i, v := range values {
		f, ok := number(v)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func number(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case int32:
		return float32(n), true
	case uint64:
		return float32(n), true
	case uint32:
		return float32(n), true
	case uint8:
		return float32(n), true
	}
	return 0, false
}
