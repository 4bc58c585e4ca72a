package style

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/opencode-ai/stylecfg/internal/color"
)

// Field is one leaf value of a resolved sheet, for display.
type Field struct {
	// Path is the dotted snake_case path, e.g. "style.hovered.border_color".
	Path  string
	Value string
	// Color is set when the leaf is a color that is present.
	Color *color.Color
}

// Describe flattens a resolved sheet into display rows in field order.
// Unset layout fields are reported with the value "-".
func Describe(sheet any) []Field {
	var fields []Field
	describe(&fields, "", reflect.ValueOf(sheet))
	return fields
}

const unset = "-"

var (
	optionalType = reflect.TypeOf(color.Optional{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	leafTypes    = map[reflect.Type]bool{vectorType: true, shapeType: true, fillModeType: true}
)

func describe(out *[]Field, path string, v reflect.Value) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			*out = append(*out, Field{Path: path, Value: unset})
			return
		}
		v = v.Elem()
	}

	t := v.Type()
	switch {
	case t == colorType:
		c := v.Interface().(color.Color)
		*out = append(*out, Field{Path: path, Value: c.String(), Color: &c})
		return
	case t == optionalType:
		o := v.Interface().(color.Optional)
		if c, ok := o.Get(); ok {
			*out = append(*out, Field{Path: path, Value: c.String(), Color: &c})
		} else {
			*out = append(*out, Field{Path: path, Value: "none"})
		}
		return
	case leafTypes[t]:
		*out = append(*out, Field{Path: path, Value: formatLeaf(v)})
		return
	case t.Implements(stringerType):
		*out = append(*out, Field{Path: path, Value: v.Interface().(fmt.Stringer).String()})
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			describe(out, join(path, snake(f.Name)), v.Field(i))
		}
	case reflect.Array, reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			describe(out, join(path, strconv.Itoa(i)), v.Index(i))
		}
	case reflect.Float32, reflect.Float64:
		*out = append(*out, Field{Path: path, Value: strconv.FormatFloat(v.Float(), 'g', -1, 32)})
	default:
		*out = append(*out, Field{Path: path, Value: fmt.Sprint(v.Interface())})
	}
}

func formatLeaf(v reflect.Value) string {
	switch x := v.Interface().(type) {
	case Vector:
		return fmt.Sprintf("(%g, %g)", x.X, x.Y)
	case HandleShape:
		if x.Kind == ShapeCircle {
			return fmt.Sprintf("circle(radius=%g)", x.Radius)
		}
		return fmt.Sprintf("rectangle(width=%d, border_radius=%g)", x.Width, x.BorderRadius)
	case FillMode:
		switch x.Kind {
		case FillPercent:
			return fmt.Sprintf("percent(%g)", x.Percent)
		case FillPadded:
			return fmt.Sprintf("padded(%d)", x.Start)
		case FillAsymmetricPadding:
			return fmt.Sprintf("asymmetric_padding(%d, %d)", x.Start, x.End)
		}
		return "full"
	}
	return fmt.Sprint(v.Interface())
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// snake converts an exported Go field name to the document's key style.
func snake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
