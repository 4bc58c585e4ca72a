package color

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrAliasNotFound is returned when a name matches no built-in or document alias.
var ErrAliasNotFound = errors.New("cannot find color alias")

// Resolver resolves an alias name to a color.
type Resolver interface {
	Resolve(name string) (Color, error)
}

// builtin holds the compiled-in named colors, keyed by lower-case name.
var builtin = func() map[string]Color {
	m := make(map[string]Color, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = RGBA8(c.R, c.G, c.B, float32(c.A)/255)
	}
	m["transparent"] = Transparent
	return m
}()

// Builtin looks up a compiled-in named color.
func Builtin(name string) (Color, bool) {
	c, ok := builtin[strings.ToLower(name)]
	return c, ok
}

// BuiltinNames returns the compiled-in alias names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases is the alias table for one document. Names defined on it shadow
// built-in names. An Aliases is owned by a single parse and is not safe for
// concurrent mutation; once parsing is done it is only read.
type Aliases struct {
	local map[string]Color
}

// NewAliases returns an empty document alias table.
func NewAliases() *Aliases {
	return &Aliases{local: make(map[string]Color)}
}

// Define adds or replaces a document alias. The name is stored lower-cased.
func (a *Aliases) Define(name string, c Color) {
	a.local[strings.ToLower(name)] = c
}

// Resolve looks name up as written and then lower-cased.
func (a *Aliases) Resolve(name string) (Color, error) {
	if c, ok := a.lookup(name); ok {
		return c, nil
	}
	if lower := strings.ToLower(name); lower != name {
		if c, ok := a.lookup(lower); ok {
			return c, nil
		}
	}
	return Color{}, fmt.Errorf("%w '%s'", ErrAliasNotFound, strings.ToLower(name))
}

func (a *Aliases) lookup(key string) (Color, bool) {
	if a != nil {
		if c, ok := a.local[key]; ok {
			return c, true
		}
	}
	c, ok := builtin[key]
	return c, ok
}

// Len returns the number of document aliases.
func (a *Aliases) Len() int {
	if a == nil {
		return 0
	}
	return len(a.local)
}

// Names returns the document alias names in sorted order.
func (a *Aliases) Names() []string {
	if a == nil {
		return nil
	}
	names := make([]string, 0, len(a.local))
	for name := range a.local {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the document aliases.
func (a *Aliases) Map() map[string]Color {
	out := make(map[string]Color, a.Len())
	if a == nil {
		return out
	}
	for name, c := range a.local {
		out[name] = c
	}
	return out
}
