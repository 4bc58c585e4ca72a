package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// BuiltinNames returns the names of the themes bundled with the binary.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}

// Builtin parses a bundled theme by name.
func Builtin(name string) (*Theme, error) {
	data, err := BuiltinSource(name)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse builtin theme %s: %w", name, err)
	}
	return t, nil
}

// BuiltinSource returns the raw document of a bundled theme.
func BuiltinSource(name string) ([]byte, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	data, err := builtinFS.ReadFile("builtin/" + name + ".toml")
	if err != nil {
		return nil, ioError("builtin:"+name, err)
	}
	return data, nil
}
