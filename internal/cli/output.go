package cli

import (
	"encoding/json"
	"io"
)

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// WriteOutput writes v as indented JSON.
func WriteOutput(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeJSONLine writes v as a single JSON line, for streams.
func writeJSONLine(out io.Writer, v any) error {
	return json.NewEncoder(out).Encode(v)
}
