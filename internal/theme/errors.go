package theme

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/stylecfg/internal/color"
)

// Error kinds, matched with errors.Is.
var (
	ErrIO     = errors.New("theme io error")
	ErrFormat = errors.New("theme format error")
	ErrColor  = errors.New("theme color error")
)

// Error is returned by every parse entry point. Kind is one of ErrIO,
// ErrFormat or ErrColor.
type Error struct {
	Kind error
	Path string
	err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.err)
	}
	return e.err.Error()
}

// Is matches the error kind. IO errors also match the underlying cause,
// so errors.Is(err, fs.ErrNotExist) works.
func (e *Error) Is(target error) bool {
	if target == e.Kind {
		return true
	}
	if e.Kind == ErrIO {
		return errors.Is(e.err, target)
	}
	return false
}

func ioError(path string, err error) error {
	return &Error{Kind: ErrIO, Path: path, err: err}
}

func formatError(err error) error {
	return &Error{Kind: ErrFormat, err: err}
}

// decodeError classifies a style decoding failure.
func decodeError(err error) error {
	var pe *color.ParseError
	if errors.As(err, &pe) {
		return &Error{Kind: ErrColor, err: err}
	}
	return formatError(err)
}
