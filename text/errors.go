package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoMatch is returned by a Strategy that has nothing for the
	// requested name. The Resolver moves on to the next strategy.
	ErrNoMatch = errors.New("text: no match")

	// ErrNoSource is returned when a face is derived before any font
	// has been resolved.
	ErrNoSource = errors.New("text: no font source")

	// ErrInvalidSize is returned for point sizes that are not finite
	// and positive.
	ErrInvalidSize = errors.New("text: invalid font size")
)

// FontNotFoundError is returned when no resolution strategy could
// locate the requested font.
type FontNotFoundError struct {
	// Name is the font name exactly as requested.
	Name string
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("text: can't locate font %q", e.Name)
}

// FontFormatError is returned when a font resource was found but
// could not be parsed as a TrueType or OpenType font.
type FontFormatError struct {
	Name     string // requested font name
	Location string // where the resource was found
	Err      error
}

func (e *FontFormatError) Error() string {
	return fmt.Sprintf("text: invalid font %q at %s: %v", e.Name, e.Location, e.Err)
}

func (e *FontFormatError) Unwrap() error {
	return e.Err
}
