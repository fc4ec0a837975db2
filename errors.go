package txt2png

import (
	"errors"
	"fmt"
)

// Sentinel errors for the txt2png package.
var (
	// ErrNoFontName is matched (errors.Is) by the InvalidConfigurationError
	// returned when a request has no font name.
	ErrNoFontName = errors.New("txt2png: no font name given")

	// ErrEmptyImage is returned when encoding an image with no pixels.
	// PNG cannot represent zero-width or zero-height images.
	ErrEmptyImage = errors.New("txt2png: cannot encode an empty image")
)

// InvalidConfigurationError is returned when a request cannot be
// rendered because of its configuration. It is returned before anything
// is drawn.
type InvalidConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("txt2png: invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}
