package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	index  int
	origin Origin
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{}
}

// WithIndex selects a face inside a font collection (.ttc/.otc).
// It must be 0 for single fonts.
func WithIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.index = i
	}
}

// WithOrigin records the strategy and location a source came from.
func WithOrigin(strategy, location string) SourceOption {
	return func(c *sourceConfig) {
		c.origin = Origin{Strategy: strategy, Location: location}
	}
}

func withLocation(location string) SourceOption {
	return func(c *sourceConfig) {
		c.origin.Location = location
	}
}

// Hints are the rendering-quality settings a Face is built with.
// Measurement and drawing both go through the same Face, so they always
// agree on hints.
type Hints struct {
	// Hinting selects how glyph outlines and metrics are quantized.
	// HintingNone keeps fractional metrics.
	Hinting Hinting

	// DPI is the output resolution. At 72 DPI one point is one pixel.
	DPI float64
}

// DefaultHints returns the highest-quality settings: no hinting
// (fractional metrics) at 72 DPI. Coverage is always antialiased.
func DefaultHints() Hints {
	return Hints{
		Hinting: HintingNone,
		DPI:     72,
	}
}

func (h Hints) normalized() Hints {
	if h.DPI <= 0 {
		h.DPI = 72
	}
	return h
}
