package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting. Glyph positions and metrics keep
	// their fractional parts, which is what text rendering here uses by
	// default.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// xHinting converts Hinting to font.Hinting.
func (h Hinting) xHinting() font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// Rect is an axis-aligned rectangle in pixels.
// Y grows downwards, so MinY is negative for ink above the baseline.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// rectFromFixed converts a 26.6 rectangle without loss.
func rectFromFixed(r fixed.Rectangle26_6) Rect {
	return Rect{
		MinX: fixedToFloat64(r.Min.X),
		MinY: fixedToFloat64(r.Min.Y),
		MaxX: fixedToFloat64(r.Max.X),
		MaxY: fixedToFloat64(r.Max.Y),
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// float64ToFixed converts a float64 to fixed.Int26_6, rounding to the
// nearest 1/64. Values produced by fixedToFloat64 round-trip exactly.
func float64ToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
