package text

import (
	"math"
)

// Metrics holds font metrics at a specific size.
// These metrics are derived from the font file and scaled to the face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	// This is the maximum height a glyph can reach above the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive, below baseline).
	// This is the maximum depth a glyph can reach below the baseline.
	Descent float64

	// LineGap is the recommended gap between lines (leading).
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Extent is the measured size of a string in a Face.
type Extent struct {
	// Bounds is the tight ink box relative to the origin on the
	// baseline. MinX is negative when the first glyph has a negative
	// left-side bearing. Bounds is zero for strings without ink.
	Bounds Rect

	// Advance is how far the pen moves when drawing the string.
	Advance float64

	// Metrics are the face's metrics; they do not depend on the string.
	Metrics Metrics
}

// Width returns the canvas width for the string: the ceiling of the
// ink width.
func (e Extent) Width() int {
	return int(math.Ceil(e.Bounds.Width()))
}

// Height returns the canvas height for the face. It only depends on the
// font and size, so every string measured in the same face gets the
// same height and shares a baseline.
func (e Extent) Height() int {
	return int(math.Ceil(e.Metrics.LineHeight()))
}

// Measure returns the extent of s in face.
// An empty string has zero width and the face's usual height.
func Measure(s string, face *Face) Extent {
	if face == nil {
		return Extent{}
	}

	ink, advance := face.bounds(s)

	return Extent{
		Bounds:  rectFromFixed(ink),
		Advance: fixedToFloat64(advance),
		Metrics: face.Metrics(),
	}
}
