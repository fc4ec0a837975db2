package text

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// MaxPixelsPerEm bounds the scaled em square of a Face. Larger sizes
// overflow the 26.6 fixed-point metrics of the glyph rasterizer and
// would allocate canvases of hundreds of megabytes.
const MaxPixelsPerEm = 4096

// Face is a FontSource instantiated at a specific point size.
// Measure and Draw both use the same underlying glyph face, so measured
// ink bounds always match drawn pixels.
//
// Face is cheap to create but not safe for concurrent use.
type Face struct {
	source  *FontSource
	size    float64
	hints   Hints
	face    font.Face
	metrics Metrics
}

func newFace(s *FontSource, size float64, hints Hints) (*Face, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	hints = hints.normalized()
	if ppem := size * hints.DPI / 72; ppem > MaxPixelsPerEm {
		return nil, fmt.Errorf("%w: %vpt at %v DPI exceeds %d pixels per em",
			ErrInvalidSize, size, hints.DPI, MaxPixelsPerEm)
	}

	otFace, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     hints.DPI,
		Hinting: hints.Hinting.xHinting(),
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	m := otFace.Metrics()
	if m.Ascent <= 0 || m.Descent < 0 || m.Height <= 0 {
		otFace.Close()
		return nil, fmt.Errorf("%w: %vpt yields ascent %v, descent %v, height %v",
			ErrInvalidSize, size, m.Ascent, m.Descent, m.Height)
	}

	return &Face{
		source:  s,
		size:    size,
		hints:   hints,
		face:    otFace,
		metrics: metricsFrom(m),
	}, nil
}

// metricsFrom converts x/image metrics, where Height is the baseline to
// baseline distance, into Metrics with an explicit line gap.
func metricsFrom(m font.Metrics) Metrics {
	lineGap := m.Height - m.Ascent - m.Descent
	if lineGap < 0 {
		// Height is scaled separately and can lose 1/64 to rounding.
		lineGap = 0
	}
	return Metrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		LineGap:   fixedToFloat64(lineGap),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Hints returns the rendering hints this face was built with.
func (f *Face) Hints() Hints {
	return f.hints
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	idx, err := f.source.font.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

// bounds returns the ink bounds of s drawn at the origin, and the
// advance. Kerning is applied exactly as in Draw.
func (f *Face) bounds(s string) (fixed.Rectangle26_6, fixed.Int26_6) {
	return font.BoundString(f.face, s)
}
