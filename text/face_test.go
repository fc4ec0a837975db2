package text

import (
	"errors"
	"math"
	"testing"
)

func TestFaceMetrics(t *testing.T) {
	src := goSource(t)
	face, err := src.Face(24, DefaultHints())
	if err != nil {
		t.Fatal(err)
	}
	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Ascent=%v Descent=%v, want positive", m.Ascent, m.Descent)
	}
	if m.LineGap < 0 {
		t.Errorf("LineGap = %v, want >= 0", m.LineGap)
	}
	if m.CapHeight <= 0 || m.CapHeight >= m.Ascent {
		t.Errorf("CapHeight = %v, want in (0, %v)", m.CapHeight, m.Ascent)
	}
	if m.XHeight <= 0 || m.XHeight >= m.CapHeight {
		t.Errorf("XHeight = %v, want in (0, %v)", m.XHeight, m.CapHeight)
	}
	if got := m.LineHeight(); got != m.Ascent+m.Descent+m.LineGap {
		t.Errorf("LineHeight() = %v", got)
	}

	// Metrics scale linearly with size, up to 26.6 rounding.
	big, err := src.Face(48, DefaultHints())
	if err != nil {
		t.Fatal(err)
	}
	if d := big.Metrics().Ascent - 2*m.Ascent; math.Abs(d) > 2.0/64 {
		t.Errorf("48pt ascent %v is not twice 24pt ascent %v", big.Metrics().Ascent, m.Ascent)
	}
}

func TestFaceAccessors(t *testing.T) {
	src := goSource(t)
	face, err := src.Face(10.5, Hints{Hinting: HintingFull})
	if err != nil {
		t.Fatal(err)
	}
	if face.Source() != src {
		t.Error("Source() mismatch")
	}
	if face.Size() != 10.5 {
		t.Errorf("Size() = %v", face.Size())
	}
	if got := face.Hints(); got != (Hints{Hinting: HintingFull, DPI: 72}) {
		t.Errorf("Hints() = %+v, want DPI defaulted to 72", got)
	}
}

func TestFaceHasGlyph(t *testing.T) {
	face, err := goSource(t).Face(12, DefaultHints())
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "Aaé€" {
		if !face.HasGlyph(r) {
			t.Errorf("HasGlyph(%q) = false", r)
		}
	}
	for _, r := range []rune{'\U0001F600', '世'} {
		if face.HasGlyph(r) {
			t.Errorf("HasGlyph(%U) = true", r)
		}
	}
}

func TestFaceInvalidSize(t *testing.T) {
	src := goSource(t)
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := src.Face(size, DefaultHints()); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%v) err = %v, want ErrInvalidSize", size, err)
		}
	}
	var nilSrc *FontSource
	if _, err := nilSrc.Face(12, DefaultHints()); !errors.Is(err, ErrNoSource) {
		t.Errorf("nil source err = %v, want ErrNoSource", err)
	}
}

func TestFaceOversize(t *testing.T) {
	src := goSource(t)
	tests := []struct {
		size float64
		dpi  float64
		ok   bool
	}{
		{MaxPixelsPerEm, 72, true},
		{MaxPixelsPerEm / 2, 144, true},
		{MaxPixelsPerEm + 1, 72, false},
		{MaxPixelsPerEm/2 + 1, 144, false},
		{17000, 72, false},
		{20000, 72, false},
		{30000, 72, false},
		{100000, 72, false},
	}
	for _, tt := range tests {
		face, err := src.Face(tt.size, Hints{DPI: tt.dpi})
		if !tt.ok {
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Face(%v @ %v DPI) err = %v, want ErrInvalidSize", tt.size, tt.dpi, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Face(%v @ %v DPI): %v", tt.size, tt.dpi, err)
			continue
		}
		m := face.Metrics()
		if m.Ascent <= 0 || m.Descent <= 0 || m.LineHeight() <= 0 {
			t.Errorf("Face(%v @ %v DPI) metrics %+v, want positive", tt.size, tt.dpi, m)
		}
	}
}

func TestFaceMetricsGrowUpToLimit(t *testing.T) {
	src := goSource(t)
	prev := 0.0
	for size := 256.0; size <= MaxPixelsPerEm; size *= 2 {
		face, err := src.Face(size, DefaultHints())
		if err != nil {
			t.Fatalf("Face(%v): %v", size, err)
		}
		h := face.Metrics().LineHeight()
		if h <= prev {
			t.Errorf("line height at %vpt = %v, not above %v", size, h, prev)
		}
		prev = h
	}
}
