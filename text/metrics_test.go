package text

import (
	"math"
	"testing"
)

func goFace(t testing.TB, size float64) *Face {
	t.Helper()
	face, err := goSource(t).Face(size, DefaultHints())
	if err != nil {
		t.Fatal(err)
	}
	return face
}

func TestMeasureHeightIndependentOfText(t *testing.T) {
	face := goFace(t, 24)
	want := Measure("A", face).Height()
	for _, s := range []string{"gjpqy", "Ég", "....", "", " "} {
		if got := Measure(s, face).Height(); got != want {
			t.Errorf("Height(%q) = %d, want %d", s, got, want)
		}
	}
	m := face.Metrics()
	if want != int(math.Ceil(m.Ascent+m.Descent+m.LineGap)) {
		t.Errorf("Height() = %d, want ceil of line height %v", want, m.LineHeight())
	}
}

func TestMeasureInkBounds(t *testing.T) {
	face := goFace(t, 24)

	ext := Measure("Hello", face)
	if ext.Bounds.Empty() {
		t.Fatal("empty bounds for Hello")
	}
	if ext.Width() != int(math.Ceil(ext.Bounds.Width())) {
		t.Errorf("Width() = %d, want ceil(%v)", ext.Width(), ext.Bounds.Width())
	}
	// Ink sits above the baseline for text without descenders.
	if ext.Bounds.MinY >= 0 || ext.Bounds.MaxY > 1 {
		t.Errorf("Hello bounds %+v", ext.Bounds)
	}
	if -ext.Bounds.MinY > ext.Metrics.Ascent {
		t.Errorf("ink top %v above ascent %v", -ext.Bounds.MinY, ext.Metrics.Ascent)
	}

	g := Measure("g", face)
	if g.Bounds.MaxY <= 0 {
		t.Errorf("descender bounds %+v should extend below the baseline", g.Bounds)
	}

	// Ink width differs from the advance by the side bearings.
	if ext.Advance <= 0 || ext.Advance == ext.Bounds.Width() {
		t.Errorf("Advance = %v, ink width = %v", ext.Advance, ext.Bounds.Width())
	}
}

func TestMeasureEmpty(t *testing.T) {
	face := goFace(t, 24)
	ext := Measure("", face)
	if ext.Width() != 0 || ext.Advance != 0 {
		t.Errorf("empty string: Width()=%d Advance=%v", ext.Width(), ext.Advance)
	}
	if ext.Height() <= 0 {
		t.Errorf("empty string: Height() = %d, want > 0", ext.Height())
	}

	// A space has advance but no ink.
	sp := Measure(" ", face)
	if sp.Width() != 0 || sp.Advance <= 0 {
		t.Errorf("space: Width()=%d Advance=%v", sp.Width(), sp.Advance)
	}

	if got := Measure("x", nil); got != (Extent{}) {
		t.Errorf("Measure with nil face = %+v", got)
	}
}

func TestMeasureWidthGrows(t *testing.T) {
	face := goFace(t, 16)
	prev := 0
	for _, s := range []string{"i", "ii", "iii", "iiii"} {
		w := Measure(s, face).Width()
		if w <= prev {
			t.Errorf("Width(%q) = %d, not greater than %d", s, w, prev)
		}
		prev = w
	}
}

func TestMeasureHeightGrowsWithSize(t *testing.T) {
	src := goSource(t)
	prev := 0
	for _, size := range []float64{6, 9, 12, 18, 36, 72} {
		face, err := src.Face(size, DefaultHints())
		if err != nil {
			t.Fatal(err)
		}
		h := Measure("A", face).Height()
		if h <= prev {
			t.Errorf("%vpt height %d not greater than %d", size, h, prev)
		}
		prev = h
	}
}

func BenchmarkMeasure(b *testing.B) {
	face := goFace(b, 24)
	b.ReportAllocs()
	for b.Loop() {
		_ = Measure("Hello, World!", face)
	}
}
