package text

import (
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestHintingString(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
		x    font.Hinting
	}{
		{HintingNone, "None", font.HintingNone},
		{HintingVertical, "Vertical", font.HintingVertical},
		{HintingFull, "Full", font.HintingFull},
		{Hinting(99), "Unknown", font.HintingNone},
	}

	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
		if got := tt.h.xHinting(); got != tt.x {
			t.Errorf("Hinting(%d).xHinting() = %v, want %v", tt.h, got, tt.x)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: -1.5, MinY: -10, MaxX: 20.25, MaxY: 3}
	if got := r.Width(); got != 21.75 {
		t.Errorf("Width() = %v, want 21.75", got)
	}
	if got := r.Height(); got != 13 {
		t.Errorf("Height() = %v, want 13", got)
	}
	if r.Empty() {
		t.Error("Empty() = true for a non-empty rect")
	}
	if !(Rect{}).Empty() {
		t.Error("zero Rect should be empty")
	}
}

func TestFixedConversions(t *testing.T) {
	tests := []struct {
		f float64
		x fixed.Int26_6
	}{
		{0, 0},
		{1, 64},
		{-1, -64},
		{0.5, 32},
		{10.015625, 641},
		{-3.25, -208},
	}
	for _, tt := range tests {
		if got := float64ToFixed(tt.f); got != tt.x {
			t.Errorf("float64ToFixed(%v) = %v, want %v", tt.f, got, tt.x)
		}
		if got := fixedToFloat64(tt.x); got != tt.f {
			t.Errorf("fixedToFloat64(%v) = %v, want %v", tt.x, got, tt.f)
		}
	}

	r := rectFromFixed(fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: -32, Y: -640},
		Max: fixed.Point26_6{X: 1280, Y: 128},
	})
	if r != (Rect{MinX: -0.5, MinY: -10, MaxX: 20, MaxY: 2}) {
		t.Errorf("rectFromFixed = %+v", r)
	}
}

func TestDefaultHints(t *testing.T) {
	h := DefaultHints()
	if h.Hinting != HintingNone || h.DPI != 72 {
		t.Errorf("DefaultHints() = %+v", h)
	}
	if got := (Hints{DPI: -5}).normalized().DPI; got != 72 {
		t.Errorf("normalized DPI = %v, want 72", got)
	}
	if got := (Hints{DPI: 300}).normalized().DPI; got != 300 {
		t.Errorf("normalized DPI = %v, want 300", got)
	}
}
