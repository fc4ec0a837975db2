package blend

import (
	"testing"
)

// TestDiv255 checks rounding division for every blend input.
func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		expected := (x + 127) / 255
		got := int(div255(uint16(x)))
		if got != expected {
			t.Fatalf("div255(%d) = %d, want %d", x, got, expected)
		}
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name        string
		dst, src, a byte
		expected    byte
	}{
		{"no coverage", 200, 10, 0, 200},
		{"full coverage", 200, 10, 255, 10},
		{"half black on white", 255, 0, 128, 127},
		{"half white on black", 0, 255, 128, 128},
		{"same color", 77, 77, 99, 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(tt.dst, tt.src, tt.a); got != tt.expected {
				t.Errorf("Mix(%d, %d, %d) = %d, want %d", tt.dst, tt.src, tt.a, got, tt.expected)
			}
		})
	}
}

// TestMixMonotonic checks that more coverage never moves a pixel away
// from the source color.
func TestMixMonotonic(t *testing.T) {
	prev := Mix(255, 0, 0)
	for a := 1; a <= 255; a++ {
		got := Mix(255, 0, byte(a))
		if got > prev {
			t.Fatalf("Mix(255, 0, %d) = %d, greater than %d at a=%d", a, got, prev, a-1)
		}
		prev = got
	}
}

func TestMixRGB(t *testing.T) {
	px := []byte{255, 255, 255}
	MixRGB(px, 0, 0, 0, 255)
	if px[0] != 0 || px[1] != 0 || px[2] != 0 {
		t.Errorf("full coverage: got %v, want [0 0 0]", px)
	}

	px = []byte{0, 0, 0}
	MixRGB(px, 255, 128, 0, 0)
	if px[0] != 0 || px[1] != 0 || px[2] != 0 {
		t.Errorf("zero coverage: got %v, want [0 0 0]", px)
	}
}

func TestFillRGB(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 7} {
		buf := make([]byte, n*3)
		FillRGB(buf, 1, 2, 3)
		for i := 0; i < len(buf); i += 3 {
			if buf[i] != 1 || buf[i+1] != 2 || buf[i+2] != 3 {
				t.Fatalf("n=%d: pixel %d = %v, want [1 2 3]", n, i/3, buf[i:i+3])
			}
		}
	}
}
