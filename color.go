package txt2png

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. The result is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// FromColor converts a standard color.Color to RGB, compositing it over
// black when it is not opaque.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ParseColor parses "#rgb", "#rrggbb" (the '#' is optional) or a
// decimal "r,g,b" triple with components in [0, 255].
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return parseTriple(s)
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3: // RGB
		var v uint64
		v, err = strconv.ParseUint(hex, 16, 16)
		r, g, b = (v>>8&0xf)*17, (v>>4&0xf)*17, (v&0xf)*17
	case 6: // RRGGBB
		var v uint64
		v, err = strconv.ParseUint(hex, 16, 32)
		r, g, b = v>>16&0xff, v>>8&0xff, v&0xff
	default:
		return RGB{}, fmt.Errorf("txt2png: invalid color %q", s)
	}
	if err != nil {
		return RGB{}, fmt.Errorf("txt2png: invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func parseTriple(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("txt2png: invalid color %q: want r,g,b", s)
	}
	var out [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("txt2png: invalid color %q: %w", s, err)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{0xff, 0xff, 0xff}
)
