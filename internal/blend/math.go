// Package blend composites antialiased glyph coverage onto opaque
// 24-bit pixels using exact integer arithmetic, so that identical
// inputs always produce identical bytes.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255, rounding to nearest, without a division.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// Exact for every x in [0, 255*255].
func div255(x uint16) uint16 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// Mix returns src weighted by coverage a over dst:
// round((src*a + dst*(255-a)) / 255).
func Mix(dst, src, a byte) byte {
	switch a {
	case 0:
		return dst
	case 255:
		return src
	}
	return byte(div255(uint16(src)*uint16(a) + uint16(dst)*uint16(255-a)))
}
