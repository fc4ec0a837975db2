package blend

// MixRGB blends the color (r, g, b) into the 3-byte pixel px with
// coverage a. px must hold at least 3 bytes.
func MixRGB(px []byte, r, g, b, a byte) {
	_ = px[2] // bounds check hint
	px[0] = Mix(px[0], r, a)
	px[1] = Mix(px[1], g, a)
	px[2] = Mix(px[2], b, a)
}

// FillRGB sets every 3-byte pixel of buf to (r, g, b).
func FillRGB(buf []byte, r, g, b byte) {
	if len(buf) < 3 {
		return
	}
	buf[0], buf[1], buf[2] = r, g, b
	// Double the filled prefix each round.
	for filled := 3; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}
