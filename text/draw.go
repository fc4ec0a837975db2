package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/fixed"
)

// MaskBlender is implemented by destinations that composite glyph
// coverage masks themselves. Draw uses it instead of image/draw when
// available.
type MaskBlender interface {
	// BlendMask paints c into r, weighting each pixel by the alpha of
	// mask at the corresponding point relative to mp.
	BlendMask(r image.Rectangle, mask image.Image, mp image.Point, c color.Color)
}

// Draw renders text to a destination image.
// Position (x, y) is the baseline origin. Kerning and glyph placement
// match Measure exactly.
func Draw(dst draw.Image, s string, face *Face, x, y float64, col color.Color) {
	if s == "" || face == nil || dst == nil {
		return
	}

	blender, _ := dst.(MaskBlender)
	var src image.Image
	if blender == nil {
		src = image.NewUniform(col)
	}

	dot := fixed.Point26_6{X: float64ToFixed(x), Y: float64ToFixed(y)}
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot.X += face.face.Kern(prev, r)
		}
		// The mask is owned by the face and reused by the next call.
		dr, mask, maskp, advance, _ := face.face.Glyph(dot, r)
		if !dr.Empty() {
			if blender != nil {
				blender.BlendMask(dr, mask, maskp, col)
			} else {
				draw.DrawMask(dst, dr, src, image.Point{}, mask, maskp, draw.Over)
			}
		}
		dot.X += advance
		prev = r
	}
}
