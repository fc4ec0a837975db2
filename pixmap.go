package txt2png

import (
	"image"
	"image/color"

	"github.com/gogpu/txt2png/internal/blend"
)

// Pixmap is a rectangular 24-bit RGB pixel buffer with no alpha plane.
// Every pixel is fully opaque.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions, filled with
// black. Zero dimensions are valid; negative ones are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGB format, row-major).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * 3
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 3
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
}

// GetPixel returns the color of a single pixel, or black outside the
// pixmap.
func (p *Pixmap) GetPixel(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGB{}
	}
	i := (y*p.width + x) * 3
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGB) {
	blend.FillRGB(p.data, c.R, c.G, c.B)
}

// BlendMask paints c into r weighted by the alpha of mask, which is
// aligned so that r.Min corresponds to mp. It implements text.MaskBlender.
func (p *Pixmap) BlendMask(r image.Rectangle, mask image.Image, mp image.Point, c color.Color) {
	clipped := r.Intersect(p.Bounds())
	if clipped.Empty() {
		return
	}
	mp = mp.Add(clipped.Min.Sub(r.Min))
	col := FromColor(c)

	alpha, _ := mask.(*image.Alpha)
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		my := mp.Y + y - clipped.Min.Y
		row := p.data[y*p.width*3:]
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			mx := mp.X + x - clipped.Min.X
			var a uint8
			if alpha != nil {
				a = alpha.AlphaAt(mx, my).A
			} else {
				_, _, _, ma := mask.At(mx, my).RGBA()
				a = uint8(ma >> 8)
			}
			if a == 0 {
				continue
			}
			blend.MixRGB(row[x*3:], col.R, col.G, col.B, a)
		}
	}
}

// ToImage converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, j := 0, 0; i < len(p.data); i, j = i+3, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface. Alpha is dropped.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return RGBModel
}

// Opaque reports that every pixel is opaque. image/png uses it to write
// 24-bit RGB without an alpha channel.
func (p *Pixmap) Opaque() bool {
	return true
}

// RGBModel converts colors to RGB.
var RGBModel = color.ModelFunc(func(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	return FromColor(c)
})
