package txt2png

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
)

var encoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// Encode writes pm to w as a PNG image.
// The pixmap is opaque, so the image is written as 8-bit RGB.
func Encode(w io.Writer, pm *Pixmap) error {
	if pm == nil || pm.Width() == 0 || pm.Height() == 0 {
		return ErrEmptyImage
	}
	if err := encoder.Encode(w, pm); err != nil {
		return fmt.Errorf("txt2png: encode png: %w", err)
	}
	return nil
}

// WritePNG writes the pixmap as PNG to w.
// This is useful for streaming, network output, or an open file.
func (p *Pixmap) WritePNG(w io.Writer) error {
	return Encode(w, p)
}

// EncodePNG returns the pixmap as PNG bytes.
func (p *Pixmap) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG writes the pixmap as PNG to the named file, creating or
// truncating it. If encoding fails the file is removed.
func (p *Pixmap) SavePNG(path string) (err error) {
	if p == nil || p.Width() == 0 || p.Height() == 0 {
		return ErrEmptyImage
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("txt2png: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("txt2png: close %s: %w", path, cerr)
		}
		if err != nil {
			err = errors.Join(err, removeIfExists(path))
		}
	}()

	return Encode(f, p)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
