package txt2png

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/txt2png/text"
)

// FontSpec names a font and a point size.
type FontSpec struct {
	Name string
	Size float64
}

// String returns "<name>, <size>pt".
func (s FontSpec) String() string {
	return s.Name + ", " + strconv.FormatFloat(s.Size, 'g', -1, 64) + "pt"
}

func (s FontSpec) validate() error {
	if s.Name == "" {
		return &InvalidConfigurationError{Field: "font name", Reason: "must not be empty", Err: ErrNoFontName}
	}
	if math.IsNaN(s.Size) || math.IsInf(s.Size, 0) || s.Size <= 0 {
		return &InvalidConfigurationError{
			Field:  "font size",
			Reason: fmt.Sprintf("%v is not a positive finite number", s.Size),
			Err:    text.ErrInvalidSize,
		}
	}
	return nil
}

// Request is everything needed to render one image.
// A Request is a plain value; rendering never modifies it.
type Request struct {
	Font       FontSpec
	Text       string
	Foreground RGB
	Background RGB
}

// NewRequest returns a request for black text on a white background.
func NewRequest(name string, size float64, s string) Request {
	return Request{
		Font:       FontSpec{Name: name, Size: size},
		Text:       s,
		Foreground: Black,
		Background: White,
	}
}

// String returns "<name>, <size>pt: <text>".
func (r Request) String() string {
	return r.Font.String() + ": " + r.Text
}

// Factory renders text into images.
//
// A Factory memoizes resolved fonts by name and sized faces by
// (font, size), so rendering many labels with the same font only parses
// it once. A Factory is not safe for concurrent use; create one per
// goroutine.
type Factory struct {
	resolver *text.Resolver
	faces    *text.SizedCache
	form     *norm.Form
	logger   *slog.Logger
}

// New creates a Factory.
//
// By default fonts are looked up in the bundled font set, then among
// installed fonts by exact family name, then as a file path.
func New(opts ...Option) *Factory {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Factory{
		resolver: text.NewResolver(cfg.resolverStrategies()...),
		faces:    text.NewSizedCache(cfg.cacheLimit, cfg.hints),
		form:     cfg.form,
		logger:   cfg.logger,
	}
}

func (f *Factory) log() *slog.Logger {
	if f.logger != nil {
		return f.logger
	}
	return Logger()
}

// Resolver returns the font resolver used by f.
func (f *Factory) Resolver() *text.Resolver {
	return f.resolver
}

// Faces returns the sized face cache used by f.
func (f *Factory) Faces() *text.SizedCache {
	return f.faces
}

// Face returns the sized face for spec, resolving the font on first use.
func (f *Factory) Face(spec FontSpec) (*text.Face, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	src, err := f.resolver.Resolve(spec.Name)
	if err != nil {
		return nil, err
	}
	face, err := f.faces.Derive(src, spec.Size)
	if errors.Is(err, text.ErrInvalidSize) {
		return nil, &InvalidConfigurationError{Field: "font size", Reason: err.Error(), Err: err}
	}
	return face, err
}

// Measure returns the extent s would have when rendered with spec.
// Width and Height of the result are the dimensions Render produces.
func (f *Factory) Measure(spec FontSpec, s string) (text.Extent, error) {
	face, err := f.Face(spec)
	if err != nil {
		return text.Extent{}, err
	}
	return text.Measure(f.normalize(s), face), nil
}

// Render draws req.Text on a canvas sized to fit it exactly.
//
// The canvas is as wide as the ink of the text (rounded up) and as tall
// as the font's line height at the requested size, so every string
// rendered with the same FontSpec has the same height. The baseline sits
// at the font ascent and the leftmost ink touches column 0.
//
// Empty text yields a zero-width image of full height. Such an image has
// no pixels, so EncodePNG, WritePNG and SavePNG reject it with
// ErrEmptyImage.
func (f *Factory) Render(req Request) (*Pixmap, error) {
	face, err := f.Face(req.Font)
	if err != nil {
		return nil, err
	}
	s := f.normalize(req.Text)
	ext := text.Measure(s, face)
	if ext.Height() <= 0 || ext.Width() < 0 {
		return nil, &InvalidConfigurationError{
			Field:  "font size",
			Reason: fmt.Sprintf("%vpt yields a %dx%d canvas", req.Font.Size, ext.Width(), ext.Height()),
			Err:    text.ErrInvalidSize,
		}
	}

	pm := NewPixmap(ext.Width(), ext.Height())
	pm.Clear(req.Background)
	text.Draw(pm, s, face, -ext.Bounds.MinX, ext.Metrics.Ascent, req.Foreground)

	f.log().Debug("txt2png: rendered",
		"font", req.Font.Name,
		"size", req.Font.Size,
		"width", pm.Width(),
		"height", pm.Height())
	return pm, nil
}

// WritePNG renders req and writes it as PNG to w.
// Empty text renders to a zero-width image and fails with ErrEmptyImage.
func (f *Factory) WritePNG(w io.Writer, req Request) error {
	pm, err := f.Render(req)
	if err != nil {
		return err
	}
	return pm.WritePNG(w)
}

// EncodePNG renders req and returns the PNG bytes.
// Empty text fails with ErrEmptyImage.
func (f *Factory) EncodePNG(req Request) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.WritePNG(&buf, req); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG renders req and writes it as PNG to the named file.
// Nothing is written if rendering fails, including ErrEmptyImage for
// empty text.
func (f *Factory) SavePNG(path string, req Request) error {
	pm, err := f.Render(req)
	if err != nil {
		return err
	}
	if err := pm.SavePNG(path); err != nil {
		return err
	}
	f.log().Info("txt2png: saved", "path", path, "request", req.String())
	return nil
}

func (f *Factory) normalize(s string) string {
	if f.form == nil {
		return s
	}
	return f.form.String(s)
}
