package text

import (
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight: producing it means I/O and parsing, so the
// Resolver keeps one per font name.
//
// FontSource is read-only after creation and safe to share.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *opentype.Font

	fullName string
	families []string

	origin Origin
}

// Origin records where a FontSource was loaded from.
type Origin struct {
	// Strategy is the name of the resolution strategy, or "" when the
	// source was created directly.
	Strategy string
	// Location is a path or resource name.
	Location string
}

func (o Origin) String() string {
	if o.Strategy == "" {
		return o.Location
	}
	return o.Strategy + ":" + o.Location
}

// NewFontSource creates a FontSource from font data (TTF, OTF or a
// collection together with WithIndex).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	return newFontSource(dataCopy, opts)
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	opts = append([]SourceOption{withLocation(path)}, opts...)
	return newFontSource(data, opts)
}

// NewFontSourceFromFS loads a FontSource from a file system, typically
// an embed.FS holding bundled fonts.
func NewFontSourceFromFS(fsys fs.FS, path string, opts ...SourceOption) (*FontSource, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	opts = append([]SourceOption{withLocation(path)}, opts...)
	return newFontSource(data, opts)
}

// newFontSource takes ownership of data.
func newFontSource(data []byte, opts []SourceOption) (*FontSource, error) {
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f, err := parseFont(data, config.index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:     data,
		font:     f,
		fullName: nameOf(f, sfnt.NameIDFull),
		families: familyNames(f),
		origin:   config.origin,
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// Family returns the font family name, or "" when the font has none.
func (s *FontSource) Family() string {
	s.copyCheck()
	if len(s.families) == 0 {
		return ""
	}
	return s.families[0]
}

// FullName returns the full font name (e.g. "Go Bold Italic").
func (s *FontSource) FullName() string {
	s.copyCheck()
	return s.fullName
}

// HasFamily reports whether name equals one of the family names stored
// in the font's name table. The comparison is exact: no case folding,
// no whitespace normalization.
func (s *FontSource) HasFamily(name string) bool {
	s.copyCheck()
	for _, family := range s.families {
		if family == name {
			return true
		}
	}
	return false
}

// Origin returns where the source was loaded from.
func (s *FontSource) Origin() Origin {
	s.copyCheck()
	return s.origin
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	return s.font.NumGlyphs()
}

// Face derives a Face at the given size in points.
// Prefer SizedCache.Derive, which memoizes the result.
func (s *FontSource) Face(size float64, hints Hints) (*Face, error) {
	if s == nil {
		return nil, ErrNoSource
	}
	s.copyCheck()
	return newFace(s, size, hints)
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
