package text

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultExtensions are the file extensions tried by EmbeddedStrategy.
var DefaultExtensions = []string{".ttf", ".otf"}

// EmbeddedStrategy loads fonts bundled with the program. A name maps to
// "<Dir>/<name><ext>" inside FS for each extension in turn.
type EmbeddedStrategy struct {
	FS fs.FS

	// Dir defaults to "fonts". Use "." for the root of FS.
	Dir string

	// Extensions defaults to DefaultExtensions.
	Extensions []string
}

// Name implements Strategy.
func (s *EmbeddedStrategy) Name() string { return "embedded" }

// Attempt implements Strategy.
func (s *EmbeddedStrategy) Attempt(name string) (*FontSource, error) {
	if s.FS == nil || name == "" || strings.ContainsAny(name, `/\`) {
		return nil, ErrNoMatch
	}

	dir := s.Dir
	if dir == "" {
		dir = "fonts"
	}
	exts := s.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	for _, ext := range exts {
		p := name + ext
		if dir != "." {
			p = dir + "/" + p
		}
		if !fs.ValidPath(p) {
			continue
		}
		data, err := fs.ReadFile(s.FS, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		return loadSource(name, data, 0, s.Name(), p)
	}
	return nil, ErrNoMatch
}

// PathStrategy treats the name as a path to a font file.
type PathStrategy struct{}

// Name implements Strategy.
func (PathStrategy) Name() string { return "path" }

// Attempt implements Strategy.
func (s PathStrategy) Attempt(name string) (*FontSource, error) {
	if name == "" {
		return nil, ErrNoMatch
	}

	info, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, err
		}
		return nil, ErrNoMatch
	}
	if info.IsDir() {
		return nil, ErrNoMatch
	}

	// #nosec G304 -- resolving user-named font files is the point
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return loadSource(name, data, 0, s.Name(), name)
}

// loadSource parses data, reporting parse failures as FontFormatError.
func loadSource(name string, data []byte, index int, strategy, location string) (*FontSource, error) {
	src, err := newFontSource(data, []SourceOption{
		WithIndex(index),
		WithOrigin(strategy, location),
	})
	if err != nil {
		return nil, &FontFormatError{Name: name, Location: location, Err: errors.Unwrap(err)}
	}
	return src, nil
}
