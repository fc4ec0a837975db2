package text

import (
	"fmt"
	"os"
)

// SystemFont is a font file reported by a SystemLocator.
type SystemFont struct {
	Path  string
	Index int // face index inside a collection

	// Family is the family as reported by the locator. It may be a
	// normalized or substituted name and is not trusted.
	Family string
}

// SystemLocator queries the host's installed fonts for a family.
// A locator may return an approximate match; SystemStrategy verifies
// the result.
type SystemLocator interface {
	Locate(family string) (SystemFont, bool, error)
}

// SystemStrategy loads installed fonts whose family name is exactly the
// requested name.
//
// Font subsystems often substitute a default font rather than failing,
// and compare names loosely. SystemStrategy therefore reads the family
// from the candidate's own name table and rejects it unless it equals
// the requested name byte for byte.
type SystemStrategy struct {
	Locator SystemLocator
}

// Name implements Strategy.
func (s *SystemStrategy) Name() string { return "system" }

// Attempt implements Strategy.
func (s *SystemStrategy) Attempt(name string) (*FontSource, error) {
	if s.Locator == nil || name == "" {
		return nil, ErrNoMatch
	}

	found, ok, err := s.Locator.Locate(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoMatch
	}

	// #nosec G304 -- path comes from the host font index
	data, err := os.ReadFile(found.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", found.Path, err)
	}
	src, err := loadSource(name, data, found.Index, s.Name(), found.Path)
	if err != nil {
		return nil, err
	}

	if !src.HasFamily(name) {
		Logger().Debug("text: rejected substituted system font",
			"font", name, "family", src.Family(), "path", found.Path)
		return nil, ErrNoMatch
	}
	return src, nil
}
