package text

import (
	"bytes"
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// collectionTag is the leading tag of TrueType/OpenType collections.
var collectionTag = []byte("ttcf")

// parseFont parses TTF/OTF data, or the face at index when data holds
// a font collection.
func parseFont(data []byte, index int) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	if !bytes.HasPrefix(data, collectionTag) {
		if index != 0 {
			return nil, fmt.Errorf("face index %d requested from a single font", index)
		}
		return opentype.Parse(data)
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("face index %d out of range [0, %d)", index, coll.NumFonts())
	}
	return coll.Font(index)
}

// nameOf returns a name table entry, or "" when it is missing.
func nameOf(f *opentype.Font, id sfnt.NameID) string {
	var buf sfnt.Buffer
	name, err := f.Name(&buf, id)
	if err != nil {
		return ""
	}
	return name
}

// familyNames returns the legacy and typographic family names, skipping
// empty and duplicate entries.
func familyNames(f *opentype.Font) []string {
	names := make([]string, 0, 2)
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDTypographicFamily} {
		name := nameOf(f, id)
		if name == "" {
			continue
		}
		if len(names) > 0 && names[0] == name {
			continue
		}
		names = append(names, name)
	}
	return names
}
