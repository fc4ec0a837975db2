package text

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font/opentype"
)

// DirLocator finds fonts by scanning directories recursively for
// .ttf, .otf, .ttc and .otc files. The scan runs once, on the first
// Locate call, and indexes every family name found in the name tables.
// Unlike FontMapLocator it never substitutes: names match exactly.
type DirLocator struct {
	Dirs []string

	once  sync.Once
	index map[string]SystemFont
}

// NewDirLocator creates a locator over the given directories.
// Earlier directories win when a family appears more than once.
func NewDirLocator(dirs ...string) *DirLocator {
	return &DirLocator{Dirs: dirs}
}

// Locate implements SystemLocator.
func (l *DirLocator) Locate(family string) (SystemFont, bool, error) {
	l.once.Do(l.scan)
	found, ok := l.index[family]
	return found, ok, nil
}

func (l *DirLocator) scan() {
	l.index = make(map[string]SystemFont)
	for _, dir := range l.Dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped, not fatal.
				Logger().Debug("text: skipping font directory", "path", path, "error", err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !hasFontExtension(path) {
				return nil
			}
			l.indexFile(path)
			return nil
		})
		if err != nil {
			Logger().Debug("text: font directory scan failed", "dir", dir, "error", err)
		}
	}
}

func (l *DirLocator) indexFile(path string) {
	// #nosec G304 -- path comes from a configured font directory
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	count := 1
	if bytes.HasPrefix(data, collectionTag) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return
		}
		count = coll.NumFonts()
	}

	for i := range count {
		f, err := parseFont(data, i)
		if err != nil {
			continue
		}
		for _, family := range familyNames(f) {
			if _, seen := l.index[family]; !seen {
				l.index[family] = SystemFont{Path: path, Index: i, Family: family}
			}
		}
	}
}

// hasFontExtension reports whether path ends in a known font extension.
func hasFontExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

// DefaultFontDirs returns the usual font directories for the current
// user and platform. Directories that do not exist are kept; DirLocator
// skips them.
func DefaultFontDirs() []string {
	return defaultFontDirs()
}
