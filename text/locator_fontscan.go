package text

import (
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// FontMapLocator finds installed fonts through the go-text font
// index, which reads the platform font directories (and fontconfig
// configuration on Unix). The index is built on first use and cached
// on disk in CacheDir ("" picks the user cache directory).
//
// Matching follows fontscan's CSS-like rules, so the returned font may
// be a fallback; the family names are only compared after
// normalization (case and spaces ignored).
//
// A FontMapLocator may be shared between goroutines.
type FontMapLocator struct {
	CacheDir string

	once sync.Once
	mu   sync.Mutex // guards fm queries
	fm   *fontscan.FontMap
	err  error
}

// NewFontMapLocator creates a locator caching its index in cacheDir.
func NewFontMapLocator(cacheDir string) *FontMapLocator {
	return &FontMapLocator{CacheDir: cacheDir}
}

func (l *FontMapLocator) init() {
	l.fm = fontscan.NewFontMap(printfLogger{level: slog.LevelDebug})
	if err := l.fm.UseSystemFonts(l.CacheDir); err != nil {
		l.err = err
		Logger().Warn("text: system font index unavailable", "error", err)
	}
}

// Locate implements SystemLocator. A host without a usable font index
// reports no match rather than an error.
func (l *FontMapLocator) Locate(family string) (SystemFont, bool, error) {
	l.once.Do(l.init)
	if l.err != nil {
		return SystemFont{}, false, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.fm.SetQuery(fontscan.Query{
		Families: []string{family},
		Aspect: font.Aspect{
			Style:   font.StyleNormal,
			Weight:  font.WeightNormal,
			Stretch: font.StretchNormal,
		},
	})
	face := l.fm.ResolveFace(' ')
	if face == nil {
		return SystemFont{}, false, nil
	}

	got, _ := l.fm.FontMetadata(face.Font)
	if got != font.NormalizeFamily(family) {
		// fontscan fell back to another family.
		Logger().Debug("text: system font substituted", "font", family, "family", got)
		return SystemFont{}, false, nil
	}

	loc := l.fm.FontLocation(face.Font)
	if loc.File == "" {
		return SystemFont{}, false, nil
	}
	return SystemFont{Path: loc.File, Index: int(loc.Index), Family: got}, true, nil
}
