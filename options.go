package txt2png

import (
	"io/fs"
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/txt2png/fonts"
	"github.com/gogpu/txt2png/text"
)

// Option configures a Factory during creation.
//
// Example:
//
//	// Bundled fonts, installed fonts, then file paths
//	f := txt2png.New()
//
//	// Only fonts from a directory tree, no host lookup
//	f := txt2png.New(
//	    txt2png.WithEmbeddedFonts(os.DirFS("assets")),
//	    txt2png.WithSystemLocator(nil),
//	)
type Option func(*config)

type config struct {
	strategies []text.Strategy
	embedded   fs.FS
	locator    text.SystemLocator
	paths      bool
	hints      text.Hints
	form       *norm.Form
	cacheLimit int
	logger     *slog.Logger
}

func defaultConfig() config {
	form := norm.NFC
	return config{
		embedded: fonts.FS(),
		locator:  text.NewFontMapLocator(""),
		paths:    true,
		hints:    text.DefaultHints(),
		form:     &form,
	}
}

// resolverStrategies returns the lookup chain described by the config.
// An explicit WithStrategies list replaces the default chain.
func (c *config) resolverStrategies() []text.Strategy {
	if c.strategies != nil {
		return c.strategies
	}
	var out []text.Strategy
	if c.embedded != nil {
		out = append(out, &text.EmbeddedStrategy{FS: c.embedded})
	}
	if c.locator != nil {
		out = append(out, &text.SystemStrategy{Locator: c.locator})
	}
	if c.paths {
		out = append(out, text.PathStrategy{})
	}
	return out
}

// WithStrategies replaces the default lookup chain.
// Strategies are attempted in the given order.
func WithStrategies(s ...text.Strategy) Option {
	return func(c *config) {
		c.strategies = append([]text.Strategy{}, s...)
	}
}

// WithEmbeddedFonts sets the filesystem searched for fonts/<name>.ttf and
// fonts/<name>.otf. The default is the bundled Go font family.
// Pass nil to disable the embedded lookup.
func WithEmbeddedFonts(fsys fs.FS) Option {
	return func(c *config) {
		c.embedded = fsys
	}
}

// WithSystemLocator sets how installed fonts are found.
// Pass nil to disable the installed-font lookup.
func WithSystemLocator(l text.SystemLocator) Option {
	return func(c *config) {
		c.locator = l
	}
}

// WithPathLookup enables or disables treating font names as file paths.
func WithPathLookup(enabled bool) Option {
	return func(c *config) {
		c.paths = enabled
	}
}

// WithHints sets the rendering hints shared by measurement and drawing.
func WithHints(h text.Hints) Option {
	return func(c *config) {
		c.hints = h
	}
}

// WithDPI sets the resolution used to convert points to pixels.
// The default of 72 makes one point one pixel.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		c.hints.DPI = dpi
	}
}

// WithNormalization sets the Unicode normalization form applied to text
// before it is measured and drawn. The default is NFC.
func WithNormalization(f norm.Form) Option {
	return func(c *config) {
		c.form = &f
	}
}

// WithoutNormalization renders text exactly as given.
func WithoutNormalization() Option {
	return func(c *config) {
		c.form = nil
	}
}

// WithCacheLimit sets the soft limit on memoized sized faces.
// Zero means unlimited.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = n
	}
}

// WithLogger sets the logger used by this Factory only.
// Without it, the package logger from SetLogger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
