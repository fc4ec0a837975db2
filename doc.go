// Package txt2png renders a single line of text into a PNG image.
//
// # Overview
//
// txt2png turns (font name, point size, text) into an image that is
// exactly as wide as the ink of the text and as tall as the font's line
// height, so labels rendered with the same font and size line up.
// Fonts are found by name through ordered lookup strategies and cached,
// so a batch of labels parses each font once.
//
// # Quick Start
//
//	import "github.com/gogpu/txt2png"
//
//	f := txt2png.New()
//	req := txt2png.NewRequest("Go", 24, "Hello")
//	if err := f.SavePNG("hello.png", req); err != nil {
//	    log.Fatal(err)
//	}
//
// # Font lookup
//
// A font name is tried, in order, as:
//   - a bundled font, fonts/<name>.ttf or fonts/<name>.otf
//   - an installed font whose family name is exactly <name>
//   - a path to a font file
//
// The first match wins. Use WithEmbeddedFonts, WithSystemLocator,
// WithPathLookup or WithStrategies to change the chain.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Factory, Request, FontSpec, Pixmap, RGB
//   - text: font resolution, sized faces, measurement and drawing
//   - fonts: the bundled Go font family
//   - store: saving rendered images behind a download URL
//   - Internal: blend (integer compositing)
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// The baseline is at y = ascent.
package txt2png

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
