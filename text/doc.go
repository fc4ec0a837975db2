// Package text resolves fonts by name, derives sized faces and
// measures and draws single lines of text.
//
// The pipeline follows a separation of concerns:
//
//   - Resolver: finds a font by name through ordered strategies
//     (bundled resources, installed fonts, file paths) and memoizes it
//   - FontSource: heavyweight parsed font, shared across sizes
//   - SizedCache: derives and memoizes a Face per (source, size)
//   - Face: a FontSource at a point size under fixed Hints
//   - Measure and Draw: ink bounds and glyph drawing through the same Face
//
// # Example usage
//
//	resolver := text.NewResolver(
//	    &text.EmbeddedStrategy{FS: fonts.FS()},
//	    &text.SystemStrategy{Locator: text.NewFontMapLocator("")},
//	    text.PathStrategy{},
//	)
//	source, err := resolver.Resolve("Go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	faces := text.NewSizedCache(0, text.DefaultHints())
//	face, err := faces.Derive(source, 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ext := text.Measure("Hello", face)
//	img := image.NewRGBA(image.Rect(0, 0, ext.Width(), ext.Height()))
//	text.Draw(img, "Hello", face, -ext.Bounds.MinX, ext.Metrics.Ascent, color.Black)
//
// Parsing and rasterization use golang.org/x/image/font/opentype.
// Installed fonts are discovered with github.com/go-text/typesetting/fontscan.
package text
