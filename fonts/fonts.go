// Package fonts bundles the Go font family as a filesystem laid out for
// text.EmbeddedStrategy: each font is at fonts/<name>.ttf.
//
// "Go" and "Go-Regular" both name the regular face.
package fonts

import (
	"io/fs"
	"slices"
	"sync"
	"testing/fstest"
	"time"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Dir is the directory inside FS holding the font files.
const Dir = "fonts"

var bundled = map[string][]byte{
	"Go":                  goregular.TTF,
	"Go-Regular":          goregular.TTF,
	"Go-Bold":             gobold.TTF,
	"Go-Italic":           goitalic.TTF,
	"Go-Bold-Italic":      gobolditalic.TTF,
	"Go-Medium":           gomedium.TTF,
	"Go-Medium-Italic":    gomediumitalic.TTF,
	"Go-Mono":             gomono.TTF,
	"Go-Mono-Bold":        gomonobold.TTF,
	"Go-Mono-Italic":      gomonoitalic.TTF,
	"Go-Mono-Bold-Italic": gomonobolditalic.TTF,
	"Go-Smallcaps":        gosmallcaps.TTF,
	"Go-Smallcaps-Italic": gosmallcapsitalic.TTF,
}

var (
	fsOnce sync.Once
	fsys   fstest.MapFS
)

// FS returns a read-only filesystem holding the bundled fonts.
// The same filesystem is returned on every call.
func FS() fs.FS {
	fsOnce.Do(func() {
		fsys = make(fstest.MapFS, len(bundled))
		for name, data := range bundled {
			fsys[Dir+"/"+name+".ttf"] = &fstest.MapFile{
				Data:    data,
				Mode:    0o444,
				ModTime: time.Unix(0, 0),
			}
		}
	})
	return fsys
}

// Names returns the bundled font names in sorted order.
func Names() []string {
	names := make([]string, 0, len(bundled))
	for name := range bundled {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether name is a bundled font.
func Has(name string) bool {
	_, ok := bundled[name]
	return ok
}
