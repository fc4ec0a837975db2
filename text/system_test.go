package text

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// fakeLocator answers from a fixed table, the way a font subsystem that
// substitutes fallbacks would.
type fakeLocator struct {
	fonts map[string]SystemFont
	err   error
	calls int
}

func (l *fakeLocator) Locate(family string) (SystemFont, bool, error) {
	l.calls++
	if l.err != nil {
		return SystemFont{}, false, l.err
	}
	f, ok := l.fonts[family]
	return f, ok, nil
}

func TestSystemStrategyExactFamily(t *testing.T) {
	dir := t.TempDir()
	regular := writeFont(t, dir, "Go-Regular.ttf", goregular.TTF)
	s := &SystemStrategy{Locator: &fakeLocator{fonts: map[string]SystemFont{
		"Go": {Path: regular, Family: "go"},
	}}}

	src, err := s.Attempt("Go")
	if err != nil {
		t.Fatal(err)
	}
	if src.Family() != "Go" {
		t.Errorf("Family() = %q", src.Family())
	}
	if got := src.Origin(); got != (Origin{Strategy: "system", Location: regular}) {
		t.Errorf("Origin() = %+v", got)
	}
}

func TestSystemStrategyRejectsSubstitution(t *testing.T) {
	dir := t.TempDir()
	mono := writeFont(t, dir, "Go-Mono.ttf", gomono.TTF)
	regular := writeFont(t, dir, "Go-Regular.ttf", goregular.TTF)

	// The subsystem answers every query with some installed font.
	loc := &fakeLocator{fonts: map[string]SystemFont{
		"Go":         {Path: mono, Family: "Go"},
		"go":         {Path: regular, Family: "Go"},
		"Helvetica":  {Path: regular, Family: "Go"},
		"Go Mono":    {Path: mono, Family: "Go Mono"},
		"Go Regular": {Path: regular, Family: "Go"},
	}}
	s := &SystemStrategy{Locator: loc}

	for _, name := range []string{"Go", "go", "Helvetica", "Go Regular"} {
		src, err := s.Attempt(name)
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("Attempt(%q) = (%v, %v), want ErrNoMatch", name, src, err)
		}
	}
	if _, err := s.Attempt("Go Mono"); err != nil {
		t.Errorf("Attempt(Go Mono): %v", err)
	}
}

func TestSystemStrategyErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFont(t, dir, "broken.ttf", []byte("nope"))
	boom := errors.New("fontconfig exploded")

	tests := []struct {
		name  string
		loc   SystemLocator
		check func(error) bool
	}{
		{"locator error", &fakeLocator{err: boom}, func(err error) bool { return errors.Is(err, boom) }},
		{"vanished file", &fakeLocator{fonts: map[string]SystemFont{
			"X": {Path: filepath.Join(dir, "gone.ttf")},
		}}, func(err error) bool { return errors.Is(err, fs.ErrNotExist) }},
		{"invalid font", &fakeLocator{fonts: map[string]SystemFont{
			"X": {Path: broken},
		}}, func(err error) bool {
			var fe *FontFormatError
			return errors.As(err, &fe) && fe.Location == broken
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&SystemStrategy{Locator: tt.loc}).Attempt("X")
			if err == nil || errors.Is(err, ErrNoMatch) || !tt.check(err) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestSystemStrategyNilLocator(t *testing.T) {
	if _, err := (&SystemStrategy{}).Attempt("Go"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("err = %v, want ErrNoMatch", err)
	}
}

func TestDirLocator(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFont(t, first, "sub/dir/Go-Regular.ttf", goregular.TTF)
	writeFont(t, first, "Go-Mono.TTF", gomono.TTF)
	writeFont(t, first, "junk.ttf", []byte("junk"))
	writeFont(t, first, "readme.txt", []byte("Go"))
	shadowed := writeFont(t, second, "Go-Bold.ttf", gobold.TTF)

	l := NewDirLocator(first, second, filepath.Join(first, "does-not-exist"))

	found, ok, err := l.Locate("Go")
	if err != nil || !ok {
		t.Fatalf("Locate(Go) = (%v, %v, %v)", found, ok, err)
	}
	if filepath.Base(found.Path) != "Go-Regular.ttf" {
		t.Errorf("earlier directory should win, got %s", found.Path)
	}
	if found.Path == shadowed {
		t.Error("shadowed font returned")
	}

	if _, ok, _ := l.Locate("Go Mono"); !ok {
		t.Error("upper-case extension not indexed")
	}
	for _, name := range []string{"go", "Go Bold", "Arial", ""} {
		if _, ok, _ := l.Locate(name); ok {
			t.Errorf("Locate(%q) matched", name)
		}
	}
}

func TestDirLocatorWithResolver(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "a.ttf", gomono.TTF)
	r := NewResolver(&SystemStrategy{Locator: NewDirLocator(dir)})

	src, err := r.Resolve("Go Mono")
	if err != nil {
		t.Fatal(err)
	}
	if src.Origin().Strategy != "system" {
		t.Errorf("Origin() = %+v", src.Origin())
	}
	var nf *FontNotFoundError
	if _, err := r.Resolve("Go"); !errors.As(err, &nf) {
		t.Errorf("Resolve(Go) err = %v, want FontNotFoundError", err)
	}
}

func TestHasFontExtension(t *testing.T) {
	tests := map[string]bool{
		"a.ttf": true, "a.OTF": true, "a.ttc": true, "a.otc": true,
		"a.woff": false, "a.txt": false, "ttf": false, "a.ttf.bak": false,
	}
	for path, want := range tests {
		if got := hasFontExtension(path); got != want {
			t.Errorf("hasFontExtension(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestFontMapLocator(t *testing.T) {
	if testing.Short() {
		t.Skip("scans installed fonts")
	}
	l := NewFontMapLocator(t.TempDir())
	if _, ok, err := l.Locate("No Such Family 4d1c"); ok || err != nil {
		t.Errorf("Locate(unknown) = (%v, %v), want a miss", ok, err)
	}

	found, ok, err := l.Locate("DejaVu Sans")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Skip("DejaVu Sans is not installed")
	}
	src, err := (&SystemStrategy{Locator: l}).Attempt("DejaVu Sans")
	if err != nil {
		t.Fatalf("located %s but strategy failed: %v", found.Path, err)
	}
	if !src.HasFamily("DejaVu Sans") {
		t.Errorf("family = %q", src.Family())
	}
}
