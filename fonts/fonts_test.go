package fonts

import (
	"bytes"
	"io/fs"
	"slices"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFS(t *testing.T) {
	var paths []string
	for _, name := range Names() {
		paths = append(paths, Dir+"/"+name+".ttf")
	}
	if err := fstest.TestFS(FS(), paths...); err != nil {
		t.Fatal(err)
	}
}

func TestFSRegular(t *testing.T) {
	for _, name := range []string{"Go", "Go-Regular"} {
		data, err := fs.ReadFile(FS(), Dir+"/"+name+".ttf")
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", name, err)
		}
		if !bytes.Equal(data, goregular.TTF) {
			t.Errorf("%s is not the regular Go font", name)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"Go", "Go-Bold", "Go-Mono"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
		if !Has(want) {
			t.Errorf("Has(%q) = false", want)
		}
	}
	if Has("Arial") {
		t.Error("Has(Arial) = true")
	}
}

func TestFSSameInstance(t *testing.T) {
	a, b := FS().(fstest.MapFS), FS().(fstest.MapFS)
	if len(a) != len(b) || len(a) != len(Names()) {
		t.Errorf("FS has %d files, want %d", len(a), len(Names()))
	}
}
