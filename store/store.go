// Package store saves rendered images into a content store and formats
// the URL they can be downloaded from.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
)

// ErrNotFound is returned when a descriptor names no stored file.
var ErrNotFound = errors.New("store: file not found")

// Descriptor identifies a stored file.
type Descriptor struct {
	// UniqueID is assigned by the store on Save.
	UniqueID string
	// VirtualPath is the logical folder the file was saved under.
	VirtualPath string
	// Filename is the original name of the file.
	Filename string
	// Size is the number of bytes stored.
	Size int64
}

// Store is a content store for rendered images.
type Store interface {
	// Save stores the content of r under virtualPath as filename.
	Save(ctx context.Context, virtualPath, filename string, r io.Reader) (Descriptor, error)
	// Open returns the stored content. The caller closes it.
	Open(ctx context.Context, d Descriptor) (io.ReadCloser, error)
	// Delete removes a stored file.
	Delete(ctx context.Context, d Descriptor) error
}

// URLFormat builds download URLs from a template where {0} is replaced
// by the unique id and {1} by the file name.
type URLFormat string

// NewURLFormat joins a server base URL and a download path template,
// e.g. NewURLFormat("https://files.example.org", "download/{0}/{1}").
func NewURLFormat(serverBase, downloadPath string) URLFormat {
	return URLFormat(strings.TrimSuffix(serverBase, "/") + "/" + strings.TrimPrefix(downloadPath, "/"))
}

// Format returns the download URL for d.
func (f URLFormat) Format(d Descriptor) string {
	return strings.NewReplacer(
		"{0}", d.UniqueID,
		"{1}", escapeSegment(d.Filename),
	).Replace(string(f))
}

// Valid reports whether the template references the unique id.
func (f URLFormat) Valid() bool {
	return strings.Contains(string(f), "{0}")
}

func escapeSegment(s string) string {
	return strings.NewReplacer(" ", "%20", "?", "%3F", "#", "%23", "/", "%2F").Replace(s)
}

// cleanVirtualPath validates a slash separated logical folder.
func cleanVirtualPath(p string) (string, error) {
	if p == "" {
		return ".", nil
	}
	if strings.Contains(p, "\\") || slices.Contains(strings.Split(p, "/"), "..") {
		return "", fmt.Errorf("store: invalid virtual path %q", p)
	}
	c := path.Clean("/" + p)[1:]
	if c == "" {
		return ".", nil
	}
	return c, nil
}

func checkFilename(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("store: invalid file name %q", name)
	}
	return nil
}
