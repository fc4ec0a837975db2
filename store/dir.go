package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DirStore keeps files in a local directory tree laid out as
// <root>/<virtual path>/<id>/<filename>.
//
// Content is first written to a temporary file in the destination
// directory and renamed into place, so a failed Save leaves nothing
// behind and readers never see a partial file.
type DirStore struct {
	root string
}

// NewDirStore returns a store rooted at dir, creating it if needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	return &DirStore{root: dir}, nil
}

// Root returns the store's root directory.
func (s *DirStore) Root() string {
	return s.root
}

// Save implements Store.
func (s *DirStore) Save(ctx context.Context, virtualPath, filename string, r io.Reader) (Descriptor, error) {
	vp, err := cleanVirtualPath(virtualPath)
	if err != nil {
		return Descriptor{}, err
	}
	if err := checkFilename(filename); err != nil {
		return Descriptor{}, err
	}
	if err := ctx.Err(); err != nil {
		return Descriptor{}, err
	}

	id, err := newID()
	if err != nil {
		return Descriptor{}, err
	}
	d := Descriptor{UniqueID: id, VirtualPath: vp, Filename: filename}
	dir := filepath.Dir(s.path(d))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Descriptor{}, fmt.Errorf("store: create %s: %w", dir, err)
	}

	n, err := writeTemp(ctx, dir, s.path(d), r)
	if err != nil {
		_ = os.Remove(dir)
		return Descriptor{}, err
	}
	d.Size = n

	Logger().Info("store: saved", "id", d.UniqueID, "path", d.VirtualPath, "file", d.Filename, "size", d.Size)
	return d, nil
}

// Open implements Store.
func (s *DirStore) Open(ctx context.Context, d Descriptor) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.checkedPath(d)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, d.UniqueID)
	}
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	return f, nil
}

// Delete implements Store.
func (s *DirStore) Delete(ctx context.Context, d Descriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.checkedPath(d)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, d.UniqueID)
		}
		return fmt.Errorf("store: delete: %w", err)
	}
	_ = os.Remove(filepath.Dir(p))
	Logger().Debug("store: deleted", "id", d.UniqueID)
	return nil
}

func (s *DirStore) path(d Descriptor) string {
	return filepath.Join(s.root, filepath.FromSlash(d.VirtualPath), d.UniqueID, d.Filename)
}

func (s *DirStore) checkedPath(d Descriptor) (string, error) {
	vp, err := cleanVirtualPath(d.VirtualPath)
	if err != nil {
		return "", err
	}
	if err := checkFilename(d.Filename); err != nil {
		return "", err
	}
	if err := checkFilename(d.UniqueID); err != nil {
		return "", fmt.Errorf("store: invalid id %q", d.UniqueID)
	}
	d.VirtualPath = vp
	return s.path(d), nil
}

// writeTemp copies r into a temporary file in dir and renames it to dst.
func writeTemp(ctx context.Context, dir, dst string, r io.Reader) (n int64, err error) {
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("store: create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err = io.Copy(tmp, ctxReader{ctx: ctx, r: r})
	if err != nil {
		return 0, fmt.Errorf("store: write: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("store: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return 0, fmt.Errorf("store: rename: %w", err)
	}
	return n, nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func newID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("store: generate id: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
