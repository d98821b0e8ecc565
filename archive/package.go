// Package archive provides part-level access to zipped OOXML packages on
// top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// Package is an open zipped package. Parts are addressed by their full
// archive name ("xl/styles.xml").
type Package struct {
	parts  map[string]*zip.File
	order  []*zip.File
	closer io.Closer
}

// Open opens the package at the given path. The caller owns the returned
// Package and must Close it.
func Open(name string) (*Package, error) {
	r, err := zip.OpenReader(name)
	if err != nil {
		return nil, err
	}
	p, err := newPackage(r.File, r)
	if err != nil {
		r.Close()
		return nil, err
	}
	return p, nil
}

// NewPackage reads a package from an in-memory or seekable source.
func NewPackage(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	return newPackage(zr.File, nil)
}

func newPackage(files []*zip.File, closer io.Closer) (*Package, error) {
	p := &Package{parts: make(map[string]*zip.File, len(files)), closer: closer}
	for _, f := range files {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		p.parts[name] = f
		p.order = append(p.order, f)
	}
	return p, nil
}

// Close releases the underlying archive. Packages built over in-memory
// sources have nothing to release.
func (p *Package) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// Has reports whether the named part exists.
func (p *Package) Has(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// Part returns the raw contents of the named part.
func (p *Package) Part(name string) ([]byte, error) {
	f, ok := p.parts[name]
	if !ok {
		return nil, fmt.Errorf("package has no part %q: %w", name, os.ErrNotExist)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("unable to open part %q: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// WalkFunc is called by Walk for each part matching the prefix. If an error
// is returned, processing stops.
type WalkFunc func(name string, r io.Reader) error

// Walk calls walkFn for every part whose name starts with prefix, in
// archive order. An empty prefix visits every part.
func (p *Package) Walk(prefix string, walkFn WalkFunc) error {
	for _, f := range p.order {
		if !strings.HasPrefix(f.FileHeader.Name, prefix) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open part %q: %w", f.FileHeader.Name, err)
		}
		err = walkFn(f.FileHeader.Name, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
