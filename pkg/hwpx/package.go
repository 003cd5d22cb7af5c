package hwpx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"strings"
)

// Package assembles a HWPX ZIP container. Entries are written in
// insertion order; the mimetype entry is always first and stored without
// compression so consumers can identify the container by reading the
// leading bytes.
type Package struct {
	order []string
	files map[string][]byte
}

// NewPackage returns an empty package.
func NewPackage() *Package {
	return &Package{files: make(map[string][]byte)}
}

// AddEntry stages content under the given archive path. Absolute paths,
// drive-letter paths, and any path containing a ".." segment are rejected
// outright rather than rewritten. A repeated path replaces the content
// but keeps the original position.
func (p *Package) AddEntry(path string, content []byte) error {
	if err := validateEntryPath(path); err != nil {
		return err
	}
	if _, exists := p.files[path]; !exists {
		p.order = append(p.order, path)
	}
	p.files[path] = content
	return nil
}

func validateEntryPath(path string) error {
	if path == "" {
		return NewValidationError("path", "entry path must not be empty")
	}
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return NewValidationError("path", "entry path must not be absolute: "+path)
	}
	if len(path) >= 2 && path[1] == ':' {
		return NewValidationError("path", "entry path must not contain a drive letter: "+path)
	}
	for _, seg := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return NewValidationError("path", "entry path must not traverse upward: "+path)
		}
	}
	return nil
}

// Entries returns the staged paths in insertion order.
func (p *Package) Entries() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// WriteTo writes the archive. The mimetype entry is emitted first using
// the Store method; everything else is deflated in insertion order.
func (p *Package) WriteTo(w io.Writer) error {
	zw := zip.NewWriter(w)

	if content, ok := p.files["mimetype"]; ok {
		mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
		if err != nil {
			return NewDocumentError("write", "mimetype", err)
		}
		if _, err := mw.Write(content); err != nil {
			return NewDocumentError("write", "mimetype", err)
		}
	}
	for _, path := range p.order {
		if path == "mimetype" {
			continue
		}
		fw, err := zw.Create(path)
		if err != nil {
			return NewDocumentError("write", path, err)
		}
		if _, err := fw.Write(p.files[path]); err != nil {
			return NewDocumentError("write", path, err)
		}
	}
	return zw.Close()
}

// Bytes assembles the archive fully in memory.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the archive to disk. The full archive is assembled before
// any byte reaches the file.
func (p *Package) Save(path string) error {
	data, err := p.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewDocumentError("save", path, err)
	}
	return nil
}
