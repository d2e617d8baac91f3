// Package document holds the decoded layered source document.
//
// A Document is a flat canvas plus an ordered list of named layers, each
// already expanded to the canvas size. Decoding a container format into a
// Document is the job of a Decoder; PSD files are handled by the PSD decoder.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Errors returned by Load and decoders.
var (
	// ErrRead is returned when the document file cannot be read.
	ErrRead = errors.New("document: read")

	// ErrDecode is returned when the document bytes are malformed.
	ErrDecode = errors.New("document: decode")
)

// Layer is a named RGBA buffer.
// Pix is non-premultiplied RGBA, 4 bytes per pixel.
type Layer struct {
	Name string
	Pix  []byte
}

// Document is a decoded layered image.
type Document struct {
	Width  int
	Height int

	// Base is the flattened canvas, non-premultiplied RGBA.
	Base []byte

	// Layers are in document order.
	Layers []Layer
}

// PixLen returns the byte length of a canvas-sized RGBA buffer.
func (d *Document) PixLen() int {
	return d.Width * d.Height * 4
}

// Index groups layer positions by name. The slices keep document order.
func (d *Document) Index() map[string][]int {
	idx := make(map[string][]int, len(d.Layers))
	for i, l := range d.Layers {
		idx[l.Name] = append(idx[l.Name], i)
	}
	return idx
}

// Decoder turns encoded document bytes into a Document.
type Decoder interface {
	Decode(r io.Reader) (*Document, error)
}

// Load reads and decodes the document at path.
func Load(path string, dec Decoder) (*Document, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrRead, path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := dec.Decode(f)
	if err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, fmt.Errorf("%q: %w", path, err)
		}
		return nil, fmt.Errorf("%w %q: %w", ErrDecode, path, err)
	}
	return doc, nil
}
