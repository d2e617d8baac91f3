package cycles

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/cycles/document"
)

// Canvas is the RGBA accumulator a chart is painted on.
// Pixels are non-premultiplied, 4 bytes per pixel, rows top to bottom.
type Canvas struct {
	width  int
	height int
	data   []byte
}

// NewCanvas creates a transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]byte, width*height*4),
	}
}

// NewCanvasFromDocument creates a canvas holding a copy of the document's
// base buffer. The document is left untouched by painting.
func NewCanvasFromDocument(doc *document.Document) (*Canvas, error) {
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas %dx%d", document.ErrDecode, doc.Width, doc.Height)
	}
	if len(doc.Base) != doc.PixLen() {
		return nil, fmt.Errorf("%w: base buffer is %d bytes, want %d", document.ErrDecode, len(doc.Base), doc.PixLen())
	}
	c := NewCanvas(doc.Width, doc.Height)
	copy(c.data, doc.Base)
	return c, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data.
func (c *Canvas) Data() []byte {
	return c.data
}

// RGBA returns the pixel at (x, y). Out of bounds pixels are transparent.
func (c *Canvas) RGBA(x, y int) (r, g, b, a byte) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, 0, 0, 0
	}
	i := (y*c.width + x) * 4
	return c.data[i], c.data[i+1], c.data[i+2], c.data[i+3]
}

// ToImage returns an image sharing the canvas pixels.
func (c *Canvas) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.data,
		Stride: c.width * 4,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// EncodePNG writes the canvas as 8-bit RGBA PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if len(c.data) != c.width*c.height*4 {
		return fmt.Errorf("%w: buffer is %d bytes for %dx%d", ErrEncode, len(c.data), c.width, c.height)
	}
	if err := png.Encode(w, c.ToImage()); err != nil {
		return fmt.Errorf("%w: png: %w", ErrEncode, err)
	}
	return nil
}

// PNG returns the canvas encoded as PNG.
func (c *Canvas) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
