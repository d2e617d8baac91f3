package document

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/oov/psd"
	"golang.org/x/image/draw"
	"golang.org/x/text/unicode/norm"
)

// PSD decodes Photoshop documents.
//
// The merged image becomes the base canvas; a file saved without one gets a
// transparent canvas. Each pixel layer is drawn at its rectangle into a
// canvas-sized buffer. Group folders are walked depth-first and contribute
// only their children; an empty folder contributes nothing.
type PSD struct{}

// Decode implements Decoder.
func (PSD) Decode(r io.Reader) (*Document, error) {
	img, _, err := psd.Decode(bufio.NewReader(r), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: psd: %w", ErrDecode, err)
	}

	bounds := img.Config.Rect
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: psd: empty canvas %dx%d", ErrDecode, w, h)
	}

	doc := &Document{
		Width:  w,
		Height: h,
		Base:   expand(img.Picker, bounds, bounds),
	}
	doc.Layers = appendLayers(doc.Layers, img.Layer, bounds)
	return doc, nil
}

// appendLayers flattens the layer tree in document order.
func appendLayers(dst []Layer, layers []psd.Layer, canvas image.Rectangle) []Layer {
	for i := range layers {
		l := &layers[i]
		if l.Folder() || len(l.Layer) > 0 {
			dst = appendLayers(dst, l.Layer, canvas)
			continue
		}
		dst = append(dst, Layer{
			Name: layerName(l),
			Pix:  expand(l.Picker, l.Rect, canvas),
		})
	}
	return dst
}

// layerName prefers the Unicode name. Names are NFC-normalized so that
// decomposed accents authored on some platforms still match.
func layerName(l *psd.Layer) string {
	name := l.UnicodeName
	if name == "" {
		name = l.Name
	}
	return norm.NFC.String(name)
}

// expand draws src, located at rect, into a transparent canvas-sized buffer.
func expand(src image.Image, rect, canvas image.Rectangle) []byte {
	dst := image.NewNRGBA(image.Rect(0, 0, canvas.Dx(), canvas.Dy()))
	if src == nil {
		return dst.Pix
	}
	r := rect.Sub(canvas.Min)
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Src)
	return dst.Pix
}
