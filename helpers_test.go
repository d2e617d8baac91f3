package cycles

import (
	"image"
	"image/draw"
	"math/rand/v2"

	"github.com/gogpu/cycles/document"
)

// toNRGBA converts any decoded image to NRGBA.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	n := image.NewNRGBA(img.Bounds())
	draw.Draw(n, n.Rect, img, img.Bounds().Min, draw.Src)
	return n
}

// solid returns a canvas-sized buffer filled with one color.
func solid(w, h int, r, g, b, a byte) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return pix
}

// noise returns a deterministic random buffer.
func noise(w, h int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = byte(rng.UintN(256))
	}
	return pix
}

// square returns a transparent buffer with an opaque-ish square at (x0,y0).
func square(w, h, x0, y0, size int, r, g, b, a byte) []byte {
	pix := make([]byte, w*h*4)
	for y := y0; y < y0+size && y < h; y++ {
		for x := x0; x < x0+size && x < w; x++ {
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
		}
	}
	return pix
}

func newDoc(w, h int, base []byte, layers ...document.Layer) *document.Document {
	return &document.Document{Width: w, Height: h, Base: base, Layers: layers}
}
