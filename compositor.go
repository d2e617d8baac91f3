package cycles

import (
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/cycles/document"
	"github.com/gogpu/cycles/internal/blend"
)

// PaintStats summarizes one compositing pass.
type PaintStats struct {
	Codes   int // names in the paint order
	Painted int // layers blended
	Missing int // names matching no layer
	Skipped int // layers skipped for a size mismatch
}

// Compositor paints document layers over a canvas, source-over, at (0,0).
//
// Layers are strictly ordered: each one observes every earlier write. With
// more than one worker a single layer is blended in row bands concurrently,
// which gives the same pixels as the serial pass.
type Compositor struct {
	workers int
}

// NewCompositor creates a compositor. Workers below 2 blend serially.
func NewCompositor(workers int) *Compositor {
	return &Compositor{workers: workers}
}

// Paint blends, for every name in order, all layers of doc carrying that
// name, in document order. The canvas is mutated in place.
func (c *Compositor) Paint(cv *Canvas, doc *document.Document, order []string) PaintStats {
	log := Logger()
	idx := doc.Index()
	stats := PaintStats{Codes: len(order)}

	for _, name := range order {
		hits := idx[name]
		if len(hits) == 0 {
			stats.Missing++
			continue
		}
		for _, i := range hits {
			l := &doc.Layers[i]
			if len(l.Pix) != len(cv.data) {
				log.Warn("cycles: layer size mismatch, skipping",
					"layer", l.Name,
					"got", len(l.Pix),
					"want", len(cv.data))
				stats.Skipped++
				continue
			}
			c.blend(cv, l.Pix)
			stats.Painted++
		}
	}
	return stats
}

// blend composites one canvas-sized source buffer.
func (c *Compositor) blend(cv *Canvas, src []byte) {
	if c.workers < 2 || cv.height < 2 {
		blend.SourceOverSpan(cv.data, src)
		return
	}

	bands := min(c.workers, cv.height)
	rows := (cv.height + bands - 1) / bands
	stride := cv.width * 4

	var g errgroup.Group
	for y := 0; y < cv.height; y += rows {
		lo := y * stride
		hi := min(y+rows, cv.height) * stride
		g.Go(func() error {
			blend.SourceOverSpan(cv.data[lo:hi], src[lo:hi])
			return nil
		})
	}
	_ = g.Wait()
}
