package cycles

import (
	"slices"

	"github.com/gogpu/cycles/chart"
	"github.com/gogpu/cycles/document"
	"github.com/gogpu/cycles/internal/cache"
)

// Generate renders the chart for in over doc and returns PNG bytes.
// doc is not modified.
func Generate(in chart.BirthInputs, doc *document.Document, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	return render(in, doc, &o)
}

// GenerateFile loads the document at path and renders the chart for in.
func GenerateFile(in chart.BirthInputs, path string, opts ...Option) ([]byte, error) {
	return NewRenderer(slices.Concat(opts, []Option{WithCacheSize(0)})...).RenderFile(in, path)
}

func render(in chart.BirthInputs, doc *document.Document, o *options) ([]byte, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c := chart.Derive(in)
	order := c.PaintOrder(o.frames)

	cv, err := NewCanvasFromDocument(doc)
	if err != nil {
		return nil, err
	}

	stats := NewCompositor(o.workers).Paint(cv, doc, order)
	Logger().Debug("cycles: chart painted",
		"chart", c,
		"order", order,
		"painted", stats.Painted,
		"missing", stats.Missing,
		"skipped", stats.Skipped)

	return cv.PNG()
}

// Renderer renders charts, keeping recently decoded documents in memory.
//
// Renderer is safe for concurrent use.
type Renderer struct {
	opts options
	docs *cache.Documents
}

// NewRenderer creates a renderer.
func NewRenderer(opts ...Option) *Renderer {
	o := newOptions(opts)
	return &Renderer{
		opts: o,
		docs: cache.New(o.cacheSize),
	}
}

// Render renders the chart for in over doc.
func (r *Renderer) Render(in chart.BirthInputs, doc *document.Document) ([]byte, error) {
	return render(in, doc, &r.opts)
}

// RenderFile renders the chart for in over the document at path.
// The file is decoded once per version while it stays in the cache.
func (r *Renderer) RenderFile(in chart.BirthInputs, path string) ([]byte, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	key, err := cache.KeyFor(path)
	if err != nil {
		return nil, err
	}
	doc, err := r.docs.Load(key, func() (*document.Document, error) {
		return document.Load(path, r.opts.decoder)
	})
	if err != nil {
		return nil, err
	}
	return render(in, doc, &r.opts)
}

// CacheStats reports the document cache statistics.
func (r *Renderer) CacheStats() CacheStats {
	return r.docs.Stats()
}

// CacheStats contains document cache statistics.
type CacheStats = cache.Stats
