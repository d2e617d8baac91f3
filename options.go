package cycles

import (
	"runtime"

	"github.com/gogpu/cycles/chart"
	"github.com/gogpu/cycles/document"
)

// Option configures Generate and NewRenderer.
//
// Example:
//
//	r := cycles.NewRenderer(
//	    cycles.WithWorkers(0),
//	    cycles.WithFrames(chart.CorrectedFrames),
//	)
type Option func(*options)

// options holds the render configuration.
type options struct {
	workers   int
	frames    chart.FrameTable
	decoder   document.Decoder
	cacheSize int
}

// defaultOptions returns the default render options.
func defaultOptions() options {
	return options{
		workers:   1,
		frames:    chart.LegacyFrames,
		decoder:   document.PSD{},
		cacheSize: 4,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets how many goroutines blend a layer.
// Zero or a negative value uses GOMAXPROCS; 1 blends serially.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithFrames sets the frame table. The default is chart.LegacyFrames,
// which matches existing documents; chart.CorrectedFrames adds the Drive
// secondary frame. Pass nil to paint no frames.
func WithFrames(t chart.FrameTable) Option {
	return func(o *options) {
		o.frames = t
	}
}

// WithDecoder sets the document decoder used for files.
// The default decodes PSD.
func WithDecoder(d document.Decoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithCacheSize sets how many decoded documents a Renderer keeps.
// Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}
