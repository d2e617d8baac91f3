package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/cycles/document"
)

// Key identifies one version of a document file.
type Key struct {
	Path    string
	Size    int64
	ModTime int64 // UnixNano
}

// KeyFor stats path and returns its current key.
func KeyFor(path string) (Key, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Key{}, fmt.Errorf("%w %q: %w", document.ErrRead, path, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return Key{}, fmt.Errorf("%w %q: %w", document.ErrRead, path, err)
	}
	return Key{Path: abs, Size: fi.Size(), ModTime: fi.ModTime().UnixNano()}, nil
}

// Documents is a thread-safe LRU cache of decoded documents.
// When it holds more than limit entries the least recently used are evicted.
type Documents struct {
	mu      sync.Mutex
	entries map[Key]*entry
	limit   int
	tick    int64 // monotonic access counter

	hits   uint64
	misses uint64
}

type entry struct {
	doc   *document.Document
	atime int64
}

// New creates a cache holding at most limit documents.
// A limit of 0 or less disables caching: Load always calls its loader.
func New(limit int) *Documents {
	return &Documents{
		entries: make(map[Key]*entry),
		limit:   limit,
	}
}

// Get returns the cached document for key.
func (c *Documents) Get(key Key) (*document.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.tick++
	e.atime = c.tick
	return e.doc, true
}

// Load returns the cached document for key, or calls load and caches its
// result. Errors are returned as is and never cached. The loader runs
// under the cache lock so a document is decoded once even under contention.
func (c *Documents) Load(key Key, load func() (*document.Document, error)) (*document.Document, error) {
	if c.limit <= 0 {
		return load()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.tick++
		e.atime = c.tick
		return e.doc, nil
	}
	c.misses++

	doc, err := load()
	if err != nil {
		return nil, err
	}

	// Older versions of the same file are dead weight.
	for k := range c.entries {
		if k.Path == key.Path {
			delete(c.entries, k)
		}
	}

	c.tick++
	c.entries[key] = &entry{doc: doc, atime: c.tick}
	if len(c.entries) > c.limit {
		c.evictOldest()
	}
	return doc, nil
}

// Len returns the number of cached documents.
func (c *Documents) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Documents) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:      len(c.entries),
		Capacity: c.limit,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// evictOldest removes least recently used entries until the cache fits.
// Caller must hold c.mu.
func (c *Documents) evictOldest() {
	for len(c.entries) > c.limit {
		var (
			oldest Key
			atime  int64 = -1
		)
		for k, e := range c.entries {
			if atime < 0 || e.atime < atime {
				oldest, atime = k, e.atime
			}
		}
		delete(c.entries, oldest)
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}
