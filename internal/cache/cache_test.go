package cache

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/cycles/document"
)

func loader(calls *int, w int) func() (*document.Document, error) {
	return func() (*document.Document, error) {
		*calls++
		return &document.Document{Width: w, Height: 1, Base: make([]byte, w*4)}, nil
	}
}

func TestDocumentsLoadCaches(t *testing.T) {
	c := New(2)
	key := Key{Path: "/a.psd", Size: 10, ModTime: 1}

	calls := 0
	for range 3 {
		doc, err := c.Load(key, loader(&calls, 3))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if doc.Width != 3 {
			t.Errorf("Width = %d, want 3", doc.Width)
		}
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Len != 1 {
		t.Errorf("Stats() = %+v, want 2 hits, 1 miss, 1 entry", s)
	}
}

func TestDocumentsErrorsNotCached(t *testing.T) {
	c := New(2)
	key := Key{Path: "/bad.psd"}
	boom := errors.New("boom")

	for range 2 {
		_, err := c.Load(key, func() (*document.Document, error) { return nil, boom })
		if !errors.Is(err, boom) {
			t.Fatalf("Load() error = %v, want boom", err)
		}
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestDocumentsEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	calls := 0
	a := Key{Path: "/a"}
	b := Key{Path: "/b"}
	d := Key{Path: "/d"}

	_, _ = c.Load(a, loader(&calls, 1))
	_, _ = c.Load(b, loader(&calls, 1))
	_, _ = c.Get(a) // a is now more recent than b
	_, _ = c.Load(d, loader(&calls, 1))

	if _, ok := c.Get(b); ok {
		t.Errorf("b should have been evicted")
	}
	if _, ok := c.Get(a); !ok {
		t.Errorf("a should still be cached")
	}
	if _, ok := c.Get(d); !ok {
		t.Errorf("d should be cached")
	}
}

func TestDocumentsReplacesStaleVersion(t *testing.T) {
	c := New(4)
	calls := 0
	_, _ = c.Load(Key{Path: "/a", ModTime: 1}, loader(&calls, 1))
	_, _ = c.Load(Key{Path: "/a", ModTime: 2}, loader(&calls, 2))

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if calls != 2 {
		t.Errorf("loader called %d times, want 2", calls)
	}
}

func TestDocumentsDisabled(t *testing.T) {
	c := New(0)
	calls := 0
	key := Key{Path: "/a"}
	_, _ = c.Load(key, loader(&calls, 1))
	_, _ = c.Load(key, loader(&calls, 1))
	if calls != 2 {
		t.Errorf("loader called %d times, want 2", calls)
	}
}

func TestDocumentsConcurrentLoad(t *testing.T) {
	c := New(1)
	key := Key{Path: "/a"}

	var (
		mu    sync.Mutex
		calls int
		wg    sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Load(key, func() (*document.Document, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return &document.Document{}, nil
			})
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
}

func TestKeyFor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.psd")
	if err := os.WriteFile(path, []byte("abc"), 0o600); err != nil {
		t.Fatal(err)
	}

	k1, err := KeyFor(path)
	if err != nil {
		t.Fatalf("KeyFor() error = %v", err)
	}
	if k1.Size != 3 {
		t.Errorf("Size = %d, want 3", k1.Size)
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	k2, err := KeyFor(path)
	if err != nil {
		t.Fatalf("KeyFor() error = %v", err)
	}
	if k1 == k2 {
		t.Errorf("KeyFor() did not change after touching the file")
	}

	_, err = KeyFor(filepath.Join(t.TempDir(), "missing.psd"))
	if !errors.Is(err, document.ErrRead) {
		t.Errorf("KeyFor(missing) error = %v, want ErrRead", err)
	}
}
