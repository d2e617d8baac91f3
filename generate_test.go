package cycles

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/cycles/chart"
	"github.com/gogpu/cycles/document"
	"github.com/gogpu/cycles/internal/blend"
	"github.com/gogpu/cycles/internal/psdtest"
)

var sample = chart.BirthInputs{Day: 14, Month: 6, Year: 1946, Age: 79}

func decodePNG(t *testing.T, data []byte) []byte {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return toNRGBA(img).Pix
}

func TestGenerateEndToEnd(t *testing.T) {
	const w, h = 100, 100
	base := solid(w, h, 0, 0, 0, 255)
	doc := newDoc(w, h, base,
		// Deep personality primary for the sample is 4.
		document.Layer{Name: "PPRPA04", Pix: square(w, h, 10, 10, 20, 200, 100, 50, 128)},
		// Any other value of the same slot is never painted.
		document.Layer{Name: "PPRPA09", Pix: solid(w, h, 255, 255, 255, 255)},
	)

	data, err := Generate(sample, doc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	got := decodePNG(t, data)
	if len(got) != w*h*4 {
		t.Fatalf("output is %d bytes, want %d", len(got), w*h*4)
	}

	r, g, b, a := blend.SourceOver(200, 100, 50, 128, 0, 0, 0, 255)
	inside := [4]byte{r, g, b, a}
	outside := [4]byte{0, 0, 0, 255}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			want := outside
			if x >= 10 && x < 30 && y >= 10 && y < 30 {
				want = inside
			}
			if px := [4]byte(got[i : i+4]); px != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, px, want)
			}
		}
	}

	if !bytes.Equal(doc.Base, base) {
		t.Errorf("Generate() modified the document base")
	}
}

func TestGenerateFrameTables(t *testing.T) {
	const w, h = 4, 4
	doc := newDoc(w, h, solid(w, h, 0, 0, 0, 255),
		document.Layer{Name: "PPPSA-R", Pix: solid(w, h, 255, 0, 0, 255)},
	)

	legacy, err := Generate(sample, doc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if px := decodePNG(t, legacy); px[0] != 0 {
		t.Errorf("legacy frames painted PPPSA-R: red = %d", px[0])
	}

	corrected, err := Generate(sample, doc, WithFrames(chart.CorrectedFrames))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if px := decodePNG(t, corrected); px[0] != 255 {
		t.Errorf("corrected frames did not paint PPPSA-R: red = %d", px[0])
	}
}

func TestGenerateParallel(t *testing.T) {
	const w, h = 64, 48
	doc := newDoc(w, h, noise(w, h, 30),
		document.Layer{Name: "PPRPA-R", Pix: noise(w, h, 31)},
		document.Layer{Name: "PPRPA04", Pix: noise(w, h, 32)},
		document.Layer{Name: "NEMSA07", Pix: noise(w, h, 33)},
		document.Layer{Name: "PPRSB07", Pix: noise(w, h, 34)},
	)

	serial, err := Generate(sample, doc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	parallel, err := Generate(sample, doc, WithWorkers(0))
	if err != nil {
		t.Fatalf("Generate(WithWorkers(0)) error = %v", err)
	}
	if !bytes.Equal(decodePNG(t, serial), decodePNG(t, parallel)) {
		t.Errorf("parallel output differs from serial")
	}
}

func TestGenerateNegativeInput(t *testing.T) {
	doc := newDoc(1, 1, make([]byte, 4))
	_, err := Generate(chart.BirthInputs{Day: -1}, doc)
	if !errors.Is(err, chart.ErrNegativeInput) {
		t.Errorf("Generate() error = %v, want ErrNegativeInput", err)
	}
}

type countingDecoder struct {
	calls int
	doc   *document.Document
}

func (d *countingDecoder) Decode(r io.Reader) (*document.Document, error) {
	d.calls++
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	return d.doc, nil
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRendererCachesDocuments(t *testing.T) {
	dec := &countingDecoder{doc: newDoc(2, 2, solid(2, 2, 0, 0, 0, 255))}
	path := writeFile(t, "cycles.psd", []byte("stub"))
	r := NewRenderer(WithDecoder(dec))

	for range 3 {
		if _, err := r.RenderFile(sample, path); err != nil {
			t.Fatalf("RenderFile() error = %v", err)
		}
	}
	if dec.calls != 1 {
		t.Errorf("decoder called %d times, want 1", dec.calls)
	}
	if s := r.CacheStats(); s.Hits != 2 {
		t.Errorf("CacheStats().Hits = %d, want 2", s.Hits)
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if _, err := r.RenderFile(sample, path); err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if dec.calls != 2 {
		t.Errorf("decoder called %d times after touching the file, want 2", dec.calls)
	}
}

func TestGenerateFilePSD(t *testing.T) {
	const w, h = 4, 3
	path := filepath.Join(t.TempDir(), "cycles.psd")
	file := psdtest.File{
		Width:  w,
		Height: h,
		Layers: []psdtest.Layer{
			{Name: "PPRPA04", Rect: image.Rect(1, 2, 3, 3), Fill: color.NRGBA{R: 255, A: 255}},
			{Name: "PPRPA09", Rect: image.Rect(0, 0, w, h), Fill: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		},
	}
	if err := file.WriteFile(path); err != nil {
		t.Fatal(err)
	}

	data, err := GenerateFile(sample, path)
	if err != nil {
		t.Fatalf("GenerateFile() error = %v", err)
	}
	got := decodePNG(t, data)
	if len(got) != w*h*4 {
		t.Fatalf("output is %d bytes, want %d", len(got), w*h*4)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			want := [4]byte{0, 0, 0, 255}
			if y == 2 && (x == 1 || x == 2) {
				want = [4]byte{255, 0, 0, 255}
			}
			if px := [4]byte(got[i : i+4]); px != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, px, want)
			}
		}
	}
}

func TestGenerateFileKeepsCallerOptions(t *testing.T) {
	opts := make([]Option, 1, 2)
	opts[0] = WithWorkers(1)

	missing := filepath.Join(t.TempDir(), "missing.psd")
	_, _ = GenerateFile(sample, missing, opts...)

	if spare := opts[:2][1]; spare != nil {
		t.Errorf("GenerateFile() wrote into the caller's option slice")
	}
}

func TestRenderFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.psd")
	if _, err := GenerateFile(sample, missing); !errors.Is(err, document.ErrRead) {
		t.Errorf("GenerateFile(missing) error = %v, want ErrRead", err)
	}

	garbage := writeFile(t, "garbage.psd", []byte("definitely not a psd"))
	_, err := GenerateFile(sample, garbage)
	if !errors.Is(err, document.ErrDecode) {
		t.Errorf("GenerateFile(garbage) error = %v, want ErrDecode", err)
	}

	if _, err := NewRenderer().RenderFile(chart.BirthInputs{Age: -2}, garbage); !errors.Is(err, chart.ErrNegativeInput) {
		t.Errorf("RenderFile(negative) error = %v, want ErrNegativeInput", err)
	}
}
