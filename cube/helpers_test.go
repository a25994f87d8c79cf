package cube

import (
	"math"
	"os"
	"testing"

	"github.com/robert-malhotra/go-fitscube/internal/dtype"
	"github.com/robert-malhotra/go-fitscube/internal/fits"
)

func mustRecord(t *testing.T, key string, value any, comment string) fits.Record {
	t.Helper()
	rec, err := fits.NewRecord(key, value, comment)
	if err != nil {
		t.Fatalf("NewRecord(%s) failed: %v", key, err)
	}
	return rec
}

func mustParse(t *testing.T, card string) fits.Record {
	t.Helper()
	rec, err := fits.ParseRecord(card)
	if err != nil {
		t.Fatalf("ParseRecord(%q) failed: %v", card, err)
	}
	return rec
}

// testCube is an in-memory image, first axis fastest.
type testCube struct {
	axes []int
	data []float64
}

// newTestCube fills a cube with value(i) for linear index i.
func newTestCube(axes []int, value func(i int) float64) *testCube {
	n := 1
	for _, a := range axes {
		n *= a
	}
	c := &testCube{axes: append([]int(nil), axes...), data: make([]float64, n)}
	for i := range c.data {
		c.data[i] = value(i)
	}
	return c
}

// sequential numbers pixels from 1 and leaves every fifth one missing.
func sequential(i int) float64 {
	if i%5 == 4 {
		return math.NaN()
	}
	return float64(i + 1)
}

func (c *testCube) index(coord []int) int {
	idx, stride := 0, 1
	for i, x := range coord {
		idx += x * stride
		stride *= c.axes[i]
	}
	return idx
}

// each calls fn with every coordinate of the cube.
func (c *testCube) each(fn func(coord []int)) {
	coord := make([]int, len(c.axes))
	for range c.data {
		fn(coord)
		for i := range coord {
			coord[i]++
			if coord[i] < c.axes[i] {
				break
			}
			coord[i] = 0
		}
	}
}

func (c *testCube) write(t *testing.T, path string, bitpix dtype.Bitpix, records ...fits.Record) {
	t.Helper()

	w, err := fits.Create(path, bitpix, c.axes)
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", path, err)
	}
	for _, rec := range records {
		if err := w.WriteRecord(rec); err != nil {
			t.Fatalf("WriteRecord(%s) failed: %v", rec.Key, err)
		}
	}

	n := c.axes[0]
	coord := make([]int, len(c.axes))
	for start := 0; start < len(c.data); start += n {
		if err := w.WriteLine(coord, c.data[start:start+n]); err != nil {
			t.Fatalf("WriteLine(%v) failed: %v", coord, err)
		}
		for i := 1; i < len(coord); i++ {
			coord[i]++
			if coord[i] < c.axes[i] {
				break
			}
			coord[i] = 0
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close(%s) failed: %v", path, err)
	}
}

// readTestCube reads the primary image of path.
func readTestCube(t *testing.T, path string) (*testCube, *fits.Header, dtype.Bitpix) {
	t.Helper()

	f, err := fits.Open(path)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", path, err)
	}
	defer f.Close()

	img, err := f.HDU(0)
	if err != nil {
		t.Fatalf("HDU(0) failed: %v", err)
	}
	c := newTestCube(img.Axes(), func(int) float64 { return 0 })
	lay := img.Layout()
	err = lay.EachLine(func(coord []int) error {
		idx, _ := lay.Index(coord)
		_, err := img.ReadLine(coord, c.data[idx:idx+lay.LineLen()])
		return err
	})
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return c, img.Header(), img.Bitpix()
}

// sameValue treats two NaNs as equal.
func sameValue(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func assertSameData(t *testing.T, want, got *testCube) {
	t.Helper()
	if len(want.data) != len(got.data) {
		t.Fatalf("pixel count %d, want %d", len(got.data), len(want.data))
	}
	for i := range want.data {
		if !sameValue(want.data[i], got.data[i]) {
			t.Fatalf("pixel %d = %v, want %v", i, got.data[i], want.data[i])
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// inverseOrder returns the order that undoes order.
func inverseOrder(order []int) []int {
	inv := make([]int, len(order))
	for i, axis := range order {
		inv[axis-1] = i + 1
	}
	return inv
}
