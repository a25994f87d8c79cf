package fits

import (
	"fmt"

	"github.com/robert-malhotra/go-fitscube/internal/dtype"
	"github.com/robert-malhotra/go-fitscube/internal/layout"
)

// Image is one HDU of an open file. Only primary arrays and IMAGE extensions
// have readable pixels; other HDUs expose their header only.
type Image struct {
	file    *File
	index   int
	header  *Header
	bitpix  dtype.Bitpix
	axes    []int
	scaling dtype.Scaling
	layout  *layout.Contiguous
	raw     []byte

	// err explains why pixels cannot be read from this HDU.
	err error
}

func newImage(f *File, index int, hdr *Header, dataStart int64) *Image {
	img := &Image{file: f, index: index, header: hdr}

	if index > 0 {
		xt, err := hdr.String("XTENSION")
		if err != nil || xt != "IMAGE" {
			img.err = fmt.Errorf("%w: HDU %d is %q", ErrNotImage, index, xt)
			return img
		}
	}

	var err error
	if img.bitpix, err = hdr.Bitpix(); err != nil {
		img.err = err
		return img
	}
	if img.axes, err = hdr.Axes(); err != nil {
		img.err = err
		return img
	}
	if img.scaling, err = hdr.Scaling(); err != nil {
		img.err = err
		return img
	}
	if len(img.axes) == 0 {
		img.err = fmt.Errorf("%w: HDU %d has no data", ErrNotImage, index)
		return img
	}
	if img.layout, err = layout.NewContiguous(dataStart, img.axes, img.bitpix.Size()); err != nil {
		img.err = fmt.Errorf("%w: HDU %d: %v", ErrNotImage, index, err)
	}
	return img
}

// Index returns the 0-based HDU number.
func (img *Image) Index() int {
	return img.index
}

// Header returns the HDU header.
func (img *Image) Header() *Header {
	return img.header
}

// Err returns the reason pixels cannot be read, or nil for a readable image.
func (img *Image) Err() error {
	return img.err
}

// Bitpix returns the element type.
func (img *Image) Bitpix() dtype.Bitpix {
	return img.bitpix
}

// Axes returns a copy of the axis extents, NAXIS1 first.
func (img *Image) Axes() []int {
	return append([]int(nil), img.axes...)
}

// Layout returns the data unit layout, or nil when the HDU has no pixels.
func (img *Image) Layout() *layout.Contiguous {
	return img.layout
}

// ReadLine reads len(dst) pixels starting at the 0-based coordinate coord
// along the first axis. Values are scaled to physical units and null pixels
// are returned as NaN. The number of nulls is returned.
//
// ReadLine reuses an internal buffer and must not be called concurrently.
func (img *Image) ReadLine(coord []int, dst []float64) (int, error) {
	if img.err != nil {
		return 0, img.err
	}
	if img.file.closed {
		return 0, ErrClosed
	}
	if len(coord) == 0 || coord[0]+len(dst) > img.axes[0] {
		return 0, fmt.Errorf("line of %d pixels at %v exceeds NAXIS1 = %d", len(dst), coord, img.axes[0])
	}

	off, err := img.layout.Offset(coord)
	if err != nil {
		return 0, err
	}

	n := len(dst) * img.bitpix.Size()
	if cap(img.raw) < n {
		img.raw = make([]byte, n)
	}
	raw := img.raw[:n]

	if err := img.file.reader.At(off).ReadFull(raw); err != nil {
		return 0, fmt.Errorf("reading line at %v: %w", coord, err)
	}
	return dtype.Decode(img.bitpix, img.scaling, raw, dst)
}
