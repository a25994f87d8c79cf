package fits

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/robert-malhotra/go-fitscube/internal/binary"
	"github.com/robert-malhotra/go-fitscube/internal/dtype"
	"github.com/robert-malhotra/go-fitscube/internal/filter"
	"github.com/robert-malhotra/go-fitscube/internal/layout"
)

// ErrReserved is returned when a caller writes a record the writer owns.
var ErrReserved = errors.New("reserved keyword")

// Sink is the storage an ImageWriter writes to.
type Sink interface {
	io.WriterAt
	io.Closer
}

// ImageWriter writes a primary image HDU: header records first, then pixel
// lines, then padding on Close.
type ImageWriter struct {
	sink    Sink
	w       *binary.Writer
	bitpix  dtype.Bitpix
	axes    []int
	scaling dtype.Scaling
	layout  *layout.Contiguous
	raw     []byte

	finalized bool
	closed    bool

	// finish runs after the sink is closed. It compresses the temporary
	// file into the requested path when err is nil and removes it.
	finish func(err error) error
}

// Create creates a FITS file at path holding a single image of the given
// type and shape. A ".gz" or ".zst" suffix selects a compressed container.
func Create(path string, bitpix dtype.Bitpix, axes []int) (*ImageWriter, error) {
	codec := filter.ForPath(path)
	if codec == nil {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating file: %w", err)
		}
		w, err := NewImageWriter(f, bitpix, axes)
		if err != nil {
			f.Close()
			return nil, err
		}
		return w, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".fitscube-*.fits")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}
	w, err := NewImageWriter(tmp, bitpix, axes)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	w.finish = func(err error) error {
		defer os.Remove(tmp.Name())
		if err != nil {
			return err
		}
		return compressFile(tmp.Name(), path, codec)
	}
	return w, nil
}

// NewImageWriter starts an image on sink and writes the mandatory records.
func NewImageWriter(sink Sink, bitpix dtype.Bitpix, axes []int) (*ImageWriter, error) {
	if err := bitpix.Validate(); err != nil {
		return nil, err
	}
	if len(axes) == 0 || len(axes) > MaxAxes {
		return nil, fmt.Errorf("invalid number of axes: %d", len(axes))
	}
	lay, err := layout.NewContiguous(0, axes, bitpix.Size())
	if err != nil {
		return nil, err
	}

	iw := &ImageWriter{
		sink:    sink,
		w:       binary.NewWriter(sink),
		bitpix:  bitpix,
		axes:    append([]int(nil), axes...),
		scaling: dtype.Identity(),
		layout:  lay,
	}

	cards := []struct {
		key     string
		value   any
		comment string
	}{
		{"SIMPLE", true, "conforms to FITS standard"},
		{"BITPIX", int(bitpix), "array data type"},
		{"NAXIS", len(axes), "number of array dimensions"},
	}
	for i, n := range axes {
		cards = append(cards, cards[2])
		cards[len(cards)-1].key = fmt.Sprintf("NAXIS%d", i+1)
		cards[len(cards)-1].value = n
		cards[len(cards)-1].comment = ""
	}
	for _, c := range cards {
		rec, err := NewRecord(c.key, c.value, c.comment)
		if err != nil {
			return nil, err
		}
		if err := iw.w.WriteBytes([]byte(rec.Card())); err != nil {
			return nil, fmt.Errorf("writing %s: %w", c.key, err)
		}
	}
	return iw, nil
}

// Axes returns a copy of the image shape.
func (iw *ImageWriter) Axes() []int {
	return append([]int(nil), iw.axes...)
}

// WriteRecord appends one header record. BSCALE, BZERO and BLANK records
// also set the encoding used by WriteLine.
func (iw *ImageWriter) WriteRecord(rec Record) error {
	if iw.closed {
		return ErrClosed
	}
	if iw.finalized {
		return ErrHeaderClosed
	}
	if iw.reserved(rec.Key) {
		return fmt.Errorf("%w: %s", ErrReserved, rec.Key)
	}

	switch rec.Key {
	case "BSCALE", "BZERO":
		v, err := rec.FloatValue()
		if err != nil {
			return err
		}
		if rec.Key == "BSCALE" {
			iw.scaling.BScale = v
		} else {
			iw.scaling.BZero = v
		}
	case "BLANK":
		v, err := rec.IntValue()
		if err != nil {
			return err
		}
		iw.scaling.Blank, iw.scaling.HasBlank = v, true
	}

	if err := iw.w.WriteBytes([]byte(rec.Card())); err != nil {
		return fmt.Errorf("writing %s: %w", rec.Key, err)
	}
	return nil
}

func (iw *ImageWriter) reserved(key string) bool {
	switch key {
	case "SIMPLE", "BITPIX", "NAXIS", "END", "XTENSION":
		return true
	}
	for i := range iw.axes {
		if key == fmt.Sprintf("NAXIS%d", i+1) {
			return true
		}
	}
	return false
}

// finalize writes END, pads the header and fixes the data unit offset.
func (iw *ImageWriter) finalize() error {
	if iw.finalized {
		return nil
	}
	iw.finalized = true

	if err := iw.w.WriteBytes([]byte(pad("END", CardSize))); err != nil {
		return fmt.Errorf("writing END: %w", err)
	}
	if err := iw.w.WritePadding(binary.BlockSize, ' '); err != nil {
		return fmt.Errorf("padding header: %w", err)
	}

	lay, err := layout.NewContiguous(iw.w.Pos(), iw.axes, iw.bitpix.Size())
	if err != nil {
		return err
	}
	iw.layout = lay
	return nil
}

// WriteLine encodes len(src) pixels starting at the 0-based coordinate coord.
// The first call closes the header.
func (iw *ImageWriter) WriteLine(coord []int, src []float64) error {
	if iw.closed {
		return ErrClosed
	}
	if err := iw.finalize(); err != nil {
		return err
	}
	if len(coord) == 0 || coord[0]+len(src) > iw.axes[0] {
		return fmt.Errorf("line of %d pixels at %v exceeds NAXIS1 = %d", len(src), coord, iw.axes[0])
	}

	off, err := iw.layout.Offset(coord)
	if err != nil {
		return err
	}

	n := len(src) * iw.bitpix.Size()
	if cap(iw.raw) < n {
		iw.raw = make([]byte, n)
	}
	raw := iw.raw[:n]
	if err := dtype.Encode(iw.bitpix, iw.scaling, src, raw); err != nil {
		return err
	}
	if err := iw.w.At(off).WriteBytes(raw); err != nil {
		return fmt.Errorf("writing line at %v: %w", coord, err)
	}
	return nil
}

// Close pads the data unit to a block boundary and closes the sink.
func (iw *ImageWriter) Close() error {
	if iw.closed {
		return nil
	}

	err := iw.finalize()
	if err == nil {
		end := iw.layout.Base() + iw.layout.Size()
		err = iw.w.At(end).WriteZeros(int(binary.PaddedSize(iw.layout.Size()) - iw.layout.Size()))
	}
	iw.closed = true

	if cerr := iw.sink.Close(); err == nil {
		err = cerr
	}
	if iw.finish != nil {
		err = iw.finish(err)
	}
	return err
}

func compressFile(src, dst string, codec filter.Codec) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := filter.Compress(out, in, codec); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
