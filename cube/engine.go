package cube

import (
	"fmt"

	"github.com/robert-malhotra/go-fitscube/internal/fits"
)

// MinAxes and MaxAxes bound the dimensionality of the images handled.
const (
	MinAxes = 2
	MaxAxes = 4
)

// source is an open input HDU.
type source struct {
	path string
	file *fits.File
	img  *fits.Image
}

func openSource(path string, hdu int) (*source, error) {
	if hdu < 0 {
		return nil, invalid(ErrValidation, "HDU value (%d) must be a non-negative integer", hdu)
	}
	f, err := fits.Open(path)
	if err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}
	img, err := f.HDU(hdu)
	if err != nil {
		f.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}
	if err := img.Err(); err != nil {
		f.Close()
		return nil, &StorageError{Op: "read", Path: path, Err: err}
	}

	src := &source{path: path, file: f, img: img}
	if n := len(img.Axes()); n < MinAxes || n > MaxAxes {
		src.Close()
		return nil, invalid(ErrUnsupportedDims,
			"Image has %d dimensions; only %d to %d are supported.", n, MinAxes, MaxAxes)
	}
	return src, nil
}

func (s *source) Close() error {
	return s.file.Close()
}

// ctypes returns CTYPE1..CTYPEn, with "" for absent keywords.
func (s *source) ctypes() []string {
	hdr := s.img.Header()
	ctypes := make([]string, len(s.img.Axes()))
	for i := range ctypes {
		ctypes[i], _ = hdr.String(fmt.Sprintf("CTYPE%d", i+1))
	}
	return ctypes
}

// eachLine reads every input line in file order into one reused buffer.
func (s *source) eachLine(fn func(coord []int, line []float64) error) error {
	lay := s.img.Layout()
	line := make([]float64, lay.LineLen())
	return lay.EachLine(func(coord []int) error {
		if _, err := s.img.ReadLine(coord, line); err != nil {
			return &StorageError{Op: "read", Path: s.path, Err: err}
		}
		return fn(coord, line)
	})
}

// copyHeader enumerates the input records in order and writes each one that
// rewrite keeps. Enumeration ends at the first record that cannot be read.
func copyHeader(hdr *fits.Header, w imageWriter, path string, o *options,
	rewrite func(fits.Record) (fits.Record, Action, error)) error {
	for n := 1; ; n++ {
		rec, err := hdr.Record(n)
		if err != nil {
			o.debugf(1, "header enumeration ended", "records", n-1, "reason", err)
			return nil
		}

		out, action, err := rewrite(rec)
		if err != nil {
			return &StorageError{Op: "write", Path: path, Err: fmt.Errorf("card %d: %w", n, err)}
		}
		if action == Drop {
			continue
		}
		o.debugf(1, "header record", "n", n, "card", rec.String(), "action", action, "written", out.String())

		if err := w.WriteRecord(out); err != nil {
			return &StorageError{Op: "write", Path: path, Err: fmt.Errorf("writing card %d: %w", n, err)}
		}
	}
}
