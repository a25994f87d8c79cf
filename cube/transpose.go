package cube

import (
	"github.com/robert-malhotra/go-fitscube/internal/layout"
)

// Transpose reorders the axes of the image in inputPath and writes it to
// outputPath. A ".gz" or ".zst" suffix on either path selects a compressed
// container.
//
// The whole output cube is held in memory while the input is streamed one
// line at a time. Parameter problems are reported as a *ValidationError
// before the output is created; file failures as a *StorageError, which may
// leave a partial output behind.
func Transpose(inputPath, outputPath string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	src, err := openSource(inputPath, o.hdu)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	axes := src.img.Axes()
	order := o.order
	if order != nil {
		err = ValidateOrder(order, len(axes))
	} else {
		order, err = ResolveOrder(src.ctypes())
	}
	if err != nil {
		return nil, err
	}

	tc, err := NewTransform(order, axes)
	if err != nil {
		return nil, invalid(ErrValidation, "%v", err)
	}
	o.debugf(1, "transform", "input", inputPath, "output", outputPath,
		"order", tc.Order(), "nAxisIn", tc.InExtents(), "nAxisOut", tc.OutExtents(), "matrix", tc.String())

	var stats Tracker
	data, err := scatter(src, tc, &stats, o)
	if err != nil {
		return nil, err
	}
	o.debugf(1, "input image read complete", "pixels", len(data), "valid", stats.Count())

	w, err := o.create(outputPath, src.img.Bitpix(), tc.OutExtents())
	if err != nil {
		return nil, &StorageError{Op: "create", Path: outputPath, Err: err}
	}
	o.debugf(1, "output file created", "path", outputPath)

	if err := writeTransposed(w, src, tc, data, outputPath, o); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, &StorageError{Op: "close", Path: outputPath, Err: err}
	}
	o.debugf(1, "output image finalized", "path", outputPath)

	return newResult(&stats)
}

// scatter reads the input once and places every pixel at its transposed
// position in a new output buffer. Missing pixels are stored as NaN.
func scatter(src *source, tc *TransformContext, stats *Tracker, o *options) ([]float64, error) {
	total := 1
	for _, n := range tc.out {
		total *= n
	}
	data := make([]float64, total)

	var outCoord []int
	if o.debug >= 3 {
		outCoord = make([]int, tc.Rank())
	}

	err := src.eachLine(func(coord []int, line []float64) error {
		o.debugf(2, "reading input line", "coord", coord)

		base, step := tc.lineTarget(coord)
		for x, v := range line {
			data[base+x*step] = v
			stats.Observe(v)

			if outCoord != nil {
				coord[0] = x
				tc.Apply(coord, outCoord)
				o.debugf(3, "pixel", "in", coord, "out", outCoord, "value", v)
				coord[0] = 0
			}
		}
		return nil
	})
	return data, err
}

// writeTransposed writes the remapped header and then the output lines in
// the output's own axis order.
func writeTransposed(w imageWriter, src *source, tc *TransformContext, data []float64, path string, o *options) error {
	if err := copyHeader(src.img.Header(), w, path, o, tc.remapRecord); err != nil {
		return err
	}
	o.debugf(1, "header records copied with axes modifications")

	lay, err := layout.NewContiguous(0, tc.OutExtents(), 8)
	if err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	n := lay.LineLen()
	return lay.EachLine(func(coord []int) error {
		idx, err := lay.Index(coord)
		if err == nil {
			err = w.WriteLine(coord, data[idx:idx+n])
		}
		if err != nil {
			return &StorageError{Op: "write", Path: path, Err: err}
		}
		return nil
	})
}
