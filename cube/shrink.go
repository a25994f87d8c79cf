package cube

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/robert-malhotra/go-fitscube/internal/dtype"
	"github.com/robert-malhotra/go-fitscube/internal/fits"
)

// ShrinkCube reduces the resolution of the cube in HDU hdu of inputPath and
// writes it to outputPath as a 64-bit float image.
//
// The two spatial axes shrink by factor: each output pixel is the area
// weighted mean of the input pixels it covers, with missing pixels left out.
// Planes of the third axis are averaged in groups of mfactor and a fourth
// axis is copied. With fixedSize the output has exactly floor(NAXIS/factor)
// pixels and a trailing partial pixel is dropped; otherwise the size is
// rounded up and the partial pixel averages what it covers.
func ShrinkCube(inputPath string, hdu int, outputPath string, factor float64, mfactor int, fixedSize bool, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, invalid(ErrValidation, "Shrink factor (%g) must be a positive number", factor)
	}
	if mfactor < 1 {
		return nil, invalid(ErrValidation, "Third axis compression factor (%d) must be a positive integer", mfactor)
	}

	src, err := openSource(inputPath, hdu)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	plan, err := newShrinkPlan(src.img.Axes(), factor, mfactor, fixedSize)
	if err != nil {
		return nil, err
	}
	o.debugf(1, "shrink", "input", inputPath, "output", outputPath,
		"factor", factor, "mfactor", mfactor, "fixedSize", fixedSize,
		"nAxisIn", plan.in, "nAxisOut", plan.out)

	w, err := o.create(outputPath, dtype.Float64, plan.out)
	if err != nil {
		return nil, &StorageError{Op: "create", Path: outputPath, Err: err}
	}

	var stats Tracker
	err = copyHeader(src.img.Header(), w, outputPath, o, plan.rescale)
	if err == nil {
		err = plan.run(src, w, outputPath, &stats, o)
	}
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, &StorageError{Op: "close", Path: outputPath, Err: err}
	}
	o.debugf(1, "output image finalized", "path", outputPath)

	return newResult(&stats)
}

// span is the overlap of an output pixel with one input pixel.
type span struct {
	index  int
	weight float64
}

type shrinkPlan struct {
	factor  float64
	mfactor int
	in, out []int

	// xs and ys list the input pixels covered by each output column and row.
	xs, ys [][]span
}

func newShrinkPlan(axes []int, factor float64, mfactor int, fixedSize bool) (*shrinkPlan, error) {
	p := &shrinkPlan{
		factor:  factor,
		mfactor: mfactor,
		in:      append([]int(nil), axes...),
		out:     append([]int(nil), axes...),
	}

	p.out[0] = shrunkSize(axes[0], factor, fixedSize)
	p.out[1] = shrunkSize(axes[1], factor, fixedSize)
	if len(axes) > 2 {
		p.out[2] = axes[2] / mfactor
		if !fixedSize && axes[2]%mfactor != 0 {
			p.out[2]++
		}
	}
	for i, n := range p.out {
		if n < 1 {
			return nil, invalid(ErrValidation, "Shrink factor leaves axis %d of %d pixels empty", i+1, axes[i])
		}
	}

	p.xs = spans(axes[0], p.out[0], factor)
	p.ys = spans(axes[1], p.out[1], factor)
	return p, nil
}

func shrunkSize(n int, factor float64, fixedSize bool) int {
	const eps = 1e-9
	v := float64(n) / factor
	if fixedSize {
		return int(math.Floor(v + eps))
	}
	return int(math.Ceil(v - eps))
}

// spans returns, for each of nout output pixels, the input pixels it covers
// and the length of each overlap.
func spans(n, nout int, factor float64) [][]span {
	out := make([][]span, nout)
	for i := range out {
		lo := float64(i) * factor
		hi := math.Min(float64(i+1)*factor, float64(n))
		for x := int(math.Floor(lo)); x < n && float64(x) < hi; x++ {
			w := math.Min(float64(x+1), hi) - math.Max(float64(x), lo)
			if w > 0 {
				out[i] = append(out[i], span{index: x, weight: w})
			}
		}
	}
	return out
}

// run reads each group of input planes and writes the output plane it
// averages to.
func (p *shrinkPlan) run(src *source, w imageWriter, path string, stats *Tracker, o *options) error {
	rank := len(p.in)
	n1, n2 := p.in[0], p.in[1]
	n3, n4 := 1, 1
	if rank > 2 {
		n3 = p.in[2]
	}
	if rank > 3 {
		n4 = p.in[3]
	}
	nout3 := 1
	if rank > 2 {
		nout3 = p.out[2]
	}

	planes := make([]float64, p.mfactor*n1*n2)
	outLine := make([]float64, p.out[0])
	var vals, weights []float64

	in := make([]int, rank)
	out := make([]int, rank)
	for l := 0; l < n4; l++ {
		for k := 0; k < nout3; k++ {
			first := k * p.mfactor
			count := min(p.mfactor, n3-first)

			for plane := 0; plane < count; plane++ {
				for j := 0; j < n2; j++ {
					setCoord(in, 0, j, first+plane, l)
					line := planes[(plane*n2+j)*n1 : (plane*n2+j+1)*n1]
					if _, err := src.img.ReadLine(in, line); err != nil {
						return &StorageError{Op: "read", Path: src.path, Err: err}
					}
				}
			}
			o.debugf(2, "averaging planes", "first", first, "count", count, "cube", l)

			for jo, ys := range p.ys {
				for xo, xs := range p.xs {
					vals, weights = vals[:0], weights[:0]
					for plane := 0; plane < count; plane++ {
						for _, y := range ys {
							row := planes[(plane*n2+y.index)*n1:]
							for _, x := range xs {
								if v := row[x.index]; !math.IsNaN(v) {
									vals = append(vals, v)
									weights = append(weights, x.weight*y.weight)
								}
							}
						}
					}

					outLine[xo] = math.NaN()
					if len(vals) > 0 && floats.Sum(weights) > 0 {
						outLine[xo] = stat.Mean(vals, weights)
					}
					stats.Observe(outLine[xo])
					o.debugf(3, "pixel", "out", []int{xo, jo, k, l}, "inputs", len(vals), "value", outLine[xo])
				}

				setCoord(out, 0, jo, k, l)
				if err := w.WriteLine(out, outLine); err != nil {
					return &StorageError{Op: "write", Path: path, Err: err}
				}
			}
		}
	}
	return nil
}

// setCoord fills as many of i, j, k, l as coord has room for.
func setCoord(coord []int, i, j, k, l int) {
	for n, v := range []int{i, j, k, l}[:len(coord)] {
		coord[n] = v
	}
}

// rescale rewrites the pixel-scale keywords for the new resolution. Scaling
// records are dropped as the output is always floating point.
func (p *shrinkPlan) rescale(rec fits.Record) (fits.Record, Action, error) {
	switch {
	case structural(rec.Key):
		return rec, Drop, nil
	case rec.Key == "BSCALE", rec.Key == "BZERO", rec.Key == "BLANK":
		return rec, Drop, nil
	}

	var apply func(v float64) float64
	if axis, ok := p.axisSuffix(rec.Key, "CDELT"); ok {
		f := p.axisFactor(axis)
		apply = func(v float64) float64 { return v * f }
	} else if axis, ok := p.axisSuffix(rec.Key, "CRPIX"); ok {
		f := p.axisFactor(axis)
		apply = func(v float64) float64 { return (v-0.5)/f + 0.5 }
	} else if rest, ok := strings.CutPrefix(rec.Key, "CD"); ok && len(rest) == 3 && rest[1] == '_' {
		if _, ok := p.axisSuffix(rest[:1], ""); ok {
			if axis, ok := p.axisSuffix(rest[2:], ""); ok {
				f := p.axisFactor(axis)
				apply = func(v float64) float64 { return v * f }
			}
		}
	}
	if apply == nil {
		return rec, Copy, nil
	}

	v, err := rec.FloatValue()
	if err != nil {
		return rec, Copy, nil
	}
	out, err := fits.NewRecord(rec.Key, apply(v), rec.Comment)
	return out, Rewrite, err
}

// axisSuffix parses key as prefix followed by one axis digit.
func (p *shrinkPlan) axisSuffix(key, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok || len(rest) != 1 || rest[0] < '1' || int(rest[0]-'0') > len(p.in) {
		return 0, false
	}
	return int(rest[0] - '0'), true
}

// axisFactor returns how many input pixels one output pixel spans along the
// 1-based axis.
func (p *shrinkPlan) axisFactor(axis int) float64 {
	switch axis {
	case 1, 2:
		return p.factor
	case 3:
		return float64(p.mfactor)
	}
	return 1
}
