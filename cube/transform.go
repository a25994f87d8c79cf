package cube

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TransformContext is the affine pixel map of one transpose. Output axis i
// takes its coordinate from input axis src[i]:
//
//	out[i] = sign[i]*in[src[i]] + offset[i]
//
// sign is -1 for a reversed axis, whose offset is then extent-1 in 0-based
// coordinates. A TransformContext is immutable once built.
type TransformContext struct {
	order   []int
	src     []int
	sign    []int
	offset  []int
	reorder []int
	in      []int
	out     []int

	// outStrides are the element strides of the output cube.
	outStrides []int
}

// NewTransform builds the transform for an order over an image with the
// given input extents. order[i] is the 1-based input axis feeding output
// axis i+1; a negative entry reverses that axis.
func NewTransform(order []int, extents []int) (*TransformContext, error) {
	n := len(extents)
	if len(order) != n {
		return nil, fmt.Errorf("order %v does not match %d axes", order, n)
	}

	tc := &TransformContext{
		order:      append([]int(nil), order...),
		src:        make([]int, n),
		sign:       make([]int, n),
		offset:     make([]int, n),
		reorder:    make([]int, n),
		in:         append([]int(nil), extents...),
		out:        make([]int, n),
		outStrides: make([]int, n),
	}
	for i := range tc.reorder {
		tc.reorder[i] = -1
	}

	for i, axis := range order {
		tc.sign[i] = 1
		if axis < 0 {
			axis, tc.sign[i] = -axis, -1
		}
		if axis < 1 || axis > n || tc.reorder[axis-1] >= 0 {
			return nil, fmt.Errorf("order %v is not a permutation of 1..%d", order, n)
		}
		tc.src[i] = axis - 1
		tc.reorder[axis-1] = i
		tc.out[i] = extents[axis-1]
		if tc.sign[i] < 0 {
			tc.offset[i] = tc.out[i] - 1
		}
	}

	stride := 1
	for i, extent := range tc.out {
		tc.outStrides[i] = stride
		stride *= extent
	}
	return tc, nil
}

// Rank returns the number of axes.
func (tc *TransformContext) Rank() int {
	return len(tc.in)
}

// Order returns a copy of the signed 1-based order.
func (tc *TransformContext) Order() []int {
	return append([]int(nil), tc.order...)
}

// InExtents returns a copy of the input extents, NAXIS1 first.
func (tc *TransformContext) InExtents() []int {
	return append([]int(nil), tc.in...)
}

// OutExtents returns a copy of the output extents: out[i] = in[|order[i]|-1].
func (tc *TransformContext) OutExtents() []int {
	return append([]int(nil), tc.out...)
}

// Reorder returns the 0-based output slot of the 0-based input axis.
func (tc *TransformContext) Reorder(axis int) int {
	return tc.reorder[axis]
}

// Apply maps a 0-based input coordinate to its output coordinate. dst must
// have one element per axis.
func (tc *TransformContext) Apply(in, dst []int) {
	for i := range dst {
		dst[i] = tc.sign[i]*in[tc.src[i]] + tc.offset[i]
	}
}

// lineTarget returns the linear output index of the pixel at coord and the
// index step taken for every pixel along input axis 1.
func (tc *TransformContext) lineTarget(coord []int) (base, step int) {
	for i := range tc.out {
		base += (tc.sign[i]*coord[tc.src[i]] + tc.offset[i]) * tc.outStrides[i]
	}
	slot := tc.reorder[0]
	return base, tc.sign[slot] * tc.outStrides[slot]
}

// Inverse returns the transform that maps output coordinates back to input
// coordinates.
func (tc *TransformContext) Inverse() *TransformContext {
	inv := make([]int, len(tc.order))
	for i, s := range tc.src {
		inv[s] = tc.sign[i] * (i + 1)
	}
	// A permutation of a permutation always builds.
	t, _ := NewTransform(inv, tc.out)
	return t
}

// Matrix returns the transform as an (n+1)x(n+1) homogeneous matrix acting
// on column vectors (in..., 1).
func (tc *TransformContext) Matrix() *mat.Dense {
	n := len(tc.in)
	m := mat.NewDense(n+1, n+1, nil)
	for i := range tc.src {
		m.Set(i, tc.src[i], float64(tc.sign[i]))
		m.Set(i, n, float64(tc.offset[i]))
	}
	m.Set(n, n, 1)
	return m
}

// String renders the homogeneous matrix for diagnostics.
func (tc *TransformContext) String() string {
	return fmt.Sprintf("%v", mat.Formatted(tc.Matrix(), mat.Squeeze()))
}
