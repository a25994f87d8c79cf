package layout

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate lies outside the array shape.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Contiguous describes a row-major (first axis fastest) block of elements
// starting at a byte offset in a file.
type Contiguous struct {
	base     int64
	shape    []int
	strides  []int
	elemSize int
	length   int
}

// NewContiguous creates a layout for the given shape. Every extent must be
// positive.
func NewContiguous(base int64, shape []int, elemSize int) (*Contiguous, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("layout: empty shape")
	}
	strides := make([]int, len(shape))
	length := 1
	for i, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("layout: axis %d has extent %d", i+1, n)
		}
		strides[i] = length
		length *= n
	}
	return &Contiguous{
		base:     base,
		shape:    append([]int(nil), shape...),
		strides:  strides,
		elemSize: elemSize,
		length:   length,
	}, nil
}

// Rank returns the number of axes.
func (c *Contiguous) Rank() int {
	return len(c.shape)
}

// Len returns the total number of elements.
func (c *Contiguous) Len() int {
	return c.length
}

// LineLen returns the number of elements in one line.
func (c *Contiguous) LineLen() int {
	return c.shape[0]
}

// Lines returns the number of lines.
func (c *Contiguous) Lines() int {
	return c.length / c.shape[0]
}

// Size returns the size of the block in bytes, excluding padding.
func (c *Contiguous) Size() int64 {
	return int64(c.length) * int64(c.elemSize)
}

// Base returns the byte offset of the first element.
func (c *Contiguous) Base() int64 {
	return c.base
}

// Index returns the linear element index of a 0-based coordinate.
// Missing trailing coordinates are treated as zero.
func (c *Contiguous) Index(coord []int) (int, error) {
	if len(coord) > len(c.shape) {
		return 0, fmt.Errorf("%w: %d coordinates for rank %d", ErrOutOfBounds, len(coord), len(c.shape))
	}
	idx := 0
	for i, x := range coord {
		if x < 0 || x >= c.shape[i] {
			return 0, fmt.Errorf("%w: axis %d index %d (extent %d)", ErrOutOfBounds, i+1, x, c.shape[i])
		}
		idx += x * c.strides[i]
	}
	return idx, nil
}

// Offset returns the byte offset of a 0-based coordinate.
func (c *Contiguous) Offset(coord []int) (int64, error) {
	idx, err := c.Index(coord)
	if err != nil {
		return 0, err
	}
	return c.base + int64(idx)*int64(c.elemSize), nil
}

// EachLine calls fn with the coordinate of the first element of every line,
// axis 2 varying fastest and the last axis slowest. The coordinate slice is
// reused between calls. Iteration stops at the first error.
func (c *Contiguous) EachLine(fn func(coord []int) error) error {
	coord := make([]int, len(c.shape))
	for n := 0; n < c.Lines(); n++ {
		if err := fn(coord); err != nil {
			return err
		}
		for axis := 1; axis < len(coord); axis++ {
			coord[axis]++
			if coord[axis] < c.shape[axis] {
				break
			}
			coord[axis] = 0
		}
	}
	return nil
}
