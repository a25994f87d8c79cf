// Package binary provides low-level block I/O for FITS files.
//
// FITS files are a sequence of 2880-byte logical records. Header units and
// data units both start on a record boundary and are padded to the next one.
// Reader and Writer track a position over an io.ReaderAt or io.WriterAt so
// that header scanning and line-addressed pixel access can share one handle.
package binary

import (
	"errors"
	"io"
)

// BlockSize is the size in bytes of a FITS logical record.
const BlockSize = 2880

// ErrShortRead is returned when fewer bytes than requested are available.
var ErrShortRead = errors.New("short read")

// Reader reads FITS bytes at a tracked position.
type Reader struct {
	r   io.ReaderAt
	pos int64
}

// NewReader creates a reader positioned at the start of r.
func NewReader(r io.ReaderAt) *Reader {
	return &Reader{r: r}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying io.ReaderAt but has independent position.
func (r *Reader) At(offset int64) *Reader {
	return &Reader{r: r.r, pos: offset}
}

// Pos returns the current read position.
func (r *Reader) Pos() int64 {
	return r.pos
}

// ReadBytes reads exactly n bytes from the current position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadFull fills buf from the current position and advances past it.
// Unlike ReadBytes it does not allocate, which matters for per-line reads.
func (r *Reader) ReadFull(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := r.r.ReadAt(buf, r.pos)
	if n == len(buf) {
		// io.ReaderAt may report io.EOF alongside a complete read.
		err = nil
	} else if err == nil {
		err = ErrShortRead
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrShortRead
		}
		return err
	}
	r.pos += int64(n)
	return nil
}

// ReadBlock reads one 2880-byte logical record.
func (r *Reader) ReadBlock() ([]byte, error) {
	return r.ReadBytes(BlockSize)
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int64) {
	r.pos += n
}

// PaddedSize rounds n up to a whole number of FITS blocks.
func PaddedSize(n int64) int64 {
	return alignUp(n, BlockSize)
}

func alignUp(pos, alignment int64) int64 {
	if alignment <= 1 {
		return pos
	}
	if remainder := pos % alignment; remainder != 0 {
		return pos + alignment - remainder
	}
	return pos
}
