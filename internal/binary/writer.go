package binary

import (
	"bytes"
	"io"
)

// Writer writes FITS bytes at a tracked position.
type Writer struct {
	w   io.WriterAt
	pos int64
}

// NewWriter creates a writer positioned at the start of w.
func NewWriter(w io.WriterAt) *Writer {
	return &Writer{w: w}
}

// At returns a new writer positioned at the given offset.
// The new writer shares the underlying io.WriterAt but has independent position.
func (w *Writer) At(offset int64) *Writer {
	return &Writer{w: w.w, pos: offset}
}

// Pos returns the current write position.
func (w *Writer) Pos() int64 {
	return w.pos
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.pos)
	w.pos += int64(n)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return err
}

// WriteZeros writes n zero bytes.
func (w *Writer) WriteZeros(n int) error {
	return w.writeFill(n, 0)
}

// WritePadding pads with fill bytes up to the next multiple of alignment.
// Header units are padded with ASCII spaces and data units with zeros.
func (w *Writer) WritePadding(alignment int64, fill byte) error {
	return w.writeFill(int(alignUp(w.pos, alignment)-w.pos), fill)
}

func (w *Writer) writeFill(n int, fill byte) error {
	if n <= 0 {
		return nil
	}
	return w.WriteBytes(bytes.Repeat([]byte{fill}, n))
}
