package filter

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gzip implements the gzip container codec.
type Gzip struct {
	// Level is the compression level; zero selects the default.
	Level int
}

func (Gzip) Name() string {
	return "gzip"
}

func (Gzip) Magic() []byte {
	return []byte{0x1f, 0x8b}
}

func (Gzip) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (g Gzip) NewWriter(w io.Writer) (io.WriteCloser, error) {
	level := g.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	return gzip.NewWriterLevel(w, level)
}
