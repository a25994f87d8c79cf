package filter

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd implements the Zstandard container codec.
type Zstd struct{}

func (Zstd) Name() string {
	return "zstd"
}

func (Zstd) Magic() []byte {
	return []byte{0x28, 0xb5, 0x2f, 0xfd}
}

func (Zstd) NewReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}

func (Zstd) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}
