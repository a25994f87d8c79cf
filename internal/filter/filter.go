package filter

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Codec is the interface implemented by all container compressors.
type Codec interface {
	// Name returns the codec name used in diagnostics.
	Name() string

	// Magic returns the leading bytes that identify an encoded stream.
	Magic() []byte

	// NewReader wraps r with a decoder.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter wraps w with an encoder.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Registry maps file suffixes to codecs.
var Registry = map[string]Codec{
	".gz":  Gzip{},
	".zst": Zstd{},
}

// ForPath returns the codec selected by the suffix of path, or nil when the
// path names an uncompressed file.
func ForPath(path string) Codec {
	return Registry[strings.ToLower(filepath.Ext(path))]
}

// Detect returns the codec whose magic number prefixes head, or nil.
func Detect(head []byte) Codec {
	for _, c := range Registry {
		if bytes.HasPrefix(head, c.Magic()) {
			return c
		}
	}
	return nil
}

// Decompress decodes src into dst.
func Decompress(dst io.Writer, src io.Reader, c Codec) error {
	r, err := c.NewReader(src)
	if err != nil {
		return fmt.Errorf("%s reader: %w", c.Name(), err)
	}
	defer r.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("%s decompress: %w", c.Name(), err)
	}
	return nil
}

// Compress encodes src into dst.
func Compress(dst io.Writer, src io.Reader, c Codec) error {
	w, err := c.NewWriter(dst)
	if err != nil {
		return fmt.Errorf("%s writer: %w", c.Name(), err)
	}
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return fmt.Errorf("%s compress: %w", c.Name(), err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s compress: %w", c.Name(), err)
	}
	return nil
}
