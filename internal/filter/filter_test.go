package filter

import (
	"bytes"
	"testing"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"cube.fits", ""},
		{"cube.fits.gz", "gzip"},
		{"cube.FITS.GZ", "gzip"},
		{"/data/cube.fits.zst", "zstd"},
		{"cube.fz", ""},
	}
	for _, tt := range tests {
		c := ForPath(tt.path)
		got := ""
		if c != nil {
			got = c.Name()
		}
		if got != tt.want {
			t.Errorf("ForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	input := bytes.Repeat([]byte("SIMPLE  =                    T / conforms to FITS standard         "), 200)

	for _, c := range []Codec{Gzip{}, Gzip{Level: 9}, Zstd{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var packed bytes.Buffer
			if err := Compress(&packed, bytes.NewReader(input), c); err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if packed.Len() >= len(input) {
				t.Errorf("expected compression, got %d bytes from %d", packed.Len(), len(input))
			}

			detected := Detect(packed.Bytes())
			if detected == nil || detected.Name() != c.Name() {
				t.Fatalf("Detect did not recognize %s stream", c.Name())
			}

			var unpacked bytes.Buffer
			if err := Decompress(&unpacked, bytes.NewReader(packed.Bytes()), detected); err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(unpacked.Bytes(), input) {
				t.Error("round trip mismatch")
			}
		})
	}
}

func TestDetectPlain(t *testing.T) {
	if c := Detect([]byte("SIMPLE  =")); c != nil {
		t.Errorf("Detect matched %s for an uncompressed header", c.Name())
	}
}

func TestDecompressCorrupt(t *testing.T) {
	var out bytes.Buffer
	err := Decompress(&out, bytes.NewReader([]byte{0x1f, 0x8b, 0, 0}), Gzip{})
	if err == nil {
		t.Error("expected error for truncated gzip stream")
	}
}
