package fits

import (
	"errors"
	"fmt"
	"os"

	"github.com/robert-malhotra/go-fitscube/internal/binary"
	"github.com/robert-malhotra/go-fitscube/internal/filter"
)

// File represents an open FITS file.
type File struct {
	path   string
	file   *os.File
	temp   string // expanded copy of a compressed file, removed on Close
	reader *binary.Reader
	hdus   []*Image
	closed bool
}

// Open opens a FITS file for reading and scans its HDU headers.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	fits := &File{path: path, file: f}
	if err := fits.expand(); err != nil {
		fits.Close()
		return nil, err
	}

	fits.reader = binary.NewReader(fits.file)
	if err := fits.scan(); err != nil {
		fits.Close()
		return nil, err
	}
	return fits, nil
}

// expand replaces a compressed file handle with a decompressed temporary
// copy so that pixel lines can be read at arbitrary offsets.
func (f *File) expand() error {
	head := make([]byte, 8)
	n, _ := f.file.ReadAt(head, 0)
	codec := filter.Detect(head[:n])
	if codec == nil {
		return nil
	}

	tmp, err := os.CreateTemp("", "fitscube-*.fits")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	if err := filter.Decompress(tmp, f.file, codec); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("expanding %s: %w", f.path, err)
	}

	f.file.Close()
	f.file = tmp
	f.temp = tmp.Name()
	return nil
}

// scan reads every HDU header and records where its data unit starts.
func (f *File) scan() error {
	r := f.reader
	for {
		hdr, err := readHeader(r)
		if err != nil {
			if len(f.hdus) == 0 {
				return fmt.Errorf("%w: %v", ErrNotFITS, err)
			}
			// Anything after the last complete HDU is ignored.
			return nil
		}

		first := ""
		if len(hdr.records) > 0 {
			first = hdr.records[0].Key
		}
		if len(f.hdus) == 0 && first != "SIMPLE" {
			return fmt.Errorf("%w: first keyword is %q", ErrNotFITS, first)
		}
		if len(f.hdus) > 0 && first != "XTENSION" {
			return nil
		}

		size, err := hdr.dataSize()
		if err != nil {
			return fmt.Errorf("HDU %d: %w", len(f.hdus), err)
		}

		f.hdus = append(f.hdus, newImage(f, len(f.hdus), hdr, r.Pos()))
		r.Skip(binary.PaddedSize(size))
	}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// NumHDU returns the number of HDUs in the file.
func (f *File) NumHDU() int {
	return len(f.hdus)
}

// HDU returns the HDU with the given 0-based index.
func (f *File) HDU(i int) (*Image, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if i < 0 || i >= len(f.hdus) {
		return nil, fmt.Errorf("%w: %d (file has %d)", ErrNoHDU, i, len(f.hdus))
	}
	return f.hdus[i], nil
}

// Close closes the file and removes any temporary expanded copy.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	err := f.file.Close()
	if f.temp != "" {
		if rmErr := os.Remove(f.temp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}
	return err
}
