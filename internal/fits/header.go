package fits

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-fitscube/internal/binary"
	"github.com/robert-malhotra/go-fitscube/internal/dtype"
)

// Header is the ordered record list of one HDU, without the END record.
type Header struct {
	records []Record

	// valid is the number of leading records that can be enumerated. It is
	// shorter than records when a malformed card was skipped.
	valid int

	// size is the header length in bytes including block padding.
	size int64
}

// readHeader reads header blocks from r until the END record.
func readHeader(r *binary.Reader) (*Header, error) {
	h := &Header{valid: -1}
	for {
		block, err := r.ReadBlock()
		if err != nil {
			return nil, fmt.Errorf("reading header block: %w", err)
		}
		for i := 0; i < binary.BlockSize; i += CardSize {
			card := string(block[i : i+CardSize])
			if card[:keySize] == "END     " {
				if h.valid < 0 {
					h.valid = len(h.records)
				}
				h.size = r.Pos()
				return h, nil
			}
			rec, err := ParseRecord(card)
			if err != nil {
				// Enumeration ends at the first bad card, but keyword
				// lookups still see the records that follow it.
				if h.valid < 0 {
					h.valid = len(h.records)
				}
				continue
			}
			h.records = append(h.records, rec)
		}
	}
}

// Len returns the number of records reachable through Record.
func (h *Header) Len() int {
	return h.valid
}

// Size returns the header length in bytes including padding.
func (h *Header) Size() int64 {
	return h.size
}

// Record returns the record with the 1-based sequence number n.
func (h *Header) Record(n int) (Record, error) {
	if n < 1 || n > h.valid {
		if n == h.valid+1 && h.valid < len(h.records) {
			return Record{}, fmt.Errorf("record %d: %w", n, ErrMalformed)
		}
		return Record{}, fmt.Errorf("record %d: %w", n, ErrNoRecord)
	}
	return h.records[n-1], nil
}

// Records returns a copy of the enumerable records.
func (h *Header) Records() []Record {
	return append([]Record(nil), h.records[:h.valid]...)
}

// Get returns the first record with the given keyword.
func (h *Header) Get(key string) (Record, bool) {
	key = strings.ToUpper(key)
	for _, rec := range h.records {
		if rec.Key == key {
			return rec, true
		}
	}
	return Record{}, false
}

// Has reports whether the keyword is present.
func (h *Header) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// String returns the decoded string value of a keyword.
func (h *Header) String(key string) (string, error) {
	rec, ok := h.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoKey, key)
	}
	return rec.StringValue()
}

// Int returns the integer value of a keyword.
func (h *Header) Int(key string) (int64, error) {
	rec, ok := h.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoKey, key)
	}
	return rec.IntValue()
}

// Float returns the real value of a keyword.
func (h *Header) Float(key string) (float64, error) {
	rec, ok := h.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoKey, key)
	}
	return rec.FloatValue()
}

// intOr returns the integer value of key, or def when it is absent.
func (h *Header) intOr(key string, def int64) (int64, error) {
	v, err := h.Int(key)
	if errors.Is(err, ErrNoKey) {
		return def, nil
	}
	return v, err
}

// Bitpix returns the BITPIX element type.
func (h *Header) Bitpix() (dtype.Bitpix, error) {
	v, err := h.Int("BITPIX")
	if err != nil {
		return 0, err
	}
	b := dtype.Bitpix(v)
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return b, nil
}

// Axes returns NAXIS1..NAXISn, first axis first.
func (h *Header) Axes() ([]int, error) {
	n, err := h.Int("NAXIS")
	if err != nil {
		return nil, err
	}
	if n < 0 || n > MaxAxes {
		return nil, fmt.Errorf("%w: NAXIS = %d", ErrMalformed, n)
	}
	axes := make([]int, n)
	for i := range axes {
		v, err := h.Int(fmt.Sprintf("NAXIS%d", i+1))
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: NAXIS%d = %d", ErrMalformed, i+1, v)
		}
		axes[i] = int(v)
	}
	return axes, nil
}

// Scaling returns the BSCALE/BZERO/BLANK conventions of the data unit.
// BLANK only applies to integer images.
func (h *Header) Scaling() (dtype.Scaling, error) {
	s := dtype.Identity()
	var err error
	if h.Has("BSCALE") {
		if s.BScale, err = h.Float("BSCALE"); err != nil {
			return s, err
		}
	}
	if h.Has("BZERO") {
		if s.BZero, err = h.Float("BZERO"); err != nil {
			return s, err
		}
	}
	if h.Has("BLANK") {
		if s.Blank, err = h.Int("BLANK"); err != nil {
			return s, err
		}
		s.HasBlank = true
	}
	return s, nil
}

// dataSize returns the data unit length in bytes, excluding padding.
func (h *Header) dataSize() (int64, error) {
	axes, err := h.Axes()
	if err != nil || len(axes) == 0 {
		return 0, err
	}
	b, err := h.Bitpix()
	if err != nil {
		return 0, err
	}
	pcount, err := h.intOr("PCOUNT", 0)
	if err != nil {
		return 0, err
	}
	gcount, err := h.intOr("GCOUNT", 1)
	if err != nil {
		return 0, err
	}

	start := 0
	if rec, ok := h.Get("GROUPS"); ok && axes[0] == 0 {
		if groups, _ := rec.BoolValue(); groups {
			// Random groups: the group shape starts at NAXIS2.
			start = 1
		}
	}
	n := int64(1)
	for _, a := range axes[start:] {
		n *= int64(a)
	}
	return int64(b.Size()) * gcount * (pcount + n), nil
}
