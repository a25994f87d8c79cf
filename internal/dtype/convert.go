package dtype

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decode converts big-endian raw pixels to physical float64 values.
//
// dst must hold len(data)/b.Size() elements. Integer pixels equal to the
// BLANK value and floating-point NaN pixels are written as NaN. The number of
// null pixels is returned.
func Decode(b Bitpix, s Scaling, data []byte, dst []float64) (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	size := b.Size()
	if len(data) != len(dst)*size {
		return 0, fmt.Errorf("decode %s: %d bytes for %d elements", b, len(data), len(dst))
	}

	nulls := 0
	for i := range dst {
		elem := data[i*size : (i+1)*size]

		var raw float64
		switch b {
		case Uint8:
			v := int64(elem[0])
			if s.HasBlank && v == s.Blank {
				dst[i] = math.NaN()
				nulls++
				continue
			}
			raw = float64(v)
		case Int16:
			v := int64(int16(binary.BigEndian.Uint16(elem)))
			if s.HasBlank && v == s.Blank {
				dst[i] = math.NaN()
				nulls++
				continue
			}
			raw = float64(v)
		case Int32:
			v := int64(int32(binary.BigEndian.Uint32(elem)))
			if s.HasBlank && v == s.Blank {
				dst[i] = math.NaN()
				nulls++
				continue
			}
			raw = float64(v)
		case Int64:
			v := int64(binary.BigEndian.Uint64(elem))
			if s.HasBlank && v == s.Blank {
				dst[i] = math.NaN()
				nulls++
				continue
			}
			raw = float64(v)
		case Float32:
			raw = float64(math.Float32frombits(binary.BigEndian.Uint32(elem)))
		case Float64:
			raw = math.Float64frombits(binary.BigEndian.Uint64(elem))
		}

		if math.IsNaN(raw) {
			dst[i] = math.NaN()
			nulls++
			continue
		}
		dst[i] = s.BZero + s.BScale*raw
	}
	return nulls, nil
}
