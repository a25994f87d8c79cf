package dtype

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode converts physical float64 values to big-endian raw pixels.
//
// The inverse of the scaling is applied and integer results are rounded and
// clamped to the element range. NaN values become BLANK for integer types
// (zero when no BLANK is defined) and stay NaN for floating-point types.
func Encode(b Bitpix, s Scaling, src []float64, data []byte) error {
	if err := b.Validate(); err != nil {
		return err
	}
	size := b.Size()
	if len(data) != len(src)*size {
		return fmt.Errorf("encode %s: %d bytes for %d elements", b, len(data), len(src))
	}

	for i, v := range src {
		elem := data[i*size : (i+1)*size]

		if b.IsFloat() {
			if !math.IsNaN(v) && !s.IsIdentity() {
				v = (v - s.BZero) / s.BScale
			}
			if b == Float32 {
				binary.BigEndian.PutUint32(elem, math.Float32bits(float32(v)))
			} else {
				binary.BigEndian.PutUint64(elem, math.Float64bits(v))
			}
			continue
		}

		var raw int64
		if math.IsNaN(v) {
			if s.HasBlank {
				raw = s.Blank
			}
		} else {
			raw = toInt(b, math.Round((v-s.BZero)/s.BScale))
		}

		switch b {
		case Uint8:
			elem[0] = uint8(raw)
		case Int16:
			binary.BigEndian.PutUint16(elem, uint16(int16(raw)))
		case Int32:
			binary.BigEndian.PutUint32(elem, uint32(int32(raw)))
		case Int64:
			binary.BigEndian.PutUint64(elem, uint64(raw))
		}
	}
	return nil
}

// toInt clamps a rounded value to the range of the integer type b.
func toInt(b Bitpix, v float64) int64 {
	var lo, hi float64
	switch b {
	case Uint8:
		lo, hi = 0, math.MaxUint8
	case Int16:
		lo, hi = math.MinInt16, math.MaxInt16
	case Int32:
		lo, hi = math.MinInt32, math.MaxInt32
	default:
		if v >= math.MaxInt64 {
			return math.MaxInt64
		}
		if v <= math.MinInt64 {
			return math.MinInt64
		}
		return int64(v)
	}
	return int64(math.Max(lo, math.Min(hi, v)))
}
