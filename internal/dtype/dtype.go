package dtype

import (
	"errors"
	"fmt"
)

// ErrBitpix is returned for BITPIX values not defined by the FITS standard.
var ErrBitpix = errors.New("invalid BITPIX")

// Bitpix is the FITS BITPIX element type code.
type Bitpix int

// Legal BITPIX values.
const (
	Uint8   Bitpix = 8
	Int16   Bitpix = 16
	Int32   Bitpix = 32
	Int64   Bitpix = 64
	Float32 Bitpix = -32
	Float64 Bitpix = -64
)

// Validate returns ErrBitpix unless b is one of the six legal values.
func (b Bitpix) Validate() error {
	switch b {
	case Uint8, Int16, Int32, Int64, Float32, Float64:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrBitpix, int(b))
	}
}

// Size returns the element size in bytes.
func (b Bitpix) Size() int {
	if b < 0 {
		return int(-b) / 8
	}
	return int(b) / 8
}

// IsFloat reports whether b is an IEEE floating-point type.
func (b Bitpix) IsFloat() bool {
	return b < 0
}

func (b Bitpix) String() string {
	switch b {
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("bitpix(%d)", int(b))
	}
}

// Scaling holds the linear transform and null value applied to raw pixels.
// Physical values are BZero + BScale*raw.
type Scaling struct {
	BScale   float64
	BZero    float64
	Blank    int64
	HasBlank bool
}

// Identity returns the scaling used when BSCALE/BZERO are absent.
func Identity() Scaling {
	return Scaling{BScale: 1}
}

// IsIdentity reports whether s leaves raw values unchanged.
func (s Scaling) IsIdentity() bool {
	return s.BScale == 1 && s.BZero == 0
}
