// Package dtype provides FITS pixel datatype handling and float64 conversion.
//
// A FITS image declares its element type with the BITPIX keyword. Pixels are
// stored big-endian, and integer images may carry a linear scaling
// (BSCALE/BZERO) and a reserved null value (BLANK):
//
//	BITPIX | Element       | Null convention
//	-------|---------------|----------------------------
//	8      | uint8         | raw value equal to BLANK
//	16     | int16         | raw value equal to BLANK
//	32     | int32         | raw value equal to BLANK
//	64     | int64         | raw value equal to BLANK
//	-32    | IEEE float32  | NaN
//	-64    | IEEE float64  | NaN
//
// The engine works on float64 lines throughout. [Decode] turns raw bytes into
// physical values (BZERO + BSCALE*raw) with nulls mapped to NaN, and [Encode]
// performs the inverse, mapping NaN back to BLANK for integer types.
//
// # Key Functions
//
//   - [Bitpix.Size]: element size in bytes
//   - [Bitpix.Validate]: rejects BITPIX values outside the six legal ones
//   - [Decode]: raw bytes to float64 physical values
//   - [Encode]: float64 physical values to raw bytes
package dtype
