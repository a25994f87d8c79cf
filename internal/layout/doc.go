// Package layout provides index arithmetic for contiguous FITS pixel arrays.
//
// FITS stores an N-dimensional image as one contiguous block with the first
// axis (NAXIS1) varying fastest. A run of NAXIS1 pixels at fixed coordinates on
// every other axis is a line; lines are the unit of I/O for both the reader
// and the writer, and the in-memory output cube uses the same ordering.
//
// # Key Types
//
//   - [Contiguous]: shape, element size and base offset of one data unit,
//     with linear index, byte offset and line iteration helpers
package layout
