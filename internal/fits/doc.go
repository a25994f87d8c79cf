// Package fits reads and writes FITS image HDUs one line at a time.
//
// A FITS file is a sequence of header-data units (HDUs). Each header is a list
// of 80-character records terminated by END and padded to a 2880-byte block;
// the data unit that follows holds a big-endian N-dimensional pixel array,
// also padded to a block boundary.
//
// # Reading
//
// [Open] scans every HDU header and records where each data unit starts. Pixel
// data is never loaded as a whole: [Image.ReadLine] decodes one NAXIS1 run at a
// time into float64 values, applying BSCALE/BZERO and mapping nulls to NaN.
// gzip and zstd compressed files are expanded into a temporary file first.
//
// # Writing
//
// [Create] returns an [ImageWriter] for a new primary image. The mandatory
// records (SIMPLE, BITPIX, NAXIS, NAXISn) are written immediately, further
// records are appended one by one with [ImageWriter.WriteRecord], and the
// header is closed with END on the first [ImageWriter.WriteLine]. The
// BSCALE/BZERO/BLANK records written determine how float64 lines are encoded.
//
// # Header Records
//
// [Record] is a typed card: key, raw value text and comment, plus the original
// 80-character image so that records copied between files are preserved
// byte-for-byte. [Header] addresses records by 1-based sequence number and by
// key.
package fits
