// Package filter implements whole-file compression for FITS containers.
//
// FITS files are commonly distributed gzip-compressed (".fits.gz") and, more
// recently, zstd-compressed (".fits.zst"). Pixel access is line-addressed, so
// a compressed input is first expanded into a seekable temporary file; a
// compressed output is written uncompressed and then encoded into its final
// path when the writer is closed.
//
// Codecs are found by magic number when reading ([Detect]) and by file suffix
// when writing ([ForPath]). Both gzip and zstd come from
// github.com/klauspost/compress.
package filter
