package fits

import "errors"

// Common errors
var (
	ErrNotFITS      = errors.New("not a FITS file")
	ErrMalformed    = errors.New("malformed header record")
	ErrNoRecord     = errors.New("no such header record")
	ErrNoKey        = errors.New("keyword not found")
	ErrNotImage     = errors.New("HDU is not an image")
	ErrNoHDU        = errors.New("no such HDU")
	ErrHeaderClosed = errors.New("header already finalized")
	ErrClosed       = errors.New("file is closed")
)

// MaxAxes is the largest NAXIS value allowed by the standard.
const MaxAxes = 999
