package cube

import (
	"log/slog"

	"github.com/robert-malhotra/go-fitscube/internal/dtype"
	"github.com/robert-malhotra/go-fitscube/internal/fits"
)

// Option configures Transpose and ShrinkCube.
type Option func(*options)

// imageWriter is the part of fits.ImageWriter the engines use.
type imageWriter interface {
	WriteRecord(rec fits.Record) error
	WriteLine(coord []int, src []float64) error
	Close() error
}

type options struct {
	order  []int
	hdu    int
	debug  int
	logger *slog.Logger

	create func(path string, bitpix dtype.Bitpix, axes []int) (imageWriter, error)
}

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
		create: func(path string, bitpix dtype.Bitpix, axes []int) (imageWriter, error) {
			return fits.Create(path, bitpix, axes)
		},
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAxisOrder sets an explicit output order. order[i] is the 1-based input
// axis that becomes output axis i+1. Without it the order is derived from the
// CTYPEn keywords.
func WithAxisOrder(order ...int) Option {
	return func(o *options) {
		o.order = append([]int(nil), order...)
	}
}

// WithHDU selects the 0-based HDU to read (default 0, the primary array).
func WithHDU(n int) Option {
	return func(o *options) {
		o.hdu = n
	}
}

// WithDebug sets the diagnostic verbosity. Level 1 logs phases and header
// rewrites, level 2 every input line and level 3 every pixel. Output pixels
// do not depend on it.
func WithDebug(level int) Option {
	return func(o *options) {
		if level >= 0 {
			o.debug = level
		}
	}
}

// WithLogger sets the logger diagnostics are written to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// debugf logs msg when the debug level is at least level.
func (o *options) debugf(level int, msg string, args ...any) {
	if o.debug >= level {
		o.logger.Debug(msg, args...)
	}
}
