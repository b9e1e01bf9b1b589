// Package layout provides tunable options and error definitions
// for deriving radial basis kernel layouts.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for layout construction and derivation.
var (
	// ErrInputDim is returned when the expected input dimensionality is not positive.
	ErrInputDim = errors.New("layout: input dimensionality must be > 0")

	// ErrDimensionMismatch is returned when per-dimension data or domain
	// bounds disagree with the expected input dimensionality.
	ErrDimensionMismatch = errors.New("layout: dimension mismatch")

	// ErrBadCount is returned when a per-dimension kernel count is not positive.
	ErrBadCount = errors.New("layout: kernel count must be > 0")

	// ErrEmptyCenters is returned when an explicit per-dimension center list is empty.
	ErrEmptyCenters = errors.New("layout: per-dimension centers must be non-empty")

	// ErrIntersectionHeight is returned when the intersection height is not in (0,1).
	ErrIntersectionHeight = errors.New("layout: intersection height must be in (0,1)")

	// ErrRegularization is returned when the regularization is negative or NaN.
	ErrRegularization = errors.New("layout: regularization must be >= 0")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("layout: invalid option supplied")
)

// Defaults (single source of truth).
const (
	// DefaultIntersectionHeight is the activation at which neighbouring kernels cross.
	DefaultIntersectionHeight = 0.7

	// DefaultRegularization is the ridge term used when fitting weights.
	DefaultRegularization = 0.0
)

// Option configures a Spec via functional arguments.
// If an Option is invalid (e.g. height outside (0,1)), it is recorded
// internally and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds the scalar hyperparameters of a Spec.
type Options struct {
	// IntersectionHeight is the height at which two neighbouring unit-height
	// kernels intersect at their midpoint; 0 < h < 1.
	IntersectionHeight float64

	// Regularization is the non-negative ridge term for weight fitting.
	Regularization float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultIntersectionHeight and DefaultRegularization.
func DefaultOptions() Options {
	return Options{
		IntersectionHeight: DefaultIntersectionHeight,
		Regularization:     DefaultRegularization,
	}
}

// WithIntersectionHeight sets the kernel intersection height.
// Values outside the open interval (0,1) are recorded as ErrIntersectionHeight.
func WithIntersectionHeight(h float64) Option {
	return func(o *Options) {
		if !(h > 0 && h < 1) {
			o.err = fmt.Errorf("%w: got %g", ErrIntersectionHeight, h)
			return
		}
		o.IntersectionHeight = h
	}
}

// WithRegularization sets the ridge term.
// Negative or NaN values are recorded as ErrRegularization.
func WithRegularization(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || r < 0 {
			o.err = fmt.Errorf("%w: got %g", ErrRegularization, r)
			return
		}
		o.Regularization = r
	}
}

// gatherOptions applies setters on top of DefaultOptions and reports the
// first recorded violation wrapped in ErrOptionViolation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		fn(&o)
		if o.err != nil {
			return o, fmt.Errorf("%w: %w", ErrOptionViolation, o.err)
		}
	}

	return o, nil
}
