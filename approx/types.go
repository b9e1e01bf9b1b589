// SPDX-License-Identifier: MIT

package approx

import (
	"errors"
	"log"
	"os"

	"github.com/katalvlaran/rbfn/rbfn"
)

// Sentinel errors for training and prediction.
var (
	// ErrNilSpec is returned when a layout is required but none was given.
	ErrNilSpec = errors.New("approx: layout specification is nil")

	// ErrNilModel is returned by FromModel for a nil model.
	ErrNilModel = errors.New("approx: model is nil")

	// ErrAlreadyTrained is returned when Train is called on a trained approximator.
	ErrAlreadyTrained = errors.New("approx: already trained")

	// ErrNotTrained is returned when Predict is called before Train.
	ErrNotTrained = errors.New("approx: not trained")

	// ErrSingular is returned when the least-squares system has no usable solution.
	ErrSingular = errors.New("approx: least-squares system is singular")
)

// Option configures an RBFN approximator.
type Option func(*Options)

// Options holds the runtime behaviour of an approximator.
type Options struct {
	// Logger receives warnings for misuse (training twice, predicting untrained).
	Logger *log.Logger

	// ModelOptions are applied to the model built by Train or decoded from a record.
	ModelOptions []rbfn.Option
}

// DefaultOptions returns Options with a stderr logger and no model options.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(os.Stderr, "approx: ", log.LstdFlags),
	}
}

// WithLogger sets the warnings logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithModelOptions appends options for the underlying rbfn.Model.
func WithModelOptions(opts ...rbfn.Option) Option {
	return func(o *Options) {
		o.ModelOptions = append(o.ModelOptions, opts...)
	}
}

// gatherOptions applies setters on top of DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
