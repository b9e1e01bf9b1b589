// SPDX-License-Identifier: MIT

package rbfn

import (
	"errors"
	"io"
	"log"
	"os"
)

// Sentinel errors for model construction and parameter updates.
var (
	// ErrWeightsShape is returned when weights are not [n_basis][1].
	ErrWeightsShape = errors.New("rbfn: weights must be a single column with one row per kernel")

	// ErrParameterVectorSize is returned when a parameter vector has the wrong length.
	// The model is left untouched.
	ErrParameterVectorSize = errors.New("rbfn: parameter vector size mismatch")
)

// Parameter group labels accepted by the selection operations.
const (
	GroupCenters = "centers"
	GroupWidths  = "widths"
	GroupWeights = "weights"
)

// Mask ids written by ParameterVectorMask for each selected group; 0 means not selected.
const (
	MaskCenters = 1
	MaskWidths  = 2
	MaskWeights = 3
)

// DefaultCaching is the initial caching mode of a new Model.
const DefaultCaching = false

// Option configures a Model via functional arguments.
type Option func(*Options)

// Options holds the runtime behaviour of a Model.
type Options struct {
	// Caching enables memoization of the most recent kernel activations.
	Caching bool

	// Cache stores memoized activations. Nil selects a SingleSlotCache.
	Cache ActivationCache

	// OnCompute is called after every real (non-cached) activation computation
	// with the number of input points. Nil means no-op.
	OnCompute func(points int)

	// Logger receives diagnostics for rejected parameter updates.
	Logger *log.Logger
}

// DefaultOptions returns Options with caching off, a single-slot cache and a
// stderr logger.
func DefaultOptions() Options {
	return Options{
		Caching:   DefaultCaching,
		OnCompute: func(int) {},
		Logger:    log.New(os.Stderr, "rbfn: ", log.LstdFlags),
	}
}

// WithCaching sets the initial caching mode.
func WithCaching(on bool) Option {
	return func(o *Options) {
		o.Caching = on
	}
}

// WithCache replaces the activation cache implementation.
func WithCache(c ActivationCache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithOnCompute registers a hook invoked on every real activation computation.
func WithOnCompute(fn func(points int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompute = fn
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSilentLogger discards diagnostics.
func WithSilentLogger() Option {
	return WithLogger(log.New(io.Discard, "", 0))
}

// gatherOptions applies setters on top of DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Cache == nil {
		o.Cache = NewSingleSlotCache()
	}

	return o
}
