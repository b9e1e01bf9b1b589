// SPDX-License-Identifier: MIT

// Package rbfn - trainable Gaussian RBF network model.
//
// Purpose:
//   - Hold centers, widths and weights of an RBF network with their shape invariants.
//   - Compute kernel activations, optionally memoizing the most recent batch.
//   - Expose the parameters as one flat vector for external optimizers.
//
// Concurrency:
//   - A Model is NOT safe for concurrent use; KernelActivations mutates the cache.
//     Clone per goroutine.
package rbfn

import (
	"fmt"
	"log"

	"github.com/katalvlaran/rbfn/basis"
	"github.com/katalvlaran/rbfn/matrix"
	"github.com/katalvlaran/rbfn/unified"
)

// Model is a Gaussian RBF network y(x) = Σ_b weights[b] · a_b(x).
//
// Invariants (enforced by New and preserved by every mutator):
//   - centers and widths are [n_basis][n_dims], n_basis ≥ 1, n_dims ≥ 1;
//   - weights is [n_basis][1];
//   - paramCount == 2·n_basis·n_dims + n_basis.
type Model struct {
	centers *matrix.Dense
	widths  *matrix.Dense
	weights *matrix.Dense

	paramCount int

	caching   bool
	cache     ActivationCache
	onCompute func(points int)
	logger    *log.Logger

	colBuf []float64 // column scratch for the parameter vector
}

// New builds a Model from copies of centers, widths and weights.
//
// Errors:
//   - matrix.ErrNilMatrix when any matrix is nil.
//   - matrix.ErrDimensionMismatch when centers and widths differ in shape.
//   - ErrWeightsShape when weights is not [centers.Rows()][1].
//
// Complexity: O(n_basis · n_dims).
func New(centers, widths, weights *matrix.Dense, opts ...Option) (*Model, error) {
	if err := matrix.ValidateBinarySameShape(centers, widths); err != nil {
		return nil, fmt.Errorf("rbfn.New: %w", err)
	}
	if err := matrix.ValidateNotNil(weights); err != nil {
		return nil, fmt.Errorf("rbfn.New: weights: %w", err)
	}
	if weights.Rows() != centers.Rows() || weights.Cols() != 1 {
		return nil, fmt.Errorf("rbfn.New: weights %dx%d for %d kernels: %w",
			weights.Rows(), weights.Cols(), centers.Rows(), ErrWeightsShape)
	}

	o := gatherOptions(opts...)
	m := &Model{
		centers:   own(centers),
		widths:    own(widths),
		weights:   own(weights),
		caching:   o.Caching,
		cache:     o.Cache,
		onCompute: o.OnCompute,
		logger:    o.Logger,
	}
	m.paramCount = 2*m.centers.Rows()*m.centers.Cols() + m.centers.Rows()

	return m, nil
}

// own copies d with the finite-only policy off, so that any optimizer output
// can be written back through the parameter vector.
func own(d *matrix.Dense) *matrix.Dense {
	c, _ := matrix.NewDenseFromData(d.Rows(), d.Cols(), d.RawData(), matrix.WithNoValidateNaNInf()) // shape already valid

	return c
}

// NumBasisFunctions returns the number of kernels.
func (m *Model) NumBasisFunctions() int { return m.centers.Rows() }

// InputDim returns the input dimensionality.
func (m *Model) InputDim() int { return m.centers.Cols() }

// ParameterCount returns the length of the full parameter vector.
func (m *Model) ParameterCount() int { return m.paramCount }

// Centers returns a copy of the kernel centers.
func (m *Model) Centers() *matrix.Dense { return m.centers.Copy() }

// Widths returns a copy of the kernel widths.
func (m *Model) Widths() *matrix.Dense { return m.widths.Copy() }

// Weights returns a copy of the kernel weights.
func (m *Model) Weights() *matrix.Dense { return m.weights.Copy() }

// SetWeights replaces the weights. The activation cache is kept since
// activations do not depend on weights.
//
// Errors: ErrWeightsShape (model unchanged).
func (m *Model) SetWeights(w *matrix.Dense) error {
	if w == nil || w.Rows() != m.NumBasisFunctions() || w.Cols() != 1 {
		return fmt.Errorf("rbfn.SetWeights: %w", ErrWeightsShape)
	}
	m.weights.CopyFrom(w)

	return nil
}

// Caching reports whether activations are memoized.
func (m *Model) Caching() bool { return m.caching }

// SetCaching switches memoization on or off. Switching it off empties the cache.
func (m *Model) SetCaching(on bool) {
	m.caching = on
	if !on {
		m.cache.Clear()
	}
}

// ClearCache drops any memoized activations.
func (m *Model) ClearCache() { m.cache.Clear() }

// KernelActivations returns [n_points][n_basis] unnormalized Gaussian activations.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when inputs does not have InputDim columns.
//
// Complexity: O(n_points · n_basis · n_dims) on a miss, O(n_points · n_dims) on a hit.
func (m *Model) KernelActivations(inputs *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateCols(inputs, m.InputDim()); err != nil {
		return nil, fmt.Errorf("rbfn.KernelActivations: %w", err)
	}
	dst, err := basis.NewActivations(m.centers, inputs)
	if err != nil {
		return nil, fmt.Errorf("rbfn.KernelActivations: %w", err)
	}
	m.KernelActivationsInto(inputs, dst)

	return dst, nil
}

// KernelActivationsInto writes activations into a caller-owned buffer.
//
// Shapes are NOT validated: inputs must be [n_points][InputDim()] and dst
// [n_points][NumBasisFunctions()]. A cache hit copies the memoized matrix;
// a miss computes, calls the OnCompute hook and, with caching on, stores a copy.
// No allocations once the cache buffers match the batch shape.
func (m *Model) KernelActivationsInto(inputs, dst *matrix.Dense) {
	if m.caching {
		if hit, ok := m.cache.Lookup(inputs); ok {
			dst.CopyFrom(hit)

			return
		}
	}

	basis.Gaussian(m.centers, m.widths, inputs, dst, false)
	m.onCompute(inputs.Rows())

	if m.caching {
		m.cache.Store(inputs, dst)
	}
}

// Clone returns an independent deep copy with the same options.
// The clone starts with an empty cache of the same kind (ActivationCache.Empty).
func (m *Model) Clone() *Model {
	return &Model{
		centers:    m.centers.Copy(),
		widths:     m.widths.Copy(),
		weights:    m.weights.Copy(),
		paramCount: m.paramCount,
		caching:    m.caching,
		cache:      m.cache.Empty(),
		onCompute:  m.onCompute,
		logger:     m.logger,
	}
}

// ToUnified exports the model as an unnormalized unified.Model.
func (m *Model) ToUnified() (*unified.Model, error) {
	u, err := unified.New(m.centers, m.widths, m.weights, false)
	if err != nil {
		return nil, fmt.Errorf("rbfn.ToUnified: %w", err)
	}

	return u, nil
}
