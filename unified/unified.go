// SPDX-License-Identifier: MIT

// Package unified holds a basis-family-agnostic view of a kernel model:
// centers, widths, weights and whether activations are normalized.
//
// Any kernel approximator that can be written as a weighted sum of Gaussian
// activations exports itself into a Model, so that a single evaluator can
// serve all of them.
package unified

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rbfn/basis"
	"github.com/katalvlaran/rbfn/matrix"
)

// ErrWeightsShape is returned when weights are not [n_basis][1].
var ErrWeightsShape = errors.New("unified: weights must be a single column with one row per kernel")

// Model is an immutable weighted kernel expansion.
type Model struct {
	centers    *matrix.Dense // [n_basis][n_dims]
	widths     *matrix.Dense // [n_basis][n_dims]
	weights    *matrix.Dense // [n_basis][1]
	normalized bool
}

// New copies the given matrices into a Model.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch - centers/widths shapes.
//   - ErrWeightsShape - weights not [centers.Rows()][1].
func New(centers, widths, weights *matrix.Dense, normalized bool) (*Model, error) {
	if err := matrix.ValidateBinarySameShape(centers, widths); err != nil {
		return nil, fmt.Errorf("unified.New: %w", err)
	}
	if err := matrix.ValidateNotNil(weights); err != nil {
		return nil, fmt.Errorf("unified.New: %w", err)
	}
	if weights.Rows() != centers.Rows() || weights.Cols() != 1 {
		return nil, fmt.Errorf("unified.New: weights %dx%d: %w", weights.Rows(), weights.Cols(), ErrWeightsShape)
	}

	return &Model{
		centers:    centers.Copy(),
		widths:     widths.Copy(),
		weights:    weights.Copy(),
		normalized: normalized,
	}, nil
}

// Centers returns a copy of the kernel centers.
func (m *Model) Centers() *matrix.Dense { return m.centers.Copy() }

// Widths returns a copy of the kernel widths.
func (m *Model) Widths() *matrix.Dense { return m.widths.Copy() }

// Weights returns a copy of the kernel weights.
func (m *Model) Weights() *matrix.Dense { return m.weights.Copy() }

// Normalized reports whether activations are normalized to sum to 1 per point.
func (m *Model) Normalized() bool { return m.normalized }

// NumBasisFunctions returns the number of kernels.
func (m *Model) NumBasisFunctions() int { return m.centers.Rows() }

// InputDim returns the input dimensionality.
func (m *Model) InputDim() int { return m.centers.Cols() }

// KernelActivations returns [n_points][n_basis] activations, normalized if the model says so.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch - inputs shape.
func (m *Model) KernelActivations(inputs *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateCols(inputs, m.InputDim()); err != nil {
		return nil, fmt.Errorf("unified.KernelActivations: %w", err)
	}
	acts, err := basis.NewActivations(m.centers, inputs)
	if err != nil {
		return nil, fmt.Errorf("unified.KernelActivations: %w", err)
	}
	basis.Gaussian(m.centers, m.widths, inputs, acts, m.normalized)

	return acts, nil
}

// Evaluate returns the model output [n_points][1] = activations · weights.
func (m *Model) Evaluate(inputs *matrix.Dense) (*matrix.Dense, error) {
	acts, err := m.KernelActivations(inputs)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(acts, m.weights)
}
