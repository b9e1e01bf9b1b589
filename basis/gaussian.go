// SPDX-License-Identifier: MIT
package basis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rbfn/matrix"
)

// gaussianExponent is the factor in exp(gaussianExponent * Σ_d (x_d-c_d)²/w_d²).
const gaussianExponent = -0.5

// Gaussian writes the activations of axis-aligned Gaussian kernels into dst.
//
// Description:
//
//	For every input row x and every kernel b:
//	  a(x, b) = exp(-0.5 · Σ_d (x_d − centers[b,d])² / widths[b,d]²)
//	With normalized=true each row of dst is rescaled to sum to 1.0. A row
//	whose activations all underflow to 0 is set to 1/n_basis per kernel, and a
//	single normalized kernel is 1.0 everywhere.
//
// Shapes (NOT validated, see Validate):
//
//	centers, widths: [n_basis][n_dims]
//	inputs:          [n_points][n_dims]
//	dst:             [n_points][n_basis]
//
// Allocation: none. Complexity: O(n_points · n_basis · n_dims).
func Gaussian(centers, widths, inputs, dst *matrix.Dense, normalized bool) {
	nBasis := centers.Rows()
	nPoints := inputs.Rows()

	var p, b, d int
	if normalized && nBasis == 1 {
		for p = 0; p < nPoints; p++ {
			dst.RawRow(p)[0] = 1.0
		}

		return
	}

	for p = 0; p < nPoints; p++ {
		x := inputs.RawRow(p)
		out := dst.RawRow(p)
		for b = 0; b < nBasis; b++ {
			c := centers.RawRow(b)
			w := widths.RawRow(b)
			acc := 0.0
			for d = 0; d < len(x); d++ {
				diff := x[d] - c[d]
				acc += diff * diff / (w[d] * w[d])
			}
			out[b] = math.Exp(gaussianExponent * acc)
		}
		if normalized {
			normalizeRow(out)
		}
	}
}

// normalizeRow rescales row in place so that it sums to 1.0.
func normalizeRow(row []float64) {
	sum := 0.0
	for _, v := range row {
		sum += v
	}
	if sum == 0 {
		uniform := 1.0 / float64(len(row))
		for i := range row {
			row[i] = uniform
		}

		return
	}
	for i := range row {
		row[i] /= sum
	}
}

// Validate checks the shape contract of Gaussian without computing anything.
//
// Errors:
//   - matrix.ErrNilMatrix when any operand is nil.
//   - matrix.ErrDimensionMismatch when centers/widths differ in shape, inputs
//     do not have n_dims columns, or dst is not [n_points][n_basis].
func Validate(centers, widths, inputs, dst *matrix.Dense) error {
	if err := matrix.ValidateBinarySameShape(centers, widths); err != nil {
		return fmt.Errorf("basis.Validate: kernels: %w", err)
	}
	if err := matrix.ValidateCols(inputs, centers.Cols()); err != nil {
		return fmt.Errorf("basis.Validate: inputs: %w", err)
	}
	if err := matrix.ValidateNotNil(dst); err != nil {
		return fmt.Errorf("basis.Validate: dst: %w", err)
	}
	if dst.Rows() != inputs.Rows() || dst.Cols() != centers.Rows() {
		return fmt.Errorf("basis.Validate: dst: %w", matrix.ErrDimensionMismatch)
	}

	return nil
}

// NewActivations allocates a zeroed [inputs.Rows()][centers.Rows()] buffer for Gaussian.
func NewActivations(centers, inputs *matrix.Dense) (*matrix.Dense, error) {
	return matrix.NewDense(inputs.Rows(), centers.Rows())
}
