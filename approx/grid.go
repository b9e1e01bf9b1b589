// SPDX-License-Identifier: MIT
package approx

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rbfn/layout"
	"github.com/katalvlaran/rbfn/matrix"
)

// InputsGrid returns the dense grid of evaluation points spanning [min, max]
// with samplesPerDim[d] evenly spaced samples along dimension d, last
// dimension varying fastest. One sample sits at min[d].
//
// Errors:
//   - layout.ErrInputDim for empty bounds.
//   - layout.ErrDimensionMismatch when the three slices differ in length.
//   - layout.ErrBadCount for a non-positive sample count.
func InputsGrid(min, max []float64, samplesPerDim []int) (*matrix.Dense, error) {
	if len(min) == 0 {
		return nil, fmt.Errorf("approx.InputsGrid: %w", layout.ErrInputDim)
	}
	if len(max) != len(min) || len(samplesPerDim) != len(min) {
		return nil, fmt.Errorf("approx.InputsGrid: %d/%d/%d: %w",
			len(min), len(max), len(samplesPerDim), layout.ErrDimensionMismatch)
	}

	values := make([][]float64, len(min))
	for d, n := range samplesPerDim {
		if n <= 0 {
			return nil, fmt.Errorf("approx.InputsGrid: dim %d: %w", d, layout.ErrBadCount)
		}
		values[d] = make([]float64, n)
		if n == 1 {
			values[d][0] = min[d]
			continue
		}
		floats.Span(values[d], min[d], max[d])
	}

	g, err := layout.Grid(values)
	if err != nil {
		return nil, fmt.Errorf("approx.InputsGrid: %w", err)
	}

	return g, nil
}
