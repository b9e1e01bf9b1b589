package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rbfn/matrix"
	"gonum.org/v1/gonum/floats"
)

// singleKernelWidth is the width assigned to a dimension holding one kernel,
// where no neighbour spacing exists.
const singleKernelWidth = 1.0

// CentersAndWidths derives the dense kernel layout for the domain [min, max].
//
// Algorithm Outline:
//  1. Per dimension d, take the explicit centers, or counts[d] points evenly
//     spaced from min[d] to max[d] inclusive (one kernel sits at min[d]).
//  2. Per dimension, derive widths from neighbour spacing so that two adjacent
//     unit-height Gaussians cross at IntersectionHeight at their midpoint:
//     w_i = sqrt((c_{i+1} − c_i)² / (−8 · ln h)); the last width repeats
//     the one before it. A single kernel gets width 1.0.
//  3. Enumerate the Cartesian product of per-dimension (center, width) pairs
//     with a mixed-radix counter whose last dimension varies fastest.
//
// The row order in step 3 is positional: previously serialized models index
// kernels by it.
//
// Returns centers and widths, both [Π counts][InputDim()].
//
// Errors:
//   - ErrDimensionMismatch if len(min) or len(max) != InputDim().
func (s *Spec) CentersAndWidths(min, max []float64) (centers, widths *matrix.Dense, err error) {
	if len(min) != s.inputDim || len(max) != s.inputDim {
		return nil, nil, fmt.Errorf("CentersAndWidths: bounds %d/%d for %d dims: %w",
			len(min), len(max), s.inputDim, ErrDimensionMismatch)
	}

	centersPerDim := make([][]float64, s.inputDim)
	widthsPerDim := make([][]float64, s.inputDim)
	for d := 0; d < s.inputDim; d++ {
		if s.centersPerDim != nil {
			centersPerDim[d] = append([]float64(nil), s.centersPerDim[d]...)
		} else {
			centersPerDim[d] = linspace(s.counts[d], min[d], max[d])
		}
		widthsPerDim[d] = Widths(centersPerDim[d], s.intersectionHeight)
	}

	return cartesian(centersPerDim), cartesian(widthsPerDim), nil
}

// Widths returns the kernel widths for one dimension's center sequence.
//
// For len(centers)==1 the width is 1.0. Otherwise width i makes kernels i and
// i+1 intersect at height h midway between them, and the last width repeats
// the one before it. h must be in (0,1); centers must be non-empty.
func Widths(centers []float64, h float64) []float64 {
	n := len(centers)
	out := make([]float64, n)
	if n == 1 {
		out[0] = singleKernelWidth
		return out
	}
	denom := -8 * math.Log(h)
	for i := 0; i < n-1; i++ {
		gap := centers[i+1] - centers[i]
		out[i] = math.Sqrt(gap * gap / denom)
	}
	out[n-1] = out[n-2]

	return out
}

// Grid enumerates the Cartesian product of per-dimension value lists as rows
// of a [Π len(values[d])][len(values)] matrix, last dimension fastest.
//
// Errors:
//   - ErrInputDim     - no dimensions.
//   - ErrEmptyCenters - some values[d] is empty.
func Grid(values [][]float64) (*matrix.Dense, error) {
	if len(values) == 0 {
		return nil, ErrInputDim
	}
	for d, vs := range values {
		if len(vs) == 0 {
			return nil, fmt.Errorf("Grid: dim %d: %w", d, ErrEmptyCenters)
		}
	}

	return cartesian(values), nil
}

// linspace returns n evenly spaced points from lo to hi inclusive.
// n==1 yields [lo].
func linspace(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	return floats.Span(out, lo, hi)
}

// cartesian is the mixed-radix enumeration behind Grid; inputs are pre-validated.
func cartesian(perDim [][]float64) *matrix.Dense {
	nDims := len(perDim)
	nRows := 1
	for _, vs := range perDim {
		nRows *= len(vs)
	}

	// every dimension is non-empty, so NewDense cannot fail here
	out, _ := matrix.NewDense(nRows, nDims)
	digit := make([]int, nDims)
	for r := 0; r < nRows; r++ {
		row := out.RawRow(r)
		for d := 0; d < nDims; d++ {
			row[d] = perDim[d][digit[d]]
		}
		// increment the last digit and carry towards the first
		for d := nDims - 1; d >= 0; d-- {
			digit[d]++
			if digit[d] < len(perDim[d]) || d == 0 {
				break
			}
			digit[d] = 0
		}
	}

	return out
}
