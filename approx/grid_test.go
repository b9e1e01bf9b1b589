package approx_test

import (
	"testing"

	"github.com/katalvlaran/rbfn/approx"
	"github.com/katalvlaran/rbfn/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInputsGrid checks ordering, endpoints and single-sample dimensions.
func TestInputsGrid(t *testing.T) {
	g, err := approx.InputsGrid([]float64{0, 5}, []float64{1, 9}, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 5}, {0.5, 5}, {1, 5}}, g.ToRows())

	g, err = approx.InputsGrid([]float64{0, 0}, []float64{1, 2}, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, g.ToRows())
}

// TestInputsGrid_Errors checks the argument guards.
func TestInputsGrid_Errors(t *testing.T) {
	_, err := approx.InputsGrid(nil, nil, nil)
	assert.ErrorIs(t, err, layout.ErrInputDim)

	_, err = approx.InputsGrid([]float64{0}, []float64{1, 2}, []int{2})
	assert.ErrorIs(t, err, layout.ErrDimensionMismatch)

	_, err = approx.InputsGrid([]float64{0}, []float64{1}, []int{0})
	assert.ErrorIs(t, err, layout.ErrBadCount)
}
