package rbfn_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rbfn/rbfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParameterVectorAll_Layout checks column-major centers, then widths, then weights.
func TestParameterVectorAll_Layout(t *testing.T) {
	m := twoKernelModel(t)
	assert.Equal(t, []float64{0, 1, 0, 2, 1, 0.5, 1, 2, 1, 2}, m.ParameterVectorAll())
}

// TestParameterVector_RoundTrip checks get-after-set returns the written vector.
func TestParameterVector_RoundTrip(t *testing.T) {
	m := twoKernelModel(t)
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.NoError(t, m.SetParameterVectorAll(want))
	assert.Equal(t, want, m.ParameterVectorAll())

	// column-major placement
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, m.Centers().ToRows())
	assert.Equal(t, [][]float64{{5, 7}, {6, 8}}, m.Widths().ToRows())
	assert.Equal(t, [][]float64{{9}, {10}}, m.Weights().ToRows())
}

// TestSetParameterVectorAll_WrongSize checks both too short and too long.
func TestSetParameterVectorAll_WrongSize(t *testing.T) {
	m := twoKernelModel(t)
	before := m.ParameterVectorAll()
	for _, n := range []int{0, 9, 11} {
		err := m.SetParameterVectorAll(make([]float64, n))
		assert.ErrorIs(t, err, rbfn.ErrParameterVectorSize, "n=%d", n)
		assert.Equal(t, before, m.ParameterVectorAll())
	}
}

// TestSetParameterVectorAll_NonFinite checks that optimizer output is stored as given.
func TestSetParameterVectorAll_NonFinite(t *testing.T) {
	m := twoKernelModel(t)
	theta := m.ParameterVectorAll()
	theta[1] = math.Inf(1) // centers[1][0]
	theta[9] = math.NaN()  // weights[1][0]
	require.NoError(t, m.SetParameterVectorAll(theta))

	got := m.ParameterVectorAll()
	assert.True(t, math.IsInf(got[1], 1))
	assert.True(t, math.IsNaN(got[9]))
	assert.Equal(t, theta[:9], got[:9])
}

// TestSelectableGroups lists the three groups in vector order.
func TestSelectableGroups(t *testing.T) {
	m := twoKernelModel(t)
	assert.Equal(t, []string{"centers", "widths", "weights"}, m.SelectableGroups())
}

// TestParameterVectorMask checks group ids and that unknown labels are ignored.
func TestParameterVectorMask(t *testing.T) {
	m := twoKernelModel(t)

	assert.Equal(t, []int{1, 1, 1, 1, 0, 0, 0, 0, 3, 3},
		m.ParameterVectorMask([]string{rbfn.GroupCenters, rbfn.GroupWeights}))
	assert.Equal(t, []int{0, 0, 0, 0, 2, 2, 2, 2, 0, 0},
		m.ParameterVectorMask([]string{rbfn.GroupWidths, "offsets"}))
	assert.Equal(t, make([]int, 10), m.ParameterVectorMask(nil))

	mask := m.ParameterVectorMask(m.SelectableGroups())
	assert.Len(t, mask, m.ParameterCount())
	assert.NotContains(t, mask, 0)
}

// TestParameterVectorSelected checks subset extraction and write-back.
func TestParameterVectorSelected(t *testing.T) {
	m := twoKernelModel(t)

	assert.Equal(t, []float64{1, 0.5, 1, 2}, m.ParameterVectorSelected([]string{rbfn.GroupWidths}))
	assert.Equal(t, []float64{0, 1, 0, 2, 1, 2},
		m.ParameterVectorSelected([]string{rbfn.GroupWeights, rbfn.GroupCenters}))

	require.NoError(t, m.SetParameterVectorSelected([]string{rbfn.GroupCenters}, []float64{9, 8, 7, 6}))
	assert.Equal(t, [][]float64{{9, 7}, {8, 6}}, m.Centers().ToRows())
	assert.Equal(t, [][]float64{{1, 1}, {0.5, 2}}, m.Widths().ToRows(), "unselected groups untouched")

	err := m.SetParameterVectorSelected([]string{rbfn.GroupCenters}, []float64{1})
	assert.ErrorIs(t, err, rbfn.ErrParameterVectorSize)
	assert.Equal(t, [][]float64{{9, 7}, {8, 6}}, m.Centers().ToRows())
}
