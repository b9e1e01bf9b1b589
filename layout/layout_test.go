package layout_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rbfn/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewFromCounts_Errors verifies each construction contract violation.
func TestNewFromCounts_Errors(t *testing.T) {
	_, err := layout.NewFromCounts(0, nil)
	assert.ErrorIs(t, err, layout.ErrInputDim)

	_, err = layout.NewFromCounts(2, []int{3})
	assert.ErrorIs(t, err, layout.ErrDimensionMismatch)

	_, err = layout.NewFromCounts(2, []int{3, 0})
	assert.ErrorIs(t, err, layout.ErrBadCount)

	for _, h := range []float64{0, 1, -0.2, 1.5, math.NaN()} {
		_, err = layout.NewFromCounts(1, []int{3}, layout.WithIntersectionHeight(h))
		assert.ErrorIs(t, err, layout.ErrOptionViolation, "h=%g", h)
		assert.ErrorIs(t, err, layout.ErrIntersectionHeight, "h=%g", h)
	}

	_, err = layout.NewFromCounts(1, []int{3}, layout.WithRegularization(-1))
	assert.ErrorIs(t, err, layout.ErrRegularization)
}

// TestNewFromCenters_Errors verifies the explicit-centers contract.
func TestNewFromCenters_Errors(t *testing.T) {
	_, err := layout.NewFromCenters(2, [][]float64{{0, 1}})
	assert.ErrorIs(t, err, layout.ErrDimensionMismatch)

	_, err = layout.NewFromCenters(2, [][]float64{{0, 1}, {}})
	assert.ErrorIs(t, err, layout.ErrEmptyCenters)

	_, err = layout.NewFromCenters(-1, nil)
	assert.ErrorIs(t, err, layout.ErrInputDim)
}

// TestDefaultsAndAccessors checks defaults, option overrides and copies.
func TestDefaultsAndAccessors(t *testing.T) {
	s, err := layout.NewUniform(5)
	require.NoError(t, err)
	assert.Equal(t, 1, s.InputDim())
	assert.Equal(t, layout.DefaultIntersectionHeight, s.IntersectionHeight())
	assert.Equal(t, layout.DefaultRegularization, s.Regularization())
	assert.Equal(t, []int{5}, s.Counts())
	assert.Nil(t, s.CentersPerDim())
	assert.False(t, s.HasExplicitCenters())

	counts := []int{2, 3}
	s2, err := layout.NewFromCounts(2, counts, layout.WithIntersectionHeight(0.3), layout.WithRegularization(0.5))
	require.NoError(t, err)
	counts[0] = 99
	assert.Equal(t, []int{2, 3}, s2.Counts(), "constructor must copy its input")
	assert.Equal(t, 6, s2.NumBasisFunctions())
	assert.Equal(t, 0.3, s2.IntersectionHeight())
	assert.Equal(t, 0.5, s2.Regularization())

	got := s2.Counts()
	got[1] = 42
	assert.Equal(t, []int{2, 3}, s2.Counts(), "accessor must return a copy")
}

// TestClone ensures clones are equal in value and independent in storage.
func TestClone(t *testing.T) {
	s, err := layout.NewFromCenters(1, [][]float64{{0, 0.5, 2}}, layout.WithIntersectionHeight(0.4))
	require.NoError(t, err)

	c := s.Clone()
	assert.Equal(t, s.CentersPerDim(), c.CentersPerDim())
	assert.Equal(t, s.IntersectionHeight(), c.IntersectionHeight())
	assert.True(t, c.HasExplicitCenters())
	assert.Equal(t, []int{3}, c.Counts())
}
