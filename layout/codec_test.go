package layout_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/rbfn/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecord_Encode checks the interop record keys.
func TestRecord_Encode(t *testing.T) {
	s, err := layout.NewFromCounts(2, []int{3, 4}, layout.WithIntersectionHeight(0.5), layout.WithRegularization(0.1))
	require.NoError(t, err)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"py/object": "functionapproximators.MetaParametersRBFN.MetaParametersRBFN",
		"n_basis_functions_per_dim": {"py/object": "numpy.ndarray", "dtype": "int64", "values": [3, 4]},
		"intersection_height": 0.5,
		"regularization": 0.1
	}`, string(raw))
}

// TestRecord_Decode reads a foreign record; the type tag is ignored.
func TestRecord_Decode(t *testing.T) {
	in := `{"py/object": "anything.else", "n_basis_functions_per_dim": {"values": [5]},
		"intersection_height": 0.7, "regularization": 0.0}`

	var s layout.Spec
	require.NoError(t, json.Unmarshal([]byte(in), &s))
	assert.Equal(t, 1, s.InputDim())
	assert.Equal(t, []int{5}, s.Counts())
	assert.Equal(t, 0.7, s.IntersectionHeight())
	assert.False(t, s.HasExplicitCenters())
}

// TestRecord_RoundTripExplicit checks the explicit form survives encoding.
func TestRecord_RoundTripExplicit(t *testing.T) {
	s, err := layout.NewFromCenters(2, [][]float64{{0, 1, 4}, {2}}, layout.WithIntersectionHeight(0.2))
	require.NoError(t, err)

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back layout.Spec
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, s.CentersPerDim(), back.CentersPerDim())
	assert.Equal(t, []int{3, 1}, back.Counts())
	assert.Equal(t, 0.2, back.IntersectionHeight())
}

// TestRecord_DecodeErrors checks that construction contracts apply to records.
func TestRecord_DecodeErrors(t *testing.T) {
	var s layout.Spec
	err := json.Unmarshal([]byte(`{"n_basis_functions_per_dim": {"values": [0]}, "intersection_height": 0.5}`), &s)
	assert.ErrorIs(t, err, layout.ErrBadCount)

	err = json.Unmarshal([]byte(`{"n_basis_functions_per_dim": {"values": [3]}, "intersection_height": 1.5}`), &s)
	assert.ErrorIs(t, err, layout.ErrIntersectionHeight)

	err = json.Unmarshal([]byte(`{"intersection_height": 0.5}`), &s)
	assert.ErrorIs(t, err, layout.ErrInputDim)
}
