package approx_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/rbfn/approx"
	"github.com/katalvlaran/rbfn/matrix"
	"github.com/katalvlaran/rbfn/rbfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecord_RoundTripTrained checks that a decoded approximator predicts identically.
func TestRecord_RoundTripTrained(t *testing.T) {
	p := newProblem(t)
	r, err := approx.New(p.spec, silent)
	require.NoError(t, err)
	require.NoError(t, r.Train(p.inputs, p.targets))

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Contains(t, keys, "_meta_params")
	assert.Contains(t, keys, "_model_params")
	assert.JSONEq(t, `"`+approx.RecordTag+`"`, string(keys["py/object"]))

	back, err := approx.Decode(raw, silent, approx.WithModelOptions(rbfn.WithCaching(true)))
	require.NoError(t, err)
	require.True(t, back.IsTrained())
	assert.True(t, back.Model().Caching())
	assert.Equal(t, p.spec.Counts(), back.Spec().Counts())

	want, err := r.Predict(p.inputs)
	require.NoError(t, err)
	got, err := back.Predict(p.inputs)
	require.NoError(t, err)
	assert.Equal(t, want.RawData(), got.RawData())
}

// TestRecord_Untrained checks that a layout-only record decodes untrained.
func TestRecord_Untrained(t *testing.T) {
	p := newProblem(t)
	r, err := approx.New(p.spec, silent)
	require.NoError(t, err)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "_model_params")

	var back approx.RBFN
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.False(t, back.IsTrained())
	assert.Equal(t, []int{5}, back.Spec().Counts())
}

// TestRecord_Empty checks that a record needs at least one part.
func TestRecord_Empty(t *testing.T) {
	_, err := approx.Decode([]byte(`{"py/object": "x"}`))
	assert.ErrorIs(t, err, matrix.ErrBadRecord)
}
