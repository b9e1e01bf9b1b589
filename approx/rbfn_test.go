package approx_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/katalvlaran/rbfn/approx"
	"github.com/katalvlaran/rbfn/layout"
	"github.com/katalvlaran/rbfn/matrix"
	"github.com/katalvlaran/rbfn/rbfn"
	"github.com/katalvlaran/rbfn/unified"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// silent discards approximator warnings.
var silent = approx.WithLogger(log.New(&bytes.Buffer{}, "", 0))

// problem is a 1-D data set generated by a known 5-kernel network on [0,1].
type problem struct {
	spec    *layout.Spec
	inputs  *matrix.Dense
	targets *matrix.Dense
	weights []float64
}

func newProblem(t *testing.T, opts ...layout.Option) problem {
	t.Helper()
	spec, err := layout.NewFromCounts(1, []int{5}, opts...)
	require.NoError(t, err)

	xs := make([]float64, 21)
	floats.Span(xs, 0, 1)
	inputs, err := matrix.NewColumn(xs)
	require.NoError(t, err)

	centers, widths, err := spec.CentersAndWidths([]float64{0}, []float64{1})
	require.NoError(t, err)
	w := []float64{1, -2, 0.5, 3, -1}
	weights, err := matrix.NewColumn(w)
	require.NoError(t, err)
	truth, err := unified.New(centers, widths, weights, false)
	require.NoError(t, err)
	targets, err := truth.Evaluate(inputs)
	require.NoError(t, err)

	return problem{spec: spec, inputs: inputs, targets: targets, weights: w}
}

// TestTrain_RecoversWeights fits data generated by the same layout exactly.
func TestTrain_RecoversWeights(t *testing.T) {
	p := newProblem(t)
	r, err := approx.New(p.spec, silent)
	require.NoError(t, err)
	assert.False(t, r.IsTrained())
	assert.Nil(t, r.Model())

	require.NoError(t, r.Train(p.inputs, p.targets))
	require.True(t, r.IsTrained())

	got := r.Model().Weights().RawData()
	assert.InDeltaSlice(t, p.weights, got, 1e-6)

	pred, err := r.Predict(p.inputs)
	require.NoError(t, err)
	assert.InDeltaSlice(t, p.targets.RawData(), pred.RawData(), 1e-8)
}

// TestTrain_RegularizationShrinks checks that a ridge term reduces the weight norm.
func TestTrain_RegularizationShrinks(t *testing.T) {
	plain := newProblem(t)
	ridged := newProblem(t, layout.WithRegularization(1))

	r0, err := approx.New(plain.spec, silent)
	require.NoError(t, err)
	require.NoError(t, r0.Train(plain.inputs, plain.targets))

	r1, err := approx.New(ridged.spec, silent)
	require.NoError(t, err)
	require.NoError(t, r1.Train(ridged.inputs, ridged.targets))

	n0 := floats.Norm(r0.Model().Weights().RawData(), 2)
	n1 := floats.Norm(r1.Model().Weights().RawData(), 2)
	assert.Less(t, n1, n0)
}

// TestTrain_Twice checks the one-shot rule and its warning.
func TestTrain_Twice(t *testing.T) {
	p := newProblem(t)
	var logs bytes.Buffer
	r, err := approx.New(p.spec, approx.WithLogger(log.New(&logs, "", 0)))
	require.NoError(t, err)
	require.NoError(t, r.Train(p.inputs, p.targets))
	before := r.Model().ParameterVectorAll()

	zeros, err := matrix.NewDense(p.targets.Rows(), 1)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Train(p.inputs, zeros), approx.ErrAlreadyTrained)
	assert.Contains(t, logs.String(), "already trained")
	assert.Equal(t, before, r.Model().ParameterVectorAll())
}

// TestTrain_Shapes checks input/target validation.
func TestTrain_Shapes(t *testing.T) {
	p := newProblem(t)
	r, err := approx.New(p.spec, silent)
	require.NoError(t, err)

	wide, err := matrix.NewDense(21, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Train(wide, p.targets), matrix.ErrDimensionMismatch)

	short, err := matrix.NewDense(3, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Train(p.inputs, short), matrix.ErrDimensionMismatch)

	twoCol, err := matrix.NewDense(21, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Train(p.inputs, twoCol), matrix.ErrDimensionMismatch)

	assert.ErrorIs(t, r.Train(nil, p.targets), matrix.ErrNilMatrix)
	assert.False(t, r.IsTrained())
}

// TestPredict_Untrained checks the guard.
func TestPredict_Untrained(t *testing.T) {
	p := newProblem(t)
	r, err := approx.New(p.spec, silent)
	require.NoError(t, err)
	_, err = r.Predict(p.inputs)
	assert.ErrorIs(t, err, approx.ErrNotTrained)
}

// TestPredict_ReusesScratchAcrossBatchSizes checks results stay right when sizes change.
func TestPredict_ReusesScratchAcrossBatchSizes(t *testing.T) {
	p := newProblem(t)
	r, err := approx.New(p.spec, silent)
	require.NoError(t, err)
	require.NoError(t, r.Train(p.inputs, p.targets))

	one, err := matrix.NewColumn([]float64{0.5})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		full, err := r.Predict(p.inputs)
		require.NoError(t, err)
		single, err := r.Predict(one)
		require.NoError(t, err)
		assert.InDelta(t, full.RawRow(10)[0], single.RawRow(0)[0], 1e-12)
	}

	_, err = r.Predict(p.targets.Copy())
	require.NoError(t, err, "one column is the right width")
	bad, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	_, err = r.Predict(bad)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFromModel wraps an existing network.
func TestFromModel(t *testing.T) {
	centers, _ := matrix.NewColumn([]float64{0, 1})
	widths, _ := matrix.NewColumn([]float64{1, 1})
	weights, _ := matrix.NewColumn([]float64{1, 1})
	m, err := rbfn.New(centers, widths, weights)
	require.NoError(t, err)

	r, err := approx.FromModel(m, silent)
	require.NoError(t, err)
	assert.True(t, r.IsTrained())
	assert.Nil(t, r.Spec())

	x, _ := matrix.NewColumn([]float64{0.5})
	out, err := r.Predict(x)
	require.NoError(t, err)
	u, err := m.ToUnified()
	require.NoError(t, err)
	want, err := u.Evaluate(x)
	require.NoError(t, err)
	assert.InDelta(t, want.RawRow(0)[0], out.RawRow(0)[0], 1e-15)

	_, err = approx.FromModel(nil)
	assert.ErrorIs(t, err, approx.ErrNilModel)
	_, err = approx.New(nil)
	assert.ErrorIs(t, err, approx.ErrNilSpec)
}

// TestClone_Independent checks that training a clone leaves the original untouched.
func TestClone_Independent(t *testing.T) {
	p := newProblem(t)
	r, err := approx.New(p.spec, silent)
	require.NoError(t, err)

	c := r.Clone()
	require.NoError(t, c.Train(p.inputs, p.targets))
	assert.True(t, c.IsTrained())
	assert.False(t, r.IsTrained())
	assert.Equal(t, p.spec.Counts(), c.Spec().Counts())
}
