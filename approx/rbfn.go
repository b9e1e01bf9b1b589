// SPDX-License-Identifier: MIT

// Package approx - RBFN function approximator.
//
// Purpose:
//   - Derive a kernel layout from the training data range, fit weights by
//     ridge least squares and predict with the resulting rbfn.Model.
//
// Lifecycle:
//
//	New(spec) ──Train──▶ trained ──Predict*
//	FromModel(model) ──────▶ trained
//
// Train is one-shot; a second call is refused and logged.
package approx

import (
	"errors"
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rbfn/basis"
	"github.com/katalvlaran/rbfn/layout"
	"github.com/katalvlaran/rbfn/matrix"
	"github.com/katalvlaran/rbfn/rbfn"
)

// RBFN approximates a scalar function of n_dims inputs with a Gaussian RBF network.
// It is not safe for concurrent use; Predict reuses internal buffers.
type RBFN struct {
	spec  *layout.Spec // nil when built from a model only
	model *rbfn.Model  // nil until trained

	logger    *log.Logger
	modelOpts []rbfn.Option

	// prediction scratch
	weights []float64
	acts    *matrix.Dense
}

// New returns an untrained approximator for spec.
//
// Errors: ErrNilSpec.
func New(spec *layout.Spec, opts ...Option) (*RBFN, error) {
	if spec == nil {
		return nil, fmt.Errorf("approx.New: %w", ErrNilSpec)
	}
	o := gatherOptions(opts...)

	return &RBFN{spec: spec.Clone(), logger: o.Logger, modelOpts: o.ModelOptions}, nil
}

// FromModel returns a trained approximator wrapping a copy of model.
// The layout is unknown, so Spec returns nil.
//
// Errors: ErrNilModel.
func FromModel(model *rbfn.Model, opts ...Option) (*RBFN, error) {
	if model == nil {
		return nil, fmt.Errorf("approx.FromModel: %w", ErrNilModel)
	}
	o := gatherOptions(opts...)
	r := &RBFN{logger: o.Logger, modelOpts: o.ModelOptions}
	r.setModel(model.Clone())

	return r, nil
}

// setModel installs a trained model and resets the prediction scratch.
func (r *RBFN) setModel(m *rbfn.Model) {
	r.model = m
	r.weights = m.Weights().RawData()
	r.acts = nil
}

// IsTrained reports whether a model is available.
func (r *RBFN) IsTrained() bool { return r.model != nil }

// Spec returns a copy of the layout, or nil if there is none.
func (r *RBFN) Spec() *layout.Spec {
	if r.spec == nil {
		return nil
	}

	return r.spec.Clone()
}

// Model returns a copy of the trained model, or nil before training.
func (r *RBFN) Model() *rbfn.Model {
	if r.model == nil {
		return nil
	}

	return r.model.Clone()
}

// Clone returns an independent approximator in the same state.
func (r *RBFN) Clone() *RBFN {
	c := &RBFN{logger: r.logger, modelOpts: r.modelOpts}
	if r.spec != nil {
		c.spec = r.spec.Clone()
	}
	if r.model != nil {
		c.setModel(r.model.Clone())
	}

	return c
}

// Train fits the network to (inputs, targets).
//
// Implementation:
//   - Stage 1: per-column min/max of inputs bound the kernel grid.
//   - Stage 2: centers and widths from the layout; unnormalized activations A.
//   - Stage 3: weights w solve (AᵀA + λI) w = Aᵀy with λ the layout regularization.
//
// Errors:
//   - ErrAlreadyTrained (logged, approximator unchanged), ErrNilSpec.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for inconsistent shapes:
//     inputs must have InputDim columns, targets one column and as many rows.
//   - ErrSingular when the system cannot be solved.
func (r *RBFN) Train(inputs, targets *matrix.Dense) error {
	if r.IsTrained() {
		r.logger.Printf("Train: already trained; doing nothing")

		return fmt.Errorf("approx.Train: %w", ErrAlreadyTrained)
	}
	if r.spec == nil {
		return fmt.Errorf("approx.Train: %w", ErrNilSpec)
	}
	if err := matrix.ValidateCols(inputs, r.spec.InputDim()); err != nil {
		return fmt.Errorf("approx.Train: inputs: %w", err)
	}
	if err := matrix.ValidateCols(targets, 1); err != nil {
		return fmt.Errorf("approx.Train: targets: %w", err)
	}
	if targets.Rows() != inputs.Rows() {
		return fmt.Errorf("approx.Train: %d inputs, %d targets: %w", inputs.Rows(), targets.Rows(), matrix.ErrDimensionMismatch)
	}

	lo, hi := columnBounds(inputs)
	centers, widths, err := r.spec.CentersAndWidths(lo, hi)
	if err != nil {
		return fmt.Errorf("approx.Train: %w", err)
	}

	acts, err := basis.NewActivations(centers, inputs)
	if err != nil {
		return fmt.Errorf("approx.Train: %w", err)
	}
	basis.Gaussian(centers, widths, inputs, acts, false)

	w, err := ridge(acts, targets.RawData(), r.spec.Regularization())
	if err != nil {
		return fmt.Errorf("approx.Train: %w", err)
	}
	weights, err := matrix.NewColumn(w)
	if err != nil {
		return fmt.Errorf("approx.Train: %w", err)
	}

	m, err := rbfn.New(centers, widths, weights, r.modelOpts...)
	if err != nil {
		return fmt.Errorf("approx.Train: %w", err)
	}
	r.setModel(m)

	return nil
}

// columnBounds returns the per-column minimum and maximum of m.
func columnBounds(m *matrix.Dense) (lo, hi []float64) {
	lo = append([]float64(nil), m.RawRow(0)...)
	hi = append([]float64(nil), m.RawRow(0)...)
	for i := 1; i < m.Rows(); i++ {
		for j, v := range m.RawRow(i) {
			lo[j] = math.Min(lo[j], v)
			hi[j] = math.Max(hi[j], v)
		}
	}

	return lo, hi
}

// ridge solves min ‖Aw − y‖² + λ‖w‖².
//
// The normal equations (AᵀA + λI) w = Aᵀy are factorized with Cholesky. When
// that fails (AᵀA only semi-definite), the equivalent augmented problem
// [A; √λ I] w ≈ [y; 0] is solved by QR, which also covers rank-deficient A.
func ridge(acts *matrix.Dense, y []float64, lambda float64) ([]float64, error) {
	n, k := acts.Rows(), acts.Cols()
	a := mat.NewDense(n, k, acts.RawData())
	b := mat.NewVecDense(n, y)

	ata := mat.NewSymDense(k, nil)
	ata.SymOuterK(1, a.T())
	for i := 0; i < k; i++ {
		ata.SetSym(i, i, ata.At(i, i)+lambda)
	}
	atb := mat.NewVecDense(k, nil)
	atb.MulVec(a.T(), b)

	var chol mat.Cholesky
	w := mat.NewVecDense(k, nil)
	if chol.Factorize(ata) {
		if err := chol.SolveVecTo(w, atb); err == nil {
			return w.RawVector().Data, nil
		}
	}

	aug := mat.NewDense(n+k, k, nil)
	aug.Slice(0, n, 0, k).(*mat.Dense).Copy(a)
	sq := math.Sqrt(lambda)
	for i := 0; i < k; i++ {
		aug.Set(n+i, i, sq)
	}
	rhs := mat.NewVecDense(n+k, nil)
	rhs.SliceVec(0, n).(*mat.VecDense).CopyVec(b)

	if err := w.SolveVec(aug, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}

	return w.RawVector().Data, nil
}

// Predict returns [n_points][1] outputs Σ_b weights[b]·a_b(x).
//
// Errors:
//   - ErrNotTrained (logged).
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for a wrong input width.
func (r *RBFN) Predict(inputs *matrix.Dense) (*matrix.Dense, error) {
	if !r.IsTrained() {
		r.logger.Printf("Predict: not trained; doing nothing")

		return nil, fmt.Errorf("approx.Predict: %w", ErrNotTrained)
	}
	if err := matrix.ValidateCols(inputs, r.model.InputDim()); err != nil {
		return nil, fmt.Errorf("approx.Predict: %w", err)
	}

	out, err := matrix.NewDense(inputs.Rows(), 1)
	if err != nil {
		return nil, fmt.Errorf("approx.Predict: %w", err)
	}
	r.PredictInto(inputs, out.RawData())

	return out, nil
}

// PredictInto writes predictions into dst without checks.
//
// The approximator must be trained, inputs must be [n_points][InputDim] and
// len(dst) ≥ n_points. The activation scratch is reused while the batch size
// repeats, so a steady control loop does not allocate.
func (r *RBFN) PredictInto(inputs *matrix.Dense, dst []float64) {
	if r.acts == nil || r.acts.Rows() != inputs.Rows() {
		r.acts, _ = matrix.NewDense(inputs.Rows(), r.model.NumBasisFunctions())
	}
	r.model.KernelActivationsInto(inputs, r.acts)
	matrix.MatVecInto(r.acts, r.weights, dst)
}
