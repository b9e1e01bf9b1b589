// SPDX-License-Identifier: MIT

// Package rbfn implements a radial basis function network (RBFN) model: a
// weighted sum of axis-aligned Gaussian kernels
//
//	y(x) = Σ_b weights[b] · exp(-0.5 · Σ_d (x_d − centers[b,d])² / widths[b,d]²)
//
// The Model owns three matrices, centers and widths [n_basis][n_dims] and
// weights [n_basis][1], and keeps their shapes consistent for its whole life.
//
// Activations:
//
//	KernelActivations allocates and validates; KernelActivationsInto is the
//	allocation-free hot path for callers that sized their buffer once. With
//	caching on, a batch identical (element-wise) to the previous one is
//	answered from an ActivationCache instead of being recomputed.
//
// Parameter vector:
//
//	Optimizers see the model as one flat vector, centers column by column,
//	then widths column by column, then weights. Groups "centers", "widths"
//	and "weights" can be selected to optimize a subset; ParameterVectorMask
//	marks each entry with MaskCenters, MaskWidths or MaskWeights.
//
//	Writing the vector clears the activation cache only when a centers or
//	widths column changes value. Weight updates keep it, which is what makes
//	weight-only optimization loops cheap.
//
// Records:
//
//	A Model encodes to {"py/object": RecordTag, "centers_", "widths_", "weights_"}
//	with every matrix as an array record (see matrix.Dense.MarshalJSON).
//	Decode also accepts the unsuffixed keys.
//
// Example:
//
//	m, _ := rbfn.New(centers, widths, weights, rbfn.WithCaching(true))
//	acts, _ := m.KernelActivations(inputs)
//	theta := m.ParameterVectorAll()
//	_ = m.SetParameterVectorAll(theta)
package rbfn
