// Package rbfn is a small toolkit for radial basis function networks (RBFN):
// lay out Gaussian kernels over an input domain, evaluate them on batches of
// points, fit their weights and hand their parameters to an optimizer.
//
// 🚀 What is in the box?
//
//	• Kernel layouts: regular grids from per-dimension counts or explicit centers,
//	  with widths chosen so neighbours intersect at a chosen height
//	• Gaussian activations with an allocation-free hot path
//	• A trainable model with a flat, group-selectable parameter vector
//	• Optional memoization of the last batch of activations
//	• Least-squares training and prediction
//	• Interop records compatible with dynamic-typed readers
//
// ✨ Why choose rbfn?
//
//   - Small API, explicit errors, no panics on user input
//   - Real-time friendly: the *Into variants never allocate once warmed up
//   - Numerics by gonum: Cholesky/QR solves and vector helpers
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/  - row-major Dense storage, validators, array records
//	basis/   - Gaussian kernel activations
//	layout/  - kernel layout specification (centers & widths derivation)
//	rbfn/    - the RBFN model, activation cache, parameter vector
//	unified/ - basis-agnostic export of a kernel model
//	approx/  - train/predict function approximator, input grids
//
// Quick example:
//
//	spec, _ := layout.NewFromCounts(1, []int{9})
//	fa, _ := approx.New(spec)
//	_ = fa.Train(inputs, targets)
//	y, _ := fa.Predict(x)
//
//	go get github.com/katalvlaran/rbfn
package rbfn
