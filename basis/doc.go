// Package basis evaluates radial basis kernels over batches of input points.
//
// Only the axis-aligned Gaussian family is provided:
//
//	a(x) = exp(-0.5 · Σ_d (x_d − c_d)² / w_d²)
//
// Gaussian writes into a caller-owned buffer and never allocates, so it can
// sit on a control loop's hot path. Shapes are the caller's responsibility;
// Validate checks them once upfront and NewActivations sizes the buffer.
//
//	dst, _ := basis.NewActivations(centers, inputs)
//	if err := basis.Validate(centers, widths, inputs, dst); err != nil { ... }
//	basis.Gaussian(centers, widths, inputs, dst, false)
package basis
