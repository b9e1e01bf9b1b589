// Package layout turns a compact kernel description into a fully enumerated
// radial basis layout.
//
// 🚀 What is a layout?
//
//	A Spec says how many Gaussian kernels to place per input dimension (or
//	exactly where), and how much neighbouring kernels should overlap. Given the
//	input domain, CentersAndWidths expands it into dense center and width
//	matrices over the full Cartesian grid of per-dimension positions.
//
// ✨ Key features:
//   - counts form: kernels spread evenly (inclusive) over [min, max] per dimension
//   - explicit form: caller-provided per-dimension center coordinates
//   - widths from the intersection height: neighbours cross at h midway
//   - mixed-radix grid order (last dimension fastest), stable across releases
//   - interop record encoding (MarshalJSON / UnmarshalJSON)
//
// ⚙️ Usage:
//
//	spec, err := layout.NewFromCounts(2, []int{3, 4},
//	    layout.WithIntersectionHeight(0.5),
//	    layout.WithRegularization(0.1))
//	centers, widths, err := spec.CentersAndWidths([]float64{0, 0}, []float64{1, 2})
//	// centers, widths: 12×2
//
// A Spec is immutable; share it freely across goroutines.
package layout
