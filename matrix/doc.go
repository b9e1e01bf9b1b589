// Package matrix provides the dense numeric storage used across the module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning At/Set, deep
//     Clone/Copy, value Equal and raw row access for allocation-free kernels.
//   - Central validators (ValidateNotNil, ValidateSameShape, ValidateCols,
//     ValidateMulCompatible, ValidateVecLen) returning sentinel errors.
//   - Kernels: Mul, MatVec/MatVecInto, AllClose.
//   - The numeric-array record codec (Dense, Vector, IntVector) used by the
//     layout, model and approximator records.
//
// Every error is a package sentinel (see errors.go) wrapped with context;
// match with errors.Is.
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	y, _ := matrix.MatVec(m, []float64{1, 1}) // [3 7]
package matrix
