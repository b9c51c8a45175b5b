// Package matrix offers a dense, row-major float64 matrix with value semantics.
//
// The matrix package provides:
//
//   - Dense: a mutable r×c matrix over one flat buffer (offset i*c + j) with
//     bounds-checked At/Set, deep Copy, O(1) Move and atomic Assign.
//   - Elementwise Add/Sub and Scale, in place on *Dense or as non-mutating
//     package functions over any Matrix.
//   - Matrix multiplication (Mul), transpose (T/Transpose).
//   - Cofactor expansion: Minor, Det (Laplace along the first row), Cofactors,
//     and Inverse via the adjugate.
//   - Resize/SetRows/SetCols that keep the overlapping block and zero-fill the rest.
//   - Tolerant Equal (strict |a-b| < eps, eps = 1e-7 by default).
//   - Conversion to and from gonum.org/v1/gonum/mat.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrMulDimensionMismatch, ErrNonSquare, ErrSingular,
// ErrNilMatrix, ErrNaNInf) wrapped with operation context; match them with
// errors.Is. A failing operation never leaves its receiver half-modified.
//
// The determinant and everything built on it run in O(n!) time. They are
// meant for small matrices; hand larger ones to gonum via ToGonum.
//
// A Dense is not safe for concurrent mutation; guard shared values externally.
package matrix
