// Package lvmatrix is a small linear-algebra toolkit centred on a dense
// two-dimensional float64 matrix value type.
//
// What is inside:
//
//	matrix/: Dense storage, bounds-checked access, arithmetic, transpose,
//	          determinant / cofactor matrix / inverse by Laplace expansion,
//	          dynamic resizing, tolerant equality and gonum interop.
//
// Quick example:
//
//	a, err := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	if err != nil {
//		return err
//	}
//	inv, err := a.Inverse()
//	if err != nil {
//		return err
//	}
//	if err := a.Mul(inv); err != nil {
//		return err
//	}
//	// a is now (approximately) the 2×2 identity
//
// Every operation reports misuse through sentinel errors and never leaves a
// matrix half-modified.
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
