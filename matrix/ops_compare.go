// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerant equality between matrices.
//
// Contract:
//   - Shapes must match, otherwise the matrices differ.
//   - Two cells are equal when they are bit-for-bit equal or |a-b| < eps (strict).
//   - Equality never errors: nil operands or unreadable cells compare unequal.

package matrix

import "math"

// Equal reports whether other has the receiver's shape and every cell lies
// strictly within the receiver's epsilon (DefaultEpsilon unless overridden).
// Complexity: O(r*c), early exit on the first differing cell.
func (m *Dense) Equal(other Matrix) bool {
	if m == nil {
		return false
	}

	return equalWithin(m, other, m.eps)
}

// Equal reports whether a and b are equal within tolerance. The tolerance is
// a's epsilon when a is a *Dense and DefaultEpsilon otherwise.
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil {
		return false
	}
	if d, ok := a.(*Dense); ok {
		return d.Equal(b)
	}

	return equalWithin(a, b, DefaultEpsilon)
}

// equalWithin implements the comparison loop with a flat fast path for two
// *Dense operands and an At-based fallback otherwise.
func equalWithin(a, b Matrix, eps float64) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range da.data {
			if !closeEnough(da.data[idx], db.data[idx], eps) {
				return false
			}
		}
		return true
	}

	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if !closeEnough(av, bv, eps) {
				return false
			}
		}
	}

	return true
}

// closeEnough is the per-cell predicate: exact match first, then the strict
// tolerance test. NaN never equals anything, including itself.
func closeEnough(x, y, eps float64) bool {
	if x == y {
		return true
	}

	return math.Abs(x-y) < eps
}
