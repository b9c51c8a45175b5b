// SPDX-License-Identifier: MIT
// Package matrix - cofactor expansion: minors, determinant, cofactor matrix, inverse.
//
// Purpose:
//   - Determinant by Laplace expansion along row 0, recursively over minors.
//   - Cofactor (complement) matrix and the adjugate-based inverse.
//
// Design:
//   - Every recursion level builds its minors from scratch; nothing is memoized.
//   - Time is O(n!) in the matrix order. This is an accepted limit of the
//     algorithm: it is meant for small matrices only.
//   - The recursion runs on unexported helpers that assume a validated square
//     Dense; public entry points validate once.
//
// Determinism:
//   - Fixed summation order (col 0..n-1) so results are reproducible bit for bit.

package matrix

import (
	"fmt"
	"math"
)

// minorExcluding returns the (r-1)×(c-1) matrix obtained by dropping
// rowToSkip and colToSkip, preserving the relative order of the rest.
// Caller guarantees r, c >= 2 and valid indices.
// Complexity: O(r*c).
func (m *Dense) minorExcluding(rowToSkip, colToSkip int) *Dense {
	res := m.newLike(m.r-1, m.c-1)
	var row, col, dst int
	for row = 0; row < m.r; row++ {
		if row == rowToSkip {
			continue
		}
		for col = 0; col < m.c; col++ {
			if col == colToSkip {
				continue
			}
			res.data[dst] = m.data[row*m.c+col]
			dst++
		}
	}

	return res
}

// Minor returns the submatrix obtained by removing row and col.
//
// Errors:
//   - ErrNonSquare when the receiver is not square.
//   - ErrInvalidDimensions for a 1×1 receiver (no minor exists) or an empty shell.
//   - ErrOutOfRange for invalid row/col.
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	return m.minorExcluding(row, col), nil
}

// det is the recursive Laplace expansion along row 0.
// Odd columns are subtracted rather than multiplied by -1.
func (m *Dense) det() float64 {
	n := m.r
	if n == 1 {
		return m.data[0]
	}

	sum := ZeroSum
	var col int
	var minorDet float64
	for col = 0; col < n; col++ {
		minorDet = m.minorExcluding(0, col).det()
		if col%2 == 0 {
			sum += m.data[col] * minorDet
		} else {
			sum -= m.data[col] * minorDet
		}
	}

	return sum
}

// Det computes the determinant by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - det([[v]]) = v; det(A) = Σ_col (-1)^col · A[0][col] · det(minor(0,col)).
//
// Errors:
//   - ErrNonSquare for a non-square receiver; ErrInvalidDimensions for an empty shell.
//
// Complexity:
//   - Time O(n!), Space O(n²) along the recursion path.
func (m *Dense) Det() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.det(), nil
}

// cofactors builds the complement matrix of a validated square receiver.
// A sign flip is applied only when (row+col) is odd AND the minor determinant
// is non-zero, so a zero cofactor is always +0.0, never -0.0.
func (m *Dense) cofactors() *Dense {
	n := m.r
	res := m.newLike(n, n)
	if n == 1 {
		res.data[0] = 1
		return res
	}

	var row, col int
	var minorDet float64
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			minorDet = m.minorExcluding(row, col).det()
			if (row+col)%2 == 1 && minorDet != 0 {
				minorDet = -minorDet
			}
			res.data[row*n+col] = minorDet
		}
	}

	return res
}

// Cofactors returns the matrix of algebraic complements.
// MAIN DESCRIPTION:
//   - result[i][j] = (-1)^(i+j) · det(minor(i,j)); the 1×1 case yields [[1]].
//
// Behavior highlights:
//   - Zero minors keep their +0.0 sign regardless of parity.
//   - The receiver is not mutated.
//
// Errors:
//   - ErrNonSquare, ErrInvalidDimensions (empty shell).
//
// Complexity:
//   - Time O(n² · (n-1)!).
func (m *Dense) Cofactors() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return m.cofactors(), nil
}

// Inverse returns A⁻¹ = adj(A) / det(A), where adj(A) is the transposed cofactor matrix.
// Implementation:
//   - Stage 1: validate square.
//   - Stage 2: det via Laplace expansion; det == 0 or |det| < eps ⇒ ErrSingular.
//   - Stage 3: divide each adjugate cell by det.
//
// Behavior highlights:
//   - The receiver is not mutated; the result inherits its numeric policy.
//
// Errors:
//   - ErrNonSquare, ErrInvalidDimensions (empty shell), ErrSingular.
//
// Complexity:
//   - Dominated by the cofactor matrix: O(n² · (n-1)!).
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := m.det()
	if det == 0 || math.Abs(det) < m.eps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("|det|=%g: %w", math.Abs(det), ErrSingular))
	}

	res := m.cofactors().T()
	for idx := range res.data {
		res.data[idx] /= det
	}

	return res, nil
}

// Determinant is the package-level form of (*Dense).Det for any Matrix.
func Determinant(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return d.Det()
}

// Cofactors is the package-level form of (*Dense).Cofactors for any Matrix.
func Cofactors(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return d.Cofactors()
}

// Inverse is the package-level form of (*Dense).Inverse for any Matrix.
func Inverse(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return d.Inverse()
}
