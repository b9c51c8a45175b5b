// SPDX-License-Identifier: MIT
// Package matrix provides elementwise addition, subtraction, scalar scaling,
// matrix multiplication and transpose, both as in-place methods on *Dense and
// as non-mutating package functions over any Matrix.
//
// Purpose:
//   - In-place methods mutate the receiver only after every check has passed.
//   - Package functions are copy-then-mutate: neither operand ever changes.
//   - Non-Dense operands are materialized once (asDense) so every kernel runs
//     on flat row-major slices.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDet       = "Determinant"
	opCofactors = "Cofactors"
	opInverse   = "Inverse"
	opMinor     = "Minor"
	opResize    = "Resize"
)

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy.
// Callers treat the result as read-only.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions for an empty non-Dense matrix,
//     and any error surfaced by m.At.
//
// Complexity:
//   - O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// copyOf returns an independent *Dense holding the values of m.
// For *Dense the numeric policy is inherited.
func copyOf(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}
	if d == m {
		return d.Copy(), nil
	}

	return d, nil // already a fresh materialization
}

// Add adds other into the receiver elementwise (m += other).
// Implementation:
//   - Stage 1: validate other is non-nil and has the receiver's shape.
//   - Stage 2: materialize other if needed, then add over the flat buffer.
//
// Behavior highlights:
//   - On error the receiver is unchanged.
//   - m.Add(m) doubles every element.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c).
func (m *Dense) Add(other Matrix) error {
	od, err := m.sameShapeOperand(other, opAdd)
	if err != nil {
		return err
	}
	for idx := range m.data {
		m.data[idx] += od.data[idx]
	}

	return nil
}

// Sub subtracts other from the receiver elementwise (m -= other).
// Same contract as Add.
func (m *Dense) Sub(other Matrix) error {
	od, err := m.sameShapeOperand(other, opSub)
	if err != nil {
		return err
	}
	for idx := range m.data {
		m.data[idx] -= od.data[idx]
	}

	return nil
}

// sameShapeOperand validates other against the receiver's shape and returns
// it as a *Dense ready for flat iteration.
func (m *Dense) sameShapeOperand(other Matrix, tag string) (*Dense, error) {
	if err := ValidateNotNil(other); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	od, err := asDense(other)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return od, nil
}

// Scale multiplies every element by alpha in place. It always succeeds;
// NaN/Inf produced by alpha propagate regardless of the write guard.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) {
	for idx := range m.data {
		m.data[idx] *= alpha
	}
}

// Mul replaces the receiver with the product m × other.
// MAIN DESCRIPTION:
//   - Structural mutation: the receiver becomes Rows() × other.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == other.Rows).
//   - Stage 2: compute the product into a fresh buffer (mulKernel).
//   - Stage 3: swap shape and buffer into the receiver.
//
// Behavior highlights:
//   - On error the receiver is unchanged.
//   - m.Mul(m) is safe: the product is never written over its inputs.
//
// Errors:
//   - ErrNilMatrix, ErrMulDimensionMismatch (also matches ErrDimensionMismatch).
//
// Complexity:
//   - Time O(r*n*p), Space O(r*p).
func (m *Dense) Mul(other Matrix) error {
	res, err := mulKernel(m, other)
	if err != nil {
		return matrixErrorf(opMul, err)
	}
	m.r, m.c, m.data = res.r, res.c, res.data

	return nil
}

// mulKernel computes a × b into a new Dense that inherits a's policy.
// Loop order is i→k→j over row-major strides; for each cell the products are
// accumulated in ascending k starting from ZeroSum, matching a plain dot product.
func mulKernel(a *Dense, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	db, err := asDense(b)
	if err != nil {
		return nil, err
	}

	aRows, aCols, bCols := a.r, a.c, db.c
	res := a.newLike(aRows, bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// T returns a new Cols()×Rows() matrix with result[j][i] = m[i][j].
// The receiver is not mutated. Complexity: O(r*c).
func (m *Dense) T() *Dense {
	res := m.newLike(m.c, m.r)
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Add computes C = A + B into a fresh Dense; operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) {
	res, err := copyOf(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err = res.Add(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Sub computes C = A - B into a fresh Dense; operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) {
	res, err := copyOf(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err = res.Sub(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	res, err := copyOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res.Scale(alpha)

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × p).
//
// Returns:
//   - *Dense C with shape (r × p).
//
// Errors:
//   - ErrNilMatrix, ErrMulDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*p), Space O(r*p).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := mulKernel(da, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense; m is never mutated.
// Errors: ErrNilMatrix.
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return d.T(), nil
}
