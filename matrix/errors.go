// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these (possibly wrapped with
// operation context) and tests match them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context through matrixErrorf or
// denseErrorf; callers still match the sentinel with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> square check -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// at construction or resize time.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands of an
	// elementwise operation (Add/Sub) or a copy that requires equal shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMulDimensionMismatch signals that a.Cols != b.Rows in a product.
	// It wraps ErrDimensionMismatch, so errors.Is matches both sentinels.
	ErrMulDimensionMismatch = fmt.Errorf("%w: inner dimensions differ", ErrDimensionMismatch)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| is below the numeric epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix whose
	// numeric policy requires finite values (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
