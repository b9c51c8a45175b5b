// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Dense to gonum routines (factorizations, solvers) and bring the
//     results back without sharing storage in either direction.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum copies the receiver into a new *mat.Dense.
//
// Errors:
//   - ErrInvalidDimensions for an empty shell (gonum rejects zero-sized matrices).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if err := validateDims(m.r, m.c); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxToGonum, err)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// FromGonum copies any gonum matrix into a new Dense configured by opts.
// Implementation:
//   - Stage 1: reject nil (including a typed-nil *mat.Dense), read Dims, reject empty matrices.
//   - Stage 2: *mat.Dense fast path copies row slices honoring the stride;
//     other implementations (views, transposes, symmetric types) go through At.
//   - Stage 3: enforce the NaN/Inf guard when requested.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	if gd, ok := src.(*mat.Dense); ok && gd == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	out, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, err)
	}

	var i, j int
	if gd, ok := src.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i = 0; i < rows; i++ {
			copy(out.data[i*cols:(i+1)*cols], raw.Data[i*raw.Stride:i*raw.Stride+cols])
		}
	} else {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				out.data[i*cols+j] = src.At(i, j)
			}
		}
	}

	if out.validateNaNInf {
		for idx, v := range out.data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxFromGonum, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}

	return out, nil
}
