// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Give Dense value semantics: Copy never aliases, Move transfers the buffer
//     exclusively, Assign replaces the receiver atomically.
//   - Enforce a per-instance numeric policy (eps, optional NaN/Inf rejection).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Copy/Clone/Assign: O(r*c); Move: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxApply  = "Apply"  // method tag used in error wrappers
	ctxAssign = "Assign" // method tag used in error wrappers
	ctxRows   = "NewFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <sentinel>" and still
// matches the sentinel through errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are >= 1 for every constructed value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - eps and validateNaNInf carry the numeric policy resolved from Options.
//
// A Dense emptied by Move is a 0×0 shell with a nil buffer; every indexed
// access on it fails with ErrOutOfRange.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	eps            float64   // strict tolerance for Equal / Inverse
	validateNaNInf bool      // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve Options (eps, NaN/Inf guard).
//   - Stage 3: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Nothing is allocated when validation fails.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//   - opts: numeric policy overrides (see options.go)
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		eps:            o.eps,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDefault returns the default 1×1 zero matrix with the default policy.
// It cannot fail.
func NewDefault() *Dense {
	return &Dense{
		r:              1,
		c:              1,
		data:           make([]float64, 1),
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewFromRows builds a Dense from a rectangular row literal.
// Implementation:
//   - Stage 1: reject empty input (no rows or empty first row).
//   - Stage 2: reject ragged rows.
//   - Stage 3: copy values row by row; the literal is never aliased.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or no columns.
//   - ErrDimensionMismatch when a row length differs from the first row.
//   - ErrNaNInf when the guard is enabled and a value is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if m.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxRows, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// newLike allocates a zero rows×cols Dense that inherits the numeric policy of m.
// Callers guarantee rows, cols >= 0.
func (m *Dense) newLike(rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Epsilon returns the strict tolerance carried by this matrix.
func (m *Dense) Epsilon() float64 { return m.eps }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The error is a bare sentinel; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates; never resizes, never panics.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under the guard.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy) as a Matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with the concrete type preserved.
// The two values never share storage.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	out := m.newLike(m.r, m.c)
	copy(out.data, m.data)

	return out
}

// Move transfers ownership of the buffer to a new Dense and leaves the
// receiver as an empty 0×0 shell.
// MAIN DESCRIPTION:
//   - O(1) hand-off: no element is copied.
//
// Behavior highlights:
//   - The returned value keeps shape, data and numeric policy.
//   - The shell reports Rows()==Cols()==0; At/Set on it fail with ErrOutOfRange.
//   - The shell may be revived with Assign.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Move() *Dense {
	out := &Dense{
		r:              m.r,
		c:              m.c,
		data:           m.data,
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Assign replaces the receiver's shape and contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Copy-assignment with all-or-nothing semantics.
//
// Implementation:
//   - Stage 1: validate src is non-nil and has positive dimensions.
//   - Stage 2: materialize src into a temporary buffer (Dense fast path or At loop),
//     enforcing the receiver's NaN/Inf policy.
//   - Stage 3: swap the temporary in.
//
// Behavior highlights:
//   - On any error the receiver is left exactly as it was.
//   - The receiver keeps its own numeric policy; only shape and data change.
//   - Self-assignment is a no-op.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (src is an empty shell), ErrNaNInf, errors from src.At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Assign(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxAssign, err)
	}
	if sd, ok := src.(*Dense); ok && sd == m {
		return nil
	}
	rows, cols := src.Rows(), src.Cols()
	if err := validateDims(rows, cols); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxAssign, err)
	}

	buf := make([]float64, rows*cols)
	if sd, ok := src.(*Dense); ok {
		copy(buf, sd.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if v, err = src.At(i, j); err != nil {
					return fmt.Errorf("Dense.%s: %w", ctxAssign, err)
				}
				buf[i*cols+j] = v
			}
		}
	}
	if m.validateNaNInf {
		for idx, v := range buf {
			if isNonFinite(v) {
				return denseErrorf(ctxAssign, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}

	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// String renders the matrix as one "[a, b, ...]" line per row using %g.
// Intended for diagnostics and test failure messages, not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v).
// Implementation:
//   - Stage 1: compute every new value into a temporary buffer in row-major order.
//   - Stage 2: reject NaN/Inf if the guard is enabled.
//   - Stage 3: swap the buffer in.
//
// Behavior highlights:
//   - All-or-nothing: on ErrNaNInf the receiver is unchanged.
//   - f observes the original values only.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	buf := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			buf[base+j] = nv
		}
	}
	m.data = buf

	return nil
}
