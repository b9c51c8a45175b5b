// SPDX-License-Identifier: MIT
// Package matrix - dynamic resizing of a Dense.

package matrix

import "fmt"

// Resize changes the receiver's shape to rows×cols.
// MAIN DESCRIPTION:
//   - Keep the overlapping top-left rectangle, zero-fill every new cell.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the new buffer and copy min(r,rows) row prefixes of length min(c,cols).
//   - Stage 3: swap shape and buffer in one step.
//
// Behavior highlights:
//   - All-or-nothing: on error the receiver is unchanged.
//   - Resizing to the current shape still reallocates; the old buffer is dropped.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Resize(rows, cols int) error {
	if err := validateDims(rows, cols); err != nil {
		return matrixErrorf(opResize, fmt.Errorf("(%d,%d): %w", rows, cols, err))
	}

	buf := make([]float64, rows*cols)
	keepR, keepC := min(m.r, rows), min(m.c, cols)
	for i := 0; i < keepR; i++ {
		copy(buf[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// SetRows resizes the row count, keeping the column count.
func (m *Dense) SetRows(rows int) error { return m.Resize(rows, m.c) }

// SetCols resizes the column count, keeping the row count.
func (m *Dense) SetCols(cols int) error { return m.Resize(m.r, cols) }
