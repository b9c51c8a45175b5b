// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 0}, {0, 5}, {5, 0}, {-1, 3}, {3, -7},
	} {
		m, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", tc.rows, tc.cols)
		require.Nil(t, m)
	}
}

// TestNewDenseCellCountOverflow rejects shapes whose rows*cols does not fit in int.
func TestNewDenseCellCountOverflow(t *testing.T) {
	half := math.MaxInt/2 + 1
	for _, tc := range []struct{ rows, cols int }{
		{half, 2}, {2, half}, {math.MaxInt, math.MaxInt}, {math.MaxInt, 2},
	} {
		var m *matrix.Dense
		var err error
		require.NotPanics(t, func() { m, err = matrix.NewDense(tc.rows, tc.cols) })
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", tc.rows, tc.cols)
		require.Nil(t, m)
	}
}

// TestNewDenseZeroFilled checks that every cell of a fresh matrix reads 0.
func TestNewDenseZeroFilled(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1}, {1, 7}, {7, 1}, {3, 3}, {4, 9},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			for _, v := range Cells(t, m) {
				require.Equal(t, 0.0, v)
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	m := matrix.NewDefault()
	r, c := m.Shape()
	require.Equal(t, 1, r)
	require.Equal(t, 1, c)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
	require.Equal(t, matrix.DefaultEpsilon, m.Epsilon())
}

func TestNewFromRows(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, Cells(t, m))

	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewFromRowsDoesNotAlias verifies that the literal is copied.
func TestNewFromRowsDoesNotAlias(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := FromRows(t, rows)
	rows[0][0] = 99

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 3)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {2, 3}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])

		err = m.Set(idx[0], idx[1], 1.23)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", idx[0], idx[1])
	}

	// No implicit resizing happened.
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

func TestSetNaNInfPolicy(t *testing.T) {
	guarded, err := matrix.NewDense(2, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)

	require.ErrorIs(t, guarded.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, guarded.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, guarded.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, guarded, 0, 0))

	// Default policy stores anything.
	plain := MustDense(t, 1, 1)
	require.NoError(t, plain.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, plain, 0, 0), 1))
}

// TestCopyIndependence ensures Copy()/Clone() return deep copies that do not share storage.
func TestCopyIndependence(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 0}, {0, 2}})

	cp := m.Copy()
	clone := m.Clone()

	MustSet(t, cp, 0, 0, 3)
	MustSet(t, clone, 1, 1, 4)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 2.0, MustAt(t, m, 1, 1))
	require.Equal(t, 3.0, MustAt(t, cp, 0, 0))
	require.Equal(t, 4.0, MustAt(t, clone, 1, 1))

	// Mutating the original leaves the copies alone too.
	MustSet(t, m, 0, 1, 5)
	require.Equal(t, 0.0, MustAt(t, cp, 0, 1))
}

func TestCopyKeepsPolicy(t *testing.T) {
	m, err := matrix.NewDense(1, 1, matrix.WithEpsilon(0.5), matrix.WithValidateNaNInf())
	require.NoError(t, err)

	want := matrix.PolicyOf_TestOnly(m)
	require.Equal(t, want, matrix.PolicyOf_TestOnly(m.Copy()))
	require.Equal(t, want, matrix.PolicyOf_TestOnly(m.Move()))
}

// TestMove verifies ownership transfer and the empty shell left behind.
func TestMove(t *testing.T) {
	src := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	dst := src.Move()
	require.Equal(t, []float64{1, 2, 3, 4}, Cells(t, dst))

	require.Equal(t, 0, src.Rows())
	require.Equal(t, 0, src.Cols())
	_, err := src.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, src.Set(0, 0, 1), matrix.ErrOutOfRange)
	require.Equal(t, "", src.String())

	// Operations that need a real matrix refuse the shell.
	_, err = src.Det()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = src.ToGonum()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// The shell can be revived by assignment.
	require.NoError(t, src.Assign(dst))
	require.Equal(t, []float64{1, 2, 3, 4}, Cells(t, src))
}

func TestAssign(t *testing.T) {
	dst := MustDense(t, 1, 1)
	src := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, dst.Assign(src))
	require.Equal(t, 2, dst.Rows())
	require.Equal(t, 3, dst.Cols())
	require.Equal(t, Cells(t, src), Cells(t, dst))

	// Deep copy: no aliasing after assignment.
	MustSet(t, src, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, dst, 0, 0))

	// Self-assignment is a no-op.
	require.NoError(t, dst.Assign(dst))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, Cells(t, dst))

	// Interface fallback path.
	other := MustDense(t, 1, 1)
	require.NoError(t, other.Assign(hide{src}))
	require.Equal(t, Cells(t, src), Cells(t, other))
}

// TestAssignAtomic verifies that a failing Assign leaves the receiver untouched.
func TestAssignAtomic(t *testing.T) {
	dst := FromRows(t, [][]float64{{7, 8}})
	before := Cells(t, dst)

	var nilDense *matrix.Dense
	require.ErrorIs(t, dst.Assign(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, dst.Assign(nilDense), matrix.ErrNilMatrix)

	src := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	err := dst.Assign(faulty{Matrix: src, badRow: 1, badCol: 1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	shell := FromRows(t, [][]float64{{1}})
	_ = shell.Move()
	require.ErrorIs(t, dst.Assign(shell), matrix.ErrInvalidDimensions)

	guarded, gerr := matrix.NewFromRows([][]float64{{7, 8}}, matrix.WithValidateNaNInf())
	require.NoError(t, gerr)
	require.ErrorIs(t, guarded.Assign(FromRows(t, [][]float64{{1, math.NaN()}})), matrix.ErrNaNInf)
	require.Equal(t, before, Cells(t, guarded))

	require.Equal(t, 1, dst.Rows())
	require.Equal(t, 2, dst.Cols())
	require.Equal(t, before, Cells(t, dst))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4.5}})

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestDoVisitsRowMajorAndStops(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return true
	})
	require.Equal(t, []float64{1, 2, 3, 4}, seen)

	count := 0
	m.Do(func(i, j int, v float64) bool {
		count++
		return v < 2
	})
	require.Equal(t, 2, count)
}

func TestApply(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v*10 + float64(i+j) }))
	require.Equal(t, []float64{10, 21, 31, 42}, Cells(t, m))

	guarded, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	err = guarded.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 1 {
			return math.Inf(1)
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	// All-or-nothing: nothing was overwritten.
	require.Equal(t, []float64{1, 2, 3, 4}, Cells(t, guarded))
}

func TestIdentityAndZerosLike(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, Cells(t, I))

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.ZerosLike(FromRows(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, Cells(t, z))

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	I2, err := matrix.IdentityLike(MustDense(t, 2, 2))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 1}, Cells(t, I2))

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	clone := matrix.CloneMatrix(I2)
	MustSet(t, clone, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, I2, 0, 0))
}
