// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitmatrix/matrix"
)

// TestConstructors checks the thin constructor facades.
func TestConstructors(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	rows, cols := z.Shape()
	require.Equal(t, [2]int{2, 3}, [2]int{rows, cols})
	require.Zero(t, z.Count())

	o, err := matrix.NewOnes(2, 3)
	require.NoError(t, err)
	require.Equal(t, 6, o.Count())

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, "100\n010\n001\n", id.String())

	_, err = matrix.NewIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := matrix.FromRows(nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = matrix.FromRows([][]bool{{true, false}, {true}})
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

// TestCloneMatrix checks that the clone owns its storage.
func TestCloneMatrix(t *testing.T) {
	m := RandomMatrix(t, 5, 7, 11)
	c, err := matrix.CloneMatrix(m)
	require.NoError(t, err)
	require.True(t, c.Equal(m))

	require.NoError(t, c.Set(0, 0, !MustGet(t, m, 0, 0)))
	require.False(t, c.Equal(m))

	_, err = matrix.CloneMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNilArguments checks that nil arguments are reported as ErrNilMatrix
// while a nil receiver remains a programmer error.
func TestNilArguments(t *testing.T) {
	m := MustNew(t, 2, 2, false)
	_, err := m.And(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Or(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Not(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.False(t, m.Equal(nil))

	var nilM *matrix.BitMatrix
	require.Panics(t, func() { _, _ = nilM.Get(0, 0) })
}

// TestAlgebraAliases checks that the aliases agree with the canonical ops.
func TestAlgebraAliases(t *testing.T) {
	a := RandomMatrix(t, 4, 9, 1)
	b := RandomMatrix(t, 4, 9, 2)

	pairs := []struct {
		name        string
		alias, base func(x, y *matrix.BitMatrix) (*matrix.BitMatrix, error)
	}{
		{"Intersect", matrix.Intersect, matrix.And},
		{"Union", matrix.Union, matrix.Or},
		{"SymmetricDiff", matrix.SymmetricDiff, matrix.Xor},
	}
	for _, p := range pairs {
		got, err := p.alias(a, b)
		require.NoError(t, err, p.name)
		want, err := p.base(a, b)
		require.NoError(t, err, p.name)
		require.True(t, got.Equal(want), p.name)
	}

	tr, err := matrix.T(a)
	require.NoError(t, err)
	require.True(t, tr.Equal(a.Transpose()))
	_, err = matrix.T(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDoOnes checks that only set cells are visited, in row-major order,
// and that the walk stops early.
func TestDoOnes(t *testing.T) {
	m := MustNew(t, 3, 70, false)
	want := [][2]int{{0, 5}, {1, 0}, {1, 69}, {2, 64}}
	for _, c := range want {
		require.NoError(t, m.Set(c[0], c[1], true))
	}

	var got [][2]int
	m.DoOnes(func(i, j int) bool {
		got = append(got, [2]int{i, j})
		return true
	})
	require.Equal(t, want, got)

	visited := 0
	m.DoOnes(func(_, _ int) bool {
		visited++
		return visited < 2
	})
	require.Equal(t, 2, visited)

	MustNew(t, 0, 0, true).DoOnes(func(_, _ int) bool {
		t.Fatal("empty matrix has no cells")
		return false
	})
}
