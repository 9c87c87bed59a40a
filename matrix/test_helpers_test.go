// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by unit tests and benchmarks.
//   • Keep pseudo-random fills seeded so failures reproduce.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitmatrix/matrix"
)

// MustNew allocates a rows×cols matrix filled with def or fails the test.
func MustNew(tb testing.TB, rows, cols int, def bool) *matrix.BitMatrix {
	tb.Helper()
	m, err := matrix.New(rows, cols, def)
	require.NoError(tb, err)

	return m
}

// MustGet reads (i,j) or fails the test.
func MustGet(tb testing.TB, m *matrix.BitMatrix, i, j int) bool {
	tb.Helper()
	v, err := m.Get(i, j)
	require.NoError(tb, err)

	return v
}

// RandomMatrix returns a rows×cols matrix with roughly half the cells set,
// driven by a fixed seed.
func RandomMatrix(tb testing.TB, rows, cols int, seed int64) *matrix.BitMatrix {
	tb.Helper()
	m := MustNew(tb, rows, cols, false)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(tb, m.Set(i, j, rng.Intn(2) == 1))
		}
	}

	return m
}

// propertyShapes are the shapes exercised by law-style tests: empty shapes,
// vectors, squares and shapes that straddle 64-bit word boundaries.
var propertyShapes = []struct{ rows, cols int }{
	{0, 0}, {0, 5}, {5, 0}, {1, 1}, {1, 64}, {64, 1}, {2, 3}, {3, 2}, {8, 8}, {7, 13}, {9, 65},
}
