package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/tsp"
)

func TestHeldKarp_RejectsInvalidMatrices(t *testing.T) {
	cases := []struct {
		name string
		dist [][]float64
		want error
	}{
		{"non-square", [][]float64{{0, 1}, {1, 0}, {2, 3}}, tsp.ErrNonSquare},
		{"negative", [][]float64{{0, -1}, {1, 0}}, tsp.ErrNegativeWeight},
		{"NaN", [][]float64{{0, math.NaN()}, {1, 0}}, tsp.ErrNonFinite},
		{"+Inf", [][]float64{{0, 1}, {math.Inf(1), 0}}, tsp.ErrNonFinite},
		{"-Inf", [][]float64{{0, math.Inf(-1)}, {1, 0}}, tsp.ErrNonFinite},
		{"diagonal", [][]float64{{0, 1}, {1, 0.5}}, tsp.ErrNonZeroDiagonal},
		{"empty", [][]float64{}, tsp.ErrEmptyMatrix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tsp.HeldKarp(testDense{a: tc.dist}, tsp.DefaultOptions())
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, tsp.ErrInvalidInput)
			require.Empty(t, res.Tour, "no partial output on invalid input")
		})
	}
}

func TestSolve_RejectsInvalidRows(t *testing.T) {
	_, err := tsp.Solve(nil)
	require.ErrorIs(t, err, tsp.ErrEmptyMatrix)

	_, err = tsp.Solve([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	_, err = tsp.Solve([][]float64{{0, 1}})
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	_, err = tsp.Solve([][]float64{{}})
	require.ErrorIs(t, err, tsp.ErrInvalidInput)

	_, err = tsp.Solve([][]float64{{0, 3}, {-2, 0}})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}

func TestHeldKarp_NilMatrix(t *testing.T) {
	_, err := tsp.HeldKarp(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrEmptyMatrix)
}

func TestHeldKarp_TooManyCities(t *testing.T) {
	n := tsp.DefaultMaxCities + 1
	_, err := tsp.Solve(cycleDist(n))
	require.ErrorIs(t, err, tsp.ErrTooManyCities)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)

	opts := tsp.DefaultOptions()
	opts.MaxCities = 5
	_, err = tsp.HeldKarp(denseOf(cycleDist(6)), opts)
	require.ErrorIs(t, err, tsp.ErrTooManyCities)
}

func TestHeldKarp_SymmetricOption(t *testing.T) {
	asym := [][]float64{{0, 1, 2}, {3, 0, 1}, {2, 1, 0}}
	opts := tsp.DefaultOptions()
	opts.Symmetric = true

	_, err := tsp.HeldKarp(denseOf(asym), opts)
	require.ErrorIs(t, err, tsp.ErrAsymmetry)

	_, err = tsp.HeldKarp(denseOf(cycleDist(5)), opts)
	require.NoError(t, err)
}

func TestHeldKarp_InvalidOptions(t *testing.T) {
	dist := denseOf(cycleDist(4))

	_, err := tsp.HeldKarp(dist, tsp.Options{Workers: -1})
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	_, err = tsp.HeldKarp(dist, tsp.Options{MaxCities: tsp.HardMaxCities + 1})
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	// Zero values fall back to defaults.
	res, err := tsp.HeldKarp(dist, tsp.Options{})
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Cost)
}

func TestHeldKarp_RejectsOverflowingTourLength(t *testing.T) {
	big := math.MaxFloat64 / 2
	for n := 2; n <= 4; n++ {
		dist := make([][]float64, n)
		for i := range dist {
			dist[i] = make([]float64, n)
			for j := range dist[i] {
				if i != j {
					dist[i][j] = big
				}
			}
		}
		res, err := tsp.Solve(dist)
		require.ErrorIs(t, err, tsp.ErrNonFinite, "n=%d", n)
		require.ErrorIs(t, err, tsp.ErrInvalidInput)
		require.Empty(t, res.Tour)
	}

	// Large but summable entries still solve.
	res, err := tsp.Solve([][]float64{{0, 1e300}, {1e300, 0}})
	require.NoError(t, err)
	require.Equal(t, 2e300, res.Cost)
}
