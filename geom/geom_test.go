package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/geom"
	"github.com/katalvlaran/heldkarp/tsp"
)

func TestDistance(t *testing.T) {
	require.Equal(t, 5.0, geom.Distance(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4}))
	require.Equal(t, 0.0, geom.Distance(geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: 1}))
}

func TestDistanceMatrix(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 6, Y: 0}}
	m, err := geom.DistanceMatrix(pts)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	for i := range pts {
		for j := range pts {
			v, err := m.At(i, j)
			require.NoError(t, err)
			w, _ := m.At(j, i)
			require.Equal(t, v, w, "symmetric at (%d,%d)", i, j)
			if i == j {
				require.Zero(t, v)
			}
		}
	}
	v, _ := m.At(0, 1)
	require.Equal(t, 5.0, v)
	v, _ = m.At(0, 2)
	require.Equal(t, 6.0, v)
}

func TestDistanceMatrix_Errors(t *testing.T) {
	_, err := geom.DistanceMatrix(nil)
	require.ErrorIs(t, err, geom.ErrNoPoints)

	_, err = geom.DistanceMatrix([]geom.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}})
	require.ErrorIs(t, err, geom.ErrNonFinitePoint)

	_, err = geom.DistanceMatrix([]geom.Point{{X: math.Inf(1), Y: 0}})
	require.ErrorIs(t, err, geom.ErrNonFinitePoint)
}

func TestDistanceMatrix_FeedsSolver(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	m, err := geom.DistanceMatrix(pts)
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.Symmetric = true
	res, err := tsp.HeldKarp(m, opts)
	require.NoError(t, err)
	require.InDelta(t, 4.0, res.Cost, 1e-9)
	require.True(t, tsp.EqualCycles([]int{0, 1, 2, 3, 0}, res.Tour))
}

func TestBounds(t *testing.T) {
	lo, hi, err := geom.Bounds([]geom.Point{{X: 2, Y: 3}, {X: -1, Y: 5}, {X: 4, Y: -2}})
	require.NoError(t, err)
	require.Equal(t, geom.Point{X: -1, Y: -2}, lo)
	require.Equal(t, geom.Point{X: 4, Y: 5}, hi)

	_, _, err = geom.Bounds(nil)
	require.ErrorIs(t, err, geom.ErrNoPoints)
}

func TestPointString(t *testing.T) {
	require.Equal(t, "(2, 3.5)", geom.Point{X: 2, Y: 3.5}.String())
}
