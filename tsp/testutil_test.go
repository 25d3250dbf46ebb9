// Package tsp_test provides lightweight helpers shared across *_test.go files:
// deterministic instance generators, a tiny matrix.Matrix implementation that
// can represent malformed shapes, and an exhaustive reference solver.
package tsp_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/heldkarp/matrix"
)

const (
	// epsTiny is the tolerance for comparing solver costs with reference sums.
	epsTiny = 1e-9

	// seedDet is the deterministic seed for generated instances.
	seedDet = int64(42)
)

// testDense is a [][]float64-backed matrix.Matrix. Unlike matrix.Dense it
// may be non-square, which the validation tests rely on.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= len(m.a[i]) {
		return 0, matrix.ErrIndexOutOfBounds
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= len(m.a[i]) {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// euclid builds the symmetric Euclidean matrix for pts.
func euclid(pts [][2]float64) [][]float64 {
	var (
		n    = len(pts)
		d    = make([][]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		d[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				d[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			}
		}
	}

	return d
}

// randomPoints returns n points in [0,100)² from rng.
func randomPoints(rng *rand.Rand, n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}

	return pts
}

// randomAsym returns an n×n matrix with independent integer weights in [1,50].
func randomAsym(rng *rand.Rand, n int) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = float64(1 + rng.Intn(50))
			}
		}
	}

	return d
}

// cycleDist returns distances along a ring: dist(i,j)=min(|i-j|, n-|i-j|).
func cycleDist(n int) [][]float64 {
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist {
			d := math.Abs(float64(i - j))
			dist[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return dist
}

// bruteForce returns the minimum cyclic tour cost from 0 over every
// permutation of {1..n-1}.
func bruteForce(d [][]float64) float64 {
	n := len(d)
	if n == 1 {
		return 0
	}
	rest := make([]int, n-1)
	for i := range rest {
		rest[i] = i + 1
	}
	best := math.Inf(1)

	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			c := d[0][rest[0]]
			for i := 0; i+1 < len(rest); i++ {
				c += d[rest[i]][rest[i+1]]
			}
			c += d[rest[len(rest)-1]][0]
			if c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

// denseOf wraps rows into a matrix.Dense, panicking on malformed fixtures.
func denseOf(rows [][]float64) *matrix.Dense {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}
