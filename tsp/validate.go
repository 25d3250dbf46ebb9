// Package tsp - validation of options and distance matrices.
//
// Validation runs in stages before any DP table is allocated:
//  1. Options sanity (non-negative, within HardMaxCities).
//  2. Matrix shape (non-nil, non-empty, square, within MaxCities).
//  3. Entries (finite, non-negative, zero diagonal, optional symmetry).
//
// On success the matrix is copied into a flat row-major slice so the hot
// loop never goes through the interface or its error path.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// maxPathBound leaves headroom for rounding when path sums approach the
// float64 range.
const maxPathBound = math.MaxFloat64 / 4

// normalizeOptions validates opts and fills zero values with defaults.
//
// Complexity: O(1).
func normalizeOptions(opts Options) (Options, error) {
	if opts.Workers < 0 {
		return Options{}, fmt.Errorf("%w: workers=%d", ErrInvalidOptions, opts.Workers)
	}
	if opts.MaxCities < 0 || opts.MaxCities > HardMaxCities {
		return Options{}, fmt.Errorf("%w: max cities=%d, ceiling is %d", ErrInvalidOptions, opts.MaxCities, HardMaxCities)
	}
	if opts.Workers == 0 {
		opts.Workers = 1
	}
	if opts.MaxCities == 0 {
		opts.MaxCities = DefaultMaxCities
	}

	return opts, nil
}

// validateDistMatrix performs full matrix validation and returns the order n
// together with a flat copy w where w[i*n+j] == dist(i, j).
//
// Contract:
//   - dist non-nil, 1 ≤ n ≤ maxCities, square;
//   - every entry finite and ≥ 0, NaN anywhere is invalid;
//   - the sum of row maxima, an upper bound on any path, stays well below
//     MaxFloat64 so no partial tour overflows to +Inf;
//   - |dist(i,i)| ≤ symTol;
//   - if symmetric: |dist(i,j) − dist(j,i)| ≤ symTol.
//
// Complexity: O(n²) time and memory.
func validateDistMatrix(dist matrix.Matrix, symmetric bool, maxCities int) (int, []float64, error) {
	if dist == nil {
		return 0, nil, ErrEmptyMatrix
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr == 0 && nc == 0 {
		return 0, nil, ErrEmptyMatrix
	}
	if nr != nc || nr < 0 {
		return 0, nil, fmt.Errorf("%w: %d×%d", ErrNonSquare, nr, nc)
	}
	var n = nr
	if n > maxCities {
		return 0, nil, fmt.Errorf("%w: n=%d, limit %d", ErrTooManyCities, n, maxCities)
	}

	var (
		w      = make([]float64, n*n)
		i, j   int
		v      float64
		rowMax float64
		bound  float64
		err    error
	)
	for i = 0; i < n; i++ {
		rowMax = 0
		for j = 0; j < n; j++ {
			v, err = dist.At(i, j)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: read dist[%d][%d]: %w", ErrInvalidInput, i, j, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, nil, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNonFinite, i, j, v)
			}
			if v < 0 {
				return 0, nil, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNegativeWeight, i, j, v)
			}
			if i == j && v > symTol {
				return 0, nil, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNonZeroDiagonal, i, j, v)
			}
			w[i*n+j] = v
			rowMax = math.Max(rowMax, v)
		}
		bound += rowMax
	}
	if bound > maxPathBound {
		return 0, nil, fmt.Errorf("%w: tour length may overflow, sum of row maxima %v", ErrNonFinite, bound)
	}

	if symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(w[i*n+j]-w[j*n+i]) > symTol {
					return 0, nil, fmt.Errorf("%w: dist[%d][%d]=%v, dist[%d][%d]=%v",
						ErrAsymmetry, i, j, w[i*n+j], j, i, w[j*n+i])
				}
			}
		}
	}

	return n, w, nil
}
