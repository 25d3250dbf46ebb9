// Package tsp — cost utilities.
//
// TourCost sums a closed tour against a distance matrix with the same
// strictness as the solver's validation: out-of-range indices, NaN/±Inf and
// negative weights are rejected with the package sentinels. The total is
// rounded to 1e-9 so solver and checker agree bit-for-bit on equal tours.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the total cost of the cycle tour[0]→tour[1]→…→tour[len-1].
//
// Contract:
//   - dist must be square (n×n) and non-nil.
//   - tour must have at least two entries, each within [0..n-1].
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrEmptyMatrix
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: length %d", ErrInvalidTour, len(tour))
	}
	var n = dist.Rows()
	if n != dist.Cols() {
		return 0, ErrNonSquare
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("%w: step %d (%d→%d) outside [0,%d)", ErrInvalidTour, i, u, v, n)
		}
		w, err = dist.At(u, v)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNonFinite, u, v, w)
		}
		if w < 0 {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNegativeWeight, u, v, w)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. Values too large
// to scale are returned unchanged; their ulp already exceeds 1e-9.
func round1e9(x float64) float64 {
	scaled := x * roundScale
	if math.IsInf(scaled, 0) {
		return x
	}

	return math.Round(scaled) / roundScale
}
