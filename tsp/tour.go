// Package tsp — tour utilities.
//
// Helpers operating purely on tour structure (index sequences):
//   - ValidateTour: Hamiltonian cycle invariants for a tour closed at city 0.
//   - ReverseTour: the same cycle travelled in the opposite direction.
//   - CanonicalizeOrientationInPlace: unique direction for a fixed start.
//   - EqualCycles: equality up to rotation and reflection.
package tsp

import "fmt"

// ValidateTour enforces the invariants of a solver tour:
//
//	len(tour) == n+1, tour[0]==tour[n]==0,
//	each city v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidTour, n)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n+1)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return fmt.Errorf("%w: must start and end at 0, got %d…%d", ErrInvalidTour, tour[0], tour[n])
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: city %d at position %d outside [0,%d)", ErrInvalidTour, v, i, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d visited twice", ErrInvalidTour, v)
		}
		seen[v] = true
	}

	return nil
}

// ReverseTour returns a fresh copy of tour in reverse order. For a closed
// tour this is the same cycle in the opposite direction.
//
// Complexity: O(n).
func ReverseTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	var (
		n   = len(tour)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = tour[n-1-i]
	}

	return out
}

// CanonicalizeOrientationInPlace fixes the tour direction under a fixed start:
// if tour[1] > tour[n-1] the interior segment [1..n-1] is reversed in place.
//
// Requirements: len(tour) ≥ 3 and tour[0]==tour[len-1].
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return fmt.Errorf("%w: length %d", ErrInvalidTour, len(tour))
	}
	var n = len(tour) - 1
	if tour[0] != tour[n] {
		return fmt.Errorf("%w: not closed", ErrInvalidTour)
	}
	if tour[1] <= tour[n-1] {
		return nil
	}
	var i, k = 1, n - 1
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}

// EqualCycles reports whether two closed tours describe the same cycle,
// allowing any rotation and either direction.
//
// Complexity: O(n).
func EqualCycles(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var n = len(a) - 1
	if a[0] != a[n] || b[0] != b[n] {
		return false
	}

	// Locate a[0] in b's cycle.
	var (
		p = -1
		j int
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var (
		forward  = true
		backward = true
		i        int
	)
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}
