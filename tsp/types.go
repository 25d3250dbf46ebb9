package tsp

import (
	"errors"
	"fmt"
)

const (
	// DefaultMaxCities is the instance size accepted by DefaultOptions.
	DefaultMaxCities = 20

	// HardMaxCities is the largest instance the table layout supports.
	HardMaxCities = 24

	// symTol is a structural tolerance for symmetry/diagonal checks.
	symTol = 1e-12
)

// ErrInvalidInput is the root of every input-validation failure.
// Match it with errors.Is to catch any of the more specific sentinels below.
var ErrInvalidInput = errors.New("tsp: invalid input")

var (
	// ErrEmptyMatrix is returned for a nil or 0×0 distance matrix.
	ErrEmptyMatrix = fmt.Errorf("%w: empty matrix", ErrInvalidInput)

	// ErrNonSquare is returned when rows and columns differ (or rows are ragged).
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidInput)

	// ErrNonZeroDiagonal is returned when some dist[i][i] != 0.
	ErrNonZeroDiagonal = fmt.Errorf("%w: diagonal not zero", ErrInvalidInput)

	// ErrNegativeWeight is returned for any negative distance.
	ErrNegativeWeight = fmt.Errorf("%w: negative distance", ErrInvalidInput)

	// ErrNonFinite is returned for NaN or ±Inf distances.
	ErrNonFinite = fmt.Errorf("%w: non-finite distance", ErrInvalidInput)

	// ErrAsymmetry is returned when Options.Symmetric is set and dist[i][j] != dist[j][i].
	ErrAsymmetry = fmt.Errorf("%w: matrix is not symmetric", ErrInvalidInput)

	// ErrTooManyCities is returned when n exceeds Options.MaxCities.
	ErrTooManyCities = fmt.Errorf("%w: too many cities", ErrInvalidInput)
)

var (
	// ErrDegenerateInput flags the single-city instance when
	// Options.RejectSingleCity is set. By default n == 1 is solved as [0 0].
	ErrDegenerateInput = errors.New("tsp: degenerate single-city instance")

	// ErrInvalidOptions is returned for negative or out-of-range Options fields.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrInvalidTour is returned by tour helpers for malformed tours.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// Result holds the outcome of the solver.
type Result struct {
	// Tour is the sequence of city indices, starting and ending at 0.
	// For n cities, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the total distance of the cycle, rounded to 1e-9.
	Cost float64

	// States is the number of (subset, last city) entries evaluated.
	States int
}

// Options configures HeldKarp.
//
// Fields:
//   - Workers          — goroutines per subset-size layer; ≤1 runs sequentially.
//   - MaxCities        — refuse larger instances with ErrTooManyCities (0 ⇒ DefaultMaxCities).
//   - Symmetric        — additionally require a symmetric matrix.
//   - RejectSingleCity — return ErrDegenerateInput for n == 1 instead of [0 0].
//
// Example:
//
//	opts := tsp.DefaultOptions()
//	opts.Workers = runtime.NumCPU()
//	res, err := tsp.HeldKarp(dist, opts)
type Options struct {
	Workers          int
	MaxCities        int
	Symmetric        bool
	RejectSingleCity bool
}

// DefaultOptions returns sequential, permissive options capped at DefaultMaxCities.
func DefaultOptions() Options {
	return Options{
		Workers:   1,
		MaxCities: DefaultMaxCities,
	}
}
