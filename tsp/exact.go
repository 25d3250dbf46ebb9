package tsp

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heldkarp/matrix"
)

// minParallelLayer is the smallest layer worth splitting across workers.
const minParallelLayer = 256

// cancelStride is how many subsets a worker fills between context checks.
const cancelStride = 1024

// Solve runs HeldKarp on a row-slice matrix with DefaultOptions.
// Ragged or empty input is rejected with ErrNonSquare / ErrEmptyMatrix.
func Solve(dist [][]float64) (Result, error) {
	if len(dist) == 0 {
		return Result{}, ErrEmptyMatrix
	}
	var (
		i int
		n = len(dist)
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return Result{}, ErrNonSquare
		}
	}
	m, err := matrix.NewDenseFromRows(dist)
	if err != nil {
		return Result{}, ErrNonSquare
	}

	return HeldKarp(m, DefaultOptions())
}

// HeldKarp solves the Travelling Salesman Problem exactly on dist using the
// Held–Karp dynamic-programming algorithm.
//
// dist(i, j) is the cost of going from city i to city j; the diagonal must
// be zero and every entry finite and non-negative. The matrix need not be
// symmetric unless opts.Symmetric is set.
//
// It returns a Result containing:
//   - Tour: n+1 city indices, starting and ending at 0.
//   - Cost: total cycle cost (rounded to 1e-9).
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func HeldKarp(dist matrix.Matrix, opts Options) (Result, error) {
	return HeldKarpContext(context.Background(), dist, opts)
}

// HeldKarpContext is HeldKarp with cancellation. ctx is checked between
// subset-size layers and periodically inside each worker; on cancellation
// the partial table is discarded and ctx.Err() is returned.
func HeldKarpContext(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	// --- 1. Validate options and input matrix ---
	opts, err := normalizeOptions(opts)
	if err != nil {
		return Result{}, err
	}
	n, w, err := validateDistMatrix(dist, opts.Symmetric, opts.MaxCities)
	if err != nil {
		return Result{}, err
	}

	// --- 2. Degenerate sizes ---
	if n == 1 {
		if opts.RejectSingleCity {
			return Result{}, ErrDegenerateInput
		}
		return Result{Tour: []int{0, 0}, Cost: 0}, nil
	}

	// --- 3. Base case and layers 2..n-1 ---
	t := newTable(n, w)
	t.seed()
	states := t.k

	var size int
	for size = 2; size <= t.k; size++ {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		masks := layer(t.k, size)
		if err = t.fillLayer(ctx, masks, opts.Workers); err != nil {
			return Result{}, err
		}
		states += len(masks) * size
	}

	// --- 4. Close the tour and walk predecessors back ---
	tour, cost := t.closeTour()

	return Result{Tour: tour, Cost: round1e9(cost), States: states}, nil
}

// table is the memo for one solver invocation. Entry (S, m) lives at
// index int(S)*k + (m-1) and holds the cheapest cost of leaving city 0,
// visiting exactly S and stopping at m, plus the city visited before m.
type table struct {
	n    int       // number of cities
	k    int       // n-1, bits per subset
	w    []float64 // flat distances, w[i*n+j]
	cost []float64
	pred []uint8
}

func newTable(n int, w []float64) *table {
	var (
		k    = n - 1
		size = (1 << k) * k
	)

	return &table{
		n:    n,
		k:    k,
		w:    w,
		cost: make([]float64, size),
		pred: make([]uint8, size),
	}
}

func (t *table) index(s subset, m int) int {
	return int(s)*t.k + m - 1
}

// seed writes the singleton entries ({i}, i) = (dist(0, i), pred 0).
func (t *table) seed() {
	var i int
	for i = 1; i < t.n; i++ {
		idx := t.index(single(i), i)
		t.cost[idx] = t.w[i]
		t.pred[idx] = 0
	}
}

// fillLayer computes every entry of the given equal-size subsets. With more
// than one worker the slice is split into contiguous chunks; each chunk
// writes only its own subsets' entries and reads only the previous layer,
// so the chunks share no mutable state.
func (t *table) fillLayer(ctx context.Context, masks []subset, workers int) error {
	if workers <= 1 || len(masks) < minParallelLayer {
		return t.fillRange(ctx, masks)
	}
	if workers > len(masks) {
		workers = len(masks)
	}

	g, gctx := errgroup.WithContext(ctx)
	var (
		chunk = (len(masks) + workers - 1) / workers
		lo    int
	)
	for lo = 0; lo < len(masks); lo += chunk {
		part := masks[lo:min(lo+chunk, len(masks))]
		g.Go(func() error {
			return t.fillRange(gctx, part)
		})
	}

	return g.Wait()
}

// fillRange applies the recurrence
//
//	cost(S, m) = min_{k ∈ S\{m}} cost(S\{m}, k) + dist(k, m)
//
// to every m of every S in masks. Ties keep the smallest k.
func (t *table) fillRange(ctx context.Context, masks []subset) error {
	var (
		s, prev  subset
		m, k     int
		best, c  float64
		bestK    int
		i, idx   int
		n, kbits = t.n, t.k
	)
	for i, s = range masks {
		if i%cancelStride == 0 && i > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for m = 1; m <= kbits; m++ {
			if !s.has(m) {
				continue
			}
			prev = s.without(m)
			best = math.Inf(1)
			bestK = -1
			for k = 1; k <= kbits; k++ {
				if !prev.has(k) {
					continue
				}
				c = t.cost[t.index(prev, k)] + t.w[k*n+m]
				if c < best {
					best = c
					bestK = k
				}
			}
			idx = t.index(s, m)
			t.cost[idx] = best
			t.pred[idx] = uint8(bestK)
		}
	}

	return nil
}

// closeTour picks the best last city of the full subset, adds the return edge to
// city 0 and rebuilds the tour from the predecessor table.
func (t *table) closeTour() ([]int, float64) {
	var (
		all   = full(t.k)
		best  = math.Inf(1)
		last  = -1
		m     int
		total float64
	)
	for m = 1; m <= t.k; m++ {
		total = t.cost[t.index(all, m)] + t.w[m*t.n]
		if total < best {
			best = total
			last = m
		}
	}

	tour := make([]int, t.n+1)
	var (
		s   = all
		j   = last
		pos int
	)
	for pos = t.n - 1; pos >= 1; pos-- {
		tour[pos] = j
		p := int(t.pred[t.index(s, j)])
		s = s.without(j)
		j = p
	}
	tour[0], tour[t.n] = 0, 0

	return tour, best
}
