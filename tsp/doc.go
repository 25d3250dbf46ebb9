// Package tsp solves the Travelling Salesman Problem exactly with the
// Held–Karp dynamic-programming algorithm.
//
// The solver works on a distance matrix (matrix.Matrix or [][]float64):
//
//   - HeldKarp / HeldKarpContext — exact bitmask subset DP.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ)
//
//   - Asymmetric matrices are accepted; Options.Symmetric enforces symmetry.
//
//   - Solve — convenience wrapper over [][]float64 with DefaultOptions.
//
// The tour always starts and ends at city 0. For n cities the result holds
// n+1 indices, e.g. [0 2 3 1 0]. A single city yields [0 0] with cost 0.
//
// Subsets of {1..n-1} are encoded as uint32 bitmasks (bit i-1 ⇔ city i) and
// the table stores, per (subset, last city), the best cost and the
// predecessor city; the tour is rebuilt by walking predecessors backwards.
// Subsets are processed in strictly increasing size, so every entry only
// reads entries of the previous layer. Entries within one layer are
// independent, which is what Options.Workers parallelises.
//
// The table holds 2ⁿ⁻¹·(n-1) entries of 9 bytes each, a hard scaling limit:
//
//	n=12 → ~22 K entries     n=16 → ~491 K entries
//	n=20 → ~10 M entries     n=24 → ~193 M entries (~1.7 GB)
//
// DefaultMaxCities guards against accidental huge allocations;
// HardMaxCities is the absolute ceiling.
//
// Input errors are reported through sentinels that all wrap ErrInvalidInput
// and are detected before any table is allocated.
package tsp
