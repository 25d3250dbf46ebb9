// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage used for TSP distance matrices.
//
// The package exposes:
//
//   - Matrix — a minimal two-dimensional float64 interface (Rows, Cols, At,
//     Set, Clone) that solvers read from.
//   - Dense — a row-major implementation backed by a single flat slice.
//   - NewDenseFromRows — builds a Dense from [][]float64, rejecting ragged input.
//
// All index errors are reported through the sentinels in errors.go; public
// indexers never panic on user input.
package matrix
