// Package heldkarp is an exact Travelling Salesman toolkit for small
// instances: from raw coordinates to an optimal, rendered round trip.
//
// What is inside?
//
//	matrix/   — Matrix interface and row-major Dense storage
//	tsp/      — Held–Karp solver (bitmask subset DP), tour validation and cost
//	geom/     — planar points and Euclidean distance matrices
//	render/   — PNG plots (fogleman/gg) and Graphviz DOT (gographviz)
//	instance/ — YAML/JSON instance files and x,y point parsing
//	cmd/      — the heldkarp command-line driver
//
// Quick example:
//
//	    0───1
//	    │   │
//	    3───2
//
// the unit square has the perimeter as its optimal tour, cost 4:
//
//	res, _ := tsp.Solve(dist) // res.Tour == [0 3 2 1 0], res.Cost == 4
//
// The solver is exponential (O(n²·2ⁿ) time, O(n·2ⁿ) memory) and is meant for
// a couple of dozen cities at most.
//
//	go install github.com/katalvlaran/heldkarp/cmd/heldkarp@latest
package heldkarp
