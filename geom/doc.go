// Package geom builds TSP distance matrices from planar coordinates.
//
// A city is a Point in the plane; DistanceMatrix returns the symmetric
// Euclidean matrix (zero diagonal) consumed by tsp.HeldKarp, and Bounds
// returns the bounding box used to scale renderings.
//
//	pts := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}
//	d, _ := geom.DistanceMatrix(pts) // d.At(0, 1) == 5
//
// Complexity: DistanceMatrix is O(n²) time and memory.
package geom
