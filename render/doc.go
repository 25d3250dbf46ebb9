// Package render draws a solved tour over its cities.
//
// Two outputs are provided:
//
//   - PNG — a raster plot drawn with fogleman/gg: red city markers, index
//     labels, the semi-transparent blue tour path, a dashed grid with tick
//     values, a title and axis captions.
//   - DOT — a Graphviz digraph built with gographviz, with node positions
//     pinned to the city coordinates (render with `neato -n2` or `fdp`).
//
// Both take the raw points and the tour returned by tsp.HeldKarp; the tour
// is validated with tsp.ValidateTour before anything is drawn.
package render
