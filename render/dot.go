package render

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/heldkarp/geom"
)

// dotScale converts data units to Graphviz points for pinned positions.
const dotScale = 72.0

// DOT returns a Graphviz digraph of the tour. Each city becomes a node
// pinned at its coordinates and labelled with its index; each tour step
// becomes an edge labelled with its length.
func DOT(points []geom.Point, tour []int, opts Options) (string, error) {
	o, err := opts.normalize()
	if err != nil {
		return "", err
	}
	if err = checkInput(points, tour); err != nil {
		return "", err
	}

	graph := gographviz.NewGraph()
	if err = graph.SetName("tour"); err != nil {
		return "", err
	}
	if err = graph.SetDir(true); err != nil {
		return "", err
	}
	for _, attr := range [][2]string{
		{"label", strconv.Quote(o.Title)},
		{"labelloc", "t"},
		{"splines", "line"},
		{"overlap", "true"},
	} {
		if err = graph.AddAttr("tour", attr[0], attr[1]); err != nil {
			return "", fmt.Errorf("render: graph attr %s: %w", attr[0], err)
		}
	}

	for i, p := range points {
		if err = graph.AddNode("tour", nodeID(i), map[string]string{
			"label":     strconv.Quote(strconv.Itoa(i)),
			"tooltip":   strconv.Quote(p.String()),
			"pos":       strconv.Quote(fmt.Sprintf("%g,%g!", p.X*dotScale, p.Y*dotScale)),
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": "tomato2",
			"fontsize":  "12",
		}); err != nil {
			return "", fmt.Errorf("render: node %d: %w", i, err)
		}
	}

	var u, v int
	for i := 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u == v {
			continue
		}
		if err = graph.AddEdge(nodeID(u), nodeID(v), true, map[string]string{
			"label":    strconv.Quote(strconv.FormatFloat(geom.Distance(points[u], points[v]), 'f', 2, 64)),
			"color":    "steelblue2",
			"penwidth": "2",
		}); err != nil {
			return "", fmt.Errorf("render: edge %d→%d: %w", u, v, err)
		}
	}

	return graph.String(), nil
}

func nodeID(i int) string {
	return "c" + strconv.Itoa(i)
}
