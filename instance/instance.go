// Package instance loads TSP problem instances.
//
// An instance is either a list of cities in the plane (distances are then
// Euclidean, see geom.DistanceMatrix) or an explicit distance matrix for
// non-geometric or asymmetric problems. Files are YAML; JSON documents are
// accepted too since JSON is a subset of YAML.
//
//	name: depots
//	cities:
//	  - {name: base, x: 0, y: 0}
//	  - {x: 2, y: 3}
//
//	name: one-way streets
//	distances:
//	  - [0, 1, 9]
//	  - [9, 0, 1]
//	  - [1, 9, 0]
package instance

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heldkarp/geom"
	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

var (
	// ErrEmptyInstance is returned when neither cities nor distances are given.
	ErrEmptyInstance = errors.New("instance: no cities or distances")

	// ErrAmbiguousInstance is returned when both cities and distances are given.
	ErrAmbiguousInstance = errors.New("instance: both cities and distances given")

	// ErrBadPoint is returned when a command-line point is not "x,y".
	ErrBadPoint = errors.New("instance: malformed point")

	// ErrNoCoordinates is returned by Points for matrix-only instances.
	ErrNoCoordinates = errors.New("instance: instance has no coordinates")
)

// City is one named location.
type City struct {
	Name string  `yaml:"name,omitempty"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Instance is a problem definition as read from a file or the command line.
// Exactly one of Cities and Distances is set; city 0 is the tour origin.
type Instance struct {
	Name      string      `yaml:"name,omitempty"`
	Cities    []City      `yaml:"cities,omitempty"`
	Distances [][]float64 `yaml:"distances,omitempty"`
}

// Load reads and parses the instance file at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse decodes a YAML (or JSON) document and checks that it defines exactly
// one of cities or distances.
func Parse(data []byte) (*Instance, error) {
	var inst Instance
	if err := yaml.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}
	if err := inst.validate(); err != nil {
		return nil, err
	}

	return &inst, nil
}

// FromPoints builds an unnamed instance from raw points.
func FromPoints(points []geom.Point) (*Instance, error) {
	inst := &Instance{Cities: make([]City, len(points))}
	for i, p := range points {
		inst.Cities[i] = City{X: p.X, Y: p.Y}
	}
	if err := inst.validate(); err != nil {
		return nil, err
	}

	return inst, nil
}

// ParsePoint parses "x,y" (spaces around either number are ignored).
func ParsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("%w: %q, want x,y", ErrBadPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: %q: %w", ErrBadPoint, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: %q: %w", ErrBadPoint, s, err)
	}

	return geom.Point{X: x, Y: y}, nil
}

// ParsePoints parses every argument with ParsePoint.
func ParsePoints(args []string) ([]geom.Point, error) {
	pts := make([]geom.Point, 0, len(args))
	for _, a := range args {
		p, err := ParsePoint(a)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}

	return pts, nil
}

func (inst *Instance) validate() error {
	switch {
	case len(inst.Cities) == 0 && len(inst.Distances) == 0:
		return ErrEmptyInstance
	case len(inst.Cities) > 0 && len(inst.Distances) > 0:
		return ErrAmbiguousInstance
	}

	return nil
}

// Len returns the number of cities.
func (inst *Instance) Len() int {
	if len(inst.Cities) > 0 {
		return len(inst.Cities)
	}

	return len(inst.Distances)
}

// HasCoordinates reports whether the instance can be drawn.
func (inst *Instance) HasCoordinates() bool {
	return len(inst.Cities) > 0
}

// Points returns the city coordinates in index order.
func (inst *Instance) Points() ([]geom.Point, error) {
	if !inst.HasCoordinates() {
		return nil, ErrNoCoordinates
	}
	pts := make([]geom.Point, len(inst.Cities))
	for i, c := range inst.Cities {
		pts[i] = geom.Point{X: c.X, Y: c.Y}
	}

	return pts, nil
}

// Label returns the display name of city i: its name when set, else its index.
func (inst *Instance) Label(i int) string {
	if i >= 0 && i < len(inst.Cities) && inst.Cities[i].Name != "" {
		return inst.Cities[i].Name
	}

	return strconv.Itoa(i)
}

// Matrix returns the distance matrix: Euclidean for city lists, a copy of
// the explicit rows otherwise. Rows that do not form a square fail with
// tsp.ErrNonSquare; value checks are left to the solver.
func (inst *Instance) Matrix() (*matrix.Dense, error) {
	if inst.HasCoordinates() {
		pts, err := inst.Points()
		if err != nil {
			return nil, err
		}
		return geom.DistanceMatrix(pts)
	}
	if len(inst.Distances) == 0 {
		return nil, ErrEmptyInstance
	}

	n := len(inst.Distances)
	for i, row := range inst.Distances {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", tsp.ErrNonSquare, i, len(row), n)
		}
	}

	return matrix.NewDenseFromRows(inst.Distances)
}
