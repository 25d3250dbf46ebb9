package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/heldkarp/matrix"
)

var (
	// ErrNoPoints is returned when an empty point set is supplied.
	ErrNoPoints = errors.New("geom: no points")

	// ErrNonFinitePoint is returned when a coordinate is NaN or ±Inf.
	ErrNonFinitePoint = errors.New("geom: non-finite coordinate")
)

// Point is a city location in the plane.
type Point struct {
	X, Y float64
}

// String formats p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// validatePoints rejects empty sets and non-finite coordinates.
func validatePoints(points []Point) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: point %d = %v", ErrNonFinitePoint, i, p)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DistanceMatrix returns the n×n Euclidean distance matrix for points.
// Only the upper triangle is computed; the lower one is mirrored so the
// result is exactly symmetric.
func DistanceMatrix(points []Point) (*matrix.Dense, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	var n = len(points)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Bounds returns the component-wise minimum and maximum of points.
func Bounds(points []Point) (lo, hi Point, err error) {
	if err = validatePoints(points); err != nil {
		return Point{}, Point{}, err
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}

	return lo, hi, nil
}
