package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heldkarp/geom"
	"github.com/katalvlaran/heldkarp/tsp"
)

var (
	// ErrNoPoints is returned when there is nothing to draw.
	ErrNoPoints = errors.New("render: no points")

	// ErrInvalidTour is returned when the tour does not fit the points.
	ErrInvalidTour = errors.New("render: invalid tour")

	// ErrInvalidOptions is returned for negative sizes or a margin that
	// leaves no drawing area.
	ErrInvalidOptions = errors.New("render: invalid options")
)

// Options configures the rendered plot. Zero fields take DefaultOptions values.
type Options struct {
	Width  int // canvas width in pixels
	Height int // canvas height in pixels
	Margin int // padding around the plot area in pixels

	Title  string
	XLabel string
	YLabel string

	// GridTicks is the number of grid intervals per axis; 0 uses the default,
	// a negative value disables the grid.
	GridTicks int
}

// DefaultOptions returns a 1000×600 canvas with the standard captions.
func DefaultOptions() Options {
	return Options{
		Width:     1000,
		Height:    600,
		Margin:    70,
		Title:     "Optimal Traveling Salesman Tour",
		XLabel:    "X coordinate",
		YLabel:    "Y coordinate",
		GridTicks: 5,
	}
}

// normalize fills zero fields from DefaultOptions and rejects unusable sizes.
func (o Options) normalize() (Options, error) {
	def := DefaultOptions()
	if o.Width < 0 || o.Height < 0 || o.Margin < 0 {
		return Options{}, fmt.Errorf("%w: %dx%d margin %d", ErrInvalidOptions, o.Width, o.Height, o.Margin)
	}
	if o.Width == 0 {
		o.Width = def.Width
	}
	if o.Height == 0 {
		o.Height = def.Height
	}
	if o.Margin == 0 {
		o.Margin = def.Margin
	}
	if o.Title == "" {
		o.Title = def.Title
	}
	if o.XLabel == "" {
		o.XLabel = def.XLabel
	}
	if o.YLabel == "" {
		o.YLabel = def.YLabel
	}
	if o.GridTicks == 0 {
		o.GridTicks = def.GridTicks
	}
	if 2*o.Margin >= o.Width || 2*o.Margin >= o.Height {
		return Options{}, fmt.Errorf("%w: margin %d leaves no plot area in %dx%d", ErrInvalidOptions, o.Margin, o.Width, o.Height)
	}

	return o, nil
}

// checkInput validates points and the tour against them.
func checkInput(points []geom.Point, tour []int) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if err := tsp.ValidateTour(tour, len(points)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTour, err)
	}

	return nil
}

// viewport maps data coordinates into the plot area, y axis pointing up.
type viewport struct {
	lo, hi        geom.Point
	left, top     float64
	width, height float64
	spanX, spanY  float64
}

func newViewport(points []geom.Point, o Options) (viewport, error) {
	lo, hi, err := geom.Bounds(points)
	if err != nil {
		return viewport{}, err
	}
	// Pad degenerate extents so a single city or a straight line still
	// lands in the middle of the canvas.
	if hi.X == lo.X {
		lo.X, hi.X = lo.X-1, hi.X+1
	}
	if hi.Y == lo.Y {
		lo.Y, hi.Y = lo.Y-1, hi.Y+1
	}

	return viewport{
		lo:     lo,
		hi:     hi,
		left:   float64(o.Margin),
		top:    float64(o.Margin),
		width:  float64(o.Width - 2*o.Margin),
		height: float64(o.Height - 2*o.Margin),
		spanX:  hi.X - lo.X,
		spanY:  hi.Y - lo.Y,
	}, nil
}

// project returns the pixel position of p.
func (v viewport) project(p geom.Point) (float64, float64) {
	x := v.left + (p.X-v.lo.X)/v.spanX*v.width
	y := v.top + v.height - (p.Y-v.lo.Y)/v.spanY*v.height

	return x, y
}
