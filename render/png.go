package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/heldkarp/geom"
)

const (
	cityRadius = 8.0
	pathWidth  = 2.0
	labelLift  = 12.0
)

// PNG draws the cities and the tour through them and writes the image as PNG.
func PNG(w io.Writer, points []geom.Point, tour []int, opts Options) error {
	dc, err := Plot(points, tour, opts)
	if err != nil {
		return err
	}
	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// SavePNG is PNG written to a file at path.
func SavePNG(path string, points []geom.Point, tour []int, opts Options) error {
	dc, err := Plot(points, tour, opts)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

// Plot draws the figure onto a fresh gg context, for callers that want to
// add to it or encode it themselves.
func Plot(points []geom.Point, tour []int, opts Options) (*gg.Context, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if err = checkInput(points, tour); err != nil {
		return nil, err
	}
	vp, err := newViewport(points, o)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(o.Width, o.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if o.GridTicks > 0 {
		drawGrid(dc, vp, o.GridTicks)
	}
	drawPath(dc, vp, points, tour)
	drawCities(dc, vp, points)
	drawCaptions(dc, o)

	return dc, nil
}

// drawGrid draws dashed grid lines with tick values along both axes.
func drawGrid(dc *gg.Context, vp viewport, ticks int) {
	var (
		i    int
		f    float64
		x, y float64
	)
	dc.SetRGBA(0, 0, 0, 0.25)
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for i = 0; i <= ticks; i++ {
		f = float64(i) / float64(ticks)

		x = vp.left + f*vp.width
		dc.DrawLine(x, vp.top, x, vp.top+vp.height)
		dc.Stroke()

		y = vp.top + vp.height - f*vp.height
		dc.DrawLine(vp.left, y, vp.left+vp.width, y)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetRGB(0.2, 0.2, 0.2)
	for i = 0; i <= ticks; i++ {
		f = float64(i) / float64(ticks)
		x = vp.left + f*vp.width
		dc.DrawStringAnchored(strconv.FormatFloat(vp.lo.X+f*vp.spanX, 'f', 1, 64), x, vp.top+vp.height+14, 0.5, 0.5)
		y = vp.top + vp.height - f*vp.height
		dc.DrawStringAnchored(strconv.FormatFloat(vp.lo.Y+f*vp.spanY, 'f', 1, 64), vp.left-8, y, 1, 0.5)
	}
}

// drawPath strokes the tour in visiting order.
func drawPath(dc *gg.Context, vp viewport, points []geom.Point, tour []int) {
	dc.SetRGBA(0, 0, 1, 0.6)
	dc.SetLineWidth(pathWidth)
	for i, city := range tour {
		x, y := vp.project(points[city])
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.Stroke()
}

// drawCities fills a red marker at every city with its index above it.
func drawCities(dc *gg.Context, vp viewport, points []geom.Point) {
	for i, p := range points {
		x, y := vp.project(p)
		dc.SetRGB(0.85, 0.1, 0.1)
		dc.DrawCircle(x, y, cityRadius)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(strconv.Itoa(i), x, y-cityRadius-labelLift, 0.5, 0.5)
	}
}

// drawCaptions writes the title and the axis labels.
func drawCaptions(dc *gg.Context, o Options) {
	var (
		w = float64(o.Width)
		h = float64(o.Height)
		m = float64(o.Margin)
	)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(o.Title, w/2, m/2, 0.5, 0.5)
	dc.DrawStringAnchored(o.XLabel, w/2, h-m/3, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), m/4, h/2)
	dc.DrawStringAnchored(o.YLabel, m/4, h/2, 0.5, 0.5)
	dc.Pop()
}
