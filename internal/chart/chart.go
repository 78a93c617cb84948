package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/guptarohit/asciigraph"
)

var (
	ErrNoSeries = errors.New("chart: no series to draw")
	ErrFormat   = errors.New("chart: unsupported output format")
)

// Series is one line of a chart. X and Y must have equal length.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Len returns the number of points of the series.
func (s Series) Len() int { return len(s.Y) }

// Head returns the series truncated to its first n points.
func (s Series) Head(n int) Series {
	if n > len(s.Y) {
		n = len(s.Y)
	}
	if n < 0 {
		n = 0
	}
	return Series{Label: s.Label, X: s.X[:n], Y: s.Y[:n]}
}

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// Chart is a titled set of line series sharing one pair of axes.
// A nil XRange or YRange is computed from the data.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
	XRange *Range
	YRange *Range
}

// New returns a chart with a time axis.
func New(title string, series ...Series) *Chart {
	return &Chart{Title: title, XLabel: "t", Series: series}
}

// Validate reports whether the chart can be drawn.
func (c *Chart) Validate() error {
	if c == nil || len(c.Series) == 0 {
		return ErrNoSeries
	}
	for _, s := range c.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("chart: series %q has %d x values and %d y values", s.Label, len(s.X), len(s.Y))
		}
	}
	return nil
}

// Bounds returns the axis ranges of the chart. Computed ranges always
// contain zero, and a range of zero width is widened to [min, min+1].
func (c *Chart) Bounds() (x, y Range) {
	if c.XRange != nil {
		x = *c.XRange
	} else {
		x = span(c.Series, func(s Series) []float64 { return s.X })
	}
	if c.YRange != nil {
		y = *c.YRange
	} else {
		y = span(c.Series, func(s Series) []float64 { return s.Y })
	}
	return x, y
}

// Fix pins both axis ranges to the current data bounds, so later
// truncation of the series does not rescale the chart.
func (c *Chart) Fix() {
	x, y := c.Bounds()
	c.XRange, c.YRange = &x, &y
}

func span(series []Series, pick func(Series) []float64) Range {
	var r Range
	for _, s := range series {
		for _, v := range pick(s) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			r.Min = math.Min(r.Min, v)
			r.Max = math.Max(r.Max, v)
		}
	}
	if r.Max == r.Min {
		r.Max = r.Min + 1
	}
	return r
}

// palette holds the series colours; series i uses palette[i%6].
var palette = [...]struct {
	rgb  color.RGBA
	hex  string
	ansi asciigraph.AnsiColor
}{
	{color.RGBA{R: 255, A: 255}, "#ff0000", asciigraph.Red},
	{color.RGBA{G: 255, A: 255}, "#00ff00", asciigraph.Green},
	{color.RGBA{B: 255, A: 255}, "#0000ff", asciigraph.Blue},
	{color.RGBA{R: 255, G: 255, A: 255}, "#ffff00", asciigraph.Yellow},
	{color.RGBA{G: 255, B: 255, A: 255}, "#00ffff", asciigraph.Cyan},
	{color.RGBA{R: 255, B: 255, A: 255}, "#ff00ff", asciigraph.Magenta},
}

// Color returns the colour of the i-th series.
func Color(i int) color.RGBA {
	return palette[i%len(palette)].rgb
}

func hexColor(i int) string {
	return palette[i%len(palette)].hex
}

func ansiColor(i int) asciigraph.AnsiColor {
	return palette[i%len(palette)].ansi
}
