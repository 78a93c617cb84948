package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
)

// ASCIIRenderer draws a chart for the terminal. Series are resampled to
// Width columns; the x values are not used.
type ASCIIRenderer struct {
	Width  int
	Height int
	// Color enables ANSI colours for the series and legend.
	Color bool
}

func (r ASCIIRenderer) Render(w io.Writer, c *Chart) error {
	s, err := r.String(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// String returns the rendered chart.
func (r ASCIIRenderer) String(c *Chart) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	data := make([][]float64, 0, len(c.Series))
	legends := make([]string, 0, len(c.Series))
	colors := make([]asciigraph.AnsiColor, 0, len(c.Series))
	for i, s := range c.Series {
		if s.Len() == 0 {
			continue
		}
		data = append(data, dropInf(s.Y))
		legends = append(legends, s.Label)
		colors = append(colors, ansiColor(i))
	}
	if len(data) == 0 {
		return "", ErrNoSeries
	}

	width, height := r.Width, r.Height
	if width <= 0 {
		width = 70
	}
	if height <= 0 {
		height = 15
	}
	_, y := c.Bounds()

	options := []asciigraph.Option{
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(y.Min),
		asciigraph.UpperBound(y.Max),
		asciigraph.Caption(c.Title),
		asciigraph.SeriesLegends(legends...),
	}
	if r.Color {
		options = append(options, asciigraph.SeriesColors(colors...))
	}
	return asciigraph.PlotMany(data, options...), nil
}

// dropInf replaces infinities with NaN, which asciigraph leaves blank.
func dropInf(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if math.IsInf(x, 0) {
			x = math.NaN()
		}
		out[i] = x
	}
	return out
}
