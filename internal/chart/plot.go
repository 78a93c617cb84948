package chart

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// 1024x768 pixels at the default 96 dpi of the image backends.
const (
	defaultWidth  = 1024 * vg.Inch / 96
	defaultHeight = 768 * vg.Inch / 96
)

// PlotRenderer draws charts with gonum/plot. Format is any format
// accepted by plot.WriterTo ("png", "svg", "pdf", "eps", "jpg", "tiff").
type PlotRenderer struct {
	Format string
	Width  vg.Length
	Height vg.Length
}

func (r PlotRenderer) Render(w io.Writer, c *Chart) error {
	p, err := newPlot(c)
	if err != nil {
		return err
	}
	width, height := r.size()
	wt, err := p.WriterTo(width, height, r.Format)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrFormat, r.Format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write %s: %w", r.Format, err)
	}
	return nil
}

func (r PlotRenderer) size() (vg.Length, vg.Length) {
	width, height := r.Width, r.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func newPlot(c *Chart) (*plot.Plot, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range c.Series {
		pts := points(s)
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: series %q: %w", s.Label, err)
		}
		line.LineStyle.Color = Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}

	// Add widens the axes to the data; pin them afterwards.
	x, y := c.Bounds()
	p.X.Min, p.X.Max = x.Min, x.Max
	p.Y.Min, p.Y.Max = y.Min, y.Max
	return p, nil
}

// points drops samples that plotter rejects (NaN and Inf).
func points(s Series) plotter.XYs {
	pts := make(plotter.XYs, 0, len(s.Y))
	for i := range s.Y {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}
