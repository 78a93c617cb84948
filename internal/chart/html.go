package chart

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTMLRenderer writes a self-contained interactive ECharts page.
type HTMLRenderer struct {
	Width  string
	Height string
	Theme  string
}

func (r HTMLRenderer) Render(w io.Writer, c *Chart) error {
	if err := c.Validate(); err != nil {
		return err
	}
	x, y := c.Bounds()

	width, height, theme := r.Width, r.Height, r.Theme
	if width == "" {
		width = "1024px"
	}
	if height == "" {
		height = "768px"
	}
	if theme == "" {
		theme = types.ThemeWesteros
	}

	colors := make(opts.Colors, len(c.Series))
	for i := range colors {
		colors[i] = hexColor(i)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     width,
			Height:    height,
			Theme:     theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: c.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: c.XLabel,
			Min:  x.Min,
			Max:  x.Max,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: c.YLabel,
			Min:  y.Min,
			Max:  y.Max,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
		charts.WithColorsOpts(colors),
	)

	for _, s := range c.Series {
		line.AddSeries(s.Label, lineData(s),
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(false),
			}),
		)
	}
	return line.Render(w)
}

// lineData pairs x with y. Non-finite samples become gaps ("-"), since
// JSON has no encoding for them.
func lineData(s Series) []opts.LineData {
	data := make([]opts.LineData, len(s.Y))
	for i := range s.Y {
		if math.IsNaN(s.Y[i]) || math.IsInf(s.Y[i], 0) {
			data[i] = opts.LineData{Value: []interface{}{s.X[i], "-"}}
			continue
		}
		data[i] = opts.LineData{Value: []float64{s.X[i], s.Y[i]}}
	}
	return data
}
