package viz

import (
	"math"
	"strings"

	"github.com/san-kum/odelab/internal/chart"
)

// Braille patterns hold 2x4 dots per cell:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBlank = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid of Width x Height cells, i.e.
// 2*Width x 4*Height dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: max(w, 1), Height: max(h, 1)}
	c.Grid = make([][]rune, c.Height)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, c.Width)
	}
	c.Clear()
	return c
}

// Set turns on the dot at (x, y), with y growing downwards.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Trace draws the polyline through (xs[i], ys[i]) scaled into the ranges.
// Non-finite points break the line.
func (c *Canvas) Trace(xs, ys []float64, xr, yr chart.Range) {
	w, h := float64(2*c.Width-1), float64(4*c.Height-1)
	toDot := func(x, y float64) (int, int, bool) {
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return 0, 0, false
		}
		px := (x - xr.Min) / (xr.Max - xr.Min) * w
		py := h - (y-yr.Min)/(yr.Max-yr.Min)*h
		return int(math.Round(px)), int(math.Round(py)), true
	}

	n := min(len(xs), len(ys))
	px, py, ok := 0, 0, false
	for i := 0; i < n; i++ {
		x, y, fin := toDot(xs[i], ys[i])
		switch {
		case fin && ok:
			c.DrawLine(px, py, x, y)
		case fin:
			c.Set(x, y)
		}
		px, py, ok = x, y, fin
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
