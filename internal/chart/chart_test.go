package chart

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sample() *Chart {
	return &Chart{
		Title:  "logistic",
		XLabel: "t",
		YLabel: "N",
		Series: []Series{
			{Label: "a", X: []float64{1, 2, 3, 4}, Y: []float64{5, 6, 7, 8}},
			{Label: "b", X: []float64{1, 2, 3, 4}, Y: []float64{-1, 2, math.NaN(), 3}},
		},
	}
}

func TestBoundsIncludeZero(t *testing.T) {
	x, y := sample().Bounds()
	if x.Min != 0 || x.Max != 4 {
		t.Errorf("x range = %+v, want [0, 4]", x)
	}
	if y.Min != -1 || y.Max != 8 {
		t.Errorf("y range = %+v, want [-1, 8]", y)
	}

	c := &Chart{Series: []Series{{X: []float64{3, 3}, Y: []float64{0, 0}}}}
	_, y = c.Bounds()
	if y.Min != 0 || y.Max != 1 {
		t.Errorf("degenerate y range = %+v, want [0, 1]", y)
	}
}

func TestBoundsExplicitRange(t *testing.T) {
	c := sample()
	c.YRange = &Range{Min: -50, Max: 50}
	_, y := c.Bounds()
	if y.Min != -50 || y.Max != 50 {
		t.Errorf("y range = %+v, want [-50, 50]", y)
	}
}

func TestPaletteRotates(t *testing.T) {
	for i := 0; i < 6; i++ {
		if Color(i) != Color(i+6) {
			t.Errorf("Color(%d) != Color(%d)", i, i+6)
		}
		for j := i + 1; j < 6; j++ {
			if Color(i) == Color(j) {
				t.Errorf("Color(%d) == Color(%d)", i, j)
			}
		}
	}
	if c := Color(0); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("first colour = %v, want red", c)
	}
}

func TestValidate(t *testing.T) {
	if err := (&Chart{}).Validate(); !errors.Is(err, ErrNoSeries) {
		t.Errorf("empty chart error = %v, want ErrNoSeries", err)
	}
	bad := &Chart{Series: []Series{{X: []float64{1}, Y: []float64{1, 2}}}}
	if err := bad.Validate(); err == nil {
		t.Error("mismatched series accepted")
	}
}

func TestReveal(t *testing.T) {
	tests := []struct {
		stride int
		frames int
		sizes  []int
	}{
		{1, 4, []int{1, 2, 3, 4}},
		{2, 3, []int{1, 3, 4}},
		{10, 2, []int{1, 4}},
		{0, 4, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		a, err := Reveal(sample(), tt.stride)
		if err != nil {
			t.Fatalf("Reveal(%d) error = %v", tt.stride, err)
		}
		if a.Len() != tt.frames {
			t.Fatalf("Reveal(%d) frames = %d, want %d", tt.stride, a.Len(), tt.frames)
		}
		for i, f := range a.Frames {
			if got := f.Series[0].Len(); got != tt.sizes[i] {
				t.Errorf("Reveal(%d) frame %d has %d samples, want %d", tt.stride, i, got, tt.sizes[i])
			}
			if f.YRange == nil || f.YRange.Max != 8 {
				t.Errorf("Reveal(%d) frame %d y range not fixed: %+v", tt.stride, i, f.YRange)
			}
		}
	}
}

func TestPhase(t *testing.T) {
	a := Series{Label: "prey", X: []float64{0, 1}, Y: []float64{10, 20}}
	b := Series{Label: "predator", X: []float64{0, 1}, Y: []float64{3, 4}}
	c, err := Phase("lv", a, b)
	if err != nil {
		t.Fatalf("Phase error = %v", err)
	}
	if c.XLabel != "prey" || c.YLabel != "predator" {
		t.Errorf("labels = %q, %q", c.XLabel, c.YLabel)
	}
	if c.Series[0].X[1] != 20 || c.Series[0].Y[1] != 4 {
		t.Errorf("phase series = %+v", c.Series[0])
	}

	if _, err := Phase("bad", a, b.Head(1)); err == nil {
		t.Error("Phase accepted series of different length")
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		want string
	}{
		{"out.png", "\x89PNG"},
		{"out.svg", "<svg"},
		{"nested/out.html", "echarts"},
		{"out.txt", "logistic"},
		{"out.gif", "GIF89a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := RenderFile(path, sample()); err != nil {
				t.Fatalf("RenderFile error = %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Contains(data, []byte(tt.want)) {
				t.Errorf("%s does not contain %q", tt.name, tt.want)
			}
		})
	}
}

func TestRenderFileUnknownFormat(t *testing.T) {
	err := RenderFile(filepath.Join(t.TempDir(), "out.bmp"), sample())
	if !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestRenderAnimationFile(t *testing.T) {
	a, err := Reveal(sample(), 2)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "reveal.gif")
	if err := RenderAnimationFile(path, a); err != nil {
		t.Fatalf("RenderAnimationFile error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("gif not written: %v", err)
	}

	if err := RenderAnimationFile(filepath.Join(t.TempDir(), "x.png"), a); !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestASCIIRenderer(t *testing.T) {
	s, err := ASCIIRenderer{Width: 30, Height: 6}.String(sample())
	if err != nil {
		t.Fatalf("String error = %v", err)
	}
	if !strings.Contains(s, "logistic") {
		t.Error("caption missing from ascii chart")
	}
	if len(strings.Split(s, "\n")) < 6 {
		t.Errorf("ascii chart too short:\n%s", s)
	}
}
