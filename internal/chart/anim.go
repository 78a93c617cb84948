package chart

import (
	"fmt"
	"image"
	stdpalette "image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"io"
	"time"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultDelay is the frame delay used when an Animation leaves it unset.
const DefaultDelay = 200 * time.Millisecond

// Animation is a sequence of charts shown one after another.
type Animation struct {
	Title  string
	Frames []*Chart
	Delay  time.Duration
}

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.Frames) }

// Reveal returns an animation whose frames draw c progressively: frame k
// shows the first 1+k*stride samples of every series, and the last frame
// shows all of them. Axis ranges are taken from the full chart so they
// stay fixed across frames.
func Reveal(c *Chart, stride int) (*Animation, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if stride < 1 {
		stride = 1
	}

	full := *c
	full.Fix()

	n := 0
	for _, s := range c.Series {
		n = max(n, s.Len())
	}

	a := &Animation{Title: c.Title}
	for k := 1; ; k += stride {
		k = min(k, n)
		frame := full
		frame.Series = make([]Series, len(c.Series))
		for i, s := range c.Series {
			frame.Series[i] = s.Head(k)
		}
		a.Frames = append(a.Frames, &frame)
		if k == n {
			break
		}
	}
	return a, nil
}

// GIFRenderer encodes an animation as an animated GIF, one gonum/plot
// image per frame.
type GIFRenderer struct {
	Width  vg.Length
	Height vg.Length
	// LoopCount follows image/gif: 0 loops forever, -1 plays once.
	LoopCount int
}

func (r GIFRenderer) RenderAnimation(w io.Writer, a *Animation) error {
	if a == nil || len(a.Frames) == 0 {
		return ErrNoSeries
	}
	width, height := PlotRenderer{Width: r.Width, Height: r.Height}.size()

	delay := a.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	centis := int(delay / (10 * time.Millisecond))

	out := &gif.GIF{LoopCount: r.LoopCount}
	for i, frame := range a.Frames {
		img, err := rasterize(frame, width, height)
		if err != nil {
			return fmt.Errorf("chart: frame %d: %w", i, err)
		}
		out.Image = append(out.Image, img)
		out.Delay = append(out.Delay, centis)
	}
	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("chart: encode gif: %w", err)
	}
	return nil
}

// Render draws a single chart as a one-frame GIF.
func (r GIFRenderer) Render(w io.Writer, c *Chart) error {
	return r.RenderAnimation(w, &Animation{Title: c.Title, Frames: []*Chart{c}})
}

func rasterize(c *Chart, width, height vg.Length) (*image.Paletted, error) {
	p, err := newPlot(c)
	if err != nil {
		return nil, err
	}
	canvas := vgimg.New(width, height)
	p.Draw(draw.New(canvas))

	src := canvas.Image()
	dst := image.NewPaletted(src.Bounds(), stdpalette.Plan9)
	imgdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, imgdraw.Src)
	return dst, nil
}
