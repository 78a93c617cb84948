package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/odelab/internal/chart"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type tickMsg time.Time

// Player steps through the frames of an animation, one per tick.
type Player struct {
	anim     *chart.Animation
	frame    int
	running  bool
	phase    bool
	showHelp bool
	color    bool
	theme    int
	styles   styles
	width    int
	height   int
	// phase-plane ranges, fixed across frames
	phaseX, phaseY chart.Range
	hasPhase       bool
}

// NewPlayer returns a running player positioned on the first frame.
func NewPlayer(a *chart.Animation) Player {
	p := Player{
		anim:    a,
		running: true,
		color:   true,
		styles:  newStyles(Themes[0]),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	if a.Len() > 0 {
		last := a.Frames[a.Len()-1]
		if len(last.Series) >= 2 {
			if pc, err := chart.Phase(last.Title, last.Series[0], last.Series[1]); err == nil {
				p.phaseX, p.phaseY = pc.Bounds()
				p.hasPhase = true
			}
		}
	}
	return p
}

// WithTheme returns a copy of the player using the named theme.
func (p Player) WithTheme(name string) Player {
	p.theme = themeIndex(name)
	p.styles = newStyles(Themes[p.theme])
	return p
}

// WithColor enables or disables coloured series.
func (p Player) WithColor(on bool) Player {
	p.color = on
	return p
}

// Frame returns the index of the frame on screen.
func (p Player) Frame() int { return p.frame }

// Running reports whether playback advances on ticks.
func (p Player) Running() bool { return p.running }

func (p Player) delay() time.Duration {
	if p.anim.Delay > 0 {
		return p.anim.Delay
	}
	return chart.DefaultDelay
}

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.delay(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (p Player) Init() tea.Cmd {
	return p.tick()
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.running = !p.running
			if p.running && p.frame == p.anim.Len()-1 {
				p.frame = 0
			}
		case "left", "h":
			p.running = false
			p.seek(p.frame - 1)
		case "right", "l":
			p.running = false
			p.seek(p.frame + 1)
		case "home":
			p.seek(0)
		case "end":
			p.seek(p.anim.Len() - 1)
		case "r":
			p.frame = 0
			p.running = true
		case "p":
			p.phase = !p.phase && p.hasPhase
		case "t":
			p = p.WithTheme(Themes[(p.theme+1)%len(Themes)].Name)
		case "?":
			p.showHelp = !p.showHelp
		}
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	case tickMsg:
		if p.running {
			if p.frame < p.anim.Len()-1 {
				p.frame++
			} else {
				p.running = false
			}
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) seek(k int) {
	p.frame = max(0, min(p.anim.Len()-1, k))
}

func (p Player) View() string {
	var s strings.Builder
	s.WriteString(p.styles.header.Render(p.anim.Title) + "\n")

	status := p.styles.running.Render("PLAYING")
	if !p.running {
		status = p.styles.paused.Render("PAUSED")
	}
	n := p.anim.Len()
	s.WriteString(fmt.Sprintf("%s  %s %s\n",
		status,
		p.styles.label.Render("frame"),
		p.styles.value.Render(fmt.Sprintf("%d/%d", min(p.frame+1, n), n))))

	if n == 0 {
		s.WriteString(p.styles.hint.Render("no frames") + "\n")
		return s.String()
	}

	frame := p.anim.Frames[p.frame]
	if t, ok := lastX(frame); ok {
		s.WriteString(fmt.Sprintf("%s %s\n", p.styles.label.Render(frame.XLabel), p.styles.value.Render(fmt.Sprintf("%.4g", t))))
	}

	var body string
	if p.phase {
		body = p.phaseView(frame)
	} else {
		r := chart.ASCIIRenderer{Width: max(p.width-12, 10), Height: max(p.height-12, 5), Color: p.color}
		out, err := r.String(frame)
		if err != nil {
			out = err.Error()
		}
		body = out
	}
	s.WriteString(p.styles.plot.Render(body) + "\n")

	s.WriteString(ProgressBar(float64(p.frame+1)/float64(n), max(p.width-4, 10)) + "\n")
	if p.showHelp {
		s.WriteString(p.styles.panel.Render(helpText) + "\n")
	} else {
		s.WriteString(p.styles.hint.Render("space pause • ←/→ step • r restart • p phase • t theme • ? help • q quit") + "\n")
	}
	return s.String()
}

func (p Player) phaseView(frame *chart.Chart) string {
	if len(frame.Series) < 2 {
		return "phase view needs two series"
	}
	a, b := frame.Series[0], frame.Series[1]
	c := NewCanvas(max(p.width-12, 10), max(p.height-12, 5))
	c.Trace(a.Y, b.Y, p.phaseX, p.phaseY)
	return fmt.Sprintf("%s against %s\n%s", b.Label, a.Label, c.String())
}

func lastX(c *chart.Chart) (float64, bool) {
	for _, s := range c.Series {
		if len(s.X) > 0 {
			return s.X[len(s.X)-1], true
		}
	}
	return 0, false
}

const helpText = `space      pause / resume
left/right step one frame
home/end   first / last frame
r          restart
p          phase plane of the first two series
t          next theme
q          quit`
