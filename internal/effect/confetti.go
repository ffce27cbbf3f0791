package effect

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultFrames    = 24
	defaultInterval  = 60 * time.Millisecond
	defaultParticles = 28
)

var confettiGlyphs = []rune{'*', '+', '•', '◆', '~', '°'}

// FrameMsg advances a confetti animation. Gen identifies the Pop that
// scheduled it so ticks from an earlier burst are ignored.
type FrameMsg struct {
	Gen int
}

type particle struct {
	x, y   float64
	dx, dy float64
	glyph  rune
	color  int
}

// Confetti is a short falling-particle animation. It owns its lifecycle:
// Pop starts a burst, FrameMsg ticks advance it, and it resets itself after
// the last frame so the next Pop starts clean.
type Confetti struct {
	Frames   int
	Interval time.Duration
	Width    int
	Height   int

	colors    []lipgloss.Style
	rng       *rand.Rand
	particles []particle
	gen       int
	frame     int
	active    bool
}

// NewConfetti creates an idle animation over a width x height area.
// With no colors it renders unstyled glyphs.
func NewConfetti(width, height int, colors ...lipgloss.Color) *Confetti {
	c := &Confetti{
		Frames:   defaultFrames,
		Interval: defaultInterval,
		Width:    width,
		Height:   height,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
	c.SetColors(colors...)
	return c
}

// SetColors replaces the particle palette.
func (c *Confetti) SetColors(colors ...lipgloss.Color) {
	c.colors = c.colors[:0]
	for _, col := range colors {
		c.colors = append(c.colors, lipgloss.NewStyle().Foreground(col))
	}
}

// Seed makes particle placement deterministic.
func (c *Confetti) Seed(seed uint64) {
	c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SetSize resizes the drawing area.
func (c *Confetti) SetSize(width, height int) {
	c.Width, c.Height = width, height
}

// Active reports whether a burst is running.
func (c *Confetti) Active() bool {
	return c.active
}

// Frame returns the current frame index of the running burst.
func (c *Confetti) Frame() int {
	return c.frame
}

// Pop starts a burst, restarting any burst already in flight.
func (c *Confetti) Pop() tea.Cmd {
	c.gen++
	c.frame = 0
	c.active = true
	c.scatter()
	return c.tick()
}

// Update handles FrameMsg; other messages are ignored.
func (c *Confetti) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(FrameMsg)
	if !ok || !c.active || m.Gen != c.gen {
		return nil
	}
	c.frame++
	if c.frame >= c.Frames {
		c.reset()
		return nil
	}
	c.fall()
	return c.tick()
}

// View renders the current frame, or "" when idle.
func (c *Confetti) View() string {
	if !c.active || c.Width <= 0 || c.Height <= 0 {
		return ""
	}
	grid := make([][]string, c.Height)
	for y := range grid {
		row := make([]string, c.Width)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}
	for _, p := range c.particles {
		x, y := int(p.x), int(p.y)
		if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
			continue
		}
		glyph := string(p.glyph)
		if len(c.colors) > 0 {
			glyph = c.colors[p.color%len(c.colors)].Render(glyph)
		}
		grid[y][x] = glyph
	}
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (c *Confetti) tick() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.Interval, func(time.Time) tea.Msg {
		return FrameMsg{Gen: gen}
	})
}

func (c *Confetti) scatter() {
	c.particles = c.particles[:0]
	if c.Width <= 0 {
		return
	}
	for range defaultParticles {
		c.particles = append(c.particles, particle{
			x:     c.rng.Float64() * float64(c.Width),
			y:     -c.rng.Float64() * 3,
			dx:    (c.rng.Float64() - 0.5) * 0.8,
			dy:    0.3 + c.rng.Float64()*0.7,
			glyph: confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
			color: c.rng.IntN(8),
		})
	}
}

func (c *Confetti) fall() {
	for i := range c.particles {
		p := &c.particles[i]
		p.x += p.dx
		p.y += p.dy
	}
}

func (c *Confetti) reset() {
	c.active = false
	c.frame = 0
	c.particles = c.particles[:0]
}
