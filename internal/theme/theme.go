// Package theme provides the color palettes injected into the presentation
// layer and the lipgloss styles derived from them.
package theme

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme is returned by Lookup for unregistered names.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is a named palette. Colors are ANSI 256 codes or hex strings.
type Theme struct {
	Name      string
	Primary   lipgloss.Color // value text
	Accent    lipgloss.Color // titles, focused button
	Highlight lipgloss.Color // value at max
	Muted     lipgloss.Color // hints, disabled buttons
	Border    lipgloss.Color
	Confetti  []lipgloss.Color
}

// Provider supplies the active theme.
type Provider interface {
	Theme() Theme
}

// Built-in themes. "ddd" is the default.
var (
	DDD = Theme{
		Name:      "ddd",
		Primary:   lipgloss.Color("252"),
		Accent:    lipgloss.Color("86"),
		Highlight: lipgloss.Color("33"), // azure
		Muted:     lipgloss.Color("241"),
		Border:    lipgloss.Color("205"),
		Confetti: []lipgloss.Color{
			"196", "208", "226", "46", "51", "33", "201",
		},
	}
	Azure = Theme{
		Name:      "azure",
		Primary:   lipgloss.Color("#E6F4FF"),
		Accent:    lipgloss.Color("#3FA9F5"),
		Highlight: lipgloss.Color("#007FFF"),
		Muted:     lipgloss.Color("#6B7B8C"),
		Border:    lipgloss.Color("#3FA9F5"),
		Confetti: []lipgloss.Color{
			"#007FFF", "#66CCFF", "#FFFFFF", "#FFD166",
		},
	}
	Mono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("255"),
		Accent:    lipgloss.Color("250"),
		Highlight: lipgloss.Color("231"),
		Muted:     lipgloss.Color("240"),
		Border:    lipgloss.Color("245"),
	}
)

var builtin = []Theme{DDD, Azure, Mono}

// Names returns the built-in theme names in cycle order.
func Names() []string {
	out := make([]string, len(builtin))
	for i, t := range builtin {
		out[i] = t.Name
	}
	return out
}

// Lookup returns the built-in theme called name. An empty name returns DDD.
func Lookup(name string) (Theme, error) {
	if name == "" {
		return DDD, nil
	}
	for _, t := range builtin {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("theme %q: %w", name, ErrUnknownTheme)
}

// Cycler is a Provider that rotates through the built-in themes.
type Cycler struct {
	idx int
}

// Ensure Cycler implements Provider.
var _ Provider = (*Cycler)(nil)

// NewCycler starts at the named theme.
func NewCycler(name string) (*Cycler, error) {
	t, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	for i, b := range builtin {
		if b.Name == t.Name {
			return &Cycler{idx: i}, nil
		}
	}
	return &Cycler{}, nil
}

// Theme implements Provider.
func (c *Cycler) Theme() Theme {
	return builtin[c.idx]
}

// Next advances to the following theme and returns it.
func (c *Cycler) Next() Theme {
	c.idx = (c.idx + 1) % len(builtin)
	return builtin[c.idx]
}

// Styles contains the style definitions used by the counter view.
type Styles struct {
	Title          lipgloss.Style
	Box            lipgloss.Style
	Value          lipgloss.Style
	ValueAtMin     lipgloss.Style
	ValueAtMax     lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Hint           lipgloss.Style
	Status         lipgloss.Style
}

// Styles derives the view styles from the palette.
func (t Theme) Styles() Styles {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2).
			Margin(1),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		ValueAtMin: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Muted),
		ValueAtMax: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Highlight),
		Button: button.
			BorderForeground(t.Border).
			Foreground(t.Primary),
		ButtonFocused: button.
			BorderForeground(t.Accent).
			Foreground(t.Accent).
			Bold(true),
		ButtonDisabled: button.
			BorderForeground(t.Muted).
			Foreground(t.Muted).
			Faint(true),
		Hint: lipgloss.NewStyle().
			Foreground(t.Muted),
		Status: lipgloss.NewStyle().
			Foreground(t.Accent),
	}
}
