package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"counterapp/internal/counter"
	"counterapp/internal/effect"
	"counterapp/internal/i18n"
	"counterapp/internal/theme"
)

// Control IDs
const (
	ControlIncrement = "increment"
	ControlDecrement = "decrement"
)

const (
	defaultConfettiWidth  = 40
	defaultConfettiHeight = 6
)

// IncrementMsg presses the increment control.
type IncrementMsg struct{}

// DecrementMsg presses the decrement control.
type DecrementMsg struct{}

// CelebrateMsg delivers a celebration signal to the view.
type CelebrateMsg struct {
	Signal effect.Signal
}

// CounterView renders a counter and its two controls. It observes the
// counter and re-reads value and boundary flags on every render.
type CounterView struct {
	Counter  *counter.Counter
	Strings  i18n.Provider
	Themes   theme.Provider
	Confetti *effect.Confetti
	Focus    *FocusManager

	// LastChange is the most recent transition seen, nil before the first one.
	LastChange   *counter.Change
	Celebrations int

	styles    theme.Styles
	styleName string
}

// Ensure CounterView implements View and counter.Observer.
var (
	_ View             = (*CounterView)(nil)
	_ counter.Observer = (*CounterView)(nil)
)

// NewCounterView creates the view and subscribes it to c.
func NewCounterView(c *counter.Counter, strings i18n.Provider, themes theme.Provider) *CounterView {
	v := &CounterView{
		Counter: c,
		Strings: strings,
		Themes:  themes,
	}
	v.Confetti = effect.NewConfetti(defaultConfettiWidth, defaultConfettiHeight, v.theme().Confetti...)
	v.Focus = &FocusManager{
		Order:   []string{ControlIncrement, ControlDecrement},
		Enabled: v.Enabled,
	}
	v.Focus.Ensure()
	c.Subscribe(v)
	return v
}

// OnChange implements counter.Observer.
func (v *CounterView) OnChange(c counter.Change) {
	v.LastChange = &c
	v.Focus.Ensure()
}

// Enabled reports whether pressing a control would change the value. This
// covers the boundary flags and a start value outside the range.
func (v *CounterView) Enabled(control string) bool {
	switch control {
	case ControlIncrement:
		return v.Counter.CanIncrement()
	case ControlDecrement:
		return v.Counter.CanDecrement()
	}
	return false
}

// Press activates a control. Disabled controls ignore the press.
func (v *CounterView) Press(control string) {
	if !v.Enabled(control) {
		return
	}
	switch control {
	case ControlIncrement:
		v.Counter.Increment()
	case ControlDecrement:
		v.Counter.Decrement()
	}
}

// ThemeChanged refreshes theme-derived state after the provider switched palettes.
func (v *CounterView) ThemeChanged() {
	v.styleName = ""
	v.Confetti.SetColors(v.theme().Confetti...)
}

// Init implements View.
func (v *CounterView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *CounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case IncrementMsg:
		v.Press(ControlIncrement)
	case DecrementMsg:
		v.Press(ControlDecrement)
	case CelebrateMsg:
		v.Celebrations++
		return v, v.Confetti.Pop()
	case effect.FrameMsg:
		return v, v.Confetti.Update(msg)
	case tea.WindowSizeMsg:
		w := min(msg.Width, defaultConfettiWidth)
		v.Confetti.SetSize(w, defaultConfettiHeight)
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			v.Focus.Next()
		case "shift+tab", "left", "h":
			v.Focus.Prev()
		case "enter":
			v.Press(v.Focus.Current)
		}
	}
	return v, nil
}

// View implements View.
func (v *CounterView) View() string {
	s := v.currentStyles()
	flags := v.Counter.Flags()

	valueStyle := s.Value
	switch {
	case flags.AtMax:
		valueStyle = s.ValueAtMax
	case flags.AtMin:
		valueStyle = s.ValueAtMin
	}

	title := s.Title.Render(v.Strings.T(i18n.KeyTitle))
	value := valueStyle.Render(strconv.Itoa(v.Counter.Value()))
	rng := s.Hint.Render(fmt.Sprintf("%s: [%d, %d]", v.Strings.T(i18n.KeyRange), v.Counter.Min(), v.Counter.Max()))
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		v.renderButton(s, ControlIncrement, "+ "+v.Strings.T(i18n.KeyIncrement)),
		" ",
		v.renderButton(s, ControlDecrement, "- "+v.Strings.T(i18n.KeyDecrement)),
	)

	lines := []string{title, "", value, rng, "", buttons}
	if status := v.status(flags); status != "" {
		lines = append(lines, s.Status.Render(status))
	}
	lines = append(lines, s.Hint.Render(v.Strings.T(i18n.KeyHelp)))

	out := s.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if v.Confetti.Active() {
		out = v.Confetti.View() + "\n" + out
	}
	return out
}

func (v *CounterView) status(f counter.Flags) string {
	switch {
	case v.Confetti.Active():
		return v.Strings.T(i18n.KeyCelebrate)
	case f.AtMax:
		return v.Strings.T(i18n.KeyAtMax)
	case f.AtMin:
		return v.Strings.T(i18n.KeyAtMin)
	}
	return ""
}

func (v *CounterView) renderButton(s theme.Styles, control, label string) string {
	switch {
	case !v.Enabled(control):
		return s.ButtonDisabled.Render(label)
	case v.Focus.Current == control:
		return s.ButtonFocused.Render(label)
	default:
		return s.Button.Render(label)
	}
}

func (v *CounterView) theme() theme.Theme {
	if v.Themes == nil {
		return theme.DDD
	}
	return v.Themes.Theme()
}

func (v *CounterView) currentStyles() theme.Styles {
	th := v.theme()
	if v.styleName != th.Name {
		v.styles = th.Styles()
		v.styleName = th.Name
	}
	return v.styles
}
