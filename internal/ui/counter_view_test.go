package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"counterapp/internal/counter"
	"counterapp/internal/effect"
	"counterapp/internal/i18n"
	"counterapp/internal/theme"
)

func newTestView(t *testing.T, cfg counter.Config, locale string, opts ...counter.Option) *CounterView {
	t.Helper()
	c, err := counter.New(cfg, opts...)
	if err != nil {
		t.Fatalf("counter.New: %v", err)
	}
	loc, err := i18n.New(locale)
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	themes, err := theme.NewCycler("")
	if err != nil {
		t.Fatalf("theme.NewCycler: %v", err)
	}
	return NewCounterView(c, loc, themes)
}

func TestCounterView_DisablesControlsAtBounds(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 8, Min: 1, Max: 9}, "en")
	if !v.Enabled(ControlIncrement) || !v.Enabled(ControlDecrement) {
		t.Fatal("expected both controls enabled inside the range")
	}

	v.Update(IncrementMsg{})
	if v.Counter.Value() != 9 {
		t.Errorf("Value: expected 9, got %d", v.Counter.Value())
	}
	if v.Enabled(ControlIncrement) {
		t.Error("increment: expected disabled at max")
	}
	if !v.Enabled(ControlDecrement) {
		t.Error("decrement: expected enabled at max")
	}

	// Pressing a disabled control is ignored.
	v.Update(IncrementMsg{})
	if v.Counter.Value() != 9 {
		t.Errorf("disabled press changed value to %d", v.Counter.Value())
	}
}

func TestCounterView_OutOfRangeStartDisablesDeadControl(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 0, Min: 1, Max: 9}, "en", counter.AllowOutOfRangeStart())

	if v.Enabled(ControlDecrement) {
		t.Error("decrement: expected disabled below min, a press cannot change the value")
	}
	if !v.Enabled(ControlIncrement) {
		t.Error("increment: expected enabled below min")
	}

	v.Update(DecrementMsg{})
	if v.LastChange != nil {
		t.Errorf("disabled decrement notified a change: %+v", v.LastChange)
	}

	v.Update(IncrementMsg{})
	if v.Counter.Value() != 1 {
		t.Errorf("Value: expected 1, got %d", v.Counter.Value())
	}
	if v.Enabled(ControlDecrement) {
		t.Error("decrement: expected disabled at min")
	}
}

func TestCounterView_FocusLeavesDisabledControl(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 8, Min: 1, Max: 9}, "en")
	if v.Focus.Current != ControlIncrement {
		t.Fatalf("initial focus: expected increment, got %q", v.Focus.Current)
	}

	v.Update(keyMsg("enter"))
	if v.Counter.Value() != 9 {
		t.Errorf("Value: expected 9, got %d", v.Counter.Value())
	}
	if v.Focus.Current != ControlDecrement {
		t.Errorf("focus: expected decrement once increment is disabled, got %q", v.Focus.Current)
	}

	v.Update(keyMsg("enter"))
	if v.Counter.Value() != 8 {
		t.Errorf("Value: expected 8, got %d", v.Counter.Value())
	}
}

func TestCounterView_TabCyclesEnabledControls(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 3, Min: 1, Max: 9}, "en")

	v.Update(keyMsg("tab"))
	if v.Focus.Current != ControlDecrement {
		t.Errorf("tab: expected decrement, got %q", v.Focus.Current)
	}
	v.Update(keyMsg("shift+tab"))
	if v.Focus.Current != ControlIncrement {
		t.Errorf("shift+tab: expected increment, got %q", v.Focus.Current)
	}
}

func TestCounterView_DegenerateRangeDisablesBoth(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 5, Min: 5, Max: 5}, "en")
	if v.Enabled(ControlIncrement) || v.Enabled(ControlDecrement) {
		t.Error("expected both controls disabled when min == max")
	}

	v.Update(IncrementMsg{})
	v.Update(DecrementMsg{})
	if v.Counter.Value() != 5 || v.LastChange != nil {
		t.Errorf("degenerate range changed: value=%d last=%+v", v.Counter.Value(), v.LastChange)
	}
}

func TestCounterView_RecordsLastChange(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 0, Min: -3, Max: 30}, "en")
	v.Update(DecrementMsg{})
	if v.LastChange == nil {
		t.Fatal("LastChange: expected a change")
	}
	if v.LastChange.Previous != 0 || v.LastChange.Current != -1 {
		t.Errorf("LastChange: got %+v", *v.LastChange)
	}
}

func TestCounterView_RendersLocalizedState(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 9, Min: 1, Max: 9}, "es")
	out := v.View()

	for _, want := range []string{"9", "Incrementar", "Decrementar", "En el máximo", "[1, 9]"} {
		if !strings.Contains(out, want) {
			t.Errorf("View: expected %q in output", want)
		}
	}
}

func TestCounterView_CelebrationPopsConfetti(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 6, Min: 1, Max: 9}, "en")

	_, cmd := v.Update(CelebrateMsg{Signal: effect.Signal{Target: 7}})
	if cmd == nil {
		t.Error("CelebrateMsg: expected animation tick")
	}
	if v.Celebrations != 1 || !v.Confetti.Active() {
		t.Errorf("after celebrate: celebrations=%d active=%v", v.Celebrations, v.Confetti.Active())
	}
	if !strings.Contains(v.View(), "You hit the magic number!") {
		t.Error("View: expected celebration status")
	}

	// The effect finishes on its own without touching the counter.
	for i := 0; i < v.Confetti.Frames; i++ {
		v.Update(effect.FrameMsg{Gen: 1})
	}
	if v.Confetti.Active() {
		t.Error("confetti: expected reset after last frame")
	}
	if v.Counter.Value() != 6 {
		t.Errorf("Value: celebration changed it to %d", v.Counter.Value())
	}
}

func TestCounterView_WindowSizeBoundsConfetti(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 1, Min: 1, Max: 9}, "en")
	v.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	if v.Confetti.Width != 20 {
		t.Errorf("narrow window: expected width 20, got %d", v.Confetti.Width)
	}

	v.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	if v.Confetti.Width != defaultConfettiWidth {
		t.Errorf("wide window: expected width %d, got %d", defaultConfettiWidth, v.Confetti.Width)
	}
}

func TestCounterView_ThemeChangeRestyles(t *testing.T) {
	v := newTestView(t, counter.Config{Value: 1, Min: 1, Max: 9}, "en")
	if v.View() == "" {
		t.Fatal("View: expected output")
	}

	v.Themes.(*theme.Cycler).Next()
	v.ThemeChanged()
	if v.styleName != "" {
		t.Errorf("ThemeChanged: expected cached styles dropped, got %q", v.styleName)
	}
	after := v.View()
	if v.styleName != "azure" {
		t.Errorf("styles: expected azure, got %q", v.styleName)
	}
	if !strings.Contains(after, "Counter") {
		t.Error("View: expected title after restyle")
	}
}
