package ui

import (
	"maps"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"counterapp/internal/i18n"
	"counterapp/internal/theme"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyHandler_UnknownLeaderSequenceCancels(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC t", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_NestedLeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x y", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("x"))
	if !consumed || cmd != nil {
		t.Fatalf("x: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader still waiting after prefix")
	}
	if got := h.CurrentSeq(); got != "SPC x" {
		t.Errorf("CurrentSeq: expected %q, got %q", "SPC x", got)
	}

	_, cmd = h.Handle(keyMsg("y"))
	if cmd == nil {
		t.Error("y: expected command for SPC x y")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC t", tea.Quit, "Theme")
	reg.BindWithDesc("SPC l", tea.Quit, "Language")
	reg.BindWithDesc("SPC x y", tea.Quit, "Deep")
	reg.BindWithDesc("+", tea.Quit, "Increment")

	want := map[string]string{
		"t": "Theme",
		"l": "Language",
		"x": "x…",
	}
	if got := reg.LeaderHints(""); !maps.Equal(got, want) {
		t.Errorf("LeaderHints(\"\") = %v, want %v", got, want)
	}
	if got := reg.LeaderHints("SPC x"); !maps.Equal(got, map[string]string{"y": "Deep"}) {
		t.Errorf("LeaderHints(SPC x) = %v", got)
	}
}

func TestKeyMap_ShortHelpSortedWithEsc(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC t", tea.Quit, "Theme")
	reg.BindWithDesc("SPC l", tea.Quit, "Language")
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))

	bindings := NewKeyMap(reg, h).ShortHelp()
	var keys []string
	for _, b := range bindings {
		keys = append(keys, b.Help().Key)
	}
	if !slices.Equal(keys, []string{"l", "t", "esc"}) {
		t.Errorf("ShortHelp keys = %v", keys)
	}
	if n := len(NewKeyMap(reg, h).FullHelp()); n != 1 {
		t.Errorf("FullHelp: expected 1 column, got %d", n)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC t", tea.Quit, "Theme")
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))

	out := RenderKeybindHelp(h, theme.DDD, nil)
	for _, want := range []string{"SPC", "Theme"} {
		if !strings.Contains(out, want) {
			t.Errorf("help bar: expected %q in %q", want, out)
		}
	}
	if got := RenderKeybindHelp(nil, theme.DDD, nil); got != "" {
		t.Errorf("nil handler: expected empty, got %q", got)
	}
}

func TestRenderKeybindHelp_LocalizesDescriptions(t *testing.T) {
	h := NewKeyHandler(defaultKeybinds())
	h.Handle(keyMsg(" "))

	es, err := i18n.New("es")
	if err != nil {
		t.Fatalf("i18n.New(es): %v", err)
	}
	out := RenderKeybindHelp(h, theme.DDD, es)
	for _, want := range []string{es.T(i18n.KeyTheme), es.T(i18n.KeyLocale), es.T(i18n.KeyQuit)} {
		if !strings.Contains(out, want) {
			t.Errorf("help bar: expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, i18n.KeyTheme+" ") {
		t.Errorf("help bar shows raw text key: %q", out)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "q":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	case "x":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	case "j":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
