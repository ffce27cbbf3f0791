package ui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	oteltrace "go.opentelemetry.io/otel/trace"

	"counterapp/internal/config"
	"counterapp/internal/counter"
	"counterapp/internal/effect"
	"counterapp/internal/i18n"
	"counterapp/internal/theme"
	"counterapp/internal/trace"
)

// NextThemeMsg switches to the next built-in theme (SPC t).
type NextThemeMsg struct{}

// NextLocaleMsg switches to the next supported locale (SPC l).
type NextLocaleMsg struct{}

// Options configure NewAppModel.
type Options struct {
	Config   config.Config
	Log      logrus.FieldLogger // nil discards
	Tracer   oteltrace.Tracer   // nil records nothing
	Instance string             // empty generates a UUID
}

// AppModel is the root model: one CounterView plus keybinds, theme and
// locale switching, and the celebration signal subscription.
type AppModel struct {
	Instance   string
	Target     int
	Widget     *CounterView
	KeyHandler *KeyHandler
	Themes     *theme.Cycler
	Localizer  *i18n.Localizer
	Signals    <-chan effect.Signal
	Log        logrus.FieldLogger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel validates the configuration and wires counter, observers and view.
func NewAppModel(opts Options) (*AppModel, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	instance := opts.Instance
	if instance == "" {
		instance = uuid.NewString()
	}
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithField("instance", instance)
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	loc, err := i18n.New(cfg.Locale)
	if err != nil {
		return nil, err
	}
	themes, err := theme.NewCycler(cfg.Theme)
	if err != nil {
		return nil, err
	}

	emitter, signals := effect.NewChanEmitter(1)
	ctrOpts := append(cfg.CounterOptions(),
		counter.WithLogger(log),
		counter.WithObservers(
			counter.NewCelebrationTrigger(cfg.Target, emitter.Celebrate),
			trace.NewObserver(opts.Tracer, instance, cfg.Target),
		),
	)
	ctr, err := counter.New(cfg.Counter(), ctrOpts...)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"preset": cfg.Preset,
		"value":  ctr.Value(),
		"min":    ctr.Min(),
		"max":    ctr.Max(),
		"target": cfg.Target,
		"locale": loc.Locale(),
		"theme":  themes.Theme().Name,
	}).Info("counter created")

	return &AppModel{
		Instance:   instance,
		Target:     cfg.Target,
		Widget:     NewCounterView(ctr, loc, themes),
		KeyHandler: NewKeyHandler(defaultKeybinds()),
		Themes:     themes,
		Localizer:  loc,
		Signals:    signals,
		Log:        log,
	}, nil
}

func defaultKeybinds() *KeybindRegistry {
	inc := func() tea.Msg { return IncrementMsg{} }
	dec := func() tea.Msg { return DecrementMsg{} }
	reg := NewKeybindRegistry()
	for _, k := range []string{"+", "=", "k", "up"} {
		reg.BindWithDesc(k, inc, i18n.KeyIncrement)
	}
	for _, k := range []string{"-", "_", "j", "down"} {
		reg.BindWithDesc(k, dec, i18n.KeyDecrement)
	}
	// Descriptions are i18n keys, localized when the help bar renders.
	reg.BindWithDesc("q", tea.Quit, i18n.KeyQuit)
	reg.BindWithDesc("ctrl+c", tea.Quit, i18n.KeyQuit)
	reg.BindWithDesc("SPC q", tea.Quit, i18n.KeyQuit)
	reg.BindWithDesc("SPC t", func() tea.Msg { return NextThemeMsg{} }, i18n.KeyTheme)
	reg.BindWithDesc("SPC l", func() tea.Msg { return NextLocaleMsg{} }, i18n.KeyLocale)
	return reg
}

// waitForSignal blocks on the signal channel and turns the next signal into
// a CelebrateMsg.
func waitForSignal(ch <-chan effect.Signal) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return CelebrateMsg{Signal: s}
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Widget.Init(), waitForSignal(a.Signals))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CelebrateMsg:
		a.Log.WithField("target", msg.Signal.Target).Info("celebrate")
		_, cmd := a.Widget.Update(msg)
		return a, tea.Batch(cmd, waitForSignal(a.Signals))
	case NextThemeMsg:
		th := a.Themes.Next()
		a.Widget.ThemeChanged()
		a.Log.WithField("theme", th.Name).Debug("theme changed")
		return a, nil
	case NextLocaleMsg:
		return a, a.switchLocale(i18n.Next(a.Localizer.Locale()))
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	_, cmd := a.Widget.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) switchLocale(name string) tea.Cmd {
	loc, err := i18n.New(name)
	if err != nil {
		a.Log.WithError(err).Warn("locale switch failed")
		return nil
	}
	a.Localizer = loc
	a.Widget.Strings = loc
	a.Log.WithField("locale", loc.Locale()).Debug("locale changed")
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Widget.View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Themes.Theme(), a.Localizer)
	}
	return base
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Counter returns the underlying counter.
func (m *AppModel) Counter() *counter.Counter {
	return m.Widget.Counter
}

// String summarizes the model for logs.
func (m *AppModel) String() string {
	c := m.Counter()
	return fmt.Sprintf("counter %s value=%d range=[%d,%d] target=%d", m.Instance, c.Value(), c.Min(), c.Max(), m.Target)
}
