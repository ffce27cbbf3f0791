package counter

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Change describes one successful mutation of a Counter.
type Change struct {
	Previous int
	Current  int
	Flags    Flags
}

// Observer receives state-change notifications from a Counter.
type Observer interface {
	OnChange(Change)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Change)

// OnChange calls f.
func (f ObserverFunc) OnChange(c Change) { f(c) }

// MultiObserver fans out changes to multiple observers.
// A panicking observer is logged and skipped; the others still run.
type MultiObserver struct {
	observers []Observer
	log       logrus.FieldLogger
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver. Nil observers are dropped.
func NewMultiObserver(log logrus.FieldLogger, observers ...Observer) *MultiObserver {
	if log == nil {
		log = discardLogger()
	}
	m := &MultiObserver{log: log}
	m.Add(observers...)
	return m
}

// Add appends observers, skipping nils.
func (m *MultiObserver) Add(observers ...Observer) {
	for _, obs := range observers {
		if obs != nil {
			m.observers = append(m.observers, obs)
		}
	}
}

// Len returns the number of registered observers.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

// OnChange forwards the change to all observers.
func (m *MultiObserver) OnChange(c Change) {
	for _, obs := range m.observers {
		m.safeCall(c, func() { obs.OnChange(c) })
	}
}

func (m *MultiObserver) safeCall(c Change, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.log.WithFields(logrus.Fields{
				"previous": c.Previous,
				"value":    c.Current,
				"panic":    r,
			}).Warn("counter observer failed")
		}
	}()
	fn()
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
