// Package ui is the presentation layer of the counter widget, built on
// Bubble Tea.
//
// Core abstractions:
//   - View: a screen region with its own Init/Update/View (Elm-style)
//   - CounterView: renders a counter.Counter and subscribes to its changes
//   - FocusManager: rotates focus across the enabled button controls
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed leader sequences
//
// The counter never calls into this package. Themes and strings are injected
// through theme.Provider and i18n.Provider.
package ui
