package ui

// FocusManager tracks and rotates focus across controls.
// Controls for which Enabled returns false are skipped.
type FocusManager struct {
	Current string   // ID of the focused control
	Order   []string // Tab order for focus rotation
	Enabled func(id string) bool
}

// Next moves focus to the next enabled control in order.
// If no control is enabled, focus stays where it is.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous enabled control in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// Ensure moves focus off a control that has become disabled.
func (f *FocusManager) Ensure() string {
	if f.Current != "" && f.enabled(f.Current) {
		return f.Current
	}
	return f.Next()
}

func (f *FocusManager) step(dir int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && dir < 0 {
		idx = 0
	}
	for i := 1; i <= n; i++ {
		cand := f.Order[((idx+dir*i)%n+n)%n]
		if f.enabled(cand) {
			f.Current = cand
			return f.Current
		}
	}
	return f.Current
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) enabled(id string) bool {
	return f.Enabled == nil || f.Enabled(id)
}
