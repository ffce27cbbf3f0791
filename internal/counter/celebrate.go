package counter

// ShouldCelebrate reports whether a transition from previous to next enters target.
// Resting at target (previous == next == target) does not count.
func ShouldCelebrate(previous, next, target int) bool {
	return next == target && previous != target
}

// CelebrationTrigger is an Observer that fires Signal once per transition
// into Target. It holds no state of its own.
type CelebrationTrigger struct {
	Target int
	Signal func(target int)
}

// Ensure CelebrationTrigger implements Observer.
var _ Observer = (*CelebrationTrigger)(nil)

// NewCelebrationTrigger creates a trigger for target.
func NewCelebrationTrigger(target int, signal func(target int)) *CelebrationTrigger {
	return &CelebrationTrigger{Target: target, Signal: signal}
}

// OnChange implements Observer.
func (t *CelebrationTrigger) OnChange(c Change) {
	if t.Signal == nil {
		return
	}
	if ShouldCelebrate(c.Previous, c.Current, t.Target) {
		t.Signal(t.Target)
	}
}
