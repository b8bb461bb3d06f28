package arcdial

// BinderState names the scroll binder's lifecycle states.
type BinderState uint8

const (
	StateUninitialized BinderState = iota // no active position yet
	StateBound                            // active position tracks the bound value
	StateSettling                         // gesture ended, reseed pending
)

// Binder synchronizes the externally-owned selected value with the widget's
// internally tracked active scroll position.
//
// Propagation is an explicit observer pair rather than an implicit reactive
// binding: scroll movement reports inward through SetActive and flows out to
// the bound Value, while external writes to the Value flow back in and issue
// a recenter command. Both directions are equality-guarded, so an update
// echoed around the loop dies on the first repeat.
type Binder struct {
	value *Value[int]
	rng   Range

	active    int
	hasActive bool
	settling  bool

	schedule func(func()) // runs a function on the host's next update cycle
	recenter func(int)    // commands the scroll system onto a tick value
	unsub    func()
}

// NewBinder wires a binder to the caller's bound value. schedule must defer
// its function to the host's next scheduling turn (it is what makes the
// settle reseed visible to the scroll system as a fresh write); recenter is
// invoked whenever the scroll position must snap to a value. Either may be
// nil for hosts without the corresponding machinery.
func NewBinder(r Range, value *Value[int], schedule func(func()), recenter func(int)) *Binder {
	b := &Binder{
		value:    value,
		rng:      r,
		schedule: schedule,
		recenter: recenter,
	}
	b.unsub = value.Subscribe(b.onExternalChange)
	return b
}

// State reports the current lifecycle state.
func (b *Binder) State() BinderState {
	switch {
	case b.hasActive:
		return StateBound
	case b.settling:
		return StateSettling
	default:
		return StateUninitialized
	}
}

// Active returns the active position, if one is set.
func (b *Binder) Active() (int, bool) {
	return b.active, b.hasActive
}

// Seed initializes the active position from the bound value on first
// display. Out-of-range bound values are clamped rather than crashed on.
// No-op once an active position exists.
func (b *Binder) Seed() {
	if b.hasActive {
		return
	}
	b.active = b.rng.Clamp(b.value.Get())
	b.hasActive = true
	b.settling = false
	if b.recenter != nil {
		b.recenter(b.active)
	}
}

// SetActive reports that the user scrolled a new tick under the indicator.
// The change propagates outward to the bound value unless it already
// matches.
func (b *Binder) SetActive(v int) {
	if b.hasActive && v == b.active {
		return
	}
	b.active = v
	b.hasActive = true
	if v != b.value.Get() {
		b.value.Set(v)
	}
}

// onExternalChange propagates a caller-side write inward: the active
// position follows the new value and the scroll system is told to recenter.
// A change that only echoes the current active position is ignored.
func (b *Binder) onExternalChange(_, next int) {
	if !b.hasActive {
		// Settle reseed (or first Seed) reads the bound value itself.
		return
	}
	v := b.rng.Clamp(next)
	if v == b.active {
		return
	}
	b.active = v
	if b.recenter != nil {
		b.recenter(v)
	}
}

// Settle handles the end of a scroll gesture: the active position is cleared
// and, one scheduling turn later, reseeded from the bound value so the
// scroll system snaps exactly onto the settled tick. Re-triggering before
// the reseed lands just repeats the same sequence.
func (b *Binder) Settle() {
	b.hasActive = false
	b.settling = true
	reseed := func() {
		b.settling = false
		b.active = b.rng.Clamp(b.value.Get())
		b.hasActive = true
		if b.recenter != nil {
			b.recenter(b.active)
		}
	}
	if b.schedule != nil {
		b.schedule(reseed)
	} else {
		reseed()
	}
}

// Dispose disconnects the binder from the bound value.
func (b *Binder) Dispose() {
	if b.unsub != nil {
		b.unsub()
	}
}
