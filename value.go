package arcdial

// Value is a generic scalar container that notifies on changes.
// It is the two-way binding handle: the caller owns a *Value[int] and both
// the caller and the widget write through it. Set is a no-op when the new
// value equals the current one, so a write echoed back by a listener cannot
// cycle.
type Value[T comparable] struct {
	current   T
	listeners []func(old, new T)
}

// NewValue creates a value holding v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{current: v}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set replaces the current value and notifies listeners.
// Setting the same value again is a no-op.
func (v *Value[T]) Set(next T) *Value[T] {
	if next == v.current {
		return v
	}
	old := v.current
	v.current = next
	for _, fn := range v.listeners {
		if fn != nil {
			fn(old, next)
		}
	}
	return v
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (v *Value[T]) Subscribe(fn func(old, new T)) func() {
	v.listeners = append(v.listeners, fn)
	idx := len(v.listeners) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		v.listeners[idx] = nil
	}
}
