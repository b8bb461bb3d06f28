package arcdial

// Range is an inclusive integer interval of selectable values.
type Range struct {
	Lo, Hi int
}

// NewRange creates a range, swapping the bounds if given in reverse order.
func NewRange(lo, hi int) Range {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Lo: lo, Hi: hi}
}

// Count returns the number of selectable values.
func (r Range) Count() int {
	return r.Hi - r.Lo + 1
}

// Contains returns true if v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Lo && v <= r.Hi
}

// Clamp forces v into the range.
func (r Range) Clamp(v int) int {
	if v < r.Lo {
		return r.Lo
	}
	if v > r.Hi {
		return r.Hi
	}
	return v
}

// Ticks derives the ordered tick sequence for a range. Ticks are not stored:
// the i-th tick's value is Lo+i.
type Ticks struct {
	rng  Range
	freq int // large tick interval, always >= 1
}

// NewTicks creates the tick sequence for r. A non-positive largeTickFrequency
// is treated as 1 (every tick large) rather than left to misbehave in the
// modulo below.
func NewTicks(r Range, largeTickFrequency int) Ticks {
	if largeTickFrequency < 1 {
		largeTickFrequency = 1
	}
	return Ticks{rng: r, freq: largeTickFrequency}
}

// Range returns the underlying range.
func (t Ticks) Range() Range {
	return t.rng
}

// Len returns the number of ticks.
func (t Ticks) Len() int {
	return t.rng.Count()
}

// Value returns the value of the tick at 0-based index i.
// Indices outside the sequence are clamped to the nearest end.
func (t Ticks) Value(i int) int {
	if i < 0 {
		i = 0
	}
	if i > t.Len()-1 {
		i = t.Len() - 1
	}
	return t.rng.Lo + i
}

// Index returns the 0-based index of value v, clamped into the sequence.
func (t Ticks) Index(v int) int {
	return t.rng.Clamp(v) - t.rng.Lo
}

// IsLarge returns true if the tick at index i renders as a large tick.
func (t Ticks) IsLarge(i int) bool {
	return i%t.freq == 0
}

// Values returns the full sequence as a slice. Mostly for tests and small
// ranges; render paths index directly instead.
func (t Ticks) Values() []int {
	vals := make([]int, t.Len())
	for i := range vals {
		vals[i] = t.rng.Lo + i
	}
	return vals
}
