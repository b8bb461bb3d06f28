package arcdial

import "testing"

// fakeScheduler queues yielded functions and runs them on demand, standing
// in for the host's next update cycle.
type fakeScheduler struct {
	queue []func()
}

func (f *fakeScheduler) schedule(fn func()) {
	f.queue = append(f.queue, fn)
}

func (f *fakeScheduler) run() {
	queue := f.queue
	f.queue = nil
	for _, fn := range queue {
		fn()
	}
}

func TestBinderSeed(t *testing.T) {
	t.Run("SeedsFromBoundValue", func(t *testing.T) {
		sched := &fakeScheduler{}
		value := NewValue(70)
		b := NewBinder(NewRange(5, 150), value, sched.schedule, nil)

		if b.State() != StateUninitialized {
			t.Errorf("expected Uninitialized before seed, got %v", b.State())
		}
		b.Seed()
		if b.State() != StateBound {
			t.Errorf("expected Bound after seed, got %v", b.State())
		}
		if v, ok := b.Active(); !ok || v != 70 {
			t.Errorf("expected active 70, got %d (%v)", v, ok)
		}
	})

	t.Run("SeedClampsOutOfRangeValue", func(t *testing.T) {
		value := NewValue(999)
		b := NewBinder(NewRange(0, 100), value, nil, nil)
		b.Seed()
		if v, _ := b.Active(); v != 100 {
			t.Errorf("expected clamped active 100, got %d", v)
		}
	})

	t.Run("SecondSeedIsNoop", func(t *testing.T) {
		value := NewValue(10)
		b := NewBinder(NewRange(0, 100), value, nil, nil)
		b.Seed()
		b.SetActive(20)
		b.Seed()
		if v, _ := b.Active(); v != 20 {
			t.Errorf("expected active unchanged at 20, got %d", v)
		}
	})
}

func TestBinderPropagation(t *testing.T) {
	t.Run("OutwardFromScroll", func(t *testing.T) {
		value := NewValue(70)
		b := NewBinder(NewRange(5, 150), value, nil, nil)
		b.Seed()

		b.SetActive(73)
		if value.Get() != 73 {
			t.Errorf("expected bound value 73, got %d", value.Get())
		}
	})

	t.Run("InwardFromCaller", func(t *testing.T) {
		value := NewValue(70)
		recentered := -1
		b := NewBinder(NewRange(5, 150), value, nil, func(v int) { recentered = v })
		b.Seed()

		value.Set(42)
		if v, _ := b.Active(); v != 42 {
			t.Errorf("expected active 42, got %d", v)
		}
		if recentered != 42 {
			t.Errorf("expected recenter on 42, got %d", recentered)
		}
	})

	t.Run("InwardChangeDoesNotEchoOutward", func(t *testing.T) {
		value := NewValue(70)
		writes := 0
		value.Subscribe(func(_, _ int) { writes++ })
		b := NewBinder(NewRange(5, 150), value, nil, nil)
		b.Seed()

		value.Set(42)
		if writes != 1 {
			t.Errorf("expected exactly one value change, got %d", writes)
		}
		if v, _ := b.Active(); v != 42 {
			t.Errorf("expected active 42, got %d", v)
		}
	})

	t.Run("NoLoopWhenAlreadyEqual", func(t *testing.T) {
		value := NewValue(50)
		writes := 0
		value.Subscribe(func(_, _ int) { writes++ })
		b := NewBinder(NewRange(0, 100), value, nil, nil)
		b.Seed()

		b.SetActive(50)
		value.Set(50)
		if writes != 0 {
			t.Errorf("expected no value changes, got %d", writes)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		value := NewValue(10)
		b := NewBinder(NewRange(0, 100), value, nil, nil)
		b.Seed()

		for _, v := range []int{0, 1, 50, 99, 100} {
			value.Set(v)
			if got, _ := b.Active(); got != v {
				t.Errorf("inward %d: active is %d", v, got)
			}
		}
		for _, v := range []int{100, 7, 0} {
			b.SetActive(v)
			if value.Get() != v {
				t.Errorf("outward %d: value is %d", v, value.Get())
			}
		}
	})
}

func TestBinderSettle(t *testing.T) {
	t.Run("ClearsThenReseedsNextTurn", func(t *testing.T) {
		sched := &fakeScheduler{}
		recenters := 0
		value := NewValue(70)
		b := NewBinder(NewRange(5, 150), value, sched.schedule, func(int) { recenters++ })
		b.Seed()
		recenters = 0

		b.Settle()
		if _, ok := b.Active(); ok {
			t.Error("expected active cleared during settle")
		}
		if b.State() != StateSettling {
			t.Errorf("expected Settling, got %v", b.State())
		}

		sched.run()
		if b.State() != StateBound {
			t.Errorf("expected Bound after reseed, got %v", b.State())
		}
		if v, _ := b.Active(); v != 70 {
			t.Errorf("expected reseed to 70, got %d", v)
		}
		if recenters != 1 {
			t.Errorf("expected one recenter, got %d", recenters)
		}
	})

	t.Run("NeverSettlesOnDifferentValue", func(t *testing.T) {
		sched := &fakeScheduler{}
		value := NewValue(70)
		b := NewBinder(NewRange(5, 150), value, sched.schedule, nil)
		b.Seed()

		b.SetActive(90)
		b.Settle()
		sched.run()
		if v, _ := b.Active(); v != 90 {
			t.Errorf("expected settle on pre-idle value 90, got %d", v)
		}
	})

	t.Run("RapidResettleIsIdempotent", func(t *testing.T) {
		sched := &fakeScheduler{}
		value := NewValue(30)
		b := NewBinder(NewRange(0, 100), value, sched.schedule, nil)
		b.Seed()

		b.Settle()
		b.Settle()
		sched.run()
		if b.State() != StateBound {
			t.Errorf("expected Bound, got %v", b.State())
		}
		if v, _ := b.Active(); v != 30 {
			t.Errorf("expected 30, got %d", v)
		}
	})

	t.Run("ExternalWriteDuringSettleWins", func(t *testing.T) {
		sched := &fakeScheduler{}
		value := NewValue(30)
		b := NewBinder(NewRange(0, 100), value, sched.schedule, nil)
		b.Seed()

		b.Settle()
		value.Set(55) // lands while active is cleared
		sched.run()
		if v, _ := b.Active(); v != 55 {
			t.Errorf("expected reseed from latest value 55, got %d", v)
		}
	})
}

func TestBinderDispose(t *testing.T) {
	value := NewValue(10)
	b := NewBinder(NewRange(0, 100), value, nil, nil)
	b.Seed()
	b.Dispose()

	value.Set(90)
	if v, _ := b.Active(); v != 10 {
		t.Errorf("expected disposed binder to stay at 10, got %d", v)
	}
}
