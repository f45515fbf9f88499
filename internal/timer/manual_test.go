package timer

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 8, 15, 19, 0, 0, 0, time.UTC)

func TestManualClock_AdvanceFiresInDueOrder(t *testing.T) {
	clock := NewManualClock(epoch)

	var order []string
	clock.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	clock.AfterFunc(1*time.Second, func() { order = append(order, "a") })
	clock.AfterFunc(2*time.Second, func() { order = append(order, "b1") })
	clock.AfterFunc(2*time.Second, func() { order = append(order, "b2") })

	clock.Advance(2 * time.Second)

	want := []string{"a", "b1", "b2"}
	if len(order) != len(want) {
		t.Fatalf("fired %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
	if clock.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", clock.Pending())
	}
	if got := clock.Now(); !got.Equal(epoch.Add(2 * time.Second)) {
		t.Errorf("Now() = %v, want %v", got, epoch.Add(2*time.Second))
	}
}

func TestManualClock_CallbackSeesDueTime(t *testing.T) {
	clock := NewManualClock(epoch)

	var seen time.Time
	clock.AfterFunc(4*time.Second, func() { seen = clock.Now() })

	clock.Advance(10 * time.Second)

	if !seen.Equal(epoch.Add(4 * time.Second)) {
		t.Errorf("callback saw %v, want %v", seen, epoch.Add(4*time.Second))
	}
}

func TestManualClock_NestedSchedulingWithinAdvance(t *testing.T) {
	clock := NewManualClock(epoch)

	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		clock.AfterFunc(8*time.Second, tick)
	}
	clock.AfterFunc(8*time.Second, tick)

	clock.Advance(24 * time.Second)

	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
	if clock.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", clock.Pending())
	}
}

func TestManualTimer_Stop(t *testing.T) {
	clock := NewManualClock(epoch)

	fired := false
	tm := clock.AfterFunc(time.Second, func() { fired = true })

	if !tm.Stop() {
		t.Error("first Stop() = false, want true")
	}
	if tm.Stop() {
		t.Error("second Stop() = true, want false")
	}

	clock.Advance(time.Minute)
	if fired {
		t.Error("stopped timer fired")
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", clock.Pending())
	}
}

func TestManualTimer_StopAfterFire(t *testing.T) {
	clock := NewManualClock(epoch)

	tm := clock.AfterFunc(time.Second, func() {})
	clock.Advance(time.Second)

	if tm.Stop() {
		t.Error("Stop() after fire = true, want false")
	}
}
