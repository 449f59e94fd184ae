package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the timeout expires
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before timeout")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSchedulerTicksAndStops(t *testing.T) {
	var steps atomic.Int64
	sc := NewScheduler(time.Millisecond, func() { steps.Add(1) })
	sc.Start()

	waitFor(t, 2*time.Second, func() bool { return steps.Load() >= 5 })
	sc.Stop()

	stopped := steps.Load()
	if uint64(stopped) != sc.Ticks() {
		t.Errorf("Ticks() = %d, step ran %d times", sc.Ticks(), stopped)
	}
	time.Sleep(10 * time.Millisecond)
	if steps.Load() != stopped {
		t.Error("step ran after Stop returned")
	}
	sc.Stop() // idempotent
}

func TestSchedulerPause(t *testing.T) {
	var steps atomic.Int64
	sc := NewScheduler(time.Millisecond, func() { steps.Add(1) })
	sc.Start()
	defer sc.Stop()

	waitFor(t, 2*time.Second, func() bool { return steps.Load() >= 1 })
	sc.Pause()
	if !sc.Paused() {
		t.Fatal("Paused() = false after Pause")
	}
	time.Sleep(5 * time.Millisecond)
	held := steps.Load()
	time.Sleep(20 * time.Millisecond)
	if steps.Load() != held {
		t.Errorf("steps advanced from %d to %d while paused", held, steps.Load())
	}

	sc.Resume()
	waitFor(t, 2*time.Second, func() bool { return steps.Load() > held })
}

func TestSchedulerCrashHandler(t *testing.T) {
	got := make(chan any, 1)
	sc := NewScheduler(time.Millisecond, func() { panic("boom") })
	sc.SetCrashHandler(func(r any) { got <- r })
	sc.Start()
	defer sc.Stop()

	select {
	case r := <-got:
		if r != "boom" {
			t.Errorf("crash handler got %v, want boom", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler not called")
	}
}

func TestSchedulerStopBeforeStart(t *testing.T) {
	sc := NewScheduler(time.Millisecond, func() {})
	done := make(chan struct{})
	go func() {
		sc.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a scheduler that never started")
	}
}
