package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler calls a step function on a fixed tick from its own goroutine
// Missed deadlines are caught up by at most two ticks, then the schedule is
// rebased on the current time
type Scheduler struct {
	interval time.Duration
	step     func()

	paused  atomic.Bool
	ticks   atomic.Uint64
	running atomic.Bool

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	crashHandler func(any)
}

// NewScheduler creates a stopped scheduler
func NewScheduler(interval time.Duration, step func()) *Scheduler {
	return &Scheduler{
		interval: interval,
		step:     step,
		stopChan: make(chan struct{}),
	}
}

// SetCrashHandler installs a handler for panics raised by step; must be called
// before Start
// Without a handler the panic propagates and terminates the process
func (sc *Scheduler) SetCrashHandler(fn func(any)) {
	sc.crashHandler = fn
}

// Start begins the tick loop
func (sc *Scheduler) Start() {
	if sc.running.CompareAndSwap(false, true) {
		sc.wg.Add(1)
		go sc.loop()
	}
}

// Stop halts the tick loop and waits for an in-flight step to finish
func (sc *Scheduler) Stop() {
	sc.stopOnce.Do(func() {
		close(sc.stopChan)
		if sc.running.Load() {
			sc.wg.Wait()
		}
	})
}

// Pause suspends ticking without stopping the goroutine
func (sc *Scheduler) Pause() { sc.paused.Store(true) }

// Resume continues ticking; the schedule restarts from now
func (sc *Scheduler) Resume() { sc.paused.Store(false) }

// Paused reports whether ticking is suspended
func (sc *Scheduler) Paused() bool { return sc.paused.Load() }

// Ticks returns the number of completed steps
func (sc *Scheduler) Ticks() uint64 { return sc.ticks.Load() }

func (sc *Scheduler) loop() {
	defer sc.wg.Done()
	if sc.crashHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				sc.crashHandler(r)
			}
		}()
	}

	timer := time.NewTimer(sc.interval)
	defer timer.Stop()
	deadline := time.Now().Add(sc.interval)

	for {
		var sleep time.Duration
		now := time.Now()

		switch {
		case sc.paused.Load():
			// Poll slower while paused; the next tick is one interval after resume
			sleep = sc.interval * 2
			deadline = now.Add(sc.interval)
		case !now.Before(deadline):
			sc.step()
			sc.ticks.Add(1)

			deadline = deadline.Add(sc.interval)
			if now.Sub(deadline) > sc.interval*2 {
				deadline = now.Add(sc.interval)
			}
			sleep = max(time.Until(deadline), 0)
		default:
			sleep = deadline.Sub(now)
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-sc.stopChan:
			return
		}
	}
}
