/*
 * Reflex for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package timing

import (
	"sync/atomic"
	"time"
)

// OneShot schedules a single delayed callback. Start replaces any pending
// callback on the same OneShot, and a replaced or cancelled callback never
// runs even if its underlying timer has already fired: each Start bumps a
// generation counter and the fire path checks it before invoking.
type OneShot struct {
	clock Clock
	gen   atomic.Uint32
	timer Timer
}

func NewOneShot(clock Clock) *OneShot {
	return &OneShot{clock: clock}
}

// Start arms the callback to run once after d, dropping any pending one.
func (o *OneShot) Start(d time.Duration, fn func()) {
	gen := o.gen.Add(1)
	if o.timer != nil {
		o.timer.Stop()
	}
	o.timer = o.clock.AfterFunc(d, func() {
		if o.gen.Load() == gen {
			fn()
		}
	})
}

// Cancel drops the pending callback if there is one.
func (o *OneShot) Cancel() {
	o.gen.Add(1)
	if o.timer != nil {
		o.timer.Stop()
	}
}

// Ticker invokes a callback at a fixed cadence. Restarting with a new
// period invalidates the old chain before the new one is armed, so two
// cadences can never run at once.
type Ticker struct {
	clock Clock
	gen   atomic.Uint32
	timer Timer
}

func NewTicker(clock Clock) *Ticker {
	return &Ticker{clock: clock}
}

func (t *Ticker) Start(period time.Duration, fn func()) {
	gen := t.gen.Add(1)
	if t.timer != nil {
		t.timer.Stop()
	}
	t.schedule(gen, period, fn)
}

func (t *Ticker) Stop() {
	t.gen.Add(1)
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *Ticker) schedule(gen uint32, period time.Duration, fn func()) {
	t.timer = t.clock.AfterFunc(period, func() {
		if t.gen.Load() != gen {
			return
		}
		fn()
		// fn may have stopped or restarted the ticker
		if t.gen.Load() == gen {
			t.schedule(gen, period, fn)
		}
	})
}

// Stopwatch measures a single interval. Elapsed is valid once Stop has
// been called and is truncated to whole milliseconds.
type Stopwatch struct {
	clock     Clock
	startedAt time.Time
	elapsed   time.Duration
	running   bool
}

func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
}

func (s *Stopwatch) Start() {
	s.startedAt = s.clock.Now()
	s.running = true
}

func (s *Stopwatch) Stop() {
	if s.running {
		s.elapsed = s.clock.Now().Sub(s.startedAt)
		s.running = false
	}
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed.Truncate(time.Millisecond)
}
