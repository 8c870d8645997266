package timing

import "time"

// FakeClock is a Clock for tests. Advance moves time forward and fires
// due callbacks in timestamp order on the calling goroutine, so the test
// observes the same sequential delivery the hardware event loop gives the
// machine. Callbacks may schedule further timers; any that land inside
// the advance window fire too. Not safe for concurrent use.
type FakeClock struct {
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	when    time.Time
	fn      func()
	stopped bool
	fired   bool
}

func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(0, 0)}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

func (c *FakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{when: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.when
		t.fired = true
		t.fn()
	}
	c.now = target
}

func (c *FakeClock) nextDue(target time.Time) *fakeTimer {
	var due *fakeTimer
	for _, t := range c.timers {
		if t.stopped || t.fired || t.when.After(target) {
			continue
		}
		if due == nil || t.when.Before(due.when) {
			due = t
		}
	}
	return due
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
