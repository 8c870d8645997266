package timing

import (
	"testing"
	"time"
)

func TestStopwatchElapsed(t *testing.T) {
	clock := NewFakeClock()
	sw := NewStopwatch(clock)

	sw.Reset()
	sw.Start()
	clock.Advance(350*time.Millisecond + 400*time.Microsecond)
	sw.Stop()

	if got := sw.Elapsed(); got != 350*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 350ms", got)
	}
}

func TestStopwatchStopWithoutStart(t *testing.T) {
	clock := NewFakeClock()
	sw := NewStopwatch(clock)

	clock.Advance(time.Second)
	sw.Stop()

	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed() = %v, want 0", got)
	}
}

func TestStopwatchReset(t *testing.T) {
	clock := NewFakeClock()
	sw := NewStopwatch(clock)

	sw.Start()
	clock.Advance(time.Second)
	sw.Stop()
	sw.Reset()

	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed() after Reset = %v, want 0", got)
	}
}

func TestOneShotFiresOnce(t *testing.T) {
	clock := NewFakeClock()
	os := NewOneShot(clock)

	fired := 0
	os.Start(100*time.Millisecond, func() { fired++ })

	clock.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatal("fired before the delay elapsed")
	}
	clock.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	clock.Advance(10 * time.Second)
	if fired != 1 {
		t.Errorf("one-shot fired again, fired = %d", fired)
	}
}

func TestOneShotCancel(t *testing.T) {
	clock := NewFakeClock()
	os := NewOneShot(clock)

	fired := 0
	os.Start(100*time.Millisecond, func() { fired++ })
	os.Cancel()
	clock.Advance(time.Second)

	if fired != 0 {
		t.Errorf("cancelled one-shot fired %d times", fired)
	}
}

func TestOneShotCancelWithoutStart(t *testing.T) {
	os := NewOneShot(NewFakeClock())
	os.Cancel()
}

func TestOneShotStartReplaces(t *testing.T) {
	clock := NewFakeClock()
	os := NewOneShot(clock)

	first, second := 0, 0
	os.Start(100*time.Millisecond, func() { first++ })
	os.Start(250*time.Millisecond, func() { second++ })

	clock.Advance(200 * time.Millisecond)
	if first != 0 {
		t.Error("replaced one-shot fired")
	}
	clock.Advance(50 * time.Millisecond)
	if second != 1 {
		t.Errorf("second = %d, want 1", second)
	}
}

func TestTickerCadence(t *testing.T) {
	clock := NewFakeClock()
	tk := NewTicker(clock)

	ticks := 0
	tk.Start(100*time.Millisecond, func() { ticks++ })
	clock.Advance(1050 * time.Millisecond)

	if ticks != 10 {
		t.Errorf("ticks = %d, want 10", ticks)
	}

	tk.Stop()
	clock.Advance(time.Second)
	if ticks != 10 {
		t.Errorf("stopped ticker kept ticking, ticks = %d", ticks)
	}
}

func TestTickerRestartReplacesCadence(t *testing.T) {
	clock := NewFakeClock()
	tk := NewTicker(clock)

	fast, slow := 0, 0
	tk.Start(100*time.Millisecond, func() { fast++ })
	clock.Advance(350 * time.Millisecond)
	if fast != 3 {
		t.Fatalf("fast = %d, want 3", fast)
	}

	tk.Start(500*time.Millisecond, func() { slow++ })
	clock.Advance(time.Second)

	if fast != 3 {
		t.Errorf("old cadence still running, fast = %d", fast)
	}
	if slow != 2 {
		t.Errorf("slow = %d, want 2", slow)
	}
}

func TestFakeClockFiresInOrder(t *testing.T) {
	clock := NewFakeClock()

	var order []int
	clock.AfterFunc(200*time.Millisecond, func() { order = append(order, 2) })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, 1) })
	clock.Advance(300 * time.Millisecond)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("fire order = %v, want [1 2]", order)
	}
}

func TestFakeClockNowTracksFiringTimer(t *testing.T) {
	clock := NewFakeClock()
	start := clock.Now()

	var at time.Duration
	clock.AfterFunc(100*time.Millisecond, func() { at = clock.Now().Sub(start) })
	clock.Advance(time.Second)

	if at != 100*time.Millisecond {
		t.Errorf("Now() inside callback = start+%v, want start+100ms", at)
	}
	if got := clock.Now().Sub(start); got != time.Second {
		t.Errorf("Now() after Advance = start+%v, want start+1s", got)
	}
}
