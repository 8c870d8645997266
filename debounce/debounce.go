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
package debounce

import (
	"sync/atomic"
	"time"

	"reflex/timing"
)

// DefaultWindow is the quiet period after an accepted edge.
const DefaultWindow = 200 * time.Millisecond

// Guard rate-limits the edges of one physical button. It keeps no queue:
// edges arriving inside the quiet window are dropped outright.
type Guard struct {
	clock  timing.Clock
	window time.Duration
	active atomic.Bool
}

func New(clock timing.Clock, window time.Duration) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Guard{clock: clock, window: window}
}

// OnEdge reports whether the edge is accepted. An accepted edge arms the
// quiet window and a one-shot clears it. OnEdge runs in interrupt context,
// so the flag is a single CAS word: an edge landing mid-clear can never
// observe a half-updated guard.
func (g *Guard) OnEdge() bool {
	if !g.active.CompareAndSwap(false, true) {
		return false
	}
	g.clock.AfterFunc(g.window, func() {
		g.active.Store(false)
	})
	return true
}
