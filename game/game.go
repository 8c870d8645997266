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
package game

import (
	"image/color"
	"math/rand"
	"strconv"
	"time"

	"reflex/timing"
)

// Phase is the game's current state and the sole source of truth for
// interpreting incoming events.
type Phase uint8

const (
	PhasePreGame Phase = iota
	PhaseWaiting
	PhaseArmed
	PhaseResult
	PhaseCheating
)

func (p Phase) String() string {
	switch p {
	case PhasePreGame:
		return "pregame"
	case PhaseWaiting:
		return "waiting"
	case PhaseArmed:
		return "armed"
	case PhaseResult:
		return "result"
	case PhaseCheating:
		return "cheating"
	}
	return "unknown"
}

// Event is one of the three stimuli the machine reacts to.
type Event uint8

const (
	EventUserButton Event = iota
	EventExternalButton
	EventGoSignal
)

// NoRecord is the best-time sentinel before any round has finished.
const NoRecord uint32 = ^uint32(0)

/*
 * CONSTANTS
 */
const (
	// Status strings
	textPressToStart = "Press to start"
	textWait         = "Wait..."
	textGo           = "GO!"
	textPressNow     = "Press button now!"
	textCheating     = "Cheating!"

	// Text rows
	rowTop    int16 = 40
	rowBottom int16 = 80
)

var backgroundColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Config carries the game's timing parameters.
type Config struct {
	// Go-signal delay range, closed-open
	MinDelay time.Duration
	MaxDelay time.Duration

	// LED blink periods
	IdleBlinkPeriod  time.Duration
	CheatBlinkPeriod time.Duration

	// RNG seed, taken once at boot
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		MinDelay:         1000 * time.Millisecond,
		MaxDelay:         5000 * time.Millisecond,
		IdleBlinkPeriod:  100 * time.Millisecond,
		CheatBlinkPeriod: 500 * time.Millisecond,
		Seed:             time.Now().UnixNano(),
	}
}

// Machine owns every piece of game state: the phase, the reaction record,
// the stopwatch, the pending go-signal delay and the blink ticker. It is
// the single consumer of events; HandleEvent must not be entered by more
// than one goroutine, so the hardware funnels button interrupts and timer
// callbacks through one queue.
type Machine struct {
	cfg     Config
	display Display
	led     LED
	rng     *rand.Rand
	post    func(Event)

	phase     Phase
	current   uint32
	best      uint32
	goDelay   *timing.OneShot
	blink     *timing.Ticker
	stopwatch *timing.Stopwatch
}

// New builds a machine in the pre-game phase. post delivers the machine's
// own timer events; the hardware passes its event-queue enqueue so they
// serialise with button presses. A nil post handles them inline.
func New(clock timing.Clock, display Display, led LED, cfg Config, post func(Event)) *Machine {
	m := &Machine{
		cfg:       cfg,
		display:   display,
		led:       led,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		best:      NoRecord,
		goDelay:   timing.NewOneShot(clock),
		blink:     timing.NewTicker(clock),
		stopwatch: timing.NewStopwatch(clock),
	}
	if post == nil {
		post = m.HandleEvent
	}
	m.post = post
	return m
}

// Start enters the pre-game phase: idle blink and the start prompt.
func (m *Machine) Start() {
	m.startPreGame()
}

// HandleEvent is the sole entry point for button and timer events. A
// go signal arriving in any phase but Waiting is stale -- its delay was
// cancelled on exit, or the press that beat it was dequeued first -- and
// is dropped.
func (m *Machine) HandleEvent(ev Event) {
	if ev == EventExternalButton {
		m.resetGame()
		return
	}

	switch m.phase {
	case PhasePreGame:
		if ev == EventUserButton {
			m.startRound()
		}
	case PhaseWaiting:
		if ev == EventUserButton {
			m.detectCheating()
		} else if ev == EventGoSignal {
			m.onGoSignal()
		}
	case PhaseArmed:
		if ev == EventUserButton {
			m.showResult()
		}
	case PhaseResult:
		if ev == EventUserButton {
			m.startPreGame()
		}
	case PhaseCheating:
		if ev == EventUserButton {
			m.startPreGame()
		}
	}
}

func (m *Machine) Phase() Phase {
	return m.phase
}

// CurrentMillis is the last round's reaction time in whole milliseconds.
func (m *Machine) CurrentMillis() uint32 {
	return m.current
}

// BestMillis is the session's fastest reaction time, or NoRecord.
func (m *Machine) BestMillis() uint32 {
	return m.best
}

/*
 * State entry functions
 *
 * Every entry function first cancels whatever timers the new phase has
 * no use for, so a stale callback can never fire into the wrong phase.
 */
func (m *Machine) startPreGame() {
	m.goDelay.Cancel()
	m.phase = PhasePreGame
	m.led.Set(false)
	m.blink.Start(m.cfg.IdleBlinkPeriod, m.led.Toggle)
	m.display.Clear(backgroundColor)
	m.display.DrawText(0, rowTop, textPressToStart, AlignCenter)
}

func (m *Machine) startRound() {
	m.blink.Stop()
	m.led.Set(false)
	m.phase = PhaseWaiting
	m.goDelay.Start(m.nextDelay(), func() { m.post(EventGoSignal) })
	m.display.Clear(backgroundColor)
	m.display.DrawText(0, rowTop, textWait, AlignCenter)
}

func (m *Machine) onGoSignal() {
	m.phase = PhaseArmed
	m.led.Set(true)
	m.stopwatch.Reset()
	m.stopwatch.Start()
	m.display.Clear(backgroundColor)
	m.display.DrawText(0, rowTop, textGo, AlignCenter)
	m.display.DrawText(0, rowBottom, textPressNow, AlignCenter)
}

func (m *Machine) showResult() {
	m.stopwatch.Stop()
	m.current = uint32(m.stopwatch.Elapsed().Milliseconds())
	if m.current < m.best {
		m.best = m.current
	}
	m.phase = PhaseResult
	m.display.Clear(backgroundColor)
	m.display.DrawText(0, rowTop, "Current: "+formatMillis(m.current), AlignCenter)
	m.display.DrawText(0, rowBottom, "Fastest: "+formatMillis(m.best), AlignCenter)
}

func (m *Machine) detectCheating() {
	// The pending go signal must die before anything else changes
	m.goDelay.Cancel()
	m.phase = PhaseCheating
	m.stopwatch.Stop()
	m.led.Set(false)
	m.blink.Start(m.cfg.CheatBlinkPeriod, m.led.Toggle)
	m.display.Clear(backgroundColor)
	m.display.DrawText(0, rowTop, textCheating, AlignCenter)
}

func (m *Machine) resetGame() {
	m.goDelay.Cancel()
	m.blink.Stop()
	m.stopwatch.Stop()
	m.best = NoRecord
	m.current = 0
	m.led.Set(false)
	m.startPreGame()
}

/*
 * Misc functions
 */
// nextDelay samples the go-signal delay, uniform over [MinDelay, MaxDelay).
func (m *Machine) nextDelay() time.Duration {
	span := int64(m.cfg.MaxDelay - m.cfg.MinDelay)
	return m.cfg.MinDelay + time.Duration(m.rng.Int63n(span))
}

func formatMillis(ms uint32) string {
	return strconv.FormatUint(uint64(ms), 10) + " ms"
}
