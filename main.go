/*
 * Reflex for Raspberry Pi Pico
 * Go version
 *
 * A reaction timer: wait for the go signal, press the user button as
 * fast as you can. The external button resets the session.
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/tinyfont/freesans"

	"reflex/debounce"
	"reflex/game"
	"reflex/screen"
	"reflex/timing"
)

/*
 *  Globals
 */
// Button edge guards, consulted in interrupt context
var userGuard *debounce.Guard
var externalGuard *debounce.Guard

// Every stimulus funnels through this queue so the state machine only
// ever sees one event at a time
var events chan game.Event

func main() {

	events = make(chan game.Event, EVENT_QUEUE_DEPTH)
	userGuard = debounce.New(timing.SystemClock, DEBOUNCE_DELAY)
	externalGuard = debounce.New(timing.SystemClock, DEBOUNCE_DELAY)

	// Set up the hardware or fail
	lcd, ok := setup()
	if !ok {
		failLoop()
	}

	reflex := game.New(timing.SystemClock, lcd, &boardLED{}, game.DefaultConfig(), postEvent)
	reflex.Start()

	// Run the game forever
	for ev := range events {
		reflex.HandleEvent(ev)
	}
}

/*
 *  Initialisation Functions
 */
func setup() (*screen.Screen, bool) {
	// Set up the LCD bus
	spi := machine.SPI0
	err := spi.Configure(machine.SPIConfig{
		Frequency: SPI_FREQUENCY,
		SCK:       PIN_LCD_SCK,
		SDO:       PIN_LCD_SDO,
		SDI:       PIN_LCD_SDI,
	})
	if err != nil {
		// Couldn't configure SPI
		return nil, false
	}

	PIN_LCD_BL.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_LCD_BL.High()

	panel := ili9341.NewSPI(spi, PIN_LCD_DC, PIN_LCD_CS, PIN_LCD_RST)
	panel.Configure(ili9341.Config{})

	// Buttons deliver falling-edge interrupts
	PIN_USER_BUTTON.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	if err := PIN_USER_BUTTON.SetInterrupt(machine.PinFalling, onUserButtonPress); err != nil {
		return nil, false
	}

	PIN_EXTERNAL_BUTTON.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	if err := PIN_EXTERNAL_BUTTON.SetInterrupt(machine.PinFalling, onExternalButtonPress); err != nil {
		return nil, false
	}

	// Onboard LED
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.LED.Low()

	ink := color.RGBA{R: 0x00, G: 0x00, B: 0x8B, A: 0xFF}
	return screen.New(panel, &freesans.Regular12pt7b, ink), true
}

/*
 *  Interrupt handlers
 */
func onUserButtonPress(machine.Pin) {
	if userGuard.OnEdge() {
		postEvent(game.EventUserButton)
	}
}

func onExternalButtonPress(machine.Pin) {
	if externalGuard.OnEdge() {
		postEvent(game.EventExternalButton)
	}
}

// postEvent queues an event without blocking; interrupt context and timer
// callbacks cannot wait on the queue
func postEvent(ev game.Event) {
	select {
	case events <- ev:
	default:
	}
}

/*
 *  LED output
 */
// boardLED drives the Pico's onboard LED, tracking its level so the
// blink ticker can toggle it
type boardLED struct {
	on bool
}

func (l *boardLED) Set(on bool) {
	l.on = on
	machine.LED.Set(on)
}

func (l *boardLED) Toggle() {
	l.Set(!l.on)
}

/*
 *  Misc Functions
 */
func failLoop() {

	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * 100)
		led.High()
		time.Sleep(time.Millisecond * 100)
	}
}
