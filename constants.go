/*
 * Reflex for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"machine"
	"time"
)

/*
 * CONSTANTS
 */
const (
	// LCD on SPI0
	PIN_LCD_SCK machine.Pin = machine.GP18
	PIN_LCD_SDO machine.Pin = machine.GP19
	PIN_LCD_SDI machine.Pin = machine.GP16
	PIN_LCD_CS  machine.Pin = machine.GP17
	PIN_LCD_DC  machine.Pin = machine.GP20
	PIN_LCD_RST machine.Pin = machine.GP21
	PIN_LCD_BL  machine.Pin = machine.GP22

	// Buttons, active low
	PIN_USER_BUTTON     machine.Pin = machine.GP14
	PIN_EXTERNAL_BUTTON machine.Pin = machine.GP15

	// Quiet window after an accepted button edge
	DEBOUNCE_DELAY time.Duration = 200 * time.Millisecond

	// Interrupts drop events once the queue is full
	EVENT_QUEUE_DEPTH int = 8

	SPI_FREQUENCY uint32 = 40000000
)
