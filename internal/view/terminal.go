// Package view drives the interactive Braille viewer: an explicit
// control loop that owns the camera and view state, polls the terminal
// for key events with a bounded timeout, and redraws the full frame
// every tick.
package view

import "time"

type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventClosed reports that the terminal went away; the loop exits
	// cleanly.
	EventClosed
)

type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyRune
	KeyEscape
	KeyCtrlC
)

// Event is one terminal event. For EventKey, Key distinguishes
// printable runes from the quit control keys.
type Event struct {
	Type EventType
	Key  SpecialKey
	Rune rune
}

// Terminal is the I/O capability the control loop consumes. The tcell
// implementation backs real sessions; tests substitute a scripted
// fake.
type Terminal interface {
	// Init enters raw mode and prepares the screen.
	Init() error

	// Fini restores the terminal. Must be safe to call on every exit
	// path, including after Init failure.
	Fini()

	// Size returns the terminal dimensions in character cells.
	Size() (cols, rows int)

	// Poll waits up to timeout for the next event. ok is false when
	// the timeout expired with no event. A zero timeout polls without
	// blocking.
	Poll(timeout time.Duration) (Event, bool)

	// WriteFrame overwrites the whole screen with the header lines
	// followed by the rendered body.
	WriteFrame(header, body []string) error
}
