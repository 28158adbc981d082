package view

import (
	"unicode"

	"github.com/san-kum/molterm/internal/camera"
)

// Speeds are the per-keypress increments, sourced from config.
type Speeds struct {
	Rot   float64
	Trans float64
	Zoom  float64 // multiplicative, > 1
	Spin  float64
}

// Dispatch applies one key event to the state and reports whether the
// viewer should quit. Letter keys are case-insensitive; unrecognized
// keys are ignored.
//
// Bindings: w/s rotate X, a/d rotate Y, t/g pan Y, f/h pan X,
// i/o zoom, u auto-spin, p cycle continuously, m next model,
// r reset, q/Esc/Ctrl-C quit.
func Dispatch(ev Event, st *State, sp Speeds) bool {
	if ev.Type != EventKey {
		return false
	}
	switch ev.Key {
	case KeyEscape, KeyCtrlC:
		return true
	case KeyRune:
	default:
		return false
	}

	switch unicode.ToLower(ev.Rune) {
	case 'q':
		return true
	case 'w':
		st.Cam.Rotate(camera.AxisX, sp.Rot)
	case 's':
		st.Cam.Rotate(camera.AxisX, -sp.Rot)
	case 'a':
		st.Cam.Rotate(camera.AxisY, -sp.Rot)
	case 'd':
		st.Cam.Rotate(camera.AxisY, sp.Rot)
	case 't':
		st.Cam.Translate(0, sp.Trans)
	case 'g':
		st.Cam.Translate(0, -sp.Trans)
	case 'f':
		st.Cam.Translate(-sp.Trans, 0)
	case 'h':
		st.Cam.Translate(sp.Trans, 0)
	case 'i':
		st.Cam.Zoom(sp.Zoom)
	case 'o':
		st.Cam.Zoom(1 / sp.Zoom)
	case 'u':
		st.AutoSpin = !st.AutoSpin
	case 'p':
		st.ToggleCycling()
	case 'm':
		st.CycleModel()
	case 'r':
		st.Cam.Reset()
	}
	return false
}
