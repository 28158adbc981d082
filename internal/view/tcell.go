package view

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellTerminal adapts a tcell screen to the Terminal interface.
// Events are pumped from tcell's blocking PollEvent into a buffered
// channel by a single goroutine, so the control loop's Poll is the
// only place anything waits.
type TcellTerminal struct {
	screen tcell.Screen
	events chan Event
}

func NewTcellTerminal() (*TcellTerminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &TcellTerminal{screen: s}, nil
}

func (t *TcellTerminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()

	t.events = make(chan Event, 64)
	go t.pump()
	return nil
}

// Fini restores the terminal. tcell's Fini also unblocks the pump
// goroutine: PollEvent returns nil after finalization.
func (t *TcellTerminal) Fini() {
	t.screen.Fini()
}

func (t *TcellTerminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			out := Event{Type: EventKey}
			switch ev.Key() {
			case tcell.KeyEscape:
				out.Key = KeyEscape
			case tcell.KeyCtrlC:
				out.Key = KeyCtrlC
			case tcell.KeyRune:
				out.Key = KeyRune
				out.Rune = ev.Rune()
			default:
				continue
			}
			t.events <- out
		case *tcell.EventResize:
			t.events <- Event{Type: EventResize}
		}
	}
}

func (t *TcellTerminal) Size() (cols, rows int) {
	return t.screen.Size()
}

func (t *TcellTerminal) Poll(timeout time.Duration) (Event, bool) {
	if timeout <= 0 {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return Event{Type: EventClosed}, true
			}
			return ev, true
		default:
			return Event{}, false
		}
	}
	select {
	case ev, ok := <-t.events:
		if !ok {
			return Event{Type: EventClosed}, true
		}
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

var (
	styleBody   = tcell.StyleDefault
	styleInfo   = tcell.StyleDefault.Bold(true)
	styleHelp   = tcell.StyleDefault.Dim(true)
	headerStyle = []tcell.Style{styleInfo, styleHelp}
)

// WriteFrame repaints every cell. tcell diffs internally, but the
// viewer's contract is a full overwrite so stale cells can never
// survive a camera or selection change.
func (t *TcellTerminal) WriteFrame(header, body []string) error {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	y := 0
	for i, line := range header {
		style := styleBody
		if i < len(headerStyle) {
			style = headerStyle[i]
		}
		t.putLine(y, line, style, cols)
		y++
		if y >= rows {
			break
		}
	}
	for _, line := range body {
		if y >= rows {
			break
		}
		t.putLine(y, line, styleBody, cols)
		y++
	}
	t.screen.Show()
	return nil
}

func (t *TcellTerminal) putLine(y int, line string, style tcell.Style, cols int) {
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
