package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/molterm/internal/camera"
	"github.com/san-kum/molterm/internal/render"
	"github.com/san-kum/molterm/internal/structure"
)

const (
	headerRows = 2
	minCols    = 2
	minRows    = 2

	helpLine = "W/A/S/D rotate  T/F/G/H pan  I/O zoom  U spin  P cycle  M model  R reset  Q quit"
)

// Options configures one viewer session.
type Options struct {
	Size   float64
	FPS    int
	Speeds Speeds
}

// Run owns the terminal for the whole session: raw mode is entered
// once and restored on every exit path by the deferred Fini. Each tick
// waits at most one frame period for input, applies the auto-spin
// increment first, then key events in arrival order, then redraws.
func Run(term Terminal, st *State, opts Options) error {
	if opts.FPS < 1 {
		opts.FPS = 1
	}
	framePeriod := time.Second / time.Duration(opts.FPS)

	if err := term.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer term.Fini()

	grid := render.NewGrid(gridSize(term))

	// First frame before any input so the structure is visible
	// immediately.
	if err := draw(term, grid, st, opts.Size); err != nil {
		return err
	}

	for {
		events := make([]Event, 0, 4)
		if ev, ok := term.Poll(framePeriod); ok {
			events = append(events, ev)
		}
		// Drain whatever else arrived in this poll window; events are
		// applied strictly in arrival order.
		for {
			ev, ok := term.Poll(0)
			if !ok {
				break
			}
			events = append(events, ev)
		}

		// Composition order is fixed: the auto-spin increment comes
		// before any key-triggered rotation from the same tick.
		if st.AutoSpin {
			st.Cam.Rotate(camera.AxisY, opts.Speeds.Spin)
		}

		for _, ev := range events {
			switch ev.Type {
			case EventResize:
				grid.Resize(gridSize(term))
			case EventClosed:
				return nil
			default:
				if Dispatch(ev, st, opts.Speeds) {
					return nil
				}
			}
		}

		if st.Cycling {
			st.CycleModel()
		}

		if err := draw(term, grid, st, opts.Size); err != nil {
			return err
		}
	}
}

// gridSize reserves the header rows and clamps to a minimum usable
// size so a degenerate terminal shrinks the view instead of failing.
func gridSize(term Terminal) (cols, rows int) {
	cols, rows = term.Size()
	rows -= headerRows
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	return cols, rows
}

func draw(term Terminal, grid *render.Grid, st *State, size float64) error {
	pts := structure.Visible(st.Model(), st.Chain)
	render.Frame(grid, pts, st.Cam, size)
	if err := term.WriteFrame(header(st), grid.Frame()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func header(st *State) []string {
	m := st.Model()
	ids := m.ChainIDs()
	info := fmt.Sprintf("%s with %d models, %d chains (%s), %d atoms.",
		st.Structure.Path, len(st.Structure.Models), len(ids), strings.Join(ids, ""), m.AtomCount())
	if len(st.Structure.Models) > 1 {
		info += fmt.Sprintf("  [model %d/%d]", st.ModelIdx+1, len(st.Structure.Models))
	}
	if st.Chain != "" {
		info += fmt.Sprintf("  [chain %s]", st.Chain)
	}
	if st.AutoSpin {
		info += "  [spin]"
	}
	return []string{info, helpLine}
}
