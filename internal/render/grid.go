// Package render rasterizes projected atom positions into Unicode
// Braille frames. Each terminal character packs a 2x4 block of
// sub-pixels; a per-sub-pixel depth buffer keeps the nearest atom when
// several land on the same dot.
package render

import "strings"

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Grid is a sub-pixel occupancy and depth buffer sized Cols*2 by
// Rows*4. Depth is camera-space Z with larger values nearer the
// viewer.
type Grid struct {
	Cols, Rows int
	occupied   []bool
	depth      []float64
}

func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	return g
}

// SubWidth is the grid width in sub-pixels.
func (g *Grid) SubWidth() int { return g.Cols * 2 }

// SubHeight is the grid height in sub-pixels.
func (g *Grid) SubHeight() int { return g.Rows * 4 }

// Resize reallocates the buffers for a new terminal size. Dimensions
// are clamped to at least one cell so a degenerate terminal never
// produces an invalid grid.
func (g *Grid) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.Cols, g.Rows = cols, rows
	g.occupied = make([]bool, cols*2*rows*4)
	g.depth = make([]float64, cols*2*rows*4)
}

// Clear empties every sub-pixel. Called once per frame.
func (g *Grid) Clear() {
	for i := range g.occupied {
		g.occupied[i] = false
		g.depth[i] = 0
	}
}

// Plot sets the sub-pixel at (x, y) if it is empty or the new point is
// nearer than the current occupant. Out-of-bounds points are dropped.
func (g *Grid) Plot(x, y int, depth float64) {
	if x < 0 || y < 0 || x >= g.SubWidth() || y >= g.SubHeight() {
		return
	}
	i := y*g.SubWidth() + x
	if g.occupied[i] && g.depth[i] >= depth {
		return
	}
	g.occupied[i] = true
	g.depth[i] = depth
}

// Line plots a Bresenham line between two sub-pixels, interpolating
// depth along the run.
func (g *Grid) Line(x0, y0, x1, y1 int, d0, d1 float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := dx
	if dy > steps {
		steps = dy
	}
	err := dx - dy

	x, y, n := x0, y0, 0
	for {
		t := 0.0
		if steps > 0 {
			t = float64(n) / float64(steps)
		}
		g.Plot(x, y, d0+(d1-d0)*t)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		n++
	}
}

// Rune packs the 2x4 block for one terminal cell into its Braille
// codepoint. An empty block yields the blank pattern U+2800.
func (g *Grid) Rune(col, row int) rune {
	r := rune(brailleBase)
	for subY := 0; subY < 4; subY++ {
		for subX := 0; subX < 2; subX++ {
			i := (row*4+subY)*g.SubWidth() + col*2 + subX
			if g.occupied[i] {
				r |= pixelMap[subY][subX]
			}
		}
	}
	return r
}

// Frame renders the whole grid, one line per terminal row. Blank
// blocks become plain spaces so the frame copies cleanly out of a
// terminal.
func (g *Grid) Frame() []string {
	lines := make([]string, g.Rows)
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		b.Reset()
		for col := 0; col < g.Cols; col++ {
			r := g.Rune(col, row)
			if r == brailleBase {
				b.WriteRune(' ')
			} else {
				b.WriteRune(r)
			}
		}
		lines[row] = b.String()
	}
	return lines
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
