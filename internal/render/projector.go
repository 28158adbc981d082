package render

import (
	"math"

	"github.com/san-kum/molterm/internal/camera"
	"github.com/san-kum/molterm/internal/structure"
)

// Project maps a camera-space point into sub-pixel grid coordinates.
// The camera-space box [-size/2, size/2] maps linearly onto the grid,
// scaled by the smaller grid dimension so aspect is preserved.
// Terminal rows grow downward, so world +Y maps to decreasing sy.
// Returns ok=false for points outside the grid.
func Project(p camera.Vec3, size float64, subW, subH int) (sx, sy int, depth float64, ok bool) {
	if size <= 0 || subW < 1 || subH < 1 {
		return 0, 0, 0, false
	}
	minDim := float64(subW)
	if float64(subH) < minDim {
		minDim = float64(subH)
	}
	scale := minDim / size

	fx := float64(subW)/2 + p.X*scale
	fy := float64(subH)/2 - p.Y*scale
	sx = int(math.Round(fx))
	sy = int(math.Round(fy))
	if sx < 0 || sy < 0 || sx >= subW || sy >= subH {
		return sx, sy, p.Z, false
	}
	return sx, sy, p.Z, true
}

// Frame runs one full rasterization pass: clear the grid, transform
// every visible point through the camera, plot in-bounds atoms with
// nearest-wins depth, and trace bonded pairs whose endpoints both
// landed on the grid.
func Frame(g *Grid, pts []structure.Point, cam *camera.Camera, size float64) {
	g.Clear()
	subW, subH := g.SubWidth(), g.SubHeight()

	type projected struct {
		x, y  int
		depth float64
		ok    bool
	}
	prev := projected{}
	for _, p := range pts {
		v := cam.Transform(camera.Vec3{X: p.Coords.X, Y: p.Coords.Y, Z: p.Coords.Z})
		x, y, d, ok := Project(v, size, subW, subH)
		cur := projected{x, y, d, ok}
		if ok {
			g.Plot(x, y, d)
		}
		if p.Connected && ok && prev.ok {
			g.Line(prev.x, prev.y, x, y, prev.depth, d)
		}
		prev = cur
	}
}
