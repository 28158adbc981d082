// Package camera maintains the viewer's orientation, translation and
// zoom, and maps world-space coordinates into camera space.
package camera

// View box bounds. Zoom limits derive from these so the molecule can
// never be scaled into a degenerate (zero or negative) view.
const (
	MinBoxSize = 10.0
	MaxBoxSize = 400.0
)

// Axis selects the rotation axis for incremental rotations.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Camera holds an orthonormal orientation, an in-plane translation and
// a clamped zoom factor. All operations are O(1).
type Camera struct {
	orient   Mat3
	trans    Vec3
	zoom     float64
	zoomInit float64
	zoomMin  float64
	zoomMax  float64
}

// New derives the zoom range from the configured box size and the
// model's padded extent. size is the --size flag (10-400); boxBound is
// the model's x/y extent from structure.BoxBound.
func New(size, boxBound float64) *Camera {
	if boxBound <= 0 {
		boxBound = 1
	}
	c := &Camera{
		orient:   Identity(),
		zoomInit: size / boxBound,
		zoomMin:  MinBoxSize / boxBound,
		zoomMax:  MaxBoxSize / boxBound,
	}
	c.zoom = c.zoomInit
	return c
}

// Rotate composes an incremental rotation about the given axis with the
// current orientation, then re-orthonormalizes to stop drift.
func (c *Camera) Rotate(axis Axis, step float64) {
	var r Mat3
	switch axis {
	case AxisX:
		r = RotationX(step)
	case AxisY:
		r = RotationY(step)
	default:
		r = RotationZ(step)
	}
	c.orient = r.Mul(c.orient).Orthonormalize()
}

// Translate shifts the view in the camera plane. Unclamped; the
// projector clips whatever leaves the box.
func (c *Camera) Translate(dx, dy float64) {
	c.trans.X += dx
	c.trans.Y += dy
}

// Zoom scales the zoom factor and clamps it to the derived range.
// factor must be positive; 1.1 zooms in about 10%, 1/1.1 out.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	z := c.zoom * factor
	if z < c.zoomMin {
		z = c.zoomMin
	}
	if z > c.zoomMax {
		z = c.zoomMax
	}
	c.zoom = z
}

// Reset restores identity orientation, zero translation and the
// initial zoom.
func (c *Camera) Reset() {
	c.orient = Identity()
	c.trans = Vec3{}
	c.zoom = c.zoomInit
}

// Transform maps a world-space point to camera space: rotate, then
// translate, then zoom, in that fixed order.
func (c *Camera) Transform(p Vec3) Vec3 {
	return c.orient.MulVec(p).Add(c.trans).Scale(c.zoom)
}

// Orientation returns the current rotation matrix.
func (c *Camera) Orientation() Mat3 { return c.orient }

// ZoomFactor returns the current zoom.
func (c *Camera) ZoomFactor() float64 { return c.zoom }

// ZoomRange returns the derived [min, max] zoom bounds.
func (c *Camera) ZoomRange() (min, max float64) { return c.zoomMin, c.zoomMax }
