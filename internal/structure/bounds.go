package structure

import "math"

// Bounds returns the axis-aligned bounding box of a model's atoms.
// An empty model yields a zero box.
func Bounds(m *Model) (min, max Coords) {
	min = Coords{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
	max = Coords{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64}
	n := 0
	for ci := range m.Chains {
		for ri := range m.Chains[ci].Residues {
			for ai := range m.Chains[ci].Residues[ri].Atoms {
				c := m.Chains[ci].Residues[ri].Atoms[ai].Coords
				min.X = math.Min(min.X, c.X)
				min.Y = math.Min(min.Y, c.Y)
				min.Z = math.Min(min.Z, c.Z)
				max.X = math.Max(max.X, c.X)
				max.Y = math.Max(max.Y, c.Y)
				max.Z = math.Max(max.Z, c.Z)
				n++
			}
		}
	}
	if n == 0 {
		return Coords{}, Coords{}
	}
	return min, max
}

// BoxBound is the padded x/y extent used to fit a model into the view
// box: the larger of the x and y spans plus 2 Angstroms of margin.
func BoxBound(m *Model) float64 {
	min, max := Bounds(m)
	xd := max.X - min.X
	yd := max.Y - min.Y
	return math.Max(xd, yd) + 2.0
}
