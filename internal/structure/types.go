package structure

import "fmt"

// Coords is a position in Angstroms.
type Coords struct {
	X, Y, Z float64
}

func (c Coords) Add(o Coords) Coords { return Coords{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }
func (c Coords) Sub(o Coords) Coords { return Coords{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }

func (c Coords) String() string {
	return fmt.Sprintf("%0.3f %0.3f %0.3f", c.X, c.Y, c.Z)
}

// Atom is a single ATOM or HETATM record.
type Atom struct {
	Serial    int
	Name      string
	Element   string
	Coords    Coords
	Occupancy float64
	BFactor   float64
}

// Residue owns the atoms of one residue, in file order.
type Residue struct {
	Num   int
	Name  string
	Atoms []Atom
}

// Chain owns the residues of one chain, in file order.
type Chain struct {
	ID       string
	Residues []Residue
}

func (c *Chain) AtomCount() int {
	n := 0
	for i := range c.Residues {
		n += len(c.Residues[i].Atoms)
	}
	return n
}

// Model is one coordinate set. Multi-model structures (NMR ensembles,
// trajectories) carry several models with identical topology.
type Model struct {
	Num    int
	Chains []Chain
}

// Chain returns the chain with the given id, or nil.
func (m *Model) Chain(id string) *Chain {
	for i := range m.Chains {
		if m.Chains[i].ID == id {
			return &m.Chains[i]
		}
	}
	return nil
}

func (m *Model) AtomCount() int {
	n := 0
	for i := range m.Chains {
		n += m.Chains[i].AtomCount()
	}
	return n
}

func (m *Model) ResidueCount() int {
	n := 0
	for i := range m.Chains {
		n += len(m.Chains[i].Residues)
	}
	return n
}

// ChainIDs returns the chain ids in file order.
func (m *Model) ChainIDs() []string {
	ids := make([]string, len(m.Chains))
	for i := range m.Chains {
		ids[i] = m.Chains[i].ID
	}
	return ids
}

// Structure is the root of the hierarchy. It is read-only after New:
// nothing in this package or its callers mutates models once built.
type Structure struct {
	Path   string
	Models []Model
}

// New builds a Structure from parsed models. Each model is centered on
// its own centroid so the camera orbits the molecule rather than the
// crystallographic origin. Model numbers are normalized to 1..N.
func New(path string, models []Model) (*Structure, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("structure %s: no models", path)
	}
	for i := range models {
		models[i].Num = i + 1
		center(&models[i])
	}
	return &Structure{Path: path, Models: models}, nil
}

// Model returns the model for a 1-based index. Out-of-range indices
// fall back to the first model, matching the viewer's startup policy.
func (s *Structure) Model(num int) *Model {
	if num < 1 || num > len(s.Models) {
		return &s.Models[0]
	}
	return &s.Models[num-1]
}

// ResolveModel maps a 1-based model flag to a 0-based index, falling
// back to 0 when out of range.
func (s *Structure) ResolveModel(num int) int {
	if num < 1 || num > len(s.Models) {
		return 0
	}
	return num - 1
}

// center translates every atom so the model centroid sits at the origin.
func center(m *Model) {
	var sum Coords
	n := 0
	for ci := range m.Chains {
		for ri := range m.Chains[ci].Residues {
			for ai := range m.Chains[ci].Residues[ri].Atoms {
				sum = sum.Add(m.Chains[ci].Residues[ri].Atoms[ai].Coords)
				n++
			}
		}
	}
	if n == 0 {
		return
	}
	c := Coords{sum.X / float64(n), sum.Y / float64(n), sum.Z / float64(n)}
	for ci := range m.Chains {
		for ri := range m.Chains[ci].Residues {
			for ai := range m.Chains[ci].Residues[ri].Atoms {
				m.Chains[ci].Residues[ri].Atoms[ai].Coords =
					m.Chains[ci].Residues[ri].Atoms[ai].Coords.Sub(c)
			}
		}
	}
}
