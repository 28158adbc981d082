package structure

import "fmt"

// Backbone atom names kept for rendering. Everything else (side chains,
// waters, ligands) is skipped so the trace stays readable at terminal
// resolution.
var backbone = map[string]bool{
	// protein
	"N": true, "CA": true, "C": true,
	// nucleic acid
	"P": true, "O5'": true, "C5'": true, "C4'": true, "C3'": true, "O3'": true,
}

// Point is one visible atom with enough context for highlighting and
// connectivity. Chain and residue are carried as plain values, never as
// pointers back into the hierarchy.
type Point struct {
	Coords     Coords
	Chain      string
	ResidueNum int

	// Connected reports whether this point is bonded to the previous
	// point in the slice: same chain, same or next residue number.
	Connected bool
}

// Visible returns the renderable backbone points of one model, in file
// order, optionally restricted to a single chain. chain == "" passes
// all chains; matching is case-sensitive. The model is not modified.
func Visible(m *Model, chain string) []Point {
	var pts []Point
	for ci := range m.Chains {
		c := &m.Chains[ci]
		if chain != "" && c.ID != chain {
			continue
		}
		for ri := range c.Residues {
			r := &c.Residues[ri]
			for ai := range r.Atoms {
				a := &r.Atoms[ai]
				if !backbone[a.Name] {
					continue
				}
				p := Point{Coords: a.Coords, Chain: c.ID, ResidueNum: r.Num}
				if n := len(pts); n > 0 {
					prev := pts[n-1]
					p.Connected = prev.Chain == p.Chain &&
						(prev.ResidueNum == p.ResidueNum || prev.ResidueNum+1 == p.ResidueNum)
				}
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// CheckChain verifies that the chain filter matches the model before
// the viewer starts. An empty filter always passes.
func CheckChain(m *Model, chain string) error {
	if chain == "" {
		return nil
	}
	if m.Chain(chain) == nil {
		return fmt.Errorf("chain %q not found in model %d (have %v)", chain, m.Num, m.ChainIDs())
	}
	return nil
}
