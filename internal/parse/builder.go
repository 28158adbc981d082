package parse

import "github.com/san-kum/molterm/internal/structure"

// atomRecord is one parsed coordinate record, format-independent.
type atomRecord struct {
	serial    int
	name      string
	resName   string
	chainID   string
	resSeq    int
	x, y, z   float64
	occupancy float64
	bFactor   float64
	element   string
	model     int // 0 when the format carries no model number
}

// builder groups a stream of atom records into models, chains and
// residues, preserving file order. A chain id that reappears after an
// intervening chain continues the earlier chain, matching how TER-less
// files interleave HETATM blocks.
type builder struct {
	models  []structure.Model
	current *structure.Model
}

func (b *builder) startModel(num int) {
	b.models = append(b.models, structure.Model{Num: num})
	b.current = &b.models[len(b.models)-1]
}

func (b *builder) add(rec atomRecord) {
	if b.current == nil || (rec.model != 0 && rec.model != b.current.Num) {
		b.startModel(rec.model)
	}

	chain := b.current.Chain(rec.chainID)
	if chain == nil {
		b.current.Chains = append(b.current.Chains, structure.Chain{ID: rec.chainID})
		chain = &b.current.Chains[len(b.current.Chains)-1]
	}

	var res *structure.Residue
	if n := len(chain.Residues); n > 0 {
		last := &chain.Residues[n-1]
		if last.Num == rec.resSeq && last.Name == rec.resName {
			res = last
		}
	}
	if res == nil {
		chain.Residues = append(chain.Residues, structure.Residue{Num: rec.resSeq, Name: rec.resName})
		res = &chain.Residues[len(chain.Residues)-1]
	}

	res.Atoms = append(res.Atoms, structure.Atom{
		Serial:    rec.serial,
		Name:      rec.name,
		Element:   rec.element,
		Coords:    structure.Coords{X: rec.x, Y: rec.y, Z: rec.z},
		Occupancy: rec.occupancy,
		BFactor:   rec.bFactor,
	})
}

// finish drops models that ended up empty (a MODEL/ENDMDL pair with no
// atoms) and returns the rest.
func (b *builder) finish() []structure.Model {
	out := b.models[:0]
	for i := range b.models {
		if b.models[i].AtomCount() > 0 {
			out = append(out, b.models[i])
		}
	}
	return out
}
