package view

import (
	"github.com/san-kum/molterm/internal/camera"
	"github.com/san-kum/molterm/internal/structure"
)

// State is the mutable viewer state. It is owned by the control loop
// and only ever touched from inside one loop iteration.
type State struct {
	Structure *structure.Structure
	ModelIdx  int // 0-based, always valid
	Chain     string
	Cam       *camera.Camera
	AutoSpin  bool
	Cycling   bool
}

// NewState resolves the startup model (out-of-range falls back to
// model 1) and derives the camera zoom range from that model's extent.
func NewState(s *structure.Structure, modelNum int, chain string, size float64) (*State, error) {
	idx := s.ResolveModel(modelNum)
	m := &s.Models[idx]
	if err := structure.CheckChain(m, chain); err != nil {
		return nil, err
	}
	return &State{
		Structure: s,
		ModelIdx:  idx,
		Chain:     chain,
		Cam:       camera.New(size, structure.BoxBound(m)),
	}, nil
}

// Model returns the active model.
func (s *State) Model() *structure.Model {
	return &s.Structure.Models[s.ModelIdx]
}

// CycleModel advances to the next model, wrapping to the first after
// the last. With a single model it is a no-op.
func (s *State) CycleModel() {
	s.ModelIdx = (s.ModelIdx + 1) % len(s.Structure.Models)
}

// ToggleCycling flips continuous model cycling. Ignored for
// single-model structures, where cycling would only burn frames.
func (s *State) ToggleCycling() {
	if len(s.Structure.Models) > 1 {
		s.Cycling = !s.Cycling
	}
}
