package scene

import "github.com/Faultbox/cubemerge/pkg/math"

// ModelSet owns the cube instances and moves them toward their targets.
// It never changes the scene phase; Advance only reports convergence.
type ModelSet struct {
	models []Model
	cycle  SlotCycle

	cycleSpeed float32
	mergeSpeed float32
	epsilon    float32

	rotations int
	merged    bool
}

// NewModelSet places one model on each slot, targeting that same slot.
func NewModelSet(slots []math.Vec3, cycleSpeed, mergeSpeed, epsilon float32) *ModelSet {
	s := &ModelSet{
		cycle:      NewSlotCycle(slots),
		cycleSpeed: cycleSpeed,
		mergeSpeed: mergeSpeed,
		epsilon:    epsilon,
	}
	s.models = make([]Model, len(slots))
	for i, p := range slots {
		s.models[i] = Model{ID: i, Position: p, Target: p}
		s.models[i].Transform = math.TranslateVec(p)
	}
	return s
}

// Len returns the number of models.
func (s *ModelSet) Len() int {
	return len(s.models)
}

// Models returns a copy of the models.
func (s *ModelSet) Models() []Model {
	return append([]Model(nil), s.models...)
}

// Cycle returns the current slot order.
func (s *ModelSet) Cycle() SlotCycle {
	return NewSlotCycle(s.cycle.slots)
}

// Rotations returns how many times the slot cycle has advanced.
func (s *ModelSet) Rotations() int {
	return s.rotations
}

// Merged reports whether the set has collapsed into a single model.
func (s *ModelSet) Merged() bool {
	return s.merged
}

// AllArrived reports whether every model is at its target.
func (s *ModelSet) AllArrived() bool {
	for i := range s.models {
		if !s.models[i].Arrived(s.epsilon) {
			return false
		}
	}
	return true
}

// Advance moves every model one tick toward its target and rebuilds its
// transform. During cycling, a tick on which every model has arrived
// rotates the slot cycle and retargets the models.
func (s *ModelSet) Advance(phase Phase) bool {
	speed := s.speed(phase)
	for i := range s.models {
		m := &s.models[i]
		if speed > 0 {
			m.Position = m.Position.Approach(m.Target, speed)
		}
		if s.merged {
			m.Rotation = m.Rotation.Add(m.Spin)
			m.Transform = math.TranslateVec(m.Position).Mul(math.RotateXYZ(m.Rotation))
		} else {
			m.Transform = math.TranslateVec(m.Position)
		}
	}

	arrived := s.AllArrived()
	if arrived && phase == PhaseCycling {
		s.cycle.Rotate()
		s.rotations++
		for i := range s.models {
			s.models[i].Target = s.cycle.At(i)
		}
	}
	return arrived
}

func (s *ModelSet) speed(phase Phase) float32 {
	switch phase {
	case PhaseCycling:
		return s.cycleSpeed
	case PhaseMerging:
		return s.mergeSpeed
	default:
		return 0
	}
}

// Retarget points every model at p.
func (s *ModelSet) Retarget(p math.Vec3) {
	for i := range s.models {
		s.models[i].Target = p
	}
}

// Merge discards all models and leaves a single spinning model at p.
func (s *ModelSet) Merge(p, spin math.Vec3) {
	s.models = []Model{{
		ID:        0,
		Position:  p,
		Target:    p,
		Spin:      spin,
		Transform: math.TranslateVec(p),
	}}
	s.merged = true
}
