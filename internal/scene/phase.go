package scene

// Phase is one mode of the scene lifecycle.
type Phase int

// Phases in lifecycle order. Only Restart moves backwards.
const (
	PhaseCycling Phase = iota
	PhaseMerging
	PhaseColorFlash
	PhaseSteady
)

func (p Phase) String() string {
	switch p {
	case PhaseCycling:
		return "CYCLING"
	case PhaseMerging:
		return "MERGING"
	case PhaseColorFlash:
		return "COLOR_FLASH"
	case PhaseSteady:
		return "STEADY"
	default:
		return "UNKNOWN"
	}
}
