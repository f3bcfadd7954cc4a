package scene

import "time"

// backgroundPolicy picks the clear color. While merging it alternates
// between two colors on a wall-clock interval, independent of frame rate.
type backgroundPolicy struct {
	base     Color
	mergeA   Color
	mergeB   Color
	interval time.Duration
}

func (b backgroundPolicy) at(phase Phase, now time.Duration) Color {
	if phase != PhaseMerging {
		return b.base
	}
	if (now/b.interval)%2 == 0 {
		return b.mergeA
	}
	return b.mergeB
}
