package scene

import "github.com/Faultbox/cubemerge/pkg/math"

// Model is one cube instance.
type Model struct {
	ID       int
	Position math.Vec3
	Target   math.Vec3
	Spin     math.Vec3 // radians per tick around X, Y, Z
	Rotation math.Vec3 // accumulated spin

	Transform math.Mat4
}

// Arrived reports whether the model sits within eps of its target on every axis.
func (m *Model) Arrived(eps float32) bool {
	return m.Position.Near(m.Target, eps)
}

// SlotCycle is the ordered ring of cycling target positions.
type SlotCycle struct {
	slots []math.Vec3
}

// NewSlotCycle copies slots into a new cycle.
func NewSlotCycle(slots []math.Vec3) SlotCycle {
	return SlotCycle{slots: append([]math.Vec3(nil), slots...)}
}

// Len returns the number of slots.
func (c SlotCycle) Len() int {
	return len(c.slots)
}

// At returns the slot assigned to model i.
func (c SlotCycle) At(i int) math.Vec3 {
	return c.slots[i%len(c.slots)]
}

// Slots returns a copy of the current slot order.
func (c SlotCycle) Slots() []math.Vec3 {
	return append([]math.Vec3(nil), c.slots...)
}

// Rotate shifts the ring left by one: the first slot moves to the back.
func (c *SlotCycle) Rotate() {
	if len(c.slots) < 2 {
		return
	}
	first := c.slots[0]
	copy(c.slots, c.slots[1:])
	c.slots[len(c.slots)-1] = first
}
