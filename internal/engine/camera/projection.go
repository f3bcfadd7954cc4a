package camera

import "github.com/Faultbox/cubemerge/pkg/math"

// Projection holds perspective parameters. Aspect follows the viewport.
type Projection struct {
	FovY   float32 // radians
	Near   float32
	Far    float32
	Aspect float32
}

// NewProjection creates a projection for a width x height viewport.
func NewProjection(fovY, near, far float32, width, height int) Projection {
	p := Projection{FovY: fovY, Near: near, Far: far, Aspect: 1}
	p.Resize(width, height)
	return p
}

// Resize updates the aspect ratio. Degenerate sizes (a minimized window)
// are ignored and reported as false.
func (p *Projection) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	p.Aspect = float32(width) / float32(height)
	return true
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() math.Mat4 {
	return math.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}
