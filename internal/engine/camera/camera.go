// Package camera provides the orbit camera and projection used to view the scene.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cubemerge/pkg/math"
)

// Pitch limits. The camera may look straight down or straight up.
const (
	MinPitch = -gomath.Pi / 2
	MaxPitch = gomath.Pi / 2
)

// Config holds the start pose, limits and input gains of an OrbitCamera.
type Config struct {
	Center    math.Vec3
	Yaw       float32
	Pitch     float32
	Radius    float32
	MinRadius float32
	MaxRadius float32

	Sensitivity float32 // radians per pixel of mouse motion
	ZoomSpeed   float32
	ZoomScale   float32
}

// DefaultConfig returns the stock camera settings.
func DefaultConfig() Config {
	return Config{
		Pitch:       0.3,
		Radius:      10,
		MinRadius:   2,
		MaxRadius:   20,
		Sensitivity: 0.005,
		ZoomSpeed:   0.5,
		ZoomScale:   1,
	}
}

// OrbitCamera orbits around a fixed center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Yaw    float32 // Horizontal angle (radians)
	Pitch  float32 // Vertical angle (radians), in [MinPitch, MaxPitch]
	Radius float32 // Distance from center, in [MinRadius, MaxRadius]

	// Constraints
	MinRadius float32
	MaxRadius float32

	// Sensitivity
	Sensitivity float32
	ZoomSpeed   float32
	ZoomScale   float32
}

// NewOrbitCamera creates an orbit camera from cfg, clamping the start pose.
func NewOrbitCamera(cfg Config) *OrbitCamera {
	c := &OrbitCamera{
		Center:      cfg.Center,
		Yaw:         wrapAngle(cfg.Yaw),
		Pitch:       math.Clamp(cfg.Pitch, MinPitch, MaxPitch),
		MinRadius:   cfg.MinRadius,
		MaxRadius:   cfg.MaxRadius,
		Sensitivity: cfg.Sensitivity,
		ZoomSpeed:   cfg.ZoomSpeed,
		ZoomScale:   cfg.ZoomScale,
	}
	c.Radius = math.Clamp(cfg.Radius, c.MinRadius, c.MaxRadius)
	return c
}

// ApplyMouseDelta rotates the camera by a mouse motion in pixels.
// Non-finite deltas are treated as zero.
func (c *OrbitCamera) ApplyMouseDelta(dx, dy float32) {
	c.Yaw = wrapAngle(c.Yaw + math.Finite(dx)*c.Sensitivity)
	c.Pitch = math.Clamp(c.Pitch+math.Finite(dy)*c.Sensitivity, MinPitch, MaxPitch)
}

// ApplyZoomDelta moves the camera along its radius by a wheel delta.
// Positive deltas move away from the center.
func (c *OrbitCamera) ApplyZoomDelta(dy float32) {
	c.Radius = math.Clamp(c.Radius+math.Finite(dy)*c.ZoomSpeed*c.ZoomScale, c.MinRadius, c.MaxRadius)
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.Pitch), float64(c.Yaw)
	offset := math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
	}
	return c.Center.Add(offset.Scale(c.Radius))
}

// ViewMatrix returns the view matrix looking from Position toward Center.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// wrapAngle maps a to [-Pi, Pi] so yaw never loses precision under long drags.
func wrapAngle(a float32) float32 {
	return float32(gomath.Remainder(float64(math.Finite(a)), 2*gomath.Pi))
}
