package scene

import (
	gomath "math"

	"github.com/Faultbox/cubemerge/internal/config"
	"github.com/Faultbox/cubemerge/internal/engine/camera"
	"github.com/Faultbox/cubemerge/pkg/math"
)

// FromSettings maps the user configuration onto scene constants. The texture
// count is the number of configured paths; the window size seeds the
// projection aspect. The camera orbits the focus point.
func FromSettings(cfg *config.Config) Config {
	sc := cfg.Scene
	slots := make([]math.Vec3, len(sc.Slots))
	for i, s := range sc.Slots {
		slots[i] = math.Vec3FromArray(s)
	}
	focus := math.Vec3FromArray(sc.Focus)

	return Config{
		Slots:         slots,
		Focus:         focus,
		CycleSpeed:    sc.CycleSpeed,
		MergeSpeed:    sc.MergeSpeed,
		ArriveEpsilon: sc.ArriveEpsilon,
		Spin:          math.Vec3FromArray(sc.Spin),

		FlashDuration: sc.FlashDuration,
		FlashInterval: sc.FlashInterval,

		TextureCount:   len(cfg.Textures.Paths),
		DefaultTexture: cfg.Textures.DefaultIndex,

		Background:  Color(sc.Background),
		MergeColorA: Color(sc.MergeColorA),
		MergeColorB: Color(sc.MergeColorB),

		Camera: camera.Config{
			Center:      focus,
			Yaw:         cfg.Camera.Yaw,
			Pitch:       cfg.Camera.Pitch,
			Radius:      cfg.Camera.Radius,
			MinRadius:   cfg.Camera.MinRadius,
			MaxRadius:   cfg.Camera.MaxRadius,
			Sensitivity: cfg.Camera.MouseSensitivity,
			ZoomSpeed:   cfg.Camera.ZoomSpeed,
			ZoomScale:   cfg.Camera.ZoomScale,
		},

		FovY:   cfg.Graphics.FOVDegrees * gomath.Pi / 180,
		Near:   cfg.Graphics.Near,
		Far:    cfg.Graphics.Far,
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,

		Seed: sc.Seed,
	}
}
