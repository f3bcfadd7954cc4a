// Package config handles configuration loading, validation and persistence.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinTextures is the smallest texture set the scene can run with: four
// selectable textures plus the steady default.
const MinTextures = 5

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Textures TextureConfig  `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// CameraConfig holds the orbit camera start pose, limits and input gains.
type CameraConfig struct {
	Yaw              float32 `yaml:"yaw"`
	Pitch            float32 `yaml:"pitch"`
	Radius           float32 `yaml:"radius"`
	MinRadius        float32 `yaml:"min_radius"`
	MaxRadius        float32 `yaml:"max_radius"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	ZoomSpeed        float32 `yaml:"zoom_speed"`
	ZoomScale        float32 `yaml:"zoom_scale"`
}

// SceneConfig holds the animation constants of the cube scene.
type SceneConfig struct {
	Slots         [][3]float32  `yaml:"slots"` // one cube per slot
	Focus         [3]float32    `yaml:"focus"`
	CycleSpeed    float32       `yaml:"cycle_speed"`
	MergeSpeed    float32       `yaml:"merge_speed"`
	ArriveEpsilon float32       `yaml:"arrive_epsilon"`
	Spin          [3]float32    `yaml:"spin"` // radians per tick of the merged cube
	FlashDuration time.Duration `yaml:"flash_duration"`
	FlashInterval time.Duration `yaml:"flash_interval"`
	Seed          uint64        `yaml:"seed"` // 0 picks a time-based seed
	Background    [4]float32    `yaml:"background"`
	MergeColorA   [4]float32    `yaml:"merge_color_a"`
	MergeColorB   [4]float32    `yaml:"merge_color_b"`
}

// TextureConfig holds the texture set.
type TextureConfig struct {
	Paths        []string `yaml:"paths"`
	DefaultIndex int      `yaml:"default_index"`
	Size         int      `yaml:"size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 45,
			Near:       0.1,
			Far:        100,
		},
		Camera: CameraConfig{
			Yaw:              0,
			Pitch:            0.3,
			Radius:           10,
			MinRadius:        2,
			MaxRadius:        20,
			MouseSensitivity: 0.005,
			ZoomSpeed:        0.5,
			ZoomScale:        1,
		},
		Scene: SceneConfig{
			Slots: [][3]float32{
				{-2.5, -1, -2},
				{1.5, -1, 1},
				{0, 1, 0},
				{2.5, 1.5, -1.5},
			},
			Focus:         [3]float32{0, 0, 0},
			CycleSpeed:    0.02,
			MergeSpeed:    0.01,
			ArriveEpsilon: 0.01,
			Spin:          [3]float32{0.01, 0.02, 0},
			FlashDuration: 3 * time.Second,
			FlashInterval: 100 * time.Millisecond,
			Background:    [4]float32{0, 0, 0, 1},
			MergeColorA:   [4]float32{0.25, 0.05, 0.3, 1},
			MergeColorB:   [4]float32{0.05, 0.2, 0.35, 1},
		},
		Textures: TextureConfig{
			Paths: []string{
				"assets/texture_01.jpg",
				"assets/texture_02.jpg",
				"assets/texture_03.jpg",
				"assets/texture_04.jpg",
				"assets/texture_05.jpg",
			},
			DefaultIndex: 4,
			Size:         256,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every structural problem in the config at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOVDegrees <= 0 || c.Graphics.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov_degrees %v out of (0, 180)", c.Graphics.FOVDegrees))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		errs = append(errs, fmt.Errorf("graphics: near %v / far %v must satisfy 0 < near < far", c.Graphics.Near, c.Graphics.Far))
	}

	if c.Camera.MinRadius <= 0 || c.Camera.MinRadius > c.Camera.MaxRadius {
		errs = append(errs, fmt.Errorf("camera: radius bounds [%v, %v] invalid", c.Camera.MinRadius, c.Camera.MaxRadius))
	}
	if c.Camera.MouseSensitivity <= 0 {
		errs = append(errs, errors.New("camera: mouse_sensitivity must be positive"))
	}
	if c.Camera.ZoomSpeed <= 0 || c.Camera.ZoomScale <= 0 {
		errs = append(errs, errors.New("camera: zoom_speed and zoom_scale must be positive"))
	}

	if len(c.Scene.Slots) == 0 {
		errs = append(errs, errors.New("scene: at least one slot is required"))
	}
	if !unitInterval(c.Scene.CycleSpeed) || !unitInterval(c.Scene.MergeSpeed) {
		errs = append(errs, fmt.Errorf("scene: cycle_speed %v and merge_speed %v must be in (0, 1]", c.Scene.CycleSpeed, c.Scene.MergeSpeed))
	}
	if c.Scene.ArriveEpsilon <= 0 {
		errs = append(errs, errors.New("scene: arrive_epsilon must be positive"))
	}
	if c.Scene.FlashDuration <= 0 || c.Scene.FlashInterval <= 0 {
		errs = append(errs, errors.New("scene: flash_duration and flash_interval must be positive"))
	}

	if len(c.Textures.Paths) < MinTextures {
		errs = append(errs, fmt.Errorf("textures: %d paths configured, need at least %d", len(c.Textures.Paths), MinTextures))
	}
	if c.Textures.DefaultIndex < 0 || c.Textures.DefaultIndex >= len(c.Textures.Paths) {
		errs = append(errs, fmt.Errorf("textures: default_index %d out of range", c.Textures.DefaultIndex))
	}
	if c.Textures.Size <= 0 {
		errs = append(errs, errors.New("textures: size must be positive"))
	}

	return errors.Join(errs...)
}

func unitInterval(v float32) bool {
	return v > 0 && v <= 1
}
