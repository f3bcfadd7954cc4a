// Package scene implements the cube scene: cycling cubes that merge into one,
// flash random colors, then settle on a texture the user can change.
//
// A Scene is driven by Step, once per frame, from a single goroutine. Step
// applies input, advances the models, evaluates transitions and fires due
// deferred callbacks, then composes draw records, all before returning.
package scene

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubemerge/internal/engine/camera"
	"github.com/Faultbox/cubemerge/internal/engine/timer"
	"github.com/Faultbox/cubemerge/pkg/math"
)

// Config holds the scene constants.
type Config struct {
	Slots         []math.Vec3
	Focus         math.Vec3
	CycleSpeed    float32
	MergeSpeed    float32
	ArriveEpsilon float32
	Spin          math.Vec3

	FlashDuration time.Duration
	FlashInterval time.Duration

	TextureCount   int
	DefaultTexture int

	Background  Color
	MergeColorA Color
	MergeColorB Color

	Camera camera.Config

	FovY, Near, Far float32
	Width, Height   int

	Seed uint64 // 0 picks a time-based seed
}

// DefaultConfig returns the stock scene: four cubes, five textures.
func DefaultConfig() Config {
	return Config{
		Slots: []math.Vec3{
			{X: -2.5, Y: -1, Z: -2},
			{X: 1.5, Y: -1, Z: 1},
			{X: 0, Y: 1, Z: 0},
			{X: 2.5, Y: 1.5, Z: -1.5},
		},
		CycleSpeed:     0.02,
		MergeSpeed:     0.01,
		ArriveEpsilon:  0.01,
		Spin:           math.Vec3{X: 0.01, Y: 0.02},
		FlashDuration:  3 * time.Second,
		FlashInterval:  100 * time.Millisecond,
		TextureCount:   5,
		DefaultTexture: 4,
		Background:     Color{0, 0, 0, 1},
		MergeColorA:    Color{0.25, 0.05, 0.3, 1},
		MergeColorB:    Color{0.05, 0.2, 0.35, 1},
		Camera:         camera.DefaultConfig(),
		FovY:           0.7853982, // 45 degrees
		Near:           0.1,
		Far:            100,
		Width:          1280,
		Height:         720,
	}
}

func (c Config) validate() error {
	var errs []error
	if len(c.Slots) == 0 {
		errs = append(errs, errors.New("no slots"))
	}
	if c.TextureCount < MinTextures {
		errs = append(errs, fmt.Errorf("texture set has %d entries, need at least %d", c.TextureCount, MinTextures))
	}
	if c.DefaultTexture < 0 || c.DefaultTexture >= c.TextureCount {
		errs = append(errs, fmt.Errorf("default texture %d out of range", c.DefaultTexture))
	}
	if c.CycleSpeed <= 0 || c.CycleSpeed > 1 || c.MergeSpeed <= 0 || c.MergeSpeed > 1 {
		errs = append(errs, errors.New("approach speeds must be in (0, 1]"))
	}
	if c.ArriveEpsilon <= 0 {
		errs = append(errs, errors.New("arrive epsilon must be positive"))
	}
	if c.FlashDuration <= 0 || c.FlashInterval <= 0 {
		errs = append(errs, errors.New("flash duration and interval must be positive"))
	}
	if c.Camera.MinRadius <= 0 || c.Camera.MinRadius > c.Camera.MaxRadius {
		errs = append(errs, errors.New("camera radius bounds invalid"))
	}
	return errors.Join(errs...)
}

// Frame is the result of one Step.
type Frame struct {
	Phase      Phase
	Background Color
	Draws      []DrawRecord
}

// Scene is the owned state of the cube scene.
type Scene struct {
	cfg        Config
	log        *zap.Logger
	rng        *rand.Rand
	timers     *timer.Scheduler
	composer   *FrameComposer
	textures   texturePolicy
	background backgroundPolicy
	projection camera.Projection

	// Everything below is rebuilt by Restart.
	phase   Phase
	models  *ModelSet
	camera  *camera.OrbitCamera
	texture TextureSelection
}

// New validates cfg and builds a scene in its start state.
func New(cfg Config, log *zap.Logger) (*Scene, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>32|1))

	s := &Scene{
		cfg:      cfg,
		log:      log,
		rng:      rng,
		timers:   timer.New(),
		composer: NewFrameComposer(rng, cfg.TextureCount),
		textures: texturePolicy{count: cfg.TextureCount, defaultIndex: cfg.DefaultTexture},
		background: backgroundPolicy{
			base:     cfg.Background,
			mergeA:   cfg.MergeColorA,
			mergeB:   cfg.MergeColorB,
			interval: cfg.FlashInterval,
		},
		projection: camera.NewProjection(cfg.FovY, cfg.Near, cfg.Far, cfg.Width, cfg.Height),
	}
	s.reset()

	log.Info("scene created",
		zap.Int("models", s.models.Len()),
		zap.Int("textures", cfg.TextureCount),
		zap.Uint64("seed", seed),
	)
	return s, nil
}

// reset puts every entity back to its start value.
func (s *Scene) reset() {
	s.phase = PhaseCycling
	s.models = NewModelSet(s.cfg.Slots, s.cfg.CycleSpeed, s.cfg.MergeSpeed, s.cfg.ArriveEpsilon)
	s.camera = camera.NewOrbitCamera(s.cfg.Camera)
	s.texture = s.textures.standard()
}

// Phase returns the current phase.
func (s *Scene) Phase() Phase {
	return s.phase
}

// Models returns a copy of the current models.
func (s *Scene) Models() []Model {
	return s.models.Models()
}

// ModelSet exposes the model set for inspection.
func (s *Scene) ModelSet() *ModelSet {
	return s.models
}

// Camera returns a copy of the camera state.
func (s *Scene) Camera() camera.OrbitCamera {
	return *s.camera
}

// Projection returns the current projection.
func (s *Scene) Projection() camera.Projection {
	return s.projection
}

// Texture returns the current texture selection of the merged cube.
func (s *Scene) Texture() TextureSelection {
	return s.texture
}

// Generation returns the deferred-callback generation. It changes on every Restart.
func (s *Scene) Generation() uint64 {
	return s.timers.Generation()
}

// Step runs one frame: input, model advance, transitions, composition.
func (s *Scene) Step(in Input, now time.Duration) Frame {
	if in.Width != 0 || in.Height != 0 {
		s.projection.Resize(in.Width, in.Height)
	}
	s.camera.ApplyMouseDelta(in.MouseDX, in.MouseDY)
	s.camera.ApplyZoomDelta(in.Wheel)

	for _, cmd := range in.Commands {
		s.handle(cmd, now)
	}

	arrived := s.models.Advance(s.phase)
	if arrived && s.phase == PhaseMerging {
		s.enterColorFlash(now)
	}
	s.timers.Fire(now)

	return Frame{
		Phase:      s.phase,
		Background: s.background.at(s.phase, now),
		Draws:      s.composer.Compose(s.camera, s.projection, s.models.models, s.phase, s.texture),
	}
}

func (s *Scene) handle(cmd Command, now time.Duration) {
	var ok bool
	switch cmd {
	case CommandMerge:
		ok = s.Merge()
	case CommandRestart:
		s.Restart()
		ok = true
	case CommandSelectTexture:
		ok = s.SelectTexture()
	case CommandResetTexture:
		ok = s.ResetTexture()
	}
	if !ok {
		s.log.Debug("command ignored",
			zap.Stringer("command", cmd),
			zap.Stringer("phase", s.phase),
			zap.Duration("at", now),
		)
	}
}

// Merge starts pulling every model to the focus point. Only valid while cycling.
func (s *Scene) Merge() bool {
	if s.phase != PhaseCycling {
		return false
	}
	s.models.Retarget(s.cfg.Focus)
	s.transition(PhaseMerging)
	return true
}

// SelectTexture gives the merged cube a random non-default texture. Only valid when steady.
func (s *Scene) SelectTexture() bool {
	if s.phase != PhaseSteady {
		return false
	}
	s.texture = s.textures.random(s.rng)
	s.log.Debug("texture selected", zap.Int("index", s.texture.Index))
	return true
}

// ResetTexture restores the default texture. Only valid when steady.
func (s *Scene) ResetTexture() bool {
	if s.phase != PhaseSteady {
		return false
	}
	s.texture = s.textures.standard()
	return true
}

// Restart returns the scene to its start state and invalidates any pending
// deferred callbacks. Valid in every phase.
func (s *Scene) Restart() {
	from := s.phase
	s.timers.Invalidate()
	s.reset()
	s.log.Info("scene restarted",
		zap.Stringer("from", from),
		zap.Uint64("generation", s.timers.Generation()),
	)
}

// enterColorFlash swaps the converged models for a single merged cube and
// schedules the end of the flash.
func (s *Scene) enterColorFlash(now time.Duration) {
	s.models.Merge(s.cfg.Focus, s.cfg.Spin)
	s.texture = TextureSelection{Flat: true}
	s.transition(PhaseColorFlash)

	gen := s.timers.Generation()
	s.timers.After(now, s.cfg.FlashDuration, func() { s.endColorFlash(gen) })
}

func (s *Scene) endColorFlash(gen uint64) {
	if gen != s.timers.Generation() || s.phase != PhaseColorFlash {
		s.log.Warn("stale flash timer dropped", zap.Uint64("generation", gen))
		return
	}
	s.texture = s.textures.standard()
	s.transition(PhaseSteady)
}

func (s *Scene) transition(to Phase) {
	s.log.Info("phase transition",
		zap.Stringer("from", s.phase),
		zap.Stringer("to", to),
		zap.Uint64("generation", s.timers.Generation()),
	)
	s.phase = to
}
