package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubemerge/internal/engine/clock"
	"github.com/Faultbox/cubemerge/internal/engine/input"
	"github.com/Faultbox/cubemerge/internal/scene"
)

// Title is the window title prefix.
const Title = "CubeMerge"

// Platform is the window side of the loop.
type Platform interface {
	Poll(acc *input.Accumulator)
	SwapBuffers()
	SetTitle(title string)
}

// Drawer is the GPU side of the loop.
type Drawer interface {
	Draw(frame scene.Frame)
	Resize(width, height int)
}

// Loop runs one tick at a time: poll, step the scene, draw, present.
type Loop struct {
	platform Platform
	drawer   Drawer
	scene    *scene.Scene
	clock    clock.Clock
	acc      *input.Accumulator
	log      *zap.Logger

	titled    bool
	lastPhase scene.Phase

	frames   int
	fpsSince time.Duration
}

// NewLoop wires a loop. A nil logger discards output.
func NewLoop(p Platform, d Drawer, s *scene.Scene, clk clock.Clock, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		platform: p,
		drawer:   d,
		scene:    s,
		clock:    clk,
		acc:      input.NewAccumulator(),
		log:      log,
		fpsSince: clk.Now(),
	}
}

// Tick runs one frame. It returns false once a quit was requested; the
// scene is not stepped on that tick.
func (l *Loop) Tick() bool {
	l.platform.Poll(l.acc)
	in, quit := l.acc.Flush()
	if quit {
		l.log.Info("quit requested")
		return false
	}

	if in.Width > 0 && in.Height > 0 {
		l.drawer.Resize(in.Width, in.Height)
	}

	now := l.clock.Now()
	frame := l.scene.Step(in, now)
	l.drawer.Draw(frame)
	l.platform.SwapBuffers()

	if !l.titled || frame.Phase != l.lastPhase {
		l.platform.SetTitle(WindowTitle(frame.Phase))
		l.titled = true
		l.lastPhase = frame.Phase
	}

	l.frames++
	if elapsed := now - l.fpsSince; elapsed >= time.Second {
		l.log.Debug("fps",
			zap.Int("frames", l.frames),
			zap.Float64("fps", float64(l.frames)/elapsed.Seconds()),
			zap.Stringer("phase", frame.Phase),
		)
		l.frames = 0
		l.fpsSince = now
	}
	return true
}

// Run ticks until a quit is requested.
func (l *Loop) Run() {
	l.log.Info("starting main loop")
	for l.Tick() {
	}
}

// WindowTitle returns the title shown for a phase.
func WindowTitle(p scene.Phase) string {
	return fmt.Sprintf("%s - %s", Title, p)
}
