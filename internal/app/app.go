// Package app wires the window, renderer and scene into the running program.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubemerge/internal/config"
	"github.com/Faultbox/cubemerge/internal/engine/clock"
	"github.com/Faultbox/cubemerge/internal/engine/renderer"
	"github.com/Faultbox/cubemerge/internal/engine/texture"
	"github.com/Faultbox/cubemerge/internal/engine/window"
	"github.com/Faultbox/cubemerge/internal/logger"
	"github.com/Faultbox/cubemerge/internal/scene"
)

// App is the running program.
type App struct {
	window   *window.Window
	renderer *renderer.Renderer
	loop     *Loop
}

// New creates the window, uploads textures and builds the scene.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("textures", len(cfg.Textures.Paths)),
	)

	sceneCfg := scene.FromSettings(cfg)

	a := &App{}
	var err error
	a.window, err = window.New(window.Config{
		Title:      WindowTitle(scene.PhaseCycling),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable size can differ from the requested window size.
	sceneCfg.Width, sceneCfg.Height = a.window.DrawableSize()

	images := texture.LoadSet(cfg.Textures.Paths, cfg.Textures.Size, logger.Named("texture"))

	a.renderer, err = renderer.New(renderer.Config{
		Width:  sceneCfg.Width,
		Height: sceneCfg.Height,
	}, images, logger.Named("renderer"))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s, err := scene.New(sceneCfg, logger.Named("scene"))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	a.loop = NewLoop(a.window, a.renderer, s, clock.NewSystem(), log)
	log.Info("initialized")
	return a, nil
}

// Run runs the main loop until the window closes or Escape is pressed.
func (a *App) Run() {
	a.loop.Run()
}

// Close releases the renderer and window.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
