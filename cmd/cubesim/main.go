// Package main runs the cube scene headless on a simulated clock and logs
// every phase transition. Useful for checking timing constants without a GPU.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubemerge/internal/config"
	"github.com/Faultbox/cubemerge/internal/engine/clock"
	"github.com/Faultbox/cubemerge/internal/logger"
	"github.com/Faultbox/cubemerge/internal/scene"
)

var (
	flagTicks     = flag.Int("ticks", 600, "Number of ticks to simulate")
	flagTick      = flag.Duration("tick", 16*time.Millisecond, "Simulated time per tick")
	flagMergeAt   = flag.Int("merge-at", 60, "Tick at which to send a merge command (-1 = never)")
	flagRestartAt = flag.Int("restart-at", -1, "Tick at which to send a restart command (-1 = never)")
	flagSelectAt  = flag.Int("select-at", -1, "Tick at which to select a random texture (-1 = never)")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Named("sim")
	s, err := scene.New(scene.FromSettings(cfg), logger.Named("scene"))
	if err != nil {
		log.Error("failed to create scene", zap.Error(err))
		os.Exit(1)
	}

	clk := &clock.Manual{}
	phase := s.Phase()
	for tick := 0; tick < *flagTicks; tick++ {
		var in scene.Input
		if tick == *flagMergeAt {
			in.Commands = append(in.Commands, scene.CommandMerge)
		}
		if tick == *flagRestartAt {
			in.Commands = append(in.Commands, scene.CommandRestart)
		}
		if tick == *flagSelectAt {
			in.Commands = append(in.Commands, scene.CommandSelectTexture)
		}

		frame := s.Step(in, clk.Now())
		if frame.Phase != phase {
			log.Info("phase",
				zap.Int("tick", tick),
				zap.Duration("at", clk.Now()),
				zap.Stringer("from", phase),
				zap.Stringer("to", frame.Phase),
			)
			phase = frame.Phase
		}
		clk.Advance(*flagTick)
	}

	log.Info("done",
		zap.Int("ticks", *flagTicks),
		zap.Stringer("phase", s.Phase()),
		zap.Int("rotations", s.ModelSet().Rotations()),
		zap.Int("texture", s.Texture().Index),
	)
}
