// Package main is the entry point for the arcade shooter.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mankyKitty/arcade-rs/internal/config"
	"github.com/mankyKitty/arcade-rs/internal/engine"
	"github.com/mankyKitty/arcade-rs/internal/engine/gfx"
	"github.com/mankyKitty/arcade-rs/internal/game/views"
	"github.com/mankyKitty/arcade-rs/internal/logger"
)

func main() {
	// Parse CLI flags first
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

	logger.Info("=== ArcadeRS Shooter ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	err = engine.Run(engine.Config{
		Title:      cfg.Game.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		ShowFPS:    cfg.Game.ShowFPS,
	}, func(r *gfx.Context) (engine.View, error) {
		return views.NewMainMenu(r, cfg.Assets.Dir)
	})
	if err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
