package engine

import (
	"fmt"

	"github.com/mankyKitty/arcade-rs/internal/engine/gfx"
	"github.com/mankyKitty/arcade-rs/internal/engine/window"
	"github.com/mankyKitty/arcade-rs/internal/logger"
)

// Config holds the settings the engine needs to bring up the window.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	ShowFPS    bool
}

// Run creates the window and rendering context, builds the first view via
// init, and drives the loop until termination. Platform resources are
// released on every exit path.
func Run(cfg Config, init func(*gfx.Context) (View, error)) error {
	win, err := window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	renderer := gfx.NewContext(win)
	defer renderer.Close()

	first, err := init(renderer)
	if err != nil {
		return fmt.Errorf("create initial view: %w", err)
	}

	loop := NewLoop(renderer, win, NewClock(), first, logger.Log)
	loop.showFPS = cfg.ShowFPS
	return loop.Run()
}
