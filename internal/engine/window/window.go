// Package window owns the SDL2 window, the accelerated 2D renderer, and
// the lifetimes of the image and font subsystems. It implements the
// rendering backend and the input event source the engine consumes.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/mankyKitty/arcade-rs/internal/engine/input"
	"github.com/mankyKitty/arcade-rs/internal/logger"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps the SDL2 window and its hardware-accelerated renderer.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
	events    []input.Event
}

// New initializes SDL2 with the image and font subsystems and creates a
// centered, resizable window with an accelerated renderer. Everything
// acquired is released in reverse order on any error path.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
		events: make([]input.Event, 0, 16),
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("TTF_Init failed: %w", err)
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("IMG_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		w.shutdownLibs()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rflags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rflags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rflags)
	if err != nil {
		w.sdlWindow.Destroy()
		w.shutdownLibs()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Sugar.Infow("window created",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"fullscreen", cfg.Fullscreen,
		"vsync", cfg.VSync,
	)

	return w, nil
}

// Close destroys the renderer and window and shuts SDL down.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	w.shutdownLibs()
}

func (w *Window) shutdownLibs() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// PollEvents drains pending SDL events and returns them normalized.
// Window resizes are absorbed here; the renderer's output size reflects
// them on the next query.
func (w *Window) PollEvents() []input.Event {
	w.events = w.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.events = append(w.events, input.Event{Kind: input.Quit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				logger.Sugar.Debugw("window resized", "width", e.Data1, "height", e.Data2)
				w.events = append(w.events, input.Event{
					Kind:   input.Resize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			button, ok := mapScancode(e.Keysym.Scancode)
			if !ok {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				w.events = append(w.events, input.Event{Kind: input.KeyDown, Button: button})
			} else if e.Type == sdl.KEYUP {
				w.events = append(w.events, input.Event{Kind: input.KeyUp, Button: button})
			}
		}
	}

	return w.events
}

// mapScancode translates tracked SDL scancodes to logical buttons.
func mapScancode(code sdl.Scancode) (input.Button, bool) {
	switch code {
	case sdl.SCANCODE_UP:
		return input.Up, true
	case sdl.SCANCODE_DOWN:
		return input.Down, true
	case sdl.SCANCODE_LEFT:
		return input.Left, true
	case sdl.SCANCODE_RIGHT:
		return input.Right, true
	case sdl.SCANCODE_SPACE, sdl.SCANCODE_RETURN:
		return input.Confirm, true
	case sdl.SCANCODE_ESCAPE:
		return input.Cancel, true
	default:
		return 0, false
	}
}
