package views

import (
	"fmt"
	"math"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mankyKitty/arcade-rs/internal/engine"
	"github.com/mankyKitty/arcade-rs/internal/engine/geom"
	"github.com/mankyKitty/arcade-rs/internal/engine/gfx"
	"github.com/mankyKitty/arcade-rs/internal/engine/input"
	"github.com/mankyKitty/arcade-rs/internal/logger"
)

const (
	menuFont      = "belligerent.ttf"
	idleFontSize  = 32
	hoverFontSize = 38
	labelHeight   = 50.0
	borderWidth   = 3.0
)

// menuAction is one selectable entry: its rendered labels and the action
// executed when it is confirmed.
type menuAction struct {
	exec func(ctx *engine.Context) engine.Action

	// idle is shown normally, hover when the entry is selected.
	idle  gfx.Sprite
	hover gfx.Sprite
}

// MainMenuView is the entry view: a vertical list of actions over the
// parallax starfield.
type MainMenuView struct {
	actions  []menuAction
	selected int
	elapsed  float64

	bgBack   *Background
	bgMiddle *Background
	bgFront  *Background
}

// NewMainMenu builds the menu, rasterizing each label at both sizes
// through the context's font cache.
func NewMainMenu(r *gfx.Context, assets string) (*MainMenuView, error) {
	v := &MainMenuView{}

	entries := []struct {
		label string
		exec  func(ctx *engine.Context) engine.Action
	}{
		{"New Game", func(ctx *engine.Context) engine.Action {
			next, err := NewShip(ctx.Renderer, assets)
			if err != nil {
				// No fallback assets: failing to build the game view
				// ends the session.
				logger.Error("failed to start game", zap.Error(err))
				return engine.Quit()
			}
			return engine.Replace(next)
		}},
		{"Quit", func(*engine.Context) engine.Action {
			return engine.Quit()
		}},
	}

	fontPath := filepath.Join(assets, menuFont)
	for _, e := range entries {
		idle, err := r.TextSprite(e.label, fontPath, idleFontSize, gfx.RGB(220, 220, 220))
		if err != nil {
			return nil, fmt.Errorf("menu label %q: %w", e.label, err)
		}
		hover, err := r.TextSprite(e.label, fontPath, hoverFontSize, gfx.RGB(255, 255, 255))
		if err != nil {
			return nil, fmt.Errorf("menu label %q: %w", e.label, err)
		}
		v.actions = append(v.actions, menuAction{exec: e.exec, idle: idle, hover: hover})
	}

	var err error
	v.bgBack, v.bgMiddle, v.bgFront, err = loadBackgrounds(r, assets)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Render handles selection input and draws the menu.
func (v *MainMenuView) Render(ctx *engine.Context, elapsed float64) engine.Action {
	if ctx.Input.QuitRequested() || ctx.Input.Pressed(input.Cancel) {
		return engine.Quit()
	}

	if ctx.Input.Pressed(input.Confirm) {
		return v.actions[v.selected].exec(ctx)
	}

	if ctx.Input.Pressed(input.Up) {
		v.selected--
		if v.selected < 0 {
			v.selected = len(v.actions) - 1
		}
	}
	if ctx.Input.Pressed(input.Down) {
		v.selected++
		if v.selected >= len(v.actions) {
			v.selected = 0
		}
	}

	r := ctx.Renderer
	r.Clear(gfx.RGB(0, 0, 0))

	v.bgBack.Render(r, elapsed)
	v.bgMiddle.Render(r, elapsed)
	v.bgFront.Render(r, elapsed)

	winW, winH := r.OutputSize()

	// The box breathes a little so the menu doesn't look frozen.
	v.elapsed += elapsed * 4
	marginH := 10 + 5*math.Sin(v.elapsed+1)
	boxW := 360 + 5*math.Sin(v.elapsed)
	boxH := float64(len(v.actions)) * labelHeight

	r.FillRect(geom.Rectangle{
		X: (float64(winW)-boxW)/2 - borderWidth,
		Y: (float64(winH)-boxH)/2 - marginH - borderWidth,
		W: boxW + borderWidth*2,
		H: boxH + borderWidth*2 + marginH*2,
	}, gfx.RGB(70, 15, 70))

	r.FillRect(geom.Rectangle{
		X: (float64(winW) - boxW) / 2,
		Y: (float64(winH)-boxH)/2 - marginH,
		W: boxW,
		H: boxH + marginH*2,
	}, gfx.RGB(140, 30, 140))

	for i, action := range v.actions {
		sprite := action.idle
		if i == v.selected {
			sprite = action.hover
		}
		w, h := sprite.Size()
		r.DrawSprite(sprite, geom.Rectangle{
			X: (float64(winW) - w) / 2,
			Y: (float64(winH)-boxH+labelHeight-h)/2 + labelHeight*float64(i),
			W: w,
			H: h,
		})
	}

	return engine.Continue()
}
