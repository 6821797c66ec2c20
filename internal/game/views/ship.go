package views

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/mankyKitty/arcade-rs/internal/engine"
	"github.com/mankyKitty/arcade-rs/internal/engine/geom"
	"github.com/mankyKitty/arcade-rs/internal/engine/gfx"
	"github.com/mankyKitty/arcade-rs/internal/engine/input"
)

// Pixels traveled by the player's ship every second, when moving.
const playerSpeed = 180.0

// Ship sprite cell size on the spritesheet.
const (
	shipW = 43.0
	shipH = 39.0
)

// shipFrame indexes the 3x3 spritesheet: rows are vertical motion (up,
// level, down), columns are horizontal motion (slow, normal, fast).
type shipFrame int

const (
	frameUpNorm shipFrame = iota
	frameUpFast
	frameUpSlow
	frameMidNorm
	frameMidFast
	frameMidSlow
	frameDownNorm
	frameDownFast
	frameDownSlow
)

type ship struct {
	rect    geom.Rectangle
	sprites []gfx.Sprite
	current shipFrame
}

// ShipView is the flying view: the player's ship over a scrolling parallax
// starfield.
type ShipView struct {
	player ship

	bgBack   *Background
	bgMiddle *Background
	bgFront  *Background
}

// NewShip loads the ship spritesheet and background layers. A missing or
// undecodable asset is fatal to the view's construction.
func NewShip(r *gfx.Context, assets string) (*ShipView, error) {
	sheet, err := r.LoadSprite(filepath.Join(assets, "spaceship.png"))
	if err != nil {
		return nil, fmt.Errorf("ship spritesheet: %w", err)
	}

	sprites := make([]gfx.Sprite, 0, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cell, err := sheet.Region(geom.Rectangle{
				X: shipW * float64(x),
				Y: shipH * float64(y),
				W: shipW,
				H: shipH,
			})
			if err != nil {
				return nil, fmt.Errorf("ship frame (%d,%d): %w", x, y, err)
			}
			sprites = append(sprites, cell)
		}
	}

	bgBack, bgMiddle, bgFront, err := loadBackgrounds(r, assets)
	if err != nil {
		return nil, err
	}

	return &ShipView{
		player: ship{
			rect:    geom.Rectangle{X: 64, Y: 64, W: shipW, H: shipH},
			sprites: sprites,
			current: frameMidNorm,
		},
		bgBack:   bgBack,
		bgMiddle: bgMiddle,
		bgFront:  bgFront,
	}, nil
}

// Render moves the ship from held movement keys, clamps it to the movable
// region, and draws the scene.
func (v *ShipView) Render(ctx *engine.Context, elapsed float64) engine.Action {
	if ctx.Input.QuitRequested() || ctx.Input.Pressed(input.Cancel) {
		return engine.Quit()
	}

	left := ctx.Input.Held(input.Left)
	right := ctx.Input.Held(input.Right)
	up := ctx.Input.Held(input.Up)
	down := ctx.Input.Held(input.Down)

	// Diagonal motion covers the same distance per second.
	moved := playerSpeed * elapsed
	if (up != down) && (left != right) {
		moved /= math.Sqrt2
	}

	var dx, dy float64
	switch {
	case left && !right:
		dx = -moved
	case right && !left:
		dx = moved
	}
	switch {
	case up && !down:
		dy = -moved
	case down && !up:
		dy = moved
	}

	v.player.rect.X += dx
	v.player.rect.Y += dy

	// The movable region spans the full window height but only 70% of its
	// width, leaving room on the right where enemies will spawn.
	winW, winH := ctx.Renderer.OutputSize()
	movable := geom.Rectangle{
		W: float64(winW) * 0.70,
		H: float64(winH),
	}

	// The ship always fits: it is far smaller than any sane window.
	if rect, ok := v.player.rect.MoveInside(movable); ok {
		v.player.rect = rect
	}

	v.player.current = frameFor(dx, dy)

	ctx.Renderer.Clear(gfx.RGB(0, 0, 0))
	v.bgBack.Render(ctx.Renderer, elapsed)
	v.bgMiddle.Render(ctx.Renderer, elapsed)

	ctx.Renderer.DrawSprite(v.player.sprites[v.player.current], v.player.rect)

	v.bgFront.Render(ctx.Renderer, elapsed)

	return engine.Continue()
}

// frameFor picks the spritesheet cell matching the tick's movement.
func frameFor(dx, dy float64) shipFrame {
	switch {
	case dy < 0 && dx == 0:
		return frameUpNorm
	case dy < 0 && dx > 0:
		return frameUpFast
	case dy < 0 && dx < 0:
		return frameUpSlow
	case dy == 0 && dx == 0:
		return frameMidNorm
	case dy == 0 && dx > 0:
		return frameMidFast
	case dy == 0 && dx < 0:
		return frameMidSlow
	case dx == 0:
		return frameDownNorm
	case dx > 0:
		return frameDownFast
	default:
		return frameDownSlow
	}
}

// loadBackgrounds loads the three parallax starfield layers.
func loadBackgrounds(r *gfx.Context, assets string) (back, middle, front *Background, err error) {
	layers := []struct {
		file string
		vel  float64
		out  **Background
	}{
		{"starBG.png", 20, &back},
		{"starMG.png", 40, &middle},
		{"starFG.png", 80, &front},
	}
	for _, l := range layers {
		sprite, err := r.LoadSprite(filepath.Join(assets, l.file))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("background %s: %w", l.file, err)
		}
		*l.out = NewBackground(sprite, l.vel)
	}
	return back, middle, front, nil
}
