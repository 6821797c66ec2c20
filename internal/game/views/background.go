// Package views implements the game's views: the main menu and the ship
// view, plus the parallax background they share.
package views

import (
	"github.com/mankyKitty/arcade-rs/internal/engine/geom"
	"github.com/mankyKitty/arcade-rs/internal/engine/gfx"
)

// Background is one parallax layer: a sprite scrolled left at a fixed
// velocity and tiled to fill the window. Layers with different velocities
// stack to fake depth.
type Background struct {
	// pos is the logical scroll offset in sprite pixels. It depends only
	// on time and the sprite's dimensions, not on the window size.
	pos    float64
	vel    float64
	sprite gfx.Sprite
}

// NewBackground creates a layer scrolling at vel pixels per second.
func NewBackground(sprite gfx.Sprite, vel float64) *Background {
	return &Background{vel: vel, sprite: sprite}
}

// Render advances the scroll position and tiles the layer across the
// window, scaled so the sprite spans the full window height.
func (b *Background) Render(r *gfx.Context, elapsed float64) {
	w, h := b.sprite.Size()
	b.pos += b.vel * elapsed
	if b.pos > w {
		b.pos -= w
	}

	winW, winH := r.OutputSize()
	scale := float64(winH) / h

	left := -b.pos * scale
	for left < float64(winW) {
		r.DrawSprite(b.sprite, geom.Rectangle{
			X: left,
			Y: 0,
			W: w * scale,
			H: float64(winH),
		})
		left += w * scale
	}
}
