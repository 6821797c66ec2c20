package gfx

import (
	"errors"

	"github.com/mankyKitty/arcade-rs/internal/engine/geom"
)

// ErrOutOfBounds reports a sprite region that exceeds its source bounds.
var ErrOutOfBounds = errors.New("gfx: region exceeds sprite bounds")

// Sprite is a drawable slice of a texture: the texture plus a source
// rectangle, for atlas slicing without copying pixel data. Sprites hold a
// non-owning reference; the texture is owned by whoever loaded it and
// regions must not outlive it.
type Sprite struct {
	tex Texture
	src geom.Rectangle
}

// NewSprite wraps a whole texture as a sprite.
func NewSprite(tex Texture) Sprite {
	w, h := tex.Size()
	return Sprite{
		tex: tex,
		src: geom.Rectangle{W: w, H: h},
	}
}

// Size returns the sprite's dimensions in pixels.
func (s Sprite) Size() (w, h float64) {
	return s.src.W, s.src.H
}

// Region returns a sub-sprite addressing rect within s, where rect is
// expressed in s's own coordinate space. Fails with ErrOutOfBounds if the
// region does not lie entirely within s.
func (s Sprite) Region(rect geom.Rectangle) (Sprite, error) {
	src := geom.Rectangle{
		X: s.src.X + rect.X,
		Y: s.src.Y + rect.Y,
		W: rect.W,
		H: rect.H,
	}
	if !s.src.Contains(src) {
		return Sprite{}, ErrOutOfBounds
	}
	return Sprite{tex: s.tex, src: src}, nil
}
