// Package gfx is the rendering layer: sprites with atlas regions, a font
// cache keyed by (path, point size), and draw operations issued against a
// platform backend.
package gfx

import (
	"fmt"

	"github.com/mankyKitty/arcade-rs/internal/engine/geom"
)

type fontKey struct {
	path string
	size int
}

// Context owns the drawing surface handle and the font cache. Drawing
// operations are fire-and-forget; a backend failure is treated as an
// unrecoverable surface error, recorded and surfaced by Present and Err.
type Context struct {
	backend Backend
	fonts   map[fontKey]Font
	fatal   error
}

// NewContext creates a rendering context over backend.
func NewContext(backend Backend) *Context {
	return &Context{
		backend: backend,
		fonts:   make(map[fontKey]Font),
	}
}

// OutputSize returns the current surface dimensions in pixels.
func (c *Context) OutputSize() (w, h int) {
	w, h, err := c.backend.OutputSize()
	if err != nil {
		c.fail(fmt.Errorf("query output size: %w", err))
		return 0, 0
	}
	return w, h
}

// LoadSprite decodes an image file into a sprite. The caller owns the
// sprite's texture.
func (c *Context) LoadSprite(path string) (Sprite, error) {
	tex, err := c.backend.LoadTexture(path)
	if err != nil {
		return Sprite{}, fmt.Errorf("load sprite %s: %w", path, err)
	}
	return NewSprite(tex), nil
}

// TextSprite rasterizes text at the given font and color into a new sprite.
// The font is looked up in the cache by (path, size); on a miss it is loaded
// once and kept for the context's lifetime. A cache hit performs no file
// I/O.
func (c *Context) TextSprite(text, fontPath string, size int, col Color) (Sprite, error) {
	key := fontKey{path: fontPath, size: size}
	font, ok := c.fonts[key]
	if !ok {
		var err error
		font, err = c.backend.OpenFont(fontPath, size)
		if err != nil {
			return Sprite{}, fmt.Errorf("open font %s@%d: %w", fontPath, size, err)
		}
		c.fonts[key] = font
	}

	tex, err := font.RenderText(text, col)
	if err != nil {
		return Sprite{}, fmt.Errorf("render text %q: %w", text, err)
	}
	return NewSprite(tex), nil
}

// Clear fills the whole surface with col.
func (c *Context) Clear(col Color) {
	c.backend.SetDrawColor(col)
	if err := c.backend.Clear(); err != nil {
		c.fail(fmt.Errorf("clear: %w", err))
	}
}

// DrawRect outlines rect with col.
func (c *Context) DrawRect(rect geom.Rectangle, col Color) {
	native, err := rect.ToNative()
	if err != nil {
		c.fail(fmt.Errorf("draw rect: %w", err))
		return
	}
	c.backend.SetDrawColor(col)
	if err := c.backend.DrawRect(native); err != nil {
		c.fail(fmt.Errorf("draw rect: %w", err))
	}
}

// FillRect fills rect with col.
func (c *Context) FillRect(rect geom.Rectangle, col Color) {
	native, err := rect.ToNative()
	if err != nil {
		c.fail(fmt.Errorf("fill rect: %w", err))
		return
	}
	c.backend.SetDrawColor(col)
	if err := c.backend.FillRect(native); err != nil {
		c.fail(fmt.Errorf("fill rect: %w", err))
	}
}

// DrawSprite scales s's source pixels to fill dst exactly.
func (c *Context) DrawSprite(s Sprite, dst geom.Rectangle) {
	src, err := s.src.ToNative()
	if err != nil {
		c.fail(fmt.Errorf("draw sprite src: %w", err))
		return
	}
	native, err := dst.ToNative()
	if err != nil {
		c.fail(fmt.Errorf("draw sprite dst: %w", err))
		return
	}
	if err := c.backend.Copy(s.tex, src, native); err != nil {
		c.fail(fmt.Errorf("draw sprite: %w", err))
	}
}

// Present flips the drawn frame to the display. It returns the first fatal
// surface error recorded by any drawing operation this frame, if any.
func (c *Context) Present() error {
	if c.fatal != nil {
		return c.fatal
	}
	c.backend.Present()
	return nil
}

// Err returns the first fatal surface error, if any.
func (c *Context) Err() error {
	return c.fatal
}

// Close releases every cached font. Textures are owned by their loaders and
// are not touched.
func (c *Context) Close() {
	for key, font := range c.fonts {
		font.Close()
		delete(c.fonts, key)
	}
}

func (c *Context) fail(err error) {
	if c.fatal == nil {
		c.fatal = err
	}
}
