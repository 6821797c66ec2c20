package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/mankyKitty/arcade-rs/internal/engine/geom"
	"github.com/mankyKitty/arcade-rs/internal/engine/gfx"
)

// texture wraps an SDL texture with its natural size cached at creation.
type texture struct {
	tex  *sdl.Texture
	w, h float64
}

func (t *texture) Size() (float64, float64) { return t.w, t.h }

func (t *texture) Destroy() {
	if t.tex != nil {
		t.tex.Destroy()
		t.tex = nil
	}
}

// font wraps a TTF font together with the renderer it rasterizes into.
type font struct {
	font     *ttf.Font
	renderer *sdl.Renderer
}

func (f *font) RenderText(text string, c gfx.Color) (gfx.Texture, error) {
	surface, err := f.font.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return nil, fmt.Errorf("rasterize %q: %w", text, err)
	}
	defer surface.Free()

	tex, err := f.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("texture from text surface: %w", err)
	}
	return &texture{tex: tex, w: float64(surface.W), h: float64(surface.H)}, nil
}

func (f *font) Close() {
	f.font.Close()
}

// OutputSize returns the renderer's current output size in pixels.
func (w *Window) OutputSize() (int, int, error) {
	width, height, err := w.renderer.GetOutputSize()
	if err != nil {
		return 0, 0, err
	}
	return int(width), int(height), nil
}

// LoadTexture decodes an image file into a texture on this renderer.
func (w *Window) LoadTexture(path string) (gfx.Texture, error) {
	tex, err := img.LoadTexture(w.renderer, path)
	if err != nil {
		return nil, err
	}
	_, _, tw, th, err := tex.Query()
	if err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("query texture %s: %w", path, err)
	}
	return &texture{tex: tex, w: float64(tw), h: float64(th)}, nil
}

// OpenFont loads a TTF font at the given point size.
func (w *Window) OpenFont(path string, size int) (gfx.Font, error) {
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	return &font{font: f, renderer: w.renderer}, nil
}

// SetDrawColor sets the renderer's current draw color.
func (w *Window) SetDrawColor(c gfx.Color) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// DrawRect outlines a rectangle in the current draw color.
func (w *Window) DrawRect(r geom.NativeRect) error {
	return w.renderer.DrawRect(sdlRect(r))
}

// FillRect fills a rectangle in the current draw color.
func (w *Window) FillRect(r geom.NativeRect) error {
	return w.renderer.FillRect(sdlRect(r))
}

// Copy scales src pixels of t onto dst.
func (w *Window) Copy(t gfx.Texture, src, dst geom.NativeRect) error {
	st, ok := t.(*texture)
	if !ok || st.tex == nil {
		return fmt.Errorf("copy: texture does not belong to this renderer")
	}
	return w.renderer.Copy(st.tex, sdlRect(src), sdlRect(dst))
}

// Clear fills the whole surface with the current draw color.
func (w *Window) Clear() error {
	return w.renderer.Clear()
}

// Present flips the back buffer to the display.
func (w *Window) Present() {
	w.renderer.Present()
}

func sdlRect(r geom.NativeRect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
