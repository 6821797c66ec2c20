package gfx

import "github.com/mankyKitty/arcade-rs/internal/engine/geom"

// Texture is an opaque drawable resource owned by whoever created it.
type Texture interface {
	// Size returns the natural pixel dimensions of the texture.
	Size() (w, h float64)
	// Destroy releases the underlying resource.
	Destroy()
}

// Font is a loaded typeface at a fixed point size.
type Font interface {
	// RenderText rasterizes text into a new texture.
	RenderText(text string, c Color) (Texture, error)
	// Close releases the font resource.
	Close()
}

// Backend is the platform drawing surface the context issues commands
// against. The SDL window implements it; tests substitute a recording fake.
type Backend interface {
	// OutputSize returns the current surface dimensions in pixels,
	// reflecting the latest processed resize.
	OutputSize() (w, h int, err error)

	// LoadTexture decodes an image file into a texture.
	LoadTexture(path string) (Texture, error)

	// OpenFont loads a font file at the given point size.
	OpenFont(path string, size int) (Font, error)

	SetDrawColor(c Color)
	DrawRect(r geom.NativeRect) error
	FillRect(r geom.NativeRect) error
	Copy(t Texture, src, dst geom.NativeRect) error
	Clear() error
	Present()
}
