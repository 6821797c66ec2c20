package gfx

import (
	"errors"
	"fmt"

	"github.com/mankyKitty/arcade-rs/internal/engine/geom"
)

// fakeTexture is a sized stand-in for a GPU texture.
type fakeTexture struct {
	w, h      float64
	destroyed bool
}

func (t *fakeTexture) Size() (float64, float64) { return t.w, t.h }
func (t *fakeTexture) Destroy()                 { t.destroyed = true }

type fakeFont struct {
	renderErr error
	renders   int
	closed    int
}

func (f *fakeFont) RenderText(text string, _ Color) (Texture, error) {
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	f.renders++
	// 10x16 px per glyph, near enough for layout assertions.
	return &fakeTexture{w: float64(10 * len(text)), h: 16}, nil
}

func (f *fakeFont) Close() { f.closed++ }

type copyCall struct {
	tex      Texture
	src, dst geom.NativeRect
}

// fakeBackend records every backend call and can be scripted to fail.
type fakeBackend struct {
	width, height int

	textures  map[string]*fakeTexture
	loadErr   error
	fontOpens int
	openErr   error
	fonts     []*fakeFont
	renderErr error

	drawColor Color
	drawRects []geom.NativeRect
	fillRects []geom.NativeRect
	copies    []copyCall
	clears    int
	presents  int
	drawErr   error
	sizeErr   error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		width:    800,
		height:   600,
		textures: map[string]*fakeTexture{},
	}
}

func (b *fakeBackend) OutputSize() (int, int, error) {
	if b.sizeErr != nil {
		return 0, 0, b.sizeErr
	}
	return b.width, b.height, nil
}

func (b *fakeBackend) LoadTexture(path string) (Texture, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	tex, ok := b.textures[path]
	if !ok {
		return nil, fmt.Errorf("no such file %s: %w", path, errors.New("not found"))
	}
	return tex, nil
}

func (b *fakeBackend) OpenFont(path string, size int) (Font, error) {
	b.fontOpens++
	if b.openErr != nil {
		return nil, b.openErr
	}
	f := &fakeFont{renderErr: b.renderErr}
	b.fonts = append(b.fonts, f)
	return f, nil
}

func (b *fakeBackend) SetDrawColor(c Color) { b.drawColor = c }

func (b *fakeBackend) DrawRect(r geom.NativeRect) error {
	if b.drawErr != nil {
		return b.drawErr
	}
	b.drawRects = append(b.drawRects, r)
	return nil
}

func (b *fakeBackend) FillRect(r geom.NativeRect) error {
	if b.drawErr != nil {
		return b.drawErr
	}
	b.fillRects = append(b.fillRects, r)
	return nil
}

func (b *fakeBackend) Copy(t Texture, src, dst geom.NativeRect) error {
	if b.drawErr != nil {
		return b.drawErr
	}
	b.copies = append(b.copies, copyCall{tex: t, src: src, dst: dst})
	return nil
}

func (b *fakeBackend) Clear() error {
	if b.drawErr != nil {
		return b.drawErr
	}
	b.clears++
	return nil
}

func (b *fakeBackend) Present() { b.presents++ }
