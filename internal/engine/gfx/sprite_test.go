package gfx

import (
	"testing"

	"github.com/mankyKitty/arcade-rs/internal/engine/geom"
)

func TestRegionWithinBounds(t *testing.T) {
	sheet := NewSprite(&fakeTexture{w: 129, h: 117})

	// A 3x3 atlas of 43x39 cells covers the sheet exactly.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cell := geom.Rectangle{
				X: 43 * float64(x),
				Y: 39 * float64(y),
				W: 43,
				H: 39,
			}
			s, err := sheet.Region(cell)
			if err != nil {
				t.Fatalf("cell (%d,%d): %v", x, y, err)
			}
			if w, h := s.Size(); w != 43 || h != 39 {
				t.Errorf("cell (%d,%d): got %vx%v, want 43x39", x, y, w, h)
			}
		}
	}
}

func TestRegionOutOfBounds(t *testing.T) {
	sheet := NewSprite(&fakeTexture{w: 129, h: 117})

	tests := []struct {
		name string
		rect geom.Rectangle
	}{
		{"past right edge", geom.Rectangle{X: 100, Y: 0, W: 43, H: 39}},
		{"past bottom edge", geom.Rectangle{X: 0, Y: 100, W: 43, H: 39}},
		{"negative origin", geom.Rectangle{X: -1, Y: 0, W: 43, H: 39}},
		{"wider than sheet", geom.Rectangle{X: 0, Y: 0, W: 130, H: 39}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sheet.Region(tt.rect); err != ErrOutOfBounds {
				t.Errorf("expected ErrOutOfBounds, got %v", err)
			}
		})
	}
}

func TestNestedRegionOffsets(t *testing.T) {
	sheet := NewSprite(&fakeTexture{w: 129, h: 117})

	row, err := sheet.Region(geom.Rectangle{X: 0, Y: 39, W: 129, H: 39})
	if err != nil {
		t.Fatalf("row: %v", err)
	}
	cell, err := row.Region(geom.Rectangle{X: 86, Y: 0, W: 43, H: 39})
	if err != nil {
		t.Fatalf("cell: %v", err)
	}

	// The nested region addresses the sheet at the composed offset.
	if cell.src.X != 86 || cell.src.Y != 39 {
		t.Errorf("composed offset (%v,%v), want (86,39)", cell.src.X, cell.src.Y)
	}

	// A nested region cannot escape its parent row.
	if _, err := row.Region(geom.Rectangle{X: 0, Y: 1, W: 43, H: 39}); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds escaping the row, got %v", err)
	}
}
