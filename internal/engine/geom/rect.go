// Package geom provides the 2D rectangle type and spatial predicates used
// throughout the engine. All operations are value-in/value-out.
package geom

import (
	"errors"
	"math"
)

// ErrInvalidExtent reports a rectangle whose coordinates cannot be
// represented in the native signed 32-bit pixel space, or a negative
// width/height. This is a programmer error, not a runtime condition.
var ErrInvalidExtent = errors.New("geom: rectangle extent invalid for native conversion")

// Rectangle is an axis-aligned rectangle in logical units.
// Width and height must be non-negative.
type Rectangle struct {
	X, Y, W, H float64
}

// NativeRect is a rectangle in native integer pixel coordinates, as
// consumed by the platform renderer.
type NativeRect struct {
	X, Y, W, H int32
}

// ToNative converts r to native pixel coordinates. It fails with
// ErrInvalidExtent if the width or height is negative, or if any corner
// coordinate falls outside the signed 32-bit range.
func (r Rectangle) ToNative() (NativeRect, error) {
	if r.W < 0 || r.H < 0 {
		return NativeRect{}, ErrInvalidExtent
	}
	if !fitsInt32(r.X) || !fitsInt32(r.Y) || !fitsInt32(r.X+r.W) || !fitsInt32(r.Y+r.H) {
		return NativeRect{}, ErrInvalidExtent
	}
	return NativeRect{
		X: int32(r.X),
		Y: int32(r.Y),
		W: int32(r.W),
		H: int32(r.H),
	}, nil
}

func fitsInt32(v float64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// MoveInside returns a copy of r translated so that it lies entirely
// within parent, clamping to the nearest edge on each axis independently.
// The rectangle is never resized. If r is larger than parent in either
// dimension the second return value is false.
func (r Rectangle) MoveInside(parent Rectangle) (Rectangle, bool) {
	if r.W > parent.W || r.H > parent.H {
		return Rectangle{}, false
	}

	out := r
	switch {
	case r.X < parent.X:
		out.X = parent.X
	case r.X+r.W > parent.X+parent.W:
		out.X = parent.X + parent.W - r.W
	}
	switch {
	case r.Y < parent.Y:
		out.Y = parent.Y
	case r.Y+r.H > parent.Y+parent.H:
		out.Y = parent.Y + parent.H - r.H
	}
	return out, true
}

// Contains reports whether inner lies entirely within r's closed bounds.
func (r Rectangle) Contains(inner Rectangle) bool {
	xmin := inner.X
	xmax := inner.X + inner.W
	ymin := inner.Y
	ymax := inner.Y + inner.H

	return xmin >= r.X && xmax <= r.X+r.W &&
		ymin >= r.Y && ymax <= r.Y+r.H
}
