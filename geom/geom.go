// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the small 2D vocabulary shared by the encoding
// pipeline: vectors, anchor transforms, and polyline paths.
//
// All geometry here is in map units. Rotation is in radians,
// counter-clockwise. Paths are plain point slices; the rendering layer
// decides how to stroke or fill them.
package geom

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Scale returns v scaled by k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Perp returns v rotated 90° counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// AngleBetween returns the signed angle from v to w in (-π, π].
func (v Vec2) AngleBetween(w Vec2) float64 {
	return math.Atan2(v.X*w.Y-v.Y*w.X, v.X*w.X+v.Y*w.Y)
}

// Transform places a glyph or axis in map space. Scale is applied
// first, then rotation, then translation, matching the usual
// scene-graph convention.
type Transform struct {
	Pos   Vec2    `json:"pos"`
	Rot   float64 `json:"rot"`
	Scale Vec2    `json:"scale"`
}

// NewTransform returns a transform at pos with rotation rot and unit
// scale.
func NewTransform(pos Vec2, rot float64) Transform {
	return Transform{Pos: pos, Rot: rot, Scale: Vec2{1, 1}}
}

// Apply maps a point from glyph-local coordinates to map coordinates.
func (t Transform) Apply(p Vec2) Vec2 {
	x, y := p.X*t.Scale.X, p.Y*t.Scale.Y
	sin, cos := math.Sincos(t.Rot)
	return Vec2{
		X: t.Pos.X + x*cos - y*sin,
		Y: t.Pos.Y + x*sin + y*cos,
	}
}

// Path is an open or closed polyline in glyph-local coordinates.
type Path []Vec2

// MaxY returns the largest Y coordinate on the path, or 0 for an
// empty path.
func (p Path) MaxY() float64 {
	max := 0.0
	for i, pt := range p {
		if i == 0 || pt.Y > max {
			max = pt.Y
		}
	}
	return max
}

// Side places a side-plot relative to its anchor element. SideUp is
// reserved for hover popups and is not a valid side-axis placement.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideUp
)

var sideNames = [...]string{"left", "right", "up"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return "invalid"
	}
	return sideNames[s]
}

// ParseSide converts a side name to a Side. It recognizes the names
// produced by Side.String.
func ParseSide(name string) (Side, bool) {
	for i, n := range sideNames {
		if n == name {
			return Side(i), true
		}
	}
	return 0, false
}
