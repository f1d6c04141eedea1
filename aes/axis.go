// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"github.com/fluxmap/fluxmap/diagram"
	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/plot"
	"github.com/fluxmap/fluxmap/scale"
)

// axisOffset is how far a side axis sits from its anchor element,
// along the element's perpendicular.
const axisOffset = 30.0

// An AxisKey identifies the shared coordinate axis for all
// distributions plotted on one side of one element.
type AxisKey struct {
	ID   string
	Side geom.Side
}

// An Axis is the coordinate frame merged across every condition
// plotted at its key. It is created lazily by the first binding that
// needs it and only the aggregation pass mutates it; after that the
// frame treats it as read-only until the next reload.
type Axis struct {
	Key AxisKey

	// Extent is the anchor element's physical length; plots are
	// scaled to span it.
	Extent float64

	// Range is the union of the value ranges of every
	// distribution aggregated here. It stays zero for
	// scalar-only axes, whose glyphs have fixed vertical extent.
	Range scale.Range
	// hasRange records whether Range has been seeded; the first
	// union must not absorb the zero value.
	hasRange bool

	// Transform anchors the axis in map space.
	Transform geom.Transform

	// Conditions lists the condition labels aggregated here, in
	// arrival order. A condition's index is its horizontal slot
	// in a box-and-point layout, and doubles as the deterministic
	// precedence for legend display under "ALL".
	Conditions []string

	// Plot is the glyph kind drawn against this axis.
	Plot plot.Kind

	// Unscale excludes this axis's glyphs from height
	// normalization: box-point markers are already sized in data
	// units.
	Unscale bool
}

// union widens the axis range to include r.
func (a *Axis) union(r scale.Range) {
	if !a.hasRange {
		a.Range, a.hasRange = r, true
		return
	}
	a.Range = a.Range.Union(r)
}

// addCondition appends cond to the axis's condition list if labeled.
func (a *Axis) addCondition(cond string) {
	if cond != "" {
		a.Conditions = append(a.Conditions, cond)
	}
}

// slot returns the horizontal box-point slot for cond.
func (a *Axis) slot(cond string) int {
	for i, c := range a.Conditions {
		if c == cond {
			return i
		}
	}
	return 0
}

// anchorTransform derives where an axis sits relative to its anchor
// element: rotated 90° from the element's perpendicular — the sign
// depending on the side — and offset outward by a fixed distance.
// The arrow direction itself comes from the loader's heuristic, so a
// user-dragged transform, when persisted, is reused verbatim instead
// (see Scene.RestoreTransforms).
func anchorTransform(t diagram.Target, side geom.Side) geom.Transform {
	perp := t.Dir.Perp()
	var rot, away float64
	switch side {
	case geom.SideRight:
		rot = -geom.Vec2{X: 0, Y: 1}.AngleBetween(perp)
		away = -axisOffset
	case geom.SideLeft:
		rot = -geom.Vec2{X: 0, Y: -1}.AngleBetween(perp)
		away = axisOffset
	}
	return geom.NewTransform(t.Pos.Add(perp.Scale(away)), rot)
}
