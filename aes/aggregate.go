// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"context"

	"github.com/fluxmap/fluxmap/diagram"
	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/internal/ctxlog"
	"github.com/fluxmap/fluxmap/scale"
)

// AggregateAxes merges every pending distribution binding into the
// shared axis for its (element, side) key: the axis is created on
// first use, its range is widened to cover the binding's local range,
// and the binding's condition is appended to the axis's condition
// list. Bindings move from Pending to Aggregated and are never
// reprocessed within a load cycle.
func (s *Scene) AggregateAxes(ctx context.Context, layout diagram.Layout) {
	log := ctxlog.From(ctx)
	for _, b := range s.Bindings {
		if b.State != Pending || b.Channel != Y || b.Glyph != GlyphHist || b.Popup || !b.IsDist() {
			continue
		}
		if b.Side != geom.SideLeft && b.Side != geom.SideRight {
			// Popup-only orientations never get a side axis.
			// The binding stays Pending forever, so warn once,
			// not every frame.
			if !b.sideWarned {
				log.Warn("unsupported side for axis", "side", b.Side.String(), "condition", b.Condition)
				b.sideWarned = true
			}
			continue
		}
		matched := false
		for _, t := range layout.Targets() {
			if t.Kind != diagram.Arrow {
				continue
			}
			idx := b.Index(t.ID)
			if idx < 0 {
				continue
			}
			local, ok := scale.RangeOf(b.Dists[idx])
			if !ok {
				continue
			}
			axis := s.axisFor(t, b, false)
			axis.union(local)
			axis.addCondition(b.Condition)
			matched = true
		}
		if matched {
			b.State = Aggregated
		}
	}
}

// AggregatePointAxes is the scalar variant of AggregateAxes. Scalar
// data feeds box-and-point glyphs whose vertical extent is fixed, so
// the axis range stays at its neutral default; only the anchor and
// the condition list matter.
func (s *Scene) AggregatePointAxes(ctx context.Context, layout diagram.Layout) {
	log := ctxlog.From(ctx)
	for _, b := range s.Bindings {
		if b.State != Pending || b.Channel != Y || b.Glyph != GlyphHist || b.Popup || b.IsDist() {
			continue
		}
		if b.Side != geom.SideLeft && b.Side != geom.SideRight {
			if !b.sideWarned {
				log.Warn("unsupported side for axis", "side", b.Side.String(), "condition", b.Condition)
				b.sideWarned = true
			}
			continue
		}
		matched := false
		for _, t := range layout.Targets() {
			if t.Kind != diagram.Arrow || b.Index(t.ID) < 0 {
				continue
			}
			axis := s.axisFor(t, b, true)
			axis.addCondition(b.Condition)
			matched = true
		}
		if matched {
			b.State = Aggregated
		}
	}
}

// AggregateHoverAxes pools popup bindings into one value range per
// element id. Popups have no side and no anchor transform; the hover
// UI positions them.
func (s *Scene) AggregateHoverAxes(ctx context.Context) {
	for _, b := range s.Bindings {
		if b.State != Pending || b.Channel != Y || !b.Popup || !b.IsDist() {
			continue
		}
		matched := false
		for idx, id := range b.IDs {
			local, ok := scale.RangeOf(b.Dists[idx])
			if !ok {
				continue
			}
			if prev, ok := s.HoverRanges[id]; ok {
				s.HoverRanges[id] = prev.Union(local)
			} else {
				s.HoverRanges[id] = local
			}
			matched = true
		}
		if matched {
			b.State = Aggregated
		}
	}
}

// axisFor looks up or creates the shared axis for binding b anchored
// at target t. A persisted transform for the key wins over the
// derived one.
func (s *Scene) axisFor(t diagram.Target, b *Binding, unscale bool) *Axis {
	key := AxisKey{ID: t.ID, Side: b.Side}
	if axis, ok := s.Axes[key]; ok {
		return axis
	}
	trans, ok := s.saved[key]
	if !ok {
		trans = anchorTransform(t, b.Side)
	}
	axis := &Axis{
		Key:       key,
		Extent:    t.Length,
		Transform: trans,
		Plot:      b.Plot,
		Unscale:   unscale,
	}
	s.Axes[key] = axis
	return axis
}
