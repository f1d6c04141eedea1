// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"context"
	"sort"

	"github.com/fluxmap/fluxmap/config"
	"github.com/fluxmap/fluxmap/diagram"
	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/scale"
)

// A Scene accumulates everything the encoding passes produce for one
// loaded dataset: shared axes, rendered encodings, and per-element
// scalar styles. The host render loop owns one Scene and calls Frame
// on it once per update tick.
type Scene struct {
	// Bindings is every loaded dataset/channel pair, in load
	// order. Load order is significant: it defines the
	// last-match precedence legends use under "ALL".
	Bindings []*Binding

	// Axes holds the shared side axes, keyed by (element, side).
	Axes map[AxisKey]*Axis

	// HoverRanges holds the popup axis range per element id.
	// Popups share one range across conditions but have no
	// spatial anchor of their own; they draw at a fixed offset
	// from the element.
	HoverRanges map[string]scale.Range

	// Encodings is every rendered glyph, in render order.
	Encodings []*Encoding

	// Styles is the scalar channel output per element id.
	Styles map[string]*Style

	// saved holds persisted anchor transforms, applied in
	// preference to derived ones when an axis is created.
	saved map[AxisKey]geom.Transform
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		Axes:        make(map[AxisKey]*Axis),
		HoverRanges: make(map[string]scale.Range),
		Styles:      make(map[string]*Style),
		saved:       make(map[AxisKey]geom.Transform),
	}
}

// Add appends bindings to the scene.
func (s *Scene) Add(bindings ...*Binding) {
	s.Bindings = append(s.Bindings, bindings...)
}

// Reset drops all derived state and marks every binding Pending, as
// on a dataset reload. Persisted anchor transforms survive so dragged
// axes come back where the user left them. No partial state is
// retained; the next Frame rebuilds everything from scratch.
func (s *Scene) Reset() {
	s.Axes = make(map[AxisKey]*Axis)
	s.HoverRanges = make(map[string]scale.Range)
	s.Encodings = nil
	s.Styles = make(map[string]*Style)
	for _, b := range s.Bindings {
		b.State = Pending
		b.renderedIDs = nil
		b.sideWarned = false
	}
}

// sortedAxes returns the shared axes ordered by key. The render passes
// iterate this instead of the Axes map so encoding order, and with it
// any output derived from it, is the same run to run.
func (s *Scene) sortedAxes() []*Axis {
	keys := make([]AxisKey, 0, len(s.Axes))
	for key := range s.Axes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ID != keys[j].ID {
			return keys[i].ID < keys[j].ID
		}
		return keys[i].Side < keys[j].Side
	})
	axes := make([]*Axis, len(keys))
	for i, key := range keys {
		axes[i] = s.Axes[key]
	}
	return axes
}

// Frame runs the geometry passes in dependency order: axes must exist
// before plots are drawn against them, and heights can only be
// normalized once all plots of the frame are out. Legend
// synchronization is independent and lives in the legend package.
//
// Every pass is idempotent within a load cycle, so calling Frame
// again without new data is cheap and changes nothing.
func (s *Scene) Frame(ctx context.Context, layout diagram.Layout, st *config.Settings, conds *ConditionState) {
	conds.Fill(s.Bindings)

	s.AggregateAxes(ctx, layout)
	s.AggregatePointAxes(ctx, layout)
	s.AggregateHoverAxes(ctx)

	s.RenderSideHists(ctx, st)
	s.RenderSideBoxes(ctx, st)
	s.RenderHoverHists(ctx, st)

	s.NormalizeHeights(st)
	s.FollowAxes()

	s.ApplyChannels(ctx, layout, st, conds.Active)
	s.FilterVisibility(conds.Active)
}
