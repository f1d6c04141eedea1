// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend keeps the legend widgets synchronized with whatever
// encoding is currently active: which legends are visible, what their
// bound labels say, and the gradient strip each one shows.
//
// Legends are pull-based. Sync re-derives every widget from the scene
// each pass, so it reacts to condition switches and data range
// changes without any bookkeeping in between.
package legend

import (
	"context"
	"fmt"

	"github.com/fluxmap/fluxmap/aes"
	"github.com/fluxmap/fluxmap/config"
	"github.com/fluxmap/fluxmap/scale"
)

// Kind is the purpose of a legend widget.
type Kind int

const (
	// Arrow shows the reaction color gradient.
	Arrow Kind = iota
	// Circle shows the metabolite color gradient.
	Circle
	// Box shows the box-point color gradient for one side.
	Box
	// Hist shows the histogram color and shared range for one
	// side.
	Hist
)

// Sync recomputes every widget from the current scene state. A widget
// becomes visible when at least one binding (or axis, for Hist
// widgets) matches its purpose under the active condition; "ALL"
// shows every conditioned legend.
//
// When several bindings match — always the case under "ALL" — the
// widget displays the bounds of the last match in load order. Load
// order is the defined precedence here, not an accident of
// iteration: bindings live in an ordered slice.
func Sync(ctx context.Context, widgets []*Widget, scene *aes.Scene, st *config.Settings, active string) {
	for _, w := range widgets {
		switch w.Kind {
		case Arrow:
			syncGradient(w, scene, st, active, aes.GlyphArrow, st.Reaction)
		case Circle:
			syncGradient(w, scene, st, active, aes.GlyphNode, st.Metabolite)
		case Box:
			syncBox(w, scene, st, active)
		case Hist:
			syncHist(w, scene, st, active)
		}
	}
}

// syncGradient drives the arrow and circle color legends.
func syncGradient(w *Widget, scene *aes.Scene, st *config.Settings, active string, glyph aes.Glyph, bounds config.ChannelBounds) {
	visible := false
	for _, b := range scene.Bindings {
		if b.Glyph != glyph || b.Channel != aes.Color || b.IsDist() {
			continue
		}
		if b.Condition != "" && b.Condition != active && active != aes.AllConditions {
			continue
		}
		visible = true
		lo, hi := scale.Bounds(b.Values)
		w.setBounds(lo, hi)
		w.repaint(scale.NewGradient(lo, hi, bounds.MinColor, bounds.MaxColor, st.ZeroWhite))
	}
	w.Visible = visible
}

// syncBox drives the per-side box-point color legends.
func syncBox(w *Widget, scene *aes.Scene, st *config.Settings, active string) {
	visible := false
	for _, b := range scene.Bindings {
		if b.Glyph != aes.GlyphHist || b.Channel != aes.Y || b.IsDist() || b.Popup {
			continue
		}
		if b.Condition != "" && b.Condition != active && active != aes.AllConditions {
			continue
		}
		if b.Side != w.Side {
			continue
		}
		visible = true
		lo, hi := scale.Bounds(b.Values)
		w.setBounds(lo, hi)
		w.repaint(scale.NewGradient(lo, hi, st.Reaction.MinColor, st.Reaction.MaxColor, st.ZeroWhite))
	}
	w.Visible = visible
}

// syncHist drives the per-side histogram legends: visible while any
// histogram data exists for the side, showing the shared axis range
// and the side's (condition-dependent) plot color.
func syncHist(w *Widget, scene *aes.Scene, st *config.Settings, active string) {
	// Several axes can share a side; show the one with the lowest
	// element id so the labels are stable across runs instead of
	// following map iteration order.
	var axis *aes.Axis
	for _, a := range scene.Axes {
		if a.Key.Side != w.Side || a.Unscale {
			continue
		}
		if axis == nil || a.Key.ID < axis.Key.ID {
			axis = a
		}
	}
	hasData := false
	for _, b := range scene.Bindings {
		if b.Glyph == aes.GlyphHist && b.Channel == aes.Y && b.IsDist() && !b.Popup && b.Side == w.Side {
			hasData = true
			break
		}
	}
	if axis == nil || !hasData {
		w.Visible = false
		return
	}
	w.Visible = true
	w.setBounds(axis.Range.Min, axis.Range.Max)
	w.fill(st.SideColor(w.Side, active))
}

func formatBound(v float64) string {
	return fmt.Sprintf("%.2e", v)
}
