// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"context"
	"image/color"

	"github.com/fluxmap/fluxmap/config"
	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/internal/ctxlog"
	"github.com/fluxmap/fluxmap/plot"
	"github.com/fluxmap/fluxmap/scale"
)

// popupWidth is the fixed horizontal extent of hover popup plots.
const popupWidth = 600.0

// An Encoding is one rendered glyph: histogram outline, density
// curve, or box-point marker, tagged for the normalization and
// visibility passes that run after rendering.
type Encoding struct {
	ElementID string
	Side      geom.Side
	Condition string
	Popup     bool

	// Unscale excludes the encoding from height normalization.
	Unscale bool

	Path      geom.Path
	Transform geom.Transform
	Fill      color.RGBA
	Stroke    color.RGBA

	// Labels are tick decorations in the glyph's local frame.
	// LabelScale is the reciprocal of the normalization factor,
	// applied to labels so text does not distort.
	Labels     []plot.TickLabel
	LabelScale float64

	Visible bool
}

// RenderSideHists draws every aggregated distribution binding against
// its shared axes as histogram outlines or density curves. A binding
// whose sample set is empty (or whose axis range is degenerate)
// produces no geometry this frame and stays Aggregated, so it is
// retried when the data changes; targets that did draw are recorded
// on the binding and never drawn twice in a load cycle.
func (s *Scene) RenderSideHists(ctx context.Context, st *config.Settings) {
	log := ctxlog.From(ctx)
	for _, b := range s.Bindings {
		if b.State != Aggregated || b.Channel != Y || b.Glyph != GlyphHist || b.Popup || !b.IsDist() {
			continue
		}
		if b.Plot == plot.BoxPoint {
			// Usage error: a box needs one value per id, not
			// a sample set. Skip, never crash.
			log.Warn("box-point requested for a distribution binding; use scalar data", "condition", b.Condition)
			continue
		}
		incomplete := false
		for _, axis := range s.sortedAxes() {
			idx := b.Index(axis.Key.ID)
			if idx < 0 || axis.Key.Side != b.Side || b.renderedIDs[axis.Key.ID] {
				continue
			}
			var path geom.Path
			switch b.Plot {
			case plot.Hist:
				path = plot.Histogram(b.Dists[idx], plot.SideBins, axis.Extent, axis.Range)
			case plot.KDE:
				path = plot.Density(b.Dists[idx], plot.KDEPoints, axis.Extent, axis.Range)
			}
			if path == nil {
				log.Warn("no geometry for side plot",
					"id", axis.Key.ID, "side", b.Side.String(), "condition", b.Condition)
				incomplete = true
				continue
			}
			s.Encodings = append(s.Encodings, &Encoding{
				ElementID:  axis.Key.ID,
				Side:       b.Side,
				Condition:  b.Condition,
				Path:       path,
				Transform:  axis.Transform,
				Fill:       st.SideColor(b.Side, b.Condition),
				Labels:     plot.Ticks(axis.Range, axis.Extent, path.MaxY(), st.FontSize),
				LabelScale: 1,
				Visible:    true,
			})
			b.markRendered(axis.Key.ID)
		}
		if !incomplete && len(b.renderedIDs) > 0 {
			b.State = Rendered
		}
	}
}

// RenderSideBoxes draws aggregated scalar bindings as box-point
// markers. The marker's horizontal slot is its condition's index in
// the axis condition list; its vertical position comes from the
// scalar value scaled through the side's target height. Box markers
// are sized in data units already, so they are excluded from height
// normalization.
func (s *Scene) RenderSideBoxes(ctx context.Context, st *config.Settings) {
	log := ctxlog.From(ctx)
	for _, b := range s.Bindings {
		if b.State != Aggregated || b.Channel != Y || b.Glyph != GlyphHist || b.Popup || b.IsDist() {
			continue
		}
		if b.Plot != plot.BoxPoint {
			log.Warn("coercing scalar side plot to box-point", "plot", b.Plot.String(), "condition", b.Condition)
		}
		lo, hi := scale.Bounds(b.Values)
		rendered := false
		for _, axis := range s.sortedAxes() {
			idx := b.Index(axis.Key.ID)
			if idx < 0 || axis.Key.Side != b.Side {
				continue
			}
			v := b.Values[idx]
			y := scale.Lerp(v, lo, hi, 0, st.Side(b.Side).MaxHeight)
			s.Encodings = append(s.Encodings, &Encoding{
				ElementID:  axis.Key.ID,
				Side:       b.Side,
				Condition:  b.Condition,
				Unscale:    true,
				Path:       plot.Box(len(axis.Conditions), axis.slot(b.Condition), y),
				Transform:  axis.Transform,
				Fill:       scale.LerpHSV(scale.Norm(v, lo, hi), st.Reaction.MinColor, st.Reaction.MaxColor),
				Stroke:     color.RGBA{0, 0, 0, 255},
				LabelScale: 1,
				Visible:    true,
			})
			rendered = true
		}
		if rendered {
			b.State = Rendered
		}
	}
}

// RenderHoverHists draws popup bindings against their per-element
// hover range at the fixed popup width. Popups start hidden; the
// hover UI toggles them.
func (s *Scene) RenderHoverHists(ctx context.Context, st *config.Settings) {
	log := ctxlog.From(ctx)
	for _, b := range s.Bindings {
		if b.State != Aggregated || b.Channel != Y || !b.Popup || !b.IsDist() {
			continue
		}
		if b.Plot == plot.BoxPoint {
			log.Warn("box-point requested for a distribution binding; use scalar data", "condition", b.Condition)
			continue
		}
		incomplete := false
		for idx, id := range b.IDs {
			r, ok := s.HoverRanges[id]
			if !ok || b.renderedIDs[id] {
				continue
			}
			var path geom.Path
			switch b.Plot {
			case plot.Hist:
				path = plot.Histogram(b.Dists[idx], plot.PopupBins, popupWidth, r)
			case plot.KDE:
				path = plot.Density(b.Dists[idx], plot.KDEPoints, popupWidth, r)
			}
			if path == nil {
				incomplete = true
				continue
			}
			s.Encodings = append(s.Encodings, &Encoding{
				ElementID:  id,
				Side:       geom.SideUp,
				Condition:  b.Condition,
				Popup:      true,
				Path:       path,
				Transform:  geom.NewTransform(geom.Vec2{}, 0),
				Fill:       st.SideColor(geom.SideUp, b.Condition),
				Labels:     plot.Ticks(r, popupWidth, path.MaxY(), st.FontSize),
				LabelScale: 1,
				Visible:    false,
			})
			b.markRendered(id)
		}
		if !incomplete && len(b.renderedIDs) > 0 {
			b.State = Rendered
		}
	}
}
