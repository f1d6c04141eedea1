// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"context"
	"image/color"

	"github.com/fluxmap/fluxmap/config"
	"github.com/fluxmap/fluxmap/diagram"
	"github.com/fluxmap/fluxmap/scale"
)

// Fallback appearance for elements no binding covers.
var (
	defaultWidth  = 10.0
	defaultRadius = 20.0
	defaultGrey   = color.RGBA{217, 217, 217, 255}
)

// A Style is the scalar channel output for one diagram element.
type Style struct {
	// Width is the stroke width of an arrow.
	Width float64
	// Radius is the radius of a node marker.
	Radius float64
	// Stroke colors an arrow, Fill a node.
	Stroke color.RGBA
	Fill   color.RGBA
}

// ApplyChannels maps every size and color binding that matches the
// active condition onto per-element styles. Scaling is local to each
// binding: a value is interpolated between the binding's own min and
// max, then into the configured destination bounds. Distribution-
// valued size bindings are summarized by their mean. Elements a
// binding does not cover get the documented fallbacks.
//
// Bindings are applied in load order, so when several match (notably
// under "ALL") the last one wins, mirroring the legend precedence.
func (s *Scene) ApplyChannels(ctx context.Context, layout diagram.Layout, st *config.Settings, active string) {
	for _, t := range layout.Targets() {
		if _, ok := s.Styles[t.ID]; !ok {
			s.Styles[t.ID] = &Style{
				Width:  defaultWidth,
				Radius: defaultRadius,
				Stroke: defaultGrey,
				Fill:   defaultGrey,
			}
		}
	}

	for _, b := range s.Bindings {
		if b.Glyph != GlyphArrow && b.Glyph != GlyphNode {
			continue
		}
		if b.Channel != Size && b.Channel != Color {
			continue
		}
		if !b.matches(active) {
			continue
		}
		values := b.Values
		if b.IsDist() {
			// Distribution-valued scalar channels collapse to
			// the mean.
			values = make([]float64, len(b.Dists))
			for i, d := range b.Dists {
				values[i] = scale.Mean(d)
			}
		}
		lo, hi := scale.Bounds(values)

		wantKind := diagram.Arrow
		bounds := st.Reaction
		if b.Glyph == GlyphNode {
			wantKind = diagram.Node
			bounds = st.Metabolite
		}
		for _, t := range layout.Targets() {
			if t.Kind != wantKind {
				continue
			}
			style := s.Styles[t.ID]
			idx := b.Index(t.ID)
			if idx < 0 {
				continue
			}
			v := values[idx]
			switch b.Channel {
			case Size:
				sz := scale.Lerp(v, lo, hi, bounds.MinSize, bounds.MaxSize)
				if b.Glyph == GlyphArrow {
					style.Width = sz
				} else {
					style.Radius = sz
				}
			case Color:
				c := scale.LerpHSV(scale.Norm(v, lo, hi), bounds.MinColor, bounds.MaxColor)
				if b.Glyph == GlyphArrow {
					style.Stroke = c
				} else {
					style.Fill = c
				}
			}
		}
	}
}
