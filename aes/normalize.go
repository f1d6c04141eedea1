// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import "github.com/fluxmap/fluxmap/config"

// NormalizeHeights rescales rendered plot geometry so that,
// independently per side, the tallest encoding reaches the side's
// configured target height. This keeps bar heights comparable across
// datasets that share a side even though their raw counts differ.
//
// Tick labels are counter-scaled by the reciprocal factor so text is
// not distorted, and Unscale encodings (box-point markers) keep their
// data-unit size. The pass also refreshes fill colors from the
// settings, so edits to a side's color show up on the next frame.
func (s *Scene) NormalizeHeights(st *config.Settings) {
	for _, e := range s.Encodings {
		if e.Unscale {
			continue
		}
		e.Fill = st.SideColor(e.Side, e.Condition)
		h := e.Path.MaxY()
		if h <= 0 {
			continue
		}
		k := st.Side(e.Side).MaxHeight / h
		e.Transform.Scale.Y = k
		e.LabelScale = 1 / k
	}
}

// FollowAxes re-anchors every side encoding onto its axis transform,
// so encodings track axes the user has dragged or rotated. Scale is
// left alone; it belongs to the normalizer.
func (s *Scene) FollowAxes() {
	for _, e := range s.Encodings {
		if e.Popup {
			continue
		}
		axis, ok := s.Axes[AxisKey{ID: e.ElementID, Side: e.Side}]
		if !ok {
			continue
		}
		e.Transform.Pos = axis.Transform.Pos
		e.Transform.Rot = axis.Transform.Rot
	}
}
