// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot turns sample sets into glyph geometry: histogram bar
// outlines, kernel density curves, and box-and-point markers.
//
// All geometry is emitted in a local frame whose X axis spans
// [0, width] (the physical extent of the anchor element) and whose Y
// axis is in raw data units (bin counts or density). Height
// normalization is a later pass; see the aes package.
package plot

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/scale"
)

// Kind selects how a y-channel binding is drawn against its axis.
type Kind int

const (
	// Hist draws a binned histogram outline.
	Hist Kind = iota
	// KDE draws a kernel density estimate curve.
	KDE
	// BoxPoint draws one small box per condition, fanned out
	// horizontally. Only valid for scalar bindings.
	BoxPoint
)

var kindNames = [...]string{"hist", "kde", "box"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// SideBins is the bin count for side histograms. PopupBins is the
// finer binning used by hover popups, which have much more room.
const (
	SideBins  = 30
	PopupBins = 120
)

// KDEPoints is the number of points a density curve is sampled at.
const KDEPoints = 200

// Histogram bins xs into bins equal intervals over r and returns a
// closed bar outline scaled so its horizontal extent is width. It
// returns nil if xs is empty or r is degenerate; callers should skip
// the draw and retry when the data changes.
func Histogram(xs []float64, bins int, width float64, r scale.Range) geom.Path {
	if len(xs) == 0 || bins <= 0 || r.Degenerate() {
		return nil
	}
	counts := make([]float64, bins)
	span := r.Max - r.Min
	for _, x := range xs {
		i := int(float64(bins) * (x - r.Min) / span)
		if i < 0 {
			continue
		}
		if i >= bins {
			// The last bin is closed on both ends so that
			// r.Max lands in it instead of falling off.
			if x > r.Max {
				continue
			}
			i = bins - 1
		}
		counts[i]++
	}

	binW := width / float64(bins)
	path := make(geom.Path, 0, 2*bins+2)
	path = append(path, geom.Vec2{X: 0, Y: 0})
	for i, c := range counts {
		x0 := float64(i) * binW
		path = append(path,
			geom.Vec2{X: x0, Y: c},
			geom.Vec2{X: x0 + binW, Y: c})
	}
	path = append(path, geom.Vec2{X: width, Y: 0})
	return path
}

// Density returns a closed kernel density curve for xs over r,
// sampled at n points and scaled so its horizontal extent is width.
// The bandwidth comes from Scott's rule, so the curve is a pure
// function of the input sample. It returns nil if xs is empty or r is
// degenerate.
func Density(xs []float64, n int, width float64, r scale.Range) geom.Path {
	if len(xs) == 0 || n <= 0 || r.Degenerate() {
		return nil
	}
	sample := stats.Sample{Xs: xs}
	bw := stats.BandwidthScott(sample)
	if bw <= 0 {
		// Constant samples have no spread to estimate from;
		// any narrow kernel gives the expected spike.
		bw = 1e-3 * (r.Max - r.Min)
	}
	// The zero Kernel is the Gaussian kernel.
	kde := stats.KDE{
		Sample:    sample,
		Bandwidth: bw,
	}
	ss := vec.Linspace(r.Min, r.Max, n)
	ys := vec.Map(kde.PDF, ss)

	path := make(geom.Path, 0, n+2)
	path = append(path, geom.Vec2{X: 0, Y: 0})
	for i, x := range ss {
		path = append(path, geom.Vec2{
			X: scale.Lerp(x, r.Min, r.Max, 0, width),
			Y: ys[i],
		})
	}
	path = append(path, geom.Vec2{X: width, Y: 0})
	return path
}

// boxSide is the edge length of a box-point marker.
const boxSide = 20.0

// Box returns the outline of the box-point marker for the condition
// at slot out of nconds slots, centered vertically on y. Slots fan
// out symmetrically around the axis anchor so markers for different
// conditions never overlap.
func Box(nconds, slot int, y float64) geom.Path {
	if nconds < 1 {
		nconds = 1
	}
	if slot < 0 || slot >= nconds {
		slot = 0
	}
	x0 := (float64(slot) - float64(nconds)/2) * boxSide
	return geom.Path{
		{X: x0, Y: y - boxSide/2},
		{X: x0 + boxSide, Y: y - boxSide/2},
		{X: x0 + boxSide, Y: y + boxSide/2},
		{X: x0, Y: y + boxSide/2},
		{X: x0, Y: y - boxSide/2},
	}
}
