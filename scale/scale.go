// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values onto visual channels: affine
// interpolation for sizes and positions, and hue-aware color
// interpolation for color channels.
package scale

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Lerp affinely maps x from [srcMin, srcMax] to [dstMin, dstMax].
//
// A degenerate source range (srcMin == srcMax) maps every value to
// the midpoint of the destination range. Single-value datasets are
// common and must not poison dependent scales with NaN.
func Lerp(x, srcMin, srcMax, dstMin, dstMax float64) float64 {
	if srcMin == srcMax {
		return (dstMin + dstMax) / 2
	}
	return dstMin + (x-srcMin)*(dstMax-dstMin)/(srcMax-srcMin)
}

// Norm maps x from [lo, hi] to [0, 1], clamped. A degenerate range
// maps to 0.5.
func Norm(x, lo, hi float64) float64 {
	t := Lerp(x, lo, hi, 0, 1)
	return math.Max(0, math.Min(1, t))
}

// Bounds returns the minimum and maximum of xs. Like
// stats.Sample.Bounds, it returns (NaN, NaN) for an empty slice;
// callers must reject empty inputs before building a range.
func Bounds(xs []float64) (lo, hi float64) {
	return stats.Sample{Xs: xs}.Bounds()
}

// Mean returns the arithmetic mean of xs, or NaN if xs is empty.
func Mean(xs []float64) float64 {
	return stats.Sample{Xs: xs}.Mean()
}

// A Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RangeOf returns the range spanned by xs and whether xs was
// non-empty.
func RangeOf(xs []float64) (Range, bool) {
	lo, hi := Bounds(xs)
	if math.IsNaN(lo) {
		return Range{}, false
	}
	return Range{lo, hi}, true
}

// Union widens r to include o.
func (r Range) Union(o Range) Range {
	return Range{math.Min(r.Min, o.Min), math.Max(r.Max, o.Max)}
}

// Degenerate reports whether r spans no interval.
func (r Range) Degenerate() bool { return r.Min >= r.Max }
