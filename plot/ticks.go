// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/scale"
)

// A TickLabel is a text decoration attached to a rendered glyph. It
// lives in the glyph's local frame, so when the parent is rescaled by
// the height normalizer the label must be counter-scaled to keep the
// text undistorted; the aes package handles that.
type TickLabel struct {
	Text string
	Pos  geom.Vec2
	Size float64
}

// Ticks returns the three labels decorating a side or popup plot: the
// range minimum and maximum at the ends of the x axis and the peak
// value on the y axis. yPeak is in the same raw units as the plot
// geometry (bin count for histograms, density for KDE curves).
func Ticks(r scale.Range, width, yPeak, fontSize float64) []TickLabel {
	return []TickLabel{
		{Text: formatTick(r.Min), Pos: geom.Vec2{X: 0, Y: -fontSize}, Size: fontSize},
		{Text: formatTick(r.Max), Pos: geom.Vec2{X: width, Y: -fontSize}, Size: fontSize},
		{Text: formatTick(yPeak), Pos: geom.Vec2{X: -2 * fontSize, Y: yPeak}, Size: fontSize},
	}
}

// formatTick formats a tick value compactly; scientific notation
// kicks in only when %g would need it.
func formatTick(v float64) string {
	return fmt.Sprintf("%.3g", v)
}
