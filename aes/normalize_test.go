// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"testing"

	"github.com/fluxmap/fluxmap/config"
	"github.com/fluxmap/fluxmap/geom"
)

func barPath(height float64) geom.Path {
	return geom.Path{
		{X: 0, Y: 0},
		{X: 0, Y: height},
		{X: 90, Y: height},
		{X: 90, Y: 0},
	}
}

func TestNormalizeHeights(t *testing.T) {
	st := config.Default() // target height 100 per side
	scene := NewScene()
	short := &Encoding{ElementID: "PFK", Side: geom.SideRight, Path: barPath(10), Transform: geom.NewTransform(geom.Vec2{}, 0)}
	tall := &Encoding{ElementID: "ENO", Side: geom.SideRight, Path: barPath(40), Transform: geom.NewTransform(geom.Vec2{}, 0)}
	scene.Encodings = append(scene.Encodings, short, tall)

	scene.NormalizeHeights(st)

	// Each encoding is scaled so its own maximum reaches the target
	// height: 10 → 100 and 40 → 100.
	if got := short.Transform.Scale.Y; got != 10 {
		t.Errorf("short scale = %v, want 10", got)
	}
	if got := tall.Transform.Scale.Y; got != 2.5 {
		t.Errorf("tall scale = %v, want 2.5", got)
	}
	// Labels counter-scale so text keeps its size.
	if got := short.LabelScale; got != 0.1 {
		t.Errorf("short label scale = %v, want 0.1", got)
	}
	if got := tall.LabelScale; got != 0.4 {
		t.Errorf("tall label scale = %v, want 0.4", got)
	}
}

func TestNormalizeSkipsUnscale(t *testing.T) {
	scene := NewScene()
	box := &Encoding{
		ElementID: "PFK",
		Side:      geom.SideLeft,
		Path:      barPath(20),
		Transform: geom.NewTransform(geom.Vec2{}, 0),
		Unscale:   true,
	}
	scene.Encodings = append(scene.Encodings, box)
	scene.NormalizeHeights(config.Default())

	if box.Transform.Scale.Y != 1 {
		t.Errorf("unscaled marker was rescaled by %v", box.Transform.Scale.Y)
	}
	if box.LabelScale != 0 {
		t.Errorf("unscaled marker got label scale %v", box.LabelScale)
	}
}

func TestNormalizeRefreshesFill(t *testing.T) {
	st := config.Default()
	scene := NewScene()
	e := &Encoding{ElementID: "PFK", Side: geom.SideRight, Condition: "c1", Path: barPath(10)}
	scene.Encodings = append(scene.Encodings, e)

	scene.NormalizeHeights(st)
	if e.Fill != st.SideColor(geom.SideRight, "c1") {
		t.Errorf("fill = %v, want side default", e.Fill)
	}

	// An edited per-condition color takes effect on the next pass.
	edited := st.Right.Colors[""]
	edited.R ^= 0xff
	st.Right.Colors["c1"] = edited
	scene.NormalizeHeights(st)
	if e.Fill != edited {
		t.Errorf("fill = %v, want edited %v", e.Fill, edited)
	}
}

func TestFollowAxes(t *testing.T) {
	scene := NewScene()
	key := AxisKey{ID: "PFK", Side: geom.SideRight}
	scene.Axes[key] = &Axis{Transform: geom.NewTransform(geom.Vec2{X: 7, Y: -30}, 0.5)}

	hist := &Encoding{ElementID: "PFK", Side: geom.SideRight}
	popup := &Encoding{ElementID: "PFK", Side: geom.SideRight, Popup: true}
	scene.Encodings = append(scene.Encodings, hist, popup)

	scene.FollowAxes()
	if hist.Transform.Pos != (geom.Vec2{X: 7, Y: -30}) || hist.Transform.Rot != 0.5 {
		t.Errorf("encoding did not follow its axis: %+v", hist.Transform)
	}
	if popup.Transform.Pos != (geom.Vec2{}) {
		t.Error("popup encoding followed a side axis")
	}

	// A drag after rendering carries the encoding along.
	scene.Axes[key].Transform.Pos = geom.Vec2{X: 100, Y: 100}
	scene.FollowAxes()
	if hist.Transform.Pos != (geom.Vec2{X: 100, Y: 100}) {
		t.Errorf("encoding did not track dragged axis: %+v", hist.Transform.Pos)
	}
}
