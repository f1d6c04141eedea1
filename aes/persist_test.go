// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fluxmap/fluxmap/geom"
)

func TestTransformsJSONRoundTrip(t *testing.T) {
	scene := NewScene()
	scene.Add(
		distBinding("", geom.SideRight, []string{"PFK"}, [][]float64{{1, 2}}),
		distBinding("", geom.SideLeft, []string{"ENO"}, [][]float64{{3, 4}}),
	)
	scene.AggregateAxes(context.Background(), testLayout())
	scene.Axes[AxisKey{ID: "PFK", Side: geom.SideRight}].Transform.Pos = geom.Vec2{X: 42, Y: -7}

	var buf bytes.Buffer
	if err := scene.WriteTransforms(&buf); err != nil {
		t.Fatal(err)
	}

	scene2 := NewScene()
	if err := scene2.ReadTransforms(&buf); err != nil {
		t.Fatal(err)
	}
	scene2.Add(distBinding("", geom.SideRight, []string{"PFK"}, [][]float64{{9}}))
	scene2.AggregateAxes(context.Background(), testLayout())
	got := scene2.Axes[AxisKey{ID: "PFK", Side: geom.SideRight}].Transform
	if got.Pos != (geom.Vec2{X: 42, Y: -7}) {
		t.Errorf("restored pos = %v, want (42, -7)", got.Pos)
	}
}

func TestReadTransformsErrors(t *testing.T) {
	scene := NewScene()
	if err := scene.ReadTransforms(strings.NewReader("[")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if err := scene.RestoreTransforms([]SavedAxis{{ID: "PFK", Side: "down"}}); err == nil {
		t.Error("unknown side accepted")
	}
}
