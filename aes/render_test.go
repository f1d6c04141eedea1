// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"context"
	"testing"

	"github.com/fluxmap/fluxmap/config"
	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/plot"
)

func TestRenderSideHists(t *testing.T) {
	ctx := context.Background()
	scene := NewScene()
	b := distBinding("c1", geom.SideRight, []string{"PFK"}, [][]float64{{1, 2, 2, 3}})
	scene.Add(b)
	layout := testLayout()
	st := config.Default()

	scene.AggregateAxes(ctx, layout)
	scene.RenderSideHists(ctx, st)

	if b.State != Rendered {
		t.Fatalf("binding state = %v, want Rendered", b.State)
	}
	if len(scene.Encodings) != 1 {
		t.Fatalf("got %d encodings, want 1", len(scene.Encodings))
	}
	e := scene.Encodings[0]
	if e.ElementID != "PFK" || e.Side != geom.SideRight || e.Condition != "c1" {
		t.Errorf("bad tags: %+v", e)
	}
	if e.Path == nil || len(e.Labels) != 3 {
		t.Errorf("missing geometry or labels")
	}
	if e.Fill != st.SideColor(geom.SideRight, "c1") {
		t.Errorf("fill = %v, want side color", e.Fill)
	}

	// Re-rendering must not duplicate encodings: at most one per
	// (binding, target) pair per load cycle.
	scene.RenderSideHists(ctx, st)
	if len(scene.Encodings) != 1 {
		t.Errorf("got %d encodings after rerun, want 1", len(scene.Encodings))
	}
}

func TestRenderEmptySampleRetries(t *testing.T) {
	ctx := context.Background()
	scene := NewScene()
	// An empty sample set must produce no geometry this frame and
	// leave the binding eligible for a retry once data appears.
	b := distBinding("c1", geom.SideRight, []string{"PFK"}, [][]float64{{}})
	scene.Add(b)
	scene.AggregateAxes(ctx, testLayout())
	scene.RenderSideHists(ctx, config.Default())

	if b.State == Rendered {
		t.Error("binding with empty sample set was marked rendered")
	}
	if len(scene.Encodings) != 0 {
		t.Error("empty sample set produced geometry")
	}

	// A degenerate axis range behaves the same way: the binding
	// aggregates but rendering is retried, not given up on.
	single := distBinding("c2", geom.SideLeft, []string{"PFK"}, [][]float64{{4, 4, 4}})
	scene.Add(single)
	scene.AggregateAxes(ctx, testLayout())
	scene.RenderSideHists(ctx, config.Default())
	if single.State != Aggregated {
		t.Errorf("degenerate-range binding state = %v, want Aggregated", single.State)
	}
	if len(scene.Encodings) != 0 {
		t.Error("degenerate range produced geometry")
	}
}

func TestRenderPartialBindingRetries(t *testing.T) {
	ctx := context.Background()
	scene := NewScene()
	// The ENO half is empty and can never draw, but its axis exists
	// thanks to the second binding. The PFK half must draw exactly
	// once across repeated frames while ENO keeps being retried.
	mixed := distBinding("c1", geom.SideRight, []string{"PFK", "ENO"}, [][]float64{{1, 2, 3}, {}})
	scene.Add(
		mixed,
		distBinding("c2", geom.SideRight, []string{"ENO"}, [][]float64{{0, 5}}),
	)
	for i := 0; i < 3; i++ {
		scene.AggregateAxes(ctx, testLayout())
		scene.RenderSideHists(ctx, config.Default())
	}

	n := 0
	for _, e := range scene.Encodings {
		if e.Condition != "c1" {
			continue
		}
		if e.ElementID == "ENO" {
			t.Error("empty sample set produced geometry")
		}
		if e.ElementID == "PFK" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d encodings for (c1, PFK), want 1", n)
	}
	if mixed.State != Aggregated {
		t.Errorf("partially rendered binding state = %v, want Aggregated", mixed.State)
	}
}

func TestRenderOrderStable(t *testing.T) {
	// Encodings come out sorted by element id, so output derived
	// from them (the SVG element order, for one) is reproducible.
	ctx := context.Background()
	scene := NewScene()
	scene.Add(distBinding("c1", geom.SideRight, []string{"PFK", "ENO"}, [][]float64{{1, 2}, {3, 4}}))
	scene.AggregateAxes(ctx, testLayout())
	scene.RenderSideHists(ctx, config.Default())

	if len(scene.Encodings) != 2 {
		t.Fatalf("got %d encodings, want 2", len(scene.Encodings))
	}
	if scene.Encodings[0].ElementID != "ENO" || scene.Encodings[1].ElementID != "PFK" {
		t.Errorf("encoding order = %s, %s, want ENO, PFK",
			scene.Encodings[0].ElementID, scene.Encodings[1].ElementID)
	}
}

func TestRenderBoxFromDistributionSkips(t *testing.T) {
	ctx := context.Background()
	scene := NewScene()
	b := distBinding("c1", geom.SideRight, []string{"PFK"}, [][]float64{{1, 2, 3}})
	b.Plot = plot.BoxPoint
	scene.Add(b)
	scene.AggregateAxes(ctx, testLayout())
	scene.RenderSideHists(ctx, config.Default())

	// Usage error: logged and skipped, never fatal, nothing
	// rendered.
	if len(scene.Encodings) != 0 {
		t.Errorf("got %d encodings, want 0", len(scene.Encodings))
	}
	if b.State == Rendered {
		t.Error("mismatched glyph kind was marked rendered")
	}
}

func TestRenderSideBoxes(t *testing.T) {
	ctx := context.Background()
	scene := NewScene()
	b1 := pointBinding("c1", geom.SideLeft, []string{"PFK"}, []float64{1})
	b2 := pointBinding("c2", geom.SideLeft, []string{"PFK"}, []float64{5})
	scene.Add(b1, b2)
	layout := testLayout()
	st := config.Default()

	scene.AggregatePointAxes(ctx, layout)
	scene.RenderSideBoxes(ctx, st)

	if b1.State != Rendered || b2.State != Rendered {
		t.Fatal("scalar bindings not rendered")
	}
	if len(scene.Encodings) != 2 {
		t.Fatalf("got %d encodings, want 2", len(scene.Encodings))
	}
	// Both markers are excluded from height normalization and
	// occupy distinct condition slots.
	x0 := scene.Encodings[0].Path[0].X
	x1 := scene.Encodings[1].Path[0].X
	if x0 == x1 {
		t.Error("condition slots overlap")
	}
	for _, e := range scene.Encodings {
		if !e.Unscale {
			t.Error("box marker not excluded from normalization")
		}
	}
}

func TestRenderHoverHists(t *testing.T) {
	ctx := context.Background()
	scene := NewScene()
	b := distBinding("c1", geom.SideUp, []string{"PFK"}, [][]float64{{1, 2, 3}})
	b.Popup = true
	scene.Add(b)
	scene.AggregateHoverAxes(ctx)
	scene.RenderHoverHists(ctx, config.Default())

	if b.State != Rendered {
		t.Fatal("popup binding not rendered")
	}
	if len(scene.Encodings) != 1 {
		t.Fatalf("got %d encodings, want 1", len(scene.Encodings))
	}
	e := scene.Encodings[0]
	if !e.Popup {
		t.Error("popup encoding not tagged")
	}
	if e.Visible {
		t.Error("popup must start hidden; the hover UI reveals it")
	}
}
