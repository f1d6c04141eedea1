// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Fluxmap renders a metabolic map with data encoded onto it: arrow
// width and color, node size and color, and per-condition side plots,
// written out as an SVG snapshot plus one PNG per visible legend.
//
// It stands in for an interactive host: it runs the same per-frame
// encoding passes an interactive renderer would, once.
//
// Usage:
//
//	fluxmap -map map.json -data data.json [-settings settings.hcl]
//	        [-condition NAME] [-positions axes.json] [-o out.svg]
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/fluxmap/fluxmap/aes"
	"github.com/fluxmap/fluxmap/config"
	"github.com/fluxmap/fluxmap/data"
	"github.com/fluxmap/fluxmap/diagram"
	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/internal/ctxlog"
	"github.com/fluxmap/fluxmap/legend"
)

var (
	mapPath      = flag.String("map", "", "map geometry JSON (required)")
	dataPath     = flag.String("data", "", "dataset JSON")
	settingsPath = flag.String("settings", "", "appearance settings HCL")
	condition    = flag.String("condition", "", "active condition (\"ALL\" for the union)")
	positions    = flag.String("positions", "", "axis positions JSON to restore and update")
	outPath      = flag.String("o", "map.svg", "output SVG")
	legendDir    = flag.String("legend-dir", "", "directory for legend PNGs")
)

func main() {
	flag.Parse()
	if *mapPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := ctxlog.With(context.Background(), logger)

	if err := run(ctx); err != nil {
		logger.Error("fluxmap failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	st := config.Default()
	if *settingsPath != "" {
		var err error
		if st, err = config.Load(*settingsPath); err != nil {
			return err
		}
	}

	mf, err := os.Open(*mapPath)
	if err != nil {
		return err
	}
	layout, err := diagram.Load(mf)
	mf.Close()
	if err != nil {
		return err
	}

	scene := aes.NewScene()
	if *dataPath != "" {
		df, err := os.Open(*dataPath)
		if err != nil {
			return err
		}
		file, err := data.Load(df)
		df.Close()
		if err != nil {
			return err
		}
		bindings, err := file.Bindings()
		if err != nil {
			return err
		}
		scene.Add(bindings...)
	}

	if *positions != "" {
		if pf, err := os.Open(*positions); err == nil {
			err = scene.ReadTransforms(pf)
			pf.Close()
			if err != nil {
				return err
			}
		}
	}

	conds := &aes.ConditionState{Active: *condition}
	scene.Frame(ctx, layout, st, conds)

	widgets := []*legend.Widget{
		legend.New(legend.Arrow, geom.SideRight, 120, 12),
		legend.New(legend.Circle, geom.SideRight, 120, 12),
		legend.New(legend.Box, geom.SideLeft, 120, 12),
		legend.New(legend.Box, geom.SideRight, 120, 12),
		legend.New(legend.Hist, geom.SideLeft, 120, 12),
		legend.New(legend.Hist, geom.SideRight, 120, 12),
	}
	legend.Sync(ctx, widgets, scene, st, conds.Active)

	if err := writeSVG(*outPath, layout, scene, st); err != nil {
		return err
	}
	if *legendDir != "" {
		if err := writeLegends(*legendDir, widgets); err != nil {
			return err
		}
	}
	if *positions != "" {
		pf, err := os.Create(*positions)
		if err != nil {
			return err
		}
		defer pf.Close()
		return scene.WriteTransforms(pf)
	}
	return nil
}

// writeSVG draws the visible scene: arrows and nodes styled by the
// scalar channels, then every visible side-plot encoding.
func writeSVG(path string, layout diagram.Layout, scene *aes.Scene, st *config.Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	minX, minY, maxX, maxY := bounds(layout)
	const margin = 200
	canvas := svg.New(f)
	canvas.Start(int(maxX-minX)+2*margin, int(maxY-minY)+2*margin)
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", margin-int(minX), margin-int(minY)))

	for _, t := range layout.Targets() {
		style := scene.Styles[t.ID]
		if style == nil {
			continue
		}
		switch t.Kind {
		case diagram.Arrow:
			half := t.Dir.Scale(t.Length / 2)
			a, b := t.Pos.Add(half.Scale(-1)), t.Pos.Add(half)
			canvas.Line(int(a.X), int(a.Y), int(b.X), int(b.Y),
				fmt.Sprintf("stroke:%s;stroke-width:%.1f;stroke-linecap:round", hexColor(style.Stroke), style.Width))
		case diagram.Node:
			canvas.Circle(int(t.Pos.X), int(t.Pos.Y), int(style.Radius),
				fmt.Sprintf("fill:%s;%s", hexColor(style.Fill), opacity("fill", style.Fill)))
		}
	}

	for _, e := range scene.Encodings {
		if !e.Visible {
			continue
		}
		tr := e.Transform
		canvas.Gtransform(fmt.Sprintf("translate(%.1f,%.1f) rotate(%.2f) scale(1,%.4f)",
			tr.Pos.X, tr.Pos.Y, tr.Rot*180/math.Pi, -tr.Scale.Y))
		xs := make([]int, len(e.Path))
		ys := make([]int, len(e.Path))
		for i, p := range e.Path {
			xs[i], ys[i] = int(p.X), int(p.Y)
		}
		style := fmt.Sprintf("fill:%s;%s", hexColor(e.Fill), opacity("fill", e.Fill))
		if e.Stroke.A > 0 {
			style += fmt.Sprintf(";stroke:%s", hexColor(e.Stroke))
		}
		canvas.Polygon(xs, ys, style)
		for _, l := range e.Labels {
			canvas.Gtransform(fmt.Sprintf("translate(%.1f,%.1f) scale(1,%.4f)", l.Pos.X, l.Pos.Y, e.LabelScale))
			canvas.Text(0, 0, l.Text, fmt.Sprintf("font-size:%.0fpx;fill:black", l.Size))
			canvas.Gend()
		}
		canvas.Gend()
	}

	canvas.Gend()
	canvas.End()
	return nil
}

func writeLegends(dir string, widgets []*legend.Widget) error {
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}
	names := map[legend.Kind]string{
		legend.Arrow:  "arrow",
		legend.Circle: "circle",
		legend.Box:    "box",
		legend.Hist:   "hist",
	}
	for _, w := range widgets {
		if !w.Visible {
			continue
		}
		name := names[w.Kind]
		if w.Kind == legend.Box || w.Kind == legend.Hist {
			name += "-" + w.Side.String()
		}
		f, err := os.Create(filepath.Join(dir, name+".png"))
		if err != nil {
			return err
		}
		err = png.Encode(f, w.Render(4))
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func bounds(layout diagram.Layout) (minX, minY, maxX, maxY float64) {
	first := true
	for _, t := range layout.Targets() {
		if first {
			minX, maxX = t.Pos.X, t.Pos.X
			minY, maxY = t.Pos.Y, t.Pos.Y
			first = false
			continue
		}
		minX = math.Min(minX, t.Pos.X)
		maxX = math.Max(maxX, t.Pos.X)
		minY = math.Min(minY, t.Pos.Y)
		maxY = math.Max(maxY, t.Pos.Y)
	}
	return minX, minY, maxX, maxY
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(attr string, c color.RGBA) string {
	return fmt.Sprintf("%s-opacity:%.3f", attr, float64(c.A)/255)
}
