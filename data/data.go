// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data decodes dataset files into channel bindings.
//
// A dataset is a JSON object of parallel arrays, one row per
// (element, condition) pair. Scalar channels carry one number per
// row, distribution channels one array per row. Writers that go
// through pandas serialize NaN as the string "NaN", so numeric
// fields accept both forms; NaN entries are dropped from
// distributions at binding time.
package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/fluxmap/fluxmap/aes"
	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/plot"
)

// Float is a float64 that also unmarshals from the string "NaN".
type Float float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte(`"NaN"`)) {
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// File is a decoded dataset.
type File struct {
	Reactions  []string `json:"reactions"`
	Conditions []string `json:"conditions"`

	// Reaction channels.
	Colors   []Float   `json:"colors"`
	Sizes    []Float   `json:"sizes"`
	Y        [][]Float `json:"y"`
	LeftY    [][]Float `json:"left_y"`
	KdeY     [][]Float `json:"kde_y"`
	KdeLeftY [][]Float `json:"kde_left_y"`
	BoxY     []Float   `json:"box_y"`
	BoxLeftY []Float   `json:"box_left_y"`
	HoverY   [][]Float `json:"hover_y"`

	// Metabolite channels.
	Metabolites   []string `json:"metabolites"`
	MetConditions []string `json:"met_conditions"`
	MetColors     []Float  `json:"met_colors"`
	MetSizes      []Float  `json:"met_sizes"`
}

// Load decodes a dataset from r.
func Load(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return &f, nil
}

// Bindings expands the dataset into one binding per present channel
// and condition. Binding order follows field order, then condition
// order of first appearance; that order defines the last-match
// precedence used elsewhere.
func (f *File) Bindings() ([]*aes.Binding, error) {
	var out []*aes.Binding

	type distChannel struct {
		name  string
		rows  [][]Float
		kind  plot.Kind
		side  geom.Side
		popup bool
	}
	scalarChannels := []struct {
		name    string
		rows    []Float
		channel aes.Channel
		glyph   aes.Glyph
		kind    plot.Kind
		side    geom.Side
	}{
		{"colors", f.Colors, aes.Color, aes.GlyphArrow, plot.Hist, geom.SideRight},
		{"sizes", f.Sizes, aes.Size, aes.GlyphArrow, plot.Hist, geom.SideRight},
		{"box_y", f.BoxY, aes.Y, aes.GlyphHist, plot.BoxPoint, geom.SideRight},
		{"box_left_y", f.BoxLeftY, aes.Y, aes.GlyphHist, plot.BoxPoint, geom.SideLeft},
	}
	for _, ch := range scalarChannels {
		if ch.rows == nil {
			continue
		}
		bs, err := scalarBindings(ch.name, f.Reactions, f.Conditions, ch.rows)
		if err != nil {
			return nil, err
		}
		for _, b := range bs {
			b.Channel, b.Glyph, b.Plot, b.Side = ch.channel, ch.glyph, ch.kind, ch.side
		}
		out = append(out, bs...)
	}

	distChannels := []distChannel{
		{"y", f.Y, plot.Hist, geom.SideRight, false},
		{"left_y", f.LeftY, plot.Hist, geom.SideLeft, false},
		{"kde_y", f.KdeY, plot.KDE, geom.SideRight, false},
		{"kde_left_y", f.KdeLeftY, plot.KDE, geom.SideLeft, false},
		{"hover_y", f.HoverY, plot.Hist, geom.SideUp, true},
	}
	for _, ch := range distChannels {
		if ch.rows == nil {
			continue
		}
		bs, err := distBindings(ch.name, f.Reactions, f.Conditions, ch.rows)
		if err != nil {
			return nil, err
		}
		for _, b := range bs {
			b.Channel, b.Glyph, b.Plot, b.Side, b.Popup = aes.Y, aes.GlyphHist, ch.kind, ch.side, ch.popup
		}
		out = append(out, bs...)
	}

	metChannels := []struct {
		name    string
		rows    []Float
		channel aes.Channel
	}{
		{"met_colors", f.MetColors, aes.Color},
		{"met_sizes", f.MetSizes, aes.Size},
	}
	for _, ch := range metChannels {
		if ch.rows == nil {
			continue
		}
		bs, err := scalarBindings(ch.name, f.Metabolites, f.MetConditions, ch.rows)
		if err != nil {
			return nil, err
		}
		for _, b := range bs {
			b.Channel, b.Glyph = ch.channel, aes.GlyphNode
		}
		out = append(out, bs...)
	}

	return out, nil
}

// byCondition splits row indices by condition label, preserving
// first-appearance order. With no condition column every row lands in
// the unconditioned group.
func byCondition(n int, conds []string) (order []string, groups map[string][]int) {
	groups = make(map[string][]int)
	for i := 0; i < n; i++ {
		c := ""
		if i < len(conds) {
			c = conds[i]
		}
		if _, ok := groups[c]; !ok {
			order = append(order, c)
		}
		groups[c] = append(groups[c], i)
	}
	return order, groups
}

func scalarBindings(name string, ids, conds []string, rows []Float) ([]*aes.Binding, error) {
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("dataset %s: %d rows for %d ids", name, len(rows), len(ids))
	}
	order, groups := byCondition(len(ids), conds)
	var out []*aes.Binding
	for _, cond := range order {
		var gids []string
		var vals []float64
		for _, i := range groups[cond] {
			if math.IsNaN(float64(rows[i])) {
				continue
			}
			gids = append(gids, ids[i])
			vals = append(vals, float64(rows[i]))
		}
		b, err := aes.NewPoints(gids, vals)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", name, err)
		}
		b.Condition = cond
		out = append(out, b)
	}
	return out, nil
}

func distBindings(name string, ids, conds []string, rows [][]Float) ([]*aes.Binding, error) {
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("dataset %s: %d rows for %d ids", name, len(rows), len(ids))
	}
	order, groups := byCondition(len(ids), conds)
	var out []*aes.Binding
	for _, cond := range order {
		var gids []string
		var dists [][]float64
		for _, i := range groups[cond] {
			var d []float64
			for _, v := range rows[i] {
				if math.IsNaN(float64(v)) {
					continue
				}
				d = append(d, float64(v))
			}
			gids = append(gids, ids[i])
			dists = append(dists, d)
		}
		b, err := aes.NewDists(gids, dists)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", name, err)
		}
		b.Condition = cond
		out = append(out, b)
	}
	return out, nil
}
