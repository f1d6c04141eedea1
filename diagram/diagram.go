// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram exposes the pre-computed geometry of a loaded map
// to the encoding pipeline.
//
// Layout computation itself is an external concern: a loader parses
// the diagram file once and produces node and arrow anchors, which
// this package holds read-only. The encoding passes only ever look up
// positions, directions, and extents.
package diagram

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fluxmap/fluxmap/geom"
)

// Kind distinguishes the two element classes data can bind to.
type Kind int

const (
	// Arrow is a reaction arrow, identified by reaction id.
	Arrow Kind = iota
	// Node is a metabolite node, identified by metabolite id.
	Node
)

// A Target is one rendered diagram element. Dir is the unit direction
// of an arrow (zero for nodes); Length is the physical extent used to
// size side plots.
type Target struct {
	ID     string
	Kind   Kind
	Pos    geom.Vec2
	Dir    geom.Vec2
	Length float64
}

// A Layout provides read-only access to the loaded map geometry.
type Layout interface {
	// Lookup returns the target with the given id.
	Lookup(id string) (Target, bool)
	// Targets returns all targets in a stable order.
	Targets() []Target
}

// Map is an in-memory Layout.
type Map struct {
	targets []Target
	index   map[string]int
}

// FromTargets builds a Map from a target list. Later duplicates of an
// id shadow earlier ones in Lookup but both remain in Targets.
func FromTargets(targets []Target) *Map {
	m := &Map{targets: targets, index: make(map[string]int, len(targets))}
	for i, t := range targets {
		m.index[t.ID] = i
	}
	return m
}

// Lookup implements Layout.
func (m *Map) Lookup(id string) (Target, bool) {
	i, ok := m.index[id]
	if !ok {
		return Target{}, false
	}
	return m.targets[i], true
}

// Targets implements Layout.
func (m *Map) Targets() []Target { return m.targets }

// jsonMap is the on-disk geometry produced by the map loader.
type jsonMap struct {
	Arrows []jsonTarget `json:"arrows"`
	Nodes  []jsonTarget `json:"nodes"`
}

type jsonTarget struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DirX   float64 `json:"dx"`
	DirY   float64 `json:"dy"`
	Length float64 `json:"length"`
}

// Load reads map geometry from r.
func Load(r io.Reader) (*Map, error) {
	var jm jsonMap
	if err := json.NewDecoder(r).Decode(&jm); err != nil {
		return nil, fmt.Errorf("decoding map geometry: %w", err)
	}
	targets := make([]Target, 0, len(jm.Arrows)+len(jm.Nodes))
	for _, a := range jm.Arrows {
		targets = append(targets, Target{
			ID:     a.ID,
			Kind:   Arrow,
			Pos:    geom.Vec2{X: a.X, Y: a.Y},
			Dir:    normalize(geom.Vec2{X: a.DirX, Y: a.DirY}),
			Length: a.Length,
		})
	}
	for _, n := range jm.Nodes {
		targets = append(targets, Target{
			ID:   n.ID,
			Kind: Node,
			Pos:  geom.Vec2{X: n.X, Y: n.Y},
		})
	}
	return FromTargets(targets), nil
}

func normalize(v geom.Vec2) geom.Vec2 {
	l := v.Length()
	if l == 0 {
		// The loader's direction heuristic can fail on tiny
		// segments; fall back to pointing right.
		return geom.Vec2{X: 1}
	}
	return v.Scale(1 / l)
}
