// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aes is the data-to-visual encoding core. It binds datasets
// to diagram elements and runs the per-frame passes that turn those
// bindings into positioned glyph geometry:
//
//	axis aggregation → distribution rendering → height normalization
//
// with condition-driven visibility filtering running independently.
// All passes are plain synchronous functions over a Scene; the host
// render loop calls Scene.Frame once per update tick.
package aes

import (
	"fmt"

	"github.com/fluxmap/fluxmap/geom"
	"github.com/fluxmap/fluxmap/plot"
)

// Channel is the visual property a binding drives.
type Channel int

const (
	// Size drives arrow width or node radius.
	Size Channel = iota
	// Color drives arrow stroke or node fill.
	Color
	// Y drives the vertical extent of a side or popup plot.
	Y
)

// Glyph is the element class a binding targets.
type Glyph int

const (
	// GlyphArrow targets reaction arrows.
	GlyphArrow Glyph = iota
	// GlyphNode targets metabolite nodes.
	GlyphNode
	// GlyphHist targets a side or popup plot anchored to an
	// arrow.
	GlyphHist
)

// State is the per-binding progress through a load cycle. Each state
// is advanced by exactly one pass: the axis aggregator moves Pending
// to Aggregated, the distribution renderer moves Aggregated to
// Rendered. A reload resets every binding to Pending.
type State int

const (
	Pending State = iota
	Aggregated
	Rendered
)

// A Binding associates an ordered list of element identifiers with
// one value or one sample set per identifier, for a single visual
// channel. Identifiers are not unique across bindings; different
// conditions reuse the same identifier set and later time-share the
// same visual slot.
//
// A binding is immutable after creation except for State and the
// per-cycle bookkeeping below.
type Binding struct {
	// IDs are the diagram element identifiers, in data order.
	IDs []string
	// Values holds scalar data, Dists distribution data; exactly
	// one of them is non-nil and has len(IDs) entries.
	Values []float64
	Dists  [][]float64

	// Condition labels the dataset; "" applies to every
	// condition.
	Condition string

	Channel Channel
	Glyph   Glyph

	// Plot and Side describe a GlyphHist target. Popup marks
	// hover-popup bindings, which use a per-element axis instead
	// of a per-(element, side) one.
	Plot  plot.Kind
	Side  geom.Side
	Popup bool

	State State

	// renderedIDs records which targets have produced geometry this
	// load cycle. A binding whose targets partially fail (empty
	// sample set, degenerate range) stays Aggregated so the failed
	// ones are retried, and this set keeps the succeeded ones from
	// drawing twice.
	renderedIDs map[string]bool

	// sideWarned suppresses repeat diagnostics for a binding whose
	// side can never get an axis.
	sideWarned bool
}

// NewPoints returns a scalar binding. It fails if ids and values
// disagree in length.
func NewPoints(ids []string, values []float64) (*Binding, error) {
	if len(ids) != len(values) {
		return nil, fmt.Errorf("binding: %d ids but %d values", len(ids), len(values))
	}
	return &Binding{IDs: ids, Values: values}, nil
}

// NewDists returns a distribution binding. It fails if ids and dists
// disagree in length.
func NewDists(ids []string, dists [][]float64) (*Binding, error) {
	if len(ids) != len(dists) {
		return nil, fmt.Errorf("binding: %d ids but %d distributions", len(ids), len(dists))
	}
	return &Binding{IDs: ids, Dists: dists}, nil
}

// markRendered records that the target with the given id has produced
// geometry this load cycle.
func (b *Binding) markRendered(id string) {
	if b.renderedIDs == nil {
		b.renderedIDs = make(map[string]bool)
	}
	b.renderedIDs[id] = true
}

// IsDist reports whether the binding carries distribution data.
func (b *Binding) IsDist() bool { return b.Dists != nil }

// Index returns the position of id in the binding, or -1.
func (b *Binding) Index(id string) int {
	for i, bid := range b.IDs {
		if bid == id {
			return i
		}
	}
	return -1
}

// matches reports whether the binding applies under the active
// condition. An unconditioned binding always applies; "ALL" matches
// everything.
func (b *Binding) matches(active string) bool {
	return b.Condition == "" || b.Condition == active || active == AllConditions
}
