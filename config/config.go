// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the appearance settings consumed by the
// encoding passes: channel bounds, per-side histogram colors and
// target heights, and the gradient endpoints for color channels.
//
// Settings can be edited interactively by a host UI; the pipeline
// only ever reads them. A settings file uses HCL, e.g.
//
//	zero_white = true
//	reaction {
//		min_size  = 20
//		max_size  = 60
//		min_color = "#A4BFE8"
//		max_color = "#2A62B7"
//	}
//	histogram "left" {
//		max_height = 100
//		color      = "#DA96877C"
//	}
//	histogram "left" {
//		condition = "aerobic"
//		color     = "#B76E2A7C"
//	}
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fluxmap/fluxmap/geom"
)

// ChannelBounds are the destination bounds for one element class:
// sizes in map units and the gradient endpoint colors.
type ChannelBounds struct {
	MinSize  float64
	MaxSize  float64
	MinColor color.RGBA
	MaxColor color.RGBA
}

// SideSettings configure the plots on one side of their anchors.
// Colors is keyed by condition; the "" entry is the declared default
// and must always be present.
type SideSettings struct {
	MaxHeight float64
	Colors    map[string]color.RGBA
}

// Settings is the full appearance configuration.
type Settings struct {
	// Reaction and Metabolite bound the size and color channels
	// of arrows and nodes.
	Reaction   ChannelBounds
	Metabolite ChannelBounds

	// ZeroWhite makes color gradients pass through white at zero
	// when the data range straddles it.
	ZeroWhite bool

	// Left, Right, and Top configure side plots and hover popups.
	Left  SideSettings
	Right SideSettings
	Top   SideSettings

	// FontSize is the tick label size in map units.
	FontSize float64
}

// Default returns the stock appearance settings.
func Default() *Settings {
	return &Settings{
		Reaction: ChannelBounds{
			MinSize:  20,
			MaxSize:  60,
			MinColor: color.RGBA{164, 191, 232, 255},
			MaxColor: color.RGBA{42, 98, 183, 255},
		},
		Metabolite: ChannelBounds{
			MinSize:  20,
			MaxSize:  60,
			MinColor: color.RGBA{183, 110, 42, 255},
			MaxColor: color.RGBA{186, 148, 113, 255},
		},
		Left: SideSettings{
			MaxHeight: 100,
			Colors:    map[string]color.RGBA{"": {218, 150, 135, 124}},
		},
		Right: SideSettings{
			MaxHeight: 100,
			Colors:    map[string]color.RGBA{"": {125, 206, 96, 124}},
		},
		Top: SideSettings{
			MaxHeight: 100,
			Colors:    map[string]color.RGBA{"": {161, 134, 216, 124}},
		},
		FontSize: 12,
	}
}

// Side returns the settings for one plot side. SideUp maps to Top,
// the popup orientation.
func (s *Settings) Side(side geom.Side) *SideSettings {
	switch side {
	case geom.SideLeft:
		return &s.Left
	case geom.SideRight:
		return &s.Right
	default:
		return &s.Top
	}
}

// SideColor returns the plot color for a side and condition, falling
// back to the side's declared default entry. The lookup never inserts.
func (s *Settings) SideColor(side geom.Side, condition string) color.RGBA {
	colors := s.Side(side).Colors
	if c, ok := colors[condition]; ok {
		return c
	}
	return colors[""]
}

// Load reads settings from an HCL file, applying them on top of the
// defaults.
func Load(path string) (*Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(src, path)
}
