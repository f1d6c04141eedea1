// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/fluxmap/fluxmap/geom"
)

// rawSettings mirrors the HCL surface. Every attribute is optional;
// unset values keep their defaults.
type rawSettings struct {
	ZeroWhite  *bool      `hcl:"zero_white,optional"`
	FontSize   *float64   `hcl:"font_size,optional"`
	Reaction   *rawBounds `hcl:"reaction,block"`
	Metabolite *rawBounds `hcl:"metabolite,block"`
	Histograms []rawHist  `hcl:"histogram,block"`
}

type rawBounds struct {
	MinSize  *float64 `hcl:"min_size,optional"`
	MaxSize  *float64 `hcl:"max_size,optional"`
	MinColor *string  `hcl:"min_color,optional"`
	MaxColor *string  `hcl:"max_color,optional"`
}

type rawHist struct {
	Side      string   `hcl:"side,label"`
	Condition *string  `hcl:"condition,optional"`
	MaxHeight *float64 `hcl:"max_height,optional"`
	Color     *string  `hcl:"color,optional"`
}

// Parse decodes HCL settings from src on top of Default. filename is
// used in diagnostics only.
func Parse(src []byte, filename string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing settings: %w", diags)
	}
	var raw rawSettings
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding settings: %w", diags)
	}

	s := Default()
	if raw.ZeroWhite != nil {
		s.ZeroWhite = *raw.ZeroWhite
	}
	if raw.FontSize != nil {
		s.FontSize = *raw.FontSize
	}
	if err := raw.Reaction.apply(&s.Reaction); err != nil {
		return nil, fmt.Errorf("reaction block: %w", err)
	}
	if err := raw.Metabolite.apply(&s.Metabolite); err != nil {
		return nil, fmt.Errorf("metabolite block: %w", err)
	}
	for _, h := range raw.Histograms {
		side, ok := geom.ParseSide(h.Side)
		if !ok {
			return nil, fmt.Errorf("histogram block: unknown side %q", h.Side)
		}
		ss := s.Side(side)
		if h.MaxHeight != nil {
			ss.MaxHeight = *h.MaxHeight
		}
		if h.Color != nil {
			c, err := ParseColor(*h.Color)
			if err != nil {
				return nil, fmt.Errorf("histogram %q: %w", h.Side, err)
			}
			cond := ""
			if h.Condition != nil {
				cond = *h.Condition
			}
			ss.Colors[cond] = c
		}
	}
	return s, nil
}

func (r *rawBounds) apply(b *ChannelBounds) error {
	if r == nil {
		return nil
	}
	if r.MinSize != nil {
		b.MinSize = *r.MinSize
	}
	if r.MaxSize != nil {
		b.MaxSize = *r.MaxSize
	}
	var err error
	if r.MinColor != nil {
		if b.MinColor, err = ParseColor(*r.MinColor); err != nil {
			return err
		}
	}
	if r.MaxColor != nil {
		if b.MaxColor, err = ParseColor(*r.MaxColor); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". A missing alpha means
// fully opaque.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
