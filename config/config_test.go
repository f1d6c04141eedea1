// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"testing"

	"github.com/fluxmap/fluxmap/geom"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Reaction.MinSize != 20 || s.Reaction.MaxSize != 60 {
		t.Errorf("reaction size bounds = %v..%v, want 20..60", s.Reaction.MinSize, s.Reaction.MaxSize)
	}
	for _, side := range []geom.Side{geom.SideLeft, geom.SideRight, geom.SideUp} {
		ss := s.Side(side)
		if ss.MaxHeight != 100 {
			t.Errorf("%s max height = %v, want 100", side, ss.MaxHeight)
		}
		if _, ok := ss.Colors[""]; !ok {
			t.Errorf("%s has no default color entry", side)
		}
	}
}

func TestSideColorFallback(t *testing.T) {
	s := Default()
	def := s.Left.Colors[""]
	aerobic := color.RGBA{1, 2, 3, 4}
	s.Left.Colors["aerobic"] = aerobic

	if got := s.SideColor(geom.SideLeft, "aerobic"); got != aerobic {
		t.Errorf("per-condition color = %v, want %v", got, aerobic)
	}
	if got := s.SideColor(geom.SideLeft, "anaerobic"); got != def {
		t.Errorf("unknown condition = %v, want default %v", got, def)
	}
	// The fallback lookup never inserts.
	if _, ok := s.Left.Colors["anaerobic"]; ok {
		t.Error("lookup inserted a map entry")
	}
}

func TestParse(t *testing.T) {
	src := []byte(`
zero_white = true
font_size  = 16

reaction {
	min_size  = 5
	max_color = "#2A62B7"
}

histogram "left" {
	max_height = 150
	color      = "#DA96877C"
}

histogram "left" {
	condition = "aerobic"
	color     = "#B76E2A"
}
`)
	s, err := Parse(src, "test.hcl")
	if err != nil {
		t.Fatal(err)
	}
	if !s.ZeroWhite || s.FontSize != 16 {
		t.Errorf("zero_white=%v font_size=%v", s.ZeroWhite, s.FontSize)
	}
	// Explicit attributes override, unset ones keep defaults.
	if s.Reaction.MinSize != 5 || s.Reaction.MaxSize != 60 {
		t.Errorf("reaction sizes = %v..%v, want 5..60", s.Reaction.MinSize, s.Reaction.MaxSize)
	}
	if s.Reaction.MaxColor != (color.RGBA{0x2a, 0x62, 0xb7, 0xff}) {
		t.Errorf("reaction max color = %v", s.Reaction.MaxColor)
	}
	if s.Left.MaxHeight != 150 {
		t.Errorf("left max height = %v, want 150", s.Left.MaxHeight)
	}
	if got := s.SideColor(geom.SideLeft, ""); got != (color.RGBA{0xda, 0x96, 0x87, 0x7c}) {
		t.Errorf("left default color = %v", got)
	}
	if got := s.SideColor(geom.SideLeft, "aerobic"); got != (color.RGBA{0xb7, 0x6e, 0x2a, 0xff}) {
		t.Errorf("left aerobic color = %v", got)
	}
	// Untouched sides keep stock settings.
	if s.Right.MaxHeight != 100 {
		t.Errorf("right max height = %v, want 100", s.Right.MaxHeight)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte(`histogram "down" {}`), "test.hcl"); err == nil {
		t.Error("unknown side accepted")
	}
	if _, err := Parse([]byte(`histogram "left" { color = "red" }`), "test.hcl"); err == nil {
		t.Error("malformed color accepted")
	}
	if _, err := Parse([]byte(`zero_white = `), "test.hcl"); err == nil {
		t.Error("malformed HCL accepted")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#A4BFE8", color.RGBA{0xa4, 0xbf, 0xe8, 0xff}, true},
		{"A4BFE8", color.RGBA{0xa4, 0xbf, 0xe8, 0xff}, true},
		{"#DA96877C", color.RGBA{0xda, 0x96, 0x87, 0x7c}, true},
		{"#FFF", color.RGBA{}, false},
		{"#GGGGGG", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		if (err == nil) != test.ok {
			t.Errorf("ParseColor(%q) err = %v, want ok=%v", test.in, err, test.ok)
			continue
		}
		if test.ok && got != test.want {
			t.Errorf("ParseColor(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}
