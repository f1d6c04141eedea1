// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
)

// LerpHSV interpolates between c0 and c1 in HSV space at t ∈ [0, 1].
//
// Hue travels along the shorter arc of the hue circle: when the hue
// delta exceeds half a turn, the lesser endpoint is wrapped by a full
// turn before mixing. Endpoints that straddle hue 0 therefore blend
// through red rather than desaturating across the whole wheel.
// Saturation, value, and alpha interpolate linearly.
func LerpHSV(t float64, c0, c1 color.RGBA) color.RGBA {
	h0, s0, v0, a0 := rgbToHSV(c0)
	h1, s1, v1, a1 := rgbToHSV(c1)
	if math.Abs(h1-h0) > 0.5 {
		if h0 < h1 {
			h0++
		} else {
			h1++
		}
	}
	h := math.Mod(h0+(h1-h0)*t, 1)
	return hsvToRGB(h, s0+(s1-s0)*t, v0+(v1-v0)*t, a0+(a1-a0)*t)
}

// rgbToHSV converts an sRGB color to hue, saturation, value, and
// alpha, each in [0, 1].
func rgbToHSV(c color.RGBA) (h, s, v, a float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	a = float64(c.A) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	d := max - min
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v, a
	}
	switch max {
	case r:
		h = (g - b) / d
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, v, a
}

func hsvToRGB(h, s, v, a float64) color.RGBA {
	h = math.Mod(math.Mod(h, 1)+1, 1) * 6
	i := int(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	u := v * (1 - s*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, u, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, u
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = u, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

// Gradient is a palette.Continuous that interpolates between two
// colors with LerpHSV.
type Gradient struct {
	Lo, Hi color.RGBA
}

// Map implements palette.Continuous.
func (g Gradient) Map(x float64) color.Color {
	return LerpHSV(math.Max(0, math.Min(1, x)), g.Lo, g.Hi)
}

// NewGradient builds the palette for a color channel over the data
// range [lo, hi]. If zeroWhite is set and the range crosses zero, the
// gradient passes through white at zero, turning the channel into a
// diverging scale; otherwise it is a plain HSV blend from cLo to cHi.
func NewGradient(lo, hi float64, cLo, cHi color.RGBA, zeroWhite bool) palette.Continuous {
	if zeroWhite && lo < 0 && hi > 0 {
		return palette.RGBGradient{
			Colors: []color.RGBA{cLo, {255, 255, 255, 255}, cHi},
			Stops:  []float64{0, -lo / (hi - lo), 1},
		}
	}
	return Gradient{cLo, cHi}
}
