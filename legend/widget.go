// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"image"
	"image/color"

	"github.com/aclements/go-gg/palette"
	"golang.org/x/image/draw"

	"github.com/fluxmap/fluxmap/geom"
)

// A Widget is one legend: a gradient (or flat color) strip plus the
// labels for its numeric bounds. The strip may carry a silhouette —
// transparent pixels that repainting preserves, so arrow- or
// circle-shaped legends keep their outline.
type Widget struct {
	Kind Kind
	// Side qualifies Box and Hist widgets.
	Side geom.Side

	Visible            bool
	MinLabel, MaxLabel string

	img  *image.RGBA
	mask *image.Alpha
}

// New returns a hidden widget with a fully opaque w×h strip.
func New(kind Kind, side geom.Side, w, h int) *Widget {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	mask := image.NewAlpha(img.Bounds())
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	return &Widget{Kind: kind, Side: side, img: img, mask: mask}
}

// SetSilhouette masks the strip with the alpha channel of m, scaled
// to the strip bounds. Pixels transparent in m stay transparent
// through every repaint.
func (w *Widget) SetSilhouette(m image.Image) {
	rgba := image.NewRGBA(w.img.Bounds())
	draw.BiLinear.Scale(rgba, rgba.Bounds(), m, m.Bounds(), draw.Src, nil)
	for i := 3; i < len(rgba.Pix); i += 4 {
		w.mask.Pix[i/4] = rgba.Pix[i]
	}
}

// Image returns the widget's current strip. The caller must not
// retain it across a Sync.
func (w *Widget) Image() *image.RGBA { return w.img }

func (w *Widget) setBounds(lo, hi float64) {
	w.MinLabel = formatBound(lo)
	w.MaxLabel = formatBound(hi)
}

// repaint samples pal at evenly spaced points across the strip's
// pixel width and composites the result under the silhouette mask.
func (w *Widget) repaint(pal palette.Continuous) {
	b := w.img.Bounds()
	src := image.NewRGBA(b)
	width := b.Dx()
	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		c := color.RGBAModel.Convert(pal.Map(t)).(color.RGBA)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			src.SetRGBA(b.Min.X+x, y, c)
		}
	}
	draw.DrawMask(w.img, b, src, b.Min, w.mask, b.Min, draw.Src)
}

// fill floods the strip with one color, keeping the silhouette.
func (w *Widget) fill(c color.RGBA) {
	b := w.img.Bounds()
	draw.DrawMask(w.img, b, image.NewUniform(c), image.Point{}, w.mask, b.Min, draw.Src)
}

// Render returns the strip scaled by factor for display, using the
// same bilinear kernel the rest of the tooling uses for image
// resampling.
func (w *Widget) Render(factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := w.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.BiLinear.Scale(dst, dst.Bounds(), w.img, b, draw.Src, nil)
	return dst
}
