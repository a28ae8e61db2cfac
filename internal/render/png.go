/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	xvector "golang.org/x/image/vector"

	"pathtip/internal/textlayout"
	"pathtip/internal/vector"
)

// PNGOptions controls raster output.
type PNGOptions struct {
	// Provider resolves the label font; nil uses the bundled Go fonts.
	Provider textlayout.Provider
	// Canvas is the page color; the zero value means white.
	Canvas vector.Color
}

var goFonts = sync.OnceValue(textlayout.NewGoFontLibrary)

// WritePNG rasterizes the scene at one pixel per unit. A hidden tooltip is
// not drawn.
func WritePNG(w io.Writer, s Scene, opt PNGOptions) error {
	img, err := Rasterize(s, opt)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Rasterize draws the scene into a new RGBA image.
func Rasterize(s Scene, opt PNGOptions) (*image.RGBA, error) {
	pw, ph := int(math.Ceil(float64(s.Width))), int(math.Ceil(float64(s.Height)))
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("empty scene %gx%g", s.Width, s.Height)
	}
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	canvas := opt.Canvas
	if canvas == (vector.Color{}) {
		canvas = vector.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(canvas.ToRGBA()), image.Point{}, draw.Src)

	for _, seg := range segments(vector.RoundedRect(s.frame(), 0, 0)) {
		fillPolygon(img, strokeQuad(seg[0], seg[1], 0.5), frameStroke)
	}
	for _, seg := range segments(s.Target) {
		fillPolygon(img, strokeQuad(seg[0], seg[1], 1), s.TargetStroke)
	}

	st := s.State
	if !s.tooltipShown() {
		return img, nil
	}
	bg := s.background()
	fillPolygon(img, vector.RoundedRect(st.Rect, CornerRadius, 4).Vertices(), bg)
	fillPolygon(img, st.Indicator.Points(), bg)

	prov := opt.Provider
	if prov == nil {
		prov = textlayout.OTProvider{Lib: goFonts()}
	}
	face, _ := prov.Resolve(s.Style.Font())
	d := font.Drawer{Dst: img, Src: image.NewUniform(s.textColor().ToRGBA()), Face: face}
	for _, ln := range st.Lines {
		d.Dot = fixed.P(int(math.Round(float64(ln.X))), int(math.Round(float64(ln.Y))))
		d.DrawString(ln.Text)
	}
	return img, nil
}

// fillPolygon fills a closed outline with anti-aliased coverage.
func fillPolygon(dst *image.RGBA, pts []vector.Pt, c vector.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	z := xvector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		z.LineTo(p.X, p.Y)
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c.ToRGBA()), image.Point{})
}

// strokeQuad returns the outline of a segment thickened by half on each side.
func strokeQuad(a, b vector.Pt, half float32) []vector.Pt {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := float32(math.Hypot(float64(dx), float64(dy)))
	if n == 0 {
		return nil
	}
	nx, ny := -dy/n*half, dx/n*half
	return []vector.Pt{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
}
