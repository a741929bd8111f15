/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"sketchpad/internal/geom"
	"sketchpad/internal/glyph"
)

type rasterState struct {
	ctm       geom.Affine2D
	stroke    color.RGBA
	fill      color.RGBA
	lineWidth float32
	font      Font
}

type subpath struct {
	pts    []geom.Pt // device space
	closed bool
}

// Raster draws onto an *image.RGBA. Paths are flattened to device space as
// they are built; Stroke expands each segment into a quad plus round joins
// and rasterises everything with one x/image/vector pass so overlaps do not
// double-blend.
type Raster struct {
	img   *image.RGBA
	faces glyph.Provider
	st    rasterState
	stack []rasterState
	path  []subpath
}

// NewRaster creates a w×h transparent raster. A nil provider uses glyph.Default.
func NewRaster(w, h int, faces glyph.Provider) *Raster {
	if faces == nil {
		faces = glyph.Default()
	}
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		faces: faces,
		st:    defaultRasterState(),
	}
}

func defaultRasterState() rasterState {
	return rasterState{ctm: geom.Identity, stroke: Black, fill: Black, lineWidth: 1, font: Font{SizePx: 10}}
}

// Image exposes the backing image. It is updated in place by every draw.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) BeginPath() { r.path = r.path[:0] }

func (r *Raster) ClosePath() {
	if n := len(r.path); n > 0 {
		r.path[n-1].closed = true
	}
}

func (r *Raster) MoveTo(x, y float32) {
	r.path = append(r.path, subpath{pts: []geom.Pt{r.st.ctm.Apply(geom.Pt{X: x, Y: y})}})
}

func (r *Raster) LineTo(x, y float32) {
	p := r.st.ctm.Apply(geom.Pt{X: x, Y: y})
	if len(r.path) == 0 {
		r.path = append(r.path, subpath{pts: []geom.Pt{p}})
		return
	}
	last := &r.path[len(r.path)-1]
	last.pts = append(last.pts, p)
}

func (r *Raster) Ellipse(cx, cy, rx, ry float32) {
	n := segmentsFor(max(rx, ry) * r.st.ctm.ScaleFactor())
	pts := make([]geom.Pt, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		u := geom.Pt{X: cx + rx*float32(math.Cos(a)), Y: cy + ry*float32(math.Sin(a))}
		pts = append(pts, r.st.ctm.Apply(u))
	}
	r.path = append(r.path, subpath{pts: pts, closed: true})
}

func (r *Raster) Stroke() {
	hw := r.st.lineWidth * r.st.ctm.ScaleFactor() / 2
	if hw <= 0 {
		return
	}
	if hw < 0.5 {
		hw = 0.5
	}
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	drew := false
	for _, sp := range r.path {
		pts := sp.pts
		if len(pts) < 2 {
			continue
		}
		segs := len(pts) - 1
		if sp.closed {
			segs++
		}
		for i := 0; i < segs; i++ {
			quad(z, pts[i], pts[(i+1)%len(pts)], hw)
		}
		for _, p := range pts {
			disc(z, p, hw)
		}
		drew = true
	}
	if drew {
		z.Draw(r.img, b, image.NewUniform(r.st.stroke), image.Point{})
	}
}

func (r *Raster) Fill() {
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	drew := false
	for _, sp := range r.path {
		if len(sp.pts) < 3 {
			continue
		}
		polygon(z, sp.pts)
		drew = true
	}
	if drew {
		z.Draw(r.img, b, image.NewUniform(r.st.fill), image.Point{})
	}
}

func (r *Raster) SetLineWidth(w float32)      { r.st.lineWidth = w }
func (r *Raster) SetStrokeColor(c color.RGBA) { r.st.stroke = c }
func (r *Raster) SetFillColor(c color.RGBA)   { r.st.fill = c }
func (r *Raster) SetFont(f Font)              { r.st.font = f }

func (r *Raster) FillText(text string, x, y float32) {
	if text == "" {
		return
	}
	k := r.st.ctm.ScaleFactor()
	if k <= 0 {
		return
	}
	face := r.faces.Face(r.st.font.SizePx * k)
	if face == nil {
		return
	}
	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	asc, desc := m.Ascent.Ceil(), m.Descent.Ceil()
	h := asc + desc
	if w <= 0 || h <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{Dst: tmp, Src: image.NewUniform(r.st.fill), Face: face, Dot: fixed.P(0, asc)}
	d.DrawString(text)

	// tmp pixels are device-sized; map them back to user space around (x, y)
	// and then through the current transform.
	s := r.st.ctm.
		Mul(geom.Translate(x, y)).
		Mul(geom.Scale(1/k, 1/k)).
		Mul(geom.Translate(-float32(w)/2, -float32(h)/2))
	s2d := f64.Aff3{
		float64(s.A), float64(s.C), float64(s.E),
		float64(s.B), float64(s.D), float64(s.F),
	}
	xdraw.BiLinear.Transform(r.img, s2d, tmp, tmp.Bounds(), xdraw.Over, nil)
}

func (r *Raster) Save() { r.stack = append(r.stack, r.st) }

// Restore pops the last saved state; with nothing saved it is a no-op.
func (r *Raster) Restore() {
	n := len(r.stack)
	if n == 0 {
		return
	}
	r.st = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

func (r *Raster) Translate(tx, ty float32) { r.st.ctm = r.st.ctm.Mul(geom.Translate(tx, ty)) }
func (r *Raster) Rotate(rad float32)       { r.st.ctm = r.st.ctm.Mul(geom.Rotate(rad)) }
func (r *Raster) Scale(sx, sy float32)     { r.st.ctm = r.st.ctm.Mul(geom.Scale(sx, sy)) }

func (r *Raster) ClearRect(x, y, w, h float32) {
	m := r.st.ctm
	if m.B == 0 && m.C == 0 {
		p0 := m.Apply(geom.Pt{X: x, Y: y})
		p1 := m.Apply(geom.Pt{X: x + w, Y: y + h})
		rect := image.Rect(
			int(math.Floor(float64(min(p0.X, p1.X)))), int(math.Floor(float64(min(p0.Y, p1.Y)))),
			int(math.Ceil(float64(max(p0.X, p1.X)))), int(math.Ceil(float64(max(p0.Y, p1.Y)))),
		)
		draw.Draw(r.img, rect.Intersect(r.img.Bounds()), image.Transparent, image.Point{}, draw.Src)
		return
	}
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	polygon(z, []geom.Pt{
		m.Apply(geom.Pt{X: x, Y: y}),
		m.Apply(geom.Pt{X: x + w, Y: y}),
		m.Apply(geom.Pt{X: x + w, Y: y + h}),
		m.Apply(geom.Pt{X: x, Y: y + h}),
	})
	z.Draw(r.img, b, image.Transparent, image.Point{})
}

// quad adds the rectangle covering segment a-b at half width hw. The vertex
// order gives every quad the same winding regardless of direction.
func quad(z *vector.Rasterizer, a, b geom.Pt, hw float32) {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return
	}
	n := geom.Pt{X: -d.Y / l * hw, Y: d.X / l * hw}
	polygon(z, []geom.Pt{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// disc adds a circle wound the same way as quad so overlaps accumulate.
func disc(z *vector.Rasterizer, c geom.Pt, r float32) {
	n := segmentsFor(r)
	pts := make([]geom.Pt, n)
	for i := 0; i < n; i++ {
		a := -2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Pt{X: c.X + r*float32(math.Cos(a)), Y: c.Y + r*float32(math.Sin(a))}
	}
	polygon(z, pts)
}

func polygon(z *vector.Rasterizer, pts []geom.Pt) {
	z.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		z.LineTo(p.X, p.Y)
	}
	z.ClosePath()
}

func segmentsFor(radius float32) int {
	n := int(radius * 4)
	if n < 12 {
		n = 12
	}
	if n > 96 {
		n = 96
	}
	return n
}
