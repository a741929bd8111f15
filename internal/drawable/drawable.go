/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package drawable holds the units of drawn content: marker strokes, stickers
// and the cursor ring. Each one accumulates pointer moves while it is the
// step in progress and renders itself from stored state only.
package drawable

import (
	"image/color"

	"sketchpad/internal/geom"
	"sketchpad/internal/surface"
)

// Drawable is implemented by every kind of drawn content.
type Drawable interface {
	// Position is the current anchor, or geom.Undefined before the first move.
	Position() geom.Pt
	// ApplyMove feeds one pointer sample into the drawable.
	ApplyMove(p geom.Pt)
	// Render draws the stored state. It must not change that state.
	Render(s surface.Surface)
}

// Stroke is a freehand polyline. Points are only ever appended.
type Stroke struct {
	points []geom.Pt
	width  float32
	color  color.RGBA
}

func NewStroke(width float32, c color.RGBA) *Stroke {
	return &Stroke{width: width, color: c}
}

func (s *Stroke) Position() geom.Pt {
	if len(s.points) == 0 {
		return geom.Undefined()
	}
	return s.points[len(s.points)-1]
}

// ApplyMove appends every raw sample; no dedup or smoothing.
func (s *Stroke) ApplyMove(p geom.Pt) { s.points = append(s.points, p) }

func (s *Stroke) Render(sf surface.Surface) {
	if len(s.points) < 2 {
		return
	}
	sf.Save()
	sf.SetStrokeColor(s.color)
	sf.SetLineWidth(s.width)
	sf.BeginPath()
	sf.MoveTo(s.points[0].X, s.points[0].Y)
	for _, p := range s.points[1:] {
		sf.LineTo(p.X, p.Y)
	}
	sf.Stroke()
	sf.Restore()
}

// Points returns a copy of the stored samples in drawing order.
func (s *Stroke) Points() []geom.Pt { return append([]geom.Pt(nil), s.points...) }

func (s *Stroke) Len() int          { return len(s.points) }
func (s *Stroke) Width() float32    { return s.width }
func (s *Stroke) Color() color.RGBA { return s.color }

// Sticker is a text glyph placed at a single anchor. Moving it replaces the
// anchor.
type Sticker struct {
	anchor   geom.Pt
	text     string
	size     float32
	rotation float32 // degrees, clockwise on screen
	color    color.RGBA
}

// StickerOptions are captured when the sticker is created.
type StickerOptions struct {
	SizePx   float32
	Rotation float32
	Color    color.RGBA
}

func NewSticker(text string, opt StickerOptions) *Sticker {
	if opt.SizePx <= 0 {
		opt.SizePx = 32
	}
	if opt.Color.A == 0 {
		opt.Color = surface.Black
	}
	return &Sticker{anchor: geom.Undefined(), text: text, size: opt.SizePx, rotation: opt.Rotation, color: opt.Color}
}

func (s *Sticker) Position() geom.Pt   { return s.anchor }
func (s *Sticker) ApplyMove(p geom.Pt) { s.anchor = p }

func (s *Sticker) Render(sf surface.Surface) {
	if !s.anchor.Defined() {
		return
	}
	sf.Save()
	sf.Translate(s.anchor.X, s.anchor.Y)
	if s.rotation != 0 {
		sf.Rotate(geom.Radians(s.rotation))
	}
	sf.SetFillColor(s.color)
	sf.SetFont(surface.Font{SizePx: s.size})
	sf.FillText(s.text, 0, 0)
	sf.Restore()
}

func (s *Sticker) Text() string      { return s.text }
func (s *Sticker) Rotation() float32 { return s.rotation }
func (s *Sticker) Color() color.RGBA { return s.color }

// Dot is the cursor ring shown for marker tools: a circle outline whose
// diameter matches the marker width.
type Dot struct {
	center geom.Pt
	radius float32
	color  color.RGBA
}

func NewDot(radius float32, c color.RGBA) *Dot {
	return &Dot{center: geom.Undefined(), radius: radius, color: c}
}

func (d *Dot) Position() geom.Pt   { return d.center }
func (d *Dot) ApplyMove(p geom.Pt) { d.center = p }

func (d *Dot) Render(sf surface.Surface) {
	if !d.center.Defined() {
		return
	}
	sf.Save()
	sf.SetStrokeColor(d.color)
	sf.SetLineWidth(1)
	sf.BeginPath()
	sf.Ellipse(d.center.X, d.center.Y, d.radius, d.radius)
	sf.Stroke()
	sf.Restore()
}

func (d *Dot) Radius() float32 { return d.radius }
