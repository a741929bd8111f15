/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package surface defines the immediate-mode 2D drawing contract drawables
// render onto, with a raster implementation and a call recorder.
package surface

import "image/color"

// Font selects the text size in user-space pixels.
type Font struct {
	SizePx float32
}

// Surface is a 2D immediate-mode vector surface. Coordinates are user space
// and pass through the current transform. Save/Restore cover the transform,
// colors, line width and font.
type Surface interface {
	BeginPath()
	ClosePath()
	MoveTo(x, y float32)
	LineTo(x, y float32)
	// Ellipse adds a closed elliptical subpath centred on (cx, cy).
	Ellipse(cx, cy, rx, ry float32)
	Stroke()
	Fill()

	SetLineWidth(w float32)
	SetStrokeColor(c color.RGBA)
	SetFillColor(c color.RGBA)
	SetFont(f Font)
	// FillText draws text centred horizontally and vertically on (x, y)
	// using the fill color.
	FillText(text string, x, y float32)

	Save()
	Restore()
	Translate(tx, ty float32)
	Rotate(rad float32)
	Scale(sx, sy float32)

	ClearRect(x, y, w, h float32)
}

var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
