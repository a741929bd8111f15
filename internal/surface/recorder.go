/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package surface

import (
	"image/color"
	"strconv"
	"strings"
)

// Call is one recorded drawing primitive.
type Call struct {
	Op   string
	Args []float32
	Text string
}

func (c Call) String() string {
	b := &strings.Builder{}
	b.WriteString(c.Op)
	for _, a := range c.Args {
		b.WriteString(" ")
		b.WriteString(strconv.FormatFloat(float64(a), 'g', -1, 32))
	}
	if c.Text != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(c.Text))
	}
	return b.String()
}

// Recorder is a Surface that keeps the sequence of calls made on it and draws
// nothing. Two renders of unchanged state must produce equal call logs.
type Recorder struct {
	Calls []Call
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Count returns how many calls with the given op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops returns the op names in call order.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}

func (r *Recorder) String() string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Recorder) add(op string, args ...float32) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func rgba(c color.RGBA) []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

func (r *Recorder) BeginPath()                     { r.add("beginPath") }
func (r *Recorder) ClosePath()                     { r.add("closePath") }
func (r *Recorder) MoveTo(x, y float32)            { r.add("moveTo", x, y) }
func (r *Recorder) LineTo(x, y float32)            { r.add("lineTo", x, y) }
func (r *Recorder) Ellipse(cx, cy, rx, ry float32) { r.add("ellipse", cx, cy, rx, ry) }
func (r *Recorder) Stroke()                        { r.add("stroke") }
func (r *Recorder) Fill()                          { r.add("fill") }
func (r *Recorder) SetLineWidth(w float32)         { r.add("lineWidth", w) }
func (r *Recorder) SetStrokeColor(c color.RGBA)    { r.add("strokeStyle", rgba(c)...) }
func (r *Recorder) SetFillColor(c color.RGBA)      { r.add("fillStyle", rgba(c)...) }
func (r *Recorder) SetFont(f Font)                 { r.add("font", f.SizePx) }
func (r *Recorder) Save()                          { r.add("save") }
func (r *Recorder) Restore()                       { r.add("restore") }
func (r *Recorder) Translate(tx, ty float32)       { r.add("translate", tx, ty) }
func (r *Recorder) Rotate(rad float32)             { r.add("rotate", rad) }
func (r *Recorder) Scale(sx, sy float32)           { r.add("scale", sx, sy) }
func (r *Recorder) ClearRect(x, y, w, h float32)   { r.add("clearRect", x, y, w, h) }

func (r *Recorder) FillText(text string, x, y float32) {
	r.Calls = append(r.Calls, Call{Op: "fillText", Args: []float32{x, y}, Text: text})
}
