/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// Canvas geometry in device pixels and the affine transforms used by surfaces.
// Float values use float32 to line up with the UI toolkit coordinates.

import "math"

// Pt is a point in canvas pixel coordinates.
type Pt struct{ X, Y float32 }

// Undefined returns the sentinel position reported by a drawable that has
// not received a move yet. Both components are NaN.
func Undefined() Pt {
	nan := float32(math.NaN())
	return Pt{nan, nan}
}

// Defined reports whether both components are finite numbers.
func (p Pt) Defined() bool {
	return !isBad(p.X) && !isBad(p.Y)
}

func isBad(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

func (p Pt) Add(q Pt) Pt       { return Pt{p.X + q.X, p.Y + q.Y} }
func (p Pt) Sub(q Pt) Pt       { return Pt{p.X - q.X, p.Y - q.Y} }
func (p Pt) Mul(k float32) Pt  { return Pt{p.X * k, p.Y * k} }
func (p Pt) Len() float32      { return float32(math.Hypot(float64(p.X), float64(p.Y))) }
func (p Pt) Dist(q Pt) float32 { return p.Sub(q).Len() }

func (p Pt) Eq(q Pt, eps float32) bool {
	return abs(p.X-q.X) <= eps && abs(p.Y-q.Y) <= eps
}

// Affine2D represents a 2D affine transform as matrix:
// | a c e |
// | b d f |
// | 0 0 1 |
// stored as [a b c d e f].
type Affine2D struct{ A, B, C, D, E, F float32 }

var Identity = Affine2D{A: 1, D: 1}

func (m Affine2D) Mul(n Affine2D) Affine2D {
	return Affine2D{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine2D) Apply(p Pt) Pt {
	return Pt{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ScaleFactor is the uniform scale of m, sqrt(|det|). Line widths and font
// sizes given in user space are multiplied by it.
func (m Affine2D) ScaleFactor() float32 {
	det := float64(m.A*m.D - m.B*m.C)
	return float32(math.Sqrt(math.Abs(det)))
}

func Translate(tx, ty float32) Affine2D { return Affine2D{A: 1, D: 1, E: tx, F: ty} }
func Scale(sx, sy float32) Affine2D     { return Affine2D{A: sx, D: sy} }
func Rotate(rad float32) Affine2D {
	c := float32(math.Cos(float64(rad)))
	s := float32(math.Sin(float64(rad)))
	return Affine2D{A: c, B: s, C: -s, D: c}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 { return deg * math.Pi / 180 }

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
