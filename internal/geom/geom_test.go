/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import (
	"math"
	"testing"
)

func TestUndefinedSentinel(t *testing.T) {
	u := Undefined()
	if u.Defined() {
		t.Fatalf("sentinel must not be defined: %+v", u)
	}
	if !math.IsNaN(float64(u.X)) || !math.IsNaN(float64(u.Y)) {
		t.Fatalf("expected NaN components, got %+v", u)
	}
	if !(Pt{0, 0}).Defined() {
		t.Fatalf("origin should be defined")
	}
	inf := float32(math.Inf(1))
	if (Pt{inf, 0}).Defined() {
		t.Fatalf("infinite point should not be defined")
	}
}

func TestAffineBasic(t *testing.T) {
	m := Translate(10, 5).Mul(Scale(2, 3))
	p := m.Apply(Pt{1, 1})
	if p.X != 12 || p.Y != 8 { // (1*2+10, 1*3+5)
		t.Fatalf("unexpected transform result: %+v", p)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	p := Rotate(Radians(90)).Apply(Pt{1, 0})
	if !p.Eq(Pt{0, 1}, 1e-5) {
		t.Fatalf("expected (0,1), got %+v", p)
	}
}

func TestScaleFactor(t *testing.T) {
	if f := Scale(4, 4).Mul(Rotate(0.7)).ScaleFactor(); math.Abs(float64(f-4)) > 1e-4 {
		t.Fatalf("expected scale factor 4, got %v", f)
	}
	if f := Identity.ScaleFactor(); f != 1 {
		t.Fatalf("identity scale factor = %v", f)
	}
}

func TestDist(t *testing.T) {
	if d := (Pt{0, 0}).Dist(Pt{3, 4}); d != 5 {
		t.Fatalf("expected 5, got %v", d)
	}
}
