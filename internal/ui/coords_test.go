/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"reflect"
	"testing"
)

func TestContain(t *testing.T) {
	s, ox, oy := contain(512, 300, 256, 256)
	if s != float32(300)/256 || oy != 0 || ox != (512-300)/2 {
		t.Fatalf("contain = %v %v %v", s, ox, oy)
	}
	if s, ox, oy := contain(0, 0, 256, 256); s != 1 || ox != 0 || oy != 0 {
		t.Fatalf("degenerate view should be identity, got %v %v %v", s, ox, oy)
	}
}

func TestToCanvas(t *testing.T) {
	p, ok := toCanvas(256, 256, 512, 512, 256, 256)
	if !ok || p.X != 128 || p.Y != 128 {
		t.Fatalf("centre maps to %v ok=%v", p, ok)
	}
	// letterboxed: 400x200 view, canvas drawn 200x200 at x=100
	p, ok = toCanvas(100, 0, 400, 200, 256, 256)
	if !ok || p.X != 0 || p.Y != 0 {
		t.Fatalf("top-left of drawn area maps to %v ok=%v", p, ok)
	}
	if _, ok := toCanvas(50, 100, 400, 200, 256, 256); ok {
		t.Fatalf("letterbox margin should be outside the canvas")
	}
}

func TestButtonStates(t *testing.T) {
	got := buttonStates([]string{"a", "b", "c"}, "b")
	if !reflect.DeepEqual(got, []bool{true, false, true}) {
		t.Fatalf("buttonStates = %v", got)
	}
}
