/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package surface

import (
	"strings"
	"testing"
)

func TestRecorder_LogsCallsInOrder(t *testing.T) {
	var s Surface = NewRecorder()
	s.ClearRect(0, 0, 10, 10)
	s.BeginPath()
	s.MoveTo(1, 2)
	s.LineTo(3, 4)
	s.Stroke()
	s.FillText("hi", 5, 5)

	r := s.(*Recorder)
	got := strings.Join(r.Ops(), ",")
	if got != "clearRect,beginPath,moveTo,lineTo,stroke,fillText" {
		t.Fatalf("unexpected op order: %s", got)
	}
	if r.Count("moveTo") != 1 {
		t.Fatalf("expected one moveTo")
	}
	if !strings.Contains(r.String(), `fillText 5 5 "hi"`) {
		t.Fatalf("unexpected trace:\n%s", r.String())
	}
	r.Reset()
	if len(r.Calls) != 0 {
		t.Fatalf("expected empty log after Reset")
	}
}
