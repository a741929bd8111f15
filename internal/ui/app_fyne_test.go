//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// These tests drive the sketch canvas widget with synthetic mouse events.
// They are gated behind the "fyne" build tag so CI does not need Fyne or a display.
//
//	go test -tags fyne ./internal/ui
package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"sketchpad/internal/sketch"
	"sketchpad/internal/surface"
	"sketchpad/internal/tools"
)

func almostEqual(a, b, eps float32) bool {
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}

func newTestCanvas(t *testing.T) (*SketchCanvas, *sketch.Pad) {
	t.Helper()
	test.NewTempApp(t)
	r := surface.NewRaster(256, 256, nil)
	pad, err := sketch.New(r, sketch.Options{Width: 256, Height: 256})
	if err != nil {
		t.Fatalf("sketch.New: %v", err)
	}
	sc := NewSketchCanvas(pad, r)
	sc.Resize(fyne.NewSize(512, 512))
	return sc, pad
}

func mouse(x, y float32, b desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: b}
}

func TestSketchCanvas_MinSize(t *testing.T) {
	sc, _ := newTestCanvas(t)
	if sz := sc.MinSize(); sz.Width != 512 || sz.Height != 512 {
		t.Fatalf("unexpected MinSize: %v", sz)
	}
}

func TestSketchCanvas_LayoutCentersBackground(t *testing.T) {
	sc, _ := newTestCanvas(t)
	r, ok := test.TempWidgetRenderer(t, sc).(*sketchCanvasRenderer)
	if !ok {
		t.Fatalf("expected sketchCanvasRenderer")
	}
	r.Layout(fyne.NewSize(600, 400))
	if !almostEqual(sc.bg.Size().Width, 400, 0.1) || !almostEqual(sc.bg.Size().Height, 400, 0.1) {
		t.Fatalf("unexpected background size %v", sc.bg.Size())
	}
	if !almostEqual(sc.bg.Position().X, 100, 0.1) || sc.bg.Position().Y != 0 {
		t.Fatalf("background should be centred, got %v", sc.bg.Position())
	}
}

func TestSketchCanvas_DragDrawsStroke(t *testing.T) {
	sc, pad := newTestCanvas(t)
	sc.MouseDown(mouse(20, 20, desktop.MouseButtonPrimary))
	sc.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 40)}})
	sc.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 80)}})
	sc.MouseUp(mouse(100, 80, desktop.MouseButtonPrimary))
	sc.DragEnd()

	c := pad.Committed()
	if len(c) != 1 {
		t.Fatalf("expected one committed stroke, got %d", len(c))
	}
	if pos := c[0].Position(); !almostEqual(pos.X, 50, 0.01) || !almostEqual(pos.Y, 40, 0.01) {
		t.Fatalf("stroke end should be in canvas pixels, got %v", pos)
	}
	if !pad.CanUndo() {
		t.Fatalf("undo should be available after drawing")
	}
}

func TestSketchCanvas_SecondaryButtonIgnored(t *testing.T) {
	sc, pad := newTestCanvas(t)
	sc.MouseDown(mouse(20, 20, desktop.MouseButtonSecondary))
	if len(pad.Committed()) != 0 {
		t.Fatalf("secondary click must not draw")
	}
}

func TestSketchCanvas_HoverAndLeave(t *testing.T) {
	sc, pad := newTestCanvas(t)
	if _, err := pad.SelectTool(tools.ThickMarker); err != nil {
		t.Fatalf("select: %v", err)
	}
	sc.MouseIn(mouse(50, 50, 0))
	if !pad.PreviewVisible() {
		t.Fatalf("preview should show while hovering")
	}
	sc.MouseOut()
	if pad.PreviewVisible() {
		t.Fatalf("preview should hide after the pointer leaves")
	}
	if len(pad.Committed()) != 0 {
		t.Fatalf("hovering must not commit anything")
	}
}

func TestSketchCanvas_ReleaseOutsideHidesPreview(t *testing.T) {
	sc, pad := newTestCanvas(t)
	sc.MouseDown(mouse(20, 20, desktop.MouseButtonPrimary))
	sc.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(600, 600)}})
	sc.MouseUp(mouse(600, 600, desktop.MouseButtonPrimary))
	if pad.PreviewVisible() {
		t.Fatalf("releasing outside the canvas must not show the cursor preview")
	}
	if len(pad.Committed()) != 1 {
		t.Fatalf("the stroke should still be committed")
	}
}
