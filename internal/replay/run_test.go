/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package replay

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"sketchpad/internal/drawable"
	"sketchpad/internal/export"
	"sketchpad/internal/sketch"
	"sketchpad/internal/surface"
	"sketchpad/internal/tools"
)

func newPad(t *testing.T) *sketch.Pad {
	t.Helper()
	p, err := sketch.New(surface.NewRecorder(), sketch.Options{})
	if err != nil {
		t.Fatalf("new pad: %v", err)
	}
	return p
}

func TestRun_Scenario(t *testing.T) {
	p := newPad(t)
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Run(p, s, "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Steps != len(s.Steps) {
		t.Fatalf("ran %d of %d steps", res.Steps, len(s.Steps))
	}
	cs := p.Committed()
	if len(cs) != 2 {
		t.Fatalf("expected stroke and sticker, got %d steps", len(cs))
	}
	if st := cs[0].(*drawable.Stroke); st.Len() != 3 {
		t.Fatalf("expected 3 stroke points, got %d", st.Len())
	}
	sk := cs[1].(*drawable.Sticker)
	if sk.Text() != "X" || sk.Rotation() != 45 || sk.Color() != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("sticker state: text=%q rot=%v color=%v", sk.Text(), sk.Rotation(), sk.Color())
	}
	if p.PreviewVisible() {
		t.Fatalf("leave should hide the preview")
	}
}

func TestRun_Export(t *testing.T) {
	dir := t.TempDir()
	p := newPad(t)
	s, err := Parse([]byte("steps:\n  - down: [0, 0]\n  - drag: [[255, 255]]\n  - export: out/sketch.png\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Run(p, s, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := filepath.Join(dir, "out", "sketch.png")
	if len(res.Exports) != 1 || res.Exports[0] != want {
		t.Fatalf("exports = %v", res.Exports)
	}
	f, err := os.Open(want)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil || cfg.Width != 1024 {
		t.Fatalf("export png: %+v %v", cfg, err)
	}
}

func TestRun_UnknownToolStops(t *testing.T) {
	p := newPad(t)
	s, _ := Parse([]byte("steps:\n  - undo: 1\n  - tool: Airbrush\n  - clear: true\n"))
	res, err := Run(p, s, "")
	if !errors.Is(err, tools.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
	if res.Steps != 1 {
		t.Fatalf("expected to stop after the first step, ran %d", res.Steps)
	}
}

func TestRun_CancelledSticker(t *testing.T) {
	p := newPad(t)
	before := len(p.Tools())
	s, _ := Parse([]byte("steps:\n  - sticker: \"\"\n"))
	if _, err := Run(p, s, ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(p.Tools()) != before || p.ActiveTool() != tools.ThinMarker {
		t.Fatalf("cancelled sticker prompt changed state")
	}
}

func TestRun_BadExportFormat(t *testing.T) {
	p := newPad(t)
	s, _ := Parse([]byte("steps:\n  - export: sketch.gif\n"))
	if _, err := Run(p, s, t.TempDir()); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestRun_PrintPresetExport(t *testing.T) {
	dir := t.TempDir()
	p := newPad(t)
	s, err := Parse([]byte("steps:\n  - down: [0, 0]\n  - drag: [[255, 255]]\n  - preset: print\n  - export: poster\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Run(p, s, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := filepath.Join(dir, "poster.pdf")
	if len(res.Exports) != 1 || res.Exports[0] != want {
		t.Fatalf("exports = %v, want %s", res.Exports, want)
	}
	data, err := os.ReadFile(want)
	if err != nil || !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected a pdf at %s: %v", want, err)
	}
}

func TestRun_ExportWithoutExtensionUsesPadFormat(t *testing.T) {
	dir := t.TempDir()
	p, err := sketch.New(surface.NewRecorder(), sketch.Options{Format: export.FormatPDF})
	if err != nil {
		t.Fatalf("new pad: %v", err)
	}
	s, _ := Parse([]byte("steps:\n  - export: out/plain\n"))
	res, err := Run(p, s, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Exports) != 1 || filepath.Ext(res.Exports[0]) != ".pdf" {
		t.Fatalf("exports = %v", res.Exports)
	}
}
