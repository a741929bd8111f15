/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"image/color"
	"testing"

	"sketchpad/internal/tools"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"256", 256, 256, true},
		{"320x240", 320, 240, true},
		{" 64 X 32 ", 64, 32, true},
		{"0", 0, 0, false},
		{"ax3", 0, 0, false},
		{"3x", 0, 0, false},
	}
	for _, c := range cases {
		w, h, err := ParseSize(c.in)
		if (err == nil) != c.ok || w != c.w || h != c.h {
			t.Fatalf("ParseSize(%q) = %d,%d,%v", c.in, w, h, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#000":      {A: 255},
		"#00ff00":   {G: 255, A: 255},
		"0000ff80":  {B: 255, A: 0x80},
		" #FFFFFF ": {R: 255, G: 255, B: 255, A: 255},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Fatalf("ParseColor(%q) = %v, %v", in, got, err)
		}
	}
	for _, bad := range []string{"", "#12", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestMergeInto_MarkerListResetsDefaultTool(t *testing.T) {
	cfg := Defaults()
	mergeInto(&cfg, &AppConfig{Tools: ToolsConfig{Markers: []tools.MarkerPreset{{Name: "Pen", Width: 3}}}})
	if cfg.Tools.Default != "" {
		t.Fatalf("default tool should be cleared with the marker list, got %q", cfg.Tools.Default)
	}

	cfg = Defaults()
	mergeInto(&cfg, &AppConfig{Tools: ToolsConfig{Default: "Pen", Markers: []tools.MarkerPreset{{Name: "Pen", Width: 3}}}})
	if cfg.Tools.Default != "Pen" {
		t.Fatalf("explicit default should be kept, got %q", cfg.Tools.Default)
	}
}

func TestMergeInto_ExportPreset(t *testing.T) {
	cfg := Defaults()
	mergeInto(&cfg, &AppConfig{Export: ExportConfig{Preset: " Print "}})
	if cfg.Export.Preset != "print" || cfg.Export.Format != "png" {
		t.Fatalf("export merge: %+v", cfg.Export)
	}
}
