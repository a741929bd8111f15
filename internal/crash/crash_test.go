/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package crash

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakePad struct{ img *image.RGBA }

func (f fakePad) Snapshot() *image.RGBA { return f.img }

type brokenPad struct{}

func (brokenPad) Snapshot() *image.RGBA { panic("still broken") }

func TestWriteReportCreatesFileInTemp(t *testing.T) {
	path, err := writeReport("", "boom", []byte("stacktrace"))
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(path) })
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "Sketchpad Crash Report") {
		t.Fatalf("report header missing")
	}
	if !strings.Contains(s, "Panic: boom") {
		t.Fatalf("panic content missing: %s", s)
	}
}

func TestWriteReportCreatesFileInDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "crashes")
	path, err := writeReport(dir, "kaboom", []byte("stack"))
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("expected crash report under %s, got %s", dir, path)
	}
}

func TestWriteRescue(t *testing.T) {
	dir := t.TempDir()
	path, err := writeRescue(dir, fakePad{img: image.NewRGBA(image.Rect(0, 0, 8, 4))})
	if err != nil {
		t.Fatalf("writeRescue: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil || cfg.Width != 8 || cfg.Height != 4 {
		t.Fatalf("rescue png: %+v %v", cfg, err)
	}
}

func TestWriteRescue_SnapshotPanics(t *testing.T) {
	if _, err := writeRescue(t.TempDir(), brokenPad{}); err == nil {
		t.Fatalf("expected error from panicking snapshot")
	}
}
