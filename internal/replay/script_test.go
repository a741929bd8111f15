/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleScript = `
version: 1
name: scenario
steps:
  - tool: Thin Marker
  - down: [10, 10]
  - drag: [[20, 10], [30, 15]]
  - up: [30, 15]
  - undo: 1
  - redo: 1
  - sticker: "X"
  - rotation: 45
  - color: "#ff0000"
  - down: [100, 100]
  - up: [100, 100]
  - hover: [5, 5]
  - leave: true
`

func TestParse_Valid(t *testing.T) {
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Name != "scenario" || len(s.Steps) != 13 {
		t.Fatalf("unexpected script: name=%q steps=%d", s.Name, len(s.Steps))
	}
	if got := s.Steps[2].Drag; len(got) != 2 || got[1][0] != 30 || got[1][1] != 15 {
		t.Fatalf("drag decoded wrong: %v", got)
	}
	if s.Steps[6].Sticker == nil || *s.Steps[6].Sticker != "X" {
		t.Fatalf("sticker decoded wrong")
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing steps":    "name: x\n",
		"two actions":      "steps:\n  - undo: 1\n    redo: 1\n",
		"bad point":        "steps:\n  - down: [1]\n",
		"unknown action":   "steps:\n  - spray: [1, 2]\n",
		"zero undo":        "steps:\n  - undo: 0\n",
		"bad color":        "steps:\n  - color: red\n",
		"clear false":      "steps:\n  - clear: false\n",
		"unknown version":  "version: 2\nsteps: []\n",
		"not yaml mapping": "- 1\n- 2\n",
		"unknown preset":   "steps:\n  - preset: poster\n",
	}
	for name, src := range cases {
		if _, err := Parse([]byte(src)); !errors.Is(err, ErrInvalidScript) {
			t.Fatalf("%s: expected ErrInvalidScript, got %v", name, err)
		}
	}
}

func TestParse_BrokenYAML(t *testing.T) {
	if _, err := Parse([]byte("steps: [oops")); !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript, got %v", err)
	}
	if _, err := Parse(nil); !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript for empty input, got %v", err)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "none.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("steps:\n  - undo: -1\n"), 0o644)
	_, err := Load(bad)
	if !errors.Is(err, ErrInvalidScript) || !strings.Contains(err.Error(), "bad.yaml") {
		t.Fatalf("expected wrapped ErrInvalidScript naming the file, got %v", err)
	}
}
