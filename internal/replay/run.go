/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package replay

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"sketchpad/internal/config"
	"sketchpad/internal/export"
	"sketchpad/internal/geom"
	applog "sketchpad/internal/log"
	"sketchpad/internal/sketch"
)

// Pad is the part of *sketch.Pad a script drives.
type Pad interface {
	PointerDown(p geom.Pt, b sketch.Button) error
	PointerMove(p geom.Pt, primaryHeld bool)
	PointerUp(p geom.Pt)
	PointerLeave()
	SelectTool(id string) (bool, error)
	AddCustomSticker(text string, ok bool) (string, error)
	SetColor(c color.RGBA)
	SetRotation(deg float32)
	Undo() bool
	Redo() bool
	Clear()
	Snapshot() *image.RGBA
	Format() export.Format
	UsePreset(name export.PresetName) error
}

// Result summarises a run.
type Result struct {
	Steps   int
	Exports []string
}

// Run plays s against p. Relative export paths resolve against dir.
func Run(p Pad, s *Script, dir string) (Result, error) {
	l := applog.WithComponent("replay")
	var res Result
	last := geom.Undefined()
	for i, st := range s.Steps {
		if err := runStep(p, st, dir, &last, &res); err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
		res.Steps++
	}
	l.Debug("script replayed", slog.String("name", s.Name), slog.Int("steps", res.Steps))
	return res, nil
}

func runStep(p Pad, st Step, dir string, last *geom.Pt, res *Result) error {
	switch {
	case st.Tool != "":
		_, err := p.SelectTool(st.Tool)
		return err
	case st.Sticker != nil:
		// an empty sticker is a cancelled prompt
		_, err := p.AddCustomSticker(*st.Sticker, *st.Sticker != "")
		return err
	case st.Color != "":
		c, err := config.ParseColor(st.Color)
		if err != nil {
			return err
		}
		p.SetColor(c)
	case st.Rotation != nil:
		p.SetRotation(*st.Rotation)
	case st.Down != nil:
		*last = pt(st.Down)
		return p.PointerDown(*last, sketch.ButtonPrimary)
	case st.Drag != nil:
		for _, q := range st.Drag {
			*last = pt(q)
			p.PointerMove(*last, true)
		}
	case st.Hover != nil:
		*last = pt(st.Hover)
		p.PointerMove(*last, false)
	case st.Up != nil:
		*last = pt(st.Up)
		p.PointerUp(*last)
	case st.Leave:
		p.PointerLeave()
	case st.Undo > 0:
		for i := 0; i < st.Undo; i++ {
			p.Undo()
		}
	case st.Redo > 0:
		for i := 0; i < st.Redo; i++ {
			p.Redo()
		}
	case st.Clear:
		p.Clear()
	case st.Preset != "":
		return p.UsePreset(export.PresetName(st.Preset))
	case st.Export != "":
		path := st.Export
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		// without an extension the pad's current format decides
		f := p.Format()
		if ext := filepath.Ext(path); ext != "" {
			var err error
			if f, err = export.ParseFormat(strings.TrimPrefix(ext, ".")); err != nil {
				return err
			}
		} else {
			path = export.FileName(path, f)
		}
		if err := export.WriteFile(path, p.Snapshot(), f); err != nil {
			return err
		}
		res.Exports = append(res.Exports, path)
	default:
		return fmt.Errorf("%w: empty step", ErrInvalidScript)
	}
	return nil
}

func pt(v []float32) geom.Pt {
	if len(v) < 2 {
		return geom.Undefined()
	}
	return geom.Pt{X: v[0], Y: v[1]}
}
