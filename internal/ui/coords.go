/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"sketchpad/internal/config"
	"sketchpad/internal/geom"
)

// Options configures the desktop UI.
type Options struct {
	Config config.AppConfig
	// CrashDir receives crash reports and rescue images; empty means the temp dir.
	CrashDir string
}

// contain returns the scale and offset that fit a cw×ch canvas centred into a
// vw×vh view without distortion.
func contain(vw, vh float32, cw, ch int) (scale, ox, oy float32) {
	if cw <= 0 || ch <= 0 || vw <= 0 || vh <= 0 {
		return 1, 0, 0
	}
	sx := vw / float32(cw)
	sy := vh / float32(ch)
	scale = min(sx, sy)
	ox = (vw - float32(cw)*scale) / 2
	oy = (vh - float32(ch)*scale) / 2
	return scale, ox, oy
}

// toCanvas maps a widget-local position to canvas pixels. ok is false
// outside the drawn area.
func toCanvas(x, y, vw, vh float32, cw, ch int) (p geom.Pt, ok bool) {
	s, ox, oy := contain(vw, vh, cw, ch)
	p = geom.Pt{X: (x - ox) / s, Y: (y - oy) / s}
	ok = p.X >= 0 && p.Y >= 0 && p.X <= float32(cw) && p.Y <= float32(ch)
	return p, ok
}

// buttonStates reports per tool id whether its button is enabled; the
// active tool's button is disabled.
func buttonStates(ids []string, active string) []bool {
	out := make([]bool, len(ids))
	for i, id := range ids {
		out[i] = id != active
	}
	return out
}
