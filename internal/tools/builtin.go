/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tools

// MarkerPreset describes a built-in stroke tool.
type MarkerPreset struct {
	Name  string  `yaml:"name"`
	Width float32 `yaml:"width"`
}

// Presets lists the tools seeded at startup.
type Presets struct {
	Markers  []MarkerPreset
	Stickers []string
}

const (
	ThinMarker  = "Thin Marker"
	ThickMarker = "Thick Marker"
)

// DefaultPresets returns the stock tool set.
func DefaultPresets() Presets {
	return Presets{
		Markers: []MarkerPreset{
			{Name: ThinMarker, Width: 2},
			{Name: ThickMarker, Width: 6},
		},
		Stickers: []string{"😀", "🌵", "⭐"},
	}
}

// SeedBuiltins registers the presets. Markers come first so the first marker
// is a sensible default tool.
func (r *Registry) SeedBuiltins(p Presets) error {
	for _, m := range p.Markers {
		if err := r.RegisterMarker(m.Name, m.Width); err != nil {
			return err
		}
	}
	for _, s := range p.Stickers {
		if _, _, err := r.RegisterSticker(s); err != nil {
			return err
		}
	}
	return nil
}
