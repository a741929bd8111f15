/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package sketch

import (
	"fmt"

	"sketchpad/internal/config"
	"sketchpad/internal/export"
	"sketchpad/internal/glyph"
)

// OptionsFromConfig maps the user configuration onto Pad options. A sticker
// font that cannot be loaded is reported together with usable options that
// fall back to the built-in face.
func OptionsFromConfig(cfg config.AppConfig) (Options, error) {
	style, err := cfg.Tools.Style()
	if err != nil {
		return Options{}, fmt.Errorf("tools.color: %w", err)
	}
	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return Options{}, fmt.Errorf("export.format: %w", err)
	}
	presets := cfg.Tools.Presets()
	opt := Options{
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		Presets:     &presets,
		DefaultTool: cfg.Tools.Default,
		StickerSize: cfg.Tools.StickerSize,
		Style:       style,
		Export:      export.Options{Width: cfg.Export.Width, Height: cfg.Export.Height},
		Format:      format,
		Preset:      export.PresetName(cfg.Export.Preset),
	}
	var ferr error
	if cfg.Fonts.StickerTTF != "" {
		p, err := glyph.FromFile(cfg.Fonts.StickerTTF)
		if err != nil {
			ferr = fmt.Errorf("sticker font: %w", err)
		} else {
			opt.Faces = p
		}
	}
	return opt, ferr
}
