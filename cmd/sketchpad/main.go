/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sketchpad/internal/config"
	"sketchpad/internal/crash"
	"sketchpad/internal/export"
	applog "sketchpad/internal/log"
	"sketchpad/internal/replay"
	"sketchpad/internal/sketch"
	"sketchpad/internal/surface"
	"sketchpad/internal/ui"
	"sketchpad/internal/version"
)

func usage() {
	fmt.Println("Sketchpad")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sketchpad version|-v|--version          Show version")
	fmt.Println("  sketchpad tools                         List the configured tools")
	fmt.Println("  sketchpad replay <script.yaml> [out]    Replay a pointer script, optionally export the result")
	fmt.Println("  sketchpad ui                            Launch desktop UI (build with -tags fyne for full UI)")
	fmt.Println()
	fmt.Println("The bundled font has no emoji. Point fonts.sticker_ttf in the config file")
	fmt.Println("(or SKP_STICKER_FONT) at an emoji-capable TTF to draw the default stickers.")
}

// padRef lets the deferred crash handler see a pad created after the defer.
type padRef struct{ p *sketch.Pad }

func (r *padRef) Snapshot() *image.RGBA {
	if r.p == nil {
		return nil
	}
	return r.p.Snapshot()
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config not loaded, using defaults", slog.Any("err", cfgErr))
	}
	ref := &padRef{}
	defer crash.Recover("", ref)

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Sketchpad")
			fmt.Println(version.String())
			return
		case "tools":
			pad, err := newPad(cfg)
			if err != nil {
				fail(l, "init failed", err)
			}
			for _, id := range pad.Tools() {
				mark := " "
				if id == pad.ActiveTool() {
					mark = "*"
				}
				note := ""
				if m := pad.MissingGlyphs(id); len(m) > 0 {
					note = "  (no glyph in sticker font, set fonts.sticker_ttf)"
				}
				fmt.Printf("%s %s%s\n", mark, id, note)
			}
			fmt.Printf("export: %s\n", pad.Format())
			return
		case "replay":
			if len(args) < 3 {
				fmt.Println("replay requires <script.yaml>")
				usage()
				os.Exit(2)
			}
			pad, err := newPad(cfg)
			if err != nil {
				fail(l, "init failed", err)
			}
			ref.p = pad
			if err := runReplay(pad, args[2], args[3:]); err != nil {
				fail(l, "replay failed", err)
			}
			return
		case "ui":
			if err := ui.Run(ui.Options{Config: cfg}); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

func newPad(cfg config.AppConfig) (*sketch.Pad, error) {
	opt, err := sketch.OptionsFromConfig(cfg)
	if err != nil {
		if opt.Presets == nil {
			return nil, err
		}
		// a broken sticker font falls back to the built-in face
		applog.WithComponent("cli").Warn("sticker font", slog.Any("err", err))
	}
	return sketch.New(surface.NewRaster(opt.Width, opt.Height, opt.Faces), opt)
}

func runReplay(pad *sketch.Pad, scriptPath string, rest []string) error {
	abs, _ := filepath.Abs(scriptPath)
	s, err := replay.Load(abs)
	if err != nil {
		return err
	}
	res, err := replay.Run(pad, s, filepath.Dir(abs))
	if err != nil {
		return err
	}
	fmt.Printf("Replayed %d steps of %q\n", res.Steps, s.Name)
	for _, p := range res.Exports {
		fmt.Println("Exported", p)
	}
	if len(rest) == 0 {
		return nil
	}
	out := rest[0]
	f := pad.Format()
	if ext := filepath.Ext(out); ext != "" {
		if f, err = export.ParseFormat(strings.TrimPrefix(ext, ".")); err != nil {
			return err
		}
	} else {
		out = export.FileName(out, f)
	}
	if err := export.WriteFile(out, pad.Snapshot(), f); err != nil {
		return err
	}
	fmt.Println("Exported", out)
	return nil
}

func fail(l *slog.Logger, msg string, err error) {
	l.Error(msg, slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}
