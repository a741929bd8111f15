/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package sketch holds the state of one sketchpad session and routes pointer
// and toolbar input into the tool registry and the history.
package sketch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"strings"

	"sketchpad/internal/drawable"
	"sketchpad/internal/export"
	"sketchpad/internal/geom"
	"sketchpad/internal/glyph"
	"sketchpad/internal/history"
	applog "sketchpad/internal/log"
	"sketchpad/internal/render"
	"sketchpad/internal/surface"
	"sketchpad/internal/tools"
)

var ErrNoSurface = errors.New("no drawing surface")

// Button identifies a pointer button. Only the primary button draws.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

// Options configures a Pad. Zero values pick the defaults noted per field.
type Options struct {
	Width, Height int            // canvas size, 256
	Presets       *tools.Presets // nil seeds tools.DefaultPresets
	DefaultTool   string         // empty selects the first registered tool
	StickerSize   float32        // 32
	Style         tools.Style    // zero color means black
	Export        export.Options
	Format        export.Format     // used when Export gets no format, png
	Preset        export.PresetName // overrides Export and Format when set
	Faces         glyph.Provider
}

// Pad is the application state of one canvas. All methods are expected to
// run on the UI goroutine; only ExportAsync starts a goroutine of its own.
type Pad struct {
	surf   surface.Surface
	w, h   int
	style  *tools.Style
	reg    *tools.Registry
	sel    *tools.Selector
	hist   *history.History
	expOpt export.Options
	format export.Format
	faces  glyph.Provider

	preview        drawable.Drawable
	previewVisible bool
	last           geom.Pt

	// OnRender runs after every frame.
	OnRender func()
	// OnToolChanged runs when the active tool actually changes.
	OnToolChanged func(id string)
	// OnToolsChanged runs when a tool is added to the registry.
	OnToolsChanged func()

	log *slog.Logger
}

// New validates the surface, seeds the built-in tools and selects the default
// tool. Input handlers should be attached after New returns.
func New(s surface.Surface, opt Options) (*Pad, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	if opt.Width <= 0 {
		opt.Width = 256
	}
	if opt.Height <= 0 {
		opt.Height = 256
	}
	style := opt.Style
	if style.Color == (color.RGBA{}) {
		style.Color = surface.Black
	}
	format, err := export.ParseFormat(string(opt.Format))
	if err != nil {
		return nil, fmt.Errorf("export format: %w", err)
	}
	if opt.Faces == nil {
		opt.Faces = glyph.Default()
	}
	if opt.Export.Faces == nil {
		opt.Export.Faces = opt.Faces
	}
	p := &Pad{
		surf:   s,
		w:      opt.Width,
		h:      opt.Height,
		style:  &style,
		expOpt: opt.Export,
		format: format,
		faces:  opt.Faces,
		last:   geom.Undefined(),
		log:    applog.WithComponent("sketch"),
	}
	p.reg = tools.NewRegistry(p.style)
	if opt.StickerSize > 0 {
		p.reg.StickerSize = opt.StickerSize
	}
	presets := tools.DefaultPresets()
	if opt.Presets != nil {
		presets = *opt.Presets
	}
	if err := p.reg.SeedBuiltins(presets); err != nil {
		return nil, fmt.Errorf("seed tools: %w", err)
	}
	for _, id := range presets.Stickers {
		if m := glyph.Missing(p.faces, id); len(m) > 0 {
			p.log.Warn("sticker font has no glyph, set fonts.sticker_ttf", slog.String("sticker", id))
		}
	}
	p.sel = tools.NewSelector(p.reg)
	p.hist = history.New(p.sel)

	def := opt.DefaultTool
	if def != "" && !p.reg.Has(def) {
		p.log.Warn("default tool not registered, using first tool", slog.String("tool", def))
		def = ""
	}
	if def == "" {
		if ids := p.reg.IDs(); len(ids) > 0 {
			def = ids[0]
		}
	}
	if _, err := p.sel.Select(def); err != nil {
		return nil, fmt.Errorf("default tool: %w", err)
	}
	if opt.Preset != "" {
		if err := p.UsePreset(opt.Preset); err != nil {
			return nil, err
		}
	}
	p.log.Debug("pad ready", slog.Int("w", p.w), slog.Int("h", p.h), slog.String("tool", def))
	return p, nil
}

func (p *Pad) Size() (w, h int)               { return p.w, p.h }
func (p *Pad) History() *history.History      { return p.hist }
func (p *Pad) Registry() *tools.Registry      { return p.reg }
func (p *Pad) Style() tools.Style             { return *p.style }
func (p *Pad) Preview() drawable.Drawable     { return p.preview }
func (p *Pad) PreviewVisible() bool           { return p.previewVisible }
func (p *Pad) CanUndo() bool                  { return p.hist.CanUndo() }
func (p *Pad) CanRedo() bool                  { return p.hist.CanRedo() }
func (p *Pad) Tools() []string                { return p.reg.IDs() }
func (p *Pad) Committed() []drawable.Drawable { return p.hist.Committed() }

// ActiveTool returns the id of the selected tool.
func (p *Pad) ActiveTool() string {
	id, _ := p.sel.Active()
	return id
}

// PointerDown starts a new step with the active tool. The press position is
// the step's first move, so a click alone places a sticker.
func (p *Pad) PointerDown(pt geom.Pt, b Button) error {
	if b != ButtonPrimary {
		return nil
	}
	p.last = pt
	d, err := p.hist.BeginStep()
	if err != nil {
		p.log.ErrorContext(p.logCtx(), "begin step failed", slog.Any("err", err))
		return err
	}
	p.previewVisible = false
	d.ApplyMove(pt)
	p.Render()
	return nil
}

// PointerMove extends the current step while the primary button is held and
// otherwise moves the cursor preview.
func (p *Pad) PointerMove(pt geom.Pt, primaryHeld bool) {
	p.last = pt
	if primaryHeld {
		if cur, ok := p.hist.CurrentStep(); ok {
			cur.ApplyMove(pt)
			p.Render()
		}
		return
	}
	p.rebuildPreview()
	p.previewVisible = p.preview != nil
	p.Render()
}

// PointerUp ends a drag. The step is already committed; only the cursor
// preview comes back.
func (p *Pad) PointerUp(pt geom.Pt) {
	p.PointerMove(pt, false)
}

// PointerLeave hides the cursor preview.
func (p *Pad) PointerLeave() {
	p.previewVisible = false
	p.Render()
}

// SelectTool activates id. Re-selecting the active tool reports false and
// neither notifies nor renders.
func (p *Pad) SelectTool(id string) (bool, error) {
	changed, err := p.sel.Select(id)
	if err != nil || !changed {
		return false, err
	}
	p.log.DebugContext(p.logCtx(), "tool selected")
	p.rebuildPreview()
	if p.OnToolChanged != nil {
		p.OnToolChanged(id)
	}
	p.Render()
	return true, nil
}

// AddCustomSticker registers text as a sticker tool and selects it. A
// cancelled prompt (ok == false) or blank text does nothing.
func (p *Pad) AddCustomSticker(text string, ok bool) (string, error) {
	if !ok || strings.TrimSpace(text) == "" {
		return "", nil
	}
	id, created, err := p.reg.RegisterSticker(text)
	if err != nil {
		return "", err
	}
	if created && p.OnToolsChanged != nil {
		p.OnToolsChanged()
	}
	if _, err := p.SelectTool(id); err != nil {
		return "", err
	}
	return id, nil
}

// SetColor changes the color used by drawables created from now on.
func (p *Pad) SetColor(c color.RGBA) {
	p.style.Color = c
	p.rebuildPreview()
	p.Render()
}

// SetRotation changes the sticker rotation in degrees for new drawables.
func (p *Pad) SetRotation(deg float32) {
	p.style.Rotation = deg
	p.rebuildPreview()
	p.Render()
}

func (p *Pad) Undo() bool {
	ok := p.hist.Undo()
	p.Render()
	return ok
}

func (p *Pad) Redo() bool {
	ok := p.hist.Redo()
	p.Render()
	return ok
}

// Clear drops the whole drawing, including the redo stack.
func (p *Pad) Clear() {
	p.hist.Clear()
	p.Render()
}

// Render draws one frame on the pad's surface.
func (p *Pad) Render() {
	var pv drawable.Drawable
	if p.previewVisible {
		pv = p.preview
	}
	render.Frame(p.surf, float32(p.w), float32(p.h), p.hist.Committed(), pv)
	if p.OnRender != nil {
		p.OnRender()
	}
}

// Snapshot rasterises the committed steps at export resolution. Only
// committed steps are drawn; the cursor preview is never part of an export.
func (p *Pad) Snapshot() *image.RGBA {
	return export.Rasterize(p.hist.Committed(), p.w, p.h, p.expOpt)
}

// Format is the format Export uses when called without one.
func (p *Pad) Format() export.Format { return p.format }

// UsePreset switches export size, background and default format to a named
// preset. The preset width is kept and the height follows the canvas aspect.
func (p *Pad) UsePreset(name export.PresetName) error {
	opt, f, err := export.Preset(name)
	if err != nil {
		return err
	}
	if p.w > 0 && p.h > 0 {
		opt.Height = opt.Width * p.h / p.w
	}
	opt.Faces = p.expOpt.Faces
	p.expOpt = opt
	p.format = f
	p.log.Debug("export preset", slog.String("preset", string(name)), slog.String("format", string(f)))
	return nil
}

// MissingGlyphs reports the runes of sticker id the sticker font cannot draw.
// It is nil for other tools.
func (p *Pad) MissingGlyphs(id string) []rune {
	if !p.reg.IsSticker(id) {
		return nil
	}
	return glyph.Missing(p.faces, id)
}

// Export writes the drawing to w in format f; an empty f uses Format.
func (p *Pad) Export(w io.Writer, f export.Format) error {
	if f == "" {
		f = p.format
	}
	if _, err := export.ParseFormat(string(f)); err != nil {
		return err
	}
	img := p.Snapshot()
	if err := export.Encode(w, img, f); err != nil {
		return err
	}
	p.log.Info("exported", slog.String("format", string(f)), slog.Int("w", img.Bounds().Dx()), slog.Int("h", img.Bounds().Dy()))
	return nil
}

// ExportAsync rasterises now and encodes on a separate goroutine. The channel
// receives exactly one value. There is no cancellation.
func (p *Pad) ExportAsync(w io.Writer, f export.Format) <-chan error {
	done := make(chan error, 1)
	if f == "" {
		f = p.format
	}
	if _, err := export.ParseFormat(string(f)); err != nil {
		done <- err
		return done
	}
	img := p.Snapshot()
	log := p.log
	go func() {
		err := export.Encode(w, img, f)
		if err != nil {
			log.Error("export failed", slog.String("format", string(f)), slog.Any("err", err))
		} else {
			log.Info("exported", slog.String("format", string(f)), slog.Bool("async", true))
		}
		done <- err
	}()
	return done
}

func (p *Pad) logCtx() context.Context {
	return applog.WithTool(context.Background(), p.ActiveTool())
}

func (p *Pad) rebuildPreview() {
	d, err := p.sel.NewCursorPreview()
	if err != nil {
		p.preview = nil
		return
	}
	if p.last.Defined() {
		d.ApplyMove(p.last)
	}
	p.preview = d
}
