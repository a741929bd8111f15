//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/crash"
	"sketchpad/internal/export"
	"sketchpad/internal/geom"
	applog "sketchpad/internal/log"
	"sketchpad/internal/sketch"
	"sketchpad/internal/surface"
	"sketchpad/internal/version"
)

// Run starts the Fyne-based desktop UI.
func Run(opts Options) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("ver", version.String()))

	padOpt, err := sketch.OptionsFromConfig(opts.Config)
	if err != nil {
		l.Warn("config", slog.Any("err", err))
	}
	if padOpt.Width <= 0 || padOpt.Height <= 0 {
		padOpt.Width, padOpt.Height = 256, 256
	}
	raster := surface.NewRaster(padOpt.Width, padOpt.Height, padOpt.Faces)
	pad, err := sketch.New(raster, padOpt)
	if err != nil {
		return fmt.Errorf("init sketchpad: %w", err)
	}
	defer crash.Recover(opts.CrashDir, pad)

	fyneApp := app.NewWithID("sketchpad")
	w := fyneApp.NewWindow("Sketchpad")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 720)
	winH := prefs.IntWithFallback("window.height", 560)
	w.Resize(fyne.NewSize(float32(max(winW, 480)), float32(max(winH, 400))))
	w.SetOnClosed(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
	})

	status := widget.NewLabel("Ready")
	sc := NewSketchCanvas(pad, raster)

	// Tool buttons, rebuilt when a custom sticker is added
	toolBox := container.NewHBox()
	var toolButtons []*widget.Button
	syncToolButtons := func() {
		for i, on := range buttonStates(pad.Tools(), pad.ActiveTool()) {
			if i >= len(toolButtons) {
				break
			}
			if on {
				toolButtons[i].Enable()
			} else {
				toolButtons[i].Disable()
			}
		}
	}
	rebuildTools := func() {
		toolBox.RemoveAll()
		toolButtons = toolButtons[:0]
		for _, id := range pad.Tools() {
			id := id
			b := widget.NewButton(id, func() {
				if _, err := pad.SelectTool(id); err != nil {
					dialog.ShowError(err, w)
				}
			})
			toolButtons = append(toolButtons, b)
			toolBox.Add(b)
		}
		syncToolButtons()
	}

	undoBtn := widget.NewButton("Undo", func() { pad.Undo() })
	redoBtn := widget.NewButton("Redo", func() { pad.Redo() })
	clearBtn := widget.NewButton("Clear", func() { pad.Clear() })
	syncHistory := func() {
		if pad.CanUndo() {
			undoBtn.Enable()
		} else {
			undoBtn.Disable()
		}
		if pad.CanRedo() {
			redoBtn.Enable()
		} else {
			redoBtn.Disable()
		}
	}

	pad.OnToolChanged = func(id string) {
		syncToolButtons()
		status.SetText("Tool: " + id)
	}
	pad.OnToolsChanged = rebuildTools
	pad.OnRender = func() {
		sc.refreshImage()
		syncHistory()
	}

	stickerBtn := widget.NewButton("Custom sticker…", func() {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("🐙")
		items := []*widget.FormItem{widget.NewFormItem("Sticker", entry)}
		dialog.ShowForm("Custom sticker", "Add", "Cancel", items, func(ok bool) {
			if _, err := pad.AddCustomSticker(entry.Text, ok); err != nil {
				dialog.ShowError(err, w)
			}
		}, w)
	})

	swatch := canvas.NewRectangle(pad.Style().Color)
	swatch.SetMinSize(fyne.NewSize(20, 20))
	colorBtn := widget.NewButton("Color…", func() {
		picker := dialog.NewColorPicker("Color", "Marker and sticker color", func(c color.Color) {
			rgba := color.RGBAModel.Convert(c).(color.RGBA)
			pad.SetColor(rgba)
			swatch.FillColor = rgba
			swatch.Refresh()
		}, w)
		picker.Advanced = true
		picker.Show()
	})

	rotLabel := widget.NewLabel("0°")
	rot := widget.NewSlider(-180, 180)
	rot.Step = 5
	rot.SetValue(float64(pad.Style().Rotation))
	rot.OnChanged = func(v float64) {
		rotLabel.SetText(fmt.Sprintf("%.0f°", v))
		pad.SetRotation(float32(v))
	}

	exportAs := func(f export.Format) {
		d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uc == nil {
				return
			}
			format := f
			if ext := strings.TrimPrefix(strings.ToLower(uc.URI().Extension()), "."); ext != "" {
				if pf, perr := export.ParseFormat(ext); perr == nil {
					format = pf
				}
			}
			status.SetText("Exporting…")
			done := pad.ExportAsync(uc, format)
			go func() {
				err := <-done
				cerr := uc.Close()
				fyne.Do(func() {
					if err == nil {
						err = cerr
					}
					if err != nil {
						l.Error("export failed", slog.Any("err", err))
						dialog.ShowError(err, w)
						status.SetText("Export failed")
						return
					}
					status.SetText("Exported " + uc.URI().Name())
				})
			}()
		}, w)
		d.SetFileName(export.FileName(opts.Config.Export.FileName, f))
		d.Show()
	}
	exportBtn := widget.NewButton("Export…", func() { exportAs(pad.Format()) })
	presetSel := widget.NewSelect([]string{string(export.PresetWeb), string(export.PresetPrint)}, func(v string) {
		if err := pad.UsePreset(export.PresetName(v)); err != nil {
			dialog.ShowError(err, w)
			return
		}
		status.SetText(fmt.Sprintf("Preset %s: exports as %s", v, pad.Format()))
	})
	presetSel.PlaceHolder = "Export preset"
	// show the configured preset without applying it twice
	presetSel.Selected = opts.Config.Export.Preset
	presetSel.Refresh()

	rebuildTools()
	syncHistory()

	toolbar := container.NewVBox(
		container.NewHScroll(toolBox),
		container.NewHBox(undoBtn, redoBtn, clearBtn, widget.NewSeparator(), stickerBtn, colorBtn, swatch),
		container.NewBorder(nil, nil, widget.NewLabel("Rotation"), rotLabel, rot),
		container.NewHBox(presetSel, exportBtn),
	)
	w.SetContent(container.NewBorder(toolbar, status, nil, nil, container.NewCenter(sc)))

	pad.Render()
	w.ShowAndRun()
	l.Info("UI closed")
	return nil
}

// SketchCanvas shows the pad's raster and feeds mouse input into the pad.
type SketchCanvas struct {
	widget.BaseWidget
	pad    *sketch.Pad
	raster *surface.Raster
	img    *canvas.Image
	bg     *canvas.Rectangle
	zoom   float32
	held   bool
}

var (
	_ desktop.Mouseable = (*SketchCanvas)(nil)
	_ desktop.Hoverable = (*SketchCanvas)(nil)
	_ fyne.Draggable    = (*SketchCanvas)(nil)
)

func NewSketchCanvas(pad *sketch.Pad, raster *surface.Raster) *SketchCanvas {
	sc := &SketchCanvas{pad: pad, raster: raster, zoom: 2}
	sc.img = canvas.NewImageFromImage(raster.Image())
	sc.img.FillMode = canvas.ImageFillContain
	sc.img.ScaleMode = canvas.ImageScalePixels
	sc.bg = canvas.NewRectangle(color.White)
	sc.ExtendBaseWidget(sc)
	return sc
}

func (s *SketchCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &sketchCanvasRenderer{sc: s, objects: []fyne.CanvasObject{s.bg, s.img}}
}

func (s *SketchCanvas) MinSize() fyne.Size {
	w, h := s.pad.Size()
	return fyne.NewSize(float32(w)*s.zoom, float32(h)*s.zoom)
}

func (s *SketchCanvas) refreshImage() { s.img.Refresh() }

func (s *SketchCanvas) toCanvas(pos fyne.Position) (geom.Pt, bool) {
	w, h := s.pad.Size()
	sz := s.Size()
	return toCanvas(pos.X, pos.Y, sz.Width, sz.Height, w, h)
}

func (s *SketchCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p, ok := s.toCanvas(e.Position)
	if !ok {
		return
	}
	s.held = true
	_ = s.pad.PointerDown(p, sketch.ButtonPrimary)
}

func (s *SketchCanvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.held = false
	p, ok := s.toCanvas(e.Position)
	if !ok {
		s.pad.PointerLeave()
		return
	}
	s.pad.PointerUp(p)
}

func (s *SketchCanvas) Dragged(e *fyne.DragEvent) {
	p, _ := s.toCanvas(e.Position)
	s.pad.PointerMove(p, s.held)
}

func (s *SketchCanvas) DragEnd() { s.held = false }

func (s *SketchCanvas) MouseIn(e *desktop.MouseEvent) { s.MouseMoved(e) }

func (s *SketchCanvas) MouseMoved(e *desktop.MouseEvent) {
	p, ok := s.toCanvas(e.Position)
	if !ok {
		s.pad.PointerLeave()
		return
	}
	s.pad.PointerMove(p, s.held)
}

func (s *SketchCanvas) MouseOut() { s.pad.PointerLeave() }

type sketchCanvasRenderer struct {
	sc      *SketchCanvas
	objects []fyne.CanvasObject
}

func (r *sketchCanvasRenderer) Destroy()                     {}
func (r *sketchCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *sketchCanvasRenderer) MinSize() fyne.Size           { return r.sc.MinSize() }

func (r *sketchCanvasRenderer) Refresh() {
	r.Layout(r.sc.Size())
	canvas.Refresh(r.sc)
}

func (r *sketchCanvasRenderer) Layout(size fyne.Size) {
	w, h := r.sc.pad.Size()
	s, ox, oy := contain(size.Width, size.Height, w, h)
	drawn := fyne.NewSize(float32(w)*s, float32(h)*s)
	r.sc.bg.Resize(drawn)
	r.sc.bg.Move(fyne.NewPos(ox, oy))
	r.sc.img.Resize(size)
	r.sc.img.Move(fyne.NewPos(0, 0))
}
