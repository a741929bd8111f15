/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"sketchpad/internal/drawable"
	"sketchpad/internal/glyph"
	"sketchpad/internal/render"
	"sketchpad/internal/surface"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Options controls the off-screen rasterisation.
//   - Width/Height: output pixels; zero means 1024.
//   - Background: zero leaves the image transparent like the interactive canvas.
//   - Faces: sticker glyphs; nil uses the default font.
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
	Faces      glyph.Provider
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 1024
	}
	if h <= 0 {
		h = 1024
	}
	return w, h
}

// Rasterize renders committed onto a fresh image, scaling the canvasW×canvasH
// canvas up (or down) to the export size.
func Rasterize(committed []drawable.Drawable, canvasW, canvasH int, opt Options) *image.RGBA {
	w, h := opt.size()
	r := surface.NewRaster(w, h, opt.Faces)
	if canvasW > 0 && canvasH > 0 {
		r.Scale(float32(w)/float32(canvasW), float32(h)/float32(canvasH))
	}
	render.Frame(r, float32(canvasW), float32(canvasH), committed, nil)
	img := r.Image()
	if opt.Background.A == 0 {
		return img
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), &image.Uniform{C: opt.Background}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, image.Point{}, draw.Over)
	return out
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case "", FormatPNG:
		return WritePNG(w, img)
	case FormatPDF:
		return WritePDF(w, img, PDFOptions{})
	default:
		return fmt.Errorf("encode %q: %w", f, ErrUnknownFormat)
	}
}

// WriteFile encodes img to path, creating the parent directory.
func WriteFile(path string, img image.Image, f Format) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure out dir: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", f, err)
	}
	if err := Encode(out, img, f); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f, err)
	}
	return nil
}
