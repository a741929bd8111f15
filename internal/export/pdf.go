/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFOptions controls the PDF sheet.
// The page is sized to the image at 96 dpi, so a 1024 px export becomes a
// 768 pt square page with the image filling it edge to edge.
type PDFOptions struct {
	Title  string
	Author string
}

// WritePDF writes a one-page PDF embedding img as PNG. Transparent areas are
// flattened onto white.
func WritePDF(w io.Writer, img image.Image, opt PDFOptions) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("write pdf: empty image")
	}
	flat := image.NewRGBA(b)
	draw.Draw(flat, b, &image.Uniform{C: white}, image.Point{}, draw.Src)
	draw.Draw(flat, b, img, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := WritePNG(&buf, flat); err != nil {
		return err
	}

	wd := float64(b.Dx()) * 72 / 96
	ht := float64(b.Dy()) * 72 / 96
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	title := opt.Title
	if title == "" {
		title = "Sketch"
	}
	author := opt.Author
	if author == "" {
		author = "Sketchpad"
	}
	pdf.SetTitle(title, true)
	pdf.SetAuthor(author, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("sketch", imgOpt, &buf)
	pdf.ImageOptions("sketch", 0, 0, wd, ht, false, imgOpt, 0, "")
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
