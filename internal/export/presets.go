/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export rasterises a sketch at export resolution and encodes it as
// PNG or as a one-page PDF sheet.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat normalises s. The empty string means PNG.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPNG, nil
	case FormatPNG, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FileName returns the download name for base and format. An empty base
// becomes "sketch"; an extension already on base is replaced.
func FileName(base string, f Format) string {
	base = strings.TrimSpace(base)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" {
		base = "sketch"
	}
	if f == "" {
		f = FormatPNG
	}
	return base + "." + string(f)
}

// PresetName represents a named export preset.
type PresetName string

const (
	PresetWeb   PresetName = "web"
	PresetPrint PresetName = "print"
)

// Preset resolves a named preset into options and a format. Web is the
// interactive default: a transparent 1024 px PNG. Print doubles the
// resolution and wraps the image in a PDF sheet on white.
func Preset(p PresetName) (Options, Format, error) {
	switch p {
	case "", PresetWeb:
		return Options{Width: 1024, Height: 1024}, FormatPNG, nil
	case PresetPrint:
		return Options{Width: 2048, Height: 2048, Background: white}, FormatPDF, nil
	default:
		return Options{}, "", fmt.Errorf("preset %q: %w", p, ErrUnknownFormat)
	}
}
