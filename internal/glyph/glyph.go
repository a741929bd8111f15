/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package glyph resolves font faces for sticker text. Faces are looked up by
// pixel size; surfaces ask for the size already multiplied by their current
// transform scale so exported images stay sharp.
package glyph

import (
	"fmt"
	"math"
	"os"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFamily is the family name goregular is registered under.
const DefaultFamily = "goregular"

// Provider maps a pixel size to a concrete font.Face.
type Provider interface {
	Face(sizePx float32) font.Face
}

// Library stores parsed OpenType fonts by family name.
type Library struct {
	fonts map[string]*opentype.Font
}

func NewLibrary() *Library { return &Library{fonts: make(map[string]*opentype.Font)} }

// LoadTTF loads a font file into the library under the given family.
func (l *Library) LoadTTF(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return l.LoadBytes(family, data)
}

// LoadBytes parses an in-memory TTF/OTF.
func (l *Library) LoadBytes(family string, data []byte) error {
	if l.fonts == nil {
		l.fonts = make(map[string]*opentype.Font)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", family, err)
	}
	l.fonts[family] = f
	return nil
}

func (l *Library) find(family string) *opentype.Font {
	if l == nil || l.fonts == nil {
		return nil
	}
	return l.fonts[family]
}

// OTProvider resolves faces from a Library and falls back to another Provider
// when the family is missing or face creation fails. Faces are cached per
// half-pixel size bucket.
type OTProvider struct {
	Lib      *Library
	Family   string
	Fallback Provider

	cache map[int]font.Face
}

func (p *OTProvider) Face(sizePx float32) font.Face {
	if sizePx <= 0 {
		sizePx = 12
	}
	bucket := int(math.Round(float64(sizePx) * 2))
	if f, ok := p.cache[bucket]; ok {
		return f
	}
	if f := p.Lib.find(p.Family); f != nil {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(bucket) / 2, DPI: 72, Hinting: font.HintingNone})
		if err == nil {
			if p.cache == nil {
				p.cache = make(map[int]font.Face)
			}
			p.cache[bucket] = face
			return face
		}
	}
	fb := p.Fallback
	if fb == nil {
		fb = BasicProvider{}
	}
	return fb.Face(sizePx)
}

// BasicProvider uses x/image/basicfont Face7x13 at every size. It is fully
// deterministic and used in tests.
type BasicProvider struct{}

func (BasicProvider) Face(float32) font.Face { return basicfont.Face7x13 }

// Default returns a provider backed by the bundled Go Regular font.
func Default() *OTProvider {
	lib := NewLibrary()
	// On a parse error the family stays unregistered and Face falls back to basicfont.
	_ = lib.LoadBytes(DefaultFamily, goregular.TTF)
	return &OTProvider{Lib: lib, Family: DefaultFamily, Fallback: BasicProvider{}}
}

// FromFile loads a user font (for example an emoji-capable TTF) and falls
// back to Default for sizes the user font cannot serve.
func FromFile(path string) (*OTProvider, error) {
	lib := NewLibrary()
	if err := lib.LoadTTF("user", path); err != nil {
		return nil, err
	}
	return &OTProvider{Lib: lib, Family: "user", Fallback: Default()}, nil
}

// Missing returns the runes of text the provider's font has no glyph for.
// Spaces, zero-width joiners and variation selectors are not checked.
func Missing(p Provider, text string) []rune {
	face := p.Face(16)
	var out []rune
	for _, r := range text {
		if unicode.IsSpace(r) || r == '\u200d' || unicode.Is(unicode.Variation_Selector, r) {
			continue
		}
		if _, ok := face.GlyphAdvance(r); !ok {
			out = append(out, r)
		}
	}
	return out
}
