/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package tools maps tool ids to drawable factories and tracks the active tool.
package tools

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"sketchpad/internal/drawable"
	applog "sketchpad/internal/log"
	"sketchpad/internal/surface"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrNoActiveTool  = errors.New("no active tool selected")
	ErrEmptySticker  = errors.New("sticker text is empty")
	ErrInvalidMarker = errors.New("marker width must be positive")
	ErrNameTaken     = errors.New("name is taken by another tool")
)

// Factory creates a fresh drawable.
type Factory func() drawable.Drawable

type entry struct {
	draw    Factory
	cursor  Factory
	sticker bool
}

// Style is the shared color/rotation state fed by the color picker and the
// rotation slider. Factories read it when a drawable is created; drawables
// keep what they captured.
type Style struct {
	Color    color.RGBA
	Rotation float32 // degrees
}

// Registry holds the tools in registration order.
type Registry struct {
	tools map[string]entry
	order []string
	style *Style
	// StickerSize is the glyph size for stickers registered after it is set.
	StickerSize float32
	log         *slog.Logger
}

func NewRegistry(style *Style) *Registry {
	if style == nil {
		style = &Style{Color: surface.Black}
	}
	return &Registry{
		tools:       make(map[string]entry),
		style:       style,
		StickerSize: 32,
		log:         applog.WithComponent("tools"),
	}
}

// Style returns the shared style the factories read.
func (r *Registry) Style() *Style { return r.style }

// Register adds or overwrites a tool and reports whether the id was new.
func (r *Registry) Register(id string, draw, cursor Factory) bool {
	_, exists := r.tools[id]
	if cursor == nil {
		cursor = draw
	}
	r.tools[id] = entry{draw: draw, cursor: cursor}
	if !exists {
		r.order = append(r.order, id)
	}
	return !exists
}

// MakeDrawable creates a new drawable for the tool.
func (r *Registry) MakeDrawable(id string) (drawable.Drawable, error) {
	e, ok := r.tools[id]
	if !ok {
		return nil, fmt.Errorf("make drawable %q: %w", id, ErrUnknownTool)
	}
	return e.draw(), nil
}

// MakeCursorPreview creates the cursor preview for the tool.
func (r *Registry) MakeCursorPreview(id string) (drawable.Drawable, error) {
	e, ok := r.tools[id]
	if !ok {
		return nil, fmt.Errorf("make cursor preview %q: %w", id, ErrUnknownTool)
	}
	return e.cursor(), nil
}

func (r *Registry) Has(id string) bool {
	_, ok := r.tools[id]
	return ok
}

// IsSticker reports whether id was registered through RegisterSticker.
func (r *Registry) IsSticker(id string) bool { return r.tools[id].sticker }

// IDs returns tool ids in registration order.
func (r *Registry) IDs() []string { return append([]string(nil), r.order...) }

// RegisterMarker adds a stroke tool. The cursor is a ring half the width.
func (r *Registry) RegisterMarker(name string, width float32) error {
	if width <= 0 {
		return fmt.Errorf("marker %q: %w", name, ErrInvalidMarker)
	}
	r.Register(name,
		func() drawable.Drawable { return drawable.NewStroke(width, r.style.Color) },
		func() drawable.Drawable { return drawable.NewDot(width/2, r.style.Color) },
	)
	return nil
}

// RegisterSticker adds a sticker tool keyed by its text. Registering the same
// text again returns the existing id and created == false. Text equal to the
// name of a non-sticker tool fails with ErrNameTaken.
func (r *Registry) RegisterSticker(text string) (id string, created bool, err error) {
	if strings.TrimSpace(text) == "" {
		return "", false, ErrEmptySticker
	}
	if e, ok := r.tools[text]; ok {
		if !e.sticker {
			return "", false, fmt.Errorf("sticker %q: %w", text, ErrNameTaken)
		}
		return text, false, nil
	}
	size := r.StickerSize
	mk := func() drawable.Drawable {
		return drawable.NewSticker(text, drawable.StickerOptions{
			SizePx:   size,
			Rotation: r.style.Rotation,
			Color:    r.style.Color,
		})
	}
	r.Register(text, mk, mk)
	e := r.tools[text]
	e.sticker = true
	r.tools[text] = e
	r.log.Debug("sticker registered", slog.String("text", text))
	return text, true, nil
}
