/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tools

import (
	"fmt"

	"sketchpad/internal/drawable"
)

// Selector tracks the active tool of a Registry.
type Selector struct {
	reg    *Registry
	active string
}

func NewSelector(reg *Registry) *Selector { return &Selector{reg: reg} }

func (s *Selector) Registry() *Registry { return s.reg }

// Active returns the active tool id; ok is false before the first Select.
func (s *Selector) Active() (id string, ok bool) { return s.active, s.active != "" }

// Select makes id the active tool. Selecting the already active tool returns
// changed == false and leaves everything as is.
func (s *Selector) Select(id string) (changed bool, err error) {
	if !s.reg.Has(id) {
		return false, fmt.Errorf("select %q: %w", id, ErrUnknownTool)
	}
	if id == s.active {
		return false, nil
	}
	s.active = id
	return true, nil
}

// NewDrawable creates a drawable from the active tool.
func (s *Selector) NewDrawable() (drawable.Drawable, error) {
	if s.active == "" {
		return nil, ErrNoActiveTool
	}
	return s.reg.MakeDrawable(s.active)
}

// NewCursorPreview creates the cursor preview for the active tool.
func (s *Selector) NewCursorPreview() (drawable.Drawable, error) {
	if s.active == "" {
		return nil, ErrNoActiveTool
	}
	return s.reg.MakeCursorPreview(s.active)
}
