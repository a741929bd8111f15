/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render draws one frame of a sketch.
package render

import (
	"sketchpad/internal/drawable"
	"sketchpad/internal/surface"
)

// Frame clears the w×h canvas, renders committed oldest first and then the
// cursor preview when it is non-nil. It only reads its inputs.
func Frame(s surface.Surface, w, h float32, committed []drawable.Drawable, preview drawable.Drawable) {
	s.ClearRect(0, 0, w, h)
	for _, d := range committed {
		d.Render(s)
	}
	if preview != nil {
		preview.Render(s)
	}
}
