/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package history keeps the drawing steps of a sketch on two stacks.
package history

import (
	"log/slog"

	"sketchpad/internal/drawable"
	applog "sketchpad/internal/log"
)

// Source creates the drawable for a new step, usually from the active tool.
type Source interface {
	NewDrawable() (drawable.Drawable, error)
}

// History is an undo/redo stack of drawables. The top of the committed stack
// is the live step that receives pointer moves while a drag is in progress.
// It is not safe for concurrent use.
type History struct {
	src       Source
	committed []drawable.Drawable
	undone    []drawable.Drawable
	log       *slog.Logger
}

func New(src Source) *History {
	return &History{src: src, log: applog.WithComponent("history")}
}

// BeginStep pushes a fresh drawable from the source and drops the redo stack.
// On error both stacks stay as they were.
func (h *History) BeginStep() (drawable.Drawable, error) {
	d, err := h.src.NewDrawable()
	if err != nil {
		return nil, err
	}
	h.undone = nil
	h.committed = append(h.committed, d)
	h.log.Debug("step begun", slog.Int("committed", len(h.committed)))
	return d, nil
}

// CurrentStep returns the top of the committed stack.
func (h *History) CurrentStep() (drawable.Drawable, bool) {
	if len(h.committed) == 0 {
		return nil, false
	}
	return h.committed[len(h.committed)-1], true
}

// Undo moves the newest committed step onto the redo stack.
func (h *History) Undo() bool {
	n := len(h.committed)
	if n == 0 {
		return false
	}
	d := h.committed[n-1]
	h.committed[n-1] = nil
	h.committed = h.committed[:n-1]
	h.undone = append(h.undone, d)
	h.log.Debug("undo", slog.Int("committed", len(h.committed)), slog.Int("undone", len(h.undone)))
	return true
}

// Redo moves the most recently undone step back onto the committed stack.
func (h *History) Redo() bool {
	n := len(h.undone)
	if n == 0 {
		return false
	}
	d := h.undone[n-1]
	h.undone[n-1] = nil
	h.undone = h.undone[:n-1]
	h.committed = append(h.committed, d)
	h.log.Debug("redo", slog.Int("committed", len(h.committed)), slog.Int("undone", len(h.undone)))
	return true
}

// Clear empties both stacks. It cannot be undone.
func (h *History) Clear() {
	h.committed = nil
	h.undone = nil
	h.log.Debug("cleared")
}

// Committed returns the committed steps, oldest first.
func (h *History) Committed() []drawable.Drawable {
	return append([]drawable.Drawable(nil), h.committed...)
}

// Undone returns the redo stack, oldest first.
func (h *History) Undone() []drawable.Drawable {
	return append([]drawable.Drawable(nil), h.undone...)
}

// Stats returns the stack depths for diagnostics.
func (h *History) Stats() (committed, undone int) { return len(h.committed), len(h.undone) }

func (h *History) CanUndo() bool { return len(h.committed) > 0 }
func (h *History) CanRedo() bool { return len(h.undone) > 0 }
