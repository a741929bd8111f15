/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a panic into a report file and a rescue image of the
// drawing before the process exits.
package crash

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"sketchpad/internal/export"
	applog "sketchpad/internal/log"
	"sketchpad/internal/version"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// Snapshotter renders the current drawing; *sketch.Pad implements it.
type Snapshotter interface {
	Snapshot() *image.RGBA
}

// Recover captures a panic, logs an error with stacktrace, writes an error
// report into dir (the temp dir when empty) and attempts a rescue PNG of the
// drawing when src is non-nil.
//
// Usage: defer crash.Recover(dir, pad)
func Recover(dir string, src Snapshotter) {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		reportPath, err := writeReport(dir, r, stack)
		if err != nil {
			l.Error("write crash report failed", slog.Any("err", err))
		}
		if src != nil {
			if path, err := writeRescue(dir, src); err != nil {
				l.Error("rescue image failed", slog.Any("err", err))
			} else {
				l.Info("rescue image written", slog.String("path", path))
				_, _ = fmt.Fprintf(os.Stderr, "Your drawing was saved to: %s\n", path)
			}
		}

		if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
			l.Error("failed to write crash message to stderr", slog.Any("err", err))
		}
		if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
			l.Error("failed to write version info to stderr", slog.Any("err", err))
		}
		// Exit with a non-zero code to indicate failure in CLI context.
		exitFn(2)
	}
}

func resolveDir(dir string) string {
	if dir == "" {
		return os.TempDir()
	}
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

func writeReport(dir string, panicVal any, stack []byte) (string, error) {
	dir = resolveDir(dir)
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("crash-%s.log", stamp))

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "Sketchpad Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return path, err
	}
	return path, nil
}

// writeRescue exports the drawing as PNG. The state may be what caused the
// panic, so a second panic here is turned into an error.
func writeRescue(dir string, src Snapshotter) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("snapshot panicked: %v", r)
		}
	}()
	dir = resolveDir(dir)
	path = filepath.Join(dir, fmt.Sprintf("rescue-%s.png", time.Now().Format("20060102-150405")))
	img := src.Snapshot()
	if img == nil {
		return "", fmt.Errorf("nothing to rescue")
	}
	return path, export.WriteFile(path, img, export.FormatPNG)
}
