/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package replay loads scripted input sessions and plays them through a Pad
// the way pointer and toolbar events would.
package replay

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScript = errors.New("invalid replay script")

//go:embed schema.json
var schemaJSON []byte

// Step is one input event. Exactly one field is set.
type Step struct {
	Tool     string      `yaml:"tool,omitempty"`
	Sticker  *string     `yaml:"sticker,omitempty"`
	Color    string      `yaml:"color,omitempty"`
	Rotation *float32    `yaml:"rotation,omitempty"`
	Down     []float32   `yaml:"down,omitempty"`
	Drag     [][]float32 `yaml:"drag,omitempty"`
	Hover    []float32   `yaml:"hover,omitempty"`
	Up       []float32   `yaml:"up,omitempty"`
	Leave    bool        `yaml:"leave,omitempty"`
	Undo     int         `yaml:"undo,omitempty"`
	Redo     int         `yaml:"redo,omitempty"`
	Clear    bool        `yaml:"clear,omitempty"`
	Export   string      `yaml:"export,omitempty"`
	Preset   string      `yaml:"preset,omitempty"`
}

// Script is a named list of steps.
type Script struct {
	Version int    `yaml:"version"`
	Name    string `yaml:"name"`
	Steps   []Step `yaml:"steps"`
}

// Parse validates data against the script schema and decodes it.
func Parse(data []byte) (*Script, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks a decoded YAML document against the embedded schema.
func Validate(doc any) error {
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidScript)
	}
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidScript, strings.Join(msgs, "; "))
	}
	return nil
}
