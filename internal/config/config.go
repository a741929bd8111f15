/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"sketchpad/internal/tools"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ExportConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	FileName string `yaml:"file_name"`
	Format   string `yaml:"format"` // "png" | "pdf"
	Preset   string `yaml:"preset"` // "web" | "print"; replaces size and format
}

type ToolsConfig struct {
	Default     string               `yaml:"default"`
	Markers     []tools.MarkerPreset `yaml:"markers"`
	Stickers    []string             `yaml:"stickers"`
	StickerSize float32              `yaml:"sticker_size"`
	Color       string               `yaml:"color"` // #rrggbb or #rrggbbaa
	Rotation    float32              `yaml:"rotation"`
}

type FontsConfig struct {
	// StickerTTF is an optional TTF/OTF used for sticker glyphs. The bundled
	// Go Regular face has no emoji, so the default stickers need one.
	StickerTTF string `yaml:"sticker_ttf"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Canvas        CanvasConfig  `yaml:"canvas"`
	Export        ExportConfig  `yaml:"export"`
	Tools         ToolsConfig   `yaml:"tools"`
	Fonts         FontsConfig   `yaml:"fonts"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	p := tools.DefaultPresets()
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{Width: 256, Height: 256},
		Export:        ExportConfig{Width: 1024, Height: 1024, FileName: "sketch", Format: "png"},
		Tools: ToolsConfig{
			Default:     tools.ThinMarker,
			Markers:     p.Markers,
			Stickers:    p.Stickers,
			StickerSize: 32,
			Color:       "#000000",
		},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvCanvasSize  = "SKP_CANVAS_SIZE" // "256" or "320x240"
	EnvExportSize  = "SKP_EXPORT_SIZE" // "1024" or "2048x1024"
	EnvExportName  = "SKP_EXPORT_NAME"
	EnvDefaultTool = "SKP_DEFAULT_TOOL"
	EnvStickerFont = "SKP_STICKER_FONT"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "SKP_LOG_LEVEL"
	EnvLogFormat = "SKP_LOG_FORMAT"
	EnvLogSource = "SKP_LOG_SOURCE"
	EnvLogFile   = "SKP_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Sketchpad")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Sketchpad")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "sketchpad")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path. A missing file yields the defaults;
// a malformed one is reported but the defaults are still returned.
func LoadFile(path string) (AppConfig, error) {
	cfg := Defaults()
	var perr error
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		} else {
			perr = fmt.Errorf("parse %s: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, perr
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

func SaveFile(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Canvas.Width > 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height > 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if src.Export.Width > 0 {
		dst.Export.Width = src.Export.Width
	}
	if src.Export.Height > 0 {
		dst.Export.Height = src.Export.Height
	}
	if strings.TrimSpace(src.Export.FileName) != "" {
		dst.Export.FileName = strings.TrimSpace(src.Export.FileName)
	}
	if strings.TrimSpace(src.Export.Format) != "" {
		dst.Export.Format = strings.ToLower(strings.TrimSpace(src.Export.Format))
	}
	if strings.TrimSpace(src.Export.Preset) != "" {
		dst.Export.Preset = strings.ToLower(strings.TrimSpace(src.Export.Preset))
	}
	// tools: a non-empty list replaces the built-in one
	if len(src.Tools.Markers) > 0 {
		dst.Tools.Markers = src.Tools.Markers
		// the built-in default may be gone; the first tool wins
		dst.Tools.Default = ""
	}
	if strings.TrimSpace(src.Tools.Default) != "" {
		dst.Tools.Default = strings.TrimSpace(src.Tools.Default)
	}
	if len(src.Tools.Stickers) > 0 {
		dst.Tools.Stickers = src.Tools.Stickers
	}
	if src.Tools.StickerSize > 0 {
		dst.Tools.StickerSize = src.Tools.StickerSize
	}
	if strings.TrimSpace(src.Tools.Color) != "" {
		dst.Tools.Color = strings.TrimSpace(src.Tools.Color)
	}
	dst.Tools.Rotation = src.Tools.Rotation
	if strings.TrimSpace(src.Fonts.StickerTTF) != "" {
		dst.Fonts.StickerTTF = strings.TrimSpace(src.Fonts.StickerTTF)
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvCanvasSize)); v != "" {
		if w, h, err := ParseSize(v); err == nil {
			cfg.Canvas.Width, cfg.Canvas.Height = w, h
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportSize)); v != "" {
		if w, h, err := ParseSize(v); err == nil {
			cfg.Export.Width, cfg.Export.Height = w, h
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportName)); v != "" {
		cfg.Export.FileName = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDefaultTool)); v != "" {
		cfg.Tools.Default = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStickerFont)); v != "" {
		cfg.Fonts.StickerTTF = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "canvas.width", "canvas.height":
		env = EnvCanvasSize
	case "export.width", "export.height":
		env = EnvExportSize
	case "export.file_name":
		env = EnvExportName
	case "tools.default":
		env = EnvDefaultTool
	case "fonts.sticker_ttf":
		env = EnvStickerFont
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}

// ParseSize accepts "N" (square) or "WxH".
func ParseSize(s string) (int, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	ws, hs, found := strings.Cut(s, "x")
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	if !found {
		return w, w, nil
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	return w, h, nil
}

// ParseColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Presets returns the tool presets to seed.
func (t ToolsConfig) Presets() tools.Presets {
	return tools.Presets{Markers: t.Markers, Stickers: t.Stickers}
}

// Style returns the initial color and rotation.
func (t ToolsConfig) Style() (tools.Style, error) {
	c, err := ParseColor(t.Color)
	if err != nil {
		return tools.Style{}, err
	}
	return tools.Style{Color: c, Rotation: t.Rotation}, nil
}
