/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config loads the user configuration: YAML on disk, validated
// against an embedded JSON schema, with environment variables as read-only
// overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type TooltipConfig struct {
	MinWidth        float32       `yaml:"min_width"`
	FontSize        float32       `yaml:"font_size"`
	FontFamily      string        `yaml:"font_family"`
	FontFile        string        `yaml:"font_file"` // TTF/OTF registered under the first font_family name
	BackgroundColor string        `yaml:"background_color"`
	TextColor       string        `yaml:"text_color"`
	Padding         float32       `yaml:"padding"`
	Offsets         OffsetsConfig `yaml:"offsets"`
}

type OffsetsConfig struct {
	Horizontal float32 `yaml:"horizontal"`
	Below      float32 `yaml:"below"`
	Above      float32 `yaml:"above"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// AppConfig is the whole configuration document.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Tooltip       TooltipConfig `yaml:"tooltip"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Tooltip: TooltipConfig{
			FontSize:        12,
			FontFamily:      "sans-serif",
			BackgroundColor: "black",
			TextColor:       "white",
			Padding:         20,
			Offsets:         OffsetsConfig{Horizontal: 8, Below: 8, Above: 12},
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvFontSize   = "PATHTIP_FONT_SIZE"
	EnvFontFamily = "PATHTIP_FONT_FAMILY"
	EnvFontFile   = "PATHTIP_FONT_FILE"
	EnvBgColor    = "PATHTIP_BG_COLOR"
	EnvTextColor  = "PATHTIP_TEXT_COLOR"
	EnvLogLevel   = "PATHTIP_LOG_LEVEL"
	EnvLogFormat  = "PATHTIP_LOG_FORMAT"
	EnvLogSource  = "PATHTIP_LOG_SOURCE"
	EnvLogFile    = "PATHTIP_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "pathtip", "config.yaml"), nil
}

// Load reads the per-user config file.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	return LoadFile(path)
}

// LoadFile reads path, validates it, merges it over Defaults and applies env
// overrides. A missing file is not an error.
func LoadFile(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := Validate(path, data); err != nil {
			return cfg, err
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fc)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes cfg as YAML; an empty path means ConfigPath.
func Save(cfg AppConfig, path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// fileConfig mirrors AppConfig with pointers for numbers, so an explicit 0
// in the file is told apart from an absent key.
type fileConfig struct {
	ConfigVersion int `yaml:"config_version"`
	Tooltip       struct {
		MinWidth        *float32 `yaml:"min_width"`
		FontSize        *float32 `yaml:"font_size"`
		FontFamily      string   `yaml:"font_family"`
		FontFile        string   `yaml:"font_file"`
		BackgroundColor string   `yaml:"background_color"`
		TextColor       string   `yaml:"text_color"`
		Padding         *float32 `yaml:"padding"`
		Offsets         struct {
			Horizontal *float32 `yaml:"horizontal"`
			Below      *float32 `yaml:"below"`
			Above      *float32 `yaml:"above"`
		} `yaml:"offsets"`
	} `yaml:"tooltip"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Source *bool  `yaml:"source"`
		File   string `yaml:"file"`
	} `yaml:"logging"`
}

func mergeInto(dst *AppConfig, src *fileConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	t := &src.Tooltip
	setF32(&dst.Tooltip.MinWidth, t.MinWidth)
	setF32(&dst.Tooltip.FontSize, t.FontSize)
	setF32(&dst.Tooltip.Padding, t.Padding)
	setF32(&dst.Tooltip.Offsets.Horizontal, t.Offsets.Horizontal)
	setF32(&dst.Tooltip.Offsets.Below, t.Offsets.Below)
	setF32(&dst.Tooltip.Offsets.Above, t.Offsets.Above)
	setStr(&dst.Tooltip.FontFamily, t.FontFamily)
	setStr(&dst.Tooltip.FontFile, t.FontFile)
	setStr(&dst.Tooltip.BackgroundColor, t.BackgroundColor)
	setStr(&dst.Tooltip.TextColor, t.TextColor)

	l := &src.Logging
	setStr(&dst.Logging.Level, strings.ToLower(l.Level))
	setStr(&dst.Logging.Format, strings.ToLower(l.Format))
	setStr(&dst.Logging.File, l.File)
	if l.Source != nil {
		dst.Logging.Source = *l.Source
	}
}

func setF32(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}

func setStr(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvFontSize)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			cfg.Tooltip.FontSize = float32(f)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontFamily)); v != "" {
		cfg.Tooltip.FontFamily = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontFile)); v != "" {
		cfg.Tooltip.FontFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBgColor)); v != "" {
		cfg.Tooltip.BackgroundColor = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTextColor)); v != "" {
		cfg.Tooltip.TextColor = v
	}
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

var envKeys = map[string]string{
	"tooltip.font_size":        EnvFontSize,
	"tooltip.font_family":      EnvFontFamily,
	"tooltip.font_file":        EnvFontFile,
	"tooltip.background_color": EnvBgColor,
	"tooltip.text_color":       EnvTextColor,
	"logging.level":            EnvLogLevel,
	"logging.format":           EnvLogFormat,
	"logging.source":           EnvLogSource,
	"logging.file":             EnvLogFile,
}

// EnvOverrideFor returns the env var name if the dotted key is currently
// overridden by the environment.
func EnvOverrideFor(key string) (string, bool) {
	name, ok := envKeys[key]
	if !ok || strings.TrimSpace(os.Getenv(name)) == "" {
		return "", false
	}
	return name, true
}
