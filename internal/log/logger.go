/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package log configures the process-wide slog logger: a compact console
// handler or JSON on stderr, plus an optional rotating JSON file.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"

	"pathtip/internal/version"
)

// Options controls logger initialization. FromEnv reads them from
//   - PATHTIP_LOG_LEVEL=debug|info|warn|error
//   - PATHTIP_LOG_FORMAT=console|json
//   - PATHTIP_LOG_SOURCE=true|false
//   - PATHTIP_LOG_FILE=<path> (rotated JSON file in addition to the console)
type Options struct {
	Level     string
	Format    string // "console" or "json"
	AddSource bool
	File      string
	// Writer replaces stderr as the console sink; nil means os.Stderr.
	Writer io.Writer
}

var (
	mu      sync.RWMutex
	current *slog.Logger
	file    *lj.Logger
)

var level = new(slog.LevelVar)

// L returns the application logger, initializing it from the environment on first use.
func L() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Init replaces the application logger and slog.Default. A previously opened
// log file is closed.
func Init(opts Options) {
	level.Set(ParseLevel(opts.Level))
	hopts := &slog.HandlerOptions{Level: level, AddSource: opts.AddSource}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(w, hopts)
	} else {
		console = newConsoleHandler(w, hopts)
	}

	h := console
	var rotated *lj.Logger
	if path := strings.TrimSpace(opts.File); path != "" {
		rotated = &lj.Logger{Filename: path, MaxSize: 5, MaxBackups: 2, MaxAge: 14}
		h = fanout(console, slog.NewJSONHandler(rotated, hopts))
	}

	logger := slog.New(h).With(
		slog.String("app", "pathtip"),
		slog.String("ver", version.Version),
	)

	mu.Lock()
	prev := file
	current, file = logger, rotated
	mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	slog.SetDefault(logger)
}

// SetLevel changes the level of the active logger without rebuilding it.
func SetLevel(l slog.Level) { level.Set(l) }

// Close flushes and closes the rotating file, if any.
func Close() error {
	mu.Lock()
	f := file
	file = nil
	mu.Unlock()
	if f == nil {
		return nil
	}
	return f.Close()
}

// FromEnv builds Options from PATHTIP_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:     getenv("PATHTIP_LOG_LEVEL", "info"),
		Format:    getenv("PATHTIP_LOG_FORMAT", "console"),
		AddSource: strings.EqualFold(getenv("PATHTIP_LOG_SOURCE", "false"), "true"),
		File:      os.Getenv("PATHTIP_LOG_FILE"),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// WithComponent returns a logger tagged with component=name.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation tags l with op=name.
func WithOperation(l *slog.Logger, name string) *slog.Logger { return l.With(slog.String("op", name)) }

// ParseLevel maps a level name to slog.Level; unknown names give Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
