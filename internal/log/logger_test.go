/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesJSONFileWithStaticAttrs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathtip.log")
	var console bytes.Buffer
	Init(Options{Level: "debug", Format: "json", File: path, Writer: &console})
	t.Cleanup(func() { _ = Close() })

	l := WithOperation(WithComponent("tooltip"), "place")
	l.Info("placed", slog.Float64("x", 42))
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var last string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			last = s
		}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", last, err)
	}
	want := map[string]any{"app": "pathtip", "component": "tooltip", "op": "place", "msg": "placed", "x": 42.0}
	for k, v := range want {
		if m[k] != v {
			t.Fatalf("%s = %v, want %v", k, m[k], v)
		}
	}
	if _, ok := m["ver"].(string); !ok {
		t.Fatalf("missing ver attr: %v", m)
	}
	if !strings.Contains(console.String(), `"msg":"placed"`) {
		t.Fatalf("console sink missed the record: %q", console.String())
	}
}

func TestSetLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Writer: &buf})
	L().Debug("hidden")
	SetLevel(slog.LevelDebug)
	L().Debug("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "DBG shown") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PATHTIP_LOG_LEVEL", "warn")
	t.Setenv("PATHTIP_LOG_FORMAT", "json")
	t.Setenv("PATHTIP_LOG_SOURCE", "TRUE")
	t.Setenv("PATHTIP_LOG_FILE", "")

	opts := FromEnv()
	if opts.Level != "warn" || opts.Format != "json" || !opts.AddSource || opts.File != "" {
		t.Fatalf("FromEnv mismatch: %+v", opts)
	}
	t.Setenv("PATHTIP_LOG_LEVEL", "  ")
	if got := FromEnv().Level; got != "info" {
		t.Fatalf("blank level should fall back to info, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug, "WARNING": slog.LevelWarn, "error": slog.LevelError, "bogus": slog.LevelInfo, "": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	h := newConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("info should be filtered at warn")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Fatalf("error should pass at warn")
	}

	l := slog.New(h).With(slog.String("k", "v")).WithGroup("grp")
	l.Error("boom", slog.Int("n", 42), slog.Float64("pi", 3.14), slog.String("s", "two words"), slog.Any("err", errors.New("bad")))

	out := buf.String()
	for _, want := range []string{" ERR boom", " k=v", " grp.n=42", " grp.pi=3.14", ` grp.s="two words"`, ` grp.err="bad"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "grp.k") {
		t.Fatalf("attrs added before the group must not be prefixed: %q", out)
	}
}

func TestConsoleHandlerSource(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newConsoleHandler(&buf, &slog.HandlerOptions{AddSource: true})).Info("here")
	if !strings.Contains(buf.String(), "src=log/logger_test.go:") {
		t.Fatalf("expected source location, got %q", buf.String())
	}
}
