/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{
		"PATHTIP_FONT_SIZE", "PATHTIP_FONT_FAMILY", "PATHTIP_FONT_FILE", "PATHTIP_BG_COLOR", "PATHTIP_TEXT_COLOR",
		"PATHTIP_LOG_LEVEL", "PATHTIP_LOG_FORMAT", "PATHTIP_LOG_SOURCE", "PATHTIP_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	if !hasFlag(args, "--config") {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name || strings.HasPrefix(a, name+"=") {
			return true
		}
	}
	return false
}

const scenarioYAML = `
container: {x: 0, y: 0, width: 200, height: 100}
text: Revenue
target: [[10, 90], [100, 20], [190, 90]]
events:
  - {kind: enter, x: 50, y: 50}
  - {kind: move, x: 180, y: 90}
  - {kind: leave}
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestPlaceText(t *testing.T) {
	out, err := run(t, "place", "--x", "50", "--y", "50", "--container", "0,0,200,100", "--label", "40x10")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	for _, want := range []string{
		"rect      x=42 y=58 w=60 h=30",
		"absolute  x=42 y=58 w=60 h=30",
		"extent    x=42 y=48 w=60 h=40",
		"quadrant  right/bottom",
		"pointer   top edge: 49,48 72,58 64,58",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPlaceJSONPadded(t *testing.T) {
	out, err := run(t, "place", "--x", "180", "--y", "90", "--container", "0,0,200,100", "--label", "60x30", "--padded", "--format", "json")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	var res placeResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !res.Left || !res.Top || res.Rect.X != 128 || res.Rect.Y != 48 || res.Edge != "bottom" {
		t.Fatalf("unexpected placement: %+v", res)
	}
}

func TestPlaceOffsetContainer(t *testing.T) {
	out, err := run(t, "place", "--x", "150", "--y", "250", "--container", "100,200,200,100", "--label", "40x10", "--format", "json")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	var res placeResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if res.Rect.X != 42 || res.Rect.Y != 58 {
		t.Fatalf("rect must be container-relative: %+v", res.Rect)
	}
	if res.Absolute.X != 142 || res.Absolute.Y != 258 || res.Absolute.W != 60 {
		t.Fatalf("absolute = %+v", res.Absolute)
	}
}

func TestPlaceRequiresLabel(t *testing.T) {
	if _, err := run(t, "place", "--x", "1", "--y", "1"); err == nil {
		t.Fatalf("expected missing --label error")
	}
	if _, err := run(t, "place", "--label", "3y4"); err == nil {
		t.Fatalf("expected bad size error")
	}
}

func TestWrap(t *testing.T) {
	out, err := run(t, "wrap", "--max", "5", "hello world", "foo")
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if out != "hello\nworld\nfoo\n" {
		t.Fatalf("wrap output = %q", out)
	}
}

func TestReplayJSON(t *testing.T) {
	out, err := run(t, "replay", "--format", "json", writeScenario(t))
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	var frames []frameJSON
	if err := json.Unmarshal([]byte(out), &frames); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %d", len(frames))
	}
	if !frames[0].Visible || frames[2].Visible || frames[1].Event != "move" {
		t.Fatalf("unexpected frames: %+v", frames)
	}
	if len(frames[0].Lines) != 1 || frames[0].Lines[0] != "Revenue" {
		t.Fatalf("lines = %v", frames[0].Lines)
	}
}

func TestRenderSVG(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out", "tip.svg")
	if _, err := run(t, "render", "--frame", "0", "-o", dst, writeScenario(t)); err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "<svg") || !strings.Contains(string(b), `visibility="visible"`) {
		t.Fatalf("unexpected svg:\n%s", b)
	}
}

func TestRenderLogsOperation(t *testing.T) {
	t.Setenv("PATHTIP_LOG_LEVEL", "")
	t.Setenv("PATHTIP_LOG_FORMAT", "")
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	dst := filepath.Join(t.TempDir(), "tip.png")
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "config.yaml"), "render", "-o", dst, writeScenario(t)})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	log := errOut.String()
	if !strings.Contains(log, "rendered") || !strings.Contains(log, "component=cli") || !strings.Contains(log, "op=render") {
		t.Fatalf("render log missing operation tag:\n%s", log)
	}
}

func TestReplayFontFileErrors(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	body := "tooltip:\n  font_file: " + filepath.Join(t.TempDir(), "missing.ttf") + "\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := run(t, "--config", cfg, "replay", writeScenario(t))
	if err == nil || !strings.Contains(err.Error(), "tooltip.font_file") {
		t.Fatalf("expected font_file error, got %v", err)
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "tip.gif")
	if _, err := run(t, "render", "-o", dst, writeScenario(t)); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")
	if _, err := run(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := run(t, "--config", path, "config", "init"); err == nil {
		t.Fatalf("second init without --force should fail")
	}
	t.Setenv("PATHTIP_BG_COLOR", "navy")
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "config", "show"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config show: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "background_color: navy") || !strings.Contains(s, "# tooltip.background_color overridden by PATHTIP_BG_COLOR") {
		t.Fatalf("unexpected show output:\n%s", s)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(out, "pathtip ") {
		t.Fatalf("version output = %q", out)
	}
}

func TestSizeValue(t *testing.T) {
	var w, h float32
	v := newSizeValue(&w, &h)
	if err := v.Set("60X30.5"); err != nil || w != 60 || h != 30.5 {
		t.Fatalf("Set = %v (%v x %v)", err, w, h)
	}
	if v.String() != "60x30.5" {
		t.Fatalf("String = %q", v.String())
	}
	for _, bad := range []string{"60", "ax3", "3xb", "-1x2"} {
		if err := v.Set(bad); err == nil {
			t.Fatalf("Set(%q) should fail", bad)
		}
	}
}
