/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pathtip/internal/tooltip"
	"pathtip/internal/vector"
)

const sample = `
container: {x: 100, y: 200, width: 200, height: 100}
text: Revenue
style: {background_color: "#333", min_width: 0}
target: [[10, 90], [100, 20], [190, 90]]
events:
  - {kind: mouseover, x: 150, y: 250}
  - {kind: move, x: 280, y: 290}
  - {kind: leave}
  - {kind: move, x: 120, y: 210}
  - {kind: enter, x: 150, y: 250, text: "Revenue, Q3"}
`

func fixed(w, h float32) tooltip.LabelMeasurer {
	return tooltip.MeasureFunc(func([]string, tooltip.Style) (vector.Size, bool) { return vector.Size{W: w, H: h}, true })
}

func TestParseAndReplay(t *testing.T) {
	sc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	frames, err := sc.Replay(Options{Measurer: fixed(40, 10)})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(frames) != 5 {
		t.Fatalf("frames = %d", len(frames))
	}

	f0 := frames[0].State
	if !f0.Visible || f0.Rect != vector.R(42, 58, 60, 30) {
		t.Fatalf("frame 0 = %+v", f0)
	}
	f1 := frames[1].State
	if !f1.Quadrant.Left || !f1.Quadrant.Top {
		t.Fatalf("frame 1 quadrant = %+v", f1.Quadrant)
	}
	if frames[2].State.Visible {
		t.Fatalf("frame 2 should be hidden")
	}
	if frames[3].State.Visible || frames[3].State.Rect != f1.Rect {
		t.Fatalf("move while hidden changed frame 3: %+v", frames[3].State)
	}
	if got := frames[4].State.Texts(); len(got) != 1 || got[0] != "Revenue, Q3" {
		t.Fatalf("frame 4 texts = %v", got)
	}
}

func TestReplayAppliesStyle(t *testing.T) {
	sc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	st, err := sc.ApplyStyle(tooltip.DefaultStyle())
	if err != nil {
		t.Fatalf("ApplyStyle: %v", err)
	}
	if st.Background != (vector.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff}) || st.Text != vector.White {
		t.Fatalf("style = %+v", st)
	}
	sc.Style.TextColor = "not-a-color"
	if _, err := sc.Replay(Options{Measurer: fixed(1, 1)}); err == nil {
		t.Fatalf("expected style error")
	}
}

func TestReplayWithGoFonts(t *testing.T) {
	sc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	frames, err := sc.Replay(Options{})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	r := frames[0].State.Rect
	if r.W <= tooltip.DefaultPadding || r.H <= tooltip.DefaultPadding {
		t.Fatalf("expected measured label, got %+v", r)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	_, err := Parse([]byte(`
container: {width: 0, height: 10}
events:
  - {kind: click}
  - {kind: enter}
  - {kind: hover}
`))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var e Error
	if !errors.As(err, &e) {
		t.Fatalf("expected scenario.Error, got %T", err)
	}
	msg := err.Error()
	for _, want := range []string{"positive size", "event 0:", "event 2:"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("missing %q in %q", want, msg)
		}
	}
	if strings.Contains(msg, "event 1:") {
		t.Fatalf("valid event reported: %q", msg)
	}
}

func TestLoadAndTargetPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := sc.Bounds(); b != vector.R(100, 200, 200, 100) {
		t.Fatalf("bounds = %+v", b)
	}
	if got := sc.TargetPath().SVGData(); got != "M10,90 L100,20 L190,90" {
		t.Fatalf("target = %q", got)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
