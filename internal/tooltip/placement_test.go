/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tooltip

import (
	"testing"

	"pathtip/internal/vector"
)

func TestQuadrantFor_CenterTiesToRightBottom(t *testing.T) {
	bounds := vector.R(0, 0, 200, 100)
	q := QuadrantFor(vector.Pt{X: 100, Y: 50}, bounds)
	if q.Left || q.Top {
		t.Fatalf("center must resolve to right/bottom, got %+v", q)
	}
	// same tie when the container is offset inside its ancestor
	q = QuadrantFor(vector.Pt{X: 130, Y: 90}, vector.R(30, 40, 200, 100))
	if q.Left || q.Top {
		t.Fatalf("offset center must resolve to right/bottom, got %+v", q)
	}
}

func TestQuadrantFor_AllFour(t *testing.T) {
	bounds := vector.R(0, 0, 200, 100)
	cases := []struct {
		p    vector.Pt
		want Quadrant
	}{
		{vector.Pt{X: 20, Y: 20}, Quadrant{}},
		{vector.Pt{X: 180, Y: 20}, Quadrant{Left: true}},
		{vector.Pt{X: 20, Y: 80}, Quadrant{Top: true}},
		{vector.Pt{X: 180, Y: 80}, Quadrant{Left: true, Top: true}},
		{vector.Pt{X: 100.01, Y: 50.01}, Quadrant{Left: true, Top: true}},
	}
	for _, tc := range cases {
		if got := QuadrantFor(tc.p, bounds); got != tc.want {
			t.Fatalf("QuadrantFor(%+v) = %+v, want %+v", tc.p, got, tc.want)
		}
	}
}

func TestPlace_OffsetInvariants(t *testing.T) {
	bounds := vector.R(0, 0, 400, 300)
	label := vector.Size{W: 80, H: 50}
	off := DefaultOffsets()
	cases := []vector.Pt{{X: 40, Y: 30}, {X: 350, Y: 30}, {X: 40, Y: 280}, {X: 350, Y: 280}}
	for _, cur := range cases {
		pl := Place(cur, bounds, label, off)
		if pl.Rect.W != label.W || pl.Rect.H != label.H {
			t.Fatalf("size changed: %+v", pl.Rect)
		}
		if pl.Quadrant.Left {
			if pl.Rect.X != cur.X+off.Horizontal-pl.Rect.W {
				t.Fatalf("left x = %v for cursor %+v", pl.Rect.X, cur)
			}
		} else if pl.Rect.X != cur.X-off.Horizontal {
			t.Fatalf("right x = %v for cursor %+v", pl.Rect.X, cur)
		}
		if pl.Quadrant.Top {
			if pl.Rect.Y != cur.Y-off.Above-pl.Rect.H {
				t.Fatalf("top y = %v for cursor %+v", pl.Rect.Y, cur)
			}
		} else if pl.Rect.Y != cur.Y+off.Below {
			t.Fatalf("bottom y = %v for cursor %+v", pl.Rect.Y, cur)
		}
	}
}

func TestPlace_EndToEndScenario(t *testing.T) {
	pl := Place(vector.Pt{X: 50, Y: 50}, vector.R(0, 0, 200, 100), vector.Size{W: 60, H: 30}, DefaultOffsets())
	if pl.Quadrant.Left || pl.Quadrant.Top {
		t.Fatalf("expected right/bottom, got %+v", pl.Quadrant)
	}
	if pl.Rect.X != 42 || pl.Rect.Y != 58 {
		t.Fatalf("expected (42,58), got (%v,%v)", pl.Rect.X, pl.Rect.Y)
	}
}

func TestPlace_SubtractsContainerOrigin(t *testing.T) {
	// cursor in page space, container offset by (100, 200)
	pl := Place(vector.Pt{X: 150, Y: 250}, vector.R(100, 200, 200, 100), vector.Size{W: 60, H: 30}, DefaultOffsets())
	if pl.Rect.X != 42 || pl.Rect.Y != 58 {
		t.Fatalf("expected container-relative (42,58), got (%v,%v)", pl.Rect.X, pl.Rect.Y)
	}
}

func TestPlace_NotClipped(t *testing.T) {
	pl := Place(vector.Pt{X: 195, Y: 95}, vector.R(0, 0, 200, 100), vector.Size{W: 300, H: 200}, DefaultOffsets())
	if pl.Rect.X >= 0 || pl.Rect.Y >= 0 {
		t.Fatalf("expected callout to extend past the container origin, got %+v", pl.Rect)
	}
}

func TestPadLabel(t *testing.T) {
	got := PadLabel(vector.Size{W: 40, H: 10}, DefaultPadding)
	if got.W != 60 || got.H != 30 {
		t.Fatalf("PadLabel = %+v", got)
	}
}
