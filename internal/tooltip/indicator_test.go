/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tooltip

import (
	"math"
	"testing"

	"pathtip/internal/vector"
)

func almostEq(a, b, eps float32) bool { return float32(math.Abs(float64(a-b))) <= eps }

func TestShape_BaseOnFacingEdge(t *testing.T) {
	rect := vector.R(42, 58, 80, 50)
	for _, q := range []Quadrant{{}, {Left: true}, {Top: true}, {Left: true, Top: true}} {
		in := Shape(rect, q)
		edgeY := rect.Y
		wantEdge := "top"
		if q.Top {
			edgeY = rect.Y + rect.H
			wantEdge = "bottom"
		}
		if in.Edge != wantEdge {
			t.Fatalf("%+v: edge = %q, want %q", q, in.Edge, wantEdge)
		}
		for _, b := range []vector.Pt{in.BaseA, in.BaseB} {
			if !almostEq(b.Y, edgeY, 1e-4) {
				t.Fatalf("%+v: base %+v not on edge y=%v", q, b, edgeY)
			}
			if !rect.OnBoundary(b, 1e-4) {
				t.Fatalf("%+v: base %+v not on callout boundary", q, b)
			}
		}
		// the apex sits outside the callout, on the cursor's side
		if rect.Contains(in.Apex) {
			t.Fatalf("%+v: apex %+v inside callout", q, in.Apex)
		}
		if q.Top && in.Apex.Y <= edgeY || !q.Top && in.Apex.Y >= edgeY {
			t.Fatalf("%+v: apex %+v points the wrong way", q, in.Apex)
		}
	}
}

func TestShape_HugsCursorCorner(t *testing.T) {
	rect := vector.R(0, 0, 100, 40)
	right := Shape(rect, Quadrant{})
	left := Shape(rect, Quadrant{Left: true})
	if !(right.Apex.X < rect.W/2) {
		t.Fatalf("right-opening callout should carry the pointer near its left corner: %+v", right)
	}
	if !(left.Apex.X > rect.W/2) {
		t.Fatalf("left-opening callout should carry the pointer near its right corner: %+v", left)
	}
}

func TestShape_Table(t *testing.T) {
	rect := vector.R(42, 58, 80, 50)
	cases := []struct {
		q    Quadrant
		want [3]vector.Pt
	}{
		{Quadrant{}, [3]vector.Pt{{X: 49, Y: 48}, {X: 72, Y: 58}, {X: 64, Y: 58}}},
		{Quadrant{Left: true}, [3]vector.Pt{{X: 114, Y: 48}, {X: 97, Y: 58}, {X: 107, Y: 58}}},
		{Quadrant{Top: true}, [3]vector.Pt{{X: 49, Y: 118}, {X: 57, Y: 108}, {X: 49, Y: 108}}},
		{Quadrant{Left: true, Top: true}, [3]vector.Pt{{X: 115, Y: 118}, {X: 107, Y: 108}, {X: 115, Y: 108}}},
	}
	for _, tc := range cases {
		got := Shape(rect, tc.q).Points()
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%+v: vertex %d = %+v, want %+v", tc.q, i, got[i], tc.want[i])
			}
		}
	}
}

func TestIndicatorPathClosed(t *testing.T) {
	p := Shape(vector.R(0, 0, 50, 30), Quadrant{}).Path()
	if !p.Closed() || len(p.Vertices()) != 3 {
		t.Fatalf("expected closed triangle, got %+v", p.Cmds)
	}
}

func TestIndicatorExtent(t *testing.T) {
	rect := vector.R(42, 58, 60, 30)
	in := Shape(rect, Quadrant{})
	if got := in.Extent(rect); got != vector.R(42, 48, 60, 40) {
		t.Fatalf("below-right extent = %+v", got)
	}
	rect = vector.R(128, 48, 60, 30)
	in = Shape(rect, Quadrant{Left: true, Top: true})
	if got := in.Extent(rect); got != vector.R(128, 48, 60, 40) {
		t.Fatalf("above-left extent = %+v", got)
	}
}
