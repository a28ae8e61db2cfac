/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package tooltip places a single floating label next to the pointer inside a
// bounded container, shapes the small pointer that ties it to the cursor, and
// keeps the visible/hidden state in response to hover events.
package tooltip

import "pathtip/internal/vector"

// Quadrant records which half of the container the cursor is in on each axis.
// Left means the cursor is right of the vertical midline, so the callout opens
// to its left; Top means the cursor is below the horizontal midline, so the
// callout opens above it. Exactly on a midline counts as neither.
type Quadrant struct {
	Left bool
	Top  bool
}

// Offsets separate the callout from the cursor so it does not cover it.
type Offsets struct {
	Horizontal float32 // gap on the x axis, both directions
	Below      float32 // gap when the callout opens below the cursor
	Above      float32 // gap when the callout opens above the cursor
}

// DefaultOffsets returns the stock 8/8/12 gaps.
func DefaultOffsets() Offsets { return Offsets{Horizontal: 8, Below: 8, Above: 12} }

// DefaultPadding is added to both dimensions of the measured text block.
const DefaultPadding = 20

// Placement is a callout rectangle in container coordinates plus the quadrant used.
type Placement struct {
	Rect     vector.Rect
	Quadrant Quadrant
}

// QuadrantFor derives the quadrant from a cursor given in the same space as bounds.
func QuadrantFor(cursor vector.Pt, bounds vector.Rect) Quadrant {
	mid := bounds.Center()
	return Quadrant{Left: cursor.X > mid.X, Top: cursor.Y > mid.Y}
}

// PadLabel grows a measured text size by the fixed padding on each axis.
func PadLabel(measured vector.Size, pad float32) vector.Size { return measured.Grow(pad, pad) }

// Place computes the callout rectangle for a label of the given (padded) size.
// cursor and bounds share a coordinate space; the result is relative to the
// container origin. The callout is not clipped to the container.
func Place(cursor vector.Pt, bounds vector.Rect, label vector.Size, off Offsets) Placement {
	q := QuadrantFor(cursor, bounds)
	rel := cursor.Sub(bounds.Min())

	x := rel.X - off.Horizontal
	if q.Left {
		x = rel.X + off.Horizontal - label.W
	}
	y := rel.Y + off.Below
	if q.Top {
		y = rel.Y - off.Above - label.H
	}
	return Placement{Rect: vector.R(x, y, label.W, label.H), Quadrant: q}
}
