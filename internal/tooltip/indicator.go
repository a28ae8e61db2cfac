/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tooltip

import "pathtip/internal/vector"

// Indicator is the small triangle tying the callout to the cursor. BaseA and
// BaseB sit on the callout edge named by Edge; Apex points away from it.
type Indicator struct {
	Apex  vector.Pt
	BaseA vector.Pt
	BaseB vector.Pt
	Edge  string // "top" or "bottom"
}

// Points returns the vertices in drawing order.
func (in Indicator) Points() []vector.Pt { return []vector.Pt{in.Apex, in.BaseA, in.BaseB} }

// Path returns the closed triangle.
func (in Indicator) Path() vector.Path { return vector.Polygon(in.Points()...) }

// Extent is the area covered by callout and the triangle together.
func (in Indicator) Extent(callout vector.Rect) vector.Rect {
	return callout.Union(in.Path().Bounds())
}

// indicatorTemplate holds vertex offsets from the callout corner nearest the cursor.
type indicatorTemplate struct {
	apex, baseA, baseB vector.Pt
}

// Offsets per quadrant. The base half-widths differ slightly between
// quadrants; they are kept as drawn rather than normalized.
var indicatorTemplates = map[Quadrant]indicatorTemplate{
	{Left: false, Top: false}: {apex: vector.Pt{X: 7, Y: -10}, baseA: vector.Pt{X: 30}, baseB: vector.Pt{X: 22}},
	{Left: true, Top: false}:  {apex: vector.Pt{X: -8, Y: -10}, baseA: vector.Pt{X: -25}, baseB: vector.Pt{X: -15}},
	{Left: false, Top: true}:  {apex: vector.Pt{X: 7, Y: 10}, baseA: vector.Pt{X: 15}, baseB: vector.Pt{X: 7}},
	{Left: true, Top: true}:   {apex: vector.Pt{X: -7, Y: 10}, baseA: vector.Pt{X: -15}, baseB: vector.Pt{X: -7}},
}

// Shape selects the indicator for the quadrant and pins it to the callout.
// A callout opening below the cursor carries it on its top edge, one opening
// above carries it on its bottom edge; horizontally it hugs the corner on the
// cursor's side.
func Shape(rect vector.Rect, q Quadrant) Indicator {
	corner := vector.Pt{X: rect.X, Y: rect.Y}
	edge := "top"
	if q.Left {
		corner.X += rect.W
	}
	if q.Top {
		corner.Y += rect.H
		edge = "bottom"
	}
	t := indicatorTemplates[q]
	return Indicator{
		Apex:  corner.Add(t.apex),
		BaseA: corner.Add(t.baseA),
		BaseB: corner.Add(t.baseB),
		Edge:  edge,
	}
}
