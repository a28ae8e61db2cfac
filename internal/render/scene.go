/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render draws a tooltip state over its container as SVG, PNG or PDF.
package render

import (
	"pathtip/internal/tooltip"
	"pathtip/internal/vector"
)

// CornerRadius of the callout rectangle.
const CornerRadius = 5

// Scene is one frame: the container, the hovered target drawn underneath and
// the tooltip on top. Coordinates are container-relative.
type Scene struct {
	Width, Height float32
	Target        vector.Path
	TargetStroke  vector.Color
	State         tooltip.State
	Style         tooltip.Style
}

// NewScene sizes the frame after the container.
func NewScene(container vector.Rect, target vector.Path, st tooltip.State, style tooltip.Style) Scene {
	return Scene{
		Width:        container.W,
		Height:       container.H,
		Target:       target,
		TargetStroke: vector.Color{R: 0x46, G: 0x82, B: 0xb4, A: 0xff},
		State:        st,
		Style:        style,
	}
}

// frameStroke is the container outline color.
var frameStroke = vector.Color{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// frame is the container outline, inset by half its 1-unit stroke so the
// line stays inside the page.
func (s Scene) frame() vector.Rect { return vector.R(0, 0, s.Width, s.Height).Inset(0.5, 0.5) }

// tooltipShown reports whether the callout has geometry to draw. A visible
// state that was never placed has an empty rect.
func (s Scene) tooltipShown() bool { return s.State.Visible && !s.State.Rect.Empty() }

func (s Scene) background() vector.Color {
	if s.Style.Background == (vector.Color{}) {
		return vector.Black
	}
	return s.Style.Background
}

func (s Scene) textColor() vector.Color {
	if s.Style.Text == (vector.Color{}) {
		return vector.White
	}
	return s.Style.Text
}

func (s Scene) fontSize() float32 {
	if s.Style.FontSize <= 0 {
		return 12
	}
	return s.Style.FontSize
}

// segments flattens a path into line segments; Close joins back to the
// start of the current subpath.
func segments(p vector.Path) [][2]vector.Pt {
	var out [][2]vector.Pt
	var start, cur vector.Pt
	for _, c := range p.Cmds {
		switch c.Op {
		case vector.MoveTo:
			start, cur = c.Pt, c.Pt
		case vector.LineTo:
			out = append(out, [2]vector.Pt{cur, c.Pt})
			cur = c.Pt
		case vector.Close:
			if cur != start {
				out = append(out, [2]vector.Pt{cur, start})
			}
			cur = start
		}
	}
	return out
}
