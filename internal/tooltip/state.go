/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tooltip

import "pathtip/internal/vector"

// Line is one wrapped line with the baseline position it should be drawn at.
type Line struct {
	Text string
	X, Y float32
}

// State is everything a renderer needs for one frame. The controller builds a
// fresh value on every update; renderers must treat it as read-only.
type State struct {
	Visible   bool
	Rect      vector.Rect
	Quadrant  Quadrant
	Indicator Indicator
	Lines     []Line
}

// Texts returns the line strings in display order.
func (s State) Texts() []string {
	out := make([]string, len(s.Lines))
	for i, ln := range s.Lines {
		out[i] = ln.Text
	}
	return out
}

// layoutLines positions wrapped lines inside rect.
func layoutLines(rect vector.Rect, texts []string, st Style) []Line {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{
			Text: t,
			X:    rect.X + TextInset,
			Y:    rect.Y + st.BaselineOffset() + float32(i)*st.LineHeight(),
		}
	}
	return lines
}
