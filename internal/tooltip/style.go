/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tooltip

import (
	"pathtip/internal/textlayout"
	"pathtip/internal/vector"
)

// Style carries the presentation inputs. The engine only reads FontSize,
// FontFamily and MinWidth; the paints are passed through to renderers.
type Style struct {
	MinWidth   float32
	FontSize   float32
	FontFamily string
	Background vector.Color
	Text       vector.Color
}

// DefaultStyle returns 12px sans-serif, white on black.
func DefaultStyle() Style {
	return Style{FontSize: 12, FontFamily: textlayout.SansSerif, Background: vector.Black, Text: vector.White}
}

// withDefaults fills zero-valued fields.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.FontSize <= 0 {
		s.FontSize = d.FontSize
	}
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	if s.Background == (vector.Color{}) {
		s.Background = d.Background
	}
	if s.Text == (vector.Color{}) {
		s.Text = d.Text
	}
	return s
}

// Font returns the spec measurers should resolve.
func (s Style) Font() textlayout.FontSpec {
	return textlayout.FontSpec{Family: s.FontFamily, SizePt: s.FontSize, Weight: 400}
}

// LineBudget is the wrap budget in characters for this font size.
func (s Style) LineBudget() int { return textlayout.LineBudget(s.FontSize) }

// TextInset is the distance from the callout's left edge to each line's start.
const TextInset = 10

// BaselineOffset is the distance from the callout's top to the first baseline.
func (s Style) BaselineOffset() float32 { return s.FontSize + 9 }

// LineHeight is the distance between consecutive baselines.
func (s Style) LineHeight() float32 { return s.FontSize + 8 }
