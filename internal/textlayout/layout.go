/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textlayout

// Text measurement for hosts that have no rendering surface to ask, such as the
// CLI, the scenario runner and the raster/vector sinks. Measurement sits behind
// a Provider so tests stay deterministic with the 7x13 bitmap face.

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"pathtip/internal/vector"
)

// FontSpec describes a requested font.
type FontSpec struct {
	Family string // logical family name
	SizePt float32
	Weight int // 100..900
	Italic bool
}

// Metrics provides font metrics in pixels for the resolved face.
type Metrics struct {
	Ascent, Descent, LineGap float32
}

// Height is the distance between two baselines with no extra leading.
func (m Metrics) Height() float32 { return m.Ascent + m.Descent + m.LineGap }

// Provider maps FontSpec to a concrete font.Face.
type Provider interface {
	Resolve(FontSpec) (font.Face, Metrics)
}

// BasicProvider uses x/image/basicfont Face7x13 regardless of the requested spec.
type BasicProvider struct{}

func (BasicProvider) Resolve(FontSpec) (font.Face, Metrics) {
	f := basicfont.Face7x13
	return f, metricsOf(f)
}

func metricsOf(f font.Face) Metrics {
	m := f.Metrics()
	return Metrics{
		Ascent:  float32(m.Ascent.Round()),
		Descent: float32(m.Descent.Round()),
		LineGap: float32(m.Height.Round() - m.Ascent.Round() - m.Descent.Round()),
	}
}

// Advance returns the horizontal advance of s in pixels.
func Advance(face font.Face, s string) float32 {
	return float32(font.MeasureString(face, s).Ceil())
}

// MeasureLines returns the bounding size of a stacked block of lines: the widest
// advance by (n-1) line steps plus one line of ascent and descent. When
// lineHeight is not positive the face's own height is used as the step.
func MeasureLines(p Provider, spec FontSpec, lines []string, lineHeight float32) vector.Size {
	if p == nil {
		p = BasicProvider{}
	}
	if len(lines) == 0 {
		return vector.Size{}
	}
	face, met := p.Resolve(spec)
	if lineHeight <= 0 {
		lineHeight = met.Height()
	}
	var w float32
	for _, ln := range lines {
		w = max(w, Advance(face, ln))
	}
	h := float32(len(lines)-1)*lineHeight + met.Ascent + met.Descent
	return vector.Size{W: w, H: h}
}
