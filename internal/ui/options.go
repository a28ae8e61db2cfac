/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package ui hosts a tooltip in a desktop window. The window needs the fyne
// build tag and cgo; other builds get a stub Run that explains how to enable it.
package ui

import "pathtip/internal/tooltip"

// Options configure the demo window.
type Options struct {
	Text    string
	Style   tooltip.Style
	Offsets tooltip.Offsets
	Padding float32
}

// sampleSeries is the demo line chart, as fractions of the surface height
// from the top, spread evenly across its width.
var sampleSeries = []float32{0.8, 0.55, 0.62, 0.3, 0.45, 0.18, 0.35, 0.25}
