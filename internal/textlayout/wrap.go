/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textlayout

// DefaultLineBudget is the character budget at the reference font size.
const DefaultLineBudget = 35

// referenceFontSize is the size at which DefaultLineBudget applies.
const referenceFontSize = 11

// LineBudget derives the per-line character budget from a font size: each point
// above the reference size costs one character. The result is never below 1.
func LineBudget(fontSize float32) int {
	n := DefaultLineBudget - int(fontSize-referenceFontSize)
	if n < 1 {
		return 1
	}
	return n
}

// Wrap breaks text into lines of at most maxLineChars runes using a greedy,
// space-delimited strategy. The space a line breaks on is consumed. When no
// space exists within the budget the line is cut hard at maxLineChars.
// Empty text yields a single empty line; a break never produces a trailing
// empty line.
func Wrap(text string, maxLineChars int) []string {
	if maxLineChars < 1 {
		maxLineChars = 1
	}
	rest := []rune(text)
	if len(rest) <= maxLineChars {
		return []string{text}
	}
	lines := make([]string, 0, len(rest)/maxLineChars+1)
	for len(rest) > maxLineChars {
		cut, skip := breakPoint(rest, maxLineChars), 1
		if cut < 0 {
			cut, skip = maxLineChars, 0
		}
		lines = append(lines, string(rest[:cut]))
		rest = rest[cut+skip:]
	}
	// a trailing space consumed by the last break leaves nothing to emit
	if len(rest) == 0 {
		return lines
	}
	return append(lines, string(rest))
}

// breakPoint returns the index of the last space in s[0..limit] (inclusive), or -1.
func breakPoint(s []rune, limit int) int {
	last := -1
	for i := 0; i <= limit && i < len(s); i++ {
		if s[i] == ' ' {
			last = i
		}
	}
	return last
}
