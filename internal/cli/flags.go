/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"pathtip/internal/vector"
)

// sizeValue parses "WxH" into two float32 targets.
type sizeValue struct{ w, h *float32 }

func newSizeValue(w, h *float32) *sizeValue { return &sizeValue{w: w, h: h} }

func (v *sizeValue) String() string {
	if v.w == nil || v.h == nil {
		return ""
	}
	return vector.FormatFloat(*v.w) + "x" + vector.FormatFloat(*v.h)
}

func (v *sizeValue) Set(s string) error {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 32)
	if err != nil {
		return fmt.Errorf("size %q: width: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 32)
	if err != nil {
		return fmt.Errorf("size %q: height: %w", s, err)
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("size %q: negative dimension", s)
	}
	*v.w, *v.h = float32(w), float32(h)
	return nil
}

func (v *sizeValue) Type() string { return "size" }
