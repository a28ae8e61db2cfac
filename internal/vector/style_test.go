/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "testing"

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"black", Black},
		{" White ", White},
		{"#fff", Color{255, 255, 255, 255}},
		{"#1e90ff", Color{30, 144, 255, 255}},
		{"#00000080", Color{0, 0, 0, 128}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "chartreuse-ish", "#12", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := (Color{30, 144, 255, 10}).Hex(); got != "#1e90ff" {
		t.Fatalf("Hex = %q", got)
	}
	if c := White.ToRGBA(); c.R != 255 || c.A != 255 {
		t.Fatalf("unexpected ToRGBA: %+v", c)
	}
}
