/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textlayout

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Generic family names understood by the library's fallback.
const (
	SansSerif = "sans-serif"
	Monospace = "monospace"
)

// FontLibrary stores parsed OpenType fonts keyed by family/weight/italic.
type FontLibrary struct {
	fonts map[fontKey]*opentype.Font
}

type fontKey struct {
	family string
	weight int
	italic bool
}

func NewFontLibrary() *FontLibrary { return &FontLibrary{fonts: make(map[fontKey]*opentype.Font)} }

// NewGoFontLibrary returns a library seeded with the Go fonts bound to the
// generic families, so every CSS-style family list resolves to something real.
func NewGoFontLibrary() *FontLibrary {
	fl := NewFontLibrary()
	// The embedded Go fonts are known-good; a parse failure here is a build defect.
	must(fl.Load(SansSerif, 400, false, goregular.TTF))
	must(fl.Load("Go", 400, false, goregular.TTF))
	must(fl.Load(Monospace, 400, false, gomono.TTF))
	must(fl.Load("Go Mono", 400, false, gomono.TTF))
	return fl
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Load parses font data into the library under the given family/weight/italic.
func (fl *FontLibrary) Load(family string, weight int, italic bool, data []byte) error {
	if fl.fonts == nil {
		fl.fonts = make(map[fontKey]*opentype.Font)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", family, err)
	}
	fl.fonts[fontKey{family: strings.ToLower(family), weight: weight, italic: italic}] = f
	return nil
}

// LoadTTF loads a font file into the library.
func (fl *FontLibrary) LoadTTF(family string, weight int, italic bool, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return fl.Load(family, weight, italic, data)
}

// find resolves a family list such as "Helvetica, Arial, sans-serif": exact
// match first, then any style of the family, then the generic fallback.
func (fl *FontLibrary) find(spec FontSpec) *opentype.Font {
	if fl == nil || len(fl.fonts) == 0 {
		return nil
	}
	for _, fam := range strings.Split(spec.Family, ",") {
		fam = strings.ToLower(strings.Trim(strings.TrimSpace(fam), `"'`))
		if fam == "" {
			continue
		}
		if f, ok := fl.fonts[fontKey{family: fam, weight: spec.Weight, italic: spec.Italic}]; ok {
			return f
		}
		if f := fl.closest(fam, spec); f != nil {
			return f
		}
	}
	generic := SansSerif
	if fam := strings.ToLower(spec.Family); strings.Contains(fam, "mono") || strings.Contains(fam, "courier") {
		generic = Monospace
	}
	return fl.closest(generic, spec)
}

// closest picks the style of family nearest to spec: matching italic first,
// then the smallest weight distance, lighter on ties.
func (fl *FontLibrary) closest(family string, spec FontSpec) *opentype.Font {
	var keys []fontKey
	for k := range fl.fonts {
		if k.family == family {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	want := cmp.Or(spec.Weight, 400)
	dist := func(w int) int { return max(w-want, want-w) }
	slices.SortFunc(keys, func(a, b fontKey) int {
		if a.italic != b.italic {
			if a.italic == spec.Italic {
				return -1
			}
			return 1
		}
		return cmp.Or(cmp.Compare(dist(a.weight), dist(b.weight)), cmp.Compare(a.weight, b.weight))
	})
	return fl.fonts[keys[0]]
}

// OTProvider resolves FontSpec using a FontLibrary and falls back to another Provider.
type OTProvider struct {
	Lib      *FontLibrary
	DPI      float64 // default 72 if zero
	Fallback Provider
}

func (p OTProvider) Resolve(spec FontSpec) (font.Face, Metrics) {
	if spec.SizePt <= 0 {
		spec.SizePt = 12
	}
	dpi := p.DPI
	if dpi <= 0 {
		dpi = 72
	}
	if f := p.Lib.find(spec); f != nil {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(spec.SizePt), DPI: dpi, Hinting: font.HintingFull})
		if err == nil {
			return face, metricsOf(face)
		}
	}
	fb := p.Fallback
	if fb == nil {
		fb = BasicProvider{}
	}
	return fb.Resolve(spec)
}
