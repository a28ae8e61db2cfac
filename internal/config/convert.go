/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"fmt"
	"strings"

	applog "pathtip/internal/log"
	"pathtip/internal/textlayout"
	"pathtip/internal/tooltip"
	"pathtip/internal/vector"
)

// Style converts the tooltip section; it fails on unparseable colors.
func (t TooltipConfig) Style() (tooltip.Style, error) {
	bg, err := vector.ParseColor(t.BackgroundColor)
	if err != nil {
		return tooltip.Style{}, fmt.Errorf("tooltip.background_color: %w", err)
	}
	fg, err := vector.ParseColor(t.TextColor)
	if err != nil {
		return tooltip.Style{}, fmt.Errorf("tooltip.text_color: %w", err)
	}
	return tooltip.Style{
		MinWidth:   t.MinWidth,
		FontSize:   t.FontSize,
		FontFamily: t.FontFamily,
		Background: bg,
		Text:       fg,
	}, nil
}

// TooltipOffsets converts the offsets subsection.
func (t TooltipConfig) TooltipOffsets() tooltip.Offsets {
	return tooltip.Offsets{Horizontal: t.Offsets.Horizontal, Below: t.Offsets.Below, Above: t.Offsets.Above}
}

// FontLibrary returns the Go fonts plus font_file, when set, registered at
// regular weight under the first name of font_family.
func (t TooltipConfig) FontLibrary() (*textlayout.FontLibrary, error) {
	lib := textlayout.NewGoFontLibrary()
	if t.FontFile == "" {
		return lib, nil
	}
	family, _, _ := strings.Cut(t.FontFamily, ",")
	family = strings.Trim(strings.TrimSpace(family), `"'`)
	if family == "" {
		family = textlayout.SansSerif
	}
	if err := lib.LoadTTF(family, 400, false, t.FontFile); err != nil {
		return nil, fmt.Errorf("tooltip.font_file: %w", err)
	}
	return lib, nil
}

// Options converts the logging section for log.Init.
func (l LoggingConfig) Options() applog.Options {
	return applog.Options{Level: l.Level, Format: l.Format, AddSource: l.Source, File: l.File}
}
