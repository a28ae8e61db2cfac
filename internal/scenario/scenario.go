/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scenario replays a recorded hover session against a tooltip
// controller without a GUI.
//
// A scenario file is YAML:
//
//	container: {x: 0, y: 0, width: 200, height: 100}
//	text: Revenue grew 12% quarter over quarter
//	style: {font_size: 12, background_color: "#333"}
//	target: [[10, 90], [100, 20], [190, 90]]
//	events:
//	  - {kind: enter, x: 50, y: 50}
//	  - {kind: move, x: 160, y: 70}
//	  - {kind: leave}
//
// Event coordinates share the space of the container rectangle.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pathtip/internal/tooltip"
	"pathtip/internal/vector"
)

type Rect struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Style overrides; empty fields keep the base style.
type Style struct {
	MinWidth        float32 `yaml:"min_width,omitempty"`
	FontSize        float32 `yaml:"font_size,omitempty"`
	FontFamily      string  `yaml:"font_family,omitempty"`
	BackgroundColor string  `yaml:"background_color,omitempty"`
	TextColor       string  `yaml:"text_color,omitempty"`
}

type Event struct {
	Kind string  `yaml:"kind"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	// Text replaces the label before the event is delivered.
	Text *string `yaml:"text,omitempty"`
}

type Scenario struct {
	Container Rect         `yaml:"container"`
	Text      string       `yaml:"text"`
	Style     Style        `yaml:"style"`
	Target    [][2]float32 `yaml:"target,omitempty"`
	Events    []Event      `yaml:"events"`
}

// Error reports a problem with one event; Event is zero-based, -1 for the
// document itself.
type Error struct {
	Event int
	Msg   string
}

func (e Error) Error() string {
	if e.Event < 0 {
		return e.Msg
	}
	return fmt.Sprintf("event %d: %s", e.Event, e.Msg)
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate collects every problem rather than stopping at the first.
func (s *Scenario) Validate() error {
	var errs []error
	if s.Container.Width <= 0 || s.Container.Height <= 0 {
		errs = append(errs, Error{Event: -1, Msg: fmt.Sprintf("container must have a positive size, got %gx%g", s.Container.Width, s.Container.Height)})
	}
	for i, ev := range s.Events {
		if _, err := tooltip.ParseEventKind(ev.Kind); err != nil {
			errs = append(errs, Error{Event: i, Msg: err.Error()})
		}
	}
	return errors.Join(errs...)
}

// Bounds returns the container rectangle.
func (s *Scenario) Bounds() vector.Rect {
	return vector.R(s.Container.X, s.Container.Y, s.Container.Width, s.Container.Height)
}

// TargetPath returns the hovered shape in container-relative coordinates.
func (s *Scenario) TargetPath() vector.Path {
	var p vector.Path
	for i, xy := range s.Target {
		if i == 0 {
			p.MoveTo(xy[0], xy[1])
			continue
		}
		p.LineTo(xy[0], xy[1])
	}
	return p
}

// ApplyStyle layers the scenario's overrides over base.
func (s *Scenario) ApplyStyle(base tooltip.Style) (tooltip.Style, error) {
	o := s.Style
	if o.MinWidth > 0 {
		base.MinWidth = o.MinWidth
	}
	if o.FontSize > 0 {
		base.FontSize = o.FontSize
	}
	if f := strings.TrimSpace(o.FontFamily); f != "" {
		base.FontFamily = f
	}
	if o.BackgroundColor != "" {
		c, err := vector.ParseColor(o.BackgroundColor)
		if err != nil {
			return base, fmt.Errorf("style.background_color: %w", err)
		}
		base.Background = c
	}
	if o.TextColor != "" {
		c, err := vector.ParseColor(o.TextColor)
		if err != nil {
			return base, fmt.Errorf("style.text_color: %w", err)
		}
		base.Text = c
	}
	return base, nil
}
