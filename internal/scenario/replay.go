/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scenario

import (
	"log/slog"

	applog "pathtip/internal/log"
	"pathtip/internal/textlayout"
	"pathtip/internal/tooltip"
)

// Frame is the tooltip state after one event.
type Frame struct {
	Index int
	Event tooltip.PointerEvent
	State tooltip.State
}

// Options tune a replay. Zero values give the defaults.
type Options struct {
	Style    tooltip.Style
	Offsets  *tooltip.Offsets
	Padding  *float32
	Measurer tooltip.LabelMeasurer
	Logger   *slog.Logger
}

// Replay feeds every event to a fresh controller and records the state after
// each one. Container bounds are fixed for the whole session.
func (s *Scenario) Replay(opt Options) ([]Frame, error) {
	style := opt.Style
	if style == (tooltip.Style{}) {
		style = tooltip.DefaultStyle()
	}
	style, err := s.ApplyStyle(style)
	if err != nil {
		return nil, err
	}
	measure := opt.Measurer
	if measure == nil {
		measure = tooltip.ProviderMeasurer(textlayout.OTProvider{Lib: textlayout.NewGoFontLibrary()})
	}
	l := opt.Logger
	if l == nil {
		l = applog.WithComponent("scenario")
	}

	opts := []tooltip.Option{tooltip.WithStyle(style), tooltip.WithLogger(l)}
	if opt.Offsets != nil {
		opts = append(opts, tooltip.WithOffsets(*opt.Offsets))
	}
	if opt.Padding != nil {
		opts = append(opts, tooltip.WithPadding(*opt.Padding))
	}
	c := tooltip.New(s.Text, measure, tooltip.StaticBounds(s.Bounds()), opts...)

	frames := make([]Frame, 0, len(s.Events))
	for i, ev := range s.Events {
		kind, err := tooltip.ParseEventKind(ev.Kind)
		if err != nil {
			return frames, Error{Event: i, Msg: err.Error()}
		}
		if ev.Text != nil {
			c.SetText(*ev.Text)
		}
		pe := tooltip.PointerEvent{Kind: kind, X: ev.X, Y: ev.Y}
		c.Handle(pe)
		st := c.State()
		l.Debug("replayed event",
			slog.Int("index", i), slog.String("kind", kind.String()),
			slog.Bool("visible", st.Visible), slog.Any("rect", st.Rect))
		frames = append(frames, Frame{Index: i, Event: pe, State: st})
	}
	return frames, nil
}
