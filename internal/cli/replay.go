/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pathtip/internal/scenario"
	"pathtip/internal/tooltip"
	"pathtip/internal/vector"
)

func newReplayCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay a recorded hover session and print the state after each event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, _, err := a.replay(args[0])
			if err != nil {
				return err
			}
			return printFrames(cmd.OutOrStdout(), frames, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|json")
	return cmd
}

// replay loads a scenario and runs it with the configured style and offsets.
func (a *app) replay(path string) ([]scenario.Frame, *scenario.Scenario, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, nil, err
	}
	st, err := a.style()
	if err != nil {
		return nil, nil, err
	}
	prov, err := a.provider()
	if err != nil {
		return nil, nil, err
	}
	off := a.cfg.Tooltip.TooltipOffsets()
	pad := a.cfg.Tooltip.Padding
	frames, err := sc.Replay(scenario.Options{
		Style:    st,
		Offsets:  &off,
		Padding:  &pad,
		Measurer: tooltip.ProviderMeasurer(prov),
		Logger:   a.log,
	})
	if err != nil {
		return nil, nil, err
	}
	return frames, sc, nil
}

type frameJSON struct {
	Index   int         `json:"index"`
	Event   string      `json:"event"`
	Visible bool        `json:"visible"`
	Rect    vector.Rect `json:"rect"`
	Pointer []vector.Pt `json:"pointer"`
	Lines   []string    `json:"lines"`
}

func printFrames(w io.Writer, frames []scenario.Frame, format string) error {
	switch format {
	case "json":
		out := make([]frameJSON, len(frames))
		for i, f := range frames {
			out[i] = frameJSON{
				Index:   f.Index,
				Event:   f.Event.Kind.String(),
				Visible: f.State.Visible,
				Rect:    f.State.Rect,
				Pointer: f.State.Indicator.Points(),
				Lines:   f.State.Texts(),
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "text", "":
		ff := vector.FormatFloat
		for _, f := range frames {
			s := f.State
			vis := "hidden "
			if s.Visible {
				vis = "visible"
			}
			fmt.Fprintf(w, "%3d %-5s (%s,%s) %s rect=%s,%s %sx%s %s %q\n",
				f.Index, f.Event.Kind, ff(f.Event.X), ff(f.Event.Y), vis,
				ff(s.Rect.X), ff(s.Rect.Y), ff(s.Rect.W), ff(s.Rect.H),
				quadrantName(s.Quadrant), s.Texts())
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
