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

	"pathtip/internal/tooltip"
	"pathtip/internal/vector"
)

type placeOpts struct {
	x, y      float32
	container []float32
	labelW    float32
	labelH    float32
	padded    bool
	format    string
}

func newPlaceCmd(a *app) *cobra.Command {
	opts := placeOpts{container: []float32{0, 0, 800, 600}, format: "text"}
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute the callout rectangle and pointer for one cursor position",
		Example: `  pathtip place --x 50 --y 50 --container 0,0,200,100 --label 40x10
  pathtip place --x 180 --y 90 --container 0,0,200,100 --label 60x30 --padded --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlace(a, cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.Float32Var(&opts.x, "x", 0, "cursor x")
	f.Float32Var(&opts.y, "y", 0, "cursor y")
	f.Float32SliceVar(&opts.container, "container", opts.container, "container bounds x,y,w,h")
	f.Var(newSizeValue(&opts.labelW, &opts.labelH), "label", "measured label size WxH")
	f.BoolVar(&opts.padded, "padded", false, "label size already includes the padding")
	f.StringVar(&opts.format, "format", opts.format, "output format: text|json")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}

type placeResult struct {
	Rect      vector.Rect `json:"rect"`
	Absolute  vector.Rect `json:"absolute"` // Rect in the container's parent space
	Extent    vector.Rect `json:"extent"`   // Rect plus the pointer
	Left      bool        `json:"left"`
	Top       bool        `json:"top"`
	Indicator []vector.Pt `json:"indicator"`
	Edge      string      `json:"edge"`
}

func runPlace(a *app, w io.Writer, opts placeOpts) error {
	if len(opts.container) != 4 {
		return fmt.Errorf("--container needs 4 values, got %d", len(opts.container))
	}
	bounds := vector.R(opts.container[0], opts.container[1], opts.container[2], opts.container[3])
	label := vector.Size{W: opts.labelW, H: opts.labelH}
	if !opts.padded {
		label = tooltip.PadLabel(label, a.cfg.Tooltip.Padding)
	}
	st, err := a.style()
	if err != nil {
		return err
	}
	if st.MinWidth > label.W {
		label.W = st.MinWidth
	}
	pl := tooltip.Place(vector.Pt{X: opts.x, Y: opts.y}, bounds, label, a.cfg.Tooltip.TooltipOffsets())
	in := tooltip.Shape(pl.Rect, pl.Quadrant)
	res := placeResult{
		Rect:      pl.Rect,
		Absolute:  pl.Rect.Translate(bounds.X, bounds.Y),
		Extent:    in.Extent(pl.Rect),
		Left:      pl.Quadrant.Left,
		Top:       pl.Quadrant.Top,
		Indicator: in.Points(),
		Edge:      in.Edge,
	}
	return printPlacement(w, res, opts.format)
}

func printPlacement(w io.Writer, res placeResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "text", "":
		ff := vector.FormatFloat
		rect := func(label string, r vector.Rect) {
			fmt.Fprintf(w, "%-9s x=%s y=%s w=%s h=%s\n", label, ff(r.X), ff(r.Y), ff(r.W), ff(r.H))
		}
		rect("rect", res.Rect)
		rect("absolute", res.Absolute)
		rect("extent", res.Extent)
		fmt.Fprintf(w, "quadrant  %s\n", quadrantName(tooltip.Quadrant{Left: res.Left, Top: res.Top}))
		fmt.Fprintf(w, "pointer   %s edge:", res.Edge)
		for _, p := range res.Indicator {
			fmt.Fprintf(w, " %s,%s", ff(p.X), ff(p.Y))
		}
		fmt.Fprintln(w)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

func quadrantName(q tooltip.Quadrant) string {
	h, v := "right", "bottom"
	if q.Left {
		h = "left"
	}
	if q.Top {
		v = "top"
	}
	return h + "/" + v
}
