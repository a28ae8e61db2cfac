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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pathtip/internal/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out    string
		format string
		frame  int
	)
	cmd := &cobra.Command{
		Use:   "render <scenario.yaml>",
		Short: "Render one replayed frame to SVG, PNG or PDF",
		Example: `  pathtip render session.yaml -o tip.svg
  pathtip render session.yaml -o tip.png --frame 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, sc, err := a.replay(args[0])
			if err != nil {
				return err
			}
			if len(frames) == 0 {
				return fmt.Errorf("%s has no events", args[0])
			}
			idx := frame
			if idx < 0 {
				idx = len(frames) + idx
			}
			if idx < 0 || idx >= len(frames) {
				return fmt.Errorf("frame %d out of range (0..%d)", frame, len(frames)-1)
			}
			st, err := a.style()
			if err != nil {
				return err
			}
			st, err = sc.ApplyStyle(st)
			if err != nil {
				return err
			}
			container := sc.Bounds()
			scene := render.NewScene(container, sc.TargetPath(), frames[idx].State, st)

			kind := strings.ToLower(format)
			if kind == "" {
				kind = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			}
			prov, err := a.provider()
			if err != nil {
				return err
			}
			// the PDF embeds the same face the label was measured with
			var pdfOpts render.PDFOptions
			if ff := a.cfg.Tooltip.FontFile; ff != "" && kind == "pdf" {
				if pdfOpts.Font, err = os.ReadFile(ff); err != nil {
					return fmt.Errorf("tooltip.font_file: %w", err)
				}
			}
			if err := writeScene(out, kind, scene, render.PNGOptions{Provider: prov}, pdfOpts); err != nil {
				return err
			}
			a.log.Info("rendered", slog.String("out", out), slog.String("format", kind), slog.Int("frame", idx))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVar(&format, "format", "", "svg|png|pdf (default: from --out extension)")
	cmd.Flags().IntVar(&frame, "frame", -1, "frame index; negative counts from the end")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func writeScene(path, kind string, scene render.Scene, pngOpts render.PNGOptions, pdfOpts render.PDFOptions) (err error) {
	var write func(f *os.File) error
	switch kind {
	case "svg":
		write = func(f *os.File) error { return render.WriteSVG(f, scene) }
	case "png":
		write = func(f *os.File) error { return render.WritePNG(f, scene, pngOpts) }
	case "pdf":
		write = func(f *os.File) error { return render.WritePDF(f, scene, pdfOpts) }
	default:
		return fmt.Errorf("unknown output format %q (want svg, png or pdf)", kind)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure out dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
