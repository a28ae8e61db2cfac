/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"pathtip/internal/tooltip"
	"pathtip/internal/vector"
)

// WriteSVG writes the scene as a standalone SVG document. The tooltip
// elements are always emitted and toggled with the visibility attribute.
func WriteSVG(w io.Writer, s Scene) error {
	var buf bytes.Buffer
	wf := func(format string, args ...any) { fmt.Fprintf(&buf, format, args...) }
	ff := vector.FormatFloat

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		ff(s.Width), ff(s.Height), ff(s.Width), ff(s.Height))
	fr := s.frame()
	wf("  <rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"1\"/>\n",
		ff(fr.X), ff(fr.Y), ff(fr.W), ff(fr.H), frameStroke.Hex())
	if len(s.Target.Cmds) > 0 {
		wf("  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\"/>\n", s.Target.SVGData(), s.TargetStroke.Hex())
	}

	st := s.State
	vis := "hidden"
	if s.tooltipShown() {
		vis = "visible"
	}
	bg := s.background().Hex()
	r := st.Rect
	wf("  <rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" rx=\"%d\" ry=\"%d\" fill=\"%s\" visibility=\"%s\"/>\n",
		ff(r.X), ff(r.Y), ff(r.W), ff(r.H), CornerRadius, CornerRadius, bg, vis)

	pts := make([]string, 0, 3)
	for _, p := range st.Indicator.Points() {
		pts = append(pts, ff(p.X)+","+ff(p.Y))
	}
	wf("  <polygon fill=\"%s\" visibility=\"%s\" points=\"%s\"/>\n", bg, vis, strings.Join(pts, " "))

	wf("  <text x=\"%s\" y=\"%s\" font-family=\"%s\" font-size=\"%s\" fill=\"%s\" visibility=\"%s\">\n",
		ff(r.X+tooltip.TextInset), ff(r.Y), escape(s.Style.FontFamily), ff(s.fontSize()), s.textColor().Hex(), vis)
	for _, ln := range st.Lines {
		wf("    <tspan x=\"%s\" y=\"%s\">%s</tspan>\n", ff(ln.X), ff(ln.Y), escape(ln.Text))
	}
	wf("  </text>\n")
	wf("</svg>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
