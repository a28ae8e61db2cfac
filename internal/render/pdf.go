/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"pathtip/internal/vector"
)

// PDFOptions controls PDF output.
type PDFOptions struct {
	// Font is the TrueType data embedded for the label. nil embeds Go Mono for
	// monospace families and Go Regular otherwise, the faces labels are
	// measured with by default, so the text fits the callout.
	Font []byte
}

// labelFontFamily is the name the embedded label font is registered under.
const labelFontFamily = "label"

// WritePDF writes the scene as a single page in points, one unit per point.
func WritePDF(w io.Writer, s Scene, opt PDFOptions) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("empty scene %gx%g", s.Width, s.Height)
	}
	size := gofpdf.SizeType{Wd: float64(s.Width), Ht: float64(s.Height)}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: size})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("pathtip", false)
	pdf.AddPage()

	fr := s.frame()
	setDrawColor(pdf, frameStroke)
	pdf.SetLineWidth(1)
	pdf.Rect(float64(fr.X), float64(fr.Y), float64(fr.W), float64(fr.H), "D")

	if segs := segments(s.Target); len(segs) > 0 {
		setDrawColor(pdf, s.TargetStroke)
		pdf.SetLineWidth(2)
		for _, sg := range segs {
			pdf.Line(float64(sg[0].X), float64(sg[0].Y), float64(sg[1].X), float64(sg[1].Y))
		}
	}

	if st := s.State; s.tooltipShown() {
		setFillColor(pdf, s.background())
		pdf.Polygon(pdfPoints(vector.RoundedRect(st.Rect, CornerRadius, 4).Vertices()), "F")
		pdf.Polygon(pdfPoints(st.Indicator.Points()), "F")

		data := opt.Font
		if data == nil {
			data = labelFont(s.Style.FontFamily)
		}
		pdf.AddUTF8FontFromBytes(labelFontFamily, "", data)
		pdf.SetFont(labelFontFamily, "", float64(s.fontSize()))
		tc := s.textColor()
		pdf.SetTextColor(int(tc.R), int(tc.G), int(tc.B))
		for _, ln := range st.Lines {
			pdf.Text(float64(ln.X), float64(ln.Y), ln.Text)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func labelFont(family string) []byte {
	f := strings.ToLower(family)
	if strings.Contains(f, "mono") || strings.Contains(f, "courier") {
		return gomono.TTF
	}
	return goregular.TTF
}

func pdfPoints(pts []vector.Pt) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		out[i] = gofpdf.PointType{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

func setDrawColor(pdf *gofpdf.Fpdf, c vector.Color) { pdf.SetDrawColor(int(c.R), int(c.G), int(c.B)) }
func setFillColor(pdf *gofpdf.Fpdf, c vector.Color) { pdf.SetFillColor(int(c.R), int(c.G), int(c.B)) }
