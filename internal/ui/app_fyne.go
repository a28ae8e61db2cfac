//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image/color"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	applog "pathtip/internal/log"
	"pathtip/internal/tooltip"
	"pathtip/internal/vector"
)

// Run opens a window with a line chart whose hover tooltip is driven by a
// tooltip.Controller.
func Run(opts Options) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	a := app.NewWithID("pathtip")
	w := a.NewWindow("pathtip")
	status := widget.NewLabel("Hover the chart")
	surface := NewChartSurface(opts)
	surface.OnChange = func(s tooltip.State) {
		if !s.Visible {
			status.SetText("Hover the chart")
			return
		}
		status.SetText(quadrantLabel(s.Quadrant))
	}
	w.SetContent(container.NewBorder(nil, status, nil, nil, surface))
	w.Resize(fyne.NewSize(720, 420))
	w.ShowAndRun()
	l.Info("UI closed", slog.String("text", opts.Text))
	return nil
}

func quadrantLabel(q tooltip.Quadrant) string {
	h, v := "right", "below"
	if q.Left {
		h = "left"
	}
	if q.Top {
		v = "above"
	}
	return "callout opens " + v + " and to the " + h + " of the cursor"
}

// ChartSurface draws a line chart and the tooltip, forwarding hover events to
// its controller. Positions from fyne are widget-relative, so the container
// bounds are the widget's own rectangle.
type ChartSurface struct {
	widget.BaseWidget

	ctrl   *tooltip.Controller
	series []float32

	// OnChange is called after every state change.
	OnChange func(tooltip.State)
}

var _ desktop.Hoverable = (*ChartSurface)(nil)

func NewChartSurface(opts Options) *ChartSurface {
	s := &ChartSurface{series: sampleSeries}
	var copts []tooltip.Option
	if opts.Style != (tooltip.Style{}) {
		copts = append(copts, tooltip.WithStyle(opts.Style))
	}
	if opts.Offsets != (tooltip.Offsets{}) {
		copts = append(copts, tooltip.WithOffsets(opts.Offsets))
	}
	if opts.Padding > 0 {
		copts = append(copts, tooltip.WithPadding(opts.Padding))
	}
	copts = append(copts, tooltip.WithRenderer(tooltip.RenderFunc(func(st tooltip.State) error {
		s.Refresh()
		if s.OnChange != nil {
			s.OnChange(st)
		}
		return nil
	})))
	s.ctrl = tooltip.New(opts.Text, tooltip.MeasureFunc(measureText), tooltip.BoundsFunc(s.bounds), copts...)
	s.ExtendBaseWidget(s)
	return s
}

// Controller exposes the tooltip state machine.
func (s *ChartSurface) Controller() *tooltip.Controller { return s.ctrl }

func (s *ChartSurface) bounds() (vector.Rect, bool) {
	sz := s.Size()
	if sz.Width <= 0 || sz.Height <= 0 {
		return vector.Rect{}, false
	}
	return vector.R(0, 0, sz.Width, sz.Height), true
}

func (s *ChartSurface) MouseIn(e *desktop.MouseEvent) {
	s.ctrl.Enter(vector.Pt{X: e.Position.X, Y: e.Position.Y})
}

func (s *ChartSurface) MouseMoved(e *desktop.MouseEvent) {
	s.ctrl.Move(vector.Pt{X: e.Position.X, Y: e.Position.Y})
}

func (s *ChartSurface) MouseOut() { s.ctrl.Leave() }

func (s *ChartSurface) MinSize() fyne.Size { return fyne.NewSize(320, 200) }

func textStyle(st tooltip.Style) fyne.TextStyle {
	return fyne.TextStyle{Monospace: strings.Contains(strings.ToLower(st.FontFamily), "mono")}
}

// measureText sizes the wrapped label with the fyne text renderer.
func measureText(lines []string, st tooltip.Style) (vector.Size, bool) {
	if len(lines) == 0 {
		return vector.Size{}, false
	}
	ts := textStyle(st)
	var w, h float32
	for _, ln := range lines {
		sz := fyne.MeasureText(ln, st.FontSize, ts)
		w = max(w, sz.Width)
		h = sz.Height
	}
	h += float32(len(lines)-1) * st.LineHeight()
	return vector.Size{W: w, H: h}, w > 0 || h > 0
}

func (s *ChartSurface) CreateRenderer() fyne.WidgetRenderer {
	r := &chartRenderer{
		s:       s,
		bg:      canvas.NewRectangle(color.RGBA{R: 250, G: 250, B: 252, A: 255}),
		callout: canvas.NewRectangle(color.Black),
	}
	r.callout.CornerRadius = 5
	for range len(s.series) - 1 {
		ln := canvas.NewLine(color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff})
		ln.StrokeWidth = 2
		r.lines = append(r.lines, ln)
	}
	r.pointer = canvas.NewRasterWithPixels(r.pointerPixel)
	r.rebuild()
	return r
}

type chartRenderer struct {
	s       *ChartSurface
	bg      *canvas.Rectangle
	lines   []*canvas.Line
	callout *canvas.Rectangle
	pointer *canvas.Raster
	labels  []*canvas.Text
	objects []fyne.CanvasObject

	// pointer triangle relative to the raster origin
	tri    [3]vector.Pt
	triCol color.Color
}

func (r *chartRenderer) Destroy()                     {}
func (r *chartRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *chartRenderer) MinSize() fyne.Size           { return r.s.MinSize() }

func (r *chartRenderer) rebuild() {
	r.objects = []fyne.CanvasObject{r.bg}
	for _, ln := range r.lines {
		r.objects = append(r.objects, ln)
	}
	r.objects = append(r.objects, r.callout, r.pointer)
	for _, t := range r.labels {
		r.objects = append(r.objects, t)
	}
}

func (r *chartRenderer) Refresh() {
	r.Layout(r.s.Size())
	canvas.Refresh(r.s)
}

func (r *chartRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	n := len(r.s.series)
	if n > 1 {
		step := size.Width / float32(n-1)
		for i, ln := range r.lines {
			ln.Position1 = fyne.NewPos(float32(i)*step, r.s.series[i]*size.Height)
			ln.Position2 = fyne.NewPos(float32(i+1)*step, r.s.series[i+1]*size.Height)
		}
	}

	st := r.s.ctrl.State()
	style := r.s.ctrl.Style()
	if !st.Visible || st.Rect.Empty() {
		r.callout.Hide()
		r.pointer.Hide()
		for _, t := range r.labels {
			t.Hide()
		}
		return
	}

	bg := style.Background.ToRGBA()
	r.callout.FillColor = bg
	r.callout.Move(fyne.NewPos(st.Rect.X, st.Rect.Y))
	r.callout.Resize(fyne.NewSize(st.Rect.W, st.Rect.H))
	r.callout.Show()
	r.callout.Refresh()

	pts := st.Indicator.Points()
	pb := st.Indicator.Path().Bounds()
	for i, p := range pts {
		r.tri[i] = p.Sub(pb.Min())
	}
	r.triCol = bg
	r.pointer.Move(fyne.NewPos(pb.X, pb.Y))
	r.pointer.Resize(fyne.NewSize(pb.W, pb.H))
	r.pointer.Show()
	r.pointer.Refresh()

	r.layoutLabels(st, style)
}

func (r *chartRenderer) layoutLabels(st tooltip.State, style tooltip.Style) {
	for len(r.labels) < len(st.Lines) {
		r.labels = append(r.labels, canvas.NewText("", color.White))
		r.rebuild()
	}
	ts := textStyle(style)
	for i, t := range r.labels {
		if i >= len(st.Lines) {
			t.Hide()
			continue
		}
		ln := st.Lines[i]
		t.Text = ln.Text
		t.TextSize = style.FontSize
		t.TextStyle = ts
		t.Color = style.Text.ToRGBA()
		// canvas.Text is positioned by its top edge; Line.Y is the baseline.
		_, baseline := fyne.CurrentApp().Driver().RenderedTextSize(ln.Text, style.FontSize, ts, nil)
		t.Move(fyne.NewPos(ln.X, ln.Y-baseline))
		t.Resize(t.MinSize())
		t.Show()
		t.Refresh()
	}
}

// pointerPixel fills the indicator triangle inside the raster's bounds.
func (r *chartRenderer) pointerPixel(x, y, w, h int) color.Color {
	if w <= 0 || h <= 0 {
		return color.Transparent
	}
	// raster pixels may be scaled relative to the widget's units
	sz := r.pointer.Size()
	p := vector.Pt{X: (float32(x) + 0.5) * sz.Width / float32(w), Y: (float32(y) + 0.5) * sz.Height / float32(h)}
	if inTriangle(p, r.tri[0], r.tri[1], r.tri[2]) {
		return r.triCol
	}
	return color.Transparent
}

func inTriangle(p, a, b, c vector.Pt) bool {
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func cross(p, a, b vector.Pt) float32 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
