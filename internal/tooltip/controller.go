/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tooltip

import (
	"log/slog"

	applog "pathtip/internal/log"
	"pathtip/internal/textlayout"
	"pathtip/internal/vector"
)

// LabelMeasurer reports the rendered size of the wrapped label text. It returns
// false while the host cannot measure yet (for example before first layout).
type LabelMeasurer interface {
	MeasureLabel(lines []string, st Style) (vector.Size, bool)
}

// MeasureFunc adapts a function to LabelMeasurer.
type MeasureFunc func(lines []string, st Style) (vector.Size, bool)

func (f MeasureFunc) MeasureLabel(lines []string, st Style) (vector.Size, bool) { return f(lines, st) }

// BoundsProvider reports the container rectangle in the same space as pointer
// events. It is queried on every event since scrolling or resizing moves it.
type BoundsProvider interface {
	ContainerBounds() (vector.Rect, bool)
}

// BoundsFunc adapts a function to BoundsProvider.
type BoundsFunc func() (vector.Rect, bool)

func (f BoundsFunc) ContainerBounds() (vector.Rect, bool) { return f() }

// StaticBounds is a BoundsProvider for a container that never moves.
func StaticBounds(r vector.Rect) BoundsProvider {
	return BoundsFunc(func() (vector.Rect, bool) { return r, true })
}

// Renderer receives every new State.
type Renderer interface {
	Render(State) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(State) error

func (f RenderFunc) Render(s State) error { return f(s) }

// ProviderMeasurer measures with a textlayout.Provider, for hosts without a
// rendering surface of their own.
func ProviderMeasurer(p textlayout.Provider) LabelMeasurer {
	return MeasureFunc(func(lines []string, st Style) (vector.Size, bool) {
		return textlayout.MeasureLines(p, st.Font(), lines, st.LineHeight()), true
	})
}

// Option configures a Controller.
type Option func(*Controller)

func WithStyle(st Style) Option       { return func(c *Controller) { c.style = st.withDefaults() } }
func WithOffsets(o Offsets) Option    { return func(c *Controller) { c.offsets = o } }
func WithPadding(pad float32) Option  { return func(c *Controller) { c.padding = pad } }
func WithRenderer(r Renderer) Option  { return func(c *Controller) { c.render = r } }
func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.log = l } }

// Controller owns the visual state of one tooltip and updates it from hover
// events. It is not safe for concurrent use; hosts deliver events serially.
type Controller struct {
	text    string
	style   Style
	offsets Offsets
	padding float32

	measure LabelMeasurer
	bounds  BoundsProvider
	render  Renderer
	log     *slog.Logger

	state  State
	cursor vector.Pt

	// wrap memo, keyed by text and budget
	wrapText   string
	wrapBudget int
	wrapped    []string

	// measured label size for the current text and style; unset until the host can measure
	measured   vector.Size
	measuredOK bool
}

// New builds a hidden controller for text.
func New(text string, measure LabelMeasurer, bounds BoundsProvider, opts ...Option) *Controller {
	c := &Controller{
		text:    text,
		style:   DefaultStyle(),
		offsets: DefaultOffsets(),
		padding: DefaultPadding,
		measure: measure,
		bounds:  bounds,
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = applog.WithComponent("tooltip")
	}
	return c
}

// State returns the current visual state.
func (c *Controller) State() State { return c.state }

// Visible reports whether the tooltip is shown.
func (c *Controller) Visible() bool { return c.state.Visible }

// Style returns the effective style.
func (c *Controller) Style() Style { return c.style }

// Lines returns the wrapped label, recomputed only when text or budget change.
func (c *Controller) Lines() []string {
	budget := c.style.LineBudget()
	if c.wrapped == nil || c.wrapText != c.text || c.wrapBudget != budget {
		c.wrapText, c.wrapBudget = c.text, budget
		c.wrapped = textlayout.Wrap(c.text, budget)
	}
	return c.wrapped
}

// Handle dispatches a pointer event.
func (c *Controller) Handle(ev PointerEvent) {
	p := vector.Pt{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case Enter:
		c.Enter(p)
	case Move:
		c.Move(p)
	case Leave:
		c.Leave()
	default:
		c.log.Debug("ignored pointer event", slog.String("kind", ev.Kind.String()))
	}
}

// Enter shows the tooltip and places it at p when the host is ready.
func (c *Controller) Enter(p vector.Pt) {
	c.state = c.withVisible(true)
	c.cursor = p
	c.update()
	c.emit()
}

// Move re-places a visible tooltip. While hidden it does nothing.
func (c *Controller) Move(p vector.Pt) {
	if !c.state.Visible {
		return
	}
	c.cursor = p
	if c.update() {
		c.emit()
	}
}

// Leave hides the tooltip; the last geometry is kept.
func (c *Controller) Leave() {
	if !c.state.Visible {
		return
	}
	c.state = c.withVisible(false)
	c.emit()
}

// SetText replaces the label. The size is measured again before the next placement.
func (c *Controller) SetText(text string) {
	if text == c.text {
		return
	}
	c.text = text
	c.measuredOK = false
	c.refresh()
}

// SetStyle replaces the style; font changes invalidate the measured size.
func (c *Controller) SetStyle(st Style) {
	st = st.withDefaults()
	if st.FontSize != c.style.FontSize || st.FontFamily != c.style.FontFamily {
		c.measuredOK = false
	}
	c.style = st
	c.refresh()
}

func (c *Controller) refresh() {
	if c.state.Visible && c.update() {
		c.emit()
	}
}

// update rebuilds the state from the last cursor. It reports false and leaves
// the state untouched when bounds or measurement are not available yet.
func (c *Controller) update() bool {
	if c.bounds == nil || c.measure == nil {
		return false
	}
	bounds, ok := c.bounds.ContainerBounds()
	if !ok {
		c.log.Debug("container bounds not ready")
		return false
	}
	if !bounds.Contains(c.cursor) {
		c.log.Debug("cursor outside container", slog.Any("cursor", c.cursor), slog.Any("bounds", bounds))
	}
	lines := c.Lines()
	if !c.measuredOK {
		size, ok := c.measure.MeasureLabel(lines, c.style)
		if !ok || (size.W == 0 && size.H == 0) {
			c.log.Debug("label not measurable yet", slog.Int("lines", len(lines)))
			return false
		}
		c.measured, c.measuredOK = size, true
	}
	label := PadLabel(c.measured, c.padding)
	if c.style.MinWidth > label.W {
		label.W = c.style.MinWidth
	}
	pl := Place(c.cursor, bounds, label, c.offsets)
	c.state = State{
		Visible:   true,
		Rect:      pl.Rect,
		Quadrant:  pl.Quadrant,
		Indicator: Shape(pl.Rect, pl.Quadrant),
		Lines:     layoutLines(pl.Rect, lines, c.style),
	}
	return true
}

func (c *Controller) withVisible(v bool) State {
	s := c.state
	s.Visible = v
	return s
}

// emit hands the state to the renderer. A visible state without a placed
// rect is held back until the host can measure.
func (c *Controller) emit() {
	if c.render == nil || (c.state.Visible && c.state.Rect.Empty()) {
		return
	}
	if err := c.render.Render(c.state); err != nil {
		c.log.Warn("render failed", slog.Any("err", err))
	}
}
