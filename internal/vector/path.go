/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"math"
	"strconv"
	"strings"
)

// Path commands. Only straight segments are needed by the callout shapes,
// so curves are left to the render sinks.

type PathOp uint8

const (
	MoveTo PathOp = iota
	LineTo
	Close
)

type PathCmd struct {
	Op PathOp
	Pt Pt // unused for Close
}

type Path struct{ Cmds []PathCmd }

func (p *Path) MoveTo(x, y float32) { p.Cmds = append(p.Cmds, PathCmd{Op: MoveTo, Pt: Pt{x, y}}) }
func (p *Path) LineTo(x, y float32) { p.Cmds = append(p.Cmds, PathCmd{Op: LineTo, Pt: Pt{x, y}}) }
func (p *Path) Close()              { p.Cmds = append(p.Cmds, PathCmd{Op: Close}) }

// Polygon builds a closed path through pts.
func Polygon(pts ...Pt) Path {
	var p Path
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	if len(pts) > 0 {
		p.Close()
	}
	return p
}

// RoundedRect approximates r with corners of the given radius, each corner
// flattened into segs line segments. The radius is clamped to half the
// shorter side.
func RoundedRect(r Rect, radius float32, segs int) Path {
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 || segs < 1 {
		return Polygon(r.Min(), Pt{r.X + r.W, r.Y}, r.Max(), Pt{r.X, r.Y + r.H})
	}
	// corner centers clockwise from top-left, with their start angles
	corners := [4]struct {
		c     Pt
		start float64
	}{
		{Pt{r.X + radius, r.Y + radius}, math.Pi},
		{Pt{r.X + r.W - radius, r.Y + radius}, 1.5 * math.Pi},
		{Pt{r.X + r.W - radius, r.Y + r.H - radius}, 0},
		{Pt{r.X + radius, r.Y + r.H - radius}, 0.5 * math.Pi},
	}
	pts := make([]Pt, 0, 4*(segs+1))
	for _, k := range corners {
		for i := 0; i <= segs; i++ {
			a := k.start + float64(i)/float64(segs)*math.Pi/2
			pts = append(pts, Pt{
				X: k.c.X + radius*float32(math.Cos(a)),
				Y: k.c.Y + radius*float32(math.Sin(a)),
			})
		}
	}
	return Polygon(pts...)
}

// Closed reports whether the last command closes the path.
func (p Path) Closed() bool {
	return len(p.Cmds) > 0 && p.Cmds[len(p.Cmds)-1].Op == Close
}

// Vertices returns the points visited by MoveTo/LineTo in order.
func (p Path) Vertices() []Pt {
	out := make([]Pt, 0, len(p.Cmds))
	for _, c := range p.Cmds {
		if c.Op != Close {
			out = append(out, c.Pt)
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the path vertices.
func (p Path) Bounds() Rect {
	vs := p.Vertices()
	if len(vs) == 0 {
		return Rect{}
	}
	minX, minY := vs[0].X, vs[0].Y
	maxX, maxY := minX, minY
	for _, v := range vs[1:] {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// SVGData renders the path as an SVG "d" attribute value.
func (p Path) SVGData() string {
	var b strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case MoveTo:
			b.WriteString("M")
			b.WriteString(fmtPt(c.Pt))
		case LineTo:
			b.WriteString("L")
			b.WriteString(fmtPt(c.Pt))
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func fmtPt(p Pt) string {
	return FormatFloat(p.X) + "," + FormatFloat(p.Y)
}

// FormatFloat prints v with at most 3 decimals and no trailing zeros.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(FloatRound(v, 3)), 'f', -1, 32)
}
