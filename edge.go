// seehuhn.de/go/zbuffer - a scan-line Z-buffer rasteriser
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package zbuffer

import (
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
)

// edgeKind distinguishes edges which are stepped from scanline to scanline
// from edges which lie within a single scanline.
type edgeKind uint8

const (
	edgeSloped edgeKind = iota
	edgeHorizontal
)

// edge is one side of a polygon outline in screen space.
//
// The edge starts at scanline y, its upper end point, and covers dy
// scanlines downwards.  While the polygon is drawn, x, dy and the
// interpolation state are advanced in place.
type edge struct {
	kind edgeKind
	y    int     // first (upper) scanline
	dy   int     // remaining scanlines, >= 1 when built
	x    float64 // x at the current scanline
	dx   float64 // change of x per scanline, for edgeSloped
	endX float64 // x of the lower end point, for edgeHorizontal
	z    float64 // reciprocal depth at the upper end point

	tex  vec.Vec2 // texture coordinate at the upper end point
	dtex vec.Vec2 // change of tex*z per scanline
}

// step returns the change of x per scanline.  Horizontal edges are never
// stepped.
func (e *edge) step() float64 {
	if e.kind == edgeHorizontal {
		return 0
	}
	return e.dx
}

// addEdge appends the edge p0–p1 to the polygon under construction and
// extends the scanline range r.polyTop…r.polyBottom.  Coordinates outside
// the viewport indicate a clipping failure; in this case the edge is not
// added and r.badEdge is set.
func (r *Rasteriser) addEdge(edges []edge, p0, p1 point, t0, t1 vec.Vec2) []edge {
	// p0 becomes the upper end point
	if p0.y < p1.y {
		p0, p1 = p1, p0
		t0, t1 = t1, t0
	}

	h := float64(r.height)
	if !(p0.y >= 0 && p0.y <= h && p0.x >= 0) || !(p1.y >= 0 && p1.y <= h && p1.x >= 0) {
		if !r.badEdge {
			Logger().Warn("zbuffer: bad edge, polygon discarded",
				"x0", p0.x, "y0", p0.y, "x1", p1.x, "y1", p1.y)
		}
		r.badEdge = true
		return edges
	}

	top := scanline(p0.y)
	bottom := scanline(p1.y)
	r.polyTop = max(r.polyTop, top)
	r.polyBottom = min(r.polyBottom, bottom)

	e := edge{
		y:  top,
		dy: top - bottom + 1,
		x:  p0.x,
		z:  p0.z,
	}
	if r.polyTextured {
		e.tex = t0
		e.dtex = t1.Mul(p1.z).Sub(t0.Mul(p0.z)).Mul(1 / float64(e.dy))
	}
	if e.dy == 1 {
		e.kind = edgeHorizontal
		e.endX = p1.x
	} else {
		e.kind = edgeSloped
		e.dx = (p1.x - p0.x) / float64(e.dy)
	}

	return append(edges, e)
}

// scanline returns the index of the scanline containing y, which must be
// a non-negative pixel coordinate.  Vertices are snapped to the 26.6 grid,
// so the conversion is exact for unclipped end points.
func scanline(y float64) int {
	return fixed.Int26_6(y * 64).Floor()
}
