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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// point is a vertex in screen space.  x and y are in pixels, z holds the
// reciprocal depth 1/w.
type point struct {
	x, y, z float64
}

func (p point) xy() vec.Vec2 {
	return vec.Vec2{X: p.x, Y: p.y}
}

// Outcodes for Cohen–Sutherland clipping.
const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(x, y float64, clip *rect.Rect) int {
	code := 0
	if x < clip.LLx {
		code |= outLeft
	} else if x > clip.URx {
		code |= outRight
	}
	if y < clip.LLy {
		code |= outBottom
	} else if y > clip.URy {
		code |= outTop
	}
	return code
}

// clipLine clips the segment p0–p1 to clip, moving the end points in place.
// The z coordinates are left alone.  It reports false if no part of the
// segment is inside the rectangle.
func clipLine(p0, p1 *point, clip *rect.Rect) bool {
	code0 := outcode(p0.x, p0.y, clip)
	code1 := outcode(p1.x, p1.y, clip)
	for {
		if code0|code1 == 0 {
			return true
		}
		if code0&code1 != 0 {
			return false
		}

		out := code0
		if out == 0 {
			out = code1
		}

		// Neither division below can be by zero: the segment crosses the
		// boundary it is clipped against.
		var x, y float64
		switch {
		case out&outTop != 0:
			x = p0.x + (p1.x-p0.x)*(clip.URy-p0.y)/(p1.y-p0.y)
			y = clip.URy
		case out&outBottom != 0:
			x = p0.x + (p1.x-p0.x)*(clip.LLy-p0.y)/(p1.y-p0.y)
			y = clip.LLy
		case out&outRight != 0:
			y = p0.y + (p1.y-p0.y)*(clip.URx-p0.x)/(p1.x-p0.x)
			x = clip.URx
		default:
			y = p0.y + (p1.y-p0.y)*(clip.LLx-p0.x)/(p1.x-p0.x)
			x = clip.LLx
		}

		if out == code0 {
			p0.x, p0.y = x, y
			code0 = outcode(x, y, clip)
		} else {
			p1.x, p1.y = x, y
			code1 = outcode(x, y, clip)
		}
	}
}

// clipEdge clips one boundary segment of a polygon to the viewport.
//
// On entry p0 and p1 are copies of the projected end points o0 and o1.  On
// success the end points are moved to the visible part of the segment and
// their depth is re-evaluated from the depth plane.  If textured is set, the
// texture coordinates t0 and t1 are moved along with the end points.  This
// interpolation is done on the depth-weighted coordinates of the original
// segment, so that the result stays perspective correct.
func clipEdge(p0, p1 *point, o0, o1 point, textured bool, t0, t1 *vec.Vec2, plane *depthPlane, clip *rect.Rect) bool {
	if !clipLine(p0, p1, clip) {
		return false
	}

	p0.z = plane.z(p0.x, p0.y)
	p1.z = plane.z(p1.x, p1.y)

	if textured {
		length := o1.xy().Sub(o0.xy()).Length()
		base := t0.Mul(o0.z)
		span := t1.Mul(o1.z).Sub(base)

		var r0, r1 float64
		if length > 0 {
			r0 = p0.xy().Sub(o0.xy()).Length() / length
			r1 = p1.xy().Sub(o0.xy()).Length() / length
		}
		*t0 = base.Add(span.Mul(r0)).Mul(1 / p0.z)
		*t1 = base.Add(span.Mul(r1)).Mul(1 / p1.z)
	}

	return true
}
