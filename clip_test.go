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
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestClipLine(t *testing.T) {
	clip := &rect.Rect{LLx: 0, LLy: 0, URx: 63, URy: 63}
	cases := []struct {
		name     string
		p0, p1   point
		accepted bool
		q0, q1   point
	}{
		{"inside", point{x: 10, y: 10}, point{x: 50, y: 30}, true,
			point{x: 10, y: 10}, point{x: 50, y: 30}},
		{"on the border", point{x: 0, y: 0}, point{x: 63, y: 63}, true,
			point{x: 0, y: 0}, point{x: 63, y: 63}},
		{"left", point{x: -10, y: 10}, point{x: -1, y: 50}, false,
			point{}, point{}},
		{"above", point{x: 10, y: 70}, point{x: 50, y: 64}, false,
			point{}, point{}},
		{"right end", point{x: 32, y: 10}, point{x: 96, y: 10}, true,
			point{x: 32, y: 10}, point{x: 63, y: 10}},
		{"both ends", point{x: -10, y: 32}, point{x: 80, y: 32}, true,
			point{x: 0, y: 32}, point{x: 63, y: 32}},
		{"diagonal", point{x: -10, y: -10}, point{x: 73, y: 73}, true,
			point{x: 0, y: 0}, point{x: 63, y: 63}},
		{"past the corner", point{x: -10, y: 60}, point{x: 10, y: 80}, false,
			point{}, point{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p0, p1 := c.p0, c.p1
			ok := clipLine(&p0, &p1, clip)
			if ok != c.accepted {
				t.Fatalf("accepted=%t, want %t", ok, c.accepted)
			}
			if !ok {
				return
			}
			for _, pq := range [][2]point{{p0, c.q0}, {p1, c.q1}} {
				if math.Abs(pq[0].x-pq[1].x) > 1e-9 || math.Abs(pq[0].y-pq[1].y) > 1e-9 {
					t.Errorf("got %v, want %v", pq[0], pq[1])
				}
			}
		})
	}
}

func TestClipEdgeTexture(t *testing.T) {
	clip := &rect.Rect{LLx: 0, LLy: 0, URx: 63, URy: 63}

	// reciprocal depth 1 - x/126: 1.5 at x=-63, 0.5 at x=63
	plane := depthPlane{a: 1.0 / 126, b: 0, c: 1, d: -1}
	o0 := point{x: -63, y: 10, z: 1.5}
	o1 := point{x: 63, y: 10, z: 0.5}
	t0 := vec.Vec2{X: 0, Y: 0}
	t1 := vec.Vec2{X: 1, Y: 0}

	p0, p1 := o0, o1
	if !clipEdge(&p0, &p1, o0, o1, true, &t0, &t1, &plane, clip) {
		t.Fatal("edge rejected")
	}

	if p0.x != 0 || p0.y != 10 {
		t.Errorf("p0 = %v, want (0, 10)", p0)
	}
	if math.Abs(p0.z-1) > 1e-12 {
		t.Errorf("p0.z = %g, want 1", p0.z)
	}
	// u*z is linear in x: 0 at x=-63 and 0.5 at x=63
	if math.Abs(t0.X-0.25) > 1e-12 || t0.Y != 0 {
		t.Errorf("t0 = %v, want (0.25, 0)", t0)
	}
	if math.Abs(t1.X-1) > 1e-12 {
		t.Errorf("t1 = %v, want (1, 0)", t1)
	}
}

func TestClipEdgeRejected(t *testing.T) {
	clip := &rect.Rect{LLx: 0, LLy: 0, URx: 63, URy: 63}
	plane := depthPlane{c: 1, d: -1}
	o0 := point{x: 70, y: 10, z: 1}
	o1 := point{x: 80, y: 20, z: 1}
	t0, t1 := vec.Vec2{X: 0.25}, vec.Vec2{X: 0.75}

	p0, p1 := o0, o1
	if clipEdge(&p0, &p1, o0, o1, true, &t0, &t1, &plane, clip) {
		t.Error("edge outside the viewport accepted")
	}
	if t0.X != 0.25 || t1.X != 0.75 {
		t.Error("texture coordinates changed for a rejected edge")
	}
}
