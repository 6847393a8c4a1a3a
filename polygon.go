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
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"seehuhn.de/go/geom/vec"
)

// depthPlane holds the coefficients of a*x + b*y + c*z + d = 0, giving the
// reciprocal depth z of a polygon as a function of the screen position.
type depthPlane struct {
	a, b, c, d float64
}

// newDepthPlane returns the plane through p with normal n.
func newDepthPlane(n [3]float64, p point) depthPlane {
	return depthPlane{
		a: n[0],
		b: n[1],
		c: n[2],
		d: -(n[0]*p.x + n[1]*p.y + n[2]*p.z),
	}
}

func (pl *depthPlane) z(x, y float64) float64 {
	return -(pl.a*x + pl.b*y + pl.d) / pl.c
}

// normal returns the (unnormalised) normal of the triangle p0, p1, p2.
func normal(p0, p1, p2 point) [3]float64 {
	ux, uy, uz := p1.x-p0.x, p1.y-p0.y, p1.z-p0.z
	vx, vy, vz := p2.x-p0.x, p2.y-p0.y, p2.z-p0.z
	return [3]float64{
		uy*vz - uz*vy,
		uz*vx - ux*vz,
		ux*vy - uy*vx,
	}
}

// polygon is a face after projection and clipping, waiting to be drawn or
// being drawn.
type polygon struct {
	edges    []edge
	unpaired []int // indices into edges of edges without a partner
	plane    depthPlane
	color    color.RGBA
	textures []*Texture // nil for flat shaded polygons
	dy       int        // remaining scanlines
}

// takeUnpaired removes and returns an unpaired edge whose x coordinate is
// within samePixelLimit of x.
func (p *polygon) takeUnpaired(x float64) (int, bool) {
	for k, i := range p.unpaired {
		if math.Abs(p.edges[i].x-x) < samePixelLimit {
			p.unpaired = append(p.unpaired[:k], p.unpaired[k+1:]...)
			return i, true
		}
	}
	return 0, false
}

// project transforms the boundary of f into screen space, storing the result
// in r.projected.  It reports false if the face lies outside the depth range.
func (r *Rasteriser) project(f *Face) bool {
	r.projected = r.projected[:0]
	allFar := r.Far > 0
	for i := range f.Indices {
		v := r.MVP.Mul4x1(f.vertex(i).Position.Vec4(1))
		w := v.W()
		if w <= 0 || (r.Near > 0 && w < r.Near) {
			return false
		}
		if w <= r.Far {
			allFar = false
		}

		nx := float64(v.X() / w)
		ny := float64(v.Y() / w)
		m := &r.viewport
		r.projected = append(r.projected, point{
			x: snap(m[0]*nx + m[2]*ny + m[4]),
			y: snap(m[1]*nx + m[3]*ny + m[5]),
			z: 1 / float64(w),
		})
	}
	return !allFar
}

// Outline returns the screen-space outline of f, and whether f faces the
// viewer.  The result is nil if f is invalid or lies outside the depth range.
func (r *Rasteriser) Outline(f *Face) ([]vec.Vec2, bool) {
	if f.check() != nil || !r.project(f) {
		return nil, false
	}
	res := make([]vec.Vec2, len(r.projected))
	for i, p := range r.projected {
		res[i] = p.xy()
	}
	n := normal(r.projected[0], r.projected[1], r.projected[2])
	return res, n[2] > backfaceEpsilon
}

// InsertPolygon stages f for the next call to [Rasteriser.Draw].
//
// If textured is set and f has textures bound, the polygon is texture
// mapped.  Otherwise it is drawn in the colour of its first vertex.
// Faces which point away from the viewer, lie outside the viewport or
// outside the depth range are silently dropped and counted in r.Stats.
// An error is returned only if f itself is malformed.
func (r *Rasteriser) InsertPolygon(f *Face, textured bool) error {
	if err := f.check(); err != nil {
		return err
	}
	r.Stats.Faces++

	if !r.project(f) {
		r.Stats.OutOfDepth++
		return nil
	}
	proj := r.projected

	n := normal(proj[0], proj[1], proj[2])
	if n[2] <= backfaceEpsilon {
		r.Stats.Backfacing++
		return nil
	}
	plane := newDepthPlane(n, proj[0])

	textured = textured && len(f.Textures) > 0
	r.polyTextured = textured
	r.polyTop = -1
	r.polyBottom = r.height
	r.badEdge = false

	// reuse a previously allocated polygon slot, if possible
	idx := len(r.polys)
	if idx < cap(r.polys) {
		r.polys = r.polys[:idx+1]
	} else {
		r.polys = append(r.polys, polygon{})
	}
	poly := &r.polys[idx]
	edges := poly.edges[:0]

	var first, lastEnd point
	var firstTex, lastTex vec.Vec2
	started := false
	for i := range proj {
		next := (i + 1) % len(proj)
		p0, p1 := proj[i], proj[next]
		var t0, t1 vec.Vec2
		if textured {
			t0 = toVec2(f.vertex(i).TexCoord)
			t1 = toVec2(f.vertex(next).TexCoord)
		}

		if !clipEdge(&p0, &p1, proj[i], proj[next], textured, &t0, &t1, &plane, &r.clip) {
			continue
		}

		if !started {
			first, firstTex = p0, t0
			started = true
		} else if p0.xy().Sub(lastEnd.xy()).Length() > samePixelLimit {
			// the previous edge was clipped: close the gap along the border
			edges = r.addEdge(edges, lastEnd, p0, lastTex, t0)
		}
		lastEnd, lastTex = p1, t1

		edges = r.addEdge(edges, p0, p1, t0, t1)
	}
	if started && first.xy().Sub(lastEnd.xy()).Length() > samePixelLimit {
		edges = r.addEdge(edges, lastEnd, first, lastTex, firstTex)
	}
	poly.edges = edges

	switch {
	case r.badEdge:
		r.Stats.BadEdges++
		r.polys = r.polys[:idx]
		return nil
	case r.polyTop < 0 || r.polyBottom == r.height:
		r.Stats.ClippedAway++
		r.polys = r.polys[:idx]
		return nil
	case r.polyTop >= r.height:
		Logger().Warn("zbuffer: polygon extends past the top row, discarded",
			"top", r.polyTop, "height", r.height)
		r.Stats.BadEdges++
		r.polys = r.polys[:idx]
		return nil
	}

	poly.unpaired = poly.unpaired[:0]
	poly.plane = plane
	poly.color = f.vertex(0).Color
	poly.textures = nil
	if textured {
		poly.textures = f.Textures
	}
	poly.dy = r.polyTop - r.polyBottom + 1

	r.buckets[r.polyTop] = append(r.buckets[r.polyTop], idx)
	r.Stats.Polygons++
	return nil
}

// InsertFaces calls [Rasteriser.InsertPolygon] for every face, stopping at
// the first malformed one.
func (r *Rasteriser) InsertFaces(faces []*Face, textured bool) error {
	for _, f := range faces {
		if err := r.InsertPolygon(f, textured); err != nil {
			return err
		}
	}
	return nil
}

// snap rounds a pixel coordinate to the 26.6 fixed-point grid, so that
// vertices meant to lie on pixel boundaries do so exactly.
func snap(x float64) float64 {
	return math.Round(x*64) / 64
}

func toVec2(v mgl32.Vec2) vec.Vec2 {
	return vec.Vec2{X: float64(v[0]), Y: float64(v[1])}
}
