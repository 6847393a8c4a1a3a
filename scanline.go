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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// edgePair is a span between two edges of one polygon, drawn once per
// scanline.  The edges are owned by the polygon; the pair refers to them
// by index, so that an exhausted edge can be replaced by another edge of
// the same polygon.
type edgePair struct {
	poly        int // index into Rasteriser.polys
	left, right int // indices into the edges of poly

	zl, zr   float64 // reciprocal depth at the left and right edge
	dzx, dzy float64 // change of reciprocal depth per pixel and per scanline

	tl, tr vec.Vec2 // texture coordinates at the left and right edge
}

// drawLine renders scanline y into row.
func (r *Rasteriser) drawLine(y int, row []byte) {
	for i := range r.zRow {
		r.zRow[i] = negInf
	}
	fillRow(row, r.Background.R, r.Background.G, r.Background.B, r.Background.A)

	// Promote polygons starting at this scanline
	r.active = append(r.active, r.buckets[y]...)

	for _, pi := range r.active {
		r.insertEdgePairs(y, pi)
	}

	for i := range r.pairs {
		r.drawEdgePair(&r.pairs[i], row)
	}

	for _, pi := range r.active {
		r.polys[pi].dy--
	}

	// Retire exhausted pairs and polygons
	r.pairs = slices.DeleteFunc(r.pairs, func(pair edgePair) bool {
		edges := r.polys[pair.poly].edges
		return edges[pair.left].dy <= 0 && edges[pair.right].dy <= 0
	})
	r.active = slices.DeleteFunc(r.active, func(pi int) bool {
		return r.polys[pi].dy <= 0
	})
}

// fillRow sets all pixels of row to the given colour.
func fillRow(row []byte, red, green, blue, alpha uint8) {
	if len(row) == 0 {
		return
	}
	row[0], row[1], row[2], row[3] = red, green, blue, alpha
	for i := 4; i < len(row); i *= 2 {
		copy(row[i:], row[:i])
	}
}

// insertEdgePairs starts the spans of polygon pi which begin on scanline y.
//
// Horizontal edges never start a span.  An edge without a partner is kept
// in the unpaired pool of the polygon, to replace an exhausted edge later.
func (r *Rasteriser) insertEdgePairs(y int, pi int) {
	p := &r.polys[pi]

	r.found = r.found[:0]
	for i := range p.edges {
		e := &p.edges[i]
		if e.y == y && e.dy > 1 {
			r.found = append(r.found, i)
		}
	}

	switch len(r.found) {
	case 0:
		return
	case 1:
		p.unpaired = append(p.unpaired, r.found[0])
		return
	case 2:
		r.pairs = append(r.pairs, r.newEdgePair(pi, r.found[0], r.found[1]))
		return
	}

	// More than two edges only occur for clipped or non-convex outlines.
	// Pair them up from left to right.
	slices.SortFunc(r.found, func(i, j int) int {
		return cmp.Compare(p.edges[i].x, p.edges[j].x)
	})
	n := len(r.found)
	for k := 0; k+1 < n; k += 2 {
		r.pairs = append(r.pairs, r.newEdgePair(pi, r.found[k], r.found[k+1]))
	}
	if n%2 == 1 {
		p.unpaired = append(p.unpaired, r.found[n-1])
	}
}

// newEdgePair returns the span between two edges of polygon pi which start
// on the same scanline.
func (r *Rasteriser) newEdgePair(pi, a, b int) edgePair {
	p := &r.polys[pi]
	ea, eb := &p.edges[a], &p.edges[b]

	// On a tie the edge heading further left is the left edge.
	if ea.x > eb.x+tieEpsilon || (math.Abs(ea.x-eb.x) <= tieEpsilon && ea.step() > eb.step()) {
		a, b = b, a
		ea, eb = eb, ea
	}

	pair := edgePair{
		poly:  pi,
		left:  a,
		right: b,
		zl:    ea.z,
		zr:    eb.z,
	}
	if pl := &p.plane; pl.c >= planeEpsilon {
		pair.dzx = -pl.a / pl.c
		pair.dzy = pl.b / pl.c
	}
	if p.textures != nil {
		pair.tl = ea.tex
		pair.tr = eb.tex
	}
	return pair
}

// drawEdgePair fills the span of pair on the current scanline and advances
// the pair to the next scanline.
func (r *Rasteriser) drawEdgePair(pair *edgePair, row []byte) {
	p := &r.polys[pair.poly]
	left := &p.edges[pair.left]
	right := &p.edges[pair.right]

	end := right.x
	if pair.left == pair.right && left.kind == edgeHorizontal {
		end = left.endX
	}
	startX := int(math.Floor(left.x))
	endX := int(math.Floor(end))

	if startX < 0 || endX < 0 {
		Logger().Warn("zbuffer: bad edge pair skipped",
			"left", left.x, "right", end)
		r.Stats.BadPairs++
	} else {
		r.fillSpan(pair, p, startX, min(endX, r.width-1), row)
	}

	// Advance the interpolation state to the next scanline
	zlOld, zrOld := pair.zl, pair.zr
	tlOld, trOld := pair.tl, pair.tr
	pair.zl += pair.dzx*left.step() + pair.dzy
	pair.zr += pair.dzx*right.step() + pair.dzy
	if p.textures != nil && pair.zl != 0 && pair.zr != 0 {
		pair.tl = pair.tl.Mul(zlOld).Add(left.dtex).Mul(1 / pair.zl)
		pair.tr = pair.tr.Mul(zrOld).Add(right.dtex).Mul(1 / pair.zr)
	}

	// Exhausted edges stay in place until they are replaced.
	leftStepped := left.dy > 0
	if leftStepped {
		left.dy--
		left.x += left.step()
	}
	rightStepped := right.dy > 0 && pair.right != pair.left
	if rightStepped {
		right.dy--
		right.x += right.step()
	}

	// The replacement edge starts at its first scanline, which is the
	// scanline just drawn.  The other edge is rolled back by one step to
	// keep both sides on the same scanline.
	if left.dy <= 0 && right.dy >= 0 {
		if i, ok := p.takeUnpaired(left.x); ok {
			pair.left = i
			left = &p.edges[i]
			pair.zl = left.z
			pair.tl = left.tex

			if rightStepped {
				right.dy++
				right.x -= right.step()
				rightStepped = false
			}
			pair.zr, pair.tr = zrOld, trOld
		}
	}
	if right.dy <= 0 && left.dy >= 0 {
		if i, ok := p.takeUnpaired(right.x); ok {
			pair.right = i
			right = &p.edges[i]
			pair.zr = right.z
			pair.tr = right.tex

			if leftStepped {
				left.dy++
				left.x -= left.step()
			}
			pair.zl, pair.tl = zlOld, tlOld
		}
	}
}

// fillSpan draws the pixels startX…endX of the current scanline, keeping
// those which are closer to the viewer than what is already there.
func (r *Rasteriser) fillSpan(pair *edgePair, p *polygon, startX, endX int, row []byte) {
	n := endX - startX + 1
	if n <= 0 {
		return
	}

	z := pair.zl
	textured := p.textures != nil

	// Texture coordinates are interpolated after multiplying by the
	// reciprocal depth, and divided again at every pixel.
	var t, dt vec.Vec2
	if textured {
		zEnd := z + pair.dzx*float64(n)
		t = pair.tl
		dt = pair.tr.Mul(zEnd).Sub(pair.tl.Mul(z)).Mul(1 / float64(n))
	}

	c := p.color
	for x := startX; x <= endX; x++ {
		if z > r.zRow[x] {
			r.zRow[x] = z
			if textured {
				c = sampleTextures(p.textures, t)
			}
			px := row[4*x : 4*x+4 : 4*x+4]
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
			r.Stats.Pixels++
		}

		zPrev := z
		z += pair.dzx
		if textured && z != 0 {
			t = t.Mul(zPrev).Add(dt).Mul(1 / z)
		}
	}
}
