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

// Package zbuffer draws projected 3D polygons into an RGBA pixel buffer,
// using the scan-line Z-buffer algorithm.
//
// Polygons are staged with [Rasteriser.InsertPolygon].  Each polygon is
// projected, culled, clipped to the viewport and broken into edges, which
// are filed under the first scanline the polygon covers.  [Rasteriser.Draw]
// then visits the scanlines from top to bottom.  On every scanline, pairs of
// edges of the same polygon delimit a horizontal span.  Depth and texture
// coordinates are interpolated incrementally along the span, using the
// reciprocal depth to keep texture mapping perspective correct, and a
// Z-buffer of a single row decides visibility.
//
// Faces must be convex.  Polygons which are clipped at a corner of the
// viewport are closed by a straight edge between the two clip points, which
// cuts off the corner.
package zbuffer

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// ErrBufferSize is returned by [Rasteriser.Draw] if the pixel buffer does
// not match the viewport.
var ErrBufferSize = errors.New("wrong buffer size")

// Rasteriser converts polygons into pixels.  The caller creates one
// instance per viewport and reuses it for every frame, calling Reset in
// between.  Internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// MVP maps model coordinates to clip space.  It is applied when a
	// polygon is inserted.
	MVP mgl32.Mat4

	// Background is written to every pixel before polygons are drawn.
	Background color.RGBA

	// Near and Far bound the clip-space w coordinate of visible faces.
	// Faces with a vertex closer than Near, or with all vertices beyond
	// Far, are dropped.  Zero disables the corresponding test.  Faces
	// reaching behind the eye (w <= 0) are always dropped.
	Near, Far float32

	// Stats counts what happened to the faces of the current frame.
	Stats Stats

	width, height int
	viewport      matrix.Matrix // normalised device coordinates to pixels
	clip          rect.Rect     // pixel centres of the viewport

	polys   []polygon  // all staged polygons
	buckets [][]int    // per scanline: indices into polys starting there
	active  []int      // indices of polygons crossing the current scanline
	pairs   []edgePair // spans on the current scanline
	zRow    []float64  // reciprocal depth of the current scanline
	found   []int      // scratch: edges starting on the current scanline

	// Polygon construction state (used by InsertPolygon/addEdge)
	projected    []point
	polyTop      int
	polyBottom   int
	polyTextured bool
	badEdge      bool
}

// NewRasteriser returns a Rasteriser for a viewport of the given size, with
// an identity transformation and an opaque black background.
func NewRasteriser(width, height int) *Rasteriser {
	w := float64(width - 1)
	h := float64(height - 1)
	return &Rasteriser{
		MVP:        mgl32.Ident4(),
		Background: color.RGBA{A: 255},

		width:    width,
		height:   height,
		viewport: matrix.Matrix{w, 0, 0, h, 0.5 * w, 0.5 * h},
		clip:     rect.Rect{LLx: 0, LLy: 0, URx: w, URy: h},
		buckets:  make([][]int, height),
		zRow:     make([]float64, width),
	}
}

// Width returns the width of the viewport in pixels.
func (r *Rasteriser) Width() int { return r.width }

// Height returns the height of the viewport in pixels.
func (r *Rasteriser) Height() int { return r.height }

// Perspective returns a perspective projection for the viewport, with
// vertical field of view fovy (in radians) and the clipping distances
// r.Near and r.Far.  Near and Far must be positive.
//
// The projection maps normalised device coordinates -0.5…0.5 onto the
// viewport, so it is scaled by one half compared to the usual OpenGL
// convention.
func (r *Rasteriser) Perspective(fovy float32) mgl32.Mat4 {
	aspect := float32(r.width) / float32(r.height)
	return mgl32.Scale3D(0.5, 0.5, 1).Mul4(mgl32.Perspective(fovy, aspect, r.Near, r.Far))
}

// Reset discards all staged polygons and clears the statistics, keeping the
// allocated memory for reuse.
//
// Draw consumes the staged polygons, so Reset must be called before the
// polygons of the next frame are inserted.
func (r *Rasteriser) Reset() {
	for i := range r.buckets {
		r.buckets[i] = r.buckets[i][:0]
	}
	r.polys = r.polys[:0]
	r.active = r.active[:0]
	r.pairs = r.pairs[:0]
	r.Stats = Stats{}
}

// Draw renders all staged polygons into buf.
//
// buf must hold Width()*Height() RGBA pixels, 4 bytes each.  Pixel (x, y)
// is stored at offset 4*(y*Width()+x), where y grows with the clip-space
// y coordinate.  Every pixel of buf is overwritten.
func (r *Rasteriser) Draw(buf []byte) error {
	return r.DrawContext(context.Background(), buf)
}

// DrawContext is like [Rasteriser.Draw], but stops early if ctx is
// cancelled.  Cancellation is checked between scanlines; the scanlines
// not reached are left unchanged.
func (r *Rasteriser) DrawContext(ctx context.Context, buf []byte) error {
	stride := 4 * r.width
	if len(buf) != stride*r.height {
		return fmt.Errorf("%w: have %d bytes, need %d for %dx%d pixels",
			ErrBufferSize, len(buf), stride*r.height, r.width, r.height)
	}

	r.active = r.active[:0]
	r.pairs = r.pairs[:0]
	for y := r.height - 1; y >= 0; y-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.drawLine(y, buf[y*stride:(y+1)*stride])
	}

	Logger().Debug("zbuffer: frame done",
		"faces", r.Stats.Faces,
		"polygons", r.Stats.Polygons,
		"pixels", r.Stats.Pixels,
		"badEdges", r.Stats.BadEdges,
		"badPairs", r.Stats.BadPairs)
	return nil
}

// Numerical tolerances.
const (
	// samePixelLimit is the distance (in pixels) below which two points
	// are considered to coincide.  It is used both to close gaps left by
	// clipping and to find a replacement for an exhausted edge.
	samePixelLimit = 0.5

	// backfaceEpsilon is the smallest z component of a screen-space face
	// normal which counts as facing the viewer.
	backfaceEpsilon = 1e-6

	// tieEpsilon is the distance (in pixels) below which two edges are
	// considered to start at the same x coordinate.
	tieEpsilon = 1e-6

	// planeEpsilon is the smallest depth-plane coefficient c for which
	// depth gradients are computed.
	planeEpsilon = 1e-9
)

var negInf = math.Inf(-1)
