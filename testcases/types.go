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

// Package testcases defines the scenes used to test and benchmark the
// rasteriser.
//
// Most scenes are specified in pixel coordinates: [ScreenMVP] maps a
// vertex built by [ScreenVertex] exactly onto the requested pixel position,
// with the given depth as clip-space w.
package testcases

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"seehuhn.de/go/geom/path"
)

// TestCase defines a single scene.
type TestCase struct {
	Name       string     // lowercase a-z, 0-9 and _ only
	Width      int        // viewport width in pixels
	Height     int        // viewport height in pixels
	MVP        mgl32.Mat4 // transformation (zero-value means identity)
	Polygons   []Polygon  // faces, in insertion order
	Texture    image.Image
	Background color.RGBA
}

// Polygon is one convex face of a scene.
type Polygon struct {
	Vertices []Vertex
	Textured bool // map Texture onto the face
}

// Vertex is a corner of a face.
type Vertex struct {
	Pos   mgl32.Vec3
	Color color.RGBA
	UV    mgl32.Vec2
}

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ScreenMVP returns a transformation which maps (x, y, w) to clip space
// (x, y, 0, w).  Combined with [ScreenVertex] this places vertices at given
// pixel positions with given depth.
func ScreenMVP() mgl32.Mat4 {
	return mgl32.Mat4FromRows(
		mgl32.Vec4{1, 0, 0, 0},
		mgl32.Vec4{0, 1, 0, 0},
		mgl32.Vec4{0, 0, 0, 0},
		mgl32.Vec4{0, 0, 1, 0},
	)
}

// ScreenVertex returns the model coordinates which [ScreenMVP] maps to pixel
// position (x, y) of a width×height viewport, with clip-space w = depth.
func ScreenVertex(width, height int, x, y, depth float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(x/float32(width-1) - 0.5) * depth,
		(y/float32(height-1) - 0.5) * depth,
		depth,
	}
}

// flat turns a closed outline, given in pixel coordinates, into a face of
// constant depth and colour.  Only straight segments are supported.
func flat(p path.Path, width, height int, depth float32, c color.RGBA) Polygon {
	var poly Polygon
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			pt := pts[0]
			poly.Vertices = append(poly.Vertices, Vertex{
				Pos:   ScreenVertex(width, height, float32(pt.X), float32(pt.Y), depth),
				Color: c,
			})
		}
	}
	return poly
}

// screenQuad returns a textured rectangle from (x0, y0) to (x1, y1), with
// depth d0 along the left side and d1 along the right side.
func screenQuad(width, height int, x0, y0, x1, y1, d0, d1 float32) Polygon {
	v := func(x, y, d, u, t float32) Vertex {
		return Vertex{
			Pos:   ScreenVertex(width, height, x, y, d),
			Color: white,
			UV:    mgl32.Vec2{u, t},
		}
	}
	return Polygon{
		Vertices: []Vertex{
			v(x0, y0, d0, 0, 0),
			v(x1, y0, d1, 1, 0),
			v(x1, y1, d1, 1, 1),
			v(x0, y1, d0, 0, 1),
		},
		Textured: true,
	}
}
