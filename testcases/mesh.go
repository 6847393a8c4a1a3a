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

package testcases

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

var meshCases = []TestCase{
	{
		Name:       "cube",
		Width:      96,
		Height:     72,
		MVP:        cubeView(96, 72, 30),
		Polygons:   cube(false),
		Background: rgb(16, 16, 48),
	},
	{
		Name:       "cube_textured",
		Width:      96,
		Height:     72,
		MVP:        cubeView(96, 72, -20),
		Polygons:   cube(true),
		Texture:    Checker(4, 4),
		Background: rgb(16, 16, 48),
	},
}

// cubeView returns the transformation used for the cube scenes: the cube
// is rotated by angle degrees about the y axis and seen from above.
//
// Normalised device coordinates -0.5…0.5 cover the viewport, so the
// usual OpenGL projection is scaled by one half.
func cubeView(width, height int, angle float32) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	proj := mgl32.Scale3D(0.5, 0.5, 1).Mul4(mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100))
	view := mgl32.LookAtV(mgl32.Vec3{1.5, 2, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	model := mgl32.HomogRotate3DY(mgl32.DegToRad(angle))
	return proj.Mul4(view).Mul4(model)
}

// cube returns the six faces of the unit cube centred at the origin,
// counter-clockwise when seen from outside.
func cube(textured bool) []Polygon {
	const h = 0.5
	faces := []struct {
		corners [4]mgl32.Vec3
		color   color.RGBA
	}{
		{[4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}, red},
		{[4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, rgb(0, 255, 255)},
		{[4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}, green},
		{[4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, rgb(255, 0, 255)},
		{[4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}, blue},
		{[4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, rgb(255, 255, 0)},
	}
	uv := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	res := make([]Polygon, len(faces))
	for i, f := range faces {
		res[i].Textured = textured
		for j, pos := range f.corners {
			res[i].Vertices = append(res[i].Vertices, Vertex{
				Pos:   pos,
				Color: f.color,
				UV:    uv[j],
			})
		}
	}
	return res
}
