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

var clipCases = []TestCase{
	{
		Name:       "right_edge",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{flat(triangle(40, 10, 100, 30, 40, 50), 64, 64, 1, red)},
		Background: black,
	},
	{
		Name:       "offscreen",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{flat(triangle(-50, 10, -10, 10, -30, 50), 64, 64, 1, red)},
		Background: black,
	},
	{
		// clipped at the top and at the right; the corner is cut off
		Name:       "corner",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{flat(triangle(40, 40, 90, 40, 40, 90), 64, 64, 1, green)},
		Background: black,
	},
	{
		Name:       "textured_sides",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{screenQuad(64, 64, -32, 0, 95, 63, 1, 2)},
		Texture:    GradientX(256),
		Background: black,
	},
	{
		// clipped at the left and at the bottom; the corner at the origin
		// is cut off, so the lowest rows start right of x=0
		Name:   "bottom_left",
		Width:  48,
		Height: 32,
		MVP:    ScreenMVP(),
		Polygons: []Polygon{
			flat(triangle(-20, 10, 30, -20, 30, 25), 48, 32, 1, blue),
		},
		Background: rgb(32, 32, 32),
	},
}
