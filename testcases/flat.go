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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var flatCases = []TestCase{
	{
		Name:       "triangle",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{flat(triangle(10, 10, 50, 10, 30, 50), 64, 64, 1, red)},
		Background: black,
	},
	{
		Name:       "full_square",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{flat(rectangle(0, 0, 63, 63), 64, 64, 1, green)},
		Background: black,
	},
	{
		Name:       "pentagon",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{flat(regularPolygon(32, 32, 25, 5), 64, 64, 1, blue)},
		Background: black,
	},
	{
		// left and right outline bend on different scanlines
		Name:   "kite",
		Width:  64,
		Height: 64,
		MVP:    ScreenMVP(),
		Polygons: []Polygon{
			flat(polyline(30, 50, 10, 40, 30, 10, 50, 20), 64, 64, 1, white),
		},
		Background: black,
	},
}

var depthCases = []TestCase{
	{
		Name:   "near_first",
		Width:  64,
		Height: 64,
		MVP:    ScreenMVP(),
		Polygons: []Polygon{
			flat(rectangle(8, 8, 40, 40), 64, 64, 1, red),
			flat(rectangle(24, 24, 56, 56), 64, 64, 2, blue),
		},
		Background: black,
	},
	{
		Name:   "far_first",
		Width:  64,
		Height: 64,
		MVP:    ScreenMVP(),
		Polygons: []Polygon{
			flat(rectangle(24, 24, 56, 56), 64, 64, 2, blue),
			flat(rectangle(8, 8, 40, 40), 64, 64, 1, red),
		},
		Background: black,
	},
	{
		// a sloped triangle piercing a flat one
		Name:   "interpenetrating",
		Width:  64,
		Height: 64,
		MVP:    ScreenMVP(),
		Polygons: []Polygon{
			flat(triangle(4, 8, 60, 8, 32, 56), 64, 64, 2, green),
			{Vertices: []Vertex{
				{Pos: ScreenVertex(64, 64, 4, 56, 1), Color: red},
				{Pos: ScreenVertex(64, 64, 32, 8, 2), Color: red},
				{Pos: ScreenVertex(64, 64, 60, 56, 4), Color: red},
			}},
		},
		Background: black,
	},
}

// triangle builds a triangular outline.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polyline(x1, y1, x2, y2, x3, y3)
}

// rectangle builds an axis-parallel rectangle, counter-clockwise.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polyline(x1, y1, x2, y1, x2, y2, x1, y2)
}

// polyline builds a closed outline through the points (xy[0], xy[1]),
// (xy[2], xy[3]), ...
func polyline(xy ...float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		cmd := path.CmdMoveTo
		for i := 0; i+1 < len(xy); i += 2 {
			if !yield(cmd, []vec.Vec2{{X: xy[i], Y: xy[i+1]}}) {
				return
			}
			cmd = path.CmdLineTo
		}
		yield(path.CmdClose, nil)
	}
}

// regularPolygon builds a regular n-gon, counter-clockwise.
func regularPolygon(cx, cy, r float64, n int) path.Path {
	xy := make([]float64, 0, 2*n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) + math.Pi/2
		xy = append(xy,
			math.Round(cx+r*math.Cos(angle)),
			math.Round(cy+r*math.Sin(angle)))
	}
	return polyline(xy...)
}

// rgb returns an opaque colour.
func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
