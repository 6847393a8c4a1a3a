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
	"image"
	"image/color"
)

var textureCases = []TestCase{
	{
		// depth 1 at the left edge, 2 at the right edge
		Name:       "perspective_gradient",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{screenQuad(64, 64, 0, 0, 63, 63, 1, 2)},
		Texture:    GradientX(256),
		Background: black,
	},
	{
		Name:       "checker_affine",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{screenQuad(64, 64, 8, 8, 55, 55, 1, 1)},
		Texture:    Checker(8, 8),
		Background: black,
	},
	{
		Name:       "checker_perspective",
		Width:      64,
		Height:     64,
		MVP:        ScreenMVP(),
		Polygons:   []Polygon{screenQuad(64, 64, 0, 8, 63, 55, 1, 4)},
		Texture:    Checker(8, 8),
		Background: black,
	},
}

// GradientX returns an image of the given width and height one, whose red
// channel equals the column index.  width must not exceed 256.
func GradientX(width int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, 1))
	for x := range width {
		img.SetRGBA(x, 0, color.RGBA{R: uint8(x), A: 255})
	}
	return img
}

// Checker returns a black and white checkerboard with n×n cells of
// size×size pixels.
func Checker(n, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, n*size, n*size))
	for y := range n * size {
		for x := range n * size {
			c := black
			if (x/size+y/size)%2 == 0 {
				c = white
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
