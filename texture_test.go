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
	"image"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestTextureChannels(t *testing.T) {
	// 2×2 textures; the bottom-left texel is the second row in Pix
	cases := []struct {
		channels int
		pix      []byte
		want     color.RGBA
	}{
		{1, []byte{0, 0, 7, 0}, color.RGBA{7, 7, 7, 255}},
		{2, []byte{0, 0, 0, 0, 200, 128, 0, 0}, color.RGBA{100, 100, 100, 128}},
		{3, []byte{0, 0, 0, 0, 0, 0, 1, 2, 3, 0, 0, 0}, color.RGBA{1, 2, 3, 255}},
		{4, []byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 0, 0, 0, 0}, color.RGBA{1, 2, 3, 4}},
	}
	for _, c := range cases {
		tex := &Texture{Width: 2, Height: 2, Channels: c.channels, Pix: c.pix}
		if got := tex.At(vec.Vec2{X: 0, Y: 0}); got != c.want {
			t.Errorf("%d channels: got %v, want %v", c.channels, got, c.want)
		}
	}
}

func TestTextureWrap(t *testing.T) {
	// one row, texel value = column
	tex := &Texture{Width: 5, Height: 1, Channels: 1, Pix: []byte{0, 1, 2, 3, 4}}

	cases := []struct {
		wrap WrapMode
		u    float64
		want uint8
	}{
		{WrapClamp, 0, 0},
		{WrapClamp, 0.5, 2},
		{WrapClamp, 1, 4},
		{WrapClamp, 1.7, 4},
		{WrapClamp, -0.3, 0},
		{WrapClamp, math.NaN(), 0},
		{WrapRepeat, 1.25, 1},
		{WrapRepeat, -0.25, 3},
		{WrapRepeat, 2, 0},
	}
	for _, c := range cases {
		tex.Wrap = c.wrap
		if got := tex.At(vec.Vec2{X: c.u, Y: 0.5}).R; got != c.want {
			t.Errorf("wrap %d, u=%g: got %d, want %d", c.wrap, c.u, got, c.want)
		}
	}
}

func TestNewTexture(t *testing.T) {
	img := image.NewGray(image.Rect(2, 3, 5, 5))
	for y := 3; y < 5; y++ {
		for x := 2; x < 5; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(10*y + x)})
		}
	}

	tex := NewTexture(img)
	if tex.Width != 3 || tex.Height != 2 || tex.Channels != 4 {
		t.Fatalf("got %dx%d texture with %d channels", tex.Width, tex.Height, tex.Channels)
	}

	// t=1 is the top row of the image
	if got := tex.At(vec.Vec2{X: 0, Y: 1}); got != (color.RGBA{32, 32, 32, 255}) {
		t.Errorf("top left: got %v", got)
	}
	if got := tex.At(vec.Vec2{X: 1, Y: 0}); got != (color.RGBA{44, 44, 44, 255}) {
		t.Errorf("bottom right: got %v", got)
	}
}

func TestNewTextureScaled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	tex := NewTextureScaled(img, 4, 4)
	if tex.Width != 4 || tex.Height != 4 {
		t.Fatalf("got %dx%d texture", tex.Width, tex.Height)
	}
	for y := range 4 {
		for x := range 4 {
			want := img.RGBAAt(x/2, y/2)
			p := tex.Pix[4*(y*4+x):]
			if got := (color.RGBA{p[0], p[1], p[2], p[3]}); got != want {
				t.Errorf("texel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSampleTextures(t *testing.T) {
	a := &Texture{Width: 1, Height: 1, Channels: 4, Pix: []byte{100, 0, 10, 255}}
	b := &Texture{Width: 1, Height: 1, Channels: 3, Pix: []byte{201, 50, 20}}

	got := sampleTextures([]*Texture{a, b}, vec.Vec2{X: 0.5, Y: 0.5})
	want := color.RGBA{150, 25, 15, 255}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
