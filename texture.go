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

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/vec"
)

// WrapMode selects how texture coordinates outside [0,1] are mapped.
type WrapMode int

const (
	// WrapClamp clamps coordinates to the edge of the texture.
	WrapClamp WrapMode = iota

	// WrapRepeat tiles the texture.
	WrapRepeat
)

// Texture is a decoded image, addressed by nearest-neighbour lookup.
//
// Pix holds Height rows of Width pixels, each pixel using Channels bytes.
// The first row in Pix is the top of the image, texture coordinate t=0
// refers to the bottom row.  Channels must be between 1 and 4:
// grey, grey+alpha, RGB or RGBA.  Colours with alpha are stored with
// premultiplied alpha, as in [image.RGBA], except for grey+alpha which
// uses straight alpha and is premultiplied on lookup.
type Texture struct {
	Width, Height int
	Channels      int
	Pix           []byte
	Wrap          WrapMode
}

// NewTexture converts img into an RGBA texture.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return fromRGBA(dst)
}

// NewTextureScaled converts img into an RGBA texture of the given size,
// using nearest-neighbour resampling.
func NewTextureScaled(img image.Image, width, height int) *Texture {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return fromRGBA(dst)
}

func fromRGBA(img *image.RGBA) *Texture {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := make([]byte, w*h*4)
	for y := range h {
		copy(pix[y*w*4:(y+1)*w*4], img.Pix[y*img.Stride:])
	}
	return &Texture{Width: w, Height: h, Channels: 4, Pix: pix}
}

// At returns the texel nearest to the texture coordinate uv.
func (t *Texture) At(uv vec.Vec2) color.RGBA {
	s := t.wrap(uv.X) * float64(t.Width-1)
	r := t.wrap(uv.Y) * float64(t.Height-1)
	u := int(math.Round(s))
	v := t.Height - 1 - int(math.Round(r))

	p := t.Pix[(v*t.Width+u)*t.Channels:]
	switch t.Channels {
	case 1:
		return color.RGBA{p[0], p[0], p[0], 255}
	case 2:
		g := uint8(uint16(p[0]) * uint16(p[1]) / 255)
		return color.RGBA{g, g, g, p[1]}
	case 3:
		return color.RGBA{p[0], p[1], p[2], 255}
	default:
		return color.RGBA{p[0], p[1], p[2], p[3]}
	}
}

func (t *Texture) wrap(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	if t.Wrap == WrapRepeat {
		x -= math.Floor(x)
	}
	return min(max(x, 0), 1)
}

// sampleTextures averages the texels of all textures at uv.
func sampleTextures(textures []*Texture, uv vec.Vec2) color.RGBA {
	if len(textures) == 1 {
		return textures[0].At(uv)
	}
	var sum [4]int
	for _, t := range textures {
		c := t.At(uv)
		sum[0] += int(c.R)
		sum[1] += int(c.G)
		sum[2] += int(c.B)
		sum[3] += int(c.A)
	}
	n := len(textures)
	return color.RGBA{
		R: uint8(sum[0] / n),
		G: uint8(sum[1] / n),
		B: uint8(sum[2] / n),
		A: uint8(sum[3] / n),
	}
}
