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

//go:generate go run ./testcases/export

import (
	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/zbuffer/testcases"
)

// SceneFaces converts the polygons of a test case into faces.
// All textured polygons share one texture, made from tc.Texture.
func SceneFaces(tc testcases.TestCase) []*Face {
	var tex []*Texture
	if tc.Texture != nil {
		tex = []*Texture{NewTexture(tc.Texture)}
	}

	faces := make([]*Face, len(tc.Polygons))
	for i, poly := range tc.Polygons {
		vertices := make([]Vertex, len(poly.Vertices))
		for j, v := range poly.Vertices {
			vertices[j] = Vertex{Position: v.Pos, Color: v.Color, TexCoord: v.UV}
		}
		f := NewFace(vertices...)
		if poly.Textured {
			f.Textures = tex
		}
		faces[i] = f
	}
	return faces
}

// SceneRasteriser returns a Rasteriser set up for a test case, with all
// faces of the scene inserted.
func SceneRasteriser(tc testcases.TestCase) (*Rasteriser, error) {
	r := NewRasteriser(tc.Width, tc.Height)
	// zero-value means identity, which is already the default
	if tc.MVP != (mgl32.Mat4{}) {
		r.MVP = tc.MVP
	}
	r.Background = tc.Background

	if err := r.InsertFaces(SceneFaces(tc), true); err != nil {
		return nil, err
	}
	return r, nil
}

// RenderExample renders a test case into buf, which must hold
// tc.Width*tc.Height RGBA pixels.
func RenderExample(tc testcases.TestCase, buf []byte) (Stats, error) {
	r, err := SceneRasteriser(tc)
	if err != nil {
		return Stats{}, err
	}
	if err := r.Draw(buf); err != nil {
		return Stats{}, err
	}
	return r.Stats, nil
}
