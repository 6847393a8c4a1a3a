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
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidFace is returned when a face cannot describe a polygon.
var ErrInvalidFace = errors.New("invalid face")

// Vertex is a point of a mesh.
type Vertex struct {
	Position mgl32.Vec3
	Color    color.RGBA
	TexCoord mgl32.Vec2 // not clamped; see [WrapMode]
}

// Face is a convex polygon of a mesh.
//
// Vertices is the vertex pool of the mesh; faces of the same mesh normally
// share it.  Indices lists the boundary of the face in order.  The colour of
// the first boundary vertex is used for untextured drawing.
type Face struct {
	Indices  []int
	Vertices []Vertex
	Textures []*Texture
}

// NewFace returns a face whose boundary is formed by vertices, in order.
func NewFace(vertices ...Vertex) *Face {
	idx := make([]int, len(vertices))
	for i := range idx {
		idx[i] = i
	}
	return &Face{Indices: idx, Vertices: vertices}
}

// vertex returns the i-th boundary vertex.
func (f *Face) vertex(i int) *Vertex {
	return &f.Vertices[f.Indices[i]]
}

func (f *Face) check() error {
	if f == nil {
		return fmt.Errorf("%w: nil face", ErrInvalidFace)
	}
	if len(f.Indices) < 3 {
		return fmt.Errorf("%w: %d vertices, need at least 3", ErrInvalidFace, len(f.Indices))
	}
	for _, idx := range f.Indices {
		if idx < 0 || idx >= len(f.Vertices) {
			return fmt.Errorf("%w: vertex index %d out of range [0,%d)",
				ErrInvalidFace, idx, len(f.Vertices))
		}
	}
	return nil
}
