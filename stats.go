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

// Stats counts the fate of faces and spans during one frame.
// Only BadEdges and BadPairs indicate a problem; the other
// counters describe normal culling.
type Stats struct {
	Faces       int // faces passed to InsertPolygon
	Polygons    int // faces staged for drawing
	OutOfDepth  int // faces outside the Near…Far range
	Backfacing  int // faces pointing away from the viewer
	ClippedAway int // faces entirely outside the viewport
	BadEdges    int // polygons discarded because an edge left the viewport
	BadPairs    int // spans skipped because of a negative x range
	Pixels      int // pixels which passed the depth test
}
