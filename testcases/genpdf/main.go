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

// Command genpdf draws the projected outlines of the test scenes into PDF
// files, one per scene, for visual comparison with the rendered images.
// Faces pointing towards the viewer are drawn in white, the others in grey.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/zbuffer"
	"seehuhn.de/go/zbuffer/testcases"
)

const outDir = "testdata/outline"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI).  Pixel centres
	// are at integer coordinates, so the page is shifted by half a pixel.
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// Both PDF and the rasteriser have y pointing up.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5, 0.5})

	page.SetLineWidth(0.5)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	r := zbuffer.NewRasteriser(tc.Width, tc.Height)
	if tc.MVP != (mgl32.Mat4{}) {
		r.MVP = tc.MVP
	}
	for _, f := range zbuffer.SceneFaces(tc) {
		outline, front := r.Outline(f)
		if outline == nil {
			continue
		}
		if front {
			page.SetStrokeColor(color.DeviceGray(1))
		} else {
			page.SetStrokeColor(color.DeviceGray(0.4))
		}
		page.MoveTo(outline[0].X, outline[0].Y)
		for _, p := range outline[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.ClosePath()
		page.Stroke()
	}

	return page.Close()
}
