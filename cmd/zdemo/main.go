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

// Command zdemo renders one of the test scenes to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	_ "golang.org/x/image/bmp"

	"seehuhn.de/go/zbuffer"
	"seehuhn.de/go/zbuffer/testcases"
)

func main() {
	var (
		scene   = flag.String("scene", "mesh_cube_textured", "scene to render")
		output  = flag.String("o", "zdemo.png", "output file")
		texFile = flag.String("texture", "", "replace the scene texture by an image file (PNG, JPEG or BMP)")
		texSize = flag.Int("texsize", 0, "resample the texture to this many pixels square")
		list    = flag.Bool("list", false, "list the available scenes and exit")
		verbose = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Parse()

	if *list {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				fmt.Println(category + "_" + tc.Name)
			}
		}
		return
	}

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		zbuffer.SetLogger(slog.New(h))
	}

	tc, ok := testcases.Find(*scene)
	if !ok {
		log.Fatalf("unknown scene %q (use -list)", *scene)
	}

	faces := zbuffer.SceneFaces(tc)
	if *texFile != "" {
		tex, err := loadTexture(*texFile, *texSize)
		if err != nil {
			log.Fatal(err)
		}
		for _, f := range faces {
			if len(f.Textures) > 0 {
				f.Textures = []*zbuffer.Texture{tex}
			}
		}
	}

	r := zbuffer.NewRasteriser(tc.Width, tc.Height)
	if tc.MVP != (mgl32.Mat4{}) {
		r.MVP = tc.MVP
	}
	r.Background = tc.Background
	if err := r.InsertFaces(faces, true); err != nil {
		log.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	buf := make([]byte, len(img.Pix))
	if err := r.Draw(buf); err != nil {
		log.Fatal(err)
	}

	// The rasteriser stores the bottom row first, PNG the top row.
	stride := 4 * tc.Width
	for y := range tc.Height {
		src := buf[(tc.Height-1-y)*stride : (tc.Height-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}

	if err := writePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("%s saved to %s (%dx%d, %d polygons, %d pixels)",
		*scene, *output, tc.Width, tc.Height, r.Stats.Polygons, r.Stats.Pixels)
}

func loadTexture(fname string, size int) (*zbuffer.Texture, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if size > 0 {
		return zbuffer.NewTextureScaled(img, size, size), nil
	}
	return zbuffer.NewTexture(img), nil
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
