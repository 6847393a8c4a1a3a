// Command export writes the test scenes to JSON, for inspection with
// external tools.  Run from the module root directory.
package main

import (
	"encoding/json"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/zbuffer"
	"seehuhn.de/go/zbuffer/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	MVP        [16]float32   `json:"mvp"`
	Background [4]uint8      `json:"background"`
	Textured   bool          `json:"textured,omitempty"`
	Polygons   []jsonPolygon `json:"polygons"`
}

type jsonPolygon struct {
	Model   [][3]float32 `json:"model"`
	Screen  [][2]float64 `json:"screen,omitempty"`
	Front   bool         `json:"front"`
	Color   [4]uint8     `json:"color"`
	UV      [][2]float32 `json:"uv,omitempty"`
	Texture bool         `json:"texture,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	bg := tc.Background
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		MVP:        tc.MVP,
		Background: [4]uint8{bg.R, bg.G, bg.B, bg.A},
		Textured:   tc.Texture != nil,
	}
	if tc.MVP == (mgl32.Mat4{}) {
		jtc.MVP = mgl32.Ident4()
	}

	r := zbuffer.NewRasteriser(tc.Width, tc.Height)
	r.MVP = jtc.MVP
	faces := zbuffer.SceneFaces(tc)
	for i, poly := range tc.Polygons {
		c := poly.Vertices[0].Color
		jp := jsonPolygon{
			Color:   [4]uint8{c.R, c.G, c.B, c.A},
			Texture: poly.Textured,
		}
		for _, v := range poly.Vertices {
			jp.Model = append(jp.Model, v.Pos)
			if poly.Textured {
				jp.UV = append(jp.UV, v.UV)
			}
		}
		outline, front := r.Outline(faces[i])
		for _, p := range outline {
			jp.Screen = append(jp.Screen, [2]float64{p.X, p.Y})
		}
		jp.Front = front
		jtc.Polygons = append(jtc.Polygons, jp)
	}
	return jtc
}
