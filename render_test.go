package zbuffer

import (
	"image"
	"math"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/zbuffer/testcases"
)

// allScenes returns all test scenes, keyed by their full name.
func allScenes() map[string]testcases.TestCase {
	res := make(map[string]testcases.TestCase)
	for category, cases := range testcases.All {
		for _, tc := range cases {
			res[category+"_"+tc.Name] = tc
		}
	}
	return res
}

func TestScenes(t *testing.T) {
	scenes := allScenes()
	for _, name := range slices.Sorted(maps.Keys(scenes)) {
		tc := scenes[name]
		t.Run(name, func(t *testing.T) {
			buf, stats := renderScene(t, tc)

			if stats.BadEdges != 0 || stats.BadPairs != 0 {
				t.Errorf("malformed geometry: %+v", stats)
			}
			if stats.Faces != len(tc.Polygons) {
				t.Errorf("%d faces counted, want %d", stats.Faces, len(tc.Polygons))
			}
			culled := stats.OutOfDepth + stats.Backfacing + stats.ClippedAway
			if stats.Polygons+culled != stats.Faces {
				t.Errorf("faces not accounted for: %+v", stats)
			}

			drawn := 0
			for i := 0; i < len(buf); i += 4 {
				if (color.RGBA{buf[i], buf[i+1], buf[i+2], buf[i+3]}) != tc.Background {
					drawn++
				}
			}
			if stats.Polygons > 0 && drawn == 0 {
				t.Error("no pixels drawn")
				writeDebugImage(name, buf, nil, tc.Width, tc.Height)
			}
			if drawn > stats.Pixels {
				t.Errorf("%d pixels differ from the background, but only %d were drawn",
					drawn, stats.Pixels)
			}
		})
	}
}

// TestCoverage compares the pixels covered by flat polygons with the
// coverage computed by golang.org/x/image/vector.  The two rasterisers
// sample pixels differently, so the comparison allows for one pixel of
// slack: a drawn pixel must have some coverage in its 3×3 neighbourhood,
// and a pixel whose whole neighbourhood is covered must be drawn.
//
// Every replacement of an exhausted edge delays the rest of the span by one
// scanline.  The neighbourhood is extended upwards by the number of
// replacements, lag.
func TestCoverage(t *testing.T) {
	scenes := []struct {
		name string
		lag  int
	}{
		{"flat_triangle", 0},
		{"flat_full_square", 0},
		{"flat_pentagon", 0},
		{"depth_near_first", 0},
		{"depth_interpenetrating", 0},
		{"clip_right_edge", 2},
	}
	for _, sc := range scenes {
		name, lag := sc.name, sc.lag
		t.Run(name, func(t *testing.T) {
			tc := findScene(t, name)
			w, h := tc.Width, tc.Height
			buf, _ := renderScene(t, tc)

			r := NewRasteriser(w, h)
			r.MVP = tc.MVP
			z := vector.NewRasterizer(w, h)
			for _, f := range SceneFaces(tc) {
				outline, front := r.Outline(f)
				if !front {
					continue
				}
				z.MoveTo(float32(outline[0].X), float32(outline[0].Y))
				for _, p := range outline[1:] {
					z.LineTo(float32(p.X), float32(p.Y))
				}
				z.ClosePath()
			}
			cov := image.NewAlpha(image.Rect(0, 0, w, h))
			z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

			neighbourhood := func(x, y int) (lo, hi uint8) {
				lo = 255
				for yy := y - 1; yy <= y+1+lag; yy++ {
					for xx := x - 1; xx <= x+1; xx++ {
						var a uint8
						if xx >= 0 && xx < w && yy >= 0 && yy < h {
							a = cov.Pix[yy*cov.Stride+xx]
						}
						lo = min(lo, a)
						hi = max(hi, a)
					}
				}
				return lo, hi
			}

			bad := 0
			for y := range h {
				for x := range w {
					drawn := pixelAt(buf, w, x, y) != tc.Background
					lo, hi := neighbourhood(x, y)
					if drawn && hi == 0 {
						t.Errorf("pixel (%d,%d) drawn outside the polygon", x, y)
						bad++
					} else if !drawn && lo >= 250 {
						t.Errorf("pixel (%d,%d) inside the polygon not drawn", x, y)
						bad++
					}
					if bad > 10 {
						t.FailNow()
					}
				}
			}
			if bad > 0 {
				writeDebugImage(name, buf, cov.Pix, w, h)
			}
		})
	}
}

// TestClippedScenes checks polygons which extend past the viewport.
func TestClippedScenes(t *testing.T) {
	t.Run("right border", func(t *testing.T) {
		tc := findScene(t, "clip_right_edge")
		buf, _ := renderScene(t, tc)
		red := color.RGBA{R: 255, A: 255}
		for y := 20; y <= 40; y++ {
			if got := pixelAt(buf, tc.Width, tc.Width-1, y); got != red {
				t.Errorf("row %d: last pixel is %v, want %v", y, got, red)
			}
		}
	})

	t.Run("textured sides", func(t *testing.T) {
		tc := findScene(t, "clip_textured_sides")
		buf, _ := renderScene(t, tc)

		// The quad runs from x=-32 (depth 1) to x=95 (depth 2).  Clipping
		// must keep the texture mapping perspective correct.
		const zl, zr = 1.0, 0.5
		const y = 32
		for _, x := range []int{0, 16, 32, 48, 63} {
			s := float64(x+32) / 127
			want := 255 * s * zr / ((1-s)*zl + s*zr)
			got := int(pixelAt(buf, tc.Width, x, y).R)
			if math.Abs(float64(got)-want) > 8 {
				t.Errorf("x=%d: got red=%d, want %.1f", x, got, want)
			}
		}
	})
}

// writeDebugImage saves the rendered image (left) and, if given, the
// reference coverage (right) to debug/name.png.  Rows are flipped so that
// the image appears upright.
func writeDebugImage(name string, buf, coverage []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	panels := 1
	if coverage != nil {
		panels = 2
	}
	img := image.NewRGBA(image.Rect(0, 0, w*panels, h))
	for y := range h {
		row := h - 1 - y
		for x := range w {
			img.SetRGBA(x, row, pixelAt(buf, w, x, y))
			if coverage != nil {
				a := coverage[y*w+x]
				img.SetRGBA(x+w, row, color.RGBA{R: a, G: a, B: a, A: 255})
			}
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
