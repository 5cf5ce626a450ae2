package render

import (
	"testing"

	"github.com/chewxy/math32"
)

const ink = 0xFFFFFFFF

func lit(fb *FrameBuffer) map[Point]bool {
	out := make(map[Point]bool)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.Pixel(x, y) == ink {
				out[Point{x, y}] = true
			}
		}
	}
	return out
}

func samePixels(a, b map[Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

func TestDrawLineIsSymmetric(t *testing.T) {
	cases := [][2]Point{
		{{0, 0}, {19, 7}},
		{{3, 17}, {15, 2}},
		{{10, 1}, {11, 18}},
		{{2, 9}, {18, 9}},
		{{5, 0}, {5, 19}},
		{{0, 0}, {19, 19}},
		{{19, 0}, {0, 19}},
		{{-5, 4}, {25, 13}},
	}
	for _, tc := range cases {
		fwd := NewFrameBuffer(20, 20)
		rev := NewFrameBuffer(20, 20)
		DrawLine(fwd, tc[0], tc[1], ink)
		DrawLine(rev, tc[1], tc[0], ink)
		if !samePixels(lit(fwd), lit(rev)) {
			t.Errorf("line %v-%v differs when reversed", tc[0], tc[1])
		}
	}
}

func TestDrawLineDegenerateCases(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	DrawLine(fb, Point{1, 4}, Point{6, 4}, ink)
	px := lit(fb)
	if len(px) != 6 {
		t.Fatalf("horizontal: %d pixels, want 6", len(px))
	}
	for x := 1; x <= 6; x++ {
		if !px[Point{x, 4}] {
			t.Fatalf("horizontal: missing (%d,4)", x)
		}
	}

	fb = NewFrameBuffer(10, 10)
	DrawLine(fb, Point{3, 8}, Point{3, 2}, ink)
	if px := lit(fb); len(px) != 7 {
		t.Fatalf("vertical: %d pixels, want 7", len(px))
	}

	fb = NewFrameBuffer(10, 10)
	DrawLine(fb, Point{0, 0}, Point{4, 4}, ink)
	px = lit(fb)
	if len(px) != 5 {
		t.Fatalf("diagonal: %d pixels, want 5", len(px))
	}
	for i := 0; i <= 4; i++ {
		if !px[Point{i, i}] {
			t.Fatalf("diagonal: missing (%d,%d)", i, i)
		}
	}

	fb = NewFrameBuffer(10, 10)
	DrawLine(fb, Point{5, 5}, Point{5, 5}, ink)
	if px := lit(fb); len(px) != 1 || !px[Point{5, 5}] {
		t.Fatalf("point line: %v", px)
	}
}

func TestDrawCircleIsEightWaySymmetric(t *testing.T) {
	fb := NewFrameBuffer(41, 41)
	c := Point{20, 20}
	DrawCircle(fb, c, 12, ink)
	px := lit(fb)
	if len(px) == 0 {
		t.Fatal("circle drew nothing")
	}
	for p := range px {
		dx, dy := p.X-c.X, p.Y-c.Y
		mirrors := []Point{
			{c.X + dx, c.Y - dy}, {c.X - dx, c.Y + dy}, {c.X - dx, c.Y - dy},
			{c.X + dy, c.Y + dx}, {c.X + dy, c.Y - dx}, {c.X - dy, c.Y + dx}, {c.X - dy, c.Y - dx},
		}
		for _, m := range mirrors {
			if !px[m] {
				t.Fatalf("pixel %v present but mirror %v missing", p, m)
			}
		}
	}
	for _, p := range []Point{{32, 20}, {8, 20}, {20, 32}, {20, 8}} {
		if !px[p] {
			t.Errorf("axis point %v missing", p)
		}
	}
	if px[c] {
		t.Error("outline filled its centre")
	}
}

func TestDrawCircleRadiusEdges(t *testing.T) {
	fb := NewFrameBuffer(5, 5)
	DrawCircle(fb, Point{2, 2}, -1, ink)
	if len(lit(fb)) != 0 {
		t.Fatal("negative radius drew pixels")
	}
	DrawCircle(fb, Point{2, 2}, 0, ink)
	if px := lit(fb); len(px) != 1 || !px[Point{2, 2}] {
		t.Fatalf("zero radius = %v, want centre only", px)
	}
}

func TestDrawFilledCircle(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	DrawFilledCircle(fb, Point{10, 10}, 3, ink)
	px := lit(fb)
	if len(px) != 29 {
		t.Fatalf("radius 3 filled %d pixels, want 29", len(px))
	}
	if !px[Point{7, 10}] || !px[Point{13, 10}] || !px[Point{10, 7}] || !px[Point{10, 13}] {
		t.Fatal("extreme points missing")
	}
	if px[Point{7, 7}] {
		t.Fatal("corner outside the circle was filled")
	}

	for _, r := range []int{0, -4} {
		fb := NewFrameBuffer(20, 20)
		DrawFilledCircle(fb, Point{10, 10}, r, ink)
		if len(lit(fb)) != 0 {
			t.Errorf("radius %d drew pixels", r)
		}
	}

	// Mostly off-screen circles clip without panicking.
	fb = NewFrameBuffer(20, 20)
	DrawFilledCircle(fb, Point{-5, 25}, 8, ink)
	DrawFilledCircle(fb, Point{1000, 1000}, 3, ink)
}

func TestHugeDiscsClipToBuffer(t *testing.T) {
	const radius = 100000
	centers := []Point{
		{4, radius + 3},  // top edge of the disc crosses row 3
		{-radius + 5, 4}, // right edge crosses column 5
		{4, 4},           // buffer entirely inside
		{radius * 3, 4},  // entirely off to the right
	}
	for _, c := range centers {
		want := make(map[Point]bool)
		for y := 0; y < 8; y++ {
			dy := y - c.Y
			if dy < -radius || dy > radius {
				continue
			}
			half := int(math32.Sqrt(float32(radius*radius - dy*dy)))
			for x := 0; x < 8; x++ {
				if x >= c.X-half && x <= c.X+half {
					want[Point{x, y}] = true
				}
			}
		}
		fb := NewFrameBuffer(8, 8)
		DrawFilledCircle(fb, c, radius, ink)
		if got := lit(fb); !samePixels(got, want) {
			t.Errorf("filled circle at %v: %d pixels, want %d", c, len(got), len(want))
		}

		wantDisk := make(map[Point]bool)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				dx, dy := x-c.X, y-c.Y
				if dx*dx+dy*dy <= radius*radius {
					wantDisk[Point{x, y}] = true
				}
			}
		}
		fb = NewFrameBuffer(8, 8)
		DrawTexturedDisk(fb, c, radius, 0, solidSampler(ink))
		if got := lit(fb); !samePixels(got, wantDisk) {
			t.Errorf("textured disk at %v: %d pixels, want %d", c, len(got), len(wantDisk))
		}
	}
}

func TestDrawTriangleWindingInvariant(t *testing.T) {
	tris := [][3]Point{
		{{2, 2}, {30, 5}, {12, 28}},
		{{5, 25}, {25, 25}, {15, 3}},
		{{0, 0}, {31, 0}, {0, 31}},
		{{-10, 4}, {40, 12}, {8, 40}},
		{{3, 3}, {28, 9}, {6, 10}},
	}
	for _, tri := range tris {
		a, b, c := tri[0], tri[1], tri[2]
		ccw := NewFrameBuffer(32, 32)
		cw := NewFrameBuffer(32, 32)
		rot := NewFrameBuffer(32, 32)
		DrawTriangle(ccw, a, b, c, ink)
		DrawTriangle(cw, c, b, a, ink)
		DrawTriangle(rot, b, a, c, ink)

		want := lit(ccw)
		if len(want) == 0 {
			t.Errorf("triangle %v drew nothing", tri)
			continue
		}
		if !samePixels(want, lit(cw)) {
			t.Errorf("triangle %v: reversed winding fills a different set", tri)
		}
		if !samePixels(want, lit(rot)) {
			t.Errorf("triangle %v: swapped vertices fill a different set", tri)
		}
		for _, v := range tri {
			if v.X >= 0 && v.X < 32 && v.Y >= 0 && v.Y < 32 && !want[v] {
				t.Errorf("triangle %v: vertex %v not filled", tri, v)
			}
		}
	}
}

func TestDrawTriangleDegenerate(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	DrawTriangle(fb, Point{1, 1}, Point{5, 5}, Point{8, 8}, ink)
	if len(lit(fb)) != 0 {
		t.Fatal("collinear triangle drew pixels")
	}
	DrawTriangle(fb, Point{20, 20}, Point{30, 20}, Point{25, 30}, ink)
	if len(lit(fb)) != 0 {
		t.Fatal("off-screen triangle drew pixels")
	}
}

type solidSampler uint32

func (s solidSampler) Sample(u, v float32) uint32 { return uint32(s) }

// halfSampler is white for the first half of longitudes, black otherwise.
type halfSampler struct{}

func (halfSampler) Sample(u, v float32) uint32 {
	if u < 0.5 {
		return ink
	}
	return ColorBlack
}

func TestDrawTexturedDiskStaysInsideDisc(t *testing.T) {
	const bg = 0xFF123456
	fb := NewFrameBuffer(30, 30)
	fb.Clear(bg)
	c := Point{15, 15}
	DrawTexturedDisk(fb, c, 6, 0, solidSampler(ink))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			dx, dy := x-c.X, y-c.Y
			inside := dx*dx+dy*dy <= 36
			got := fb.Pixel(x, y)
			if inside && got != ink {
				t.Fatalf("(%d,%d) inside disc = %#08x", x, y, got)
			}
			if !inside && got != bg {
				t.Fatalf("(%d,%d) outside disc was touched", x, y)
			}
		}
	}
}

func TestDrawTexturedDiskRotation(t *testing.T) {
	c := Point{10, 10}

	fb := NewFrameBuffer(21, 21)
	DrawTexturedDisk(fb, c, 8, 0.1, halfSampler{})
	if got := fb.Pixel(c.X, c.Y); got != ink {
		t.Fatalf("rotation 0.1: centre = %#08x, want white", got)
	}

	fb = NewFrameBuffer(21, 21)
	DrawTexturedDisk(fb, c, 8, math32.Pi+0.1, halfSampler{})
	if got := fb.Pixel(c.X, c.Y); got != ColorBlack {
		t.Fatalf("rotation pi+0.1: centre = %#08x, want black", got)
	}
}

func TestDrawTexturedDiskDegenerate(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	DrawTexturedDisk(fb, Point{5, 5}, 0, 0, solidSampler(ink))
	DrawTexturedDisk(fb, Point{5, 5}, -3, 0, solidSampler(ink))
	DrawTexturedDisk(fb, Point{5, 5}, 4, 0, nil)
	if len(lit(fb)) != 0 {
		t.Fatal("degenerate disc drew pixels")
	}
}

func TestFontDrawsGlyphs(t *testing.T) {
	f := NewFont()
	fb := NewFrameBuffer(60, 20)
	f.DrawText(fb, 2, 2, "A", ink)
	if len(lit(fb)) == 0 {
		t.Fatal("glyph A drew nothing")
	}
	blank := NewFrameBuffer(60, 20)
	f.DrawText(blank, 2, 2, "   ", ink)
	if len(lit(blank)) != 0 {
		t.Fatal("spaces drew pixels")
	}
	if got := TextWidth("héllo"); got != 5*GlyphWidth {
		t.Fatalf("TextWidth = %d", got)
	}
	// Off-screen text is clipped.
	f.DrawText(fb, -100, -100, "clip", ink)
}

func TestSkyboxIsDeterministic(t *testing.T) {
	a := NewFrameBuffer(64, 48)
	b := NewFrameBuffer(64, 48)
	DrawSkybox(a)
	DrawSkybox(b)
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("pixel %d differs between passes", i)
		}
		if a.Pixels[i]>>24 != 0xFF {
			t.Fatalf("pixel %d is not opaque", i)
		}
	}
	if c, ok := starAt(0, 0); !ok || c != ColorStarDim {
		t.Fatalf("starAt(0,0) = %#08x %v, want dim star", c, ok)
	}
}
