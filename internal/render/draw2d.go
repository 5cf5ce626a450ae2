package render

import "github.com/chewxy/math32"

// Point is an integer screen coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Sampler returns the colour at a texture coordinate in [0,1]x[0,1].
type Sampler interface {
	Sample(u, v float32) uint32
}

// DrawLine plots an integer Bresenham line from p0 to p1, endpoints included.
// The endpoints are put in a fixed order first so that swapping them yields
// the same pixel set.
func DrawLine(fb *FrameBuffer, p0, p1 Point, c uint32) {
	if p1.X < p0.X || (p1.X == p0.X && p1.Y < p0.Y) {
		p0, p1 = p1, p0
	}
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		fb.PutPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle plots a circle outline with the midpoint algorithm.
func DrawCircle(fb *FrameBuffer, center Point, radius int, c uint32) {
	if radius < 0 {
		return
	}
	cx, cy := center.X, center.Y
	x := radius
	y := 0
	err := 1 - radius
	for x >= y {
		fb.PutPixel(cx+x, cy+y, c)
		fb.PutPixel(cx+y, cy+x, c)
		fb.PutPixel(cx-y, cy+x, c)
		fb.PutPixel(cx-x, cy+y, c)
		fb.PutPixel(cx-x, cy-y, c)
		fb.PutPixel(cx-y, cy-x, c)
		fb.PutPixel(cx+y, cy-x, c)
		fb.PutPixel(cx+x, cy-y, c)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// DrawFilledCircle fills one horizontal span per scanline. radius <= 0 draws
// nothing. Rows and spans are clipped to the buffer before iterating, so a
// huge radius costs no more than the screen area.
func DrawFilledCircle(fb *FrameBuffer, center Point, radius int, c uint32) {
	if radius <= 0 {
		return
	}
	r2 := radius * radius
	dy0, dy1 := max(-radius, -center.Y), min(radius, fb.Height-1-center.Y)
	for dy := dy0; dy <= dy1; dy++ {
		half := int(math32.Sqrt(float32(r2 - dy*dy)))
		x0, x1 := max(center.X-half, 0), min(center.X+half, fb.Width-1)
		row := fb.Pixels[(center.Y+dy)*fb.Width:]
		for x := x0; x <= x1; x++ {
			row[x] = c
		}
	}
}

// DrawTriangle fills every pixel whose edge functions against the three
// vertices all share the sign of the triangle's area. Either winding fills
// the same set; a zero-area triangle draws nothing.
func DrawTriangle(fb *FrameBuffer, p0, p1, p2 Point, c uint32) {
	area := edgeFn(p0, p1, p2)
	if area == 0 {
		return
	}
	if area < 0 {
		p1, p2 = p2, p1
	}

	minX, maxX := min(p0.X, p1.X, p2.X), max(p0.X, p1.X, p2.X)
	minY, maxY := min(p0.Y, p1.Y, p2.Y), max(p0.Y, p1.Y, p2.Y)
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{x, y}
			w0 := edgeFn(p1, p2, p)
			w1 := edgeFn(p2, p0, p)
			w2 := edgeFn(p0, p1, p)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			fb.PutPixel(x, y, c)
		}
	}
}

// DrawTexturedDisk paints a disc of the given screen radius as the visible
// hemisphere of a textured sphere. Each pixel is mapped back to longitude and
// latitude; rotation (radians) turns the sphere about its vertical axis.
// Pixels outside the disc are left alone.
func DrawTexturedDisk(fb *FrameBuffer, center Point, radius int, rotation float32, tex Sampler) {
	if radius <= 0 || tex == nil {
		return
	}
	rf := float32(radius)
	r2 := radius * radius
	dy0, dy1 := max(-radius, -center.Y), min(radius, fb.Height-1-center.Y)
	dx0, dx1 := max(-radius, -center.X), min(radius, fb.Width-1-center.X)
	for dy := dy0; dy <= dy1; dy++ {
		y := center.Y + dy
		for dx := dx0; dx <= dx1; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			nx := float32(dx) / rf
			ny := -float32(dy) / rf
			nz := math32.Sqrt(max(0, 1-nx*nx-ny*ny))

			lon := math32.Atan2(nx, nz) + rotation
			lat := math32.Asin(clampF32(ny, -1, 1))

			u := lon / (2 * math32.Pi)
			u -= math32.Floor(u)
			v := 0.5 - lat/math32.Pi
			fb.PutPixel(center.X+dx, y, tex.Sample(u, v))
		}
	}
}

// edgeFn is twice the signed area of (a, b, p).
func edgeFn(a, b, p Point) int {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
