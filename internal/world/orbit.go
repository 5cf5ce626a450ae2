package world

import (
	"github.com/chewxy/math32"

	"github.com/spacehole-rogue/orrery/internal/camera"
	"github.com/spacehole-rogue/orrery/internal/geom"
	"github.com/spacehole-rogue/orrery/internal/render"
)

// OrbitSegments is the number of line segments in one orbit ring.
const OrbitSegments = 64

const (
	minDiscRadius      = 2
	fallbackDiscRadius = 4
)

// Render draws every orbit ring and then every body disc, in list order.
// Later bodies paint over earlier ones; there is no depth test.
func (s *SolarSystem) Render(r *render.Renderer, cam *camera.Camera) {
	s.RenderTextured(r, cam, nil)
}

// RenderTextured is Render with a surface per body. skin may be nil, and may
// return nil for a body that keeps its flat disc. Each body's texture is
// painted straight after its own disc, so list order still decides overlap.
// The body's orbital angle is used as its spin.
func (s *SolarSystem) RenderTextured(r *render.Renderer, cam *camera.Camera, skin func(i int) render.Sampler) {
	pos := s.Positions()
	proj := r.Projector()

	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Kind == Star || b.OrbitRadius <= 0 {
			continue
		}
		s.segs = ringSegments(s.segs[:0], proj, cam, orbitCenter(b, pos), b.OrbitRadius)
		c := orbitColor(b.Kind)
		for _, seg := range s.segs {
			r.DrawLine(seg.P0, seg.P1, c)
		}
	}

	for i := range s.bodies {
		pt, radius, ok := s.footprint(i, pos[i], proj, cam)
		if !ok {
			continue
		}
		r.DrawFilledCircle(pt, radius, s.bodies[i].Color)
		if skin == nil {
			continue
		}
		if tex := skin(i); tex != nil {
			r.DrawTexturedDisk(pt, radius, s.bodies[i].Angle, tex)
		}
	}
}

// ringSegment is one drawn piece of an orbit ring between samples From and
// From+1.
type ringSegment struct {
	From   int
	P0, P1 render.Point
}

// ringSegments appends the segments joining consecutive visible samples. A
// sample behind the camera breaks the ring; the two sides are not joined
// across the gap.
func ringSegments(dst []ringSegment, proj render.Projector, cam *camera.Camera, center geom.Vec3, radius float32) []ringSegment {
	var prev render.Point
	havePrev := false
	for k := 0; k <= OrbitSegments; k++ {
		t := float32(k) / OrbitSegments * 2 * math32.Pi
		p := geom.V3(center.X+radius*math32.Cos(t), center.Y, center.Z+radius*math32.Sin(t))
		pt, ok := proj.Project(p, cam)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			dst = append(dst, ringSegment{From: k - 1, P0: prev, P1: pt})
		}
		prev = pt
		havePrev = true
	}
	return dst
}

// ProjectBody returns body i's on-screen centre and radius in pixels, the
// same footprint the disc pass fills. ok is false when the centre is behind
// the camera. It panics if i is out of range.
func (s *SolarSystem) ProjectBody(i int, proj render.Projector, cam *camera.Camera) (render.Point, int, bool) {
	s.mustIndex(i)
	return s.footprint(i, s.BodyPosition(i), proj, cam)
}

// footprint estimates the disc radius from a single sample offset along +X.
func (s *SolarSystem) footprint(i int, center geom.Vec3, proj render.Projector, cam *camera.Camera) (render.Point, int, bool) {
	pt, ok := proj.Project(center, cam)
	if !ok {
		return render.Point{}, 0, false
	}
	edge, ok := proj.Project(center.Add(geom.V3(s.bodies[i].Radius, 0, 0)), cam)
	if !ok {
		return pt, fallbackDiscRadius, true
	}
	dx := float32(edge.X - pt.X)
	dy := float32(edge.Y - pt.Y)
	radius := max(int(math32.Sqrt(dx*dx+dy*dy)), minDiscRadius)
	return pt, radius, true
}

func orbitColor(k BodyKind) uint32 {
	if k == Moon {
		return render.ColorOrbitMoon
	}
	return render.ColorOrbitPlanet
}
