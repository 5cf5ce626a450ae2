package world

import (
	"github.com/spacehole-rogue/orrery/internal/camera"
	"github.com/spacehole-rogue/orrery/internal/geom"
)

// CollisionMargin is the clearance kept between the camera and a body's
// surface.
const CollisionMargin = 2

// ResolveCollisions pushes cam out of any body it has flown into, leaving it
// CollisionMargin above the surface along the centre-to-camera line. A camera
// exactly at a centre is pushed straight up. It returns the number of bodies
// the camera was pushed away from.
func ResolveCollisions(s *SolarSystem, cam *camera.Camera) int {
	pushed := 0
	for i, center := range s.Positions() {
		limit := s.bodies[i].Radius + CollisionMargin
		rel := cam.Position.Sub(center)
		d := rel.Length()
		if d >= limit {
			continue
		}
		dir := geom.Up()
		if d > 0 {
			dir = rel.Mul(1 / d)
		}
		cam.Position = center.Add(dir.Mul(limit))
		pushed++
	}
	return pushed
}
