package render

import (
	"github.com/chewxy/math32"

	"github.com/spacehole-rogue/orrery/internal/camera"
	"github.com/spacehole-rogue/orrery/internal/geom"
)

// NearPlane is the minimum view depth a point needs to be projected.
const NearPlane = 0.1

// Projector maps world points to pixels for a screen of fixed size.
type Projector struct {
	Width  int
	Height int
}

// Project returns the screen position of world as seen from cam, or ok=false
// when the point lies at or behind the near plane. Results outside the
// screen are returned as-is.
func (p Projector) Project(world geom.Vec3, cam *camera.Camera) (pt Point, ok bool) {
	b := cam.Basis()
	rel := world.Sub(cam.Position)

	xCam := rel.Dot(b.Right)
	yCam := rel.Dot(b.Up)
	// Depth is measured along the view direction; positive is in front.
	zCam := rel.Dot(b.Forward)
	if zCam <= NearPlane {
		return Point{}, false
	}

	f := p.FocalLength(cam.FovY)
	sx := float32(p.Width)/2 + xCam*f/zCam
	sy := float32(p.Height)/2 - yCam*f/zCam
	return Point{X: int(sx), Y: int(sy)}, true
}

// FocalLength returns the distance in pixels from the eye to an image plane
// that spans the screen height at the given vertical field of view.
func (p Projector) FocalLength(fovY float32) float32 {
	return (float32(p.Height) / 2) / math32.Tan(fovY*0.5)
}

// WorldToScreen2D is the flat top-down mapping: world is centred on camPos,
// scaled by zoom and offset to the middle of the screen.
func (p Projector) WorldToScreen2D(world, camPos geom.Vec2, zoom float32) Point {
	sx := (world.X-camPos.X)*zoom + float32(p.Width)/2
	sy := (world.Y-camPos.Y)*zoom + float32(p.Height)/2
	return Point{X: int(sx), Y: int(sy)}
}
