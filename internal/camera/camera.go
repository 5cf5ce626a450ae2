// Package camera holds the pinhole camera used by the projector, plus the
// fly controller and the viewpoint warp that move it between frames.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/spacehole-rogue/orrery/internal/geom"
	"github.com/spacehole-rogue/orrery/internal/input"
)

// Fly controller tuning.
const (
	MoveSpeed = 50.0 // world units per second
	LookSpeed = 1.5  // radians per second
	MaxPitch  = 1.3  // radians, either side of level
)

// Camera is a yaw/pitch camera with no roll.
type Camera struct {
	Position geom.Vec3
	Yaw      float32 // radians
	Pitch    float32 // radians, kept within [-MaxPitch, MaxPitch]
	FovY     float32 // vertical field of view, radians
}

// Basis is the camera's orthonormal view frame.
type Basis struct {
	Forward geom.Vec3
	Right   geom.Vec3
	Up      geom.Vec3
}

// New returns the default viewpoint: above and behind the star, looking
// slightly down.
func New() *Camera {
	return &Camera{
		Position: geom.V3(0, 30, 80),
		Yaw:      0,
		Pitch:    -0.3,
		FovY:     60 * math32.Pi / 180,
	}
}

// Forward returns the unit view direction. It depends on yaw and pitch only.
func (c *Camera) Forward() geom.Vec3 {
	cp, sp := math32.Cos(c.Pitch), math32.Sin(c.Pitch)
	cy, sy := math32.Cos(c.Yaw), math32.Sin(c.Yaw)
	return geom.V3(sy*cp, sp, -cy*cp).Normalized()
}

// Basis derives right = forward × worldUp and up = right × forward.
func (c *Camera) Basis() Basis {
	f := c.Forward()
	r := f.Cross(geom.Up()).Normalized()
	u := r.Cross(f).Normalized()
	return Basis{Forward: f, Right: r, Up: u}
}

// Update integrates one frame of fly-camera input.
func (c *Camera) Update(dt float32, in input.Intent) {
	if in.LookLeft {
		c.Yaw += LookSpeed * dt
	}
	if in.LookRight {
		c.Yaw -= LookSpeed * dt
	}
	if in.LookUp {
		c.Pitch += LookSpeed * dt
	}
	if in.LookDown {
		c.Pitch -= LookSpeed * dt
	}
	c.ClampPitch()
	if !in.Moving() {
		return
	}

	b := c.Basis()
	var vel geom.Vec3
	if in.MoveForward {
		vel = vel.Add(b.Forward)
	}
	if in.MoveBack {
		vel = vel.Sub(b.Forward)
	}
	if in.MoveRight {
		vel = vel.Add(b.Right)
	}
	if in.MoveLeft {
		vel = vel.Sub(b.Right)
	}
	if in.MoveUp {
		vel.Y += 1
	}
	if in.MoveDown {
		vel.Y -= 1
	}

	if vel.Length() > 0 {
		c.Position = c.Position.Add(vel.Normalized().Mul(MoveSpeed * dt))
	}
}

// ClampPitch keeps pitch inside [-MaxPitch, MaxPitch].
func (c *Camera) ClampPitch() {
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
}
