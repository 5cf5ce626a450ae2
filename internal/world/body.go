package world

import "fmt"

// BodyKind identifies what a body is. The set is closed.
type BodyKind uint8

const (
	Star   BodyKind = iota // sits at its parent's position, or the origin
	Planet                 // circles a star
	Moon                   // circles a planet
)

// NoParent marks a root body.
const NoParent = -1

// Body is one celestial object. Only Angle changes after construction.
type Body struct {
	Name        string
	Kind        BodyKind
	Radius      float32 // world units, > 0
	Color       uint32  // 0xAARRGGBB
	OrbitRadius float32 // distance from the parent's position; 0 = co-located
	OrbitSpeed  float32 // radians per second; sign picks the direction
	Angle       float32 // orbital phase, radians, never wrapped
	Parent      int     // index into the same body list, or NoParent
	Texture     string  // optional texture file name, not used by the core
}

// Update advances the orbital phase by dt seconds.
func (b *Body) Update(dt float32) {
	b.Angle += b.OrbitSpeed * dt
}

// HasParent reports whether the body orbits another body.
func (b *Body) HasParent() bool { return b.Parent != NoParent }

func (k BodyKind) String() string {
	switch k {
	case Star:
		return "star"
	case Planet:
		return "planet"
	case Moon:
		return "moon"
	default:
		return fmt.Sprintf("BodyKind(%d)", uint8(k))
	}
}

// ParseBodyKind maps the scene-file spelling to a BodyKind.
func ParseBodyKind(s string) (BodyKind, error) {
	switch s {
	case "star":
		return Star, nil
	case "planet":
		return Planet, nil
	case "moon":
		return Moon, nil
	default:
		return 0, fmt.Errorf("unknown body kind %q", s)
	}
}
