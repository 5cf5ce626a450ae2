package world

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spacehole-rogue/orrery/internal/geom"
)

// Validation errors returned by NewSolarSystem.
var (
	ErrBadRadius    = errors.New("body radius must be positive")
	ErrBadOrbit     = errors.New("orbit radius must not be negative")
	ErrBadParent    = errors.New("parent index out of range")
	ErrCyclicParent = errors.New("parent chain forms a cycle")
)

// SolarSystem is an index-addressed list of bodies. Bodies are never
// reordered or removed, so an index stays valid for the life of the system.
type SolarSystem struct {
	Name   string
	bodies []Body

	positions []geom.Vec3
	resolved  []bool
	segs      []ringSegment
}

// NewSolarSystem validates bodies and builds a system from them. The slice
// is copied.
func NewSolarSystem(bodies []Body) (*SolarSystem, error) {
	if err := validate(bodies); err != nil {
		return nil, err
	}
	s := &SolarSystem{
		bodies:    append([]Body(nil), bodies...),
		positions: make([]geom.Vec3, len(bodies)),
		resolved:  make([]bool, len(bodies)),
		segs:      make([]ringSegment, 0, OrbitSegments),
	}
	return s, nil
}

func validate(bodies []Body) error {
	for i, b := range bodies {
		if !(b.Radius > 0) {
			return fmt.Errorf("body %d (%s): %w", i, b.Name, ErrBadRadius)
		}
		if b.OrbitRadius < 0 {
			return fmt.Errorf("body %d (%s): %w", i, b.Name, ErrBadOrbit)
		}
		if b.Parent == NoParent {
			continue
		}
		if b.Parent < 0 || b.Parent >= len(bodies) || b.Parent == i {
			return fmt.Errorf("body %d (%s): parent %d: %w", i, b.Name, b.Parent, ErrBadParent)
		}
	}

	// Walk each chain; a chain longer than the list must revisit a body.
	for i := range bodies {
		p := i
		for steps := 0; bodies[p].Parent != NoParent; steps++ {
			if steps >= len(bodies) {
				return fmt.Errorf("body %d (%s): %w", i, bodies[i].Name, ErrCyclicParent)
			}
			p = bodies[p].Parent
		}
	}
	return nil
}

// NewDemo builds the fixed five-body demo scene: a star, three planets and
// a moon around the outermost planet.
func NewDemo() *SolarSystem {
	s, err := NewSolarSystem([]Body{
		{Name: "Sol", Kind: Star, Radius: 8.0, Color: 0xFFFFD27F, Parent: NoParent, Texture: "sun.jpg"},
		{Name: "Azurea", Kind: Planet, Radius: 3.2, Color: 0xFF5CC8FF,
			OrbitRadius: 25, OrbitSpeed: 1.2, Angle: 0, Parent: 0, Texture: "planet1.jpg"},
		{Name: "Rosalia", Kind: Planet, Radius: 4.5, Color: 0xFFFF7AC8,
			OrbitRadius: 45, OrbitSpeed: 0.7, Angle: math32.Pi / 3, Parent: 0, Texture: "planet2.jpg"},
		{Name: "Verdania", Kind: Planet, Radius: 5.4, Color: 0xFF8DFF8D,
			OrbitRadius: 70, OrbitSpeed: 0.4, Angle: math32.Pi / 2, Parent: 0, Texture: "planet3.jpg"},
		{Name: "Luna Esmeralda", Kind: Moon, Radius: 1.8, Color: 0xFFCFEFFF,
			OrbitRadius: 10, OrbitSpeed: 2.0, Angle: math32.Pi / 4, Parent: 3, Texture: "moon.jpg"},
	})
	if err != nil {
		panic(fmt.Sprintf("demo scene: %v", err))
	}
	s.Name = "Demo"
	return s
}

// Len returns the number of bodies.
func (s *SolarSystem) Len() int { return len(s.bodies) }

// Body returns a copy of body i. It panics if i is out of range.
func (s *SolarSystem) Body(i int) Body {
	s.mustIndex(i)
	return s.bodies[i]
}

// Bodies returns a copy of the body list.
func (s *SolarSystem) Bodies() []Body {
	return append([]Body(nil), s.bodies...)
}

// Update advances every body's orbital phase by dt seconds.
func (s *SolarSystem) Update(dt float32) {
	for i := range s.bodies {
		s.bodies[i].Update(dt)
	}
}

// BodyPosition resolves body i's world position through its parent chain.
// It panics if i is out of range.
func (s *SolarSystem) BodyPosition(i int) geom.Vec3 {
	s.mustIndex(i)
	return s.position(i, 0)
}

func (s *SolarSystem) position(i, depth int) geom.Vec3 {
	if depth > len(s.bodies) {
		panic(fmt.Sprintf("world: parent chain of body %d exceeds %d links", i, len(s.bodies)))
	}
	b := &s.bodies[i]
	if !b.HasParent() {
		if b.Kind == Star {
			return geom.Zero()
		}
		return orbitOffset(b.OrbitRadius, b.Angle)
	}
	parent := s.position(b.Parent, depth+1)
	if b.OrbitRadius == 0 {
		return parent
	}
	return parent.Add(orbitOffset(b.OrbitRadius, b.Angle))
}

// Positions resolves every body once and returns the cached result, indexed
// like the body list. The slice is reused by the next call.
func (s *SolarSystem) Positions() []geom.Vec3 {
	for i := range s.resolved {
		s.resolved[i] = false
	}
	for i := range s.bodies {
		s.resolve(i)
	}
	return s.positions
}

func (s *SolarSystem) resolve(i int) geom.Vec3 {
	if s.resolved[i] {
		return s.positions[i]
	}
	b := &s.bodies[i]
	var p geom.Vec3
	switch {
	case !b.HasParent() && b.Kind == Star:
		p = geom.Zero()
	case !b.HasParent():
		p = orbitOffset(b.OrbitRadius, b.Angle)
	case b.OrbitRadius == 0:
		p = s.resolve(b.Parent)
	default:
		p = s.resolve(b.Parent).Add(orbitOffset(b.OrbitRadius, b.Angle))
	}
	s.positions[i] = p
	s.resolved[i] = true
	return p
}

// OrbitCenter returns the point body i circles: its parent's position, or
// the origin for a root body.
func (s *SolarSystem) OrbitCenter(i int) geom.Vec3 {
	s.mustIndex(i)
	return orbitCenter(&s.bodies[i], s.Positions())
}

// orbitCenter reads b's orbit centre out of a resolved position list.
func orbitCenter(b *Body, pos []geom.Vec3) geom.Vec3 {
	if b.HasParent() {
		return pos[b.Parent]
	}
	return geom.Zero()
}

// NearestBody returns the body whose surface is closest to p and the
// distance to that surface (negative when p is inside). It returns -1 for an
// empty system.
func (s *SolarSystem) NearestBody(p geom.Vec3) (int, float32) {
	best := -1
	var bestDist float32
	for i, pos := range s.Positions() {
		d := pos.Dist(p) - s.bodies[i].Radius
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}

func (s *SolarSystem) mustIndex(i int) {
	if i < 0 || i >= len(s.bodies) {
		panic(fmt.Sprintf("world: body index %d out of range [0,%d)", i, len(s.bodies)))
	}
}

// orbitOffset is the circular offset in the parent's Y=0 plane.
func orbitOffset(radius, angle float32) geom.Vec3 {
	return geom.V3(radius*math32.Cos(angle), 0, radius*math32.Sin(angle))
}
