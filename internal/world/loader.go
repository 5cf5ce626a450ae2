package world

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// SceneFile is the JSON form of a solar system.
type SceneFile struct {
	Name   string    `json:"name"`
	Bodies []BodyDef `json:"bodies"`
}

// BodyDef is one body in a scene file. Parent is null for a root body.
// Angle is in radians; AngleDeg is used instead when Angle is absent.
type BodyDef struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Radius      float32  `json:"radius"`
	Color       string   `json:"color"`
	OrbitRadius float32  `json:"orbit_radius"`
	OrbitSpeed  float32  `json:"orbit_speed"`
	Angle       *float32 `json:"angle,omitempty"`
	AngleDeg    *float32 `json:"angle_deg,omitempty"`
	Parent      *int     `json:"parent"`
	Texture     string   `json:"texture,omitempty"`
}

// LoadScene parses a scene file and builds a validated SolarSystem from it.
func LoadScene(data []byte) (*SolarSystem, error) {
	var f SceneFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if len(f.Bodies) == 0 {
		return nil, fmt.Errorf("scene %q has no bodies", f.Name)
	}

	bodies := make([]Body, len(f.Bodies))
	for i, d := range f.Bodies {
		b, err := d.toBody()
		if err != nil {
			return nil, fmt.Errorf("scene body %d (%s): %w", i, d.Name, err)
		}
		bodies[i] = b
	}

	sys, err := NewSolarSystem(bodies)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", f.Name, err)
	}
	sys.Name = f.Name
	return sys, nil
}

func (d BodyDef) toBody() (Body, error) {
	kind, err := ParseBodyKind(d.Kind)
	if err != nil {
		return Body{}, err
	}
	color, err := ParseColor(d.Color)
	if err != nil {
		return Body{}, err
	}

	b := Body{
		Name:        d.Name,
		Kind:        kind,
		Radius:      d.Radius,
		Color:       color,
		OrbitRadius: d.OrbitRadius,
		OrbitSpeed:  d.OrbitSpeed,
		Parent:      NoParent,
		Texture:     d.Texture,
	}
	switch {
	case d.Angle != nil:
		b.Angle = *d.Angle
	case d.AngleDeg != nil:
		b.Angle = *d.AngleDeg * math32.Pi / 180
	}
	if d.Parent != nil {
		b.Parent = *d.Parent
	}
	return b, nil
}

// ParseColor reads "#RRGGBB" as an opaque colour, or "#AARRGGBB" and
// "0xAARRGGBB" with explicit alpha.
func ParseColor(s string) (uint32, error) {
	if len(s) == 7 && s[0] == '#' {
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("bad color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 8 {
		return 0, fmt.Errorf("bad color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", s, err)
	}
	return uint32(v), nil
}
