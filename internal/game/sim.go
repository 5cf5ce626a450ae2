package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/orrery/internal/camera"
	"github.com/spacehole-rogue/orrery/internal/geom"
	"github.com/spacehole-rogue/orrery/internal/input"
	"github.com/spacehole-rogue/orrery/internal/render"
	"github.com/spacehole-rogue/orrery/internal/texture"
	"github.com/spacehole-rogue/orrery/internal/world"
)

// AnimatedWarpDuration is how long the Space-key glide takes, in seconds.
const AnimatedWarpDuration = 1.8

// animatedWarpTarget is the body the glide flies to.
const animatedWarpTarget = 1

// Sim is the frame driver's state: the scene, the camera and the overlays
// drawn on top. Update and Render run on one goroutine, Update first.
type Sim struct {
	Config   Config
	System   *world.SolarSystem
	Camera   *camera.Camera
	Warp     camera.Warp
	Log      *MessageLog
	Textures []*texture.Texture // indexed like System's bodies; nil = flat disc only
	ShowMap  bool
	Ticks    uint64

	ECS       *ecs.World
	ship      ecs.Entity
	posMap    *ecs.Map[Position]
	markerMap *ecs.Map[ShipMarker]

	font        *render.Font
	prev        input.Intent
	nearest     int
	nearestDist float32
	colliding   bool
}

// NewSim sets up a simulation over sys. textures may be shorter than the
// body list or nil.
func NewSim(cfg Config, sys *world.SolarSystem, textures []*texture.Texture) *Sim {
	w := ecs.NewWorld(256)

	posMap := ecs.NewMap[Position](w)
	markerMap := ecs.NewMap[ShipMarker](w)

	cam := camera.New()
	ship := ecs.NewMap2[Position, ShipMarker](w).NewEntity(
		&Position{Vec3: cam.Position.Add(cam.Forward().Mul(shipLead))},
		&ShipMarker{Size: shipSize, Lead: shipLead},
	)

	log := NewMessageLog(32, hudLogWidth(cfg.Width))
	log.Add(fmt.Sprintf("Entering the %s system: %d bodies.", sceneName(sys), sys.Len()), MsgInfo)
	log.Add("1-3 jump to a planet, Space glides to the first one.", MsgInfo)

	s := &Sim{
		Config:    cfg,
		System:    sys,
		Camera:    cam,
		Log:       log,
		Textures:  textures,
		ShowMap:   cfg.ShowMap,
		ECS:       w,
		ship:      ship,
		posMap:    posMap,
		markerMap: markerMap,
		font:      render.NewFont(),
	}
	s.nearest, s.nearestDist = sys.NearestBody(cam.Position)
	return s
}

// Update advances one frame: warps or free flight, then the orbits, then the
// ship marker, then collision push-back.
func (s *Sim) Update(dt float32, in input.Intent) {
	s.Ticks++
	s.handleWarps(in)
	if in.ToggleMap && !s.prev.ToggleMap {
		s.ShowMap = !s.ShowMap
	}

	if s.Warp.Active() {
		if s.Warp.Update(dt, s.Camera) {
			s.Log.Add("Glide complete.", MsgArrival)
		}
	} else {
		s.Camera.Update(dt, in)
	}

	s.System.Update(dt)
	s.updateShip()

	hit := world.ResolveCollisions(s.System, s.Camera) > 0
	if hit && !s.colliding {
		s.Log.Add("Proximity alert: pulled back from the surface.", MsgWarning)
	}
	s.colliding = hit

	s.nearest, s.nearestDist = s.System.NearestBody(s.Camera.Position)
	s.prev = in
}

func (s *Sim) handleWarps(in input.Intent) {
	keys := [...]struct{ now, before bool }{
		{in.Warp1, s.prev.Warp1},
		{in.Warp2, s.prev.Warp2},
		{in.Warp3, s.prev.Warp3},
	}
	for k, key := range keys {
		if !key.now {
			continue
		}
		if s.WarpTo(k+1, false) && !key.before {
			s.Log.Add("Jumped to "+s.System.Body(k+1).Name+".", MsgArrival)
		}
	}

	if in.WarpAnimated && !s.Warp.Active() {
		if s.WarpTo(animatedWarpTarget, true) {
			s.Log.Add("Gliding to "+s.System.Body(animatedWarpTarget).Name+"...", MsgInfo)
		}
	}
}

// WarpTo sends the camera to the viewing spot of body i, at once or as a
// glide. An index outside the scene is ignored and reported false.
func (s *Sim) WarpTo(i int, animated bool) bool {
	if i < 0 || i >= s.System.Len() {
		Logger().Warn("warp target out of range", "index", i, "bodies", s.System.Len())
		return false
	}
	target := s.System.BodyPosition(i).Add(camera.WarpOffset)
	if animated {
		s.Warp.Start(s.Camera.Position, target, AnimatedWarpDuration)
	} else {
		camera.Instant(s.Camera, target)
	}
	Logger().Debug("warp", "body", s.System.Body(i).Name, "animated", animated)
	return true
}

func (s *Sim) updateShip() {
	pos := s.posMap.Get(s.ship)
	marker := s.markerMap.Get(s.ship)
	pos.Vec3 = s.Camera.Position.Add(s.Camera.Forward().Mul(marker.Lead))
}

// ShipPosition returns the ship marker's world position.
func (s *Sim) ShipPosition() geom.Vec3 {
	return s.posMap.Get(s.ship).Vec3
}

// Nearest returns the body whose surface is closest to the camera and the
// distance to it, as of the last Update.
func (s *Sim) Nearest() (int, float32) {
	return s.nearest, s.nearestDist
}

// Render draws the whole frame into r: background, scene with textured
// discs, ship marker, then the map and HUD overlays.
func (s *Sim) Render(r *render.Renderer) {
	r.Clear(render.ColorBlack)
	render.DrawSkybox(r.FrameBuffer())
	s.System.RenderTextured(r, s.Camera, s.skin)
	s.drawShip(r)
	if s.ShowMap {
		s.drawMinimap(r)
	}
	s.drawHUD(r)
}

// skin returns body i's texture, or nil to keep its flat disc.
func (s *Sim) skin(i int) render.Sampler {
	if i >= len(s.Textures) || s.Textures[i] == nil {
		return nil
	}
	return s.Textures[i]
}

func (s *Sim) drawShip(r *render.Renderer) {
	pt, ok := r.ProjectPoint(s.ShipPosition(), s.Camera)
	if !ok {
		return
	}
	drawShip(r, pt, s.markerMap.Get(s.ship).Size)
}

func sceneName(sys *world.SolarSystem) string {
	if sys.Name == "" {
		return "unnamed"
	}
	return sys.Name
}
