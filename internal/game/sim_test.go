package game

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/spacehole-rogue/orrery/internal/camera"
	"github.com/spacehole-rogue/orrery/internal/geom"
	"github.com/spacehole-rogue/orrery/internal/input"
	"github.com/spacehole-rogue/orrery/internal/render"
	"github.com/spacehole-rogue/orrery/internal/texture"
	"github.com/spacehole-rogue/orrery/internal/world"
)

func approx(a, b float32) bool { return math32.Abs(a-b) < 1e-3 }

func approxVec(a, b geom.Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func newTestSim() *Sim {
	return NewSim(DefaultConfig(), world.NewDemo(), nil)
}

func TestInstantWarp(t *testing.T) {
	for k, in := range []input.Intent{{Warp1: true}, {Warp2: true}, {Warp3: true}} {
		s := newTestSim()
		want := s.System.BodyPosition(k + 1).Add(camera.WarpOffset)
		s.Update(0.016, in)
		if !approxVec(s.Camera.Position, want) {
			t.Errorf("warp %d: camera at %+v, want %+v", k+1, s.Camera.Position, want)
		}
	}
}

func TestWarpOutOfRangeIsIgnored(t *testing.T) {
	sys, err := world.NewSolarSystem([]world.Body{
		{Name: "lonely", Kind: world.Star, Radius: 1, Parent: world.NoParent},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := NewSim(DefaultConfig(), sys, nil)
	before := s.Camera.Position
	s.Update(0, input.Intent{Warp3: true, WarpAnimated: true})
	if s.Camera.Position != before {
		t.Fatalf("camera moved to %+v", s.Camera.Position)
	}
	if s.Warp.Active() {
		t.Fatal("glide started towards a missing body")
	}
	if s.WarpTo(-1, false) {
		t.Fatal("WarpTo(-1) reported success")
	}
}

func TestAnimatedWarpArrives(t *testing.T) {
	s := newTestSim()
	s.Update(0.1, input.Intent{WarpAnimated: true})
	if !s.Warp.Active() {
		t.Fatal("glide did not start")
	}
	target := s.Warp.Target()

	// Movement keys are ignored while gliding.
	mid := s.Camera.Position
	s.Update(0.5, input.Intent{MoveForward: true, LookLeft: true})
	if s.Camera.Yaw != 0 {
		t.Fatalf("yaw changed during glide: %v", s.Camera.Yaw)
	}
	if s.Camera.Position == mid {
		t.Fatal("camera did not move during glide")
	}

	for i := 0; i < 40 && s.Warp.Active(); i++ {
		s.Update(0.1, input.Intent{})
	}
	if s.Warp.Active() {
		t.Fatal("glide never finished")
	}
	if !approxVec(s.Camera.Position, target) {
		t.Fatalf("camera at %+v, want %+v", s.Camera.Position, target)
	}
}

func TestShipFollowsCamera(t *testing.T) {
	s := newTestSim()
	s.Update(0.2, input.Intent{MoveForward: true, LookRight: true})
	want := s.Camera.Position.Add(s.Camera.Forward().Mul(shipLead))
	if got := s.ShipPosition(); !approxVec(got, want) {
		t.Fatalf("ship at %+v, want %+v", got, want)
	}
}

func TestUpdateAdvancesOrbitsAndResolvesCollisions(t *testing.T) {
	s := newTestSim()
	before := s.System.Body(1).Angle
	s.Camera.Position = geom.V3(0, 0, 1)
	s.Update(0.5, input.Intent{})

	if got := s.System.Body(1).Angle; !approx(got, before+1.2*0.5) {
		t.Fatalf("Azurea angle = %v", got)
	}
	if d := s.Camera.Position.Length(); d < 8+world.CollisionMargin-1e-3 {
		t.Fatalf("camera left inside Sol, %v from centre", d)
	}
	if i, _ := s.Nearest(); i != 0 {
		t.Fatalf("nearest = %d, want Sol", i)
	}
	if last := s.Log.Recent(1)[0]; last.Priority != MsgWarning {
		t.Fatalf("last message = %+v, want a proximity warning", last)
	}
}

func TestToggleMapIsEdgeTriggered(t *testing.T) {
	s := newTestSim()
	s.Update(0.016, input.Intent{ToggleMap: true})
	s.Update(0.016, input.Intent{ToggleMap: true})
	if !s.ShowMap {
		t.Fatal("holding M should toggle once")
	}
	s.Update(0.016, input.Intent{})
	s.Update(0.016, input.Intent{ToggleMap: true})
	if s.ShowMap {
		t.Fatal("second press should hide the map")
	}
}

func TestRenderDrawsFrame(t *testing.T) {
	s := newTestSim()
	s.ShowMap = true
	s.Textures = []*texture.Texture{texture.Procedural(0xFFFFD27F, 1)}
	r := render.NewRenderer(800, 600)
	s.Update(0.016, input.Intent{})
	s.Render(r)

	pt, ok := r.ProjectPoint(s.ShipPosition(), s.Camera)
	if !ok {
		t.Fatal("ship marker not in front of the camera")
	}
	if got := r.FrameBuffer().Pixel(pt.X, pt.Y); got != render.ColorShipHull {
		t.Fatalf("ship centre pixel = %#08x, want hull colour", got)
	}

	panel := r.FrameBuffer().Pixel(800-mapSize-mapMargin+2, mapMargin+2)
	if panel != mapPanel {
		t.Fatalf("minimap corner = %#08x, want panel colour", panel)
	}

	hud := 0
	for _, c := range r.Buffer() {
		if c == render.ColorHUD {
			hud++
		}
	}
	if hud == 0 {
		t.Fatal("no HUD text drawn")
	}
}

func TestRenderShortTextureListKeepsLaterDiscs(t *testing.T) {
	sys, err := world.NewSolarSystem([]world.Body{
		{Name: "back", Kind: world.Star, Radius: 5, Color: 0xFF0000FF, Parent: world.NoParent},
		{Name: "front", Kind: world.Star, Radius: 5, Color: 0xFFFF0000, Parent: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	tex := texture.Procedural(0xFF30D040, 7)
	for _, textures := range [][]*texture.Texture{{tex}, {tex, nil}} {
		s := NewSim(DefaultConfig(), sys, textures)
		s.Camera = &camera.Camera{Position: geom.V3(0, 0, 60), FovY: 1}
		s.posMap.Get(s.ship).Vec3 = geom.V3(0, 0, 100)
		r := render.NewRenderer(800, 600)
		s.Render(r)
		if got := r.FrameBuffer().Pixel(400, 300); got != 0xFFFF0000 {
			t.Errorf("%d textures: centre pixel = %#08x, want the front body's flat colour", len(textures), got)
		}
	}
}
