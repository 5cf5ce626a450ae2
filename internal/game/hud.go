package game

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spacehole-rogue/orrery/internal/geom"
	"github.com/spacehole-rogue/orrery/internal/render"
	"github.com/spacehole-rogue/orrery/internal/world"
)

// HUD layout, in pixels.
const (
	hudMargin  = 8
	hudLine    = render.GlyphHeight + 2
	hudLogRows = 4

	mapSize   = 160
	mapMargin = 10
	mapPanel  = 0xFF080A1C
)

const helpText = "WASD/QE move  Arrows look  1-3 jump  Space glide  M map  Esc quit"

// hudLogWidth is how many characters of log text fit across the screen.
func hudLogWidth(screenWidth int) int {
	return max((screenWidth-2*hudMargin)/render.GlyphWidth, 10)
}

func (s *Sim) drawHUD(r *render.Renderer) {
	fb := r.FrameBuffer()
	x, y := hudMargin, hudMargin

	s.font.DrawText(fb, x, y, "ORRERY - "+sceneName(s.System), render.ColorHUD)
	y += hudLine

	if i, d := s.Nearest(); i >= 0 {
		b := s.System.Body(i)
		line := fmt.Sprintf("Nearest: %s (%s)  %.1f u", b.Name, b.Kind, d)
		s.font.DrawText(fb, x, y, line, render.ColorHUD)
		y += hudLine
	}

	p := s.Camera.Position
	line := fmt.Sprintf("Pos %.0f %.0f %.0f  Yaw %.2f  Pitch %.2f", p.X, p.Y, p.Z, s.Camera.Yaw, s.Camera.Pitch)
	s.font.DrawText(fb, x, y, line, render.ColorHUDDim)

	if s.Warp.Active() {
		const status = "GLIDING"
		s.font.DrawText(fb, (r.Width-render.TextWidth(status))/2, hudMargin, status, render.ColorHUDAccent)
	}

	msgs := s.Log.Recent(hudLogRows)
	y = r.Height - hudMargin - hudLine*(len(msgs)+1)
	for _, m := range msgs {
		s.font.DrawText(fb, x, y, m.Text, m.Priority.Color())
		y += hudLine
	}
	s.font.DrawText(fb, x, y, helpText, render.ColorHUDDim)
}

// drawMinimap draws a top-down view of the scene in the top-right corner,
// scaled so every body fits.
func (s *Sim) drawMinimap(r *render.Renderer) {
	ox := r.Width - mapSize - mapMargin
	oy := mapMargin
	if ox < 0 || r.Height < mapSize+mapMargin {
		return
	}

	fb := r.FrameBuffer()
	for y := oy; y < oy+mapSize; y++ {
		for x := ox; x < ox+mapSize; x++ {
			fb.PutPixel(x, y, mapPanel)
		}
	}
	tl := render.Point{X: ox, Y: oy}
	tr := render.Point{X: ox + mapSize - 1, Y: oy}
	bl := render.Point{X: ox, Y: oy + mapSize - 1}
	br := render.Point{X: ox + mapSize - 1, Y: oy + mapSize - 1}
	r.DrawLine(tl, tr, render.ColorHUDDim)
	r.DrawLine(tr, br, render.ColorHUDDim)
	r.DrawLine(br, bl, render.ColorHUDDim)
	r.DrawLine(bl, tl, render.ColorHUDDim)

	pos := s.System.Positions()
	var extent float32 = 1
	for i, p := range pos {
		extent = max(extent, p.XZ().Length()+s.System.Body(i).Radius)
	}
	zoom := (mapSize/2 - 4) / extent
	mp := render.Projector{Width: mapSize, Height: mapSize}
	toPanel := func(w geom.Vec3) render.Point {
		pt := mp.WorldToScreen2D(w.XZ(), geom.Vec2{}, zoom)
		return render.Point{X: ox + pt.X, Y: oy + pt.Y}
	}

	for i := 0; i < s.System.Len(); i++ {
		b := s.System.Body(i)
		if b.Kind == world.Star || b.OrbitRadius <= 0 {
			continue
		}
		c := toPanel(s.System.OrbitCenter(i))
		r.DrawCircle(c, int(b.OrbitRadius*zoom), render.Blend(mapPanel, b.Color, 0.35))
	}
	for i, p := range pos {
		b := s.System.Body(i)
		r.DrawFilledCircle(toPanel(p), max(int(math32.Ceil(b.Radius*zoom)), 1), b.Color)
	}

	cam := toPanel(s.Camera.Position)
	fwd := s.Camera.Forward().XZ()
	if l := fwd.Length(); l > 0 {
		fwd = fwd.Mul(6 / l)
	}
	tip := render.Point{X: cam.X + int(fwd.X), Y: cam.Y + int(fwd.Y)}
	r.DrawLine(cam, tip, render.ColorWhite)
	r.DrawFilledCircle(cam, 2, render.ColorWhite)
}
