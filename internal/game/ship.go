package game

import (
	"github.com/spacehole-rogue/orrery/internal/geom"
	"github.com/spacehole-rogue/orrery/internal/render"
)

// Ship marker defaults.
const (
	shipSize = 12 // pixels from centre to nose
	shipLead = 15 // world units ahead of the camera
)

// Position is a world-space location.
type Position struct {
	geom.Vec3
}

// ShipMarker draws its entity as the player's ship, held Lead units in front
// of the camera.
type ShipMarker struct {
	Size int
	Lead float32
}

// drawShip paints the hull, two fins and the engine flame around c.
func drawShip(r *render.Renderer, c render.Point, size int) {
	half, quarter := size/2, size/4

	nose := render.Point{X: c.X, Y: c.Y - size}
	leftBase := render.Point{X: c.X - half, Y: c.Y + half}
	rightBase := render.Point{X: c.X + half, Y: c.Y + half}
	r.DrawTriangle(nose, leftBase, rightBase, render.ColorShipHull)

	r.DrawTriangle(
		render.Point{X: c.X - half, Y: c.Y + quarter},
		render.Point{X: c.X - size, Y: c.Y + size},
		leftBase,
		render.ColorShipFin,
	)
	r.DrawTriangle(
		render.Point{X: c.X + half, Y: c.Y + quarter},
		render.Point{X: c.X + size, Y: c.Y + size},
		rightBase,
		render.ColorShipFin,
	)

	r.DrawTriangle(
		render.Point{X: c.X, Y: c.Y + half},
		render.Point{X: c.X - quarter, Y: c.Y + size + 4},
		render.Point{X: c.X + quarter, Y: c.Y + size + 4},
		render.ColorShipFlame,
	)
}
