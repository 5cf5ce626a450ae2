package camera

import "github.com/spacehole-rogue/orrery/internal/geom"

// WarpOffset is where a warp parks the camera relative to the target body.
var WarpOffset = geom.V3(0, 20, 40)

// Warp moves the camera between two points, either at once or over time.
// It is idle until Start is called and returns to idle when the move ends.
type Warp struct {
	active   bool
	from, to geom.Vec3
	duration float32
	elapsed  float32
}

// Instant places the camera at target immediately.
func Instant(c *Camera, target geom.Vec3) {
	c.Position = target
}

// Start begins an animated move. A non-positive duration makes the next
// Update snap to the target.
func (w *Warp) Start(from, to geom.Vec3, duration float32) {
	w.active = true
	w.from = from
	w.to = to
	w.duration = duration
	w.elapsed = 0
}

// Active reports whether a move is in progress.
func (w *Warp) Active() bool { return w.active }

// Target returns the destination of the current or last move.
func (w *Warp) Target() geom.Vec3 { return w.to }

// Update advances the move and writes the eased position into c.
// It reports true on the frame the move completes.
func (w *Warp) Update(dt float32, c *Camera) bool {
	if !w.active {
		return false
	}
	w.elapsed += dt
	if w.duration <= 0 || w.elapsed >= w.duration {
		c.Position = w.to
		w.active = false
		return true
	}
	t := w.elapsed / w.duration
	t = t * t * (3 - 2*t)
	c.Position = w.from.Lerp(w.to, t)
	return false
}
