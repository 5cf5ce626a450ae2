package render

import (
	"github.com/spacehole-rogue/orrery/internal/camera"
	"github.com/spacehole-rogue/orrery/internal/geom"
)

// Renderer owns the frame's pixel buffer and the projector for its size.
// It is not safe for concurrent use; one frame is drawn at a time.
type Renderer struct {
	Width  int
	Height int

	fb   *FrameBuffer
	proj Projector
}

// NewRenderer creates a renderer with a width*height buffer.
func NewRenderer(width, height int) *Renderer {
	fb := NewFrameBuffer(width, height)
	return &Renderer{
		Width:  fb.Width,
		Height: fb.Height,
		fb:     fb,
		proj:   Projector{Width: fb.Width, Height: fb.Height},
	}
}

func (r *Renderer) Clear(c uint32)              { r.fb.Clear(c) }
func (r *Renderer) PutPixel(x, y int, c uint32) { r.fb.PutPixel(x, y, c) }
func (r *Renderer) Buffer() []uint32            { return r.fb.Pixels }
func (r *Renderer) FrameBuffer() *FrameBuffer   { return r.fb }
func (r *Renderer) Projector() Projector        { return r.proj }

func (r *Renderer) DrawLine(p0, p1 Point, c uint32) { DrawLine(r.fb, p0, p1, c) }

func (r *Renderer) DrawCircle(center Point, radius int, c uint32) {
	DrawCircle(r.fb, center, radius, c)
}

func (r *Renderer) DrawFilledCircle(center Point, radius int, c uint32) {
	DrawFilledCircle(r.fb, center, radius, c)
}

func (r *Renderer) DrawTriangle(p0, p1, p2 Point, c uint32) {
	DrawTriangle(r.fb, p0, p1, p2, c)
}

func (r *Renderer) DrawTexturedDisk(center Point, radius int, rotation float32, tex Sampler) {
	DrawTexturedDisk(r.fb, center, radius, rotation, tex)
}

// ProjectPoint projects world through cam onto this renderer's screen.
func (r *Renderer) ProjectPoint(world geom.Vec3, cam *camera.Camera) (Point, bool) {
	return r.proj.Project(world, cam)
}
