// Package display puts rendered frames on screen and reads the keyboard
// through Ebitengine. It is the only package besides main that talks to
// the window.
package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacehole-rogue/orrery/internal/render"
)

// Presenter copies a FrameBuffer into an Ebitengine image each frame.
type Presenter struct {
	img *ebiten.Image
	pix []byte
}

// NewPresenter creates an empty presenter; buffers are sized on first use.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Draw uploads fb and draws it at the screen's top-left corner.
func (p *Presenter) Draw(screen *ebiten.Image, fb *render.FrameBuffer) {
	if fb.Width == 0 || fb.Height == 0 {
		return
	}
	if p.img == nil || p.img.Bounds().Dx() != fb.Width || p.img.Bounds().Dy() != fb.Height {
		if p.img != nil {
			p.img.Deallocate()
		}
		p.img = ebiten.NewImage(fb.Width, fb.Height)
		p.pix = make([]byte, 4*fb.Width*fb.Height)
	}

	fb.CopyRGBA(p.pix)
	p.img.WritePixels(p.pix)
	screen.DrawImage(p.img, nil)
}
