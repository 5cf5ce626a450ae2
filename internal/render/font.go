package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 7
	GlyphHeight = 13
	AtlasCols   = 16

	firstGlyph = 32
	lastGlyph  = 126
)

// Font is a pre-rendered ASCII glyph atlas for HUD text. Glyphs are stored
// as alpha masks and blitted straight into a FrameBuffer.
type Font struct {
	atlas *image.Alpha
}

// NewFont renders printable ASCII (32-126) with basicfont.Face7x13.
func NewFont() *Font {
	count := lastGlyph - firstGlyph + 1
	rows := (count + AtlasCols - 1) / AtlasCols
	img := image.NewAlpha(image.Rect(0, 0, AtlasCols*GlyphWidth, rows*GlyphHeight))

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
	}
	for code := firstGlyph; code <= lastGlyph; code++ {
		cx, cy := glyphOrigin(code)
		d.Dot = fixed.P(cx, cy+face.Ascent)
		d.DrawString(string(rune(code)))
	}
	return &Font{atlas: img}
}

// DrawText writes s with its top-left corner at (x, y). Runes outside the
// atlas are drawn as '?'. Each rune advances GlyphWidth pixels.
func (f *Font) DrawText(fb *FrameBuffer, x, y int, s string, c uint32) {
	for _, r := range s {
		code := int(r)
		if code < firstGlyph || code > lastGlyph {
			code = '?'
		}
		if code != ' ' {
			f.drawGlyph(fb, x, y, code, c)
		}
		x += GlyphWidth
	}
}

// TextWidth returns the pixel width of s.
func TextWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n * GlyphWidth
}

func (f *Font) drawGlyph(fb *FrameBuffer, x, y, code int, c uint32) {
	gx, gy := glyphOrigin(code)
	for py := 0; py < GlyphHeight; py++ {
		for px := 0; px < GlyphWidth; px++ {
			if f.atlas.AlphaAt(gx+px, gy+py).A < 0x80 {
				continue
			}
			fb.PutPixel(x+px, y+py, c)
		}
	}
}

func glyphOrigin(code int) (x, y int) {
	i := code - firstGlyph
	return (i % AtlasCols) * GlyphWidth, (i / AtlasCols) * GlyphHeight
}
