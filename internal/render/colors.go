package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colours are packed 0xAARRGGBB.
const (
	ColorBlack = 0xFF000000
	ColorWhite = 0xFFFFFFFF

	ColorOrbitPlanet = 0xFF20254F
	ColorOrbitMoon   = 0xFF303B7A

	ColorShipHull  = 0xFFFFFFFF
	ColorShipFin   = 0xFFAAAAAA
	ColorShipFlame = 0xFFFF9933

	ColorHUD       = 0xFFB0C4FF
	ColorHUDDim    = 0xFF5A6A8A
	ColorHUDAlert  = 0xFFFF7A7A
	ColorHUDAccent = 0xFF8DFF8D

	ColorStarDim    = 0xFF202020
	ColorStarMid    = 0xFF606060
	ColorStarBright = 0xFFFFFFFF
)

// ARGB packs four 8-bit channels.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Channels unpacks a colour into a, r, g, b.
func Channels(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// toNRGBA converts a packed colour to image/color.
func toNRGBA(c uint32) color.NRGBA {
	a, r, g, b := Channels(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Blend mixes c0 and c1 in Lab space. The result is opaque.
func Blend(c0, c1 uint32, t float64) uint32 {
	a, _ := colorful.MakeColor(toNRGBA(c0 | 0xFF000000))
	b, _ := colorful.MakeColor(toNRGBA(c1 | 0xFF000000))
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return ARGB(0xFF, r, g, bl)
}
