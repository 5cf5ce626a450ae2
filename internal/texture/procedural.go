package texture

import (
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Procedural texture size.
const (
	ProceduralWidth  = 256
	ProceduralHeight = 128
)

// Procedural builds a banded stand-in texture around base (0xAARRGGBB).
// Bands vary lightness and hue in HCL space; the same seed always yields
// the same texture.
func Procedural(base uint32, seed int64) *Texture {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1)))

	c := colorful.Color{
		R: float64(uint8(base>>16)) / 255,
		G: float64(uint8(base>>8)) / 255,
		B: float64(uint8(base)) / 255,
	}
	h, chroma, l := c.Hcl()

	const bands = 9
	var shifts [bands]float64
	var hues [bands]float64
	for i := range shifts {
		shifts[i] = (rng.Float64() - 0.5) * 0.25
		hues[i] = (rng.Float64() - 0.5) * 18
	}
	phase := rng.Float64() * 2 * math.Pi

	t := &Texture{
		Width:  ProceduralWidth,
		Height: ProceduralHeight,
		Pixels: make([]uint32, ProceduralWidth*ProceduralHeight),
	}
	for y := 0; y < t.Height; y++ {
		lat := float64(y) / float64(t.Height)
		band := min(int(lat*bands), bands-1)
		for x := 0; x < t.Width; x++ {
			lon := float64(x) / float64(t.Width) * 2 * math.Pi
			swirl := 0.04 * math.Sin(lon*3+phase+lat*11)
			px := colorful.Hcl(h+hues[band], chroma, clamp01(l+shifts[band]+swirl)).Clamped()
			r, g, b := px.RGB255()
			t.Pixels[y*t.Width+x] = 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
		}
	}
	return t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
