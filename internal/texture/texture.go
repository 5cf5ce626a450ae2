// Package texture decodes body textures and samples them for the
// textured-disc pass. Decoding supports JPEG, PNG, GIF, BMP and WebP.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxSize bounds either side of a loaded texture; larger images are scaled
// down on load.
const MaxSize = 512

// ErrEmptyData is returned when there is nothing to decode.
var ErrEmptyData = errors.New("texture: empty data")

// Texture is a packed ARGB image.
type Texture struct {
	Width  int
	Height int
	Pixels []uint32
}

// Load decodes the image file at path.
func Load(path string) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texture: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an in-memory image.
func LoadBytes(data []byte) (*Texture, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts img to a Texture, scaling it down with Catmull-Rom
// filtering when it exceeds MaxSize.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > MaxSize || h > MaxSize {
		scale := float64(MaxSize) / float64(max(w, h))
		w = max(1, int(float64(w)*scale))
		h = max(1, int(float64(h)*scale))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}

	t := &Texture{Width: w, Height: h, Pixels: make([]uint32, w*h)}
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			t.Pixels[y*w+x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	return t
}

// Sample returns the texel nearest to (u, v). u wraps around, which suits
// longitude. v is clamped to [0, 1].
func (t *Texture) Sample(u, v float32) uint32 {
	if t == nil || t.Width == 0 || t.Height == 0 {
		return 0
	}
	u -= math32.Floor(u)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	x := min(int(u*float32(t.Width)), t.Width-1)
	y := min(int(v*float32(t.Height)), t.Height-1)
	return t.Pixels[y*t.Width+x]
}
