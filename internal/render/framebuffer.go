package render

// FrameBuffer is a flat row-major array of packed ARGB pixels.
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFrameBuffer creates a buffer of width*height pixels, all zero.
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// PutPixel writes a single pixel at (x, y). Out-of-bounds writes are ignored.
func (b *FrameBuffer) PutPixel(x, y int, c uint32) {
	if x >= 0 && x < b.Width && y >= 0 && y < b.Height {
		b.Pixels[y*b.Width+x] = c
	}
}

// Pixel reads a single pixel. Out-of-bounds reads return 0.
func (b *FrameBuffer) Pixel(x, y int) uint32 {
	if x >= 0 && x < b.Width && y >= 0 && y < b.Height {
		return b.Pixels[y*b.Width+x]
	}
	return 0
}

// Clear overwrites every pixel with c.
func (b *FrameBuffer) Clear(c uint32) {
	for i := range b.Pixels {
		b.Pixels[i] = c
	}
}

// CopyRGBA writes the buffer into dst as RGBA bytes, 4 per pixel, with alpha
// forced opaque. dst must hold at least 4*Width*Height bytes; extra pixels
// are left alone.
func (b *FrameBuffer) CopyRGBA(dst []byte) {
	n := len(b.Pixels)
	if len(dst)/4 < n {
		n = len(dst) / 4
	}
	for i := 0; i < n; i++ {
		p := b.Pixels[i]
		j := i * 4
		dst[j+0] = byte(p >> 16)
		dst[j+1] = byte(p >> 8)
		dst[j+2] = byte(p)
		dst[j+3] = 0xFF
	}
}
