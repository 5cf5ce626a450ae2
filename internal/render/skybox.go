package render

// Skybox gradient endpoints.
const (
	skyTop    = 0xFF050832
	skyBottom = 0xFF000014
)

// DrawSkybox paints the background pass: a vertical gradient followed by a
// fixed field of hashed stars. The star pattern depends only on pixel
// coordinates, so it does not move with the camera.
func DrawSkybox(fb *FrameBuffer) {
	for y := 0; y < fb.Height; y++ {
		t := float64(y) / float64(max(fb.Height, 1))
		c := Blend(skyTop, skyBottom, t)
		row := fb.Pixels[y*fb.Width : (y+1)*fb.Width]
		for x := range row {
			row[x] = c
		}
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if c, ok := starAt(x, y); ok {
				fb.PutPixel(x, y, c)
			}
		}
	}
}

// starAt hashes a pixel position into an optional star colour.
func starAt(x, y int) (uint32, bool) {
	v := (uint32(x)*73856093 ^ uint32(y)*19349663) & 0xFF
	switch {
	case v < 2:
		return ColorStarDim, true
	case v == 3:
		return ColorStarMid, true
	case v == 4:
		return ColorStarBright, true
	default:
		return 0, false
	}
}
