package image

// SampleBilinear blends the 2x2 neighborhood whose top-left texel is
// (tx, ty) and writes the RGBA8 result into dst[0:4].
//
// t1 and t2 are the horizontal and vertical fractions in [0, 1). Each
// channel is blended independently on the raw encoded values (no gamma) and
// truncated to a byte. Neighbor coordinates are clamped to the level edges,
// so a 1-texel-wide or 1-texel-tall source never reads outside its buffer.
func SampleBilinear(dst []byte, src Level, tx, ty int, t1, t2 float64) {
	x0 := clamp(tx, 0, src.Width-1)
	y0 := clamp(ty, 0, src.Height-1)
	x1 := clamp(tx+1, 0, src.Width-1)
	y1 := clamp(ty+1, 0, src.Height-1)

	tl := src.PixelOffset(x0, y0)
	tr := src.PixelOffset(x1, y0)
	bl := src.PixelOffset(x0, y1)
	br := src.PixelOffset(x1, y1)

	for c := range BytesPerPixel {
		top := mix(float64(src.Data[tl+c]), float64(src.Data[tr+c]), t1)
		bottom := mix(float64(src.Data[bl+c]), float64(src.Data[br+c]), t1)
		dst[c] = byte(mix(top, bottom, t2))
	}
}

// SampleBilinearRGBA is SampleBilinear returning the channels by value.
func SampleBilinearRGBA(src Level, tx, ty int, t1, t2 float64) (r, g, b, a uint8) {
	var px [BytesPerPixel]byte
	SampleBilinear(px[:], src, tx, ty, t1, t2)
	return px[0], px[1], px[2], px[3]
}

// mix is linear interpolation: a at t=0, b at t=1.
func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
