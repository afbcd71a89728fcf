package seqfx

// Alpha compositing effects. The kernels read their first input as the
// foreground, which is the reverse of how effect strips store their
// sources, so all three handles ask the renderer to swap the resolved
// frames.
//
// Byte pixels are straight alpha; each kernel converts to premultiplied
// floats per pixel, composites, and converts back. Float frames are
// premultiplied already.

// straightToPremul expands a straight-alpha byte quad to premultiplied
// floats.
func straightToPremul(dst *[4]float32, src []byte) {
	a := float32(src[3]) / 255
	dst[0] = float32(src[0]) / 255 * a
	dst[1] = float32(src[1]) / 255 * a
	dst[2] = float32(src[2]) / 255 * a
	dst[3] = a
}

// premulToStraight converts premultiplied floats back to a straight
// alpha byte quad.
func premulToStraight(dst []byte, src *[4]float32) {
	a := src[3]
	if a == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}
	inv := 1 / a
	dst[0] = byte(clampf(src[0]*inv, 0, 1)*255 + 0.5)
	dst[1] = byte(clampf(src[1]*inv, 0, 1)*255 + 0.5)
	dst[2] = byte(clampf(src[2]*inv, 0, 1)*255 + 0.5)
	dst[3] = byte(clampf(a, 0, 1)*255 + 0.5)
}

// Alpha over lays the foreground on top of the background, scaled by the
// factor.
type alphaOverEffect struct{ baseEffect }

func (alphaOverEffect) Multithreaded() bool { return true }
func (alphaOverEffect) SwapInputs() bool    { return true }

func (alphaOverEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	return earlyOutMulInput1(s, fac)
}

func (alphaOverEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		alphaOverSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		alphaOverSliceByte(float32(fac), out.width, totalLines, r1, r2, ro)
	}
}

func alphaOverSliceByte(fac float32, width, lines int, rect1, rect2, out []byte) {
	var rt1, rt2, tmp [4]float32
	for p := 0; p < width*lines*4; p += 4 {
		straightToPremul(&rt1, rect1[p:])
		straightToPremul(&rt2, rect2[p:])

		mfac := 1 - fac*rt1[3]
		switch {
		case fac <= 0:
			copy(out[p:p+4], rect2[p:p+4])
		case mfac <= 0:
			copy(out[p:p+4], rect1[p:p+4])
		default:
			for c := 0; c < 4; c++ {
				tmp[c] = fac*rt1[c] + mfac*rt2[c]
			}
			premulToStraight(out[p:], &tmp)
		}
	}
}

func alphaOverSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32) {
	for p := 0; p < width*lines*4; p += 4 {
		mfac := 1 - fac*rect1[p+3]
		switch {
		case fac <= 0:
			copy(out[p:p+4], rect2[p:p+4])
		case mfac <= 0:
			copy(out[p:p+4], rect1[p:p+4])
		default:
			for c := 0; c < 4; c++ {
				out[p+c] = fac*rect1[p+c] + mfac*rect2[p+c]
			}
		}
	}
}

// Alpha under fills the background's transparent regions with the
// foreground, leaving already-opaque background pixels alone.
type alphaUnderEffect struct{ baseEffect }

func (alphaUnderEffect) Multithreaded() bool { return true }
func (alphaUnderEffect) SwapInputs() bool    { return true }

func (alphaUnderEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		alphaUnderSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		alphaUnderSliceByte(float32(fac), out.width, totalLines, r1, r2, ro)
	}
}

func alphaUnderSliceByte(fac float32, width, lines int, rect1, rect2, out []byte) {
	var rt1, rt2, tmp [4]float32
	for p := 0; p < width*lines*4; p += 4 {
		straightToPremul(&rt1, rect1[p:])
		straightToPremul(&rt2, rect2[p:])

		switch {
		case rt2[3] <= 0 && fac >= 1:
			copy(out[p:p+4], rect1[p:p+4])
		case rt2[3] >= 1:
			copy(out[p:p+4], rect2[p:p+4])
		default:
			f := fac * (1 - rt2[3])
			for c := 0; c < 4; c++ {
				tmp[c] = f*rt1[c] + rt2[c]
			}
			premulToStraight(out[p:], &tmp)
		}
	}
}

func alphaUnderSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32) {
	for p := 0; p < width*lines*4; p += 4 {
		switch {
		case rect2[p+3] <= 0 && fac >= 1:
			copy(out[p:p+4], rect1[p:p+4])
		case rect2[p+3] >= 1:
			copy(out[p:p+4], rect2[p:p+4])
		default:
			f := fac * (1 - rect2[p+3])
			for c := 0; c < 4; c++ {
				out[p+c] = f*rect1[p+c] + rect2[p+c]
			}
		}
	}
}

// Over drop is alpha over with a drop shadow: the background is first
// darkened by the foreground's alpha shifted by a fixed offset, then the
// foreground composites on top.
type overDropEffect struct{ baseEffect }

const (
	dropOffsetX = 8
	dropOffsetY = 8

	// dropStrength is the maximum shadow darkening at factor 1, on the
	// byte scale.
	dropStrength = 70
)

func (overDropEffect) Multithreaded() bool { return true }
func (overDropEffect) SwapInputs() bool    { return true }

func (overDropEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	// The shadow pass writes the darkened background into out, then the
	// over pass reads it back as its background. Both passes touch each
	// pixel once, so the aliasing is safe.
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		dropShadowSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro)
		alphaOverSliceFloat(float32(fac), out.width, totalLines, r1, ro, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		dropShadowSliceByte(float32(fac), out.width, totalLines, r1, r2, ro)
		alphaOverSliceByte(float32(fac), out.width, totalLines, r1, ro, ro)
	}
}

// dropShadowSliceByte darkens the background (rect2) by the foreground's
// (rect1) alpha read dropOffset pixels up and left, writing into out.
// Rows and columns inside the offset margin copy through unchanged.
func dropShadowSliceByte(fac float32, width, lines int, rect1, rect2, out []byte) {
	xoff := min(dropOffsetX, width)
	yoff := min(dropOffsetY, lines)
	strength := int(dropStrength * fac)

	for y := 0; y < lines; y++ {
		row := y * width * 4
		for x := 0; x < width; x++ {
			p := row + x*4
			if x < xoff || y < yoff {
				copy(out[p:p+4], rect2[p:p+4])
				continue
			}
			src := ((y-yoff)*width + (x - xoff)) * 4
			f := (strength * int(rect1[src+3])) >> 8
			for c := 0; c < 4; c++ {
				v := int(rect2[p+c]) - f
				if v < 0 {
					v = 0
				}
				out[p+c] = byte(v)
			}
		}
	}
}

func dropShadowSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32) {
	xoff := min(dropOffsetX, width)
	yoff := min(dropOffsetY, lines)
	strength := dropStrength * fac / 255

	for y := 0; y < lines; y++ {
		row := y * width * 4
		for x := 0; x < width; x++ {
			p := row + x*4
			if x < xoff || y < yoff {
				copy(out[p:p+4], rect2[p:p+4])
				continue
			}
			src := ((y-yoff)*width + (x - xoff)) * 4
			f := strength * rect1[src+3]
			for c := 0; c < 4; c++ {
				v := rect2[p+c] - f
				if v < 0 {
					v = 0
				}
				out[p+c] = v
			}
		}
	}
}
