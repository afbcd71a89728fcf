package seqfx

import "math"

// Cross fades linearly between its two inputs. The byte kernel works in
// 8.8 fixed point so a full scanline needs no float math.
type crossEffect struct{ baseEffect }

func (crossEffect) Multithreaded() bool { return true }

func (crossEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	return earlyOutFade(s, fac)
}

func (crossEffect) DefaultFac(s *Strip, frame float64) float64 {
	return fadeFac(s, frame)
}

func (crossEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		crossSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		crossSliceByte(fac, out.width, totalLines, r1, r2, ro)
	}
}

func crossSliceByte(fac float64, width, lines int, rect1, rect2, out []byte) {
	f := int(256 * fac)
	mf := 256 - f
	n := width * lines * 4
	for i := 0; i < n; i++ {
		out[i] = byte((mf*int(rect1[i]) + f*int(rect2[i])) >> 8)
	}
}

func crossSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32) {
	mfac := 1 - fac
	n := width * lines * 4
	for i := 0; i < n; i++ {
		out[i] = mfac*rect1[i] + fac*rect2[i]
	}
}

// Gamma cross fades in a gamma 2.0 space, which keeps the perceived
// brightness steady through the transition. The forward map is x*|x|,
// the inverse a sign-preserving square root, so negative float values
// survive the round trip.
type gammaCrossEffect struct{ baseEffect }

func (gammaCrossEffect) Multithreaded() bool { return true }

func (gammaCrossEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	return earlyOutFade(s, fac)
}

func (gammaCrossEffect) DefaultFac(s *Strip, frame float64) float64 {
	return fadeFac(s, frame)
}

func (gammaCrossEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		gammaCrossSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		gammaCrossSliceByte(float32(fac), out.width, totalLines, r1, r2, ro)
	}
}

func gammaUp(c float32) float32 {
	if c < 0 {
		return -(c * c)
	}
	return c * c
}

func gammaDown(c float32) float32 {
	if c < 0 {
		return -float32(math.Sqrt(float64(-c)))
	}
	return float32(math.Sqrt(float64(c)))
}

func gammaCrossSliceByte(fac float32, width, lines int, rect1, rect2, out []byte) {
	mfac := 1 - fac
	n := width * lines * 4
	for i := 0; i < n; i++ {
		a := float32(rect1[i]) / 255
		b := float32(rect2[i]) / 255
		v := gammaDown(mfac*gammaUp(a) + fac*gammaUp(b))
		out[i] = byte(clampf(v, 0, 1)*255 + 0.5)
	}
}

func gammaCrossSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32) {
	mfac := 1 - fac
	n := width * lines * 4
	for i := 0; i < n; i++ {
		out[i] = gammaDown(mfac*gammaUp(rect1[i]) + fac*gammaUp(rect2[i]))
	}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
