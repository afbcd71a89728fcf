package seqfx

// Arithmetic combinations: add, subtract, multiply. The byte kernels mix
// in 8.8 fixed point; the float kernels deliberately skip clamping on
// add and keep only the zero floor on subtract, so HDR values pass
// through.
//
// Add and subtract weight the second input by its own alpha, so
// transparent regions contribute nothing. Output alpha is always the
// first input's alpha.

type addEffect struct{ baseEffect }

func (addEffect) Multithreaded() bool { return true }

func (addEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	return earlyOutMulInput2(s, fac)
}

func (addEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		addSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		addSliceByte(fac, out.width, totalLines, r1, r2, ro)
	}
}

func addSliceByte(fac float64, width, lines int, rect1, rect2, out []byte) {
	f := int(256 * fac)
	for p := 0; p < width*lines*4; p += 4 {
		f2 := f * int(rect2[p+3])
		for c := 0; c < 3; c++ {
			m := int(rect1[p+c]) + ((f2 * int(rect2[p+c])) >> 16)
			if m > 255 {
				m = 255
			}
			out[p+c] = byte(m)
		}
		out[p+3] = rect1[p+3]
	}
}

func addSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32) {
	mfac := 1 - fac
	for p := 0; p < width*lines*4; p += 4 {
		f := (1 - rect1[p+3]*mfac) * rect2[p+3]
		for c := 0; c < 3; c++ {
			out[p+c] = rect1[p+c] + f*rect2[p+c]
		}
		out[p+3] = rect1[p+3]
	}
}

type subEffect struct{ baseEffect }

func (subEffect) Multithreaded() bool { return true }

func (subEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	return earlyOutMulInput2(s, fac)
}

func (subEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		subSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		subSliceByte(fac, out.width, totalLines, r1, r2, ro)
	}
}

func subSliceByte(fac float64, width, lines int, rect1, rect2, out []byte) {
	f := int(256 * fac)
	for p := 0; p < width*lines*4; p += 4 {
		f2 := f * int(rect2[p+3])
		for c := 0; c < 3; c++ {
			m := int(rect1[p+c]) - ((f2 * int(rect2[p+c])) >> 16)
			if m < 0 {
				m = 0
			}
			out[p+c] = byte(m)
		}
		out[p+3] = rect1[p+3]
	}
}

func subSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32) {
	mfac := 1 - fac
	for p := 0; p < width*lines*4; p += 4 {
		f := (1 - rect1[p+3]*mfac) * rect2[p+3]
		for c := 0; c < 3; c++ {
			v := rect1[p+c] - f*rect2[p+c]
			if v < 0 {
				v = 0
			}
			out[p+c] = v
		}
		out[p+3] = rect1[p+3]
	}
}

// Multiply darkens the first input towards black where the second is
// dark, leaving it untouched where the second is white. All four
// channels participate, so alpha multiplies too.
type mulEffect struct{ baseEffect }

func (mulEffect) Multithreaded() bool { return true }

func (mulEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	return earlyOutMulInput2(s, fac)
}

func (mulEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		mulSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		mulSliceByte(fac, out.width, totalLines, r1, r2, ro)
	}
}

func mulSliceByte(fac float64, width, lines int, rect1, rect2, out []byte) {
	f := int(256 * fac)
	n := width * lines * 4
	for i := 0; i < n; i++ {
		out[i] = byte(int(rect1[i]) + ((f * int(rect1[i]) * (int(rect2[i]) - 255)) >> 16))
	}
}

func mulSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32) {
	n := width * lines * 4
	for i := 0; i < n; i++ {
		out[i] = rect1[i] + fac*rect1[i]*(rect2[i]-1)
	}
}
