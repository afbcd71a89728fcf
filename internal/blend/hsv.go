package blend

// Non-separable blend modes. These work on whole colors in HSV space:
// the result takes some components from src1 and others from src2, then
// mixes with src1 by src2's alpha like the separable modes do.

// rgbToHSV converts RGB in [0, 1] to hue/saturation/value, hue in [0, 1).
func rgbToHSV(r, g, b float32) (h, s, v float32) {
	cMax := max3(r, g, b)
	cMin := min3(r, g, b)
	v = cMax
	d := cMax - cMin
	if cMax > 0 {
		s = d / cMax
	}
	if d == 0 {
		return 0, s, v
	}
	switch cMax {
	case r:
		h = (g - b) / d
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, v
}

// hsvToRGB converts hue/saturation/value back to RGB, all in [0, 1].
func hsvToRGB(h, s, v float32) (r, g, b float32) {
	if s == 0 {
		return v, v, v
	}
	h = (h - floor32(h)) * 6
	i := int(h)
	f := h - float32(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func floor32(x float32) float32 {
	i := float32(int(x))
	if i > x {
		return i - 1
	}
	return i
}

// min3 returns the smallest of three values.
func min3(a, b, c float32) float32 {
	return minf(minf(a, b), c)
}

// max3 returns the largest of three values.
func max3(a, b, c float32) float32 {
	return maxf(maxf(a, b), c)
}

// HueFloat takes hue from src2, saturation and value from src1.
func HueFloat(dst, src1, src2 []float32) {
	blendHSVFloat(dst, src1, src2, func(h1, s1, v1, h2, s2, v2 float32) (float32, float32, float32) {
		return h2, s1, v1
	})
}

// SaturationFloat takes saturation from src2, hue and value from src1.
// Achromatic src1 pixels stay achromatic.
func SaturationFloat(dst, src1, src2 []float32) {
	blendHSVFloat(dst, src1, src2, func(h1, s1, v1, h2, s2, v2 float32) (float32, float32, float32) {
		if s1 > 0 {
			s1 = s2
		}
		return h1, s1, v1
	})
}

// LuminosityFloat takes value from src2, hue and saturation from src1.
func LuminosityFloat(dst, src1, src2 []float32) {
	blendHSVFloat(dst, src1, src2, func(h1, s1, v1, h2, s2, v2 float32) (float32, float32, float32) {
		return h1, s1, v2
	})
}

// ColorFloat takes hue and saturation from src2, value from src1.
func ColorFloat(dst, src1, src2 []float32) {
	blendHSVFloat(dst, src1, src2, func(h1, s1, v1, h2, s2, v2 float32) (float32, float32, float32) {
		return h2, s2, v1
	})
}

func blendHSVFloat(dst, src1, src2 []float32, pick func(h1, s1, v1, h2, s2, v2 float32) (float32, float32, float32)) {
	fac := src2[3]
	if fac <= 0 {
		copy(dst[:4], src1[:4])
		return
	}
	mfac := 1 - fac
	h1, s1, v1 := rgbToHSV(clamp01(src1[0]), clamp01(src1[1]), clamp01(src1[2]))
	h2, s2, v2 := rgbToHSV(clamp01(src2[0]), clamp01(src2[1]), clamp01(src2[2]))
	h, s, v := pick(h1, s1, v1, h2, s2, v2)
	r, g, b := hsvToRGB(h, s, v)
	dst[0] = clamp01(mfac*src1[0] + fac*r)
	dst[1] = clamp01(mfac*src1[1] + fac*g)
	dst[2] = clamp01(mfac*src1[2] + fac*b)
	dst[3] = src1[3]
}

// HueByte is the byte form of HueFloat.
func HueByte(dst, src1, src2 []byte) { blendHSVByte(dst, src1, src2, HueFloat) }

// SaturationByte is the byte form of SaturationFloat.
func SaturationByte(dst, src1, src2 []byte) { blendHSVByte(dst, src1, src2, SaturationFloat) }

// LuminosityByte is the byte form of LuminosityFloat.
func LuminosityByte(dst, src1, src2 []byte) { blendHSVByte(dst, src1, src2, LuminosityFloat) }

// ColorByte is the byte form of ColorFloat.
func ColorByte(dst, src1, src2 []byte) { blendHSVByte(dst, src1, src2, ColorFloat) }

// blendHSVByte routes a byte quad through the float combinator. The HSV
// conversion needs float precision anyway, so there is no fixed-point
// shortcut worth taking.
func blendHSVByte(dst, src1, src2 []byte, f FloatFunc) {
	var f1, f2, fd [4]float32
	for c := 0; c < 4; c++ {
		f1[c] = float32(src1[c]) / 255
		f2[c] = float32(src2[c]) / 255
	}
	f(fd[:], f1[:], f2[:])
	for c := 0; c < 4; c++ {
		dst[c] = byte(fd[c]*255 + 0.5)
	}
}
