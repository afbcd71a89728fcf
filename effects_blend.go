package seqfx

import "github.com/gogpu/seqfx/internal/blend"

// blendModeFor maps an effect type to its blend combination function, or
// ok=false when the type is not a blend mode.
func blendModeFor(t EffectType) (blend.Mode, bool) {
	switch t {
	case EffectBlendAdd:
		return blend.Add, true
	case EffectBlendSub:
		return blend.Sub, true
	case EffectBlendMul:
		return blend.Mul, true
	case EffectBlendLighten:
		return blend.Lighten, true
	case EffectBlendDarken:
		return blend.Darken, true
	case EffectBlendScreen:
		return blend.Screen, true
	case EffectBlendOverlay:
		return blend.Overlay, true
	case EffectBlendColorBurn:
		return blend.ColorBurn, true
	case EffectBlendLinearBurn:
		return blend.LinearBurn, true
	case EffectBlendDodge:
		return blend.Dodge, true
	case EffectBlendSoftLight:
		return blend.SoftLight, true
	case EffectBlendHardLight:
		return blend.HardLight, true
	case EffectBlendPinLight:
		return blend.PinLight, true
	case EffectBlendLinearLight:
		return blend.LinearLight, true
	case EffectBlendVividLight:
		return blend.VividLight, true
	case EffectBlendDifference:
		return blend.Difference, true
	case EffectBlendExclusion:
		return blend.Exclusion, true
	case EffectBlendHue:
		return blend.Hue, true
	case EffectBlendSaturation:
		return blend.Saturation, true
	case EffectBlendValue:
		return blend.Luminosity, true
	case EffectBlendColor:
		return blend.Color, true
	}
	return 0, false
}

// blendModeEffect runs one of the layer blend modes as an effect. Unlike
// the other handles it carries its combination function, but it is still
// stateless per strip.
type blendModeEffect struct {
	baseEffect
	mode blend.Mode
}

func (blendModeEffect) Multithreaded() bool { return true }

func (blendModeEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	return earlyOutMulInput2(s, fac)
}

func (e blendModeEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		blendModeSliceFloat(float32(fac), out.width, totalLines, r1, r2, ro, e.mode)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		blendModeSliceByte(float32(fac), out.width, totalLines, r1, r2, ro, e.mode)
	}
}

// blendModeSliceByte feeds each pixel pair through the mode's combinator
// with the top pixel's alpha pre-scaled by the factor. The combinator
// keeps the bottom pixel's alpha, and so does the final output.
func blendModeSliceByte(fac float32, width, lines int, rect1, rect2, out []byte, mode blend.Mode) {
	f := blend.FuncByte(mode)
	if f == nil {
		copy(out[:width*lines*4], rect1)
		return
	}
	var tmp [4]byte
	for p := 0; p < width*lines*4; p += 4 {
		copy(tmp[:], rect2[p:p+4])
		tmp[3] = byte(float32(tmp[3]) * fac)
		f(out[p:p+4], rect1[p:p+4], tmp[:])
		out[p+3] = rect1[p+3]
	}
}

func blendModeSliceFloat(fac float32, width, lines int, rect1, rect2, out []float32, mode blend.Mode) {
	f := blend.FuncFloat(mode)
	if f == nil {
		copy(out[:width*lines*4], rect1)
		return
	}
	var tmp [4]float32
	for p := 0; p < width*lines*4; p += 4 {
		copy(tmp[:], rect2[p:p+4])
		tmp[3] *= fac
		f(out[p:p+4], rect1[p:p+4], tmp[:])
		out[p+3] = rect1[p+3]
	}
}

// ColorMixData configures a color mix strip: one blend mode applied at a
// fixed strength, independent of the render factor.
type ColorMixData struct {
	// BlendType selects the combination, one of the EffectBlend types.
	BlendType EffectType

	// Factor is the blend strength in [0, 1].
	Factor float64
}

func (d *ColorMixData) clone() EffectData {
	c := *d
	return &c
}

// Color mix blends one input over the other with a payload-controlled
// mode and strength. The render factor is ignored.
type colorMixEffect struct{ baseEffect }

func (colorMixEffect) Multithreaded() bool { return true }

func (colorMixEffect) Init(s *Strip) {
	s.Data = &ColorMixData{BlendType: EffectBlendOverlay, Factor: 1}
}

func (e colorMixEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	data, _ := s.Data.(*ColorMixData)
	if data == nil {
		data = &ColorMixData{BlendType: EffectBlendOverlay, Factor: 1}
	}
	mode, ok := blendModeFor(data.BlendType)
	if !ok {
		mode = blend.Overlay
	}
	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		blendModeSliceFloat(float32(data.Factor), out.width, totalLines, r1, r2, ro, mode)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		blendModeSliceByte(float32(data.Factor), out.width, totalLines, r1, r2, ro, mode)
	}
}
