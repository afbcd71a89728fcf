package blend

// Mode identifies a per-pixel color combination function.
//
// Every mode exists in two flavors: a byte form operating on 8-bit RGBA
// quads and a float form operating on float32 RGBA quads. The byte forms
// use fixed-point arithmetic with fast /255 approximations, the float
// forms work in [0, 1] and clamp their results.
type Mode int

const (
	Add Mode = iota
	Sub
	Mul
	Lighten
	Darken
	Screen
	Overlay
	ColorBurn
	LinearBurn
	Dodge
	SoftLight
	HardLight
	PinLight
	LinearLight
	VividLight
	Difference
	Exclusion
	Hue
	Saturation
	Luminosity
	Color
)

// ByteFunc combines src1 and src2 into dst. All three are 4-byte RGBA
// quads; src2's alpha acts as the blend factor and the result keeps
// src1's alpha. dst may alias src1.
type ByteFunc func(dst, src1, src2 []byte)

// FloatFunc is the float32 counterpart of ByteFunc.
type FloatFunc func(dst, src1, src2 []float32)

// FuncByte returns the byte combination function for mode, or nil when
// the mode is unknown.
func FuncByte(mode Mode) ByteFunc {
	switch mode {
	case Add:
		return AddByte
	case Sub:
		return SubByte
	case Mul:
		return MulByte
	case Lighten:
		return LightenByte
	case Darken:
		return DarkenByte
	case Screen:
		return ScreenByte
	case Overlay:
		return OverlayByte
	case ColorBurn:
		return ColorBurnByte
	case LinearBurn:
		return LinearBurnByte
	case Dodge:
		return DodgeByte
	case SoftLight:
		return SoftLightByte
	case HardLight:
		return HardLightByte
	case PinLight:
		return PinLightByte
	case LinearLight:
		return LinearLightByte
	case VividLight:
		return VividLightByte
	case Difference:
		return DifferenceByte
	case Exclusion:
		return ExclusionByte
	case Hue:
		return HueByte
	case Saturation:
		return SaturationByte
	case Luminosity:
		return LuminosityByte
	case Color:
		return ColorByte
	}
	return nil
}

// FuncFloat returns the float combination function for mode, or nil when
// the mode is unknown.
func FuncFloat(mode Mode) FloatFunc {
	switch mode {
	case Add:
		return AddFloat
	case Sub:
		return SubFloat
	case Mul:
		return MulFloat
	case Lighten:
		return LightenFloat
	case Darken:
		return DarkenFloat
	case Screen:
		return ScreenFloat
	case Overlay:
		return OverlayFloat
	case ColorBurn:
		return ColorBurnFloat
	case LinearBurn:
		return LinearBurnFloat
	case Dodge:
		return DodgeFloat
	case SoftLight:
		return SoftLightFloat
	case HardLight:
		return HardLightFloat
	case PinLight:
		return PinLightFloat
	case LinearLight:
		return LinearLightFloat
	case VividLight:
		return VividLightFloat
	case Difference:
		return DifferenceFloat
	case Exclusion:
		return ExclusionFloat
	case Hue:
		return HueFloat
	case Saturation:
		return SaturationFloat
	case Luminosity:
		return LuminosityFloat
	case Color:
		return ColorFloat
	}
	return nil
}
