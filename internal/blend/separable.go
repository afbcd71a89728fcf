package blend

// Separable blend modes operate on each RGB channel independently.
//
// The byte forms follow a shared pattern: when src2 carries no alpha the
// source pixel passes through untouched, otherwise the blended channel
// value is mixed with src1 using src2's alpha as the factor. Output alpha
// is always src1's alpha; the caller decides how alpha composites.

// AddByte adds src2 to src1, scaled by src2's alpha.
func AddByte(dst, src1, src2 []byte) {
	fac := int(src2[3])
	if fac == 0 {
		copy(dst[:4], src1[:4])
		return
	}
	for c := 0; c < 3; c++ {
		dst[c] = clamp255(int(src1[c]) + fac*int(src2[c])/255)
	}
	dst[3] = src1[3]
}

// SubByte subtracts src2 from src1, scaled by src2's alpha.
func SubByte(dst, src1, src2 []byte) {
	fac := int(src2[3])
	if fac == 0 {
		copy(dst[:4], src1[:4])
		return
	}
	for c := 0; c < 3; c++ {
		dst[c] = clamp255(int(src1[c]) - fac*int(src2[c])/255)
	}
	dst[3] = src1[3]
}

// MulByte multiplies src1 by src2, mixed by src2's alpha.
func MulByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		return int(a) * int(b) / 255
	})
}

// LightenByte keeps the lighter channel value.
func LightenByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		return int(maxByte(a, b))
	})
}

// DarkenByte keeps the darker channel value.
func DarkenByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		return int(minByte(a, b))
	})
}

// ScreenByte inverts, multiplies and inverts again.
func ScreenByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		return 255 - (255-int(a))*(255-int(b))/255
	})
}

// OverlayByte multiplies dark regions and screens light ones, keyed on src1.
func OverlayByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		if a < 128 {
			return 2 * int(a) * int(b) / 255
		}
		return 255 - 2*(255-int(a))*(255-int(b))/255
	})
}

// ColorBurnByte darkens src1 by increasing contrast with src2.
func ColorBurnByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		if b == 0 {
			return 0
		}
		t := (255 - int(a)) * 255 / int(b)
		if t > 255 {
			return 0
		}
		return 255 - t
	})
}

// LinearBurnByte sums the channels and shifts down.
func LinearBurnByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		return int(a) + int(b) - 255
	})
}

// DodgeByte brightens src1 by decreasing contrast with src2.
func DodgeByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		if b == 255 {
			return 255
		}
		return int(a) * 255 / (255 - int(b))
	})
}

// SoftLightByte applies a gentle lighten/darken keyed on src1.
func SoftLightByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		half := int(b)/2 + 64
		if a < 128 {
			return half * int(a) * 2 / 255
		}
		return 255 - (255-half)*(255-int(a))*2/255
	})
}

// HardLightByte is overlay keyed on src2 instead of src1.
func HardLightByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		if b > 127 {
			return 255 - 2*(255-int(a))*(255-int(b))/255
		}
		return 2 * int(a) * int(b) / 255
	})
}

// PinLightByte replaces channels darker/lighter than the doubled src2.
func PinLightByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		if b > 127 {
			return int(maxByte(a, byte(clamp255(2*int(b)-255))))
		}
		return int(minByte(a, byte(clamp255(2*int(b)))))
	})
}

// LinearLightByte is linear burn/dodge keyed on src2.
func LinearLightByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		return int(a) + 2*int(b) - 255
	})
}

// VividLightByte is color burn/dodge keyed on src2.
func VividLightByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		if b > 127 {
			if b == 255 {
				return 255
			}
			return int(a) * 255 / (2 * (255 - int(b)))
		}
		if b == 0 {
			return 0
		}
		return 255 - (255-int(a))*255/(2*int(b))
	})
}

// DifferenceByte takes the absolute channel difference.
func DifferenceByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		if a > b {
			return int(a) - int(b)
		}
		return int(b) - int(a)
	})
}

// ExclusionByte is a lower-contrast difference.
func ExclusionByte(dst, src1, src2 []byte) {
	blendLerpByte(dst, src1, src2, func(a, b byte) int {
		return int(a) + int(b) - 2*int(a)*int(b)/255
	})
}

// blendLerpByte applies f per RGB channel and mixes the result with src1
// by src2's alpha. Intermediates from f may fall outside byte range.
func blendLerpByte(dst, src1, src2 []byte, f func(a, b byte) int) {
	fac := int(src2[3])
	if fac == 0 {
		copy(dst[:4], src1[:4])
		return
	}
	mfac := 255 - fac
	for c := 0; c < 3; c++ {
		t := f(src1[c], src2[c])
		if t < 0 {
			t = 0
		} else if t > 255 {
			t = 255
		}
		dst[c] = byte(div255(uint32(mfac*int(src1[c]) + fac*t)))
	}
	dst[3] = src1[3]
}

// Float forms of the separable modes. Inputs are expected in [0, 1];
// results are clamped there.

func AddFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		return a + b
	})
}

func SubFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		return a - b
	})
}

func MulFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		return a * b
	})
}

func LightenFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, maxf)
}

func DarkenFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, minf)
}

func ScreenFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		return 1 - (1-a)*(1-b)
	})
}

func OverlayFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		if a < 0.5 {
			return 2 * a * b
		}
		return 1 - 2*(1-a)*(1-b)
	})
}

func ColorBurnFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		if b == 0 {
			return 0
		}
		return 1 - minf(1, (1-a)/b)
	})
}

func LinearBurnFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		return a + b - 1
	})
}

func DodgeFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		if b == 1 {
			return 1
		}
		return a / (1 - b)
	})
}

func SoftLightFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		half := b/2 + 0.25
		if a < 0.5 {
			return half * a * 2
		}
		return 1 - (1-half)*(1-a)*2
	})
}

func HardLightFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		if b > 0.5 {
			return 1 - 2*(1-a)*(1-b)
		}
		return 2 * a * b
	})
}

func PinLightFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		if b > 0.5 {
			return maxf(a, 2*(b-0.5))
		}
		return minf(a, 2*b)
	})
}

func LinearLightFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		return a + 2*b - 1
	})
}

func VividLightFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		if b > 0.5 {
			if b == 1 {
				return 1
			}
			return a / (2 * (1 - b))
		}
		if b == 0 {
			return 0
		}
		return 1 - (1-a)/(2*b)
	})
}

func DifferenceFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		if a > b {
			return a - b
		}
		return b - a
	})
}

func ExclusionFloat(dst, src1, src2 []float32) {
	blendLerpFloat(dst, src1, src2, func(a, b float32) float32 {
		return a + b - 2*a*b
	})
}

func blendLerpFloat(dst, src1, src2 []float32, f func(a, b float32) float32) {
	fac := src2[3]
	if fac <= 0 {
		copy(dst[:4], src1[:4])
		return
	}
	mfac := 1 - fac
	for c := 0; c < 3; c++ {
		dst[c] = clamp01(mfac*src1[c] + fac*clamp01(f(src1[c], src2[c])))
	}
	dst[3] = src1[3]
}
