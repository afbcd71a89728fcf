// Package blend implements the per-pixel color combination functions used
// by the layer blend modes, in both byte and float flavors.
//
// The div255 family of functions avoid expensive integer division by using
// bit shifts and addition. These are critical for performance as mulDiv255
// is called for every pixel in every blend operation.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 using fast shift approximation.
//
// Formula: (x + 255) >> 8
//
// This is ~5x faster than integer division. The maximum error is +1
// for some input values, which is imperceptible in blending.
func div255(x uint32) uint32 {
	return (x + 255) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 using fast approximation.
//
// Formula: (a * b + 255) >> 8
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// clamp255 clamps an int to byte range [0, 255]. Blend formulas such as
// linear burn and linear light produce intermediates outside byte range,
// so this takes a full int rather than an unsigned type.
func clamp255(x int) byte {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return byte(x)
}

// clamp01 clamps a float32 to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
