// Package filter provides 1D convolution kernels for the separable blur
// passes.
package filter

import (
	"math"
	"sync"
)

// Gaussian1D returns a normalized gaussian kernel with 2*size+1 taps.
// Tap i (counted from -size to size) samples the falloff curve at
// i/radius, so the curve always spans the kernel regardless of its pixel
// width. The taps sum to 1 and the kernel is symmetric around the center.
//
// A non-positive radius collapses every tap onto the curve's peak; after
// normalization that is a box kernel, callers normally avoid it by
// skipping the pass entirely.
func Gaussian1D(size int, radius float64) []float32 {
	n := 2*size + 1
	k := make([]float32, n)

	fac := 0.0
	if radius > 0 {
		fac = 1.0 / radius
	}

	sum := 0.0
	for i := -size; i <= size; i++ {
		v := gaussFalloff(float64(i) * fac)
		sum += v
		k[i+size] = float32(v)
	}

	inv := float32(1.0 / sum)
	for i := range k {
		k[i] *= inv
	}
	return k
}

// gaussFalloff evaluates the blur falloff curve at normalized distance x.
func gaussFalloff(x float64) float64 {
	return math.Exp(-2 * x * x)
}

// kernelKey quantizes the radius to 1/100 pixel so nearly identical blur
// sizes share a cache entry.
type kernelKey struct {
	size   int
	radius int
}

var (
	kernelMu    sync.RWMutex
	kernelCache = map[kernelKey][]float32{}
)

// CachedGaussian1D is Gaussian1D with memoization. Kernels are shared,
// so callers must not modify the returned slice.
func CachedGaussian1D(size int, radius float64) []float32 {
	key := kernelKey{size: size, radius: int(radius*100 + 0.5)}

	kernelMu.RLock()
	k, ok := kernelCache[key]
	kernelMu.RUnlock()
	if ok {
		return k
	}

	k = Gaussian1D(size, radius)

	kernelMu.Lock()
	kernelCache[key] = k
	kernelMu.Unlock()
	return k
}
