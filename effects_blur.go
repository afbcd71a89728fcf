package seqfx

import "github.com/gogpu/seqfx/internal/filter"

// GaussianBlurData configures a gaussian blur strip. The two radii are
// independent; a zero radius skips that axis entirely.
type GaussianBlurData struct {
	SizeX float64
	SizeY float64
}

func (d *GaussianBlurData) clone() EffectData {
	c := *d
	return &c
}

// Gaussian blur runs as two separable passes, horizontal then vertical.
// Each pass fans out over scanline bands; the vertical pass reads the
// whole intermediate image, so the passes synchronize between them.
type gaussianBlurEffect struct{ baseEffect }

func (gaussianBlurEffect) NumInputs() int { return 1 }

func (gaussianBlurEffect) Init(s *Strip) {
	s.Data = &GaussianBlurData{}
}

func (gaussianBlurEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	data, _ := s.Data.(*GaussianBlurData)
	if data == nil || (data.SizeX == 0 && data.SizeY == 0) {
		return EarlyUseInput1
	}
	return EarlyDoEffect
}

func (gaussianBlurEffect) Execute(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame) *Frame {
	data, _ := s.Data.(*GaussianBlurData)
	if data == nil {
		data = &GaussianBlurData{}
	}

	out := prepareOutput(ctx, in1)
	if out == nil {
		return nil
	}

	radX := data.SizeX * ctx.scale()
	radY := data.SizeY * ctx.scale()
	sizeX := int(radX + 0.5)
	sizeY := int(radY + 0.5)

	mid := in1
	if sizeX > 0 {
		kernel := filter.CachedGaussian1D(sizeX, radX)
		tmp := out
		if sizeY > 0 {
			if out.IsFloat() {
				tmp = NewFloatFrame(out.width, out.height)
			} else {
				tmp = NewFrame(out.width, out.height)
			}
		}
		runRowSlices(out.height, func(start, count int) {
			if out.IsFloat() {
				gaussianBlurXFloat(in1, tmp, start, count, sizeX, kernel)
			} else {
				gaussianBlurXByte(in1, tmp, start, count, sizeX, kernel)
			}
		})
		mid = tmp
	}

	if sizeY > 0 {
		kernel := filter.CachedGaussian1D(sizeY, radY)
		runRowSlices(out.height, func(start, count int) {
			if out.IsFloat() {
				gaussianBlurYFloat(mid, out, start, count, sizeY, kernel)
			} else {
				gaussianBlurYByte(mid, out, start, count, sizeY, kernel)
			}
		})
	} else if mid != out {
		if out.IsFloat() {
			copy(out.floats, mid.floats)
		} else {
			copy(out.bytes, mid.bytes)
		}
	}
	return out
}

// The pass kernels renormalize by the accumulated in-bounds weight, so
// taps falling outside the image neither darken the edge nor smear in
// border pixels.

func gaussianBlurXByte(in, out *Frame, startLine, lines, size int, kernel []float32) {
	width := in.width
	var acc [4]float32
	for y := startLine; y < startLine+lines; y++ {
		row := y * width * 4
		for x := 0; x < width; x++ {
			acc = [4]float32{}
			weight := float32(0)
			for nx := x - size; nx <= x+size; nx++ {
				if nx < 0 || nx >= width {
					continue
				}
				w := kernel[nx-x+size]
				weight += w
				sp := row + nx*4
				for c := 0; c < 4; c++ {
					acc[c] += float32(in.bytes[sp+c]) * w
				}
			}
			inv := 1 / weight
			p := row + x*4
			for c := 0; c < 4; c++ {
				out.bytes[p+c] = byte(acc[c]*inv + 0.5)
			}
		}
	}
}

func gaussianBlurXFloat(in, out *Frame, startLine, lines, size int, kernel []float32) {
	width := in.width
	var acc [4]float32
	for y := startLine; y < startLine+lines; y++ {
		row := y * width * 4
		for x := 0; x < width; x++ {
			acc = [4]float32{}
			weight := float32(0)
			for nx := x - size; nx <= x+size; nx++ {
				if nx < 0 || nx >= width {
					continue
				}
				w := kernel[nx-x+size]
				weight += w
				sp := row + nx*4
				for c := 0; c < 4; c++ {
					acc[c] += in.floats[sp+c] * w
				}
			}
			inv := 1 / weight
			p := row + x*4
			for c := 0; c < 4; c++ {
				out.floats[p+c] = acc[c] * inv
			}
		}
	}
}

func gaussianBlurYByte(in, out *Frame, startLine, lines, size int, kernel []float32) {
	width, height := in.width, in.height
	var acc [4]float32
	for y := startLine; y < startLine+lines; y++ {
		for x := 0; x < width; x++ {
			acc = [4]float32{}
			weight := float32(0)
			for ny := y - size; ny <= y+size; ny++ {
				if ny < 0 || ny >= height {
					continue
				}
				w := kernel[ny-y+size]
				weight += w
				sp := (ny*width + x) * 4
				for c := 0; c < 4; c++ {
					acc[c] += float32(in.bytes[sp+c]) * w
				}
			}
			inv := 1 / weight
			p := (y*width + x) * 4
			for c := 0; c < 4; c++ {
				out.bytes[p+c] = byte(acc[c]*inv + 0.5)
			}
		}
	}
}

func gaussianBlurYFloat(in, out *Frame, startLine, lines, size int, kernel []float32) {
	width, height := in.width, in.height
	var acc [4]float32
	for y := startLine; y < startLine+lines; y++ {
		for x := 0; x < width; x++ {
			acc = [4]float32{}
			weight := float32(0)
			for ny := y - size; ny <= y+size; ny++ {
				if ny < 0 || ny >= height {
					continue
				}
				w := kernel[ny-y+size]
				weight += w
				sp := (ny*width + x) * 4
				for c := 0; c < 4; c++ {
					acc[c] += in.floats[sp+c] * w
				}
			}
			inv := 1 / weight
			p := (y*width + x) * 4
			for c := 0; c < 4; c++ {
				out.floats[p+c] = acc[c] * inv
			}
		}
	}
}
