package seqfx

import "math"

// GlowData configures a glow strip.
type GlowData struct {
	// Threshold is the minimum normalized intensity a pixel needs to
	// contribute to the glow.
	Threshold float64

	// Clamp caps the isolated highlight values, in [0, 1].
	Clamp float64

	// Boost scales the isolated highlights before blurring.
	Boost float64

	// BlurDist is the glow radius in pixels at full render size.
	BlurDist float64

	// Quality widens the blur kernel: higher values sample further out.
	Quality int

	// NoComposite outputs only the blurred glow instead of adding it
	// back onto the input.
	NoComposite bool
}

func (d *GlowData) clone() EffectData {
	c := *d
	return &c
}

// Glow isolates the bright parts of its input, blurs them and adds the
// result back on top. The three passes run in float space regardless of
// the input representation.
type glowEffect struct{ baseEffect }

func (glowEffect) NumInputs() int { return 1 }

func (glowEffect) Init(s *Strip) {
	s.Data = &GlowData{
		Threshold: 0.25,
		Clamp:     1,
		Boost:     0.5,
		BlurDist:  3,
		Quality:   3,
	}
}

func (glowEffect) Execute(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame) *Frame {
	data, _ := s.Data.(*GlowData)
	if data == nil {
		data = &GlowData{Threshold: 0.25, Clamp: 1, Boost: 0.5, BlurDist: 3, Quality: 3}
	}

	out := prepareOutput(ctx, in1)
	if out == nil {
		return nil
	}
	w, h := out.width, out.height

	// Working copy of the input as normalized floats.
	src := make([]float32, w*h*4)
	if in1.IsFloat() {
		copy(src, in1.floats)
	} else {
		for i, b := range in1.bytes {
			src[i] = float32(b) / 255
		}
	}

	glow := make([]float32, w*h*4)
	isolateHighlights(src, glow, w, h,
		float32(data.Threshold*3), float32(data.Boost*fac), float32(data.Clamp))
	glowBlur(glow, w, h, data.BlurDist*ctx.scale(), data.Quality)

	if !data.NoComposite {
		runRowSlices(h, func(start, count int) {
			for i := start * w * 4; i < (start+count)*w*4; i++ {
				v := src[i] + glow[i]
				if v > 1 {
					v = 1
				}
				glow[i] = v
			}
		})
	}

	if out.IsFloat() {
		copy(out.floats, glow)
	} else {
		for i, v := range glow {
			out.bytes[i] = byte(clampf(v, 0, 1)*255 + 0.5)
		}
	}
	return out
}

// isolateHighlights keeps only pixels whose summed RGB intensity exceeds
// the threshold, scaled by how far over it they are.
func isolateHighlights(in, out []float32, width, height int, threshold, boost, clamp float32) {
	runRowSlices(height, func(start, count int) {
		for p := start * width * 4; p < (start+count)*width*4; p += 4 {
			intensity := in[p] + in[p+1] + in[p+2] - threshold
			if intensity > 0 {
				for c := 0; c < 3; c++ {
					v := in[p+c] * boost * intensity
					if v > clamp {
						v = clamp
					}
					out[p+c] = v
				}
			} else {
				out[p], out[p+1], out[p+2] = 0, 0, 0
			}
			out[p+3] = in[p+3]
		}
	})
}

// glowBlur runs a separable blur over the buffer, rows then columns.
// The bell curve follows exp(-x^2 / (2*pi*blur^2)); quality stretches
// how far out the kernel reaches. Edges renormalize by the accumulated
// in-bounds weight so the image does not darken at the borders.
func glowBlur(buf []float32, width, height int, blur float64, quality int) {
	if blur <= 0 {
		return
	}

	halfWidth := int(float64(quality+1)*blur + 0.5)
	if halfWidth < 1 {
		return
	}
	k := -1 / (2 * math.Pi * blur * blur)
	filter := make([]float32, halfWidth)
	filter[0] = 1
	for ix := 1; ix < halfWidth; ix++ {
		filter[ix] = float32(math.Exp(k * float64(ix*ix)))
	}

	tmp := make([]float32, len(buf))

	// Rows.
	runRowSlices(height, func(start, count int) {
		var acc [4]float32
		for y := start; y < start+count; y++ {
			row := y * width * 4
			for x := 0; x < width; x++ {
				acc = [4]float32{}
				scale := float32(0)
				for n := -halfWidth + 1; n < halfWidth; n++ {
					nx := x + n
					if nx < 0 || nx >= width {
						continue
					}
					w := filter[abs(n)]
					scale += w
					sp := row + nx*4
					for c := 0; c < 4; c++ {
						acc[c] += buf[sp+c] * w
					}
				}
				p := row + x*4
				for c := 0; c < 4; c++ {
					tmp[p+c] = acc[c] / scale
				}
			}
		}
	})

	// Columns.
	runColumnSlices(width, func(start, count int) {
		var acc [4]float32
		for x := start; x < start+count; x++ {
			for y := 0; y < height; y++ {
				acc = [4]float32{}
				scale := float32(0)
				for n := -halfWidth + 1; n < halfWidth; n++ {
					ny := y + n
					if ny < 0 || ny >= height {
						continue
					}
					w := filter[abs(n)]
					scale += w
					sp := (ny*width + x) * 4
					for c := 0; c < 4; c++ {
						acc[c] += tmp[sp+c] * w
					}
				}
				p := (y*width + x) * 4
				for c := 0; c < 4; c++ {
					buf[p+c] = acc[c] / scale
				}
			}
		}
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
