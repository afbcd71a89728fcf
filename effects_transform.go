package seqfx

import "math"

// Interpolation selects the sampling filter of the transform effect.
type Interpolation int

const (
	InterpNearest Interpolation = iota
	InterpBilinear
	InterpBicubic
)

// TransformData configures a transform strip.
type TransformData struct {
	// ScaleX and ScaleY are the axis scale factors; ScaleY is ignored
	// when UniformScale is set.
	ScaleX       float64
	ScaleY       float64
	UniformScale bool

	// X and Y translate the image, in pixels or in percent of the frame
	// size depending on PercentUnits.
	X            float64
	Y            float64
	PercentUnits bool

	// Rotation is in degrees, positive counter-clockwise.
	Rotation float64

	Interpolation Interpolation
}

func (d *TransformData) clone() EffectData {
	c := *d
	return &c
}

// Transform translates, rotates and scales its input. Each output pixel
// is mapped back through the inverse transform and sampled from the
// input, so the kernel parallelizes over scanlines with no seams.
type transformEffect struct{ baseEffect }

func (transformEffect) NumInputs() int      { return 1 }
func (transformEffect) Multithreaded() bool { return true }

func (transformEffect) Init(s *Strip) {
	s.Data = &TransformData{
		ScaleX:        1,
		ScaleY:        1,
		PercentUnits:  true,
		Interpolation: InterpBilinear,
	}
}

func (transformEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	data, _ := s.Data.(*TransformData)
	if data == nil {
		data = &TransformData{ScaleX: 1, ScaleY: 1}
	}

	scaleX := data.ScaleX
	scaleY := data.ScaleY
	if data.UniformScale {
		scaleY = scaleX
	}
	if scaleX == 0 || scaleY == 0 {
		return
	}

	// The translation folds in the frame center, so the rotate and
	// scale steps run in center-relative coordinates.
	tx, ty := data.X, data.Y
	if data.PercentUnits {
		tx = data.X * float64(out.width) / 100
		ty = data.Y * float64(out.height) / 100
	}
	tx += float64(out.width) / 2
	ty += float64(out.height) / 2

	rot := data.Rotation * math.Pi / 180
	transformImage(in1, out, startLine, totalLines, scaleX, scaleY, tx, ty, rot, data.Interpolation)
}

// transformImage maps every output pixel of the band back into the input
// image: undo translation, then rotation, then scaling, all relative to
// the frame center.
func transformImage(in, out *Frame, startLine, totalLines int,
	scaleX, scaleY, translateX, translateY, rotate float64, interp Interpolation) {
	sin, cos := math.Sincos(rotate)
	cx := float64(out.width) / 2
	cy := float64(out.height) / 2

	for yi := startLine; yi < startLine+totalLines; yi++ {
		for xi := 0; xi < out.width; xi++ {
			xt := float64(xi) - translateX
			yt := float64(yi) - translateY

			xr := cos*xt + sin*yt
			yr := -sin*xt + cos*yt

			xt = xr/scaleX + cx
			yt = yr/scaleY + cy

			switch interp {
			case InterpNearest:
				sampleNearest(in, out, xt, yt, xi, yi)
			case InterpBicubic:
				sampleBicubic(in, out, xt, yt, xi, yi)
			default:
				sampleBilinear(in, out, xt, yt, xi, yi)
			}
		}
	}
}

// sampleNearest writes the input pixel nearest to (xt, yt) into the
// output at (xi, yi). Samples outside the input are transparent black.
func sampleNearest(in, out *Frame, xt, yt float64, xi, yi int) {
	x := int(xt)
	y := int(yt)
	p := (yi*out.width + xi) * 4

	if xt < 0 || yt < 0 || x >= in.width || y >= in.height {
		zeroPixel(out, p)
		return
	}
	sp := (y*in.width + x) * 4
	if out.IsFloat() {
		copy(out.floats[p:p+4], in.floats[sp:sp+4])
	} else {
		copy(out.bytes[p:p+4], in.bytes[sp:sp+4])
	}
}

func zeroPixel(out *Frame, p int) {
	if out.IsFloat() {
		out.floats[p], out.floats[p+1], out.floats[p+2], out.floats[p+3] = 0, 0, 0, 0
	} else {
		out.bytes[p], out.bytes[p+1], out.bytes[p+2], out.bytes[p+3] = 0, 0, 0, 0
	}
}

// pixelAt reads one input pixel as floats, yielding transparent black
// outside the image.
func pixelAt(in *Frame, x, y int, px *[4]float32) {
	if x < 0 || y < 0 || x >= in.width || y >= in.height {
		px[0], px[1], px[2], px[3] = 0, 0, 0, 0
		return
	}
	p := (y*in.width + x) * 4
	if in.IsFloat() {
		copy(px[:], in.floats[p:p+4])
		return
	}
	px[0] = float32(in.bytes[p])
	px[1] = float32(in.bytes[p+1])
	px[2] = float32(in.bytes[p+2])
	px[3] = float32(in.bytes[p+3])
}

func writePixel(out *Frame, p int, px *[4]float32) {
	if out.IsFloat() {
		copy(out.floats[p:p+4], px[:])
		return
	}
	for c := 0; c < 4; c++ {
		out.bytes[p+c] = byte(clampf(px[c], 0, 255) + 0.5)
	}
}

// sampleBilinear blends the four neighbors of (xt, yt) by area weight.
func sampleBilinear(in, out *Frame, xt, yt float64, xi, yi int) {
	p := (yi*out.width + xi) * 4
	if xt < -1 || yt < -1 || xt > float64(in.width) || yt > float64(in.height) {
		zeroPixel(out, p)
		return
	}

	x0 := int(math.Floor(xt))
	y0 := int(math.Floor(yt))
	fx := float32(xt - float64(x0))
	fy := float32(yt - float64(y0))

	var p00, p10, p01, p11, acc [4]float32
	pixelAt(in, x0, y0, &p00)
	pixelAt(in, x0+1, y0, &p10)
	pixelAt(in, x0, y0+1, &p01)
	pixelAt(in, x0+1, y0+1, &p11)

	for c := 0; c < 4; c++ {
		top := p00[c]*(1-fx) + p10[c]*fx
		bot := p01[c]*(1-fx) + p11[c]*fx
		acc[c] = top*(1-fy) + bot*fy
	}
	writePixel(out, p, &acc)
}

// cubicWeight is the Catmull-Rom weight (a = -0.5) at distance t.
func cubicWeight(t float64) float32 {
	t = math.Abs(t)
	const a = -0.5
	switch {
	case t <= 1:
		return float32((a+2)*t*t*t - (a+3)*t*t + 1)
	case t < 2:
		return float32(a*t*t*t - 5*a*t*t + 8*a*t - 4*a)
	}
	return 0
}

// sampleBicubic convolves the 4x4 neighborhood of (xt, yt) with
// Catmull-Rom weights. Sharper than bilinear, with slight ringing at
// hard edges.
func sampleBicubic(in, out *Frame, xt, yt float64, xi, yi int) {
	p := (yi*out.width + xi) * 4
	if xt < -2 || yt < -2 || xt > float64(in.width)+1 || yt > float64(in.height)+1 {
		zeroPixel(out, p)
		return
	}

	x0 := int(math.Floor(xt))
	y0 := int(math.Floor(yt))

	var acc, px [4]float32
	for m := -1; m <= 2; m++ {
		wy := cubicWeight(yt - float64(y0+m))
		if wy == 0 {
			continue
		}
		for n := -1; n <= 2; n++ {
			w := cubicWeight(xt-float64(x0+n)) * wy
			if w == 0 {
				continue
			}
			pixelAt(in, x0+n, y0+m, &px)
			for c := 0; c < 4; c++ {
				acc[c] += px[c] * w
			}
		}
	}
	writePixel(out, p, &acc)
}
