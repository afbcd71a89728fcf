package seqfx

// SolidColorData holds the fill color of a color strip, RGB in [0, 1].
type SolidColorData struct {
	Color [3]float32
}

func (d *SolidColorData) clone() EffectData {
	c := *d
	return &c
}

// Solid color fills the frame with one opaque color. It has no inputs,
// so its output is always a byte frame.
type solidColorEffect struct{ baseEffect }

func (solidColorEffect) NumInputs() int { return 0 }

func (solidColorEffect) Init(s *Strip) {
	s.Data = &SolidColorData{}
}

func (solidColorEffect) EarlyOut(*Strip, float64) EarlyOut {
	return EarlyNoInput
}

func (solidColorEffect) Execute(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame) *Frame {
	data, _ := s.Data.(*SolidColorData)
	if data == nil {
		data = &SolidColorData{}
	}

	out := prepareOutput(ctx, in1)
	if out == nil {
		return nil
	}

	if out.IsFloat() {
		for p := 0; p < len(out.floats); p += 4 {
			out.floats[p] = data.Color[0]
			out.floats[p+1] = data.Color[1]
			out.floats[p+2] = data.Color[2]
			out.floats[p+3] = 1
		}
		return out
	}

	var col [4]byte
	for c := 0; c < 3; c++ {
		col[c] = byte(clampf(data.Color[c], 0, 1)*255 + 0.5)
	}
	col[3] = 255
	for p := 0; p < len(out.bytes); p += 4 {
		copy(out.bytes[p:p+4], col[:])
	}
	return out
}

// Multicam cuts to one channel of the strip stack below it. The actual
// pixels come from the host's stack renderer.
type multicamEffect struct{ baseEffect }

func (multicamEffect) NumInputs() int { return 0 }

func (multicamEffect) EarlyOut(*Strip, float64) EarlyOut {
	return EarlyNoInput
}

func (multicamEffect) Execute(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame) *Frame {
	if s.MulticamSource <= 0 || s.MulticamSource >= s.Channel {
		return nil
	}
	if ctx == nil || ctx.Stack == nil {
		Logger().Warn("multicam strip without stack renderer", "strip", s.Name)
		return nil
	}
	return ctx.Stack.RenderStack(frame, s.MulticamSource)
}

// Adjustment renders the stack below its own channel, giving the host a
// layer to hang modifiers and masks on. When nothing below it renders,
// the search walks up through enclosing meta strips.
type adjustmentEffect struct{ baseEffect }

func (adjustmentEffect) NumInputs() int     { return 0 }
func (adjustmentEffect) SupportsMask() bool { return true }

func (adjustmentEffect) EarlyOut(*Strip, float64) EarlyOut {
	return EarlyNoInput
}

// adjustmentMaxDepth bounds the meta ascent so a parent cycle in a
// malformed strip graph cannot hang the render.
const adjustmentMaxDepth = 64

func (adjustmentEffect) Execute(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame) *Frame {
	if ctx == nil || ctx.Stack == nil {
		return nil
	}

	cur := s
	for depth := 0; depth < adjustmentMaxDepth; depth++ {
		f := frame
		if f < cur.Left {
			f = cur.Left
		} else if f > cur.Right-1 {
			f = cur.Right - 1
		}

		if cur.Channel > 1 {
			if out := ctx.Stack.RenderStack(f, cur.Channel-1); out != nil {
				return out
			}
		}

		if cur.Parent == nil {
			break
		}
		cur = cur.Parent
	}
	return nil
}
