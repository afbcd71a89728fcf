package seqfx

// InputResolver renders the content of a source strip at a timeline
// frame. The engine uses it for effects that pull frames other than
// their pre-resolved inputs (speed retiming, multicam cuts).
type InputResolver interface {
	// ResolveInput returns the strip's image at frame, or nil when the
	// strip has no content there. The returned frame is borrowed.
	ResolveInput(s *Strip, frame float64) *Frame
}

// StackRenderer composites the strip stack below a channel at a frame.
// Multicam and adjustment strips re-enter the renderer through it.
type StackRenderer interface {
	// RenderStack returns the composited stack up to and including
	// channel, or nil when nothing renders there. The caller owns the
	// returned frame.
	RenderStack(frame float64, channel int) *Frame
}

// CurveEvaluator samples an animated strip property. Hosts without
// animation can leave it nil; effects then fall back to the static value
// stored in the payload.
type CurveEvaluator interface {
	// Evaluate returns the property value at frame. ok is false when
	// the property has no animation curve.
	Evaluate(s *Strip, property string, frame float64) (value float64, ok bool)
}

// ColorConverter transforms frames between the host's storage colorspace
// and the working space effects run in. The zero behavior (nil converter)
// is a plain numeric conversion between byte and float.
type ColorConverter interface {
	ToWorking(f *Frame)
	ToDisplay(f *Frame)
}

// RenderContext carries per-render state and host services into the
// effect kernels. The services are all optional; effects degrade to
// pass-through behavior when a service they need is missing.
type RenderContext struct {
	// Width and Height are the render resolution in pixels.
	Width  int
	Height int

	// Scale is the preview scale factor, 1 for final renders. Pixel
	// distances stored in payloads (blur sizes, drop offsets) are
	// multiplied by it.
	Scale float64

	// Inputs resolves source strip frames, may be nil.
	Inputs InputResolver

	// Stack re-renders parts of the strip stack, may be nil.
	Stack StackRenderer

	// Curves samples animated properties, may be nil.
	Curves CurveEvaluator

	// Colors converts between storage and working colorspace, may be
	// nil.
	Colors ColorConverter
}

// NewRenderContext returns a context for the given render resolution
// with no host services attached.
func NewRenderContext(width, height int) *RenderContext {
	return &RenderContext{Width: width, Height: height, Scale: 1}
}

// scale returns the preview scale factor, defaulting to 1.
func (ctx *RenderContext) scale() float64 {
	if ctx == nil || ctx.Scale <= 0 {
		return 1
	}
	return ctx.Scale
}

// evalCurve samples an animated property, reporting ok=false when no
// evaluator or curve exists.
func (ctx *RenderContext) evalCurve(s *Strip, property string, frame float64) (float64, bool) {
	if ctx == nil || ctx.Curves == nil {
		return 0, false
	}
	return ctx.Curves.Evaluate(s, property, frame)
}
