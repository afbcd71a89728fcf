package seqfx

// EarlyOut is an effect's answer to "can this render be skipped?".
type EarlyOut int

const (
	// EarlyDoEffect runs the effect normally.
	EarlyDoEffect EarlyOut = iota

	// EarlyUseInput1 passes the first input through unchanged.
	EarlyUseInput1

	// EarlyUseInput2 passes the second input through unchanged.
	EarlyUseInput2

	// EarlyNoInput runs the effect with no inputs at all (generators).
	EarlyNoInput
)

// Effect is the handle through which the renderer drives one effect
// type. Handles are stateless singletons; all per-strip state lives in
// the strip's payload.
//
// Execution is an optional capability: handles additionally implement
// sliceExecutor or wholeExecutor when they produce pixels. A handle with
// neither is a recognized no-op.
type Effect interface {
	// NumInputs returns how many source strips the effect consumes.
	NumInputs() int

	// Multithreaded reports whether ExecuteSlice may be fanned out
	// across scanline slices concurrently.
	Multithreaded() bool

	// SupportsMask reports whether the effect result may be combined
	// with a strip mask by the caller.
	SupportsMask() bool

	// Init resets the strip's payload to the effect defaults.
	Init(s *Strip)

	// Load derives runtime state after a strip comes from storage.
	Load(s *Strip)

	// Free releases the strip's payload and any resources it owns.
	Free(s *Strip)

	// Copy gives dst an independent copy of src's payload.
	Copy(dst, src *Strip)

	// EarlyOut decides whether rendering at this factor can be skipped.
	EarlyOut(s *Strip, fac float64) EarlyOut

	// DefaultFac returns the effect factor at frame when the strip has
	// no factor animation.
	DefaultFac(s *Strip, frame float64) float64
}

// sliceExecutor renders a horizontal band of scanlines. Kernels receive
// whole frames plus the band so neighborhood effects can read outside
// their own slice.
type sliceExecutor interface {
	ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
		in1, in2, in3 *Frame, startLine, totalLines int, out *Frame)
}

// wholeExecutor renders the full output frame in one call. Effects that
// manage their own threading or produce their output by delegation use
// this instead of ExecuteSlice.
type wholeExecutor interface {
	Execute(ctx *RenderContext, s *Strip, frame, fac float64,
		in1, in2, in3 *Frame) *Frame
}

// inputSwapper marks effects whose kernel reads its inputs in the
// opposite order from how the strip stores them. The renderer swaps the
// resolved frames before the early-out check; strips are not modified.
type inputSwapper interface {
	SwapInputs() bool
}

// baseEffect supplies the default behavior for every handle: two
// inputs, single threaded, plain payload copy, never skips, factor 1.
type baseEffect struct{}

func (baseEffect) NumInputs() int       { return 2 }
func (baseEffect) Multithreaded() bool  { return false }
func (baseEffect) SupportsMask() bool   { return false }
func (baseEffect) Init(*Strip)          {}
func (baseEffect) Load(*Strip)          {}
func (baseEffect) Copy(dst, src *Strip) { dst.Data = cloneData(src.Data) }

func (baseEffect) Free(s *Strip) {
	releaseData(s.Data)
	s.Data = nil
}

func (baseEffect) EarlyOut(*Strip, float64) EarlyOut  { return EarlyDoEffect }
func (baseEffect) DefaultFac(*Strip, float64) float64 { return 1 }

func cloneData(d EffectData) EffectData {
	if d == nil {
		return nil
	}
	return d.clone()
}

func releaseData(d EffectData) {
	if r, ok := d.(releaser); ok {
		r.release()
	}
}

// nopEffect handles unrecognized effect types: a populated handle whose
// every operation does nothing. It has no executor, so EffectInputCount
// reports zero inputs for it.
type nopEffect struct{ baseEffect }

func (nopEffect) NumInputs() int { return 0 }

// fadeFac ramps the factor linearly over the strip's length. It is the
// default factor of every transition.
func fadeFac(s *Strip, frame float64) float64 {
	length := s.Length()
	if length == 0 {
		return 0
	}
	return s.FrameIndex(frame) / length
}

// earlyOutFade skips the render at the factor extremes of a transition.
func earlyOutFade(_ *Strip, fac float64) EarlyOut {
	if fac == 0 {
		return EarlyUseInput1
	}
	if fac == 1 {
		return EarlyUseInput2
	}
	return EarlyDoEffect
}

// earlyOutMulInput1 passes through the second input when the effect
// contributes nothing.
func earlyOutMulInput1(_ *Strip, fac float64) EarlyOut {
	if fac == 0 {
		return EarlyUseInput2
	}
	return EarlyDoEffect
}

// earlyOutMulInput2 passes through the first input when the effect
// contributes nothing.
func earlyOutMulInput2(_ *Strip, fac float64) EarlyOut {
	if fac == 0 {
		return EarlyUseInput1
	}
	return EarlyDoEffect
}

// Handle singletons. Handles carry no state, so one instance per type
// serves all strips.
var (
	crossHandle        = crossEffect{}
	gammaCrossHandle   = gammaCrossEffect{}
	addHandle          = addEffect{}
	subHandle          = subEffect{}
	mulHandle          = mulEffect{}
	alphaOverHandle    = alphaOverEffect{}
	alphaUnderHandle   = alphaUnderEffect{}
	overDropHandle     = overDropEffect{}
	wipeHandle         = wipeEffect{}
	glowHandle         = glowEffect{}
	transformHandle    = transformEffect{}
	speedHandle        = speedEffect{}
	gaussianBlurHandle = gaussianBlurEffect{}
	colorMixHandle     = colorMixEffect{}
	solidColorHandle   = solidColorEffect{}
	multicamHandle     = multicamEffect{}
	adjustmentHandle   = adjustmentEffect{}
	textHandle         = textEffect{}
	nopHandle          = nopEffect{}
)

// GetEffectHandle returns the handle for an effect type. Unknown types
// get a no-op handle, never nil.
func GetEffectHandle(t EffectType) Effect {
	switch t {
	case EffectCross:
		return crossHandle
	case EffectGammaCross:
		return gammaCrossHandle
	case EffectAdd:
		return addHandle
	case EffectSub:
		return subHandle
	case EffectMul:
		return mulHandle
	case EffectAlphaOver:
		return alphaOverHandle
	case EffectAlphaUnder:
		return alphaUnderHandle
	case EffectOverDrop:
		return overDropHandle
	case EffectWipe:
		return wipeHandle
	case EffectGlow:
		return glowHandle
	case EffectTransform:
		return transformHandle
	case EffectSpeed:
		return speedHandle
	case EffectGaussianBlur:
		return gaussianBlurHandle
	case EffectColorMix:
		return colorMixHandle
	case EffectColor:
		return solidColorHandle
	case EffectMulticam:
		return multicamHandle
	case EffectAdjustment:
		return adjustmentHandle
	case EffectText:
		return textHandle
	}
	if mode, ok := blendModeFor(t); ok {
		return blendModeEffect{mode: mode}
	}
	return nopHandle
}

// StripEffectHandle returns the handle for an effect strip, running the
// effect's Load step once for strips freshly loaded from storage.
func StripEffectHandle(s *Strip) Effect {
	return stripHandle(s, s.Type)
}

// GetBlendHandle returns the handle that composites a strip onto the
// stack below it via its blend mode, or the no-op handle for replace
// mode.
func GetBlendHandle(s *Strip) Effect {
	if s.BlendMode == EffectNone {
		return nopHandle
	}
	return stripHandle(s, s.BlendMode)
}

func stripHandle(s *Strip, t EffectType) Effect {
	h := GetEffectHandle(t)
	if s.effectNotLoaded {
		s.effectNotLoaded = false
		h.Load(s)
	}
	return h
}

// EffectInputCount returns how many inputs the effect type consumes, or
// zero for types that produce no pixels.
func EffectInputCount(t EffectType) int {
	h := GetEffectHandle(t)
	if _, ok := h.(sliceExecutor); ok {
		return h.NumInputs()
	}
	if _, ok := h.(wholeExecutor); ok {
		return h.NumInputs()
	}
	return 0
}
