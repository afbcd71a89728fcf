package seqfx

// EffectType identifies an effect strip type or a layer blend mode.
type EffectType int

const (
	EffectNone EffectType = iota

	// Transitions and combinations with two inputs.
	EffectCross
	EffectGammaCross
	EffectAdd
	EffectSub
	EffectMul
	EffectAlphaOver
	EffectAlphaUnder
	EffectOverDrop

	// Single input effects.
	EffectWipe
	EffectGlow
	EffectTransform
	EffectSpeed
	EffectGaussianBlur
	EffectColorMix

	// Generators with no inputs.
	EffectColor
	EffectMulticam
	EffectAdjustment
	EffectText

	// Layer blend modes. These share one kernel parameterized by the
	// combination function.
	EffectBlendDarken
	EffectBlendMul
	EffectBlendColorBurn
	EffectBlendLinearBurn
	EffectBlendLighten
	EffectBlendScreen
	EffectBlendDodge
	EffectBlendAdd
	EffectBlendOverlay
	EffectBlendSoftLight
	EffectBlendHardLight
	EffectBlendPinLight
	EffectBlendLinearLight
	EffectBlendVividLight
	EffectBlendSub
	EffectBlendDifference
	EffectBlendExclusion
	EffectBlendHue
	EffectBlendSaturation
	EffectBlendValue
	EffectBlendColor
)

// String returns the effect name as shown in a strip list.
func (t EffectType) String() string {
	switch t {
	case EffectNone:
		return "none"
	case EffectCross:
		return "cross"
	case EffectGammaCross:
		return "gamma cross"
	case EffectAdd:
		return "add"
	case EffectSub:
		return "subtract"
	case EffectMul:
		return "multiply"
	case EffectAlphaOver:
		return "alpha over"
	case EffectAlphaUnder:
		return "alpha under"
	case EffectOverDrop:
		return "over drop"
	case EffectWipe:
		return "wipe"
	case EffectGlow:
		return "glow"
	case EffectTransform:
		return "transform"
	case EffectSpeed:
		return "speed"
	case EffectGaussianBlur:
		return "gaussian blur"
	case EffectColorMix:
		return "color mix"
	case EffectColor:
		return "color"
	case EffectMulticam:
		return "multicam"
	case EffectAdjustment:
		return "adjustment"
	case EffectText:
		return "text"
	case EffectBlendDarken:
		return "darken"
	case EffectBlendMul:
		return "blend multiply"
	case EffectBlendColorBurn:
		return "color burn"
	case EffectBlendLinearBurn:
		return "linear burn"
	case EffectBlendLighten:
		return "lighten"
	case EffectBlendScreen:
		return "screen"
	case EffectBlendDodge:
		return "dodge"
	case EffectBlendAdd:
		return "blend add"
	case EffectBlendOverlay:
		return "overlay"
	case EffectBlendSoftLight:
		return "soft light"
	case EffectBlendHardLight:
		return "hard light"
	case EffectBlendPinLight:
		return "pin light"
	case EffectBlendLinearLight:
		return "linear light"
	case EffectBlendVividLight:
		return "vivid light"
	case EffectBlendSub:
		return "blend subtract"
	case EffectBlendDifference:
		return "difference"
	case EffectBlendExclusion:
		return "exclusion"
	case EffectBlendHue:
		return "hue"
	case EffectBlendSaturation:
		return "saturation"
	case EffectBlendValue:
		return "value"
	case EffectBlendColor:
		return "blend color"
	}
	return "unknown"
}

// EffectData is the per-strip payload of an effect. Each effect type
// defines its own payload struct; handles create, copy and release it
// through the lifecycle operations.
type EffectData interface {
	// clone returns an independent deep copy of the payload.
	clone() EffectData
}

// releaser is implemented by payloads that own resources beyond plain
// memory (cached frame maps, font references).
type releaser interface {
	release()
}

// Strip is one timeline strip: the minimal model an effect needs.
// Timeline positions are in frames; fractional positions occur during
// retiming.
type Strip struct {
	Name string
	Type EffectType

	// BlendMode combines the strip with the layers below it when the
	// strip itself is not an effect. EffectNone means replace.
	BlendMode EffectType

	// Channel is the 1-based vertical position in the stack.
	Channel int

	// Start is where the strip content begins on the timeline.
	Start float64

	// StartOffset is how many frames of content are skipped at the
	// strip head by the left handle.
	StartOffset float64

	// Left and Right bound the visible frame range [Left, Right).
	Left  float64
	Right float64

	// Input1 and Input2 are the source strips of an effect strip.
	Input1 *Strip
	Input2 *Strip

	// Parent is the enclosing meta strip, if any.
	Parent *Strip

	// MulticamSource is the stack channel a multicam strip cuts to.
	MulticamSource int

	// Data holds the effect payload, owned by the strip.
	Data EffectData

	// effectNotLoaded is set when the strip comes from storage and its
	// runtime state still needs a Load pass.
	effectNotLoaded bool
}

// Length returns the visible strip length in frames.
func (s *Strip) Length() float64 {
	return s.Right - s.Left
}

// FrameIndex converts a timeline frame to a strip-relative index.
func (s *Strip) FrameIndex(frame float64) float64 {
	return frame - s.Left
}

// MarkEffectNotLoaded flags the strip so the next handle lookup runs the
// effect's Load step. Callers use this after deserializing strips.
func (s *Strip) MarkEffectNotLoaded() {
	s.effectNotLoaded = true
}
