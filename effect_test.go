package seqfx

import "testing"

func TestGetEffectHandleNeverNil(t *testing.T) {
	for typ := EffectNone; typ <= EffectBlendColor+5; typ++ {
		if GetEffectHandle(typ) == nil {
			t.Errorf("GetEffectHandle(%d) returned nil", typ)
		}
	}
}

func TestUnknownTypeIsNoOp(t *testing.T) {
	h := GetEffectHandle(EffectType(9999))
	if _, ok := h.(sliceExecutor); ok {
		t.Error("no-op handle must not execute slices")
	}
	if _, ok := h.(wholeExecutor); ok {
		t.Error("no-op handle must not execute frames")
	}
	if got := h.NumInputs(); got != 0 {
		t.Errorf("NumInputs = %d, want 0", got)
	}

	// Lifecycle calls must be safe on any strip.
	s := &Strip{Type: EffectType(9999)}
	h.Init(s)
	h.Load(s)
	h.Copy(&Strip{}, s)
	h.Free(s)
}

func TestEffectInputCount(t *testing.T) {
	tests := []struct {
		typ  EffectType
		want int
	}{
		{EffectCross, 2},
		{EffectAlphaOver, 2},
		{EffectWipe, 2},
		{EffectTransform, 1},
		{EffectGlow, 1},
		{EffectSpeed, 1},
		{EffectGaussianBlur, 1},
		{EffectColor, 0},
		{EffectMulticam, 0},
		{EffectAdjustment, 0},
		{EffectText, 0},
		{EffectBlendScreen, 2},
		{EffectNone, 0},
		{EffectType(1234), 0},
	}
	for _, tt := range tests {
		if got := EffectInputCount(tt.typ); got != tt.want {
			t.Errorf("EffectInputCount(%v) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestFadeFac(t *testing.T) {
	s := &Strip{Left: 10, Right: 20}
	tests := []struct {
		frame float64
		want  float64
	}{
		{10, 0},
		{15, 0.5},
		{20, 1},
	}
	for _, tt := range tests {
		if got := fadeFac(s, tt.frame); got != tt.want {
			t.Errorf("fadeFac(frame %g) = %g, want %g", tt.frame, got, tt.want)
		}
	}

	empty := &Strip{Left: 5, Right: 5}
	if got := fadeFac(empty, 5); got != 0 {
		t.Errorf("fadeFac on empty strip = %g, want 0", got)
	}
}

func TestTransitionEarlyOuts(t *testing.T) {
	s := &Strip{}
	h := GetEffectHandle(EffectCross)
	if got := h.EarlyOut(s, 0); got != EarlyUseInput1 {
		t.Errorf("cross at fac 0: %v, want EarlyUseInput1", got)
	}
	if got := h.EarlyOut(s, 1); got != EarlyUseInput2 {
		t.Errorf("cross at fac 1: %v, want EarlyUseInput2", got)
	}
	if got := h.EarlyOut(s, 0.5); got != EarlyDoEffect {
		t.Errorf("cross at fac 0.5: %v, want EarlyDoEffect", got)
	}

	// Add contributes nothing at fac 0 and passes its base through.
	if got := GetEffectHandle(EffectAdd).EarlyOut(s, 0); got != EarlyUseInput1 {
		t.Errorf("add at fac 0: %v, want EarlyUseInput1", got)
	}

	// Alpha over composites input1 over input2; at fac 0 the foreground
	// vanishes. The kernel reads swapped inputs, so the pass-through is
	// its input2.
	if got := GetEffectHandle(EffectAlphaOver).EarlyOut(s, 0); got != EarlyUseInput2 {
		t.Errorf("alpha over at fac 0: %v, want EarlyUseInput2", got)
	}
}

func TestGetBlendHandle(t *testing.T) {
	replace := &Strip{BlendMode: EffectNone}
	if h := GetBlendHandle(replace); h.NumInputs() != 0 {
		t.Error("replace mode must map to the no-op handle")
	}

	over := &Strip{BlendMode: EffectAlphaOver}
	h := GetBlendHandle(over)
	if _, ok := h.(sliceExecutor); !ok {
		t.Error("alpha over blend handle must execute slices")
	}
}

func TestStripHandleRunsLoadOnce(t *testing.T) {
	s := &Strip{Type: EffectSpeed, Data: &SpeedData{Mode: SpeedMultiply, Fader: 2, frameMap: []float64{0, 2}}}
	s.MarkEffectNotLoaded()

	StripEffectHandle(s)
	data := s.Data.(*SpeedData)
	if data.frameMap != nil {
		t.Error("Load must drop the deserialized frame map")
	}
	if s.effectNotLoaded {
		t.Error("load flag must clear after the first handle lookup")
	}

	// Subsequent lookups must not run Load again.
	data.frameMap = []float64{0, 2}
	StripEffectHandle(s)
	if data.frameMap == nil {
		t.Error("Load ran twice")
	}
}

func TestCopyClonesPayload(t *testing.T) {
	src := &Strip{Type: EffectWipe}
	h := GetEffectHandle(EffectWipe)
	h.Init(src)

	dst := &Strip{Type: EffectWipe}
	h.Copy(dst, src)
	if dst.Data == nil {
		t.Fatal("copy produced no payload")
	}
	dst.Data.(*WipeData).EdgeWidth = 0.9
	if src.Data.(*WipeData).EdgeWidth == 0.9 {
		t.Error("payload copy shares state with the source")
	}

	h.Free(dst)
	if dst.Data != nil {
		t.Error("Free must clear the payload")
	}
}
