package seqfx

import (
	"math"
	"testing"
)

func renderPair(t *testing.T, typ EffectType, fac float64, in1, in2 *Frame) *Frame {
	t.Helper()
	ctx := NewRenderContext(in1.width, in1.height)
	s := &Strip{Type: typ}
	h := GetEffectHandle(typ)
	h.Init(s)
	out := RenderEffect(ctx, h, s, 0, fac, in1, in2, nil)
	if out == nil {
		t.Fatalf("%v produced nil output", typ)
	}
	return out
}

func TestCrossByteMidpoint(t *testing.T) {
	in1 := fillByteFrame(4, 4, [4]byte{100, 100, 100, 255})
	in2 := fillByteFrame(4, 4, [4]byte{200, 200, 200, 255})
	out := renderPair(t, EffectCross, 0.5, in1, in2)
	if out.bytes[0] != 150 {
		t.Errorf("midpoint = %d, want 150", out.bytes[0])
	}
	if out.bytes[3] != 255 {
		t.Errorf("alpha = %d, want 255", out.bytes[3])
	}
}

func TestCrossFloat(t *testing.T) {
	in1 := fillFloatFrame(2, 2, [4]float32{0, 0, 0, 1})
	in2 := fillFloatFrame(2, 2, [4]float32{1, 1, 1, 1})
	out := renderPair(t, EffectCross, 0.25, in1, in2)
	if !out.IsFloat() {
		t.Fatal("float inputs must keep a float output")
	}
	if got := out.floats[0]; math.Abs(float64(got)-0.25) > 1e-6 {
		t.Errorf("red = %g, want 0.25", got)
	}
}

func TestCrossPromotesMixedInputs(t *testing.T) {
	in1 := fillByteFrame(2, 2, [4]byte{255, 255, 255, 255})
	in2 := fillFloatFrame(2, 2, [4]float32{0, 0, 0, 1})
	out := renderPair(t, EffectCross, 0.5, in1, in2)
	if !out.IsFloat() {
		t.Fatal("mixed inputs must produce float output")
	}
	if got := out.floats[0]; math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("red = %g, want 0.5", got)
	}
}

func TestGammaCrossMidpointBrighterThanLinear(t *testing.T) {
	// Fading black to white in gamma space keeps the midpoint brighter
	// than the linear average.
	in1 := fillByteFrame(2, 2, [4]byte{0, 0, 0, 255})
	in2 := fillByteFrame(2, 2, [4]byte{255, 255, 255, 255})
	out := renderPair(t, EffectGammaCross, 0.5, in1, in2)
	if out.bytes[0] <= 128 {
		t.Errorf("gamma midpoint = %d, want > 128", out.bytes[0])
	}
	// sqrt(0.5)*255 + 0.5 = 180
	if out.bytes[0] != 180 {
		t.Errorf("gamma midpoint = %d, want 180", out.bytes[0])
	}
}

func TestGammaCrossFloatPreservesNegatives(t *testing.T) {
	in1 := fillFloatFrame(1, 1, [4]float32{-0.25, 0, 0, 1})
	in2 := fillFloatFrame(1, 1, [4]float32{-0.25, 0, 0, 1})
	out := renderPair(t, EffectGammaCross, 0.5, in1, in2)
	if got := out.floats[0]; math.Abs(float64(got)+0.25) > 1e-6 {
		t.Errorf("negative value = %g, want -0.25", got)
	}
}

func TestGammaRoundTrip(t *testing.T) {
	for _, v := range []float32{-2, -0.5, 0, 0.25, 1, 3} {
		got := gammaDown(gammaUp(v))
		if math.Abs(float64(got-v)) > 1e-5 {
			t.Errorf("round trip %g -> %g", v, got)
		}
	}
}
