package seqfx

import "testing"

func renderSingle(t *testing.T, typ EffectType, data EffectData, in *Frame) *Frame {
	t.Helper()
	ctx := NewRenderContext(in.width, in.height)
	s := &Strip{Type: typ, Data: data}
	out := RenderEffect(ctx, GetEffectHandle(typ), s, 0, 1, in, nil, nil)
	if out == nil {
		t.Fatalf("%v produced nil", typ)
	}
	return out
}

func TestGaussianBlurZeroRadiusPassesThrough(t *testing.T) {
	in := fillByteFrame(4, 4, [4]byte{30, 60, 90, 255})
	out := renderSingle(t, EffectGaussianBlur, &GaussianBlurData{}, in)
	if out == in {
		t.Fatal("pass-through must be a copy")
	}
	for i, v := range in.bytes {
		if out.bytes[i] != v {
			t.Fatalf("byte %d = %d, want %d", i, out.bytes[i], v)
		}
	}
}

func TestGaussianBlurUniformStaysUniform(t *testing.T) {
	in := fillByteFrame(9, 9, [4]byte{120, 120, 120, 255})
	out := renderSingle(t, EffectGaussianBlur, &GaussianBlurData{SizeX: 2, SizeY: 2}, in)
	for i, v := range out.bytes {
		if v != 120 && (i+1)%4 != 0 {
			t.Fatalf("byte %d = %d, want 120", i, v)
		}
		if (i+1)%4 == 0 && v != 255 {
			t.Fatalf("alpha %d = %d, want 255", i, v)
		}
	}
}

func TestGaussianBlurSpreadsImpulse(t *testing.T) {
	in := NewFrame(9, 9)
	center := (4*9 + 4) * 4
	in.bytes[center], in.bytes[center+3] = 255, 255

	out := renderSingle(t, EffectGaussianBlur, &GaussianBlurData{SizeX: 2, SizeY: 2}, in)

	if out.bytes[center] >= 255 {
		t.Errorf("center = %d, want < 255 after blur", out.bytes[center])
	}
	left := (4*9 + 3) * 4
	right := (4*9 + 5) * 4
	if out.bytes[left] == 0 || out.bytes[right] == 0 {
		t.Error("horizontal neighbors received no energy")
	}
	if out.bytes[left] != out.bytes[right] {
		t.Errorf("asymmetric spread: %d vs %d", out.bytes[left], out.bytes[right])
	}
}

func TestGaussianBlurHorizontalOnly(t *testing.T) {
	in := NewFrame(9, 9)
	center := (4*9 + 4) * 4
	in.bytes[center], in.bytes[center+3] = 255, 255

	out := renderSingle(t, EffectGaussianBlur, &GaussianBlurData{SizeX: 2}, in)

	if out.bytes[(4*9+3)*4] == 0 {
		t.Error("horizontal neighbor received no energy")
	}
	if got := out.bytes[(3*9+4)*4]; got != 0 {
		t.Errorf("vertical neighbor = %d, want 0 with SizeY 0", got)
	}
}

func TestGaussianBlurFloat(t *testing.T) {
	in := fillFloatFrame(5, 5, [4]float32{0.25, 0.5, 0.75, 1})
	out := renderSingle(t, EffectGaussianBlur, &GaussianBlurData{SizeX: 1, SizeY: 1}, in)
	if !out.IsFloat() {
		t.Fatal("float input must keep a float output")
	}
	for i, v := range out.floats {
		want := in.floats[i]
		d := v - want
		if d < -1e-5 || d > 1e-5 {
			t.Fatalf("float %d = %g, want %g", i, v, want)
		}
	}
}
