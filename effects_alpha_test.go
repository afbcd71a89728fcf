package seqfx

import (
	"math"
	"testing"
)

// The alpha compositing strips store the background as input 1 and the
// foreground as input 2; the renderer swaps the frames before the kernel
// sees them. These tests use the public entry point, so in1 is the
// background throughout.

func TestAlphaOverOpaqueForeground(t *testing.T) {
	bg := fillByteFrame(2, 2, [4]byte{0, 0, 255, 255})
	fg := fillByteFrame(2, 2, [4]byte{255, 0, 0, 255})
	out := renderPair(t, EffectAlphaOver, 1, bg, fg)
	want := [4]byte{255, 0, 0, 255}
	for c := 0; c < 4; c++ {
		if out.bytes[c] != want[c] {
			t.Errorf("channel %d = %d, want %d", c, out.bytes[c], want[c])
		}
	}
}

func TestAlphaOverFacZeroKeepsBackground(t *testing.T) {
	bg := fillByteFrame(2, 2, [4]byte{0, 0, 255, 255})
	fg := fillByteFrame(2, 2, [4]byte{255, 0, 0, 255})
	out := renderPair(t, EffectAlphaOver, 0, bg, fg)
	if out.bytes[2] != 255 || out.bytes[0] != 0 {
		t.Errorf("fac 0 pixel = %v, want background blue", out.bytes[:4])
	}
}

func TestAlphaOverHalfTransparent(t *testing.T) {
	bg := fillByteFrame(1, 1, [4]byte{0, 0, 255, 255})
	fg := fillByteFrame(1, 1, [4]byte{255, 0, 0, 128})
	out := renderPair(t, EffectAlphaOver, 1, bg, fg)
	if out.bytes[3] != 255 {
		t.Errorf("alpha = %d, want 255", out.bytes[3])
	}
	// Premultiplied mix of red over blue at alpha 128/255.
	if got := out.bytes[0]; got < 127 || got > 129 {
		t.Errorf("red = %d, want ~128", got)
	}
	if got := out.bytes[2]; got < 126 || got > 128 {
		t.Errorf("blue = %d, want ~127", got)
	}
}

func TestAlphaOverFloat(t *testing.T) {
	bg := fillFloatFrame(1, 1, [4]float32{0, 0, 1, 1})
	fg := fillFloatFrame(1, 1, [4]float32{0.5, 0, 0, 0.5})
	out := renderPair(t, EffectAlphaOver, 1, bg, fg)
	// Premultiplied: 0.5 + (1-0.5)*bg per channel.
	if got := out.floats[0]; math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("red = %g, want 0.5", got)
	}
	if got := out.floats[2]; math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("blue = %g, want 0.5", got)
	}
	if got := out.floats[3]; math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("alpha = %g, want 1", got)
	}
}

func TestAlphaUnderOpaqueBackgroundWins(t *testing.T) {
	bg := fillByteFrame(1, 1, [4]byte{0, 255, 0, 255})
	fg := fillByteFrame(1, 1, [4]byte{255, 0, 0, 255})
	out := renderPair(t, EffectAlphaUnder, 1, bg, fg)
	if out.bytes[1] != 255 || out.bytes[0] != 0 {
		t.Errorf("pixel = %v, want untouched background", out.bytes[:4])
	}
}

func TestAlphaUnderFillsTransparentBackground(t *testing.T) {
	bg := fillByteFrame(1, 1, [4]byte{0, 0, 0, 0})
	fg := fillByteFrame(1, 1, [4]byte{255, 0, 0, 255})
	out := renderPair(t, EffectAlphaUnder, 1, bg, fg)
	if out.bytes[0] != 255 || out.bytes[3] != 255 {
		t.Errorf("pixel = %v, want the foreground", out.bytes[:4])
	}
}

func TestAlphaUnderPartialBackground(t *testing.T) {
	bg := fillFloatFrame(1, 1, [4]float32{0, 0, 0.5, 0.5})
	fg := fillFloatFrame(1, 1, [4]float32{1, 0, 0, 1})
	out := renderPair(t, EffectAlphaUnder, 1, bg, fg)
	// f = 1*(1-0.5) = 0.5 of the foreground shows through.
	if got := out.floats[0]; math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("red = %g, want 0.5", got)
	}
	if got := out.floats[2]; math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("blue = %g, want 0.5", got)
	}
	if got := out.floats[3]; math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("alpha = %g, want 1", got)
	}
}

func TestDropShadowSliceByte(t *testing.T) {
	const w, h = 16, 16
	fg := NewFrame(w, h)
	// Opaque foreground patch in the top-left corner only.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := (y*w + x) * 4
			fg.bytes[p], fg.bytes[p+3] = 255, 255
		}
	}
	bg := fillByteFrame(w, h, [4]byte{100, 100, 100, 255})
	out := NewFrame(w, h)

	dropShadowSliceByte(1, w, h, fg.bytes, bg.bytes, out.bytes)

	// (10,10) is 8 pixels down-right of the opaque patch at (2,2):
	// darkened by (70*255)>>8 = 69.
	p := (10*w + 10) * 4
	if out.bytes[p] != 31 {
		t.Errorf("shadowed pixel = %d, want 31", out.bytes[p])
	}
	if out.bytes[p+3] != 186 {
		t.Errorf("shadowed alpha = %d, want 186", out.bytes[p+3])
	}

	// (2,2) is inside the offset margin: background copies through.
	p = (2*w + 2) * 4
	if out.bytes[p] != 100 || out.bytes[p+3] != 255 {
		t.Errorf("margin pixel = %v, want untouched background", out.bytes[p:p+4])
	}

	// (14,14) shadows from (6,6), where the foreground is transparent.
	p = (14*w + 14) * 4
	if out.bytes[p] != 100 {
		t.Errorf("unshadowed pixel = %d, want 100", out.bytes[p])
	}
}

func TestOverDropSlice(t *testing.T) {
	const w, h = 16, 16
	fg := NewFrame(w, h)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := (y*w + x) * 4
			fg.bytes[p], fg.bytes[p+3] = 255, 255
		}
	}
	bg := fillByteFrame(w, h, [4]byte{100, 100, 100, 255})
	out := NewFrame(w, h)

	// Shadow first, then the foreground over the darkened background,
	// the same two passes ExecuteSlice runs.
	dropShadowSliceByte(1, w, h, fg.bytes, bg.bytes, out.bytes)
	alphaOverSliceByte(1, w, h, fg.bytes, out.bytes, out.bytes)

	// The opaque patch replaces whatever is underneath.
	p := (2*w + 2) * 4
	if out.bytes[p] != 255 || out.bytes[p+3] != 255 {
		t.Errorf("foreground pixel = %v, want opaque red", out.bytes[p:p+4])
	}

	// The shadow region keeps the darkened background.
	p = (10*w + 10) * 4
	if out.bytes[p] != 31 {
		t.Errorf("shadow pixel = %d, want 31", out.bytes[p])
	}
}

func TestPremulRoundTrip(t *testing.T) {
	quads := [][4]byte{
		{255, 128, 0, 255},
		{200, 100, 50, 128},
		{10, 20, 30, 1},
		{0, 0, 0, 0},
	}
	var f [4]float32
	got := make([]byte, 4)
	for _, q := range quads {
		straightToPremul(&f, q[:])
		premulToStraight(got, &f)
		if got[3] != q[3] {
			t.Errorf("alpha %d -> %d", q[3], got[3])
		}
		if q[3] == 0 {
			continue
		}
		for c := 0; c < 3; c++ {
			d := int(got[c]) - int(q[c])
			if d < -1 || d > 1 {
				t.Errorf("quad %v channel %d round trip -> %d", q, c, got[c])
			}
		}
	}
}
