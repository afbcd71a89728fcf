package seqfx

import (
	"math"
	"testing"
)

func wipeStrip(data *WipeData) *Strip {
	return &Strip{Type: EffectWipe, Data: data}
}

func renderWipe(t *testing.T, data *WipeData, fac float64, in1, in2 *Frame) *Frame {
	t.Helper()
	ctx := NewRenderContext(in1.width, in1.height)
	out := RenderEffect(ctx, GetEffectHandle(EffectWipe), wipeStrip(data), 0, fac, in1, in2, nil)
	if out == nil {
		t.Fatal("wipe produced nil")
	}
	return out
}

func TestWipeSingleHardEdge(t *testing.T) {
	in1 := fillByteFrame(8, 8, [4]byte{255, 255, 255, 255})
	in2 := fillByteFrame(8, 8, [4]byte{0, 0, 0, 255})
	out := renderWipe(t, &WipeData{Type: WipeSingle, Forward: true}, 0.5, in1, in2)

	// The edge sits at the vertical midpoint: rows above it show the
	// second input, rows below the first.
	for y := 0; y < 8; y++ {
		p := y * 8 * 4
		want := byte(0)
		if y > 4 {
			want = 255
		}
		if out.bytes[p] != want {
			t.Errorf("row %d = %d, want %d", y, out.bytes[p], want)
		}
	}
}

func TestWipeSingleBackward(t *testing.T) {
	in1 := fillByteFrame(8, 8, [4]byte{255, 255, 255, 255})
	in2 := fillByteFrame(8, 8, [4]byte{0, 0, 0, 255})
	out := renderWipe(t, &WipeData{Type: WipeSingle, Forward: false}, 0.5, in1, in2)

	// Backward flips which side holds which input.
	top := out.bytes[0]
	bottom := out.bytes[7*8*4]
	if top != 255 || bottom != 0 {
		t.Errorf("top/bottom = %d/%d, want 255/0", top, bottom)
	}
}

func TestWipeSoftEdgeBlends(t *testing.T) {
	in1 := fillByteFrame(8, 8, [4]byte{255, 255, 255, 255})
	in2 := fillByteFrame(8, 8, [4]byte{0, 0, 0, 255})
	out := renderWipe(t, &WipeData{Type: WipeSingle, EdgeWidth: 0.5, Forward: true}, 0.5, in1, in2)

	// On the edge itself coverage is one half.
	p := 4 * 8 * 4
	if got := out.bytes[p]; got < 126 || got > 130 {
		t.Errorf("edge pixel = %d, want ~128", got)
	}
	// Far from the edge the soft band has no reach.
	if out.bytes[0] != 0 {
		t.Errorf("top row = %d, want 0", out.bytes[0])
	}
	if out.bytes[7*8*4] != 255 {
		t.Errorf("bottom row = %d, want 255", out.bytes[7*8*4])
	}
}

func TestWipeIris(t *testing.T) {
	in1 := fillByteFrame(8, 8, [4]byte{255, 255, 255, 255})
	in2 := fillByteFrame(8, 8, [4]byte{0, 0, 0, 255})
	out := renderWipe(t, &WipeData{Type: WipeIris, Forward: true}, 0.5, in1, in2)

	// Inside the iris circle the first input shows, the corners keep the
	// second.
	center := (4*8 + 4) * 4
	if out.bytes[center] != 255 {
		t.Errorf("center = %d, want 255", out.bytes[center])
	}
	if out.bytes[0] != 0 {
		t.Errorf("corner = %d, want 0", out.bytes[0])
	}
}

func TestWipeClockCenter(t *testing.T) {
	data := &WipeData{Type: WipeClock, Forward: true}
	zone := precalcWipeZone(data, 8, 8)
	if got := zone.checkZone(4, 4, data, 0.5); got != 1 {
		t.Errorf("center coverage = %g, want 1", got)
	}
}

func TestWipeCoverageMonotonic(t *testing.T) {
	// Raising the factor hands more of the frame to the second input, so
	// the first input's coverage never grows.
	data := &WipeData{Type: WipeSingle, Forward: true}
	zone := precalcWipeZone(data, 16, 16)
	for y := 0; y < 16; y++ {
		prev := 2.0
		for _, fac := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			c := zone.checkZone(3, y, data, fac)
			if c > prev {
				t.Fatalf("coverage at y=%d grew from %g to %g at fac %g", y, prev, c, fac)
			}
			prev = c
		}
	}
}

func TestWipeCoverageClamped(t *testing.T) {
	types := []WipeType{WipeSingle, WipeDouble, WipeClock, WipeIris}
	for _, typ := range types {
		data := &WipeData{Type: typ, EdgeWidth: 0.3, Angle: math.Pi / 6, Forward: true}
		zone := precalcWipeZone(data, 12, 10)
		for y := 0; y < 10; y++ {
			for x := 0; x < 12; x++ {
				for _, fac := range []float64{0.2, 0.5, 0.8} {
					c := zone.checkZone(x, y, data, fac)
					if c < 0 || c > 1 || math.IsNaN(c) {
						t.Fatalf("type %d coverage(%d,%d,fac %g) = %g", typ, x, y, fac, c)
					}
				}
			}
		}
	}
}

func TestWipeEarlyOuts(t *testing.T) {
	in1 := fillByteFrame(4, 4, [4]byte{10, 10, 10, 255})
	in2 := fillByteFrame(4, 4, [4]byte{200, 200, 200, 255})
	out := renderWipe(t, &WipeData{Type: WipeSingle, Forward: true}, 0, in1, in2)
	if out.bytes[0] != 10 {
		t.Errorf("fac 0 = %d, want input1", out.bytes[0])
	}
	out = renderWipe(t, &WipeData{Type: WipeSingle, Forward: true}, 1, in1, in2)
	if out.bytes[0] != 200 {
		t.Errorf("fac 1 = %d, want input2", out.bytes[0])
	}
}
