package seqfx

import (
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func renderText(t *testing.T, data *TextData, w, h int) *Frame {
	t.Helper()
	ctx := NewRenderContext(w, h)
	s := &Strip{Type: EffectText, Data: data}
	out := RenderEffect(ctx, GetEffectHandle(EffectText), s, 0, 1, nil, nil, nil)
	if out == nil {
		t.Fatal("text produced nil")
	}
	return out
}

func coveredPixels(f *Frame) int {
	n := 0
	for p := 3; p < len(f.bytes); p += 4 {
		if f.bytes[p] != 0 {
			n++
		}
	}
	return n
}

func textDefaults() *TextData {
	s := &Strip{Type: EffectText}
	GetEffectHandle(EffectText).Init(s)
	return s.Data.(*TextData)
}

func TestTextRendersPixels(t *testing.T) {
	data := textDefaults()
	data.Size = 20
	out := renderText(t, data, 128, 64)
	if out.IsFloat() {
		t.Fatal("text output must be byte")
	}
	if coveredPixels(out) == 0 {
		t.Error("no pixels drawn")
	}
}

func TestTextEmptyStringDrawsNothing(t *testing.T) {
	data := textDefaults()
	data.Text = ""
	out := renderText(t, data, 64, 32)
	if coveredPixels(out) != 0 {
		t.Error("empty text must leave the frame transparent")
	}
}

func TestTextInvisibleColorsDrawNothing(t *testing.T) {
	data := textDefaults()
	data.Size = 20
	data.Color[3] = 0
	out := renderText(t, data, 64, 32)
	if coveredPixels(out) != 0 {
		t.Error("fully transparent text must leave the frame empty")
	}

	// A visible shadow keeps the render alive.
	data.UseShadow = true
	out = renderText(t, data, 64, 32)
	if coveredPixels(out) == 0 {
		t.Error("shadow with alpha must still draw")
	}
}

func TestTextBoxFillsBackground(t *testing.T) {
	data := textDefaults()
	data.Size = 20
	data.UseBox = true
	plain := coveredPixels(renderText(t, data, 128, 64))
	data.UseBox = false
	bare := coveredPixels(renderText(t, data, 128, 64))
	if plain <= bare {
		t.Errorf("box covered %d pixels, bare text %d", plain, bare)
	}
}

func TestTextShadowAddsCoverage(t *testing.T) {
	data := textDefaults()
	data.Size = 20
	data.UseShadow = true
	shadowed := coveredPixels(renderText(t, data, 128, 64))
	data.UseShadow = false
	bare := coveredPixels(renderText(t, data, 128, 64))
	if shadowed <= bare {
		t.Errorf("shadow covered %d pixels, bare text %d", shadowed, bare)
	}
}

func TestTextWrapProducesMoreLines(t *testing.T) {
	data := textDefaults()
	data.Size = 16
	data.Text = "several words that will not fit on one narrow line"
	data.Align = TextAlignLeft
	data.AlignY = TextAlignTop
	data.Location = [2]float64{0, 0}

	// With a generous wrap width everything lands near the top; a
	// narrow wrap pushes later words further down.
	wide := renderText(t, data, 400, 200)
	data.WrapWidth = 0.25
	narrow := renderText(t, data, 400, 200)

	lastRow := func(f *Frame) int {
		last := -1
		for y := 0; y < f.height; y++ {
			for x := 0; x < f.width; x++ {
				if f.bytes[(y*f.width+x)*4+3] != 0 {
					last = y
				}
			}
		}
		return last
	}
	if lastRow(narrow) <= lastRow(wide) {
		t.Errorf("narrow wrap bottom row %d, wide %d", lastRow(narrow), lastRow(wide))
	}
}

func TestTextCustomFont(t *testing.T) {
	h, err := AcquireFont("test-text-font", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	data := textDefaults()
	data.Size = 20
	data.Font = h

	out := renderText(t, data, 128, 64)
	if coveredPixels(out) == 0 {
		t.Error("no pixels drawn with custom font")
	}

	// Releasing through the payload drops the cache reference.
	data.release()
	if got := fontRefCount("test-text-font"); got != 0 {
		t.Errorf("refs after release = %d, want 0", got)
	}
}

func TestTextDataCloneRetainsFont(t *testing.T) {
	h, err := AcquireFont("test-clone-font", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	data := &TextData{Text: "x", Size: 12, Font: h}

	c := data.clone().(*TextData)
	if got := fontRefCount("test-clone-font"); got != 2 {
		t.Fatalf("refs after clone = %d, want 2", got)
	}
	c.release()
	data.release()
	if got := fontRefCount("test-clone-font"); got != 0 {
		t.Errorf("refs = %d, want 0", got)
	}
}

func testFace(t *testing.T, size float64) font.Face {
	t.Helper()
	face, err := opentype.NewFace(builtinFont(), &opentype.FaceOptions{
		Size: size, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		t.Fatal(err)
	}
	return face
}

func TestLayoutTextLineBreaks(t *testing.T) {
	face := testFace(t, 16)
	lines, widths, blockW := layoutText(face, "one\ntwo three", 0)
	if len(lines) != 2 {
		t.Fatalf("lines = %v, want 2 entries", lines)
	}
	if len(widths) != 2 {
		t.Fatalf("widths = %v", widths)
	}
	if blockW != max(widths[0], widths[1]) {
		t.Errorf("blockW = %d, widths %v", blockW, widths)
	}
}
