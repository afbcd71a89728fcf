package seqfx

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextAlign positions the text block horizontally around its anchor.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextAlignY positions the text block vertically around its anchor.
type TextAlignY int

const (
	TextAlignTop TextAlignY = iota
	TextAlignMiddle
	TextAlignBottom
)

// TextData configures a text strip.
type TextData struct {
	Text string

	// Size is the font size in pixels at full render size.
	Size float64

	// Color is the fill color, straight RGBA in [0, 1].
	Color [4]float32

	// ShadowColor is used when UseShadow is set.
	ShadowColor [4]float32
	UseShadow   bool

	// BoxColor fills a rectangle behind the text when UseBox is set;
	// BoxMargin is its padding as a fraction of the frame width.
	BoxColor  [4]float32
	UseBox    bool
	BoxMargin float64

	// Location anchors the text block, as fractions of the frame size.
	Location [2]float64

	Align  TextAlign
	AlignY TextAlignY

	// WrapWidth is the maximum line width as a fraction of the frame
	// width, 0 for no wrapping.
	WrapWidth float64

	// Font is the strip's font; nil uses the builtin.
	Font *FontHandle
}

func (d *TextData) clone() EffectData {
	c := *d
	c.Font = d.Font.retain()
	return &c
}

func (d *TextData) release() {
	d.Font.Release()
	d.Font = nil
}

// Text renders a string into a fresh frame. It has no inputs, so the
// output is always a byte frame; the host composites it over the stack
// with the strip's blend mode.
type textEffect struct{ baseEffect }

func (textEffect) NumInputs() int { return 0 }

func (textEffect) Init(s *Strip) {
	s.Data = &TextData{
		Text:        "Text",
		Size:        60,
		Color:       [4]float32{1, 1, 1, 1},
		ShadowColor: [4]float32{0, 0, 0, 1},
		BoxColor:    [4]float32{0.2, 0.2, 0.2, 0.7},
		BoxMargin:   0.01,
		Location:    [2]float64{0.5, 0.5},
		Align:       TextAlignCenter,
		AlignY:      TextAlignBottom,
		WrapWidth:   1,
	}
}

func (textEffect) EarlyOut(*Strip, float64) EarlyOut {
	return EarlyNoInput
}

func (textEffect) Execute(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame) *Frame {
	data, _ := s.Data.(*TextData)
	if data == nil {
		return nil
	}

	out := prepareOutput(ctx, in1)
	if out == nil {
		return nil
	}
	out.ConvertToByte()
	if data.Text == "" || textInvisible(data) {
		return out
	}

	fnt := builtinFont()
	if data.Font != nil {
		fnt = data.Font.font
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    data.Size * ctx.scale(),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		Logger().Warn("text strip face setup failed", "strip", s.Name, "err", err)
		return out
	}

	w, h := out.width, out.height
	img := out.Image()

	maxWidth := fixed.I(0)
	if data.WrapWidth > 0 {
		maxWidth = fixed.I(int(data.WrapWidth * float64(w)))
	}
	lines, widths, blockW := layoutText(face, data.Text, maxWidth)

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	blockH := lineHeight * len(lines)

	anchorX := int(data.Location[0] * float64(w))
	anchorY := int(data.Location[1] * float64(h))

	var left int
	switch data.Align {
	case TextAlignCenter:
		left = anchorX - blockW/2
	case TextAlignRight:
		left = anchorX - blockW
	default:
		left = anchorX
	}

	var top int
	switch data.AlignY {
	case TextAlignMiddle:
		top = anchorY - blockH/2
	case TextAlignBottom:
		top = anchorY - blockH
	default:
		top = anchorY
	}

	if data.UseBox {
		margin := int(data.BoxMargin * float64(w))
		box := image.Rect(left-margin, top-margin, left+blockW+margin, top+blockH+margin)
		draw.Draw(img, box.Intersect(img.Bounds()),
			image.NewUniform(floatNRGBA(data.BoxColor)), image.Point{}, draw.Over)
	}

	drawLines := func(src *image.Uniform, dx, dy int) {
		d := font.Drawer{Dst: img, Src: src, Face: face}
		for i, line := range lines {
			lx := left
			switch data.Align {
			case TextAlignCenter:
				lx += (blockW - widths[i]) / 2
			case TextAlignRight:
				lx += blockW - widths[i]
			}
			d.Dot = fixed.P(lx+dx, top+metrics.Ascent.Ceil()+i*lineHeight+dy)
			d.DrawString(line)
		}
	}

	if data.UseShadow {
		off := int(data.Size*ctx.scale()*0.06) + 1
		drawLines(image.NewUniform(floatNRGBA(data.ShadowColor)), off, off)
	}
	drawLines(image.NewUniform(floatNRGBA(data.Color)), 0, 0)
	return out
}

// textInvisible reports whether nothing the strip draws would have any
// alpha, so the render can skip face setup entirely.
func textInvisible(d *TextData) bool {
	if d.Color[3] != 0 {
		return false
	}
	if d.UseShadow && d.ShadowColor[3] != 0 {
		return false
	}
	if d.UseBox && d.BoxColor[3] != 0 {
		return false
	}
	return true
}

// layoutText splits the text into drawable lines, wrapping on word
// boundaries when a maximum width is set. It returns the lines, each
// line's advance in pixels and the widest advance.
func layoutText(face font.Face, text string, maxWidth fixed.Int26_6) (lines []string, widths []int, blockW int) {
	d := font.Drawer{Face: face}

	pushLine := func(line string) {
		adv := d.MeasureString(line).Ceil()
		lines = append(lines, line)
		widths = append(widths, adv)
		if adv > blockW {
			blockW = adv
		}
	}

	for _, para := range strings.Split(text, "\n") {
		if maxWidth <= 0 {
			pushLine(para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			pushLine("")
			continue
		}
		cur := words[0]
		for _, word := range words[1:] {
			next := cur + " " + word
			if d.MeasureString(next) > maxWidth {
				pushLine(cur)
				cur = word
				continue
			}
			cur = next
		}
		pushLine(cur)
	}
	return lines, widths, blockW
}

func floatNRGBA(c [4]float32) color.NRGBA {
	return color.NRGBA{
		R: byte(clampf(c[0], 0, 1)*255 + 0.5),
		G: byte(clampf(c[1], 0, 1)*255 + 0.5),
		B: byte(clampf(c[2], 0, 1)*255 + 0.5),
		A: byte(clampf(c[3], 0, 1)*255 + 0.5),
	}
}
