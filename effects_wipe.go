package seqfx

import "math"

// WipeType selects the wipe geometry.
type WipeType int

const (
	// WipeSingle sweeps one edge across the frame.
	WipeSingle WipeType = iota

	// WipeDouble sweeps two parallel edges outward from the center.
	WipeDouble

	// WipeClock sweeps a radial edge around the center.
	WipeClock

	// WipeIris grows a circle from the center.
	WipeIris
)

// WipeData configures a wipe transition.
type WipeData struct {
	Type WipeType

	// EdgeWidth is the soft edge width as a fraction of the frame size,
	// 0 for a hard edge.
	EdgeWidth float64

	// Angle tilts the wipe edge, in radians. Negative angles flip the
	// sweep horizontally.
	Angle float64

	// Forward selects the sweep direction.
	Forward bool
}

func (d *WipeData) clone() EffectData {
	c := *d
	return &c
}

// wipeZone caches the per-frame geometry shared by every pixel.
type wipeZone struct {
	angle      float64
	flip       bool
	xo, yo     int
	width      float64
	pythangle  float64
	clockWidth float64
}

func precalcWipeZone(w *WipeData, xo, yo int) wipeZone {
	angle := math.Tan(math.Abs(w.Angle))
	return wipeZone{
		angle:      angle,
		flip:       w.Angle < 0,
		xo:         xo,
		yo:         yo,
		width:      w.EdgeWidth * float64(xo+yo) / 2,
		pythangle:  1 / math.Sqrt(angle*angle+1),
		clockWidth: w.EdgeWidth * math.Pi,
	}
}

// inBand converts a distance from the wipe edge into coverage. Pixels
// beyond the soft band get the side value outright; inside the band the
// coverage ramps linearly across it.
func inBand(width, dist float64, side int) float64 {
	if width == 0 || width < dist {
		return float64(side)
	}
	if side == 1 {
		return (dist + 0.5*width) / width
	}
	return (0.5*width - dist) / width
}

// checkZone returns the first input's coverage at pixel (x, y), in
// [0, 1].
func (z *wipeZone) checkZone(x, y int, w *WipeData, fac float64) float64 {
	xo, yo := float64(z.xo), float64(z.yo)
	halfx, halfy := xo/2, yo/2
	output := 0.0

	if z.flip {
		x = z.xo - x
	}
	fx, fy := float64(x), float64(y)
	angle := z.angle

	var posx, posy float64
	if w.Forward {
		posx, posy = fac*xo, fac*yo
	} else {
		posx, posy = xo-fac*xo, yo-fac*yo
	}

	switch w.Type {
	case WipeSingle:
		width := math.Min(z.width, fac*yo)
		width = math.Min(width, yo-fac*yo)

		var b1, b2, hyp float64
		if angle == 0 {
			b1 = posy
			b2 = fy
			hyp = math.Abs(fy - posy)
		} else {
			b1 = posy + angle*posx
			b2 = fy + angle*fx
			hyp = math.Abs(angle*fx+fy-posy-angle*posx) * z.pythangle
		}

		if w.Forward {
			if b1 < b2 {
				output = inBand(width, hyp, 1)
			} else {
				output = inBand(width, hyp, 0)
			}
		} else {
			if b1 < b2 {
				output = inBand(width, hyp, 0)
			} else {
				output = inBand(width, hyp, 1)
			}
		}

	case WipeDouble:
		if !w.Forward {
			fac = 1 - fac
			posx, posy = fac*xo, fac*yo
		}
		hwidth := z.width * 0.5

		var b1, b2, b3, hyp, hyp2 float64
		if angle == 0 {
			b1 = posy * 0.5
			b3 = yo - posy*0.5
			b2 = fy
			hyp = math.Abs(fy - posy*0.5)
			hyp2 = math.Abs(fy - (yo - posy*0.5))
		} else {
			b1 = posy*0.5 + angle*posx*0.5
			b3 = (yo - posy*0.5) + angle*(xo-posx*0.5)
			b2 = fy + angle*fx
			hyp = math.Abs(angle*fx+fy-posy*0.5-angle*posx*0.5) * z.pythangle
			hyp2 = math.Abs(angle*fx+fy-(yo-posy*0.5)-angle*(xo-posx*0.5)) * z.pythangle
		}

		hwidth = math.Min(hwidth, math.Abs(b3-b1)/2)

		switch {
		case b2 < b1 && b2 < b3:
			output = inBand(hwidth, hyp, 0)
		case b2 > b1 && b2 > b3:
			output = inBand(hwidth, hyp2, 0)
		default:
			if hyp < hyp2 {
				output = inBand(hwidth, hyp, 1)
			} else {
				output = inBand(hwidth, hyp2, 1)
			}
		}
		if !w.Forward {
			output = 1 - output
		}

	case WipeClock:
		// sweep: angle of the effect edge; pix: angle of this pixel
		// around the center; lo and hi bound the soft band.
		output = 1 - fac
		widthf := w.EdgeWidth * 2 * math.Pi
		sweep := 2 * math.Pi * fac
		if w.Forward {
			sweep = 2*math.Pi - sweep
		}

		dx, dy := fx-halfx, fy-halfy
		if dx == 0 && dy == 0 {
			output = 1
			break
		}

		pix := math.Asin(math.Abs(dy) / math.Hypot(dx, dy))
		switch {
		case dx <= 0 && dy >= 0:
			pix = math.Pi - pix
		case dx <= 0 && dy <= 0:
			pix += math.Pi
		case dx >= 0 && dy <= 0:
			pix = 2*math.Pi - pix
		}

		var lo, hi float64
		if w.Forward {
			lo = sweep - widthf*0.5*fac
			hi = sweep + widthf*0.5*(1-fac)
		} else {
			lo = sweep - widthf*0.5*(1-fac)
			hi = sweep + widthf*0.5*fac
		}
		lo = math.Max(lo, 0)
		hi = math.Min(hi, 2*math.Pi)

		switch {
		case pix < lo:
			output = 0
		case pix > hi:
			output = 1
		default:
			output = (pix - lo) / (hi - lo)
		}
		if math.IsNaN(output) {
			output = 1
		}
		if w.Forward {
			output = 1 - output
		}

	case WipeIris:
		if z.xo > z.yo {
			halfy = halfx
		} else {
			halfx = halfy
		}
		if !w.Forward {
			fac = 1 - fac
		}

		hwidth := z.width * 0.5
		edge := halfx - halfx*fac
		pointdist := math.Hypot(edge, edge)

		dist := math.Hypot(halfx-fx, halfy-fy)
		if dist > pointdist {
			output = inBand(hwidth, math.Abs(dist-pointdist), 0)
		} else {
			output = inBand(hwidth, math.Abs(dist-pointdist), 1)
		}
		if !w.Forward {
			output = 1 - output
		}
	}

	if output < 0 {
		return 0
	}
	if output > 1 {
		return 1
	}
	return output
}

// Wipe reveals the second input behind a sweeping edge. The coverage is
// a pure function of pixel position and factor, so scanline slices run
// independently.
type wipeEffect struct{ baseEffect }

func (wipeEffect) Multithreaded() bool { return true }

func (wipeEffect) Init(s *Strip) {
	s.Data = &WipeData{Forward: true}
}

func (wipeEffect) EarlyOut(s *Strip, fac float64) EarlyOut {
	return earlyOutFade(s, fac)
}

func (wipeEffect) DefaultFac(s *Strip, frame float64) float64 {
	return fadeFac(s, frame)
}

func (wipeEffect) ExecuteSlice(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame, startLine, totalLines int, out *Frame) {
	data, _ := s.Data.(*WipeData)
	if data == nil {
		data = &WipeData{Forward: true}
	}
	zone := precalcWipeZone(data, out.width, out.height)

	if out.IsFloat() {
		r1, r2, _, ro := sliceFloatBuffers(in1, in2, nil, out, startLine)
		wipeSliceFloat(&zone, data, fac, out.width, startLine, totalLines, r1, r2, ro)
	} else {
		r1, r2, _, ro := sliceByteBuffers(in1, in2, nil, out, startLine)
		wipeSliceByte(&zone, data, fac, out.width, startLine, totalLines, r1, r2, ro)
	}
}

func wipeSliceByte(zone *wipeZone, data *WipeData, fac float64,
	width, startLine, lines int, rect1, rect2, out []byte) {
	var rt1, rt2, tmp [4]float32
	for y := 0; y < lines; y++ {
		row := y * width * 4
		for x := 0; x < width; x++ {
			p := row + x*4
			check := float32(zone.checkZone(x, startLine+y, data, fac))
			if check == 0 {
				copy(out[p:p+4], rect2[p:p+4])
				continue
			}
			straightToPremul(&rt1, rect1[p:])
			straightToPremul(&rt2, rect2[p:])
			for c := 0; c < 4; c++ {
				tmp[c] = rt1[c]*check + rt2[c]*(1-check)
			}
			premulToStraight(out[p:], &tmp)
		}
	}
}

func wipeSliceFloat(zone *wipeZone, data *WipeData, fac float64,
	width, startLine, lines int, rect1, rect2, out []float32) {
	for y := 0; y < lines; y++ {
		row := y * width * 4
		for x := 0; x < width; x++ {
			p := row + x*4
			check := float32(zone.checkZone(x, startLine+y, data, fac))
			if check == 0 {
				copy(out[p:p+4], rect2[p:p+4])
				continue
			}
			for c := 0; c < 4; c++ {
				out[p+c] = clampf(rect1[p+c]*check+rect2[p+c]*(1-check), 0, 1)
			}
		}
	}
}
