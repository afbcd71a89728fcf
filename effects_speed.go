package seqfx

import "math"

// SpeedMode selects how a speed strip maps timeline frames onto its
// source.
type SpeedMode int

const (
	// SpeedStretch fits the whole source content into the effect
	// strip's length; only the right handle changes the playback rate.
	SpeedStretch SpeedMode = iota

	// SpeedMultiply scales the playback rate by a constant factor, or
	// by an animation curve when one drives the factor.
	SpeedMultiply

	// SpeedLength addresses the source by percentage of its length.
	SpeedLength

	// SpeedFrameNumber addresses the source by absolute frame.
	SpeedFrameNumber
)

// SpeedData configures a speed strip.
type SpeedData struct {
	Mode SpeedMode

	// Fader is the constant rate for SpeedMultiply when no curve is
	// animated.
	Fader float64

	// FaderLength is the source position for SpeedLength, in percent.
	FaderLength float64

	// FaderFrame is the source position for SpeedFrameNumber.
	FaderFrame float64

	// UseInterpolation blends the two source frames bracketing a
	// fractional target instead of snapping to one.
	UseInterpolation bool

	// frameMap caches the accumulated curve integration for
	// SpeedMultiply: frameMap[i] is the source frame index shown at
	// strip frame i.
	frameMap []float64
}

// clone copies the settings but not the frame map cache; the copy
// rebuilds its own on first use.
func (d *SpeedData) clone() EffectData {
	c := *d
	c.frameMap = nil
	return &c
}

func (d *SpeedData) release() {
	d.frameMap = nil
}

// SpeedTargetFrame maps a timeline frame through a speed strip to the
// timeline frame that should be fetched from the source. input selects
// which of the two bracketing frames to target when interpolation is on:
// 0 for the current frame, 1 for the next.
func SpeedTargetFrame(ctx *RenderContext, s *Strip, frame float64, input int) float64 {
	if s.Input1 == nil {
		return 0
	}
	data, _ := s.Data.(*SpeedData)
	if data == nil {
		return 0
	}
	source := s.Input1
	frameIndex := s.FrameIndex(frame)

	var target float64
	switch data.Mode {
	case SpeedStretch:
		if length := s.Length(); length > 0 {
			factor := (source.Length() - source.StartOffset) / length
			target = frameIndex * factor
		}
	case SpeedMultiply:
		if m := ensureSpeedFrameMap(ctx, s, data); m != nil {
			i := int(frameIndex)
			if i < 0 {
				i = 0
			} else if i >= len(m) {
				i = len(m) - 1
			}
			target = m[i]
		} else {
			target = frameIndex * data.Fader
		}
	case SpeedLength:
		target = source.Length() * data.FaderLength / 100
	case SpeedFrameNumber:
		target = data.FaderFrame
	}

	if target < 0 {
		target = 0
	} else if maxLen := source.Length(); target > maxLen {
		target = maxLen
	}
	target += s.Start

	if !data.UseInterpolation || input == 0 {
		return target
	}
	return math.Ceil(target)
}

// ensureSpeedFrameMap returns the cached curve integration, building it
// when the cache is empty. Without an animated factor there is nothing
// to integrate and the constant fader applies instead.
func ensureSpeedFrameMap(ctx *RenderContext, s *Strip, data *SpeedData) []float64 {
	length := int(s.Length())
	if s.Input1 == nil || length < 1 {
		return nil
	}
	if _, ok := ctx.evalCurve(s, "speed_factor", s.Left); !ok {
		return nil
	}
	if len(data.frameMap) == length {
		return data.frameMap
	}

	m := make([]float64, length)
	maxLen := s.Input1.Length()
	target := 0.0
	for i := 1; i < length; i++ {
		v, _ := ctx.evalCurve(s, "speed_factor", s.Left+float64(i))
		target += v
		if target < 0 {
			target = 0
		} else if target > maxLen {
			target = maxLen
		}
		m[i] = target
	}
	data.frameMap = m
	Logger().Debug("rebuilt speed frame map", "strip", s.Name, "frames", length)
	return m
}

// RebuildSpeedFrameMap drops a speed strip's cached frame map and
// integrates the factor curve again. Hosts call this after the curve or
// the strip boundaries change; plain invalidation is enough too, since
// the map also rebuilds lazily on next use.
func RebuildSpeedFrameMap(ctx *RenderContext, s *Strip) {
	data, _ := s.Data.(*SpeedData)
	if data == nil {
		return
	}
	data.frameMap = nil
	ensureSpeedFrameMap(ctx, s, data)
}

// speedInterpolationRatio is the fractional part of the target frame,
// used as the cross factor between the two bracketing source frames.
func speedInterpolationRatio(ctx *RenderContext, s *Strip, frame float64) float64 {
	target := SpeedTargetFrame(ctx, s, frame, 0)
	return target - math.Floor(target)
}

// Speed remaps time; the pixels either pass through or cross-fade
// between the two source frames bracketing the fractional target. The
// renderer resolves those source frames via SpeedTargetFrame before
// calling the effect.
type speedEffect struct{ baseEffect }

func (speedEffect) NumInputs() int { return 1 }

func (speedEffect) Init(s *Strip) {
	s.Data = &SpeedData{Mode: SpeedStretch, Fader: 1}
}

// Load drops any cache deserialized with the strip; it is rebuilt from
// the curve on first use.
func (speedEffect) Load(s *Strip) {
	if data, ok := s.Data.(*SpeedData); ok {
		data.frameMap = nil
	}
}

func (speedEffect) Execute(ctx *RenderContext, s *Strip, frame, fac float64,
	in1, in2, in3 *Frame) *Frame {
	data, _ := s.Data.(*SpeedData)

	if data != nil && data.UseInterpolation && in1 != nil && in2 != nil {
		ratio := speedInterpolationRatio(ctx, s, frame)
		return RenderEffect(ctx, crossHandle, s, frame, ratio, in1, in2, in3)
	}

	if in1 == nil {
		return nil
	}
	return in1.Clone()
}
