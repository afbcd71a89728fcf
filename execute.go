package seqfx

import (
	"sync"

	"github.com/gogpu/seqfx/internal/parallel"
)

// defaultPool fans scanline slices across cores. Created on first use so
// hosts that never render multithreaded effects pay nothing.
var (
	poolOnce sync.Once
	pool     *parallel.WorkerPool
)

func workerPool() *parallel.WorkerPool {
	poolOnce.Do(func() {
		pool = parallel.NewWorkerPool(0)
	})
	return pool
}

// RenderEffect runs one effect and returns a newly allocated output
// frame owned by the caller. Input frames are borrowed: the effect may
// switch their representation but never changes their pixels.
//
// Early-outs short-circuit the kernel and hand back a copy of the
// pass-through input. A nil result means the effect produced nothing
// (no-op handles, generators missing their host service, pass-through
// of a missing input).
func RenderEffect(ctx *RenderContext, h Effect, s *Strip, frame, fac float64, in1, in2, in3 *Frame) *Frame {
	if sw, ok := h.(inputSwapper); ok && sw.SwapInputs() {
		in1, in2 = in2, in1
	}

	switch h.EarlyOut(s, fac) {
	case EarlyUseInput1:
		if in1 == nil {
			return nil
		}
		return in1.Clone()
	case EarlyUseInput2:
		if in2 == nil {
			return nil
		}
		return in2.Clone()
	case EarlyNoInput:
		in1, in2, in3 = nil, nil, nil
	}

	if we, ok := h.(wholeExecutor); ok {
		return we.Execute(ctx, s, frame, fac, in1, in2, in3)
	}

	se, ok := h.(sliceExecutor)
	if !ok {
		return nil
	}

	out := prepareOutput(ctx, in1, in2, in3)
	if out == nil {
		return nil
	}

	if h.Multithreaded() {
		runRowSlices(out.height, func(start, count int) {
			se.ExecuteSlice(ctx, s, frame, fac, in1, in2, in3, start, count, out)
		})
	} else {
		se.ExecuteSlice(ctx, s, frame, fac, in1, in2, in3, 0, out.height, out)
	}
	return out
}

// prepareOutput allocates the output frame and settles the working
// representation: float as soon as any input is float, byte otherwise.
// Inputs in the losing representation are converted in place.
func prepareOutput(ctx *RenderContext, inputs ...*Frame) *Frame {
	w, h := 0, 0
	if ctx != nil && ctx.Width > 0 && ctx.Height > 0 {
		w, h = ctx.Width, ctx.Height
	} else {
		for _, in := range inputs {
			if in != nil {
				w, h = in.width, in.height
				break
			}
		}
	}
	if w == 0 || h == 0 {
		return nil
	}

	wantFloat := false
	for _, in := range inputs {
		if in != nil && in.IsFloat() {
			wantFloat = true
			break
		}
	}

	if wantFloat {
		for _, in := range inputs {
			if in == nil || in.IsFloat() {
				continue
			}
			if ctx != nil && ctx.Colors != nil {
				ctx.Colors.ToWorking(in)
			}
			in.ConvertToFloat()
		}
		return NewFloatFrame(w, h)
	}
	return NewFrame(w, h)
}

// runRowSlices splits height rows into one band per pool worker and
// blocks until every band has been processed.
func runRowSlices(height int, fn func(start, count int)) {
	p := workerPool()
	bands := p.Workers()
	if bands > height {
		bands = height
	}
	if bands <= 1 {
		fn(0, height)
		return
	}

	per := (height + bands - 1) / bands
	work := make([]func(), 0, bands)
	for start := 0; start < height; start += per {
		count := per
		if start+count > height {
			count = height - start
		}
		s, c := start, count
		work = append(work, func() { fn(s, c) })
	}
	p.ExecuteAll(work)
}

// runColumnSlices is runRowSlices turned sideways, used by vertical
// filter passes.
func runColumnSlices(width int, fn func(start, count int)) {
	runRowSlices(width, fn)
}
