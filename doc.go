// Package seqfx implements the per-pixel effect and compositing engine of
// a video sequence editor.
//
// # Overview
//
// seqfx renders effect strips: transitions (cross, gamma cross, wipe),
// combinations (add, subtract, multiply, alpha over/under, drop, the
// layer blend modes), filters (glow, gaussian blur, transform), retiming
// (speed), and generators (solid color, text). Every effect operates on
// RGBA frames in either 8-bit byte or 32-bit float form; the engine picks
// the output representation from the inputs and runs scanline slices of
// the heavy kernels across a worker pool.
//
// # Quick Start
//
//	import "github.com/gogpu/seqfx"
//
//	ctx := seqfx.NewRenderContext(1920, 1080)
//	strip := &seqfx.Strip{Type: seqfx.EffectCross}
//
//	h := seqfx.GetEffectHandle(strip.Type)
//	h.Init(strip)
//
//	fac := h.DefaultFac(strip, frame)
//	out := seqfx.RenderEffect(ctx, h, strip, frame, fac, in1, in2, nil)
//
// # Architecture
//
// The package is organized into:
//   - Public API: RenderContext, Strip, Frame, Effect handles
//   - Kernels: effects_*.go, one file per effect family
//   - Internal: blend (layer blend math), filter (blur kernels),
//     parallel (worker pool)
//
// # Coordinate System
//
// Frames use standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package seqfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
