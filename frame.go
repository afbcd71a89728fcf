package seqfx

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Frame is an RGBA image buffer with exactly one active pixel
// representation: 8-bit bytes or 32-bit floats. Both store 4 channels
// per pixel in row-major order, top row first.
//
// Effects pick their output representation from the inputs (float wins
// whenever any input is float) and may convert an input to the other
// representation in place before running; the pixel values themselves
// are never modified through a borrowed frame.
type Frame struct {
	width  int
	height int

	// Exactly one of the two buffers is non-nil.
	bytes  []byte
	floats []float32
}

// NewFrame allocates a zeroed byte frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		bytes:  make([]byte, width*height*4),
	}
}

// NewFloatFrame allocates a zeroed float frame.
func NewFloatFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		floats: make([]float32, width*height*4),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// IsFloat reports whether the float representation is active.
func (f *Frame) IsFloat() bool { return f.floats != nil }

// Bytes returns the byte pixel buffer, or nil when the float
// representation is active.
func (f *Frame) Bytes() []byte { return f.bytes }

// Floats returns the float pixel buffer, or nil when the byte
// representation is active.
func (f *Frame) Floats() []float32 { return f.floats }

// Clone returns a deep copy with the same representation. The copy
// shares no pixel storage with the original.
func (f *Frame) Clone() *Frame {
	c := &Frame{width: f.width, height: f.height}
	if f.floats != nil {
		c.floats = make([]float32, len(f.floats))
		copy(c.floats, f.floats)
	} else {
		c.bytes = make([]byte, len(f.bytes))
		copy(c.bytes, f.bytes)
	}
	return c
}

// ConvertToFloat switches the active representation to float. Byte
// values map onto [0, 1]. No-op when already float.
func (f *Frame) ConvertToFloat() {
	if f.floats != nil {
		return
	}
	fl := make([]float32, len(f.bytes))
	for i, b := range f.bytes {
		fl[i] = float32(b) / 255
	}
	f.floats = fl
	f.bytes = nil
}

// ConvertToByte switches the active representation to byte. Float
// values are clamped to [0, 1] and rounded. No-op when already byte.
func (f *Frame) ConvertToByte() {
	if f.bytes != nil {
		return
	}
	bs := make([]byte, len(f.floats))
	for i, v := range f.floats {
		if v <= 0 {
			continue
		}
		if v >= 1 {
			bs[i] = 255
			continue
		}
		bs[i] = byte(v*255 + 0.5)
	}
	f.bytes = bs
	f.floats = nil
}

// Image returns an image.RGBA sharing the frame's byte buffer. The frame
// must hold the byte representation.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.bytes,
		Stride: f.width * 4,
		Rect:   image.Rect(0, 0, f.width, f.height),
	}
}

// SavePNG writes the frame to a PNG file. Float frames are converted to
// bytes for encoding; the frame itself keeps its representation.
func (f *Frame) SavePNG(path string) error {
	src := f
	if f.IsFloat() {
		src = f.Clone()
		src.ConvertToByte()
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("seqfx: save png: %w", err)
	}
	if err := png.Encode(file, src.Image()); err != nil {
		file.Close()
		return fmt.Errorf("seqfx: save png: %w", err)
	}
	return file.Close()
}

// byteLine returns the byte scanline starting at row y.
func (f *Frame) byteLine(y int) []byte {
	return f.bytes[y*f.width*4:]
}

// floatLine returns the float scanline starting at row y.
func (f *Frame) floatLine(y int) []float32 {
	return f.floats[y*f.width*4:]
}

// sliceByteBuffers returns the byte buffers of up to three inputs and the
// output, each advanced to startLine. Nil frames yield nil slices, so
// kernels with fewer inputs can share the helper.
func sliceByteBuffers(in1, in2, in3, out *Frame, startLine int) (r1, r2, r3, ro []byte) {
	if in1 != nil {
		r1 = in1.byteLine(startLine)
	}
	if in2 != nil {
		r2 = in2.byteLine(startLine)
	}
	if in3 != nil {
		r3 = in3.byteLine(startLine)
	}
	ro = out.byteLine(startLine)
	return r1, r2, r3, ro
}

// sliceFloatBuffers is the float counterpart of sliceByteBuffers.
func sliceFloatBuffers(in1, in2, in3, out *Frame, startLine int) (r1, r2, r3, ro []float32) {
	if in1 != nil {
		r1 = in1.floatLine(startLine)
	}
	if in2 != nil {
		r2 = in2.floatLine(startLine)
	}
	if in3 != nil {
		r3 = in3.floatLine(startLine)
	}
	ro = out.floatLine(startLine)
	return r1, r2, r3, ro
}
