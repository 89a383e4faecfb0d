package dali

import "fmt"

// FrameLen is the length, in bits, of a DALI forward frame addressed to
// control gear
const FrameLen = 16

// Frame is a 16 bit forward frame as transmitted on the bus, most
// significant byte first. The frame length is fixed, so decoders never
// need to perform a length check; 24 bit control device frames are not
// supported
type Frame [2]byte

// NewFrame creates a frame from a 16 bit value
func NewFrame(value int) Frame {
	return Frame{byte(value >> 8), byte(value)}
}

// Bit returns bit n of the frame where bit 0 is the least significant bit
func (f Frame) Bit(n uint) bool {
	return f[1-n/8]&(1<<(n%8)) != 0
}

// SetBit sets bit n of the frame to value
func (f *Frame) SetBit(n uint, value bool) {
	if value {
		f[1-n/8] |= 1 << (n % 8)
	} else {
		f[1-n/8] &^= 1 << (n % 8)
	}
}

// Bits returns bits hi..lo (inclusive, hi >= lo) as an integer
func (f Frame) Bits(hi, lo uint) int {
	v := int(f[0])<<8 | int(f[1])
	return (v >> lo) & (1<<(hi-lo+1) - 1)
}

// SetBits replaces bits hi..lo (inclusive) with value
func (f *Frame) SetBits(hi, lo uint, value int) {
	mask := (1<<(hi-lo+1) - 1) << lo
	v := (int(f[0])<<8 | int(f[1])) &^ mask
	v |= (value << lo) & mask
	f[0] = byte(v >> 8)
	f[1] = byte(v)
}

// Bytes returns the frame in transmission order
func (f Frame) Bytes() []byte {
	return []byte{f[0], f[1]}
}

func (f Frame) String() string {
	return fmt.Sprintf("%02x:%02x", f[0], f[1])
}

// BackwardFrame is an 8 bit reply from control gear. A framing error means
// the transport saw more than one device answer at once, in which case the
// payload byte is not reliable
type BackwardFrame struct {
	data byte
	err  bool
}

// NewBackwardFrame creates a cleanly received backward frame
func NewBackwardFrame(data byte) *BackwardFrame {
	return &BackwardFrame{data: data}
}

// NewBackwardFrameError creates a backward frame received with a framing
// error
func NewBackwardFrameError(data byte) *BackwardFrame {
	return &BackwardFrame{data: data, err: true}
}

// Value returns the payload byte
func (f *BackwardFrame) Value() byte {
	return f.data
}

// Bit returns bit n of the payload where bit 0 is the least significant bit
func (f *BackwardFrame) Bit(n uint) bool {
	return f.data&(1<<n) != 0
}

// FramingError indicates whether the frame was received with a framing
// error
func (f *BackwardFrame) FramingError() bool {
	return f.err
}

func (f *BackwardFrame) String() string {
	if f.err {
		return fmt.Sprintf("%02x (framing error)", f.data)
	}
	return fmt.Sprintf("%02x", f.data)
}
