package dali

import (
	"bytes"
	"testing"
)

func TestFrameBits(t *testing.T) {
	tests := []struct {
		input    int
		hi, lo   uint
		expected int
	}{
		{0xff00, 15, 8, 0xff},
		{0xff00, 7, 0, 0x00},
		{0x0113, 8, 8, 0x01},
		{0x0113, 7, 4, 0x01},
		{0x0113, 3, 0, 0x03},
		{0x8712, 15, 9, 0x43},
		{0xb70b, 6, 1, 0x05},
	}

	for i, test := range tests {
		f := NewFrame(test.input)
		if f.Bits(test.hi, test.lo) != test.expected {
			t.Errorf("tests[%d] expected 0x%02x got 0x%02x", i, test.expected, f.Bits(test.hi, test.lo))
		}
	}
}

func TestFrameSetBits(t *testing.T) {
	f := NewFrame(0x0100)
	f.SetBits(15, 9, 0x7f)
	if f != NewFrame(0xff00) {
		t.Errorf("expected %v got %v", NewFrame(0xff00), f)
	}

	f = NewFrame(0xffff)
	f.SetBits(15, 9, 0x05)
	if f != NewFrame(0x0bff) {
		t.Errorf("expected %v got %v", NewFrame(0x0bff), f)
	}
}

func TestFrameBit(t *testing.T) {
	f := NewFrame(0x0113)
	tests := []struct {
		bit      uint
		expected bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{4, true},
		{8, true},
		{9, false},
		{15, false},
	}

	for i, test := range tests {
		if f.Bit(test.bit) != test.expected {
			t.Errorf("tests[%d] expected %v got %v", i, test.expected, f.Bit(test.bit))
		}
	}

	f.SetBit(15, true)
	if !f.Bit(15) {
		t.Errorf("expected bit 15 to be set")
	}
	f.SetBit(15, false)
	if f.Bit(15) {
		t.Errorf("expected bit 15 to be clear")
	}
}

func TestFrameBytes(t *testing.T) {
	f := NewFrame(0xff08)
	if !bytes.Equal(f.Bytes(), []byte{0xff, 0x08}) {
		t.Errorf("expected [ff 08] got %v", f.Bytes())
	}

	if f.String() != "ff:08" {
		t.Errorf("expected %q got %q", "ff:08", f.String())
	}
}

func TestBackwardFrame(t *testing.T) {
	f := NewBackwardFrame(0xa5)
	if f.Value() != 0xa5 {
		t.Errorf("expected 0xa5 got 0x%02x", f.Value())
	}
	if f.FramingError() {
		t.Errorf("expected no framing error")
	}
	if !f.Bit(0) || f.Bit(1) || !f.Bit(2) {
		t.Errorf("unexpected bit values in 0xa5")
	}

	f = NewBackwardFrameError(0xff)
	if !f.FramingError() {
		t.Errorf("expected framing error")
	}
}
