package dali

import (
	"reflect"
	"testing"
)

func TestBasicResponse(t *testing.T) {
	tests := []struct {
		input    *BackwardFrame
		expected byte
		err      error
	}{
		{nil, 0, ErrMissingResponse},
		{NewBackwardFrame(0x81), 0x81, nil},
		{NewBackwardFrameError(0xff), 0, ErrFramingError},
	}

	for i, test := range tests {
		r := NewResponse(test.input).(*BasicResponse)
		value, err := r.Value()
		if err != test.err {
			t.Errorf("tests[%d] expected %v got %v", i, test.err, err)
		} else if value != test.expected {
			t.Errorf("tests[%d] expected 0x%02x got 0x%02x", i, test.expected, value)
		}
		if r.BackwardFrame() != test.input {
			t.Errorf("tests[%d] expected the raw frame to be returned", i)
		}
	}
}

func TestYesNoResponse(t *testing.T) {
	tests := []struct {
		input    *BackwardFrame
		expected bool
	}{
		{nil, false},
		{NewBackwardFrame(0xff), true},
		{NewBackwardFrame(0x00), true},
		// a framing error means more than one device answered "Yes"
		{NewBackwardFrameError(0xff), true},
	}

	for i, test := range tests {
		r := NewYesNoResponse(test.input).(*YesNoResponse)
		if r.Value() != test.expected {
			t.Errorf("tests[%d] expected %v got %v", i, test.expected, r.Value())
		}
	}
}

func TestBitmapResponseStatus(t *testing.T) {
	bits := []string{"a", "", "c"}

	tests := []struct {
		input    *BackwardFrame
		expected []string
		err      error
	}{
		{nil, nil, ErrMissingResponse},
		{NewBackwardFrame(0x05), []string{"a", "c"}, nil},
		{NewBackwardFrame(0x02), nil, nil}, // only the unnamed bit is set
		{NewBackwardFrame(0x07), []string{"a", "c"}, nil},
		{NewBackwardFrameError(0x05), []string{FramingErrorStatus}, nil},
	}

	for i, test := range tests {
		r := NewBitmapResponse(test.input, bits)
		status, err := r.Status()
		if err != test.err {
			t.Errorf("tests[%d] expected %v got %v", i, test.err, err)
		} else if !reflect.DeepEqual(status, test.expected) {
			t.Errorf("tests[%d] expected %v got %v", i, test.expected, status)
		}
	}
}

func TestBitmapResponseBit(t *testing.T) {
	bits := []string{"a", "", "c"}

	tests := []struct {
		frame    *BackwardFrame
		name     string
		expected bool
		err      error
	}{
		{NewBackwardFrame(0x05), "a", true, nil},
		{NewBackwardFrame(0x05), "c", true, nil},
		{NewBackwardFrame(0x04), "a", false, nil},
		{NewBackwardFrame(0x05), "", false, ErrUnknownBit},
		{NewBackwardFrame(0x05), "woops", false, ErrUnknownBit},
		// no single bit can be asserted under collision
		{NewBackwardFrameError(0xff), "a", false, nil},
		{nil, "a", false, nil},
	}

	for i, test := range tests {
		r := NewBitmapResponse(test.frame, bits)
		value, err := r.Bit(test.name)
		if err != test.err {
			t.Errorf("tests[%d] expected %v got %v", i, test.err, err)
		} else if value != test.expected {
			t.Errorf("tests[%d] expected %v got %v", i, test.expected, value)
		}
	}
}

func TestStatusResponse(t *testing.T) {
	r := NewStatusResponse(NewBackwardFrame(0x05)).(*BitmapResponse)
	status, err := r.Status()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	expected := []string{"ballast status", "arc power on"}
	if !reflect.DeepEqual(status, expected) {
		t.Errorf("expected %v got %v", expected, status)
	}

	if lampFailure, _ := r.Bit("lamp failure"); lampFailure {
		t.Errorf("expected lamp failure to be clear")
	}
	if arcPowerOn, _ := r.Bit("arc power on"); !arcPowerOn {
		t.Errorf("expected arc power on to be set")
	}
}

func TestResponseString(t *testing.T) {
	tests := []struct {
		input    Response
		expected string
	}{
		{NewResponse(NewBackwardFrame(100)), "100"},
		{NewResponse(nil), "no response received"},
		{NewYesNoResponse(nil), "No"},
		{NewYesNoResponse(NewBackwardFrame(0xff)), "Yes"},
		{NewBitmapResponse(NewBackwardFrame(0x05), []string{"a", "", "c"}), "a,c"},
		{NewBitmapResponse(nil, []string{"a"}), "no response received"},
	}

	for i, test := range tests {
		if test.input.String() != test.expected {
			t.Errorf("tests[%d] expected %q got %q", i, test.expected, test.input.String())
		}
	}
}
