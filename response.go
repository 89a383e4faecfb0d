package dali

import "strings"

// Response is the decoded reply to a query command. Concrete types expose
// their own typed value accessors; errors surface when the value is read,
// not when the response is built
type Response interface {
	// BackwardFrame returns the raw frame, nil if no device replied
	BackwardFrame() *BackwardFrame
	String() string
}

// ResponseFactory builds the typed response for a query command from the
// backward frame received on the bus, or from nil if no reply arrived
// before the reply window closed
type ResponseFactory func(*BackwardFrame) Response

// BasicResponse is an 8 bit reply with no further interpretation
type BasicResponse struct {
	frame *BackwardFrame
}

// NewResponse wraps a backward frame (or nil) in a BasicResponse
func NewResponse(f *BackwardFrame) Response {
	return &BasicResponse{frame: f}
}

// BackwardFrame returns the raw frame, nil if no device replied
func (r *BasicResponse) BackwardFrame() *BackwardFrame {
	return r.frame
}

// Value returns the payload byte. ErrMissingResponse is returned if no
// device replied and ErrFramingError if the reply was received with a
// framing error
func (r *BasicResponse) Value() (byte, error) {
	if r.frame == nil {
		return 0, ErrMissingResponse
	}
	if r.frame.FramingError() {
		return 0, ErrFramingError
	}
	return r.frame.Value(), nil
}

func (r *BasicResponse) String() string {
	value, err := r.Value()
	if err != nil {
		return err.Error()
	}
	return sprintf("%d", value)
}

// YesNoResponse collapses a reply to a boolean. Receiving any backward
// frame, even one with a framing error, means at least one device answered
// "Yes"; no reply means "No"
type YesNoResponse struct {
	frame *BackwardFrame
}

// NewYesNoResponse wraps a backward frame (or nil) in a YesNoResponse
func NewYesNoResponse(f *BackwardFrame) Response {
	return &YesNoResponse{frame: f}
}

// BackwardFrame returns the raw frame, nil if no device replied
func (r *YesNoResponse) BackwardFrame() *BackwardFrame {
	return r.frame
}

// Value is true if any device replied
func (r *YesNoResponse) Value() bool {
	return r.frame != nil
}

func (r *YesNoResponse) String() string {
	if r.Value() {
		return "Yes"
	}
	return "No"
}

// FramingErrorStatus is the status reported when a bitmap reply collided
// on the bus: the payload is unreliable so no individual bit can be named
const FramingErrorStatus = "response received with framing error"

// BitmapResponse interprets the reply payload as named boolean flags. Bit
// names are listed least significant bit first; an empty name skips a bit
// position
type BitmapResponse struct {
	frame *BackwardFrame
	bits  []string
	index map[string]uint
}

// NewBitmapResponse wraps a backward frame (or nil) in a BitmapResponse
// with the given ordered bit names
func NewBitmapResponse(f *BackwardFrame, bits []string) *BitmapResponse {
	index := make(map[string]uint)
	for i, name := range bits {
		if name != "" {
			index[name] = uint(i)
		}
	}
	return &BitmapResponse{frame: f, bits: bits, index: index}
}

// BackwardFrame returns the raw frame, nil if no device replied
func (r *BitmapResponse) BackwardFrame() *BackwardFrame {
	return r.frame
}

// Status returns the names of the set bits, least significant first. A
// collided reply returns the FramingErrorStatus sentinel instead of bit
// names since the payload is unreliable
func (r *BitmapResponse) Status() ([]string, error) {
	if r.frame == nil {
		return nil, ErrMissingResponse
	}
	if r.frame.FramingError() {
		return []string{FramingErrorStatus}, nil
	}
	v := r.frame.Value()
	var status []string
	for _, name := range r.bits {
		if v&0x01 == 0x01 && name != "" {
			status = append(status, name)
		}
		v >>= 1
	}
	return status, nil
}

// Bit returns the named bit. A missing reply or a framing error yields
// false since no individual bit can be asserted; an undeclared name is
// ErrUnknownBit
func (r *BitmapResponse) Bit(name string) (bool, error) {
	n, found := r.index[name]
	if !found {
		return false, ErrUnknownBit
	}
	if r.frame == nil || r.frame.FramingError() {
		return false, nil
	}
	return r.frame.Bit(n), nil
}

func (r *BitmapResponse) String() string {
	status, err := r.Status()
	if err != nil {
		return err.Error()
	}
	return strings.Join(status, ",")
}
