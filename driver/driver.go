// Package driver bridges the dali command layer to a Tridonic DALI USB
// bus interface. The gateway exchanges fixed size 64 byte messages: one
// message carries a forward frame in either direction, a backward frame,
// or a "no response" marker closing a transaction
package driver

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tarm/serial"

	dali "github.com/rnixx/go-dali"
)

// MessageLen is the fixed gateway message size
const MessageLen = 64

// Message direction
const (
	directionDALI = 0x11 // originated on the bus
	directionUSB  = 0x12 // originated on the USB side
)

// Message type
const (
	type16Bit      = 0x03
	type24Bit      = 0x04
	typeNoResponse = 0x71
	typeResponse   = 0x72
	typeComplete   = 0x73
	typeBroadcast  = 0x74
)

var (
	// ErrMessageLength indicates a gateway message shorter than the fixed
	// message size
	ErrMessageLength = errors.New("gateway message is too short")

	// ErrUnknownType indicates a gateway message type this driver does
	// not understand (e.g. a 24 bit frame)
	ErrUnknownType = errors.New("unknown gateway message type")

	// ErrUnknownDirection indicates a direction byte that is neither the
	// bus nor the USB side
	ErrUnknownDirection = errors.New("unknown gateway message direction")
)

// construct builds the 64 byte gateway message transmitting a forward
// frame:
//
//	dr sn ?? ty ?? ec ad cm .. .. ..
//	12 1d 00 03 00 00 ff 08 00 00 00
func construct(f dali.Frame, seq byte) []byte {
	buf := make([]byte, MessageLen)
	buf[0] = directionUSB
	buf[1] = seq
	buf[3] = type16Bit
	b := f.Bytes()
	buf[6] = b[0]
	buf[7] = b[1]
	return buf
}

// packet is one decoded gateway message:
//
//	dr ty ?? ec ad cm st st sn .. ..
//	11 73 00 00 ff 93 ff ff 00 00 00
type packet struct {
	direction  byte
	ptype      byte
	seq        byte
	forward    dali.Frame          // bus traffic sniffed by the gateway
	sniffed    bool                // forward is valid
	backward   *dali.BackwardFrame // reply to one of our transmissions
	noResponse bool                // transaction closed without a reply
}

// extract decodes a received gateway message
func extract(data []byte) (*packet, error) {
	if len(data) < 9 {
		return nil, ErrMessageLength
	}

	p := &packet{direction: data[0], ptype: data[1], seq: data[8]}
	switch p.direction {
	case directionDALI:
		switch p.ptype {
		case typeComplete, typeBroadcast:
			p.forward = dali.Frame{data[4], data[5]}
			p.sniffed = true
		case typeResponse:
			// reply to a request that wasn't ours, nothing to extract
		default:
			return nil, ErrUnknownType
		}
	case directionUSB:
		switch p.ptype {
		case typeNoResponse:
			p.noResponse = true
		case typeResponse:
			p.backward = dali.NewBackwardFrame(data[5])
		case typeComplete:
			// our own transmission completing, the closing
			// response/no response message follows
		default:
			return nil, ErrUnknownType
		}
	default:
		return nil, ErrUnknownDirection
	}
	return p, nil
}

// Driver is a synchronous connection to the gateway. It is not safe for
// concurrent use; the bus is half duplex so callers must serialize
// transactions anyway
type Driver struct {
	rw       io.ReadWriter
	timeout  time.Duration
	nextSeq  byte
	dispatch func(*dali.Command)
}

// Option customizes a Driver
type Option func(*Driver)

// Timeout sets how long Send waits for the gateway to close a transaction
func Timeout(timeout time.Duration) Option {
	return func(drv *Driver) { drv.timeout = timeout }
}

// Dispatch registers a callback receiving bus traffic sniffed by the
// gateway (commands transmitted by other controllers). Frames are
// resolved against the standard device type
func Dispatch(dispatch func(*dali.Command)) Option {
	return func(drv *Driver) { drv.dispatch = dispatch }
}

// New creates a Driver on top of an open gateway connection
func New(rw io.ReadWriter, options ...Option) *Driver {
	drv := &Driver{rw: rw, timeout: 3 * time.Second}
	for _, option := range options {
		option(drv)
	}
	return drv
}

// Open connects to the gateway attached to the named serial port
func Open(name string, options ...Option) (*Driver, error) {
	s, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        115200,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}
	return New(s, options...), nil
}

// Close closes the underlying connection when it supports closing
func (drv *Driver) Close() error {
	if closer, ok := drv.rw.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Send transmits cmd on the bus. For queries the typed response is
// returned once the gateway closes the transaction; for other commands
// the response is nil. Configuration commands are transmitted twice back
// to back; keeping other traffic off the bus in between is the caller's
// obligation
func (drv *Driver) Send(cmd *dali.Command) (dali.Response, error) {
	frame, err := drv.send(cmd)
	if err == nil && cmd.IsConfig() {
		_, err = drv.send(cmd)
	}
	if err != nil {
		return nil, err
	}
	if cmd.IsQuery() {
		return cmd.Response(frame), nil
	}
	return nil, nil
}

// send performs one transaction: write the frame, then consume gateway
// messages until the matching response or no response marker arrives
func (drv *Driver) send(cmd *dali.Command) (*dali.BackwardFrame, error) {
	seq := drv.seq()
	buf := construct(cmd.Frame(), seq)
	dali.Log.Tracef("TX %s", hexDump("%02x", buf[0:9], " "))
	_, err := drv.rw.Write(buf)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(drv.timeout)
	for {
		data, err := drv.readMessage(deadline)
		if err != nil {
			return nil, err
		}
		dali.Log.Tracef("RX %s", hexDump("%02x", data[0:9], " "))

		p, err := extract(data)
		if err != nil {
			dali.Log.Infof("Discarding gateway message: %v", err)
			continue
		}

		if p.direction == directionDALI {
			if p.sniffed && drv.dispatch != nil {
				drv.dispatch(dali.FromFrame(p.forward, 0))
			}
			continue
		}

		if p.seq != seq {
			dali.Log.Debugf("Ignoring message for transaction %d", p.seq)
			continue
		}

		if p.noResponse {
			return nil, nil
		}
		if p.backward != nil {
			return p.backward, nil
		}
		// our own transmission echoed back, keep waiting
	}
}

// readMessage reads one fixed size message, giving up at deadline
func (drv *Driver) readMessage(deadline time.Time) ([]byte, error) {
	buf := make([]byte, MessageLen)
	read := 0
	for read < MessageLen {
		if time.Now().After(deadline) {
			return nil, dali.ErrReadTimeout
		}
		n, err := drv.rw.Read(buf[read:])
		if err != nil {
			return nil, err
		}
		read += n
	}
	return buf, nil
}

// seq allocates the next transaction sequence number
func (drv *Driver) seq() byte {
	seq := drv.nextSeq
	drv.nextSeq++
	return seq
}

func hexDump(format string, buf []byte, sep string) string {
	str := make([]string, len(buf))
	for i, b := range buf {
		str[i] = fmt.Sprintf(format, b)
	}
	return strings.Join(str, sep)
}
