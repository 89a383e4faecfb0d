// Copyright 2018 Andrew Bates
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dali

import "fmt"

// Address is the destination of a forward frame: a single piece of control
// gear, a group, or every device on the bus. The address occupies bits
// 15..9 of the frame
type Address interface {
	// AddToFrame writes the addressing bits into a frame being built
	AddToFrame(*Frame)
	String() string
}

// Addressable is anything that exposes an underlying bus address, for
// example a device object maintained by the host application
type Addressable interface {
	Address() Address
}

// Short addresses a single piece of control gear (0..63)
type Short byte

// AddToFrame writes the short address into bits 15..9 of the frame
func (a Short) AddToFrame(f *Frame) {
	f.SetBits(15, 9, int(a)&0x3f)
}

func (a Short) String() string {
	return fmt.Sprintf("<address (short) %d>", int(a))
}

// Group addresses every member of a group (0..15)
type Group byte

// AddToFrame writes the group address into bits 15..9 of the frame
func (a Group) AddToFrame(f *Frame) {
	f.SetBits(15, 9, 0x40|int(a)&0x0f)
}

func (a Group) String() string {
	return fmt.Sprintf("<address (group) %d>", int(a))
}

// Broadcast addresses every device on the bus
type Broadcast struct{}

// AddToFrame writes the broadcast address into bits 15..9 of the frame
func (a Broadcast) AddToFrame(f *Frame) {
	f.SetBits(15, 9, 0x7f)
}

func (a Broadcast) String() string {
	return "<address (broadcast)>"
}

// AddressFromFrame decodes the addressing bits of a forward frame. It
// returns nil when the upper bits carry a special command pattern rather
// than an address
func AddressFromFrame(f Frame) Address {
	bits := f.Bits(15, 9)
	switch {
	case bits&0x40 == 0:
		return Short(bits)
	case bits == 0x7f:
		return Broadcast{}
	case bits&0x70 == 0x40:
		return Group(bits & 0x0f)
	}
	return nil
}

// checkDestination normalizes a destination to an Address. An int is
// treated as a short address, an Addressable is unwrapped (rejecting a
// nil underlying address), an Address passes through unchanged
func checkDestination(destination interface{}) (Address, error) {
	switch d := destination.(type) {
	case int:
		if d < 0 || d > 63 {
			return nil, newValueError(ErrInvalidArgument, 0, 63, d)
		}
		return Short(d), nil
	case Addressable:
		if addr := d.Address(); addr != nil {
			return addr, nil
		}
	case Address:
		return d, nil
	}
	return nil, ErrInvalidDestination
}
