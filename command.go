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

// commandKind selects the bit layout of a command family
type commandKind int

const (
	// kindGeneral is an addressed command: bit 8 set, opcode in the low
	// byte, optional 4 bit parameter in the low nibble
	kindGeneral commandKind = iota

	// kindSpecial is an unaddressed command: opcode byte followed by a
	// parameter byte (zero when the command takes no parameter)
	kindSpecial

	// kindShortAddrSpecial is a special command whose parameter byte
	// carries a short address as (address << 1) | 1
	kindShortAddrSpecial

	// kindArcPower is a direct arc power command: bit 8 clear, level in
	// the low byte
	kindArcPower
)

// commandDef describes one command known to the dispatcher
type commandDef struct {
	name       string
	kind       commandKind
	opcode     byte
	hasParam   bool
	isConfig   bool
	isQuery    bool
	deviceType int
	response   ResponseFactory
}

// commands is the dispatch table, in declaration order. It is populated by
// register calls during package init and never mutated afterwards, so
// concurrent FromFrame calls need no locking. Declaration order is the
// tie-break rule: the first definition matching a frame wins
var commands []*commandDef

func register(def *commandDef) *commandDef {
	commands = append(commands, def)
	return def
}

// untyped wraps frames no registered definition matched. Such commands
// only carry the raw frame; nothing is known about their semantics so
// they should not be retransmitted as anything more specific
var untyped = &commandDef{name: "Command"}

// Command is one protocol operation bound to its forward frame. The frame
// is built once at construction and never mutated
type Command struct {
	def         *commandDef
	frame       Frame
	destination Address
	param       int
}

// Frame returns the forward frame to be transmitted for this command
func (cmd *Command) Frame() Frame {
	return cmd.frame
}

// Name returns the command name, "Command" for an unrecognized frame
func (cmd *Command) Name() string {
	return cmd.def.name
}

// IsConfig indicates a configuration command. Configuration commands only
// take effect when transmitted twice within 100ms with no intervening
// command addressing the same device; honoring that window is the
// caller's obligation
func (cmd *Command) IsConfig() bool {
	return cmd.def.isConfig
}

// IsQuery indicates that the command elicits a backward frame
func (cmd *Command) IsQuery() bool {
	return cmd.def.isQuery
}

// DeviceType returns the extended device type the command belongs to.
// Standard control gear commands are device type 0
func (cmd *Command) DeviceType() int {
	return cmd.def.deviceType
}

// Destination returns the address the command was built for, nil for
// special (broadcast semantics) and unrecognized commands
func (cmd *Command) Destination() Address {
	return cmd.destination
}

// Param returns the encoded parameter: the 4 bit parameter of a general
// command, the parameter byte of a special command, the short address of a
// short address special command or the level of an arc power command
func (cmd *Command) Param() int {
	return cmd.param
}

// Response builds the typed response for this command from a received
// backward frame (nil if no reply arrived). It returns nil when the
// command is not a query
func (cmd *Command) Response(f *BackwardFrame) Response {
	if cmd.def.response == nil {
		return nil
	}
	return cmd.def.response(f)
}

func (cmd *Command) String() string {
	switch {
	case cmd.def == untyped:
		return sprintf("Command(%s)", cmd.frame)
	case cmd.destination != nil && cmd.def.hasParam:
		return sprintf("%s(%s, %d)", cmd.def.name, cmd.destination, cmd.param)
	case cmd.destination != nil:
		return sprintf("%s(%s)", cmd.def.name, cmd.destination)
	case cmd.def.hasParam || cmd.def.kind == kindShortAddrSpecial:
		return sprintf("%s(%d)", cmd.def.name, cmd.param)
	}
	return sprintf("%s()", cmd.def.name)
}

// newGeneral builds an addressed command: 0x100 | opcode | param with the
// address written into the upper bits
func newGeneral(def *commandDef, destination interface{}, param int) (*Command, error) {
	addr, err := checkDestination(destination)
	if err != nil {
		return nil, err
	}
	if def.hasParam && (param < 0 || param > 15) {
		return nil, newValueError(ErrInvalidArgument, 0, 15, param)
	}
	f := NewFrame(0x100 | int(def.opcode) | param)
	addr.AddToFrame(&f)
	return &Command{def: def, frame: f, destination: addr, param: param}, nil
}

// newSpecial builds an unaddressed command: (opcode, param)
func newSpecial(def *commandDef, param int) (*Command, error) {
	if def.hasParam && (param < 0 || param > 255) {
		return nil, newValueError(ErrInvalidArgument, 0, 255, param)
	}
	f := NewFrame(int(def.opcode)<<8 | param)
	return &Command{def: def, frame: f, param: param}, nil
}

// newShortAddrSpecial builds a special command whose parameter byte is
// (address << 1) | 1
func newShortAddrSpecial(def *commandDef, address int) (*Command, error) {
	if address < 0 || address > 63 {
		return nil, newValueError(ErrInvalidArgument, 0, 63, address)
	}
	f := NewFrame(int(def.opcode)<<8 | address<<1 | 1)
	return &Command{def: def, frame: f, param: address}, nil
}

// newArcPower builds a direct arc power command: the level byte with bit 8
// clear. Level 255 (MASK) means "stop fading"
func newArcPower(def *commandDef, destination interface{}, level int) (*Command, error) {
	addr, err := checkDestination(destination)
	if err != nil {
		return nil, err
	}
	if level < 0 || level > 255 {
		return nil, newValueError(ErrInvalidArgument, 0, 255, level)
	}
	f := NewFrame(level)
	addr.AddToFrame(&f)
	return &Command{def: def, frame: f, destination: addr, param: level}, nil
}

// fromFrame decodes f against this definition, returning nil when the
// frame does not match. Not matching is an expected outcome, never an
// error, so the dispatcher can try the next candidate cheaply
func (def *commandDef) fromFrame(f Frame) *Command {
	switch def.kind {
	case kindGeneral:
		if !f.Bit(8) {
			// direct arc power control frame
			return nil
		}
		b := byte(f.Bits(7, 0))
		param := 0
		if def.hasParam {
			if b&0xf0 != def.opcode {
				return nil
			}
			param = int(b & 0x0f)
		} else if b != def.opcode {
			return nil
		}
		addr := AddressFromFrame(f)
		if addr == nil {
			return nil
		}
		return &Command{def: def, frame: f, destination: addr, param: param}
	case kindSpecial:
		if byte(f.Bits(15, 8)) != def.opcode {
			return nil
		}
		param := f.Bits(7, 0)
		if !def.hasParam && param != 0 {
			return nil
		}
		return &Command{def: def, frame: f, param: param}
	case kindShortAddrSpecial:
		if byte(f.Bits(15, 8)) != def.opcode {
			return nil
		}
		if f.Bit(7) || !f.Bit(0) {
			return nil
		}
		return &Command{def: def, frame: f, param: f.Bits(6, 1)}
	case kindArcPower:
		if f.Bit(8) {
			return nil
		}
		addr := AddressFromFrame(f)
		if addr == nil {
			return nil
		}
		return &Command{def: def, frame: f, destination: addr, param: f.Bits(7, 0)}
	}
	return nil
}

// FromFrame resolves a received forward frame to the most specific known
// command. Definitions are tried in declaration order, skipping those not
// belonging to deviceType (the extended device type enabled by the
// previous EnableDeviceType command, 0 for standard control gear). When
// nothing matches the frame is wrapped in an untyped Command so no data is
// lost
func FromFrame(f Frame, deviceType int) *Command {
	for _, def := range commands {
		if def.deviceType != deviceType {
			continue
		}
		if cmd := def.fromFrame(f); cmd != nil {
			return cmd
		}
	}
	return &Command{def: untyped, frame: f}
}
