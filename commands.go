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

// StatusBits are the bits of the reply to QueryStatus, least significant
// bit first
var StatusBits = []string{
	"ballast status",
	"lamp failure",
	"arc power on",
	"limit error",
	"fade ready",
	"reset state",
	"missing short address",
	"power failure",
}

// NewStatusResponse interprets a backward frame as the reply to
// QueryStatus
func NewStatusResponse(f *BackwardFrame) Response {
	return NewBitmapResponse(f, StatusBits)
}

// Direct arc power control
var cmdArcPower = register(&commandDef{name: "ArcPower", kind: kindArcPower, hasParam: true})

// ArcPower sets the arc power level of the destination directly. Level 0
// switches the lamp off, 1..254 select a level between the minimum and
// maximum, 255 (MASK) stops any fade in progress
func ArcPower(destination interface{}, level int) (*Command, error) {
	return newArcPower(cmdArcPower, destination, level)
}

// General commands, IEC 62386-102 Table 15
var (
	cmdOff            = register(&commandDef{name: "Off", kind: kindGeneral, opcode: 0x00})
	cmdUp             = register(&commandDef{name: "Up", kind: kindGeneral, opcode: 0x01})
	cmdDown           = register(&commandDef{name: "Down", kind: kindGeneral, opcode: 0x02})
	cmdStepUp         = register(&commandDef{name: "StepUp", kind: kindGeneral, opcode: 0x03})
	cmdStepDown       = register(&commandDef{name: "StepDown", kind: kindGeneral, opcode: 0x04})
	cmdRecallMaxLevel = register(&commandDef{name: "RecallMaxLevel", kind: kindGeneral, opcode: 0x05})
	cmdRecallMinLevel = register(&commandDef{name: "RecallMinLevel", kind: kindGeneral, opcode: 0x06})
	cmdStepDownAndOff = register(&commandDef{name: "StepDownAndOff", kind: kindGeneral, opcode: 0x07})
	cmdOnAndStepUp    = register(&commandDef{name: "OnAndStepUp", kind: kindGeneral, opcode: 0x08})
	cmdGoToScene      = register(&commandDef{name: "GoToScene", kind: kindGeneral, opcode: 0x10, hasParam: true})
)

// Off switches the destination off without fading
func Off(destination interface{}) (*Command, error) {
	return newGeneral(cmdOff, destination, 0)
}

// Up fades the destination up at the configured fade rate
func Up(destination interface{}) (*Command, error) {
	return newGeneral(cmdUp, destination, 0)
}

// Down fades the destination down at the configured fade rate
func Down(destination interface{}) (*Command, error) {
	return newGeneral(cmdDown, destination, 0)
}

// StepUp raises the level one step without fading
func StepUp(destination interface{}) (*Command, error) {
	return newGeneral(cmdStepUp, destination, 0)
}

// StepDown lowers the level one step without fading
func StepDown(destination interface{}) (*Command, error) {
	return newGeneral(cmdStepDown, destination, 0)
}

// RecallMaxLevel sets the level to the stored maximum without fading
func RecallMaxLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdRecallMaxLevel, destination, 0)
}

// RecallMinLevel sets the level to the stored minimum without fading
func RecallMinLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdRecallMinLevel, destination, 0)
}

// StepDownAndOff lowers the level one step, switching off when already at
// the minimum
func StepDownAndOff(destination interface{}) (*Command, error) {
	return newGeneral(cmdStepDownAndOff, destination, 0)
}

// OnAndStepUp raises the level one step, switching on when off
func OnAndStepUp(destination interface{}) (*Command, error) {
	return newGeneral(cmdOnAndStepUp, destination, 0)
}

// GoToScene sets the level to the one stored for scene (0..15)
func GoToScene(destination interface{}, scene int) (*Command, error) {
	return newGeneral(cmdGoToScene, destination, scene)
}

// Configuration commands. These must be transmitted twice within 100ms,
// with no other command addressing the same device in between
var (
	cmdReset                        = register(&commandDef{name: "Reset", kind: kindGeneral, opcode: 0x20, isConfig: true})
	cmdStoreActualLevelInDTR        = register(&commandDef{name: "StoreActualLevelInDTR", kind: kindGeneral, opcode: 0x21, isConfig: true})
	cmdStoreDTRAsMaxLevel           = register(&commandDef{name: "StoreDTRAsMaxLevel", kind: kindGeneral, opcode: 0x2a, isConfig: true})
	cmdStoreDTRAsMinLevel           = register(&commandDef{name: "StoreDTRAsMinLevel", kind: kindGeneral, opcode: 0x2b, isConfig: true})
	cmdStoreDTRAsSystemFailureLevel = register(&commandDef{name: "StoreDTRAsSystemFailureLevel", kind: kindGeneral, opcode: 0x2c, isConfig: true})
	cmdStoreDTRAsPowerOnLevel       = register(&commandDef{name: "StoreDTRAsPowerOnLevel", kind: kindGeneral, opcode: 0x2d, isConfig: true})
	cmdStoreDTRAsFadeTime           = register(&commandDef{name: "StoreDTRAsFadeTime", kind: kindGeneral, opcode: 0x2e, isConfig: true})
	cmdStoreDTRAsFadeRate           = register(&commandDef{name: "StoreDTRAsFadeRate", kind: kindGeneral, opcode: 0x2f, isConfig: true})
	cmdStoreDTRAsScene              = register(&commandDef{name: "StoreDTRAsScene", kind: kindGeneral, opcode: 0x40, hasParam: true, isConfig: true})
	cmdRemoveFromScene              = register(&commandDef{name: "RemoveFromScene", kind: kindGeneral, opcode: 0x50, hasParam: true, isConfig: true})
	cmdAddToGroup                   = register(&commandDef{name: "AddToGroup", kind: kindGeneral, opcode: 0x60, hasParam: true, isConfig: true})
	cmdRemoveFromGroup              = register(&commandDef{name: "RemoveFromGroup", kind: kindGeneral, opcode: 0x70, hasParam: true, isConfig: true})
	cmdStoreDTRAsShortAddress       = register(&commandDef{name: "StoreDTRAsShortAddress", kind: kindGeneral, opcode: 0x80, isConfig: true})
)

// Reset restores the destination's variables to their factory defaults
func Reset(destination interface{}) (*Command, error) {
	return newGeneral(cmdReset, destination, 0)
}

// StoreActualLevelInDTR copies the current arc power level into the DTR
func StoreActualLevelInDTR(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreActualLevelInDTR, destination, 0)
}

// StoreDTRAsMaxLevel stores the DTR as the maximum level
func StoreDTRAsMaxLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreDTRAsMaxLevel, destination, 0)
}

// StoreDTRAsMinLevel stores the DTR as the minimum level
func StoreDTRAsMinLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreDTRAsMinLevel, destination, 0)
}

// StoreDTRAsSystemFailureLevel stores the DTR as the level selected on bus
// failure
func StoreDTRAsSystemFailureLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreDTRAsSystemFailureLevel, destination, 0)
}

// StoreDTRAsPowerOnLevel stores the DTR as the level selected at power on
func StoreDTRAsPowerOnLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreDTRAsPowerOnLevel, destination, 0)
}

// StoreDTRAsFadeTime stores the DTR as the fade time
func StoreDTRAsFadeTime(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreDTRAsFadeTime, destination, 0)
}

// StoreDTRAsFadeRate stores the DTR as the fade rate
func StoreDTRAsFadeRate(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreDTRAsFadeRate, destination, 0)
}

// StoreDTRAsScene stores the DTR as the level for scene (0..15)
func StoreDTRAsScene(destination interface{}, scene int) (*Command, error) {
	return newGeneral(cmdStoreDTRAsScene, destination, scene)
}

// RemoveFromScene removes the destination from scene (0..15)
func RemoveFromScene(destination interface{}, scene int) (*Command, error) {
	return newGeneral(cmdRemoveFromScene, destination, scene)
}

// AddToGroup adds the destination to group (0..15)
func AddToGroup(destination interface{}, group int) (*Command, error) {
	return newGeneral(cmdAddToGroup, destination, group)
}

// RemoveFromGroup removes the destination from group (0..15)
func RemoveFromGroup(destination interface{}, group int) (*Command, error) {
	return newGeneral(cmdRemoveFromGroup, destination, group)
}

// StoreDTRAsShortAddress stores the DTR as the short address
func StoreDTRAsShortAddress(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreDTRAsShortAddress, destination, 0)
}

// Query commands. "Yes" is encoded as 0xff, "No" as no response. A query
// addressed to more than one device may collide; YesNoResponse still
// reports a collided reply as "Yes"
var (
	cmdQueryStatus               = register(&commandDef{name: "QueryStatus", kind: kindGeneral, opcode: 0x90, isQuery: true, response: NewStatusResponse})
	cmdQueryBallast              = register(&commandDef{name: "QueryBallast", kind: kindGeneral, opcode: 0x91, isQuery: true, response: NewYesNoResponse})
	cmdQueryLampFailure          = register(&commandDef{name: "QueryLampFailure", kind: kindGeneral, opcode: 0x92, isQuery: true, response: NewYesNoResponse})
	cmdQueryLampPowerOn          = register(&commandDef{name: "QueryLampPowerOn", kind: kindGeneral, opcode: 0x93, isQuery: true, response: NewYesNoResponse})
	cmdQueryLimitError           = register(&commandDef{name: "QueryLimitError", kind: kindGeneral, opcode: 0x94, isQuery: true, response: NewYesNoResponse})
	cmdQueryResetState           = register(&commandDef{name: "QueryResetState", kind: kindGeneral, opcode: 0x95, isQuery: true, response: NewYesNoResponse})
	cmdQueryMissingShortAddress  = register(&commandDef{name: "QueryMissingShortAddress", kind: kindGeneral, opcode: 0x96, isQuery: true, response: NewYesNoResponse})
	cmdQueryVersionNumber        = register(&commandDef{name: "QueryVersionNumber", kind: kindGeneral, opcode: 0x97, isQuery: true, response: NewResponse})
	cmdQueryContentDTR           = register(&commandDef{name: "QueryContentDTR", kind: kindGeneral, opcode: 0x98, isQuery: true, response: NewResponse})
	cmdQueryDeviceType           = register(&commandDef{name: "QueryDeviceType", kind: kindGeneral, opcode: 0x99, isQuery: true, response: NewResponse})
	cmdQueryPhysicalMinimumLevel = register(&commandDef{name: "QueryPhysicalMinimumLevel", kind: kindGeneral, opcode: 0x9a, isQuery: true, response: NewResponse})
	cmdQueryPowerFailure         = register(&commandDef{name: "QueryPowerFailure", kind: kindGeneral, opcode: 0x9b, isQuery: true, response: NewYesNoResponse})
	cmdQueryActualLevel          = register(&commandDef{name: "QueryActualLevel", kind: kindGeneral, opcode: 0xa0, isQuery: true, response: NewResponse})
	cmdQueryMaxLevel             = register(&commandDef{name: "QueryMaxLevel", kind: kindGeneral, opcode: 0xa1, isQuery: true, response: NewResponse})
	cmdQueryMinLevel             = register(&commandDef{name: "QueryMinLevel", kind: kindGeneral, opcode: 0xa2, isQuery: true, response: NewResponse})
	cmdQueryPowerOnLevel         = register(&commandDef{name: "QueryPowerOnLevel", kind: kindGeneral, opcode: 0xa3, isQuery: true, response: NewResponse})
	cmdQuerySystemFailureLevel   = register(&commandDef{name: "QuerySystemFailureLevel", kind: kindGeneral, opcode: 0xa4, isQuery: true, response: NewResponse})
	cmdQueryFadeTimeFadeRate     = register(&commandDef{name: "QueryFadeTimeFadeRate", kind: kindGeneral, opcode: 0xa5, isQuery: true, response: NewResponse})
	cmdQuerySceneLevel           = register(&commandDef{name: "QuerySceneLevel", kind: kindGeneral, opcode: 0xb0, hasParam: true, isQuery: true, response: NewResponse})
	cmdQueryGroupsZeroToSeven    = register(&commandDef{name: "QueryGroupsZeroToSeven", kind: kindGeneral, opcode: 0xc0, isQuery: true, response: NewResponse})
	cmdQueryGroupsEightToFifteen = register(&commandDef{name: "QueryGroupsEightToFifteen", kind: kindGeneral, opcode: 0xc1, isQuery: true, response: NewResponse})
	cmdQueryRandomAddressH       = register(&commandDef{name: "QueryRandomAddressH", kind: kindGeneral, opcode: 0xc2, isQuery: true, response: NewResponse})
	cmdQueryRandomAddressM       = register(&commandDef{name: "QueryRandomAddressM", kind: kindGeneral, opcode: 0xc3, isQuery: true, response: NewResponse})
	cmdQueryRandomAddressL       = register(&commandDef{name: "QueryRandomAddressL", kind: kindGeneral, opcode: 0xc4, isQuery: true, response: NewResponse})
)

// QueryStatus asks for the status byte, decoded by NewStatusResponse
func QueryStatus(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryStatus, destination, 0)
}

// QueryBallast asks whether control gear is present at the destination
func QueryBallast(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryBallast, destination, 0)
}

// QueryLampFailure asks whether a lamp failure is present
func QueryLampFailure(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryLampFailure, destination, 0)
}

// QueryLampPowerOn asks whether the lamp is operating
func QueryLampPowerOn(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryLampPowerOn, destination, 0)
}

// QueryLimitError asks whether the last requested level was outside the
// min..max range
func QueryLimitError(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryLimitError, destination, 0)
}

// QueryResetState asks whether all variables are at their reset values
func QueryResetState(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryResetState, destination, 0)
}

// QueryMissingShortAddress asks whether the destination has no short
// address assigned
func QueryMissingShortAddress(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryMissingShortAddress, destination, 0)
}

// QueryVersionNumber asks for the IEC 62386-102 version number
func QueryVersionNumber(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryVersionNumber, destination, 0)
}

// QueryContentDTR asks for the content of the DTR
func QueryContentDTR(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryContentDTR, destination, 0)
}

// QueryDeviceType asks for the device type. 255 means multiple extended
// device types are supported
func QueryDeviceType(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryDeviceType, destination, 0)
}

// QueryPhysicalMinimumLevel asks for the lowest level the lamp can
// physically produce
func QueryPhysicalMinimumLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryPhysicalMinimumLevel, destination, 0)
}

// QueryPowerFailure asks whether the destination has seen a power failure
// since the last reset
func QueryPowerFailure(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryPowerFailure, destination, 0)
}

// QueryActualLevel asks for the current arc power level
func QueryActualLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryActualLevel, destination, 0)
}

// QueryMaxLevel asks for the stored maximum level
func QueryMaxLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryMaxLevel, destination, 0)
}

// QueryMinLevel asks for the stored minimum level
func QueryMinLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryMinLevel, destination, 0)
}

// QueryPowerOnLevel asks for the level selected at power on
func QueryPowerOnLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryPowerOnLevel, destination, 0)
}

// QuerySystemFailureLevel asks for the level selected on bus failure
func QuerySystemFailureLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQuerySystemFailureLevel, destination, 0)
}

// QueryFadeTimeFadeRate asks for the fade time (high nibble) and fade rate
// (low nibble)
func QueryFadeTimeFadeRate(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryFadeTimeFadeRate, destination, 0)
}

// QuerySceneLevel asks for the level stored for scene (0..15)
func QuerySceneLevel(destination interface{}, scene int) (*Command, error) {
	return newGeneral(cmdQuerySceneLevel, destination, scene)
}

// QueryGroupsZeroToSeven asks for membership of groups 0..7 as a bitmap
func QueryGroupsZeroToSeven(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryGroupsZeroToSeven, destination, 0)
}

// QueryGroupsEightToFifteen asks for membership of groups 8..15 as a
// bitmap
func QueryGroupsEightToFifteen(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryGroupsEightToFifteen, destination, 0)
}

// QueryRandomAddressH asks for the high byte of the random address
func QueryRandomAddressH(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryRandomAddressH, destination, 0)
}

// QueryRandomAddressM asks for the middle byte of the random address
func QueryRandomAddressM(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryRandomAddressM, destination, 0)
}

// QueryRandomAddressL asks for the low byte of the random address
func QueryRandomAddressL(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryRandomAddressL, destination, 0)
}

// Special commands, IEC 62386-102 Table 16. These are broadcast and
// received by every device on the bus
var (
	cmdTerminate           = register(&commandDef{name: "Terminate", kind: kindSpecial, opcode: 0xa1})
	cmdSetDTR              = register(&commandDef{name: "SetDTR", kind: kindSpecial, opcode: 0xa3, hasParam: true})
	cmdInitialise          = register(&commandDef{name: "Initialise", kind: kindSpecial, opcode: 0xa5, hasParam: true, isConfig: true})
	cmdRandomise           = register(&commandDef{name: "Randomise", kind: kindSpecial, opcode: 0xa7, isConfig: true})
	cmdCompare             = register(&commandDef{name: "Compare", kind: kindSpecial, opcode: 0xa9, isQuery: true, response: NewYesNoResponse})
	cmdWithdraw            = register(&commandDef{name: "Withdraw", kind: kindSpecial, opcode: 0xab})
	cmdSearchAddrH         = register(&commandDef{name: "SearchAddrH", kind: kindSpecial, opcode: 0xb1, hasParam: true})
	cmdSearchAddrM         = register(&commandDef{name: "SearchAddrM", kind: kindSpecial, opcode: 0xb3, hasParam: true})
	cmdSearchAddrL         = register(&commandDef{name: "SearchAddrL", kind: kindSpecial, opcode: 0xb5, hasParam: true})
	cmdProgramShortAddress = register(&commandDef{name: "ProgramShortAddress", kind: kindShortAddrSpecial, opcode: 0xb7})
	cmdVerifyShortAddress  = register(&commandDef{name: "VerifyShortAddress", kind: kindShortAddrSpecial, opcode: 0xb9, isQuery: true, response: NewYesNoResponse})
	cmdQueryShortAddress   = register(&commandDef{name: "QueryShortAddress", kind: kindSpecial, opcode: 0xbb, isQuery: true, response: NewResponse})
	cmdPhysicalSelection   = register(&commandDef{name: "PhysicalSelection", kind: kindSpecial, opcode: 0xbd})
	cmdEnableDeviceType    = register(&commandDef{name: "EnableDeviceType", kind: kindSpecial, opcode: 0xc1, hasParam: true})
)

// Terminate ends the initialisation period
func Terminate() (*Command, error) {
	return newSpecial(cmdTerminate, 0)
}

// SetDTR loads value (0..255) into every device's DTR
func SetDTR(value int) (*Command, error) {
	return newSpecial(cmdSetDTR, value)
}

// Initialise opens the 15 minute initialisation window. The parameter
// selects which devices react: 0 for all, 0xff for devices without a
// short address, (addr << 1) | 1 for a single device
func Initialise(param int) (*Command, error) {
	return newSpecial(cmdInitialise, param)
}

// Randomise asks every device in the initialisation state to pick a new
// 24 bit random address
func Randomise() (*Command, error) {
	return newSpecial(cmdRandomise, 0)
}

// Compare asks devices whether their random address is less than or equal
// to the search address
func Compare() (*Command, error) {
	return newSpecial(cmdCompare, 0)
}

// Withdraw excludes devices whose random address equals the search address
// from further compares
func Withdraw() (*Command, error) {
	return newSpecial(cmdWithdraw, 0)
}

// SearchAddrH sets the high byte of the search address
func SearchAddrH(value int) (*Command, error) {
	return newSpecial(cmdSearchAddrH, value)
}

// SearchAddrM sets the middle byte of the search address
func SearchAddrM(value int) (*Command, error) {
	return newSpecial(cmdSearchAddrM, value)
}

// SearchAddrL sets the low byte of the search address
func SearchAddrL(value int) (*Command, error) {
	return newSpecial(cmdSearchAddrL, value)
}

// ProgramShortAddress assigns address (0..63) to the device whose random
// address equals the search address
func ProgramShortAddress(address int) (*Command, error) {
	return newShortAddrSpecial(cmdProgramShortAddress, address)
}

// VerifyShortAddress asks whether the selected device has the given short
// address
func VerifyShortAddress(address int) (*Command, error) {
	return newShortAddrSpecial(cmdVerifyShortAddress, address)
}

// QueryShortAddress asks the selected device for its short address
func QueryShortAddress() (*Command, error) {
	return newSpecial(cmdQueryShortAddress, 0)
}

// PhysicalSelection enters physical selection mode, where devices are
// selected by interrupting their lamp
func PhysicalSelection() (*Command, error) {
	return newSpecial(cmdPhysicalSelection, 0)
}

// EnableDeviceType makes the following command be interpreted against the
// given extended device type's command set
func EnableDeviceType(deviceType int) (*Command, error) {
	return newSpecial(cmdEnableDeviceType, deviceType)
}
