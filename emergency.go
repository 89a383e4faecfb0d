package dali

// Emergency lighting commands, IEC 62386-202. These apply to control gear
// whose enabled extended device type is 1, so the dispatcher only matches
// them when FromFrame is invoked with deviceType 1 (i.e. the preceding
// command on the bus was EnableDeviceType(1))

// DeviceTypeEmergency is the extended device type of emergency lighting
// control gear
const DeviceTypeEmergency = 1

// EmergencyModeBits are the bits of the reply to QueryEmergencyMode
var EmergencyModeBits = []string{
	"rest mode",
	"normal mode",
	"emergency mode",
	"extended emergency mode",
	"function test",
	"duration test",
	"hardwired inhibit active",
	"hardwired switch on",
}

// EmergencyFeatureBits are the bits of the reply to QueryEmergencyFeatures
var EmergencyFeatureBits = []string{
	"integral emergency control gear",
	"maintained control gear",
	"switched maintained control gear",
	"auto test capability",
	"adjustable emergency level",
	"hardwired inhibit supported",
	"physical selection supported",
	"re-light in rest mode supported",
}

// EmergencyFailureStatusBits are the bits of the reply to
// QueryEmergencyFailureStatus
var EmergencyFailureStatusBits = []string{
	"circuit failure",
	"battery duration failure",
	"battery failure",
	"emergency lamp failure",
	"function test max delay exceeded",
	"duration test max delay exceeded",
	"function test failed",
	"duration test failed",
}

// EmergencyStatusBits are the bits of the reply to QueryEmergencyStatus
var EmergencyStatusBits = []string{
	"inhibit mode",
	"function test done and result valid",
	"duration test done and result valid",
	"battery fully charged",
	"function test pending",
	"duration test pending",
	"identification active",
	"physically selected",
}

// NewEmergencyModeResponse interprets a backward frame as the reply to
// QueryEmergencyMode
func NewEmergencyModeResponse(f *BackwardFrame) Response {
	return NewBitmapResponse(f, EmergencyModeBits)
}

// NewEmergencyFeaturesResponse interprets a backward frame as the reply to
// QueryEmergencyFeatures
func NewEmergencyFeaturesResponse(f *BackwardFrame) Response {
	return NewBitmapResponse(f, EmergencyFeatureBits)
}

// NewEmergencyFailureStatusResponse interprets a backward frame as the
// reply to QueryEmergencyFailureStatus
func NewEmergencyFailureStatusResponse(f *BackwardFrame) Response {
	return NewBitmapResponse(f, EmergencyFailureStatusBits)
}

// NewEmergencyStatusResponse interprets a backward frame as the reply to
// QueryEmergencyStatus
func NewEmergencyStatusResponse(f *BackwardFrame) Response {
	return NewBitmapResponse(f, EmergencyStatusBits)
}

var (
	cmdRest                        = register(&commandDef{name: "Rest", kind: kindGeneral, opcode: 0xe0, isConfig: true, deviceType: DeviceTypeEmergency})
	cmdInhibit                     = register(&commandDef{name: "Inhibit", kind: kindGeneral, opcode: 0xe1, isConfig: true, deviceType: DeviceTypeEmergency})
	cmdReLightResetInhibit         = register(&commandDef{name: "ReLightResetInhibit", kind: kindGeneral, opcode: 0xe2, isConfig: true, deviceType: DeviceTypeEmergency})
	cmdStartFunctionTest           = register(&commandDef{name: "StartFunctionTest", kind: kindGeneral, opcode: 0xe3, isConfig: true, deviceType: DeviceTypeEmergency})
	cmdStartDurationTest           = register(&commandDef{name: "StartDurationTest", kind: kindGeneral, opcode: 0xe4, isConfig: true, deviceType: DeviceTypeEmergency})
	cmdStopTest                    = register(&commandDef{name: "StopTest", kind: kindGeneral, opcode: 0xe5, isConfig: true, deviceType: DeviceTypeEmergency})
	cmdStoreDTRAsEmergencyLevel    = register(&commandDef{name: "StoreDTRAsEmergencyLevel", kind: kindGeneral, opcode: 0xe9, isConfig: true, deviceType: DeviceTypeEmergency})
	cmdQueryBatteryCharge          = register(&commandDef{name: "QueryBatteryCharge", kind: kindGeneral, opcode: 0xf1, isQuery: true, response: NewResponse, deviceType: DeviceTypeEmergency})
	cmdQueryDurationTestResult     = register(&commandDef{name: "QueryDurationTestResult", kind: kindGeneral, opcode: 0xf3, isQuery: true, response: NewResponse, deviceType: DeviceTypeEmergency})
	cmdQueryEmergencyLevel         = register(&commandDef{name: "QueryEmergencyLevel", kind: kindGeneral, opcode: 0xf6, isQuery: true, response: NewResponse, deviceType: DeviceTypeEmergency})
	cmdQueryEmergencyMinLevel      = register(&commandDef{name: "QueryEmergencyMinLevel", kind: kindGeneral, opcode: 0xf7, isQuery: true, response: NewResponse, deviceType: DeviceTypeEmergency})
	cmdQueryEmergencyMaxLevel      = register(&commandDef{name: "QueryEmergencyMaxLevel", kind: kindGeneral, opcode: 0xf8, isQuery: true, response: NewResponse, deviceType: DeviceTypeEmergency})
	cmdQueryEmergencyMode          = register(&commandDef{name: "QueryEmergencyMode", kind: kindGeneral, opcode: 0xfa, isQuery: true, response: NewEmergencyModeResponse, deviceType: DeviceTypeEmergency})
	cmdQueryEmergencyFeatures      = register(&commandDef{name: "QueryEmergencyFeatures", kind: kindGeneral, opcode: 0xfb, isQuery: true, response: NewEmergencyFeaturesResponse, deviceType: DeviceTypeEmergency})
	cmdQueryEmergencyFailureStatus = register(&commandDef{name: "QueryEmergencyFailureStatus", kind: kindGeneral, opcode: 0xfc, isQuery: true, response: NewEmergencyFailureStatusResponse, deviceType: DeviceTypeEmergency})
	cmdQueryEmergencyStatus        = register(&commandDef{name: "QueryEmergencyStatus", kind: kindGeneral, opcode: 0xfd, isQuery: true, response: NewEmergencyStatusResponse, deviceType: DeviceTypeEmergency})
)

// Rest extinguishes an emergency lamp while in emergency mode
func Rest(destination interface{}) (*Command, error) {
	return newGeneral(cmdRest, destination, 0)
}

// Inhibit stops the destination entering emergency mode for 15 minutes
func Inhibit(destination interface{}) (*Command, error) {
	return newGeneral(cmdInhibit, destination, 0)
}

// ReLightResetInhibit cancels rest mode and any inhibit timer
func ReLightResetInhibit(destination interface{}) (*Command, error) {
	return newGeneral(cmdReLightResetInhibit, destination, 0)
}

// StartFunctionTest asks the destination to run a function test
func StartFunctionTest(destination interface{}) (*Command, error) {
	return newGeneral(cmdStartFunctionTest, destination, 0)
}

// StartDurationTest asks the destination to run a duration test
func StartDurationTest(destination interface{}) (*Command, error) {
	return newGeneral(cmdStartDurationTest, destination, 0)
}

// StopTest stops any running test
func StopTest(destination interface{}) (*Command, error) {
	return newGeneral(cmdStopTest, destination, 0)
}

// StoreDTRAsEmergencyLevel stores the DTR as the emergency level
func StoreDTRAsEmergencyLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdStoreDTRAsEmergencyLevel, destination, 0)
}

// QueryBatteryCharge asks for the battery charge level (0..254, 255 when
// unknown)
func QueryBatteryCharge(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryBatteryCharge, destination, 0)
}

// QueryDurationTestResult asks for the duration test result in 2 minute
// units
func QueryDurationTestResult(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryDurationTestResult, destination, 0)
}

// QueryEmergencyLevel asks for the level used in emergency mode
func QueryEmergencyLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryEmergencyLevel, destination, 0)
}

// QueryEmergencyMinLevel asks for the lowest permitted emergency level
func QueryEmergencyMinLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryEmergencyMinLevel, destination, 0)
}

// QueryEmergencyMaxLevel asks for the highest permitted emergency level
func QueryEmergencyMaxLevel(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryEmergencyMaxLevel, destination, 0)
}

// QueryEmergencyMode asks for the mode bitmap, decoded by
// NewEmergencyModeResponse
func QueryEmergencyMode(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryEmergencyMode, destination, 0)
}

// QueryEmergencyFeatures asks for the features bitmap, decoded by
// NewEmergencyFeaturesResponse
func QueryEmergencyFeatures(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryEmergencyFeatures, destination, 0)
}

// QueryEmergencyFailureStatus asks for the failure bitmap, decoded by
// NewEmergencyFailureStatusResponse
func QueryEmergencyFailureStatus(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryEmergencyFailureStatus, destination, 0)
}

// QueryEmergencyStatus asks for the status bitmap, decoded by
// NewEmergencyStatusResponse
func QueryEmergencyStatus(destination interface{}) (*Command, error) {
	return newGeneral(cmdQueryEmergencyStatus, destination, 0)
}
