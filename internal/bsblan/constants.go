package bsblan

// BSB-LAN parameter IDs used by the client. The device addresses every
// readable or writable value by a numeric string.
const (
	// ParamHVACMode is the operating mode of the heating circuit (700)
	ParamHVACMode = "700"

	// ParamTargetTemperature is the comfort setpoint of the heating
	// circuit (710)
	ParamTargetTemperature = "710"

	// ParamCurrentTemperature is the measured room temperature (8740)
	ParamCurrentTemperature = "8740"

	// ParamDeviceIdentification is the controller model string (6224)
	ParamDeviceIdentification = "6224"

	// ParamDeviceFamily is the controller family code (6225)
	ParamDeviceFamily = "6225"

	// ParamDeviceVariant is the controller variant code (6226)
	ParamDeviceVariant = "6226"
)

// BootstrapParameters is the fixed set queried by Scan to discover which
// state parameters the attached heater actually answers.
const BootstrapParameters = ParamCurrentTemperature + "," + ParamTargetTemperature + "," + ParamHVACMode

// InfoParameters is the fixed set queried by Info. These are static
// device identification values and are independent of the scan cache.
const InfoParameters = ParamDeviceIdentification + "," + ParamDeviceFamily + "," + ParamDeviceVariant

// writeTypeSet is the Type marker for JS writes. Type "1" makes the
// device actually apply the value; Type "0" only validates it.
const writeTypeSet = "1"

// HVAC operating modes accepted by parameter 700.
const (
	HVACModeProtection = "0"
	HVACModeAutomatic  = "1"
	HVACModeReduced    = "2"
	HVACModeComfort    = "3"
)

// HVACModeNames maps mode enum values to human-readable names.
var HVACModeNames = map[string]string{
	HVACModeProtection: "protection",
	HVACModeAutomatic:  "automatic",
	HVACModeReduced:    "reduced",
	HVACModeComfort:    "comfort",
}
