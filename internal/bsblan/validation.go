package bsblan

import (
	"fmt"
	"strconv"
)

// Temperature limits accepted for the comfort setpoint (parameter 710).
// The controller itself clamps to the configured heating curve; these
// bounds just catch obvious mistakes before they reach the device.
const (
	MinTargetTemperature = 7.0
	MaxTargetTemperature = 40.0
)

// ValidateTargetTemperature validates a target temperature value.
// The value must parse as a decimal number within the setpoint range.
func ValidateTargetTemperature(value string) error {
	temp, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("target temperature %q is not a number", value)
	}
	if temp < MinTargetTemperature || temp > MaxTargetTemperature {
		return fmt.Errorf("target temperature must be %.0f-%.0f, got %s",
			MinTargetTemperature, MaxTargetTemperature, value)
	}
	return nil
}

// ValidateHVACMode validates an HVAC mode enum value.
//
// Valid values:
//   - 0: protection (frost protection only)
//   - 1: automatic (follows the time program)
//   - 2: reduced (setback temperature)
//   - 3: comfort (comfort temperature)
func ValidateHVACMode(mode string) error {
	if _, ok := HVACModeNames[mode]; !ok {
		return fmt.Errorf("HVAC mode must be 0-3, got %q", mode)
	}
	return nil
}
