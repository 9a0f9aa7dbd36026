package bsblan

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the heating state
func (s *State) Summary() string {
	return fmt.Sprintf("target %s%s, room %s%s, mode %s",
		s.TargetTemperature.Value, s.TargetTemperature.Unit,
		s.CurrentTemperature.Value, s.CurrentTemperature.Unit,
		s.HVACModeName())
}

// FormatDetailed returns a multi-line rendering of the heating state
func (s *State) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Heating State ===\n")
	b.WriteString(formatReading("Target Temperature", s.TargetTemperature))
	b.WriteString(formatReading("Room Temperature", s.CurrentTemperature))
	b.WriteString(fmt.Sprintf("%-20s %s (%s)\n", "HVAC Mode:", s.HVACMode.Value, s.HVACModeName()))

	return b.String()
}

// FormatCompact returns the one-line state rendering
func (s *State) FormatCompact() string {
	return s.Summary()
}

// Summary returns a one-line summary of the device information
func (i *Info) Summary() string {
	return fmt.Sprintf("%s (family %s, variant %s)",
		i.DeviceIdentification.Value,
		i.DeviceFamily.Value,
		i.DeviceVariant.Value)
}

// FormatDetailed returns a multi-line rendering of the device information
func (i *Info) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Device Information ===\n")
	b.WriteString(formatReading("Identification", i.DeviceIdentification))
	b.WriteString(formatReading("Family", i.DeviceFamily))
	b.WriteString(formatReading("Variant", i.DeviceVariant))

	return b.String()
}

// FormatCompact returns the one-line info rendering
func (i *Info) FormatCompact() string {
	return i.Summary()
}

// FormatParameterMap renders a raw parameter map, one parameter per line,
// in device order. Used by the generic query command.
func FormatParameterMap(params ParameterMap) string {
	var b strings.Builder
	for _, entry := range params {
		value := entry.Reading.Value
		if value == "" {
			value = "(no value)"
		}
		b.WriteString(fmt.Sprintf("%-6s %-32s %s%s\n",
			entry.ID, entry.Reading.Name, value, entry.Reading.Unit))
	}
	return b.String()
}

func formatReading(label string, r ParameterReading) string {
	value := r.Value
	if value == "" {
		value = "(not available)"
	}
	return fmt.Sprintf("%-20s %s%s\n", label+":", value, r.Unit)
}
