package bsblan

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParameterReading is a single parameter object as the BSB-LAN firmware
// returns it from /JQ:
//
//	{"700":{"name":"Operating mode","error":0,"value":"1","desc":"Automatic","dataType":1}}
//
// Only the fields below are modeled; firmware-specific extras are ignored.
type ParameterReading struct {
	Name     string `json:"name"`
	Error    int    `json:"error"`
	Value    string `json:"value"`
	Desc     string `json:"desc"`
	Unit     string `json:"unit"`
	DataType int    `json:"dataType"`
}

// ParameterEntry pairs a parameter ID with its reading.
type ParameterEntry struct {
	ID      string
	Reading ParameterReading
}

// ParameterMap is the device's response to a /JQ query: parameter IDs
// mapped to readings, in the order the device emitted them. A plain Go
// map would lose that order, and Scan relies on it, so the map is kept
// as an ordered slice of entries.
type ParameterMap []ParameterEntry

// Get returns the reading for a parameter ID.
func (m ParameterMap) Get(id string) (ParameterReading, bool) {
	for _, e := range m {
		if e.ID == id {
			return e.Reading, true
		}
	}
	return ParameterReading{}, false
}

// IDs returns the parameter IDs in encounter order.
func (m ParameterMap) IDs() []string {
	ids := make([]string, len(m))
	for i, e := range m {
		ids[i] = e.ID
	}
	return ids
}

// DecodeParameterMap decodes a /JQ response body while preserving the
// key order of the JSON object. json.Unmarshal into a map would shuffle
// the parameters, so the object is walked token by token instead.
func DecodeParameterMap(data []byte) (ParameterMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode parameter map: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode parameter map: expected JSON object, got %v", tok)
	}

	var entries ParameterMap
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode parameter map: %w", err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode parameter map: non-string key %v", keyTok)
		}

		var reading ParameterReading
		if err := dec.Decode(&reading); err != nil {
			return nil, fmt.Errorf("decode parameter %s: %w", id, err)
		}
		entries = append(entries, ParameterEntry{ID: id, Reading: reading})
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode parameter map: %w", err)
	}

	return entries, nil
}

// State represents the current heating state assembled from the scanned
// parameter set. Parameters the heater does not answer are left zero.
type State struct {
	// TargetTemperature is the comfort setpoint (parameter 710)
	TargetTemperature ParameterReading

	// HVACMode is the operating mode (parameter 700)
	HVACMode ParameterReading

	// CurrentTemperature is the measured room temperature (parameter 8740)
	CurrentTemperature ParameterReading
}

// HVACModeName returns the human-readable name for the current operating
// mode, falling back to the device description and then the raw value.
func (s *State) HVACModeName() string {
	if name, ok := HVACModeNames[s.HVACMode.Value]; ok {
		return name
	}
	if s.HVACMode.Desc != "" {
		return s.HVACMode.Desc
	}
	return s.HVACMode.Value
}

// ParseState maps a raw parameter map onto a typed State.
func ParseState(params ParameterMap) *State {
	state := &State{}
	if r, ok := params.Get(ParamTargetTemperature); ok {
		state.TargetTemperature = r
	}
	if r, ok := params.Get(ParamHVACMode); ok {
		state.HVACMode = r
	}
	if r, ok := params.Get(ParamCurrentTemperature); ok {
		state.CurrentTemperature = r
	}
	return state
}

// Info represents static identification of the heating controller.
type Info struct {
	// DeviceIdentification is the controller model string (parameter 6224)
	DeviceIdentification ParameterReading

	// DeviceFamily is the controller family code (parameter 6225)
	DeviceFamily ParameterReading

	// DeviceVariant is the controller variant code (parameter 6226)
	DeviceVariant ParameterReading
}

// ParseInfo maps a raw parameter map onto a typed Info.
func ParseInfo(params ParameterMap) *Info {
	info := &Info{}
	if r, ok := params.Get(ParamDeviceIdentification); ok {
		info.DeviceIdentification = r
	}
	if r, ok := params.Get(ParamDeviceFamily); ok {
		info.DeviceFamily = r
	}
	if r, ok := params.Get(ParamDeviceVariant); ok {
		info.DeviceVariant = r
	}
	return info
}

// ThermostatUpdate is the JSON body sent to /JS for a thermostat write.
// Value carries plain values (temperatures), EnumValue carries enumerated
// ones (operating modes); the device expects exactly one of them.
type ThermostatUpdate struct {
	Parameter string `json:"Parameter"`
	Value     string `json:"Value,omitempty"`
	EnumValue string `json:"EnumValue,omitempty"`
	Type      string `json:"Type"`
}
