package bsblan

import (
	"strings"
	"testing"
)

func testState() *State {
	return &State{
		TargetTemperature:  ParameterReading{Value: "20.0", Unit: "°C"},
		HVACMode:           ParameterReading{Value: "1", Desc: "Automatic"},
		CurrentTemperature: ParameterReading{Value: "21.5", Unit: "°C"},
	}
}

func TestStateSummary(t *testing.T) {
	got := testState().Summary()

	for _, want := range []string{"20.0", "21.5", "automatic"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, want %q included", got, want)
		}
	}
}

func TestStateFormatDetailed(t *testing.T) {
	got := testState().FormatDetailed()

	for _, want := range []string{"Heating State", "Target Temperature", "Room Temperature", "HVAC Mode", "20.0", "21.5"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatDetailed() missing %q:\n%s", want, got)
		}
	}
}

func TestStateFormatDetailed_MissingValues(t *testing.T) {
	state := &State{HVACMode: ParameterReading{Value: "3"}}

	got := state.FormatDetailed()
	if !strings.Contains(got, "(not available)") {
		t.Errorf("FormatDetailed() should flag missing readings:\n%s", got)
	}
}

func TestInfoSummary(t *testing.T) {
	info := &Info{
		DeviceIdentification: ParameterReading{Value: "RVS43.222"},
		DeviceFamily:         ParameterReading{Value: "98"},
		DeviceVariant:        ParameterReading{Value: "109"},
	}

	got := info.Summary()
	if got != "RVS43.222 (family 98, variant 109)" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestFormatParameterMap(t *testing.T) {
	params := ParameterMap{
		{ID: "700", Reading: ParameterReading{Name: "Operating mode", Value: "1"}},
		{ID: "8740", Reading: ParameterReading{Name: "Room temp", Value: ""}},
	}

	got := FormatParameterMap(params)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), got)
	}

	if !strings.HasPrefix(lines[0], "700") {
		t.Errorf("first line = %q, want device order preserved", lines[0])
	}

	if !strings.Contains(lines[1], "(no value)") {
		t.Errorf("empty value should render as placeholder: %q", lines[1])
	}
}
