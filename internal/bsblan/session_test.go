package bsblan

import (
	"io"
	"net/http"
	"testing"
)

// deviceRecorder captures every request the mock device received.
type deviceRecorder struct {
	queries []string // Parameter query string per /JQ request
	bodies  []string // raw body per /JS request
}

// scanningClient wires a client to a mock device that answers queries
// with scanBody and records everything it is asked.
func scanningClient(t *testing.T, scanBody string) (*Client, *deviceRecorder) {
	t.Helper()

	rec := &deviceRecorder{}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				t.Errorf("failed to read write body: %v", err)
			}
			rec.bodies = append(rec.bodies, string(body))
			writeJSON(w, mockWriteResponse)
			return
		}
		rec.queries = append(rec.queries, r.URL.Query().Get("Parameter"))
		writeJSON(w, scanBody)
	})
	return client, rec
}

func TestScan_FiltersEmptyValues(t *testing.T) {
	// 710 answers, 700 answers, 8740 does not
	body := `{"8740":{"name":"Room temp 1","error":7,"value":"","desc":"","unit":"","dataType":0},` +
		`"710":{"name":"Comfort setpoint","error":0,"value":"20.0","desc":"","unit":"&deg;C","dataType":0},` +
		`"700":{"name":"Operating mode","error":0,"value":"1","desc":"Automatic","unit":"","dataType":1}}`

	client, rec := scanningClient(t, body)

	discovered, err := client.Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if discovered != "710,700" {
		t.Errorf("discovered = %q, want %q (device order, empty values dropped)", discovered, "710,700")
	}

	if client.Parameters() != "710,700" {
		t.Errorf("Parameters() = %q, want cached scan result", client.Parameters())
	}

	if len(rec.queries) != 1 || rec.queries[0] != BootstrapParameters {
		t.Errorf("scan queried %v, want single query for %s", rec.queries, BootstrapParameters)
	}
}

func TestScan_AllEmptyValues(t *testing.T) {
	body := `{"8740":{"name":"","error":7,"value":"","desc":"","unit":"","dataType":0}}`

	client, _ := scanningClient(t, body)

	discovered, err := client.Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if discovered != "" {
		t.Errorf("discovered = %q, want empty set", discovered)
	}

	// An empty scan result still counts as scanned: State must not rescan
	if _, err := client.State(); err != nil {
		t.Fatalf("State() error = %v", err)
	}
}

func TestState_ScansExactlyOnce(t *testing.T) {
	client, rec := scanningClient(t, mockScanResponse)

	if _, err := client.State(); err != nil {
		t.Fatalf("State() error = %v", err)
	}
	if _, err := client.State(); err != nil {
		t.Fatalf("State() error = %v", err)
	}

	// First call: scan + state query. Second call: state query only.
	if len(rec.queries) != 3 {
		t.Fatalf("device saw %d queries, want 3 (one scan, two state reads)", len(rec.queries))
	}

	if rec.queries[0] != BootstrapParameters {
		t.Errorf("first query = %q, want bootstrap scan", rec.queries[0])
	}

	// State reads use the cached set in device response order
	want := "8740,710,700"
	if rec.queries[1] != want || rec.queries[2] != want {
		t.Errorf("state queries = %q, %q, want %q", rec.queries[1], rec.queries[2], want)
	}
}

func TestState_ReadsValues(t *testing.T) {
	client, _ := scanningClient(t, mockScanResponse)

	state, err := client.State()
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}

	if state.TargetTemperature.Value != "20.0" {
		t.Errorf("TargetTemperature = %q, want 20.0", state.TargetTemperature.Value)
	}

	if state.CurrentTemperature.Value != "21.5" {
		t.Errorf("CurrentTemperature = %q, want 21.5", state.CurrentTemperature.Value)
	}

	if state.HVACMode.Value != "1" {
		t.Errorf("HVACMode = %q, want 1", state.HVACMode.Value)
	}

	if state.HVACModeName() != "automatic" {
		t.Errorf("HVACModeName() = %q, want automatic", state.HVACModeName())
	}
}

func TestInfo_UsesFixedParameterSet(t *testing.T) {
	body := `{"6224":{"name":"Device identification","error":0,"value":"RVS43.222","desc":"","unit":"","dataType":7},` +
		`"6225":{"name":"Device family","error":0,"value":"98","desc":"","unit":"","dataType":0},` +
		`"6226":{"name":"Device variant","error":0,"value":"109","desc":"","unit":"","dataType":0}}`

	client, rec := scanningClient(t, body)

	info, err := client.Info()
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	if len(rec.queries) != 1 || rec.queries[0] != InfoParameters {
		t.Errorf("info queried %v, want single query for %s", rec.queries, InfoParameters)
	}

	if info.DeviceIdentification.Value != "RVS43.222" {
		t.Errorf("DeviceIdentification = %q, want RVS43.222", info.DeviceIdentification.Value)
	}

	if info.DeviceFamily.Value != "98" {
		t.Errorf("DeviceFamily = %q, want 98", info.DeviceFamily.Value)
	}
}

func TestThermostat_SetTemperature(t *testing.T) {
	client, rec := scanningClient(t, mockScanResponse)

	if err := client.Thermostat("19.0", ""); err != nil {
		t.Fatalf("Thermostat() error = %v", err)
	}

	want := `{"Parameter":"710","Value":"19.0","Type":"1"}`
	if len(rec.bodies) != 1 || rec.bodies[0] != want {
		t.Errorf("write body = %v, want %s", rec.bodies, want)
	}
}

func TestThermostat_SetMode(t *testing.T) {
	client, rec := scanningClient(t, mockScanResponse)

	if err := client.Thermostat("", HVACModeComfort); err != nil {
		t.Fatalf("Thermostat() error = %v", err)
	}

	want := `{"Parameter":"700","EnumValue":"3","Type":"1"}`
	if len(rec.bodies) != 1 || rec.bodies[0] != want {
		t.Errorf("write body = %v, want %s", rec.bodies, want)
	}
}

func TestThermostat_ModeWinsOverTemperature(t *testing.T) {
	client, rec := scanningClient(t, mockScanResponse)

	if err := client.Thermostat("19.0", HVACModeReduced); err != nil {
		t.Fatalf("Thermostat() error = %v", err)
	}

	// A single write is issued and the mode replaces the temperature
	want := `{"Parameter":"700","EnumValue":"2","Type":"1"}`
	if len(rec.bodies) != 1 || rec.bodies[0] != want {
		t.Errorf("write body = %v, want %s", rec.bodies, want)
	}
}

func TestThermostat_NothingToSet(t *testing.T) {
	client, rec := scanningClient(t, mockScanResponse)

	if err := client.Thermostat("", ""); err != nil {
		t.Fatalf("Thermostat() error = %v", err)
	}

	if len(rec.bodies) != 1 || rec.bodies[0] != "{}" {
		t.Errorf("write body = %v, want empty object", rec.bodies)
	}
}

func TestQuery_PropagatesDeviceErrors(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("not authorized"))
	})

	_, err := client.Query("700")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !IsProtocolError(err) {
		t.Errorf("expected protocol error, got %v", err)
	}

	// A failed scan must not populate the cache
	if _, err := client.Scan(); err == nil {
		t.Fatal("expected Scan to fail")
	}
	if client.parameters != nil {
		t.Error("failed scan should leave the cache unset")
	}
}
