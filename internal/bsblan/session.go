package bsblan

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/bsblan/internal/logging"
)

// Query issues a single /JQ query for the given comma-separated parameter
// IDs and returns the decoded parameter map in device order.
func (c *Client) Query(parameters string) (ParameterMap, error) {
	raw, err := c.request("", http.MethodPost, nil, url.Values{
		"Parameter": []string{parameters},
	})
	if err != nil {
		return nil, err
	}

	params, err := DecodeParameterMap(raw)
	if err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	return params, nil
}

// Scan discovers which of the bootstrap parameters the attached heater
// answers. IDs whose reading carries no value are dropped; the surviving
// IDs are comma-joined in response order, cached for State, and returned.
// A scan always overwrites the previously cached set.
func (c *Client) Scan() (string, error) {
	params, err := c.Query(BootstrapParameters)
	if err != nil {
		return "", err
	}

	var valid []string
	for _, entry := range params {
		if entry.Reading.Value != "" {
			valid = append(valid, entry.ID)
		}
	}

	discovered := strings.Join(valid, ",")
	c.parameters = &discovered
	logging.Info("Parameter scan complete",
		zap.String("host", c.Host),
		zap.String("parameters", discovered),
	)
	return discovered, nil
}

// Parameters returns the cached parameter set from the last Scan, or the
// empty string when no scan has run yet.
func (c *Client) Parameters() string {
	if c.parameters == nil {
		return ""
	}
	return *c.parameters
}

// State returns the current heating state. The first call triggers a
// Scan to discover the queryable parameters; later calls reuse the cached
// set without re-validating it against the device. Parameters that stop
// answering after the scan silently drop out of the result.
func (c *Client) State() (*State, error) {
	if c.parameters == nil {
		if _, err := c.Scan(); err != nil {
			return nil, err
		}
	}

	params, err := c.Query(*c.parameters)
	if err != nil {
		return nil, err
	}
	return ParseState(params), nil
}

// Info returns static identification of the heating controller. The
// queried set is fixed and independent of the scan cache.
func (c *Client) Info() (*Info, error) {
	params, err := c.Query(InfoParameters)
	if err != nil {
		return nil, err
	}
	return ParseInfo(params), nil
}

// Thermostat writes the target temperature and/or HVAC mode. Empty
// strings leave a field untouched. When both are given, the mode write
// replaces the temperature write and only the mode reaches the device;
// issue two calls to change both. Only transport-level success is
// verified; the device's per-parameter acknowledgement is not inspected.
func (c *Client) Thermostat(targetTemperature, hvacMode string) error {
	var update ThermostatUpdate

	if targetTemperature != "" {
		update = ThermostatUpdate{
			Parameter: ParamTargetTemperature,
			Value:     targetTemperature,
			Type:      writeTypeSet,
		}
	}
	if hvacMode != "" {
		update = ThermostatUpdate{
			Parameter: ParamHVACMode,
			EnumValue: hvacMode,
			Type:      writeTypeSet,
		}
	}

	var body interface{} = update
	if update.Parameter == "" {
		// Nothing to set; the device receives an empty write
		body = struct{}{}
	}

	_, err := c.request("", http.MethodPost, body, nil)
	if err != nil {
		return err
	}

	logging.Info("Thermostat updated",
		zap.String("host", c.Host),
		zap.String("parameter", update.Parameter),
		zap.String("value", update.Value),
		zap.String("enum_value", update.EnumValue),
	)
	return nil
}
