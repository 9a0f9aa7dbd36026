// Package bsblan provides an HTTP client for BSB-LAN heating controllers.
//
// This package implements a client for the BSB-LAN device's local HTTP/JSON
// API, enabling reads of the current heating state, static device
// information, and thermostat writes (target temperature and HVAC mode).
// All operations flow through a single request path that handles URL
// construction (including an optional path-embedded passkey), HTTP Basic
// authentication, timeouts, and error classification.
//
// # Parameter Discovery
//
// BSB-LAN exposes its data as numbered parameters. Which parameters a
// given installation answers depends on the attached heater, so the client
// discovers them once with Scan and caches the resulting comma-joined set
// for all subsequent State reads. There is no automatic invalidation;
// calling Scan again is the only refresh path.
//
// # Usage Example
//
//	client := bsblan.NewClient("10.0.1.60", 80)
//	client.SetAuth("admin", "secret")
//	defer client.Close()
//
//	state, err := client.State()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(state.FormatDetailed())
//
//	// Set the thermostat to 19 degrees
//	if err := client.Thermostat("19.0", ""); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Failures surface as *DeviceError with one of two kinds: ErrKindConnection
// (timeout, network failure, non-2xx status) or ErrKindProtocol (the device
// answered with something other than JSON; the error carries the content
// type and raw body for diagnostics). Use IsConnectionError and
// IsProtocolError to branch on them.
package bsblan
