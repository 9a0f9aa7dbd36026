// Package logging provides structured logging for the bsblan tools.
//
// This package wraps zap logger with convenience functions for common
// logging patterns used throughout the client and CLI. Logging is silent
// by default so that CLI output stays clean; it is enabled through the
// BSBLAN_LOG_LEVEL environment variable or an explicit Initialize call.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (request URLs, response bodies)
//   - Info: Normal operations (queries, thermostat writes)
//   - Warn: Non-fatal issues (unexpected parameter values)
//   - Error: Fatal issues (device unreachable, protocol errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Thermostat updated",
//	    zap.String("host", "10.0.1.60"),
//	    zap.String("parameter", "710"),
//	    zap.String("value", "19.0"),
//	)
//
// # Specialized Logging
//
// Request/response helpers cover the transport path:
//
//	logging.LogRequest(method, url)
//	logging.LogResponse(url, statusCode, contentType, bodyLen)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
package logging
