package bsblan

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorKind is the user-visible error category.
type ErrorKind int

const (
	// ErrKindConnection indicates the request never produced a usable
	// response: timeout, network failure, DNS failure, or a non-2xx status.
	ErrKindConnection ErrorKind = iota
	// ErrKindProtocol indicates the transport succeeded but the device
	// answered with something other than JSON.
	ErrKindProtocol
)

// NetworkSubtype provides more specific connection error classification
// for diagnostics and troubleshooting hints.
type NetworkSubtype int

const (
	NetworkGeneral NetworkSubtype = iota
	NetworkTimeout
	NetworkConnectionRefused
	NetworkDNS
	NetworkHostUnreachable
	NetworkNetUnreachable
	NetworkBadStatus
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindConnection:
		return "Connection Error"
	case ErrKindProtocol:
		return "Protocol Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// DeviceError represents an error that occurred while talking to a
// BSB-LAN device.
type DeviceError struct {
	Kind        ErrorKind      // Category of error
	Message     string         // Human-readable error message
	StatusCode  int            // HTTP status code (if applicable)
	ContentType string         // Response content type (protocol errors)
	Body        string         // Raw response body (protocol errors)
	Err         error          // Underlying error (if any)
	Subtype     NetworkSubtype // More specific network error type
	Host        string         // Device host (for context)
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a
// connection error with the most specific subtype it can determine.
func ClassifyNetworkError(err error, host string) *DeviceError {
	if err == nil {
		return nil
	}

	// Timeouts first: the context deadline covers the whole request
	if os.IsTimeout(err) {
		return &DeviceError{
			Kind:    ErrKindConnection,
			Message: "timeout occurred while connecting to the device",
			Err:     err,
			Subtype: NetworkTimeout,
			Host:    host,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &DeviceError{
			Kind:    ErrKindConnection,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
			Subtype: NetworkDNS,
			Host:    host,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			return &DeviceError{
				Kind:    ErrKindConnection,
				Message: "device refused connection",
				Err:     err,
				Subtype: NetworkConnectionRefused,
				Host:    host,
			}
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH):
			return &DeviceError{
				Kind:    ErrKindConnection,
				Message: "host unreachable",
				Err:     err,
				Subtype: NetworkHostUnreachable,
				Host:    host,
			}
		case errors.Is(opErr.Err, syscall.ENETUNREACH):
			return &DeviceError{
				Kind:    ErrKindConnection,
				Message: "network unreachable",
				Err:     err,
				Subtype: NetworkNetUnreachable,
				Host:    host,
			}
		}
	}

	// url.Error wraps the interesting part; classify what's inside
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		classified := ClassifyNetworkError(urlErr.Err, host)
		classified.Err = err
		return classified
	}

	return &DeviceError{
		Kind:    ErrKindConnection,
		Message: "error occurred while communicating with the device",
		Err:     err,
		Subtype: NetworkGeneral,
		Host:    host,
	}
}

// NewStatusError creates a connection error for a non-2xx response.
func NewStatusError(statusCode int, host string) *DeviceError {
	return &DeviceError{
		Kind:       ErrKindConnection,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Subtype:    NetworkBadStatus,
		Host:       host,
	}
}

// NewProtocolError creates a protocol error carrying the offending
// content type and raw body for diagnostics.
func NewProtocolError(contentType string, body []byte, host string) *DeviceError {
	return &DeviceError{
		Kind:        ErrKindProtocol,
		Message:     fmt.Sprintf("unexpected response content type: %q", contentType),
		ContentType: contentType,
		Body:        string(body),
		Host:        host,
	}
}

// IsConnectionError checks if an error is a connection error (timeout,
// network failure, DNS failure, non-2xx status).
func IsConnectionError(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Kind == ErrKindConnection
}

// IsProtocolError checks if an error is a protocol error.
func IsProtocolError(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Kind == ErrKindProtocol
}

// IsTimeout checks if an error is a request timeout.
func IsTimeout(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Subtype == NetworkTimeout
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		return err.Error()
	}

	switch devErr.Subtype {
	case NetworkTimeout:
		return "Device not responding (timeout)"
	case NetworkConnectionRefused:
		return "Device refused connection - check host and port"
	case NetworkDNS:
		return "Cannot resolve device hostname"
	case NetworkHostUnreachable:
		return "Device unreachable - check network connection"
	case NetworkNetUnreachable:
		return "Network unreachable - check your connection"
	case NetworkBadStatus:
		if devErr.StatusCode == 401 {
			return "Authentication failed - check credentials"
		}
		return fmt.Sprintf("Device error (HTTP %d)", devErr.StatusCode)
	}

	if devErr.Kind == ErrKindProtocol {
		return fmt.Sprintf("Device returned %s instead of JSON - check passkey and firmware", devErr.ContentType)
	}

	return devErr.Message
}
