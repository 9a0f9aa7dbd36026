package bsblan

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

// timeoutError satisfies net.Error with Timeout() == true
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyNetworkError_Timeout(t *testing.T) {
	err := ClassifyNetworkError(timeoutError{}, "10.0.1.60")

	if err.Subtype != NetworkTimeout {
		t.Errorf("Subtype = %v, want NetworkTimeout", err.Subtype)
	}
	if err.Kind != ErrKindConnection {
		t.Errorf("Kind = %v, want ErrKindConnection", err.Kind)
	}
	if err.Host != "10.0.1.60" {
		t.Errorf("Host = %q, want 10.0.1.60", err.Host)
	}
}

func TestClassifyNetworkError_DNS(t *testing.T) {
	dnsErr := &net.DNSError{Name: "heater.local", Err: "no such host"}

	err := ClassifyNetworkError(dnsErr, "heater.local")

	if err.Subtype != NetworkDNS {
		t.Errorf("Subtype = %v, want NetworkDNS", err.Subtype)
	}
	if !strings.Contains(err.Message, "heater.local") {
		t.Errorf("Message = %q, want hostname included", err.Message)
	}
}

func TestClassifyNetworkError_Syscalls(t *testing.T) {
	cases := []struct {
		name  string
		errno syscall.Errno
		want  NetworkSubtype
	}{
		{"connection refused", syscall.ECONNREFUSED, NetworkConnectionRefused},
		{"host unreachable", syscall.EHOSTUNREACH, NetworkHostUnreachable},
		{"network unreachable", syscall.ENETUNREACH, NetworkNetUnreachable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opErr := &net.OpError{Op: "dial", Net: "tcp", Err: tc.errno}

			err := ClassifyNetworkError(opErr, "10.0.1.60")
			if err.Subtype != tc.want {
				t.Errorf("Subtype = %v, want %v", err.Subtype, tc.want)
			}
		})
	}
}

func TestClassifyNetworkError_UnwrapsURLError(t *testing.T) {
	// http.Client wraps transport errors in url.Error
	inner := &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}
	wrapped := &url.Error{Op: "Post", URL: "http://10.0.1.60/JQ", Err: inner}

	err := ClassifyNetworkError(wrapped, "10.0.1.60")

	if err.Subtype != NetworkConnectionRefused {
		t.Errorf("Subtype = %v, want NetworkConnectionRefused", err.Subtype)
	}

	// The outer error is preserved for the chain
	if !errors.Is(err, wrapped) {
		t.Error("classified error should wrap the original url.Error")
	}
}

func TestClassifyNetworkError_Generic(t *testing.T) {
	err := ClassifyNetworkError(fmt.Errorf("something odd"), "10.0.1.60")

	if err.Subtype != NetworkGeneral {
		t.Errorf("Subtype = %v, want NetworkGeneral", err.Subtype)
	}
	if err.Kind != ErrKindConnection {
		t.Errorf("Kind = %v, want ErrKindConnection", err.Kind)
	}
}

func TestClassifyNetworkError_Nil(t *testing.T) {
	if err := ClassifyNetworkError(nil, "10.0.1.60"); err != nil {
		t.Errorf("ClassifyNetworkError(nil) = %v, want nil", err)
	}
}

func TestDeviceError_Error(t *testing.T) {
	err := &DeviceError{
		Kind:    ErrKindConnection,
		Message: "device refused connection",
		Err:     fmt.Errorf("dial tcp: connection refused"),
	}

	msg := err.Error()
	if !strings.Contains(msg, "Connection Error") {
		t.Errorf("Error() = %q, want kind prefix", msg)
	}
	if !strings.Contains(msg, "device refused connection") {
		t.Errorf("Error() = %q, want message", msg)
	}
	if !strings.Contains(msg, "caused by") {
		t.Errorf("Error() = %q, want underlying cause", msg)
	}
}

func TestDeviceError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("boom")
	err := &DeviceError{Kind: ErrKindConnection, Message: "failed", Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find the underlying error")
	}
}

func TestErrorPredicates(t *testing.T) {
	connErr := NewStatusError(500, "10.0.1.60")
	protoErr := NewProtocolError("text/html", []byte("<html>"), "10.0.1.60")
	timeoutErr := ClassifyNetworkError(timeoutError{}, "10.0.1.60")
	plainErr := fmt.Errorf("plain")

	if !IsConnectionError(connErr) || IsConnectionError(protoErr) || IsConnectionError(plainErr) {
		t.Error("IsConnectionError misclassified")
	}

	if !IsProtocolError(protoErr) || IsProtocolError(connErr) || IsProtocolError(plainErr) {
		t.Error("IsProtocolError misclassified")
	}

	if !IsTimeout(timeoutErr) || IsTimeout(connErr) || IsTimeout(plainErr) {
		t.Error("IsTimeout misclassified")
	}

	// Predicates must see through wrapping
	wrapped := fmt.Errorf("query state: %w", connErr)
	if !IsConnectionError(wrapped) {
		t.Error("IsConnectionError should see through fmt.Errorf wrapping")
	}
}

func TestNewProtocolError_CarriesDiagnostics(t *testing.T) {
	body := []byte("<html><body>login required</body></html>")

	err := NewProtocolError("text/html; charset=utf-8", body, "10.0.1.60")

	if err.ContentType != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q", err.ContentType)
	}
	if err.Body != string(body) {
		t.Errorf("Body = %q, want raw body preserved", err.Body)
	}
	if err.Kind != ErrKindProtocol {
		t.Errorf("Kind = %v, want ErrKindProtocol", err.Kind)
	}
}

func TestGetShortErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "timeout",
			err:  ClassifyNetworkError(timeoutError{}, "h"),
			want: "Device not responding (timeout)",
		},
		{
			name: "refused",
			err:  ClassifyNetworkError(&net.OpError{Err: syscall.ECONNREFUSED}, "h"),
			want: "Device refused connection - check host and port",
		},
		{
			name: "auth failure",
			err:  NewStatusError(401, "h"),
			want: "Authentication failed - check credentials",
		},
		{
			name: "server error",
			err:  NewStatusError(500, "h"),
			want: "Device error (HTTP 500)",
		},
		{
			name: "protocol",
			err:  NewProtocolError("text/html", nil, "h"),
			want: "Device returned text/html instead of JSON - check passkey and firmware",
		},
		{
			name: "non-device error",
			err:  fmt.Errorf("plain failure"),
			want: "plain failure",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetShortErrorMessage(tc.err); got != tc.want {
				t.Errorf("GetShortErrorMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}
