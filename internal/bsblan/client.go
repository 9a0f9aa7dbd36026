package bsblan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muurk/bsblan/internal/logging"
	"github.com/muurk/bsblan/internal/version"
)

const (
	// DefaultPort is the default HTTP port of a BSB-LAN device
	DefaultPort = 80

	// DefaultTimeout is the default request timeout
	DefaultTimeout = 10 * time.Second

	// queryBasePath serves parameter queries (no request body)
	queryBasePath = "/JQ"

	// writeBasePath serves parameter writes (JSON request body)
	writeBasePath = "/JS"
)

// Client represents an HTTP client for communicating with a BSB-LAN
// device. A Client is intended for sequential use; concurrent calls on
// one instance are not synchronized.
type Client struct {
	// Host is the device hostname or IP address
	Host string

	// Port is the device HTTP port (default: 80)
	Port int

	// Timeout bounds each request end to end (connect, send, receive)
	Timeout time.Duration

	// Username and Password for HTTP Basic Auth. Auth is only applied
	// when both are set; a partial pair silently disables it.
	Username string
	Password string

	// Passkey is an optional access key embedded as a URL path segment
	// before the /JQ or /JS base path
	Passkey string

	// session is the underlying HTTP client. Created lazily on first
	// request unless one was injected via SetHTTPClient.
	session *http.Client

	// ownsSession is true when the client created the session itself
	// and is therefore responsible for closing it
	ownsSession bool

	// sessionClosed guards against closing the owned session twice
	sessionClosed bool

	// parameters is the comma-joined set of parameter IDs discovered by
	// the last Scan. nil until the first scan; only Scan mutates it. An
	// empty non-nil set is valid and means the heater answered nothing.
	parameters *string
}

// NewClient creates a new client for a BSB-LAN device.
// host: device hostname or IP address
// port: device HTTP port (typically 80)
func NewClient(host string, port int) *Client {
	if port == 0 {
		port = DefaultPort
	}
	return &Client{
		Host:    host,
		Port:    port,
		Timeout: DefaultTimeout,
	}
}

// SetTimeout sets the per-request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.Timeout = timeout
}

// SetAuth sets HTTP Basic Auth credentials
func (c *Client) SetAuth(username, password string) {
	c.Username = username
	c.Password = password
}

// SetPasskey sets the access key embedded in the request path
func (c *Client) SetPasskey(passkey string) {
	c.Passkey = passkey
}

// SetHTTPClient injects an externally owned HTTP client. The client is
// borrowed: Close will never close it, and its connection pool outlives
// this Client.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.session = hc
	c.ownsSession = false
}

// Close releases the underlying session. It is a no-op when the session
// was borrowed or never created, and safe to call more than once.
func (c *Client) Close() {
	if c.session != nil && c.ownsSession && !c.sessionClosed {
		c.sessionClosed = true
		c.session.CloseIdleConnections()
	}
}

// httpSession returns the session, creating an owned one on first use.
func (c *Client) httpSession() *http.Client {
	if c.session == nil {
		c.session = &http.Client{}
		c.ownsSession = true
	}
	return c.session
}

// buildURL constructs the device URL for a request. The base path is /JQ
// for queries and /JS for writes; a configured passkey is prepended as a
// path segment before it.
func (c *Client) buildURL(pathSuffix string, hasBody bool, query url.Values) string {
	basePath := queryBasePath
	if hasBody {
		basePath = writeBasePath
	}
	if c.Passkey != "" {
		basePath = "/" + c.Passkey + basePath
	}
	if pathSuffix != "" {
		basePath = basePath + "/" + strings.TrimPrefix(pathSuffix, "/")
	}

	u := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   basePath,
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// request performs exactly one device HTTP transaction and returns the
// raw JSON body, or a classified *DeviceError. No retries are attempted.
func (c *Client) request(pathSuffix, method string, body interface{}, query url.Values) ([]byte, error) {
	requestURL := c.buildURL(pathSuffix, body != nil, query)

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Auth only applies with a complete credential pair
	if c.Username != "" && c.Password != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	logging.LogRequest(method, requestURL)

	resp, err := c.httpSession().Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &DeviceError{
				Kind:    ErrKindConnection,
				Message: "timeout occurred while connecting to the device",
				Err:     err,
				Subtype: NetworkTimeout,
				Host:    c.Host,
			}
		}
		return nil, ClassifyNetworkError(err, c.Host)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, NewStatusError(resp.StatusCode, c.Host)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ClassifyNetworkError(err, c.Host)
	}

	contentType := resp.Header.Get("Content-Type")
	logging.LogResponse(requestURL, resp.StatusCode, contentType, len(respBody))

	if !strings.Contains(contentType, "application/json") {
		return nil, NewProtocolError(contentType, respBody, c.Host)
	}

	return respBody, nil
}
