// Package adapter defines the pluggable HTTP transport used by the SDK.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Supported HTTP methods.
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodDelete = http.MethodDelete
)

// HTTPAdapter performs a single HTTP request per Init/Execute cycle.
// Implementations are not required to be safe for concurrent use; the SDK
// issues one request at a time.
type HTTPAdapter interface {
	// Init prepares a request. payload may be nil for body-less methods.
	Init(url string, payload []byte, method string) error

	// Execute performs the prepared request and returns the raw response
	// body. A non-2xx status is not an error at this layer; callers read
	// ResponseCode to decide.
	Execute(ctx context.Context) ([]byte, error)

	// ResponseCode returns the HTTP status code of the last response, or
	// zero if no response was received.
	ResponseCode() int

	// Close releases any state held for the current request.
	Close()

	SetHeaders(headers map[string]string)
	SetUserAgent(userAgent string)
}

// StandardAdapter is the default HTTPAdapter backed by net/http.
type StandardAdapter struct {
	httpClient *http.Client

	url       string
	payload   []byte
	method    string
	headers   map[string]string
	userAgent string
	status    int
}

// NewStandardAdapter returns an adapter using a client with the given
// request timeout.
func NewStandardAdapter(timeout time.Duration) *StandardAdapter {
	return &StandardAdapter{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *StandardAdapter) Init(url string, payload []byte, method string) error {
	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
	default:
		return fmt.Errorf("unsupported http method %q", method)
	}
	a.url = url
	a.payload = payload
	a.method = method
	a.status = 0
	return nil
}

func (a *StandardAdapter) Execute(ctx context.Context) ([]byte, error) {
	var body io.Reader
	if len(a.payload) > 0 {
		body = bytes.NewReader(a.payload)
	}

	req, err := http.NewRequestWithContext(ctx, a.method, a.url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range a.headers {
		req.Header.Set(key, value)
	}
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	a.status = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return respBody, nil
}

func (a *StandardAdapter) ResponseCode() int {
	return a.status
}

func (a *StandardAdapter) Close() {
	a.url = ""
	a.payload = nil
	a.method = ""
}

func (a *StandardAdapter) SetHeaders(headers map[string]string) {
	a.headers = headers
}

func (a *StandardAdapter) SetUserAgent(userAgent string) {
	a.userAgent = userAgent
}
