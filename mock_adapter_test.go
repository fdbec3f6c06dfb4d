package meridian

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordedCall is one request as seen by the transport.
type recordedCall struct {
	URL     string
	Method  string
	Payload []byte
}

// payloadMap decodes the recorded request body.
func (c recordedCall) payloadMap(t *testing.T) map[string]interface{} {
	t.Helper()
	fields := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(c.Payload, &fields))
	return fields
}

type scriptedResponse struct {
	status int
	body   string
}

// mockAdapter replays scripted responses in order and records every call.
// An exhausted script answers 200 {}.
type mockAdapter struct {
	calls     []recordedCall
	script    []scriptedResponse
	headers   map[string]string
	userAgent string

	current scriptedResponse
}

func newMockAdapter() *mockAdapter { return &mockAdapter{} }

func (m *mockAdapter) respond(status int, body string) *mockAdapter {
	m.script = append(m.script, scriptedResponse{status: status, body: body})
	return m
}

func (m *mockAdapter) Init(url string, payload []byte, method string) error {
	m.calls = append(m.calls, recordedCall{
		URL:     url,
		Method:  method,
		Payload: append([]byte(nil), payload...),
	})
	if len(m.script) == 0 {
		m.current = scriptedResponse{status: 200, body: "{}"}
		return nil
	}
	m.current = m.script[0]
	m.script = m.script[1:]
	return nil
}

func (m *mockAdapter) Execute(ctx context.Context) ([]byte, error) {
	return []byte(m.current.body), nil
}

func (m *mockAdapter) ResponseCode() int { return m.current.status }

func (m *mockAdapter) Close() {}

func (m *mockAdapter) SetHeaders(headers map[string]string) { m.headers = headers }

func (m *mockAdapter) SetUserAgent(userAgent string) { m.userAgent = userAgent }

func (m *mockAdapter) lastCall(t *testing.T) recordedCall {
	t.Helper()
	require.NotEmpty(t, m.calls)
	return m.calls[len(m.calls)-1]
}

// newTestClient wires a client to the mock transport.
func newTestClient(t *testing.T, transport *mockAdapter) *Client {
	t.Helper()
	client, err := NewClient("s-priv-testkey", WithAdapter(transport))
	require.NoError(t, err)
	return client
}
