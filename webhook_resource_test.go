package meridian

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianpay/meridian-go/adapter"
)

func TestCreateWebhook(t *testing.T) {
	transport := newMockAdapter().
		respond(201, `{"id": "s-whk-1", "url": "https://shop.example/hook", "event": "charge"}`)
	client := newTestClient(t, transport)

	webhook, err := client.CreateWebhook(context.Background(), "https://shop.example/hook", EventCharge)
	require.NoError(t, err)

	call := transport.lastCall(t)
	assert.Equal(t, adapter.MethodPost, call.Method)
	assert.Equal(t, "https://api.meridianpay.dev/v1/webhooks", call.URL)

	payload := call.payloadMap(t)
	assert.Equal(t, "https://shop.example/hook", payload["url"])
	assert.Equal(t, "charge", payload["event"])
	assert.Equal(t, "s-whk-1", webhook.ID())
}

func TestFetchWebhooksReadsEventsArray(t *testing.T) {
	transport := newMockAdapter().
		respond(200, `{
			"events": [
				{"id": "s-whk-1", "url": "https://shop.example/hook", "event": "charge"},
				{"id": "s-whk-2", "url": "https://shop.example/hook", "event": "authorize"}
			]
		}`)
	client := newTestClient(t, transport)

	webhooks, err := client.FetchWebhooks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://api.meridianpay.dev/v1/webhooks", transport.lastCall(t).URL)
	require.Len(t, webhooks, 2)
	assert.Equal(t, "s-whk-1", webhooks[0].ID())
	assert.Equal(t, EventCharge, webhooks[0].Event)
	assert.Equal(t, "s-whk-2", webhooks[1].ID())
	assert.Equal(t, EventAuthorize, webhooks[1].Event)
}

func TestDeleteWebhook(t *testing.T) {
	transport := newMockAdapter().respond(204, "")
	client := newTestClient(t, transport)

	webhook := NewWebhook("https://shop.example/hook", EventAll)
	webhook.SetID("s-whk-1")
	require.NoError(t, client.DeleteWebhook(context.Background(), webhook))

	call := transport.lastCall(t)
	assert.Equal(t, adapter.MethodDelete, call.Method)
	assert.Equal(t, "https://api.meridianpay.dev/v1/webhooks/s-whk-1", call.URL)
}
