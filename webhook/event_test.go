package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	event, err := ParseEvent([]byte(`{
		"event": "charge",
		"publicKey": "s-pub-key",
		"retrieveUrl": "https://api.meridianpay.dev/v1/payments/s-pay-1/charges/s-chg-1",
		"paymentId": "s-pay-1"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "charge", event.Event)
	assert.Equal(t, "s-pub-key", event.PublicKey)
	assert.Equal(t, "s-pay-1", event.PaymentID)
	assert.Contains(t, event.RetrieveURL, "s-chg-1")
}

func TestParseEventRejectsMissingEvent(t *testing.T) {
	_, err := ParseEvent([]byte(`{"publicKey": "s-pub-key"}`))
	assert.ErrorIs(t, err, ErrMissingEvent)
}

func TestParseEventRejectsMalformedJSON(t *testing.T) {
	_, err := ParseEvent([]byte(`{`))
	assert.Error(t, err)
}
