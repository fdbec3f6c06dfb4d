// Package webhook receives and resolves gateway event notifications.
package webhook

import (
	"encoding/json"
	"errors"
)

// Event is the payload the gateway posts to a registered webhook URL. The
// notification itself carries no resource state; RetrieveURL points at
// the resource that changed.
type Event struct {
	Event       string `json:"event"`
	PublicKey   string `json:"publicKey"`
	RetrieveURL string `json:"retrieveUrl"`
	PaymentID   string `json:"paymentId,omitempty"`
}

var ErrMissingEvent = errors.New("webhook payload carries no event")

// ParseEvent decodes a webhook request body.
func ParseEvent(payload []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	if event.Event == "" {
		return nil, ErrMissingEvent
	}
	return &event, nil
}
