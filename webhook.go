package meridian

// Webhook is an event subscription: the gateway delivers the given event
// to the registered URL.
type Webhook struct {
	baseResource

	URL   string `json:"url,omitempty"`
	Event string `json:"event,omitempty"`
}

// Webhook events accepted by the gateway. "all" subscribes to everything.
const (
	EventAll              = "all"
	EventAuthorize        = "authorize"
	EventCharge           = "charge"
	EventChargeback       = "chargeback"
	EventPayout           = "payout"
	EventShipment         = "shipment"
	EventPaymentPending   = "payment.pending"
	EventPaymentCompleted = "payment.completed"
	EventPaymentCanceled  = "payment.canceled"
	EventPaymentPartly    = "payment.partly"
	EventPaymentReview    = "payment.payment_review"
)

// NewWebhook returns a subscription of the given event to the given URL.
func NewWebhook(url, event string) *Webhook {
	return &Webhook{URL: url, Event: event}
}

func (w *Webhook) ResourcePath() string { return "webhooks" }

func (w *Webhook) Expose() (map[string]interface{}, error) {
	return exposeFields(w)
}

func (w *Webhook) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, w)
}

// webhookList reads the collection endpoint, which wraps the
// subscriptions in an events array.
type webhookList struct {
	baseResource

	webhooks []*Webhook
}

func (l *webhookList) ResourcePath() string { return "webhooks" }

func (l *webhookList) Expose() (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

func (l *webhookList) HandleResponse(response map[string]interface{}, method string) error {
	entries, ok := response["events"].([]interface{})
	if !ok {
		return nil
	}
	l.webhooks = l.webhooks[:0]
	for _, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		webhook := &Webhook{}
		if id := stringField(entry, "id"); id != "" {
			webhook.SetID(id)
		}
		if err := ingestFields(entry, webhook); err != nil {
			return err
		}
		webhook.LinkService(l.Service())
		l.webhooks = append(l.webhooks, webhook)
	}
	return nil
}
