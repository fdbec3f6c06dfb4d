package meridian

import "context"

// Charge captures an amount, either directly against a payment type or
// against an existing authorization. A payment keeps its charges in
// insertion order.
type Charge struct {
	transactionBase

	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	ReturnURL string  `json:"returnUrl,omitempty"`
	// RedirectURL is assigned by the gateway for redirect payment flows.
	RedirectURL string `json:"redirectUrl,omitempty"`
	InvoiceID   string `json:"invoiceId,omitempty"`

	cancellations cancellationList
}

func (c *Charge) ResourcePath() string { return "charges" }

func (c *Charge) Expose() (map[string]interface{}, error) {
	return c.exposeTransaction(c)
}

func (c *Charge) HandleResponse(response map[string]interface{}, method string) error {
	return c.ingestTransaction(response, c)
}

// Cancellations returns the refunds of this charge in insertion order.
func (c *Charge) Cancellations() []*Cancellation {
	return c.cancellations.all()
}

// Cancellation returns the refund with the given id, or nil.
func (c *Charge) Cancellation(id string) *Cancellation {
	return c.cancellations.get(id)
}

func (c *Charge) addCancellation(cancellation *Cancellation) {
	cancellation.SetParent(c)
	cancellation.setPayment(c.payment)
	c.cancellations.add(cancellation)
}

// Cancel refunds the charge. A zero amount refunds it fully. The reason
// code is carried as-is; the gateway enforces its semantics.
func (c *Charge) Cancel(ctx context.Context, amount float64, reason string) (*Cancellation, error) {
	service, err := c.requireService()
	if err != nil {
		return nil, err
	}

	cancellation := &Cancellation{Reason: reason}
	if amount > 0 {
		cancellation.Amount = amount
	}
	cancellation.SetParent(c)
	cancellation.setPayment(c.payment)

	if err := service.CreateResource(ctx, cancellation); err != nil {
		return nil, err
	}
	c.cancellations.add(cancellation)
	return cancellation, nil
}
