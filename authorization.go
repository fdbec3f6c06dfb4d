package meridian

import "context"

// Authorization reserves an amount on a payment type. A payment owns at
// most one authorization; charges against it capture the reserved amount.
type Authorization struct {
	transactionBase

	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	ReturnURL string  `json:"returnUrl,omitempty"`
	// RedirectURL is assigned by the gateway when the customer has to be
	// redirected (3-D Secure, wallet login).
	RedirectURL string `json:"redirectUrl,omitempty"`
	Card3DS     *bool  `json:"card3ds,omitempty"`

	cancellations cancellationList
}

func (a *Authorization) ResourcePath() string { return "authorize" }

func (a *Authorization) Expose() (map[string]interface{}, error) {
	return a.exposeTransaction(a)
}

func (a *Authorization) HandleResponse(response map[string]interface{}, method string) error {
	return a.ingestTransaction(response, a)
}

// Cancellations returns the reversals of this authorization in insertion
// order.
func (a *Authorization) Cancellations() []*Cancellation {
	return a.cancellations.all()
}

// Cancellation returns the reversal with the given id, or nil.
func (a *Authorization) Cancellation(id string) *Cancellation {
	return a.cancellations.get(id)
}

func (a *Authorization) addCancellation(c *Cancellation) {
	c.SetParent(a)
	c.setPayment(a.payment)
	a.cancellations.add(c)
}

// Cancel reverses the authorization. A zero amount reverses it fully.
func (a *Authorization) Cancel(ctx context.Context, amount float64) (*Cancellation, error) {
	service, err := a.requireService()
	if err != nil {
		return nil, err
	}

	cancellation := &Cancellation{}
	if amount > 0 {
		cancellation.Amount = amount
	}
	cancellation.SetParent(a)
	cancellation.setPayment(a.payment)

	if err := service.CreateResource(ctx, cancellation); err != nil {
		return nil, err
	}
	a.cancellations.add(cancellation)
	return cancellation, nil
}
