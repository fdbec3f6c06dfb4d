package meridian

// Payout credits an amount to the account behind a payment type. A payment
// has at most one payout.
type Payout struct {
	transactionBase

	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	ReturnURL string  `json:"returnUrl,omitempty"`
}

func (p *Payout) ResourcePath() string { return "payouts" }

func (p *Payout) Expose() (map[string]interface{}, error) {
	return p.exposeTransaction(p)
}

func (p *Payout) HandleResponse(response map[string]interface{}, method string) error {
	return p.ingestTransaction(response, p)
}
