package meridian

// Cancellation reverses an authorization or refunds a charge, depending on
// its parent transaction.
type Cancellation struct {
	transactionBase

	Amount float64 `json:"amount,omitempty"`
	// Reason is only meaningful on charge cancellations.
	Reason string `json:"reasonCode,omitempty"`
}

// Cancellation reason codes accepted by the gateway.
const (
	ReasonCancel = "CANCEL"
	ReasonReturn = "RETURN"
	ReasonCredit = "CREDIT"
)

func (c *Cancellation) ResourcePath() string { return "cancels" }

func (c *Cancellation) Expose() (map[string]interface{}, error) {
	return c.exposeTransaction(c)
}

func (c *Cancellation) HandleResponse(response map[string]interface{}, method string) error {
	return c.ingestTransaction(response, c)
}
