package meridian

// Shipment notifies the gateway that goods for an insured payment were
// shipped, which starts the payout period.
type Shipment struct {
	transactionBase

	Amount    float64 `json:"amount,omitempty"`
	InvoiceID string  `json:"invoiceId,omitempty"`
}

func (s *Shipment) ResourcePath() string { return "shipments" }

func (s *Shipment) Expose() (map[string]interface{}, error) {
	return s.exposeTransaction(s)
}

func (s *Shipment) HandleResponse(response map[string]interface{}, method string) error {
	return s.ingestTransaction(response, s)
}
