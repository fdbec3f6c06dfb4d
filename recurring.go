package meridian

// Recurring activates recurring payments on a payment type. It is a
// transaction on the type itself, not on a payment.
type Recurring struct {
	baseResource

	typeID string

	ReturnURL   string `json:"returnUrl,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Success     bool   `json:"isSuccess,omitempty"`
	Pending     bool   `json:"isPending,omitempty"`
}

// NewRecurring returns an activation transaction for the given type id.
func NewRecurring(typeID, returnURL string) *Recurring {
	return &Recurring{typeID: typeID, ReturnURL: returnURL}
}

func (r *Recurring) ResourcePath() string { return "types/" + r.typeID + "/recurring" }

func (r *Recurring) Expose() (map[string]interface{}, error) {
	return exposeFields(r)
}

func (r *Recurring) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, r)
}
