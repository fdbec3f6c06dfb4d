package meridian

// Transaction type tags as they appear in a payment's transactions array.
const (
	txTypeAuthorize       = "authorize"
	txTypeCharge          = "charge"
	txTypeCancelAuthorize = "cancel-authorize"
	txTypeCancelCharge    = "cancel-charge"
	txTypeShipment        = "shipment"
	txTypePayout          = "payout"
)

// transactionBase is shared by all transaction types. Every transaction
// belongs to exactly one payment.
type transactionBase struct {
	baseResource
	payment *Payment

	Date    string `json:"date,omitempty"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"isSuccess,omitempty"`
	Pending bool   `json:"isPending,omitempty"`
	Failed  bool   `json:"isError,omitempty"`
}

func (t *transactionBase) Payment() *Payment { return t.payment }

func (t *transactionBase) setPayment(p *Payment) { t.payment = p }

// linkedResources builds the resources fragment sent with a transaction
// request, cross-referencing the payment's customer, type, basket and
// metadata ids.
func (t *transactionBase) linkedResources() map[string]interface{} {
	resources := map[string]interface{}{}
	p := t.payment
	if p == nil {
		return resources
	}
	if c := p.Customer(); c != nil && c.ID() != "" {
		resources["customerId"] = c.ID()
	}
	if pt := p.PaymentType(); pt != nil && pt.ID() != "" {
		resources["typeId"] = pt.ID()
	}
	if b := p.Basket(); b != nil && b.ID() != "" {
		resources["basketId"] = b.ID()
	}
	if m := p.Metadata(); m != nil && m.ID() != "" {
		resources["metadataId"] = m.ID()
	}
	return resources
}

// exposeTransaction reflects the concrete transaction and attaches the
// linked resource ids.
func (t *transactionBase) exposeTransaction(concrete interface{}) (map[string]interface{}, error) {
	fields, err := exposeFields(concrete)
	if err != nil {
		return nil, err
	}
	if resources := t.linkedResources(); len(resources) > 0 {
		fields["resources"] = resources
	}
	return fields, nil
}

// ingestTransaction maps a transaction response onto the concrete type and
// picks up the payment id cross-reference.
func (t *transactionBase) ingestTransaction(response map[string]interface{}, concrete interface{}) error {
	if v, ok := toFloat(response["amount"]); ok {
		response["amount"] = v
	}
	if err := ingestFields(response, concrete); err != nil {
		return err
	}
	if resources, ok := subMap(response, "resources"); ok {
		if paymentID := stringField(resources, "paymentId"); paymentID != "" {
			if t.payment != nil && t.payment.ID() == "" {
				t.payment.SetID(paymentID)
			}
		}
	}
	return nil
}

// cancellationList is an append-ordered id->cancellation collection.
// Insertion order is preserved for iteration, lookup by id is direct.
type cancellationList struct {
	order []*Cancellation
	byID  map[string]*Cancellation
}

func (l *cancellationList) add(c *Cancellation) {
	if l.byID == nil {
		l.byID = map[string]*Cancellation{}
	}
	l.order = append(l.order, c)
	if c.ID() != "" {
		l.byID[c.ID()] = c
	}
}

func (l *cancellationList) get(id string) *Cancellation {
	return l.byID[id]
}

func (l *cancellationList) all() []*Cancellation {
	return l.order
}
