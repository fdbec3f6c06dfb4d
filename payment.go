package meridian

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meridianpay/meridian-go/internal/ids"
)

// Payment is the aggregate root of one payment lifecycle. It owns the
// customer, the payment type reference, at most one authorization, the
// ordered charge and shipment collections, at most one payout and the
// optional basket and metadata.
//
// Ingesting a payment response reconciles the server's transaction list
// into these collections by upsert: existing child objects are updated in
// place so references held by callers stay valid.
type Payment struct {
	baseResource

	RedirectURL string `json:"redirectUrl,omitempty"`
	OrderID     string `json:"orderId,omitempty"`
	InvoiceID   string `json:"invoiceId,omitempty"`
	TraceID     string `json:"traceId,omitempty"`

	state       State
	amount      Amount
	customer    *Customer
	paymentType PaymentType
	basket      *Basket
	metadata    *Metadata

	authorization *Authorization
	payout        *Payout

	charges     []*Charge
	chargeIndex map[string]*Charge

	shipments     []*Shipment
	shipmentIndex map[string]*Shipment
}

// NewPayment returns an empty payment linked to the given service.
func NewPayment(service *ResourceService) *Payment {
	p := &Payment{}
	p.LinkService(service)
	return p
}

func (p *Payment) ResourcePath() string { return "payments" }

// ExternalID lets a payment without a gateway id be fetched by order id.
func (p *Payment) ExternalID() string { return p.OrderID }

func (p *Payment) State() State   { return p.state }
func (p *Payment) Amount() Amount { return p.amount }

func (p *Payment) Customer() *Customer { return p.customer }

// SetCustomer attaches a customer to the payment. The customer is linked
// to the payment's service so it can be persisted with the transaction.
func (p *Payment) SetCustomer(c *Customer) *Payment {
	if c != nil {
		c.LinkService(p.Service())
	}
	p.customer = c
	return p
}

func (p *Payment) PaymentType() PaymentType { return p.paymentType }

func (p *Payment) SetPaymentType(pt PaymentType) *Payment {
	if pt != nil {
		pt.LinkService(p.Service())
	}
	p.paymentType = pt
	return p
}

func (p *Payment) Basket() *Basket { return p.basket }

func (p *Payment) SetBasket(b *Basket) *Payment {
	if b != nil {
		b.LinkService(p.Service())
	}
	p.basket = b
	return p
}

func (p *Payment) Metadata() *Metadata { return p.metadata }

func (p *Payment) SetMetadata(m *Metadata) *Payment {
	if m != nil {
		m.LinkService(p.Service())
	}
	p.metadata = m
	return p
}

func (p *Payment) Authorization() *Authorization { return p.authorization }

// SetAuthorization links the authorization into the payment's ownership
// chain. A payment holds at most one authorization.
func (p *Payment) SetAuthorization(a *Authorization) *Payment {
	a.SetParent(p)
	a.setPayment(p)
	p.authorization = a
	return p
}

func (p *Payment) Payout() *Payout { return p.payout }

func (p *Payment) SetPayout(po *Payout) *Payment {
	po.SetParent(p)
	po.setPayment(p)
	p.payout = po
	return p
}

// Charges returns the payment's charges in insertion order.
func (p *Payment) Charges() []*Charge { return p.charges }

// Charge returns the charge with the given id, or nil.
func (p *Payment) Charge(id string) *Charge { return p.chargeIndex[id] }

// ChargeByIndex returns the i-th charge in insertion order, or nil.
func (p *Payment) ChargeByIndex(i int) *Charge {
	if i < 0 || i >= len(p.charges) {
		return nil
	}
	return p.charges[i]
}

// AddCharge appends a charge and links it to the payment.
func (p *Payment) AddCharge(c *Charge) *Payment {
	c.SetParent(p)
	c.setPayment(p)
	if p.chargeIndex == nil {
		p.chargeIndex = map[string]*Charge{}
	}
	p.charges = append(p.charges, c)
	if c.ID() != "" {
		p.chargeIndex[c.ID()] = c
	}
	return p
}

// Shipments returns the payment's shipments in insertion order.
func (p *Payment) Shipments() []*Shipment { return p.shipments }

// Shipment returns the shipment with the given id, or nil.
func (p *Payment) Shipment(id string) *Shipment { return p.shipmentIndex[id] }

// AddShipment appends a shipment and links it to the payment.
func (p *Payment) AddShipment(s *Shipment) *Payment {
	s.SetParent(p)
	s.setPayment(p)
	if p.shipmentIndex == nil {
		p.shipmentIndex = map[string]*Shipment{}
	}
	p.shipments = append(p.shipments, s)
	if s.ID() != "" {
		p.shipmentIndex[s.ID()] = s
	}
	return p
}

// Cancellations collects all cancellations across the authorization and
// every charge, in transaction order.
func (p *Payment) Cancellations() []*Cancellation {
	var all []*Cancellation
	if p.authorization != nil {
		all = append(all, p.authorization.Cancellations()...)
	}
	for _, c := range p.charges {
		all = append(all, c.Cancellations()...)
	}
	return all
}

func (p *Payment) Expose() (map[string]interface{}, error) {
	return exposeFields(p)
}

// HandleResponse reconciles a payment response into the local object
// graph. Unknown response fields and unknown transaction types are
// skipped; malformed transaction URLs and cancellations without a local
// parent transaction are contract violations and fail hard.
func (p *Payment) HandleResponse(response map[string]interface{}, method string) error {
	if err := ingestFields(response, p); err != nil {
		return err
	}

	if state, ok := subMap(response, "state"); ok {
		if id, ok := toFloat(state["id"]); ok {
			p.state = State(int(id))
		}
	}

	if amount, ok := subMap(response, "amount"); ok {
		p.amount.ingest(amount)
	}

	if resources, ok := subMap(response, "resources"); ok {
		if err := p.ingestResources(resources); err != nil {
			return err
		}
	}

	if transactions, ok := response["transactions"].([]interface{}); ok {
		if err := p.reconcileTransactions(transactions); err != nil {
			return err
		}
	}
	return nil
}

// ingestResources picks up the cross-reference ids. Sub-resources seen for
// the first time are synthesized with their id only; the lazy-fetch policy
// loads them on access. Existing objects keep their identity.
func (p *Payment) ingestResources(resources map[string]interface{}) error {
	if paymentID := stringField(resources, "paymentId"); paymentID != "" {
		p.SetID(paymentID)
	}

	if customerID := stringField(resources, "customerId"); customerID != "" {
		if p.customer == nil {
			customer := &Customer{}
			customer.SetID(customerID)
			p.SetCustomer(customer)
		}
	}

	if typeID := stringField(resources, "typeId"); typeID != "" {
		if p.paymentType == nil {
			paymentType, err := newPaymentTypeByID(typeID)
			if err != nil {
				return err
			}
			p.SetPaymentType(paymentType)
		}
	}

	if basketID := stringField(resources, "basketId"); basketID != "" {
		if p.basket == nil {
			basket := &Basket{}
			basket.SetID(basketID)
			p.SetBasket(basket)
		}
	}

	if metadataID := stringField(resources, "metadataId"); metadataID != "" {
		if p.metadata == nil {
			metadata := &Metadata{}
			metadata.SetID(metadataID)
			p.SetMetadata(metadata)
		}
	}
	return nil
}

// reconcileTransactions upserts the server's transaction list into the
// local collections. The gateway returns the entire current list on every
// fetch, so matching by id and mutating in place is what keeps caller-held
// references valid.
func (p *Payment) reconcileTransactions(transactions []interface{}) error {
	for _, raw := range transactions {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		url := stringField(entry, "url")
		amount, _ := toFloat(entry["amount"])

		switch stringField(entry, "type") {
		case txTypeAuthorize:
			id, err := ids.TransactionID(url, ids.Authorize)
			if err != nil {
				return &TransactionIDError{URL: url}
			}
			a := p.authorization
			if a == nil {
				a = &Authorization{}
				a.SetID(id)
				p.SetAuthorization(a)
			}
			a.Amount = amount

		case txTypeCharge:
			id, err := ids.TransactionID(url, ids.Charge)
			if err != nil {
				return &TransactionIDError{URL: url}
			}
			c := p.chargeIndex[id]
			if c == nil {
				c = &Charge{}
				c.SetID(id)
				p.AddCharge(c)
			}
			c.Amount = amount

		case txTypeCancelAuthorize:
			id, err := ids.TransactionID(url, ids.Cancel)
			if err != nil {
				return &TransactionIDError{URL: url}
			}
			a := p.authorization
			if a == nil {
				return &ParentTransactionNotFoundError{TransactionID: id}
			}
			cn := a.Cancellation(id)
			if cn == nil {
				cn = &Cancellation{}
				cn.SetID(id)
				a.addCancellation(cn)
			}
			cn.Amount = amount

		case txTypeCancelCharge:
			id, err := ids.TransactionID(url, ids.Cancel)
			if err != nil {
				return &TransactionIDError{URL: url}
			}
			chargeID := ids.ResourceIDFromURL(url, ids.Charge)
			c := p.chargeIndex[chargeID]
			if c == nil {
				return &ParentTransactionNotFoundError{TransactionID: chargeID}
			}
			cn := c.Cancellation(id)
			if cn == nil {
				cn = &Cancellation{}
				cn.SetID(id)
				c.addCancellation(cn)
			}
			cn.Amount = amount

		case txTypeShipment:
			id, err := ids.TransactionID(url, ids.Shipment)
			if err != nil {
				return &TransactionIDError{URL: url}
			}
			s := p.shipmentIndex[id]
			if s == nil {
				s = &Shipment{}
				s.SetID(id)
				p.AddShipment(s)
			}
			s.Amount = amount

		case txTypePayout:
			id, err := ids.TransactionID(url, ids.Payout)
			if err != nil {
				return &TransactionIDError{URL: url}
			}
			po := p.payout
			if po == nil {
				po = &Payout{}
				po.SetID(id)
				p.SetPayout(po)
			}
			po.Amount = amount

		default:
			// Unknown transaction types are skipped for forward
			// compatibility.
		}
	}
	return nil
}

// ChargeAmount charges against this payment (capturing the authorization
// when one exists). A zero amount charges the full remaining amount.
func (p *Payment) ChargeAmount(ctx context.Context, amount float64) (*Charge, error) {
	service, err := p.requireService()
	if err != nil {
		return nil, err
	}

	charge := &Charge{}
	if amount > 0 {
		charge.Amount = amount
	}
	charge.SetParent(p)
	charge.setPayment(p)

	if err := service.CreateResource(ctx, charge); err != nil {
		return nil, err
	}
	p.AddCharge(charge)
	return charge, nil
}

// FullCancel cancels the whole payment: while the payment is not completed
// the authorization is reversed, otherwise every charge is refunded.
func (p *Payment) FullCancel(ctx context.Context) error {
	if p.authorization != nil && !p.state.IsCompleted() {
		_, err := p.authorization.Cancel(ctx, 0)
		return err
	}
	return p.cancelAllCharges(ctx)
}

func (p *Payment) cancelAllCharges(ctx context.Context) error {
	for _, charge := range p.charges {
		if _, err := charge.Cancel(ctx, 0, ReasonCancel); err != nil {
			return err
		}
	}
	return nil
}

// CancelAmount cancels the given amount, splitting it across the
// payment's charges in insertion order. Decimal arithmetic keeps float
// residue from ever producing a negative portion.
func (p *Payment) CancelAmount(ctx context.Context, amount float64, reason string) ([]*Cancellation, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	remaining := decimal.NewFromFloat(amount)
	var cancellations []*Cancellation

	for _, charge := range p.charges {
		if !remaining.IsPositive() {
			break
		}
		portion := decimal.Min(remaining, decimal.NewFromFloat(charge.Amount))
		if !portion.IsPositive() {
			continue
		}

		value, _ := portion.Float64()
		cancellation, err := charge.Cancel(ctx, value, reason)
		if err != nil {
			return cancellations, fmt.Errorf("failed to cancel charge %s: %w", charge.ID(), err)
		}
		cancellations = append(cancellations, cancellation)
		remaining = remaining.Sub(portion)
	}
	return cancellations, nil
}
