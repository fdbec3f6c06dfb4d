package meridian

import (
	"github.com/meridianpay/meridian-go/internal/ids"
)

// Capability is the set of transactions a payment type supports. Gating
// happens centrally before a request is dispatched; the gateway remains
// authoritative for combinations it enforces server-side.
type Capability uint8

const (
	CanCharge Capability = 1 << iota
	CanAuthorize
	CanPayout
	CanRecur
)

// Has reports whether every flag in want is present.
func (c Capability) Has(want Capability) bool { return c&want == want }

// PaymentType is a reusable, tokenizable description of a payment method
// instance.
type PaymentType interface {
	Resource

	// Capabilities returns the transaction capabilities of the type.
	Capabilities() Capability

	// TypeCode returns the three-letter id code of the type.
	TypeCode() string
}

// typeBase is shared by all payment types.
type typeBase struct {
	baseResource

	// GeoLocation is assigned by the gateway from the client ip.
	GeoLocation *GeoLocation `json:"geoLocation,omitempty"`
}

// paymentTypeFactories maps id type codes to constructors. It is the
// closed dispatch table behind FetchPaymentType and webhook resolution.
var paymentTypeFactories = map[string]func() PaymentType{
	ids.Card:                      func() PaymentType { return &Card{} },
	ids.SepaDirectDebit:           func() PaymentType { return &SepaDirectDebit{} },
	ids.SepaDirectDebitGuaranteed: func() PaymentType { return &SepaDirectDebitGuaranteed{} },
	ids.Paypal:                    func() PaymentType { return &Paypal{} },
	ids.Sofort:                    func() PaymentType { return &Sofort{} },
	ids.Giropay:                   func() PaymentType { return &Giropay{} },
	ids.Ideal:                     func() PaymentType { return &Ideal{} },
	ids.Invoice:                   func() PaymentType { return &Invoice{} },
	ids.InvoiceGuaranteed:         func() PaymentType { return &InvoiceGuaranteed{} },
	ids.InvoiceFactoring:          func() PaymentType { return &InvoiceFactoring{} },
	ids.Prepayment:                func() PaymentType { return &Prepayment{} },
	ids.Przelewy24:                func() PaymentType { return &Przelewy24{} },
	ids.EPS:                       func() PaymentType { return &EPS{} },
	ids.Alipay:                    func() PaymentType { return &Alipay{} },
	ids.Wechatpay:                 func() PaymentType { return &Wechatpay{} },
	ids.PIS:                       func() PaymentType { return &PIS{} },
}

// newPaymentTypeByID constructs the concrete payment type for a type id
// and primes it with the id. Unknown codes yield *InvalidTypeIDError.
func newPaymentTypeByID(typeID string) (PaymentType, error) {
	code, err := ids.TypeCode(typeID)
	if err != nil {
		return nil, &InvalidTypeIDError{TypeID: typeID}
	}
	factory, ok := paymentTypeFactories[code]
	if !ok {
		return nil, &InvalidTypeIDError{TypeID: typeID}
	}
	paymentType := factory()
	paymentType.SetID(typeID)
	return paymentType, nil
}
