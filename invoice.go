package meridian

import "github.com/meridianpay/meridian-go/internal/ids"

// Invoice is payment on invoice without insurance.
type Invoice struct {
	typeBase
}

func (i *Invoice) ResourcePath() string     { return "types/invoice" }
func (i *Invoice) TypeCode() string         { return ids.Invoice }
func (i *Invoice) Capabilities() Capability { return CanCharge }

func (i *Invoice) Expose() (map[string]interface{}, error) { return exposeFields(i) }

func (i *Invoice) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, i)
}

// InvoiceGuaranteed is the insured invoice variant. Shipment notification
// starts its payout period.
type InvoiceGuaranteed struct {
	typeBase
}

func (i *InvoiceGuaranteed) ResourcePath() string     { return "types/invoice-guaranteed" }
func (i *InvoiceGuaranteed) TypeCode() string         { return ids.InvoiceGuaranteed }
func (i *InvoiceGuaranteed) Capabilities() Capability { return CanCharge }

func (i *InvoiceGuaranteed) Expose() (map[string]interface{}, error) { return exposeFields(i) }

func (i *InvoiceGuaranteed) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, i)
}

// InvoiceFactoring is invoice with factoring. The gateway requires a
// customer and a basket on its transactions; that rule is enforced
// server-side and surfaces as an API error.
type InvoiceFactoring struct {
	typeBase
}

func (i *InvoiceFactoring) ResourcePath() string     { return "types/invoice-factoring" }
func (i *InvoiceFactoring) TypeCode() string         { return ids.InvoiceFactoring }
func (i *InvoiceFactoring) Capabilities() Capability { return CanCharge }

func (i *InvoiceFactoring) Expose() (map[string]interface{}, error) { return exposeFields(i) }

func (i *InvoiceFactoring) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, i)
}

// Prepayment is payment in advance; the charge hands out the transfer
// details and completes once the money arrives.
type Prepayment struct {
	typeBase
}

func (p *Prepayment) ResourcePath() string     { return "types/prepayment" }
func (p *Prepayment) TypeCode() string         { return ids.Prepayment }
func (p *Prepayment) Capabilities() Capability { return CanCharge }

func (p *Prepayment) Expose() (map[string]interface{}, error) { return exposeFields(p) }

func (p *Prepayment) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, p)
}
