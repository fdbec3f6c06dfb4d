package meridian

import "github.com/meridianpay/meridian-go/internal/ids"

// The redirect payment methods share a shape: the transaction response
// carries a redirect URL the customer completes the payment on.

// Paypal redirects to the PayPal checkout.
type Paypal struct {
	typeBase

	Email string `json:"email,omitempty"`
}

func (p *Paypal) ResourcePath() string     { return "types/paypal" }
func (p *Paypal) TypeCode() string         { return ids.Paypal }
func (p *Paypal) Capabilities() Capability { return CanAuthorize | CanCharge | CanRecur }

func (p *Paypal) Expose() (map[string]interface{}, error) { return exposeFields(p) }

func (p *Paypal) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, p)
}

// Sofort is an online bank transfer.
type Sofort struct {
	typeBase
}

func (s *Sofort) ResourcePath() string     { return "types/sofort" }
func (s *Sofort) TypeCode() string         { return ids.Sofort }
func (s *Sofort) Capabilities() Capability { return CanCharge }

func (s *Sofort) Expose() (map[string]interface{}, error) { return exposeFields(s) }

func (s *Sofort) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, s)
}

// Giropay is the German online banking transfer.
type Giropay struct {
	typeBase
}

func (g *Giropay) ResourcePath() string     { return "types/giropay" }
func (g *Giropay) TypeCode() string         { return ids.Giropay }
func (g *Giropay) Capabilities() Capability { return CanCharge }

func (g *Giropay) Expose() (map[string]interface{}, error) { return exposeFields(g) }

func (g *Giropay) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, g)
}

// Ideal is the Dutch online banking transfer.
type Ideal struct {
	typeBase

	BIC string `json:"bic,omitempty"`
}

func (i *Ideal) ResourcePath() string     { return "types/ideal" }
func (i *Ideal) TypeCode() string         { return ids.Ideal }
func (i *Ideal) Capabilities() Capability { return CanCharge }

func (i *Ideal) Expose() (map[string]interface{}, error) { return exposeFields(i) }

func (i *Ideal) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, i)
}

// EPS is the Austrian online banking transfer.
type EPS struct {
	typeBase

	BIC string `json:"bic,omitempty"`
}

func (e *EPS) ResourcePath() string     { return "types/eps" }
func (e *EPS) TypeCode() string         { return ids.EPS }
func (e *EPS) Capabilities() Capability { return CanCharge }

func (e *EPS) Expose() (map[string]interface{}, error) { return exposeFields(e) }

func (e *EPS) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, e)
}

// Przelewy24 is the Polish online payment method.
type Przelewy24 struct {
	typeBase
}

func (p *Przelewy24) ResourcePath() string     { return "types/przelewy24" }
func (p *Przelewy24) TypeCode() string         { return ids.Przelewy24 }
func (p *Przelewy24) Capabilities() Capability { return CanCharge }

func (p *Przelewy24) Expose() (map[string]interface{}, error) { return exposeFields(p) }

func (p *Przelewy24) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, p)
}

// Alipay redirects to the Alipay wallet.
type Alipay struct {
	typeBase
}

func (a *Alipay) ResourcePath() string     { return "types/alipay" }
func (a *Alipay) TypeCode() string         { return ids.Alipay }
func (a *Alipay) Capabilities() Capability { return CanCharge }

func (a *Alipay) Expose() (map[string]interface{}, error) { return exposeFields(a) }

func (a *Alipay) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, a)
}

// Wechatpay redirects to the WeChat Pay wallet.
type Wechatpay struct {
	typeBase
}

func (w *Wechatpay) ResourcePath() string     { return "types/wechatpay" }
func (w *Wechatpay) TypeCode() string         { return ids.Wechatpay }
func (w *Wechatpay) Capabilities() Capability { return CanCharge }

func (w *Wechatpay) Expose() (map[string]interface{}, error) { return exposeFields(w) }

func (w *Wechatpay) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, w)
}

// PIS is a payment initiation service transfer.
type PIS struct {
	typeBase
}

func (p *PIS) ResourcePath() string     { return "types/pis" }
func (p *PIS) TypeCode() string         { return ids.PIS }
func (p *PIS) Capabilities() Capability { return CanCharge }

func (p *PIS) Expose() (map[string]interface{}, error) { return exposeFields(p) }

func (p *PIS) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, p)
}
