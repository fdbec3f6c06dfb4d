package meridian

import "github.com/meridianpay/meridian-go/internal/ids"

// SepaDirectDebit debits a bank account via SEPA mandate.
type SepaDirectDebit struct {
	typeBase

	IBAN   string `json:"iban,omitempty"`
	BIC    string `json:"bic,omitempty"`
	Holder string `json:"holder,omitempty"`
}

func NewSepaDirectDebit(iban string) *SepaDirectDebit {
	return &SepaDirectDebit{IBAN: iban}
}

func (s *SepaDirectDebit) ResourcePath() string { return "types/sepa-direct-debit" }
func (s *SepaDirectDebit) TypeCode() string     { return ids.SepaDirectDebit }

func (s *SepaDirectDebit) Capabilities() Capability {
	return CanCharge | CanPayout | CanRecur
}

func (s *SepaDirectDebit) Expose() (map[string]interface{}, error) {
	return exposeFields(s)
}

func (s *SepaDirectDebit) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, s)
}

// SepaDirectDebitGuaranteed is the insured SEPA variant; it requires a
// customer with a billing address, which the gateway enforces.
type SepaDirectDebitGuaranteed struct {
	typeBase

	IBAN   string `json:"iban,omitempty"`
	BIC    string `json:"bic,omitempty"`
	Holder string `json:"holder,omitempty"`
}

func NewSepaDirectDebitGuaranteed(iban string) *SepaDirectDebitGuaranteed {
	return &SepaDirectDebitGuaranteed{IBAN: iban}
}

func (s *SepaDirectDebitGuaranteed) ResourcePath() string {
	return "types/sepa-direct-debit-guaranteed"
}

func (s *SepaDirectDebitGuaranteed) TypeCode() string { return ids.SepaDirectDebitGuaranteed }

func (s *SepaDirectDebitGuaranteed) Capabilities() Capability { return CanCharge }

func (s *SepaDirectDebitGuaranteed) Expose() (map[string]interface{}, error) {
	return exposeFields(s)
}

func (s *SepaDirectDebitGuaranteed) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, s)
}
