package meridian

import (
	"regexp"

	"github.com/meridianpay/meridian-go/internal/ids"
)

// Card is a credit or debit card. The pan and cvc are only ever sent, the
// gateway masks them in responses.
type Card struct {
	typeBase

	Number     string `json:"number,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVC        string `json:"cvc,omitempty"`
	Holder     string `json:"cardHolder,omitempty"`
	Card3DS    *bool  `json:"card3ds,omitempty"`
	// Brand is detected by the gateway.
	Brand string `json:"brand,omitempty"`

	Details *CardDetails `json:"cardDetails,omitempty"`
}

// CardDetails is gateway-derived card information.
type CardDetails struct {
	CardType          string `json:"cardType,omitempty"`
	Account           string `json:"account,omitempty"`
	CountryIsoA2      string `json:"countryIsoA2,omitempty"`
	CountryName       string `json:"countryName,omitempty"`
	IssuerName        string `json:"issuerName,omitempty"`
	IssuerURL         string `json:"issuerUrl,omitempty"`
	IssuerPhoneNumber string `json:"issuerPhoneNumber,omitempty"`
}

var expiryDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

// NewCard returns a card from pan and expiry date. The expiry date is
// validated locally (MM/YYYY) so a malformed value never reaches the
// transport.
func NewCard(number, expiryDate string) (*Card, error) {
	if !expiryDatePattern.MatchString(expiryDate) {
		return nil, &ValidationError{Field: "expiryDate", Reason: "expected MM/YYYY"}
	}
	return &Card{Number: number, ExpiryDate: expiryDate}, nil
}

func (c *Card) ResourcePath() string { return "types/card" }
func (c *Card) TypeCode() string     { return ids.Card }

func (c *Card) Capabilities() Capability {
	return CanAuthorize | CanCharge | CanPayout | CanRecur
}

func (c *Card) Expose() (map[string]interface{}, error) {
	return exposeFields(c)
}

func (c *Card) HandleResponse(response map[string]interface{}, method string) error {
	return ingestFields(response, c)
}
