// Package ids implements the gateway resource id convention.
//
// Every server-assigned id has the shape <env>-<code>-<suffix>, e.g.
// s-crd-l4bbx7ory1ec (a sandbox card) or p-aut-7 (a production
// authorization). The three-letter code identifies the resource type and
// drives both webhook URL resolution and transaction id extraction.
package ids

import (
	"fmt"
	"regexp"
)

// Resource type codes.
const (
	Payment   = "pay"
	Authorize = "aut"
	Charge    = "chg"
	Cancel    = "cnl"
	Shipment  = "shp"
	Payout    = "out"
	Metadata  = "mtd"
	Basket    = "bsk"
	Customer  = "cst"
)

// Payment type codes.
const (
	Card                      = "crd"
	SepaDirectDebit           = "sdd"
	SepaDirectDebitGuaranteed = "ddg"
	Paypal                    = "ppl"
	Sofort                    = "sft"
	Giropay                   = "gro"
	Ideal                     = "idl"
	Invoice                   = "ivc"
	InvoiceGuaranteed         = "ivg"
	InvoiceFactoring          = "ivf"
	Prepayment                = "ppy"
	Przelewy24                = "p24"
	EPS                       = "eps"
	Alipay                    = "ali"
	Wechatpay                 = "wcp"
	PIS                       = "pis"
)

var paymentTypeCodes = map[string]bool{
	Card: true, SepaDirectDebit: true, SepaDirectDebitGuaranteed: true,
	Paypal: true, Sofort: true, Giropay: true, Ideal: true, Invoice: true,
	InvoiceGuaranteed: true, InvoiceFactoring: true, Prepayment: true,
	Przelewy24: true, EPS: true, Alipay: true, Wechatpay: true, PIS: true,
}

var (
	idPattern     = regexp.MustCompile(`^([sp])-([a-z0-9]{3})-([A-Za-z0-9._]+)$`)
	lastIDPattern = regexp.MustCompile(`([sp]-[a-z0-9]{3}-[A-Za-z0-9._]+)/?$`)
)

// IsPaymentTypeCode reports whether code names a payment method resource.
func IsPaymentTypeCode(code string) bool {
	return paymentTypeCodes[code]
}

// TypeCode returns the three-letter type code embedded in a resource id.
func TypeCode(id string) (string, error) {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return "", fmt.Errorf("malformed resource id %q", id)
	}
	return m[2], nil
}

// LastResourceID extracts the resource id from the trailing path segment
// of the given URL.
func LastResourceID(url string) (string, error) {
	m := lastIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("no resource id found in url %q", url)
	}
	return m[1], nil
}

// ResourceIDFromURL extracts the id of the given type code from anywhere
// in the URL path. Returns an empty string when the URL carries no id of
// that type.
func ResourceIDFromURL(url, code string) string {
	re := regexp.MustCompile(`/([sp]-` + regexp.QuoteMeta(code) + `-[A-Za-z0-9._]+)`)
	m := re.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// TransactionID extracts the id of the given type code from a transaction
// URL. The URL shape is a hard contract with the gateway, so failure to
// match is an error.
func TransactionID(url, code string) (string, error) {
	id := ResourceIDFromURL(url, code)
	if id == "" {
		return "", fmt.Errorf("no %s id found in transaction url %q", code, url)
	}
	return id, nil
}
