package meridian

import (
	"errors"
	"fmt"
)

// Sentinel texts used when the gateway omits parts of the error envelope.
const (
	noErrorID       = "No error id provided"
	noErrorCode     = "No error code provided"
	noErrorMessage  = "No error message provided"
	noCustomerError = "No customer message provided"
)

// API response codes the SDK reacts to. The full catalogue lives in the
// gateway documentation; only codes with client-side behavior are listed.
const (
	CodeCustomerIDAlreadyExists  = "API.410.200.010"
	CodeChargeExceedsAuthorized  = "API.330.100.007"
	CodeAuthorizeAlreadyCanceled = "API.340.100.014"
)

// APIError is a business rejection returned by the gateway, carrying both
// the merchant-facing and the localized customer-facing message.
type APIError struct {
	ErrorID         string
	Code            string
	MerchantMessage string
	CustomerMessage string
	StatusCode      int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.MerchantMessage)
}

// newAPIError builds an APIError from a decoded error envelope.
func newAPIError(statusCode int, envelope map[string]interface{}) *APIError {
	apiErr := &APIError{
		ErrorID:         noErrorID,
		Code:            noErrorCode,
		MerchantMessage: noErrorMessage,
		CustomerMessage: noCustomerError,
		StatusCode:      statusCode,
	}

	if id, ok := envelope["id"].(string); ok && id != "" {
		apiErr.ErrorID = id
	}

	entries, ok := envelope["errors"].([]interface{})
	if !ok || len(entries) == 0 {
		return apiErr
	}
	entry, ok := entries[0].(map[string]interface{})
	if !ok {
		return apiErr
	}

	if code, ok := entry["code"].(string); ok && code != "" {
		apiErr.Code = code
	}
	if msg, ok := entry["merchantMessage"].(string); ok && msg != "" {
		apiErr.MerchantMessage = msg
	}
	if msg, ok := entry["customerMessage"].(string); ok && msg != "" {
		apiErr.CustomerMessage = msg
	}
	return apiErr
}

// ErrMissingParentReference is returned when a resource operation needs a
// service handle but the resource was never linked into a client's graph.
var ErrMissingParentReference = errors.New("resource has no parent reference to a client")

// TransactionIDError is returned when a transaction URL in a payment
// response does not carry an id of the expected shape.
type TransactionIDError struct {
	URL string
}

func (e *TransactionIDError) Error() string {
	return fmt.Sprintf("transaction id not found in url %q", e.URL)
}

// ParentTransactionNotFoundError is returned when a cancellation references
// an authorization or charge that does not exist locally.
type ParentTransactionNotFoundError struct {
	TransactionID string
}

func (e *ParentTransactionNotFoundError) Error() string {
	return fmt.Sprintf("parent transaction %q not found on payment", e.TransactionID)
}

// UnsupportedOperationError is returned before any transport call when a
// payment type does not support the requested transaction.
type UnsupportedOperationError struct {
	Operation   string
	PaymentType string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("payment type %s does not support %s", e.PaymentType, e.Operation)
}

// InvalidTypeIDError is returned when a payment type id carries an unknown
// type code.
type InvalidTypeIDError struct {
	TypeID string
}

func (e *InvalidTypeIDError) Error() string {
	return fmt.Sprintf("invalid payment type id %q", e.TypeID)
}

// ValidationError is a local input validation failure caught before any
// transport call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
