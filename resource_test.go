package meridian

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceURIWalksOwnershipChain(t *testing.T) {
	payment := &Payment{}
	payment.SetID("s-pay-1")

	charge := &Charge{}
	charge.SetID("s-chg-2")
	payment.AddCharge(charge)

	cancellation := &Cancellation{}
	cancellation.SetID("s-cnl-3")
	cancellation.SetParent(charge)

	assert.Equal(t, "/payments/s-pay-1", ResourceURI(payment, true))
	assert.Equal(t, "/payments/s-pay-1/charges", ResourceURI(charge, false))
	assert.Equal(t, "/payments/s-pay-1/charges/s-chg-2", ResourceURI(charge, true))
	assert.Equal(t, "/payments/s-pay-1/charges/s-chg-2/cancels/s-cnl-3", ResourceURI(cancellation, true))
}

func TestResourceURIFallsBackToExternalID(t *testing.T) {
	payment := &Payment{}
	payment.OrderID = "ord-42"
	assert.Equal(t, "/payments/ord-42", ResourceURI(payment, true))

	payment.SetID("s-pay-1")
	assert.Equal(t, "/payments/s-pay-1", ResourceURI(payment, true))

	customer := &Customer{CustomerID: "ext-1"}
	assert.Equal(t, "/customers/ext-1", ResourceURI(customer, true))
}

func TestServiceIsInheritedAlongParentChain(t *testing.T) {
	service := &ResourceService{}

	payment := NewPayment(service)
	charge := &Charge{}
	payment.AddCharge(charge)

	cancellation := &Cancellation{}
	cancellation.SetParent(charge)

	assert.Same(t, service, cancellation.Service())

	// A directly linked service wins over the inherited one.
	other := &ResourceService{}
	cancellation.LinkService(other)
	assert.Same(t, other, cancellation.Service())
}

func TestExposeIngestRoundTrip(t *testing.T) {
	customer := NewCustomer("Max", "Mustermann")
	customer.Email = "max@example.com"
	customer.BillingAddress = &Address{City: "Heidelberg", Country: "DE"}

	exposed, err := customer.Expose()
	require.NoError(t, err)

	restored := &Customer{}
	require.NoError(t, restored.HandleResponse(exposed, "GET"))

	assert.Equal(t, customer.Firstname, restored.Firstname)
	assert.Equal(t, customer.Lastname, restored.Lastname)
	assert.Equal(t, customer.Email, restored.Email)
	require.NotNil(t, restored.BillingAddress)
	assert.Equal(t, "Heidelberg", restored.BillingAddress.City)
}

func TestIngestIgnoresUnknownFields(t *testing.T) {
	customer := &Customer{}
	response := map[string]interface{}{
		"firstname":      "Max",
		"somethingNew":   "ignored",
		"nestedUnknowns": map[string]interface{}{"a": 1},
	}
	require.NoError(t, customer.HandleResponse(response, "GET"))
	assert.Equal(t, "Max", customer.Firstname)
}

func TestToFloatAcceptsGatewayFormats(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{name: "number", value: 100.5, want: 100.5, ok: true},
		{name: "formatted string", value: "100.0000", want: 100, ok: true},
		{name: "integer string", value: "7", want: 7, ok: true},
		{name: "json number", value: json.Number("20.25"), want: 20.25, ok: true},
		{name: "garbage", value: "abc", ok: false},
		{name: "nil", value: nil, ok: false},
		{name: "bool", value: true, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
