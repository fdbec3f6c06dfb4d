package meridian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardValidatesExpiryDate(t *testing.T) {
	tests := []struct {
		name    string
		expiry  string
		wantErr bool
	}{
		{name: "valid", expiry: "12/2030"},
		{name: "valid january", expiry: "01/2026"},
		{name: "month without zero", expiry: "1/2030", wantErr: true},
		{name: "month thirteen", expiry: "13/2030", wantErr: true},
		{name: "two digit year", expiry: "12/30", wantErr: true},
		{name: "empty", expiry: "", wantErr: true},
		{name: "garbage", expiry: "banana", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := NewCard("4711100000000000", tt.expiry)
			if tt.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "expiryDate", validationErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expiry, card.ExpiryDate)
		})
	}
}

func TestPaymentTypeCapabilities(t *testing.T) {
	assert.True(t, (&Card{}).Capabilities().Has(CanAuthorize|CanCharge|CanPayout|CanRecur))

	assert.True(t, (&SepaDirectDebit{}).Capabilities().Has(CanCharge|CanPayout|CanRecur))
	assert.False(t, (&SepaDirectDebit{}).Capabilities().Has(CanAuthorize))

	assert.True(t, (&Paypal{}).Capabilities().Has(CanAuthorize|CanCharge|CanRecur))
	assert.False(t, (&Paypal{}).Capabilities().Has(CanPayout))

	chargeOnly := []PaymentType{
		&SepaDirectDebitGuaranteed{}, &Invoice{}, &InvoiceGuaranteed{},
		&InvoiceFactoring{}, &Prepayment{}, &Sofort{}, &Giropay{},
		&Ideal{}, &EPS{}, &Przelewy24{}, &Alipay{}, &Wechatpay{}, &PIS{},
	}
	for _, pt := range chargeOnly {
		assert.Equal(t, CanCharge, pt.Capabilities(), "type %s", pt.TypeCode())
	}
}

func TestNewPaymentTypeByID(t *testing.T) {
	paymentType, err := newPaymentTypeByID("s-crd-abc")
	require.NoError(t, err)
	assert.IsType(t, &Card{}, paymentType)
	assert.Equal(t, "s-crd-abc", paymentType.ID())

	paymentType, err = newPaymentTypeByID("p-idl-1")
	require.NoError(t, err)
	assert.IsType(t, &Ideal{}, paymentType)

	_, err = newPaymentTypeByID("s-zzz-1")
	var typeErr *InvalidTypeIDError
	require.ErrorAs(t, err, &typeErr)

	_, err = newPaymentTypeByID("not-an-id")
	require.ErrorAs(t, err, &typeErr)

	// Payment resource codes are not payment types.
	_, err = newPaymentTypeByID("s-pay-1")
	require.ErrorAs(t, err, &typeErr)
}
