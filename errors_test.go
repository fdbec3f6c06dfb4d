package meridian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIErrorReadsEnvelope(t *testing.T) {
	err := newAPIError(400, map[string]interface{}{
		"id": "s-err-1",
		"errors": []interface{}{
			map[string]interface{}{
				"code":            "API.410.200.010",
				"merchantMessage": "customer id already exists",
				"customerMessage": "Es ist ein Fehler aufgetreten.",
			},
		},
	})

	assert.Equal(t, "s-err-1", err.ErrorID)
	assert.Equal(t, CodeCustomerIDAlreadyExists, err.Code)
	assert.Equal(t, "customer id already exists", err.MerchantMessage)
	assert.Equal(t, "Es ist ein Fehler aufgetreten.", err.CustomerMessage)
	assert.Equal(t, 400, err.StatusCode)
	assert.Contains(t, err.Error(), "API.410.200.010")
}

func TestNewAPIErrorFillsSentinels(t *testing.T) {
	err := newAPIError(500, map[string]interface{}{})

	assert.Equal(t, "No error id provided", err.ErrorID)
	assert.Equal(t, "No error code provided", err.Code)
	assert.Equal(t, "No error message provided", err.MerchantMessage)
	assert.Equal(t, "No customer message provided", err.CustomerMessage)
	assert.Equal(t, 500, err.StatusCode)
}

func TestNewAPIErrorPartialEnvelope(t *testing.T) {
	err := newAPIError(400, map[string]interface{}{
		"errors": []interface{}{
			map[string]interface{}{"merchantMessage": "broken"},
		},
	})

	assert.Equal(t, "No error id provided", err.ErrorID)
	assert.Equal(t, "No error code provided", err.Code)
	assert.Equal(t, "broken", err.MerchantMessage)
	assert.Equal(t, "No customer message provided", err.CustomerMessage)
}
