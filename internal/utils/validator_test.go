// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priceForm struct {
	Price string `validate:"required,price"`
}

type paymentForm struct {
	Method string `validate:"required,payment_method"`
}

func TestPriceValidation(t *testing.T) {
	valid := []string{"9.99", "0", "0.00", "1500", " 10.50 "}
	for _, p := range valid {
		assert.NoError(t, ValidateStruct(&priceForm{Price: p}), "price %q", p)
	}

	invalid := []string{"", "abc", "-1.00", "R$ 10"}
	for _, p := range invalid {
		assert.Error(t, ValidateStruct(&priceForm{Price: p}), "price %q", p)
	}
}

func TestPaymentMethodValidation(t *testing.T) {
	for _, m := range []string{"pix", "card", "boleto"} {
		assert.NoError(t, ValidateStruct(&paymentForm{Method: m}))
	}
	for _, m := range []string{"", "cheque", "PIX"} {
		assert.Error(t, ValidateStruct(&paymentForm{Method: m}))
	}
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&paymentForm{Method: "cheque"})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "method", errs[0].Field)
	assert.Equal(t, "payment_method", errs[0].Tag)
	assert.Contains(t, errs[0].Message, "pix")
}
