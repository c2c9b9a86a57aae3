package mpesa

import (
	"encoding/json"
	"testing"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackEnvelopeToDomain(t *testing.T) {
	t.Run("success with shuffled metadata", func(t *testing.T) {
		body := `{"Body":{"stkCallback":{
			"MerchantRequestID":"29115-34620561-1",
			"CheckoutRequestID":"ws_CO_191220191020363925",
			"ResultCode":0,
			"ResultDesc":"The service request is processed successfully.",
			"CallbackMetadata":{"Item":[
				{"Name":"PhoneNumber","Value":254708374149},
				{"Name":"Balance"},
				{"Name":"MpesaReceiptNumber","Value":"NLJ7RT61SV"},
				{"Name":"TransactionDate","Value":20191219102115},
				{"Name":"Amount","Value":1.00}
			]}
		}}}`
		var envelope CallbackEnvelope
		require.NoError(t, json.Unmarshal([]byte(body), &envelope))

		cb, err := envelope.ToDomain()
		require.NoError(t, err)
		assert.True(t, cb.IsSuccess())
		assert.Equal(t, "ws_CO_191220191020363925", cb.CheckoutRequestID)
		assert.Equal(t, "NLJ7RT61SV", cb.ReceiptNumber)
		assert.Equal(t, "254708374149", cb.Phone)
		assert.True(t, decimal.NewFromInt(1).Equal(cb.Amount))
	})

	t.Run("cancelled by user", func(t *testing.T) {
		body := `{"Body":{"stkCallback":{
			"MerchantRequestID":"8555-67195-1",
			"CheckoutRequestID":"ws_CO_27072017151044001",
			"ResultCode":1032,
			"ResultDesc":"Request cancelled by user"
		}}}`
		var envelope CallbackEnvelope
		require.NoError(t, json.Unmarshal([]byte(body), &envelope))

		cb, err := envelope.ToDomain()
		require.NoError(t, err)
		assert.False(t, cb.IsSuccess())
		assert.Equal(t, 1032, cb.ResultCode)
		assert.True(t, cb.Amount.IsZero())
	})

	t.Run("missing checkout id", func(t *testing.T) {
		var envelope CallbackEnvelope
		require.NoError(t, json.Unmarshal([]byte(`{"Body":{"stkCallback":{"ResultCode":0}}}`), &envelope))

		_, err := envelope.ToDomain()
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}
