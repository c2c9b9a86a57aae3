package mpesa

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// CallbackEnvelope тело колбэка M-Pesa Express.
type CallbackEnvelope struct {
	Body struct {
		StkCallback StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type StkCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        *int              `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

type CallbackMetadata struct {
	Item []CallbackItem `json:"Item"`
}

// CallbackItem Value бывает строкой, числом или отсутствует.
type CallbackItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value,omitempty"`
}

func (i CallbackItem) stringValue() string {
	raw := strings.TrimSpace(string(i.Value))
	if raw == "" || raw == "null" {
		return ""
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		return unquoted
	}
	return raw
}

// CallbackReply ответ шлюзу на колбэк.
type CallbackReply struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// ToDomain извлекает из колбэка результат платежа. Метаданные ищутся по имени, порядок элементов не важен.
func (e CallbackEnvelope) ToDomain() (domain.PaymentCallback, error) {
	cb := e.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return domain.PaymentCallback{}, domain.NewValidationError("CheckoutRequestID", "is required")
	}
	if cb.ResultCode == nil {
		return domain.PaymentCallback{}, domain.NewValidationError("ResultCode", "is required")
	}

	result := domain.PaymentCallback{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        *cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
	}
	if cb.CallbackMetadata == nil {
		return result, nil
	}

	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "Amount":
			if v := item.stringValue(); v != "" {
				amount, err := decimal.NewFromString(v)
				if err != nil {
					return domain.PaymentCallback{}, errors.Wrapf(err, "parsing callback amount `%s`", v)
				}
				result.Amount = amount
			}
		case "MpesaReceiptNumber":
			result.ReceiptNumber = item.stringValue()
		case "PhoneNumber":
			result.Phone = item.stringValue()
		}
	}
	return result, nil
}
