package repoargs

import (
	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CreatePayment struct {
	OrderID           *int64
	Method            domain.PaymentMethodType
	Amount            decimal.Decimal
	CheckoutRequestID string
	MerchantRequestID string
	Phone             string
}

// PaymentResult результат платежа, полученный в колбэке шлюза. Пустые ReceiptNumber/Phone и нулевой Amount
// не перезаписывают сохраненные значения.
type PaymentResult struct {
	Status        domain.PaymentStatusType
	Amount        decimal.Decimal
	ReceiptNumber string
	Phone         string
	ResultCode    int
	ResultDesc    string
}

type PaymentFilter struct {
	Pagination
	OrderID int64
	Status  domain.PaymentStatusType
}
