package repoargs

import (
	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrderItem struct {
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

type CreateOrder struct {
	CustomerID      int64
	Items           []CreateOrderItem
	Total           decimal.Decimal
	PaymentMethod   domain.PaymentMethodType
	ShippingAddress string
}

// UpdateOrder nil поля не обновляются.
type UpdateOrder struct {
	Status          *domain.OrderStatusType
	PaymentMethod   *domain.PaymentMethodType
	ShippingAddress *string
}

type OrderFilter struct {
	Pagination
	CustomerID int64
	Status     domain.OrderStatusType
}
