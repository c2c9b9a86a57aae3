package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         CustomerRoleType
	Status       CustomerStatusType
}

func (c *Customer) IsAdmin() bool {
	return c.Role == CustomerRoleAdmin
}

// CustomerWithStats покупатель с агрегатами по его оплаченным заказам.
type CustomerWithStats struct {
	Customer
	OrdersCount int64
	TotalSpent  decimal.Decimal
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

type Order struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CustomerID      int64
	Items           []OrderItem
	Total           decimal.Decimal
	Status          OrderStatusType
	PaymentMethod   PaymentMethodType
	ShippingAddress string
}

type Payment struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	OrderID           *int64
	Method            PaymentMethodType
	Amount            decimal.Decimal
	Status            PaymentStatusType
	CheckoutRequestID string
	MerchantRequestID string
	ReceiptNumber     string
	Phone             string
	ResultCode        *int
	ResultDesc        string
}

type Product struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	Slug          string
	Description   string
	Price         decimal.Decimal
	Stock         int32
	CategoryID    *int64
	SubcategoryID *int64
	Images        []string
	IsActive      bool
}

type Category struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Slug        string
	Description string
}

type Subcategory struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CategoryID  int64
	Name        string
	Slug        string
	Description string
}

type RepairRequest struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CustomerID    *int64
	Name          string
	Phone         string
	Email         string
	Device        string
	Issue         string
	Status        RepairStatusType
	EstimatedCost *decimal.Decimal
	Notes         string
}

type Setting struct {
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
}

type OutboxEvent struct {
	ID        int64
	CreatedAt time.Time
	SentAt    *time.Time
	Kind      OutboxKindType
	Payload   json.RawMessage
	Status    OutboxStatusType
	Attempts  int32
	LastError string
}

// PaymentEvent событие об исходе платежа, отправляется во внешний вебхук и в кафку.
type PaymentEvent struct {
	Type              string            `json:"type"`
	PaymentID         int64             `json:"payment_id"`
	OrderID           *int64            `json:"order_id,omitempty"`
	CheckoutRequestID string            `json:"checkout_request_id"`
	Status            PaymentStatusType `json:"status"`
	Amount            decimal.Decimal   `json:"amount"`
	ReceiptNumber     string            `json:"receipt_number,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	ResultCode        int               `json:"result_code"`
	ResultDesc        string            `json:"result_desc"`
	OccurredAt        time.Time         `json:"occurred_at"`
}

// EmailMessage письмо, поставленное в очередь на отправку.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type ProductSales struct {
	ProductID int64
	Name      string
	Quantity  int64
	Revenue   decimal.Decimal
}

type DailySales struct {
	Day     time.Time
	Orders  int64
	Revenue decimal.Decimal
}

type Dashboard struct {
	TotalRevenue   decimal.Decimal
	PaidOrders     int64
	OrdersByStatus map[OrderStatusType]int64
	CustomersTotal int64
	ProductsTotal  int64
	PendingRepairs int64
	TopProducts    []ProductSales
	DailySales     []DailySales
}

// STKPushRequest запрос на инициацию оплаты через M-Pesa Express. Phone уже нормализован к виду 2547XXXXXXXX.
type STKPushRequest struct {
	Phone            string
	Amount           decimal.Decimal
	AccountReference string
	TransactionDesc  string
}

// STKPushResult ответ шлюза на инициацию оплаты.
type STKPushResult struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// PaymentCallback результат оплаты, присланный шлюзом. Metadata поля заполнены только для успешных платежей.
type PaymentCallback struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	Amount            decimal.Decimal
	ReceiptNumber     string
	Phone             string
}

func (c PaymentCallback) IsSuccess() bool {
	return c.ResultCode == 0
}
