package api

import (
	"encoding/json"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

type CustomerResponse struct {
	ID        int64                     `json:"id"`
	Name      string                    `json:"name"`
	Email     string                    `json:"email"`
	Phone     string                    `json:"phone"`
	Role      domain.CustomerRoleType   `json:"role"`
	Status    domain.CustomerStatusType `json:"status"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

func newCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Role:      c.Role,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type CustomerWithStatsResponse struct {
	CustomerResponse
	OrdersCount int64   `json:"orders_count"`
	TotalSpent  float64 `json:"total_spent"`
}

type OrderItemResponse struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderResponse struct {
	ID              int64                    `json:"id"`
	CustomerID      int64                    `json:"customer_id"`
	Items           []OrderItemResponse      `json:"products"`
	Total           float64                  `json:"total"`
	Status          domain.OrderStatusType   `json:"status"`
	PaymentMethod   domain.PaymentMethodType `json:"payment_method"`
	ShippingAddress string                   `json:"shipping_address"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.InexactFloat64(),
		}
	}
	return OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		Items:           items,
		Total:           o.Total.InexactFloat64(),
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type PaymentResponse struct {
	ID                int64                    `json:"id"`
	OrderID           *int64                   `json:"order_id"`
	Method            domain.PaymentMethodType `json:"method"`
	Amount            float64                  `json:"amount"`
	Status            domain.PaymentStatusType `json:"status"`
	CheckoutRequestID string                   `json:"checkout_request_id"`
	MerchantRequestID string                   `json:"merchant_request_id"`
	ReceiptNumber     string                   `json:"receipt_number,omitempty"`
	Phone             string                   `json:"phone"`
	ResultCode        *int                     `json:"result_code"`
	ResultDesc        string                   `json:"result_desc,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func newPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Method:            p.Method,
		Amount:            p.Amount.InexactFloat64(),
		Status:            p.Status,
		CheckoutRequestID: p.CheckoutRequestID,
		MerchantRequestID: p.MerchantRequestID,
		ReceiptNumber:     p.ReceiptNumber,
		Phone:             p.Phone,
		ResultCode:        p.ResultCode,
		ResultDesc:        p.ResultDesc,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type ProductResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Stock         int32     `json:"stock"`
	CategoryID    *int64    `json:"category_id"`
	SubcategoryID *int64    `json:"subcategory_id"`
	Images        []string  `json:"images"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price.InexactFloat64(),
		Stock:         p.Stock,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		Images:        images,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type SubcategoryResponse struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newSubcategoryResponse(s *domain.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type RepairResponse struct {
	ID            int64                   `json:"id"`
	CustomerID    *int64                  `json:"customer_id"`
	Name          string                  `json:"name"`
	Phone         string                  `json:"phone"`
	Email         string                  `json:"email"`
	Device        string                  `json:"device"`
	Issue         string                  `json:"issue"`
	Status        domain.RepairStatusType `json:"status"`
	EstimatedCost *float64                `json:"estimated_cost"`
	Notes         string                  `json:"notes"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func newRepairResponse(r *domain.RepairRequest) RepairResponse {
	return RepairResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		Device:        r.Device,
		Issue:         r.Issue,
		Status:        r.Status,
		EstimatedCost: decimalPtrToFloat(r.EstimatedCost),
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type SettingResponse struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newSettingResponse(s *domain.Setting) SettingResponse {
	return SettingResponse{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt}
}

// mapSlice переводит срез моделей в срез ответов.
func mapSlice[M any, R any](models []M, fn func(*M) R) []R {
	result := make([]R, len(models))
	for i := range models {
		result[i] = fn(&models[i])
	}
	return result
}
