package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type OrderItemParams struct {
	ProductID int64           `binding:"required,gt=0" json:"product_id"`
	Quantity  int32           `binding:"required,gt=0" json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderParams struct {
	CustomerID      int64                    `json:"customer_id"`
	Items           []OrderItemParams        `binding:"required,min=1,dive" json:"products"`
	Total           *decimal.Decimal         `json:"total"`
	PaymentMethod   domain.PaymentMethodType `binding:"omitempty,payment_method" json:"payment_method"`
	ShippingAddress string                   `binding:"omitempty,max=1000"       json:"shipping_address"`
}

// Create POST RouteGroup + OrdersRoute. Покупатель всегда создает заказ на себя, администратор может
// указать customer_id.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params CreateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	customerID := getCustomerIDFromContext(c)
	if isAdmin(c) && params.CustomerID > 0 {
		customerID = params.CustomerID
	}

	items := make([]service.OrderItemArgs, len(params.Items))
	for i, item := range params.Items {
		items[i] = service.OrderItemArgs{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Create(reqCtx, service.CreateOrderArgs{
		CustomerID:      customerID,
		Items:           items,
		Total:           params.Total,
		PaymentMethod:   params.PaymentMethod,
		ShippingAddress: params.ShippingAddress,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": newOrderResponse(order)})
}

type OrderListParams struct {
	PaginationParams
	Status     domain.OrderStatusType `binding:"omitempty,order_status" form:"status"`
	CustomerID int64                  `form:"customer_id"`
}

// Index GET RouteGroup + OrdersRoute. Администратор видит все заказы, покупатель - только свои.
func (o *OrdersHandler) Index(c *gin.Context) {
	var params OrderListParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	filter := repoargs.OrderFilter{
		Pagination: params.toRepo(),
		Status:     params.Status,
		CustomerID: params.CustomerID,
	}
	if !isAdmin(c) {
		filter.CustomerID = getCustomerIDFromContext(c)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.List(reqCtx, filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": mapSlice(orders, newOrderResponse)})
}

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	order, ok := o.loadOwnOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": newOrderResponse(order)})
}

// loadOwnOrder загружает заказ из параметра пути. Чужой заказ для покупателя неотличим от
// несуществующего.
func (o *OrdersHandler) loadOwnOrder(c *gin.Context) (*domain.Order, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return nil, false
	}
	if !isAdmin(c) && order.CustomerID != getCustomerIDFromContext(c) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return nil, false
	}
	return order, true
}

type UpdateOrderParams struct {
	Status          *domain.OrderStatusType   `binding:"omitempty,order_status"   json:"status"`
	PaymentMethod   *domain.PaymentMethodType `binding:"omitempty,payment_method" json:"payment_method"`
	ShippingAddress *string                   `binding:"omitempty,max=1000"       json:"shipping_address"`
}

// Update PUT RouteGroup + OrderRoute. Только для администратора, переходы статусов не проверяются.
func (o *OrdersHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params UpdateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Update(reqCtx, id, repoargs.UpdateOrder{
		Status:          params.Status,
		PaymentMethod:   params.PaymentMethod,
		ShippingAddress: params.ShippingAddress,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": newOrderResponse(order)})
}

// Cancel POST RouteGroup + OrderCancelRoute. Выполненный заказ отменить нельзя (400).
func (o *OrdersHandler) Cancel(c *gin.Context) {
	existing, ok := o.loadOwnOrder(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Cancel(reqCtx, existing.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": newOrderResponse(order)})
}

// Delete DELETE RouteGroup + OrderRoute. Только для администратора.
func (o *OrdersHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := o.orderSvs.Delete(reqCtx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
