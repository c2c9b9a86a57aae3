package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvs AnalyticsServicer
}

func NewAnalyticsHandler(analyticsSvs AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvs: analyticsSvs,
	}
}

type DashboardParams struct {
	Days int `binding:"omitempty,min=1,max=365" form:"days"`
}

type ProductSalesResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

type DailySalesResponse struct {
	Date    string  `json:"date"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type DashboardResponse struct {
	TotalRevenue   float64                          `json:"total_revenue"`
	PaidOrders     int64                            `json:"paid_orders"`
	OrdersByStatus map[domain.OrderStatusType]int64 `json:"orders_by_status"`
	CustomersTotal int64                            `json:"customers_total"`
	ProductsTotal  int64                            `json:"products_total"`
	PendingRepairs int64                            `json:"pending_repairs"`
	TopProducts    []ProductSalesResponse           `json:"top_products"`
	DailySales     []DailySalesResponse             `json:"daily_sales"`
}

// Dashboard GET RouteGroup + DashboardRoute.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	var params DashboardParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dashboard, err := h.analyticsSvs.Dashboard(reqCtx, params.Days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDashboardResponse(dashboard))
}

func newDashboardResponse(d *domain.Dashboard) DashboardResponse {
	top := make([]ProductSalesResponse, len(d.TopProducts))
	for i, p := range d.TopProducts {
		top[i] = ProductSalesResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Revenue:   p.Revenue.InexactFloat64(),
		}
	}
	daily := make([]DailySalesResponse, len(d.DailySales))
	for i, s := range d.DailySales {
		daily[i] = DailySalesResponse{
			Date:    s.Day.Format("2006-01-02"),
			Orders:  s.Orders,
			Revenue: s.Revenue.InexactFloat64(),
		}
	}
	byStatus := d.OrdersByStatus
	if byStatus == nil {
		byStatus = map[domain.OrderStatusType]int64{}
	}
	return DashboardResponse{
		TotalRevenue:   d.TotalRevenue.InexactFloat64(),
		PaidOrders:     d.PaidOrders,
		OrdersByStatus: byStatus,
		CustomersTotal: d.CustomersTotal,
		ProductsTotal:  d.ProductsTotal,
		PendingRepairs: d.PendingRepairs,
		TopProducts:    top,
		DailySales:     daily,
	}
}
