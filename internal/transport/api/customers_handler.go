package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

// CustomersHandler управление покупателями. Все методы только для администратора.
type CustomersHandler struct {
	customerSvs CustomerServicer
}

func NewCustomersHandler(customerSvs CustomerServicer) *CustomersHandler {
	return &CustomersHandler{
		customerSvs: customerSvs,
	}
}

type CustomerListParams struct {
	PaginationParams
	Search string                    `binding:"omitempty,max=100"         form:"q"`
	Status domain.CustomerStatusType `binding:"omitempty,customer_status" form:"status"`
}

func (h *CustomersHandler) Index(c *gin.Context) {
	var params CustomerListParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customers, err := h.customerSvs.List(reqCtx, repoargs.CustomerFilter{
		Pagination: params.toRepo(),
		Search:     params.Search,
		Status:     params.Status,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]CustomerWithStatsResponse, len(customers))
	for i := range customers {
		response[i] = CustomerWithStatsResponse{
			CustomerResponse: newCustomerResponse(&customers[i].Customer),
			OrdersCount:      customers[i].OrdersCount,
			TotalSpent:       customers[i].TotalSpent.InexactFloat64(),
		}
	}
	c.JSON(http.StatusOK, gin.H{"customers": response})
}

func (h *CustomersHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": newCustomerResponse(customer)})
}

type UpdateCustomerParams struct {
	Name   *string                    `binding:"omitempty,min=1,max=255"   json:"name"`
	Phone  *string                    `binding:"omitempty,phone_ke"        json:"phone"`
	Role   *domain.CustomerRoleType   `binding:"omitempty,customer_role"   json:"role"`
	Status *domain.CustomerStatusType `binding:"omitempty,customer_status" json:"status"`
}

func (h *CustomersHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params UpdateCustomerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if params.Phone != nil {
		phone, _ := service.NormalizePhone(*params.Phone)
		params.Phone = &phone
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.Update(reqCtx, id, repoargs.UpdateCustomer{
		Name:   params.Name,
		Phone:  params.Phone,
		Role:   params.Role,
		Status: params.Status,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": newCustomerResponse(customer)})
}

func (h *CustomersHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.customerSvs.Delete(reqCtx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
