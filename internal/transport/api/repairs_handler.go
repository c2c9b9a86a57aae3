package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RepairsHandler struct {
	repairSvs RepairServicer
}

func NewRepairsHandler(repairSvs RepairServicer) *RepairsHandler {
	return &RepairsHandler{
		repairSvs: repairSvs,
	}
}

type CreateRepairParams struct {
	Name   string `binding:"required,max=255"        json:"name"`
	Phone  string `binding:"required"                json:"phone"`
	Email  string `binding:"omitempty,email,max=255" json:"email"`
	Device string `binding:"required,max=255"        json:"device"`
	Issue  string `binding:"required,max=5000"       json:"issue"`
}

// Create POST RouteGroup + RepairsRoute. Публичный метод, авторизованный покупатель привязывается к заявке.
func (h *RepairsHandler) Create(c *gin.Context) {
	var params CreateRepairParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	var customerID *int64
	if id := getCustomerIDFromContext(c); id > 0 {
		customerID = &id
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	repair, err := h.repairSvs.Create(reqCtx, repoargs.CreateRepair{
		CustomerID: customerID,
		Name:       params.Name,
		Phone:      params.Phone,
		Email:      params.Email,
		Device:     params.Device,
		Issue:      params.Issue,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"repair": newRepairResponse(repair)})
}

type RepairListParams struct {
	PaginationParams
	Status domain.RepairStatusType `binding:"omitempty,repair_status" form:"status"`
}

func (h *RepairsHandler) Index(c *gin.Context) {
	var params RepairListParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	repairs, err := h.repairSvs.List(reqCtx, repoargs.RepairFilter{
		Pagination: params.toRepo(),
		Status:     params.Status,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repairs": mapSlice(repairs, newRepairResponse)})
}

func (h *RepairsHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	repair, err := h.repairSvs.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repair": newRepairResponse(repair)})
}

type UpdateRepairParams struct {
	Status        *domain.RepairStatusType `binding:"omitempty,repair_status" json:"status"`
	EstimatedCost *decimal.Decimal         `json:"estimated_cost"`
	Notes         *string                  `binding:"omitempty,max=5000"    json:"notes"`
}

func (h *RepairsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params UpdateRepairParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	repair, err := h.repairSvs.Update(reqCtx, id, repoargs.UpdateRepair{
		Status:        params.Status,
		EstimatedCost: params.EstimatedCost,
		Notes:         params.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repair": newRepairResponse(repair)})
}

func (h *RepairsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.repairSvs.Delete(reqCtx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
