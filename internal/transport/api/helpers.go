package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const maxPageLimit = 100

// getCustomerIDFromContext берет из контекста gin ID текущего покупателя. ID устанавливается в
// middlewares.AuthRequired. Если значения в контексте нет, вернется 0.
func getCustomerIDFromContext(c *gin.Context) int64 {
	value, exist := c.Get(middlewares.CurrentCustomerIDKey)
	if !exist {
		return 0
	}
	customerID, ok := value.(int64)
	if !ok {
		return 0
	}
	return customerID
}

func isAdmin(c *gin.Context) bool {
	role, _ := c.Get(middlewares.CurrentRoleKey)
	return role == domain.CustomerRoleAdmin
}

// parseIDParam читает положительный числовой параметр пути. При ошибке прерывает запрос со статусом 400.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid "+name)).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

type PaginationParams struct {
	Limit  uint `binding:"omitempty,max=100" form:"limit"`
	Offset uint `binding:"omitempty,max=2147483647" form:"offset"`
}

func (p PaginationParams) toRepo() repoargs.Pagination {
	limit := p.Limit
	if limit == 0 {
		limit = maxPageLimit
	}
	return repoargs.Pagination{Limit: limit, Offset: p.Offset}
}

// abortWithBindError отвечает 400. Для ошибок валидатора в ответ добавляется описание полей.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		fields := make(map[string]string, len(valErrs))
		for _, fe := range valErrs {
			fields[fe.Field()] = fe.Tag()
		}
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

// abortWithServiceError переводит ошибку сервисного слоя в http статус. Текст внутренних ошибок
// клиенту не показывается.
func abortWithServiceError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		gatewayErr    *domain.GatewayError
	)
	switch {
	case errors.As(err, &validationErr):
		_ = c.AbortWithError(http.StatusBadRequest, validationErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrValidation):
		// нарушение ограничений бд: внешний ключ или check
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrOrderCompleted):
		_ = c.AbortWithError(http.StatusBadRequest, domain.ErrOrderCompleted).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrForbidden):
		_ = c.AbortWithError(http.StatusForbidden, err).SetType(gin.ErrorTypePrivate)
	case errors.As(err, &gatewayErr):
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
