package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	customerSvs CustomerServicer
}

func NewAuthHandler(customerSvs CustomerServicer) *AuthHandler {
	return &AuthHandler{
		customerSvs: customerSvs,
	}
}

type RegisterParams struct {
	Name     string `binding:"required,min=1,max=255"             json:"name"`
	Email    string `binding:"required,email,max_bytes=255"       json:"email"`
	Phone    string `binding:"omitempty,phone_ke"                 json:"phone"`
	Password string `binding:"required,min=6,max=72,max_bytes=72" json:"password"`
}

type AuthResponse struct {
	Customer     CustomerResponse `json:"customer"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

// Register POST RouteGroup + RegisterRoute. Регистрирует покупателя и выдает ему пару токенов.
func (h *AuthHandler) Register(c *gin.Context) {
	var params RegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	phone := params.Phone
	if phone != "" {
		// формат уже проверен валидатором phone_ke
		phone, _ = service.NormalizePhone(phone)
	}

	customer, pair, createErr := h.customerSvs.Register(ctx, service.RegisterCustomerArgs{
		Name:     params.Name,
		Email:    params.Email,
		Phone:    phone,
		Password: params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("email already registered")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Customer:     newCustomerResponse(customer),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

type LoginParams struct {
	Email    string `binding:"required,max_bytes=255" json:"email"`
	Password string `binding:"required,max_bytes=72"  json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, pair, err := h.customerSvs.Login(ctx, params.Email, params.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMissMatch), errors.Is(err, domain.ErrRecordNotFound):
			_ = c.AbortWithError(http.StatusUnauthorized, errors.New("invalid credentials")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrAccountSuspended):
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrAccountSuspended).SetType(gin.ErrorTypePublic)
		default:
			abortWithServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Customer:     newCustomerResponse(customer),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

type RefreshParams struct {
	RefreshToken string `binding:"required" json:"refresh_token"`
}

// Refresh POST RouteGroup + RefreshRoute. Отзывает переданный refresh токен и выдает новую пару.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var params RefreshParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	pair, err := h.customerSvs.Refresh(ctx, params.RefreshToken)
	if err != nil {
		switch {
		case isTokenError(err):
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
		case errors.Is(err, domain.ErrAccountSuspended):
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrAccountSuspended).SetType(gin.ErrorTypePublic)
		default:
			abortWithServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Logout POST RouteGroup + LogoutRoute. Отзывает refresh токен текущего покупателя.
func (h *AuthHandler) Logout(c *gin.Context) {
	var params RefreshParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.customerSvs.Logout(ctx, getCustomerIDFromContext(c), params.RefreshToken); err != nil {
		if isTokenError(err) {
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me GET RouteGroup + MeRoute.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.Get(ctx, getCustomerIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": newCustomerResponse(customer)})
}

func isTokenError(err error) bool {
	return errors.Is(err, domain.ErrInvalidToken) || errors.Is(err, domain.ErrTokenRevoked)
}
