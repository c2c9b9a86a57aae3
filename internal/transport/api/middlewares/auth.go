package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentCustomerIDKey = "currentCustomerID"
	CurrentRoleKey       = "currentRole"
)

// checkAuthorization извлекает access токен из заголовка Authorization и проверяет его. Если токен
// не передан, вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.CustomerClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || !strings.EqualFold(tokenHeader[:len(bearer)], bearer) {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateCustomerJWT(tokenHeader[len(bearer):], tokens.AccessToken, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст id покупателя (CurrentCustomerIDKey)
// и его роль (CurrentRoleKey).
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(CurrentCustomerIDKey, claims.ID)
		c.Set(CurrentRoleKey, domain.CustomerRoleType(claims.Role))
		c.Next()
	}
}

// OptionalAuth как AuthRequired, но пропускает запросы без токена или с недействительным токеном.
func OptionalAuth(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := checkAuthorization(c, jwtTokenSecret); err == nil {
			c.Set(CurrentCustomerIDKey, claims.ID)
			c.Set(CurrentRoleKey, domain.CustomerRoleType(claims.Role))
		}
		c.Next()
	}
}

// AdminRequired пропускает только администраторов. Должен стоять после AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CurrentRoleKey)
		if role != domain.CustomerRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
