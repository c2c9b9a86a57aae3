package testutils

import (
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/service/tokens"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// MustAccessToken выпускает access токен для тестовых запросов.
func MustAccessToken(customerID int64, role domain.CustomerRoleType, secret []byte) string {
	token, err := tokens.GenerateCustomerJWT(
		customerID, string(role), tokens.AccessToken, tokens.AccessTokenExpire, secret,
	)
	if err != nil {
		panic(err)
	}
	return token
}
