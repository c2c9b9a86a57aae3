package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

const (
	AccessTokenExpire  = 1 * time.Hour
	RefreshTokenExpire = 30 * 24 * time.Hour
)

// CustomerClaims в RegisteredClaims.ID хранится уникальный идентификатор токена (jti).
type CustomerClaims struct {
	jwt.RegisteredClaims
	ID   int64
	Role string
	Type TokenType
}

// JTI возвращает идентификатор токена.
func (c *CustomerClaims) JTI() (uuid.UUID, error) {
	jti, err := uuid.Parse(c.RegisteredClaims.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad jti", ErrInvalidToken)
	}
	return jti, nil
}

// Pair пара токенов, выдаваемая при регистрации, логине и ротации.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func GeneratePair(id int64, role string, key []byte) (*Pair, error) {
	access, accessErr := GenerateCustomerJWT(id, role, AccessToken, AccessTokenExpire, key)
	if accessErr != nil {
		return nil, accessErr
	}
	refresh, refreshErr := GenerateCustomerJWT(id, role, RefreshToken, RefreshTokenExpire, key)
	if refreshErr != nil {
		return nil, refreshErr
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func GenerateCustomerJWT(id int64, role string, tokenType TokenType, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	claims := CustomerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
		ID:   id,
		Role: role,
		Type: tokenType,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating %s jwt token: %s", tokenType, err.Error())
	}
	return token, nil
}

// ValidateCustomerJWT разбирает токен и проверяет, что его тип совпадает с expected.
func ValidateCustomerJWT(tokenString string, expected TokenType, key []byte) (*CustomerClaims, error) {
	token, err := validateJWT(tokenString, new(CustomerClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating %s jwt token: %w", expected, err)
	}

	claims, ok := token.Claims.(*CustomerClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims.Type != expected {
		return nil, fmt.Errorf("%w: expected %s token, got `%s`", ErrWrongTokenType, expected, claims.Type)
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}

	return token, nil
}
