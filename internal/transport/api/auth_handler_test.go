package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/fsdevblog/storefront/internal/service/tokens"
	"github.com/fsdevblog/storefront/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	handlerSuite
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	pair := &tokens.Pair{AccessToken: "access", RefreshToken: "refresh"}
	email := gofakeit.Email()

	s.mockCustomerService.EXPECT().
		Register(gomock.Any(), service.RegisterCustomerArgs{
			Name:     "Jane",
			Email:    email,
			Phone:    "254712345678",
			Password: "password",
		}).
		Return(&domain.Customer{ID: 7, Name: "Jane", Email: email, Role: domain.CustomerRoleCustomer}, pair, nil)
	s.mockCustomerService.EXPECT().
		Register(gomock.Any(), service.RegisterCustomerArgs{
			Name:     "Jane",
			Email:    "taken@example.com",
			Password: "password",
		}).
		Return(nil, nil, fmt.Errorf("registering customer: %w", domain.ErrDuplicateKey))

	cases := []struct {
		name       string
		params     *RegisterParams
		wantStatus int
	}{
		{
			name:       "created",
			params:     &RegisterParams{Name: "Jane", Email: email, Phone: "0712 345 678", Password: "password"},
			wantStatus: http.StatusCreated,
		}, {
			name:       "duplicate email",
			params:     &RegisterParams{Name: "Jane", Email: "taken@example.com", Password: "password"},
			wantStatus: http.StatusConflict,
		}, {
			name:       "bad request",
			params:     nil,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "invalid email",
			params:     &RegisterParams{Name: "Jane", Email: "not-an-email", Password: "password"},
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "invalid phone",
			params:     &RegisterParams{Name: "Jane", Email: email, Phone: "12345", Password: "password"},
			wantStatus: http.StatusBadRequest,
		}, {
			name: "password over 72 bytes",
			params: &RegisterParams{
				Name:     "Jane",
				Email:    email,
				Password: testutils.GenerateOverBytesUnderRunes(20),
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var body any
			if t.params != nil {
				body = t.params
			}
			res := s.request(http.MethodPost, RegisterRoute, body, "")
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AuthHandlerTestSuite) TestRegisterResponse() {
	s.mockCustomerService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(
			&domain.Customer{ID: 7, Email: "jane@example.com", Role: domain.CustomerRoleCustomer},
			&tokens.Pair{AccessToken: "access", RefreshToken: "refresh"},
			nil,
		)

	res := s.request(http.MethodPost, RegisterRoute,
		RegisterParams{Name: "Jane", Email: "jane@example.com", Password: "password"}, "")
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var body AuthResponse
	s.decode(res, &body)
	s.Equal(int64(7), body.Customer.ID)
	s.Equal("access", body.AccessToken)
	s.Equal("refresh", body.RefreshToken)
}

func (s *AuthHandlerTestSuite) TestDuplicateEmailMessage() {
	s.mockCustomerService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, nil, domain.ErrDuplicateKey)

	res := s.request(http.MethodPost, RegisterRoute,
		RegisterParams{Name: "Jane", Email: "jane@example.com", Password: "password"}, "")
	s.Require().Equal(http.StatusConflict, res.StatusCode)

	var body map[string]string
	s.decode(res, &body)
	s.Equal("email already registered", body["error"])
}

func (s *AuthHandlerTestSuite) TestLogin() {
	pair := &tokens.Pair{AccessToken: "access", RefreshToken: "refresh"}

	s.mockCustomerService.EXPECT().
		Login(gomock.Any(), "jane@example.com", "password").
		Return(&domain.Customer{ID: 1}, pair, nil)
	s.mockCustomerService.EXPECT().
		Login(gomock.Any(), "jane@example.com", "wrong").
		Return(nil, nil, domain.ErrPasswordMissMatch)
	s.mockCustomerService.EXPECT().
		Login(gomock.Any(), "suspended@example.com", "password").
		Return(nil, nil, domain.ErrAccountSuspended)

	cases := []struct {
		name       string
		params     *LoginParams
		wantStatus int
	}{
		{
			name:       "ok",
			params:     &LoginParams{Email: "jane@example.com", Password: "password"},
			wantStatus: http.StatusOK,
		}, {
			name:       "wrong password",
			params:     &LoginParams{Email: "jane@example.com", Password: "wrong"},
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "suspended",
			params:     &LoginParams{Email: "suspended@example.com", Password: "password"},
			wantStatus: http.StatusForbidden,
		}, {
			name:       "empty password",
			params:     &LoginParams{Email: "jane@example.com"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, LoginRoute, t.params, "")
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.mockCustomerService.EXPECT().
		Refresh(gomock.Any(), "valid").
		Return(&tokens.Pair{AccessToken: "a2", RefreshToken: "r2"}, nil)
	s.mockCustomerService.EXPECT().
		Refresh(gomock.Any(), "revoked").
		Return(nil, fmt.Errorf("refreshing tokens: %w", domain.ErrTokenRevoked))

	res := s.request(http.MethodPost, RefreshRoute, RefreshParams{RefreshToken: "valid"}, "")
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var pair tokens.Pair
	s.decode(res, &pair)
	s.Equal("r2", pair.RefreshToken)

	res = s.request(http.MethodPost, RefreshRoute, RefreshParams{RefreshToken: "revoked"}, "")
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.mockCustomerService.EXPECT().Logout(gomock.Any(), customerID, "refresh").Return(nil)

	res := s.request(http.MethodPost, LogoutRoute, RefreshParams{RefreshToken: "refresh"}, s.customerToken)
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPost, LogoutRoute, RefreshParams{RefreshToken: "refresh"}, "")
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.mockCustomerService.EXPECT().
		Get(gomock.Any(), customerID).
		Return(&domain.Customer{ID: customerID, Name: "Jane"}, nil)

	res := s.request(http.MethodGet, MeRoute, nil, s.customerToken)
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodGet, MeRoute, nil, "")
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *AuthHandlerTestSuite) TestRefreshTokenIsNotAccessToken() {
	refresh, err := tokens.GenerateCustomerJWT(
		customerID, string(domain.CustomerRoleCustomer), tokens.RefreshToken, tokens.RefreshTokenExpire, s.jwtSecret,
	)
	s.Require().NoError(err)

	res := s.request(http.MethodGet, MeRoute, nil, refresh)
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}
