package mpesa

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *Client
	// pushes запросы STK push, полученные тестовым сервером.
	pushes []stkPushRequest
	// pushStatus статус, которым сервер отвечает на STK push.
	pushStatus int
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.pushes = nil
	s.pushStatus = http.StatusOK

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" || r.URL.Query().Get("grant_type") != "client_credentials" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tkn","expires_in":"3599"}`))
	})
	mux.HandleFunc(RouteSTKPush, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tkn" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req stkPushRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.pushes = append(s.pushes, req)

		if s.pushStatus != http.StatusOK {
			w.WriteHeader(s.pushStatus)
			_, _ = w.Write([]byte(`{"errorCode":"500.001.1001","errorMessage":"Unable to lock subscriber"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"MerchantRequestID":"29115-34620561-1",
			"CheckoutRequestID":"ws_CO_191220191020363925",
			"ResponseCode":"0",
			"ResponseDescription":"Success. Request accepted for processing",
			"CustomerMessage":"Success. Request accepted for processing"
		}`))
	})
	s.server = httptest.NewServer(mux)

	s.client = New(Config{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "passkey",
		CallbackURL:    "https://shop.example.com/api/payments/mpesa/callback",
		BaseURL:        s.server.URL,
	})
	s.client.now = func() time.Time {
		return time.Date(2024, time.March, 1, 9, 30, 15, 0, time.UTC)
	}
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestSTKPush() {
	result, err := s.client.STKPush(s.T().Context(), domain.STKPushRequest{
		Phone:            "254712345678",
		Amount:           decimal.RequireFromString("99.10"),
		AccountReference: "Order-1",
		TransactionDesc:  "Payment for Order-1",
	})
	s.Require().NoError(err)
	s.Equal("ws_CO_191220191020363925", result.CheckoutRequestID)
	s.Equal("0", result.ResponseCode)

	s.Require().Len(s.pushes, 1)
	push := s.pushes[0]
	// 09:30:15 UTC == 12:30:15 в Найроби.
	s.Equal("20240301123015", push.Timestamp)
	s.Equal(base64.StdEncoding.EncodeToString([]byte("174379passkey20240301123015")), push.Password)
	s.Equal(int64(100), push.Amount)
	s.Equal("CustomerPayBillOnline", push.TransactionType)
	s.Equal("254712345678", push.PartyA)
	s.Equal("174379", push.PartyB)
	s.Equal("Order-1", push.AccountReference)
}

func (s *ClientTestSuite) TestSTKPushStatusError() {
	s.pushStatus = http.StatusInternalServerError

	_, err := s.client.STKPush(s.T().Context(), domain.STKPushRequest{
		Phone:  "254712345678",
		Amount: decimal.NewFromInt(10),
	})
	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusInternalServerError, statusErr.Code)
	s.Contains(statusErr.Body, "Unable to lock subscriber")
}

func (s *ClientTestSuite) TestAccessTokenBadCredentials() {
	client := New(Config{ConsumerKey: "key", ConsumerSecret: "wrong", BaseURL: s.server.URL})

	_, err := client.AccessToken(s.T().Context())
	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusUnauthorized, statusErr.Code)
}

func (s *ClientTestSuite) TestBaseURLByEnvironment() {
	s.Equal(SandboxBaseURL, New(Config{}).BaseURL())
	s.Equal(SandboxBaseURL, New(Config{Environment: EnvironmentSandbox}).BaseURL())
	s.Equal(ProductionBaseURL, New(Config{Environment: EnvironmentProduction}).BaseURL())
}
