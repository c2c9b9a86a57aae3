// Package mpesa клиент Safaricom Daraja API (M-Pesa Express / STK push).
package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/pkg/errors"
)

const (
	SandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	ProductionBaseURL = "https://api.safaricom.co.ke"

	RouteOAuthToken = "/oauth/v1/generate?grant_type=client_credentials"
	RouteSTKPush    = "/mpesa/stkpush/v1/processrequest"

	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"

	transactionTypePayBill = "CustomerPayBillOnline"
	timestampLayout        = "20060102150405"
	defaultHTTPTimeout     = 10 * time.Second
	maxErrorBodyLen        = 512
)

// nairobi шлюз ожидает Timestamp в местном времени Кении (UTC+3, без перехода на летнее время).
var nairobi = time.FixedZone("EAT", 3*60*60) //nolint:mnd

type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
	Environment    string
	// BaseURL если задан, имеет приоритет над Environment.
	BaseURL string
}

// Client является реализацией service.PaymentGateway для Daraja API.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = SandboxBaseURL
		if cfg.Environment == EnvironmentProduction {
			baseURL = ProductionBaseURL
		}
	}
	return &Client{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		now:        time.Now,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Password пароль запроса STK push: base64(shortcode + passkey + timestamp).
func (c *Client) Password(timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(c.cfg.ShortCode + c.cfg.Passkey + timestamp))
}

// AccessToken получает OAuth токен по consumer key/secret.
//
//nolint:nonamedreturns
func (c *Client) AccessToken(ctx context.Context) (token string, err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+RouteOAuthToken, nil)
	if reqErr != nil {
		return "", errors.Wrap(reqErr, "create token request")
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	var resp tokenResponse
	if doErr := c.do(req, &resp); doErr != nil {
		return "", errors.Wrap(doErr, "get access token")
	}
	if resp.AccessToken == "" {
		return "", errors.New("get access token: empty access_token in response")
	}
	return resp.AccessToken, nil
}

// STKPush отправляет на телефон покупателя запрос на оплату. Сумма округляется вверх до целых шиллингов.
// При ответе шлюза со статусом отличным от http.StatusOK возвращает ошибку *StatusCodeError.
func (c *Client) STKPush(ctx context.Context, req domain.STKPushRequest) (*domain.STKPushResult, error) {
	token, tokenErr := c.AccessToken(ctx)
	if tokenErr != nil {
		return nil, tokenErr
	}

	timestamp := c.now().In(nairobi).Format(timestampLayout)
	payload, marshalErr := json.Marshal(stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          c.Password(timestamp),
		Timestamp:         timestamp,
		TransactionType:   transactionTypePayBill,
		Amount:            req.Amount.Ceil().IntPart(),
		PartyA:            req.Phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.TransactionDesc,
	})
	if marshalErr != nil {
		return nil, errors.Wrap(marshalErr, "marshal stk push request")
	}

	httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RouteSTKPush, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, errors.Wrap(reqErr, "create stk push request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	var result domain.STKPushResult
	if doErr := c.do(httpReq, &result); doErr != nil {
		return nil, errors.Wrap(doErr, "stk push")
	}
	return &result, nil
}

// do выполняет запрос и декодирует успешный ответ в out.
//
//nolint:nonamedreturns
func (c *Client) do(req *http.Request, out any) (err error) {
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return errors.Wrap(doErr, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close body")
		}
	}()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return errors.Wrap(readErr, "read response")
	}
	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBodyLen {
			body = body[:maxErrorBodyLen]
		}
		return NewStatusCodeError(resp.StatusCode, string(body))
	}
	if jsonErr := json.Unmarshal(body, out); jsonErr != nil {
		return errors.Wrap(jsonErr, "parse response")
	}
	return nil
}
