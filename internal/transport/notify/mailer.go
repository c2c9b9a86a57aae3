package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
)

const (
	ResendBaseURL        = "https://api.resend.com"
	defaultMailerTimeout = 5 * time.Second
)

// ResendMailer отправляет письма через HTTP API Resend.
type ResendMailer struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
}

func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key is empty")
	}
	if from == "" {
		return nil, errors.New("mail sender address is empty")
	}
	return &ResendMailer{
		apiKey:     apiKey,
		from:       from,
		baseURL:    ResendBaseURL,
		httpClient: &http.Client{Timeout: defaultMailerTimeout},
	}, nil
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Deliver отправляет письмо из события вида email. Payload события - domain.EmailMessage.
//
//nolint:nonamedreturns
func (m *ResendMailer) Deliver(ctx context.Context, event domain.OutboxEvent) (err error) {
	var msg domain.EmailMessage
	if jsonErr := json.Unmarshal(event.Payload, &msg); jsonErr != nil || msg.To == "" {
		return fmt.Errorf("%w: email event %d", ErrInvalidPayload, event.ID)
	}

	body, marshalErr := json.Marshal(sendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if marshalErr != nil {
		return fmt.Errorf("marshal email: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := m.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("send email: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if statusErr := checkStatus(resp); statusErr != nil {
		return fmt.Errorf("send email: %w", statusErr)
	}
	return nil
}
