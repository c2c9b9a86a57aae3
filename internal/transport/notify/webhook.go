package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
)

const defaultWebhookTimeout = 10 * time.Second

// WebhookSender отправляет события об оплате на внешний URL. Получатель может отбрасывать дубликаты
// по заголовку X-Event-ID.
type WebhookSender struct {
	url        string
	httpClient *http.Client
}

func NewWebhookSender(url string) *WebhookSender {
	return &WebhookSender{
		url:        url,
		httpClient: &http.Client{Timeout: defaultWebhookTimeout},
	}
}

//nolint:nonamedreturns
func (w *WebhookSender) Deliver(ctx context.Context, event domain.OutboxEvent) (err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(event.Payload))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-ID", strconv.FormatInt(event.ID, 10))

	resp, doErr := w.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("send webhook: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if statusErr := checkStatus(resp); statusErr != nil {
		return fmt.Errorf("send webhook: %w", statusErr)
	}
	return nil
}
