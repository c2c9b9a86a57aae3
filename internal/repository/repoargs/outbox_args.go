package repoargs

import (
	"encoding/json"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
)

type EnqueueEvent struct {
	Kind    domain.OutboxKindType
	Payload json.RawMessage
}

// FailedDelivery неудачная доставка события. Через RetryAfter событие снова станет доступно для отправки.
type FailedDelivery struct {
	ID         int64
	Error      string
	RetryAfter time.Duration
}
