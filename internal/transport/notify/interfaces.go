package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/service"
)

// Deliverer доставляет событие outbox одного вида во внешнюю систему.
type Deliverer interface {
	Deliver(ctx context.Context, event domain.OutboxEvent) error
}

type Servicer interface {
	PendingEvents(ctx context.Context, limit uint) ([]domain.OutboxEvent, error)
	CompleteDelivery(ctx context.Context, results []service.DeliveryResult) error
}
