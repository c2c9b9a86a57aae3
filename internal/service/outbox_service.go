package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
)

// OutboxMaxAttempts после стольких неудачных попыток событие помечается failed и больше не отправляется.
const OutboxMaxAttempts int32 = 5

type OutboxService struct {
	uow        uow.UOW
	outboxRepo OutboxRepository
}

func NewOutboxService(u uow.UOW) (*OutboxService, error) {
	outboxRepo, err := uow.GetRepositoryAs[OutboxRepository](u, uow.RepositoryName(repoargs.OutboxRepoName))
	if err != nil {
		return nil, err
	}
	return &OutboxService{
		uow:        u,
		outboxRepo: outboxRepo,
	}, nil
}

// PendingEvents возвращает события, ожидающие отправки.
func (o *OutboxService) PendingEvents(ctx context.Context, limit uint) ([]domain.OutboxEvent, error) {
	events, err := o.outboxRepo.GetPending(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return events, nil
}

// DeliveryResult результат доставки события. RetryAfter учитывается только при Error != nil.
type DeliveryResult struct {
	EventID    int64
	Error      error
	RetryAfter time.Duration
}

// CompleteDelivery фиксирует результаты отправки одной транзакцией: успешные события помечаются sent,
// для неуспешных увеличивается счетчик попыток и откладывается следующая попытка.
func (o *OutboxService) CompleteDelivery(ctx context.Context, results []DeliveryResult) error {
	sent := make([]int64, 0, len(results))
	failed := make([]repoargs.FailedDelivery, 0, len(results))
	for _, result := range results {
		if result.Error == nil {
			sent = append(sent, result.EventID)
		} else {
			failed = append(failed, repoargs.FailedDelivery{
				ID:         result.EventID,
				Error:      result.Error.Error(),
				RetryAfter: result.RetryAfter,
			})
		}
	}

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OutboxRepository](tx, uow.RepositoryName(repoargs.OutboxRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if err := repo.MarkSent(c, sent); err != nil {
			return err //nolint:wrapcheck
		}

		// failErr хранит последнюю ошибку батча.
		var failErr error
		repo.MarkFailed(c, failed, OutboxMaxAttempts, func(_ int, err error) {
			if err != nil {
				failErr = err
			}
		})
		return failErr
	})
	if txErr != nil {
		return fmt.Errorf("completing outbox delivery: %w", txErr)
	}
	return nil
}
