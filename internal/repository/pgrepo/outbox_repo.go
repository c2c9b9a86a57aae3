package pgrepo

import (
	"context"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const outboxColumns = `id, created_at, sent_at, kind::text, payload, status::text, attempts, last_error`

type OutboxRepository struct {
	conn uow.DBTX
}

func NewOutboxRepository(conn uow.DBTX) *OutboxRepository {
	return &OutboxRepository{conn: conn}
}

// Enqueue добавляет события одним батчем. Вызывается в той же транзакции, что и изменение, породившее события.
func (o *OutboxRepository) Enqueue(ctx context.Context, events []repoargs.EnqueueEvent) (err error) {
	if len(events) == 0 {
		return nil
	}
	batch := new(pgx.Batch)
	for _, event := range events {
		batch.Queue(
			`INSERT INTO outbox_events (kind, payload) VALUES ($1::outbox_kind, $2)`,
			string(event.Kind), event.Payload,
		)
	}
	br := o.conn.SendBatch(ctx, batch)
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = convertErr(closeErr, "enqueueing outbox events")
		}
	}()

	for i := range events {
		if _, execErr := br.Exec(); execErr != nil {
			return convertErr(execErr, "enqueueing outbox event #%d", i)
		}
	}
	return nil
}

// GetPending возвращает не более limit ожидающих событий, время следующей попытки которых уже наступило,
// в порядке поступления.
func (o *OutboxRepository) GetPending(ctx context.Context, limit uint) ([]domain.OutboxEvent, error) {
	safeLimit, convErr := safeConvertUintToInt32(limit)
	if convErr != nil {
		return nil, convertErr(convErr, "getting pending outbox events")
	}
	rows, err := o.conn.Query(ctx,
		`SELECT `+outboxColumns+` FROM outbox_events
		WHERE status = 'pending' AND next_attempt_at <= NOW()
		ORDER BY id LIMIT $1`,
		safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting pending outbox events")
	}
	events, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OutboxEvent, error) {
		var event domain.OutboxEvent
		scanErr := row.Scan(
			&event.ID,
			&event.CreatedAt,
			&event.SentAt,
			&event.Kind,
			&event.Payload,
			&event.Status,
			&event.Attempts,
			&event.LastError,
		)
		return event, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting pending outbox events")
	}
	return events, nil
}

func (o *OutboxRepository) MarkSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := o.conn.Exec(ctx,
		`UPDATE outbox_events SET status = 'sent', sent_at = NOW(), attempts = attempts + 1, last_error = ''
		WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return convertErr(err, "marking %d outbox events as sent", len(ids))
	}
	return nil
}

// MarkFailed увеличивает счетчик попыток и откладывает следующую попытку на RetryAfter. Событие,
// исчерпавшее maxAttempts, переводится в статус failed и больше не выбирается.
func (o *OutboxRepository) MarkFailed(
	ctx context.Context,
	failures []repoargs.FailedDelivery,
	maxAttempts int32,
	fn repoargs.BatchExecQueryRow,
) {
	if len(failures) == 0 {
		return
	}
	batch := new(pgx.Batch)
	for _, failure := range failures {
		batch.Queue(
			`UPDATE outbox_events SET
				attempts = attempts + 1,
				last_error = $2,
				status = CASE WHEN attempts + 1 >= $3 THEN 'failed'::outbox_status ELSE status END,
				next_attempt_at = NOW() + make_interval(secs => $4)
			WHERE id = $1`,
			failure.ID, failure.Error, maxAttempts, failure.RetryAfter.Seconds(),
		)
	}
	br := o.conn.SendBatch(ctx, batch)
	defer br.Close()

	for i := range failures {
		_, err := br.Exec()
		if err != nil {
			err = convertErr(err, "marking outbox event %d as failed", failures[i].ID)
		}
		fn(i, err)
	}
}
