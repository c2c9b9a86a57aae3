// Package notify доставляет события outbox: письма, вебхуки и сообщения в кафку.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultDeliveryTimeout        = 15 * time.Second
	defaultIdleDelay              = time.Second
	defaultLimitPerIteration uint = 50
	defaultWorkers           uint = 4
	// maxDeliveryAttempts попыток доставки одного события за итерацию, если получатель просит подождать.
	maxDeliveryAttempts = 2
)

// Dispatcher разбирает outbox: выбирает ожидающие события, раздает их воркерам и фиксирует результат.
type Dispatcher struct {
	svs               Servicer
	deliverers        map[domain.OutboxKindType]Deliverer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	idleDelay         time.Duration
}

func NewDispatcher(svs Servicer, l *logrus.Logger) *Dispatcher {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "dispatcher",
	})

	return &Dispatcher{
		svs:               svs,
		deliverers:        make(map[domain.OutboxKindType]Deliverer),
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
		idleDelay:         defaultIdleDelay,
	}
}

// Register назначает доставщика для событий вида kind.
func (d *Dispatcher) Register(kind domain.OutboxKindType, deliverer Deliverer) *Dispatcher {
	d.deliverers[kind] = deliverer
	return d
}

// SetLimitPerIteration устанавливает кол-во событий, обрабатываемых в одной итерации.
func (d *Dispatcher) SetLimitPerIteration(limit uint) *Dispatcher {
	if limit > 0 {
		d.limitPerIteration = limit
	}
	return d
}

func (d *Dispatcher) SetWorkers(workers uint) *Dispatcher {
	if workers > 0 {
		d.workers = workers
	}
	return d
}

// Run обрабатывает outbox в цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации запрашивает через сервисный слой не более limitPerIteration ожидающих событий.
//  2. Раздает их N воркерам (SetWorkers), каждый воркер выбирает доставщика по виду события.
//  3. Результаты всех доставок фиксируются через сервисный слой одной транзакцией.
//
// После итерации без событий или с неудачными доставками делает паузу около секунды.
// Неудачно доставленное событие снова выбирается только после паузы, назначенной в результате доставки.
func (d *Dispatcher) Run(ctx context.Context) {
	d.l.WithFields(logrus.Fields{
		"limitPerIteration": d.limitPerIteration,
		"workers":           d.workers,
		"kinds":             len(d.deliverers),
	}).Info("Starting")

	for {
		err := d.process(ctx)
		if err == nil {
			continue
		}
		switch {
		case errors.Is(err, ErrNoEvents), ctx.Err() != nil:
		case errors.Is(err, ErrDeliveryFailed):
			d.l.WithError(err).Warn("some deliveries failed")
		default:
			d.l.WithError(err).Error("process error")
		}

		delay := time.Duration(jitter(float64(d.idleDelay), 0.15, 0.15)) //nolint:mnd
		select {
		case <-ctx.Done():
			d.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(delay):
		}
	}
}

// process выполняет одну итерацию. Возвращает ErrNoEvents если событий нет и ErrDeliveryFailed,
// если хотя бы одно событие доставить не удалось.
func (d *Dispatcher) process(ctx context.Context) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr //nolint:wrapcheck
	}
	events, eventsErr := d.produce(ctx)
	if eventsErr != nil {
		return fmt.Errorf("process: %w", eventsErr)
	}

	results := d.runWorkers(ctx, events)
	if len(results) == 0 {
		return nil
	}

	// Результат фиксируется даже если родительский контекст уже отменен, иначе доставленные события
	// будут отправлены повторно.
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultServiceTimeout)
	defer cancel()

	if err := d.svs.CompleteDelivery(reqCtx, results); err != nil {
		return fmt.Errorf("process: %w", err)
	}

	var failed int
	for _, result := range results {
		if result.Error != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("process: %w: %d of %d", ErrDeliveryFailed, failed, len(results))
	}
	return nil
}

func (d *Dispatcher) produce(ctx context.Context) ([]domain.OutboxEvent, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	events, err := d.svs.PendingEvents(produceCtx, d.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	return events, nil
}

// runWorkers fan-out/fan-in: события раздаются воркерам через канал, результаты собираются после
// завершения всех воркеров.
func (d *Dispatcher) runWorkers(ctx context.Context, events []domain.OutboxEvent) []service.DeliveryResult {
	taskCh := make(chan *domain.OutboxEvent, len(events))
	for i := range events {
		taskCh <- &events[i]
	}
	close(taskCh)

	resultCh := make(chan service.DeliveryResult, len(events))

	wg := new(sync.WaitGroup)
	for i := range d.workers {
		wg.Add(1)
		go d.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	results := make([]service.DeliveryResult, 0, len(events))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

func (d *Dispatcher) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.OutboxEvent,
	resultCh chan<- service.DeliveryResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- d.deliver(ctx, workerID, event)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID uint, event *domain.OutboxEvent) service.DeliveryResult {
	l := d.l.WithFields(logrus.Fields{
		"worker":  workerID,
		"eventID": event.ID,
		"kind":    event.Kind,
		"attempt": event.Attempts + 1,
	})

	deliverer, ok := d.deliverers[event.Kind]
	if !ok {
		err := fmt.Errorf("%w `%s`", ErrNoDeliverer, event.Kind)
		l.WithError(err).Error("deliver event")
		return failedDelivery(event, err)
	}

	var err error
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, defaultDeliveryTimeout)
		err = deliverer.Deliver(reqCtx, *event)
		cancel()
		if err == nil {
			l.Info("Delivered")
			return service.DeliveryResult{EventID: event.ID}
		}

		var tooManyReq *TooManyRequestError
		if !errors.As(err, &tooManyReq) || attempt == maxDeliveryAttempts {
			break
		}
		l.WithField("retryAfter", tooManyReq.RetryAfter.String()).Warn("rate limited by receiver")
		select {
		case <-ctx.Done():
			return failedDelivery(event, ctx.Err())
		case <-time.After(tooManyReq.RetryAfter):
		}
	}
	l.WithError(err).Error("deliver event")
	return failedDelivery(event, err)
}

// failedDelivery назначает следующую попытку с экспоненциальной паузой. Если получатель сам указал,
// сколько ждать, и это дольше, берется его значение.
func failedDelivery(event *domain.OutboxEvent, err error) service.DeliveryResult {
	delay := redeliveryDelay(event.Attempts + 1)
	var tooManyReq *TooManyRequestError
	if errors.As(err, &tooManyReq) && tooManyReq.RetryAfter > delay {
		delay = tooManyReq.RetryAfter
	}
	return service.DeliveryResult{EventID: event.ID, Error: err, RetryAfter: delay}
}
