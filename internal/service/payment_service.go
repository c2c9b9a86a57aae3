package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/shopspring/decimal"
)

const defaultAccountReference = "Storefront"

type PaymentService struct {
	uow           uow.UOW
	paymentRepo   PaymentRepository
	orderRepo     OrderRepository
	gateway       PaymentGateway
	notifications Notifications
	now           func() time.Time
}

type PaymentServiceArgs struct {
	Gateway       PaymentGateway
	Notifications Notifications
}

func NewPaymentService(u uow.UOW, args PaymentServiceArgs) (*PaymentService, error) {
	paymentRepo, paymentRepoErr :=
		uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if paymentRepoErr != nil {
		return nil, paymentRepoErr
	}
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	if args.Gateway == nil {
		return nil, errors.New("payment service: gateway is required")
	}
	return &PaymentService{
		uow:           u,
		paymentRepo:   paymentRepo,
		orderRepo:     orderRepo,
		gateway:       args.Gateway,
		notifications: args.Notifications,
		now:           time.Now,
	}, nil
}

type InitiatePaymentArgs struct {
	Phone   string
	Amount  decimal.Decimal
	OrderID *int64
}

// InitiateSTKPush отправляет покупателю запрос на оплату и сохраняет платеж в статусе pending.
//
// Алгоритм работы:
//  1. Валидирует телефон и сумму до любых сетевых вызовов.
//  2. Если указан заказ, проверяет что он существует.
//  3. Вызывает шлюз. Ошибка шлюза или ответ без CheckoutRequestID возвращаются как *domain.GatewayError,
//     платеж при этом не сохраняется.
//  4. Сохраняет платеж. Повтор CheckoutRequestID вернет domain.ErrDuplicateKey.
func (p *PaymentService) InitiateSTKPush(
	ctx context.Context,
	args InitiatePaymentArgs,
) (*domain.Payment, *domain.STKPushResult, error) {
	phone, phoneErr := NormalizePhone(args.Phone)
	if phoneErr != nil {
		return nil, nil, phoneErr
	}
	if !args.Amount.IsPositive() {
		return nil, nil, domain.NewValidationError("amount", "must be positive")
	}

	reference := defaultAccountReference
	if args.OrderID != nil {
		if _, err := p.orderRepo.FindByID(ctx, *args.OrderID); err != nil {
			return nil, nil, fmt.Errorf("initiating payment: %w", err)
		}
		reference = "Order-" + strconv.FormatInt(*args.OrderID, 10)
	}

	result, pushErr := p.gateway.STKPush(ctx, domain.STKPushRequest{
		Phone:            phone,
		Amount:           args.Amount,
		AccountReference: reference,
		TransactionDesc:  "Payment for " + reference,
	})
	if pushErr != nil {
		return nil, nil, domain.NewGatewayError(pushErr)
	}
	if result.CheckoutRequestID == "" || result.ResponseCode != "0" {
		return nil, nil, domain.NewGatewayError(
			fmt.Errorf("request rejected: code `%s`: %s", result.ResponseCode, result.ResponseDescription),
		)
	}

	payment, createErr := p.paymentRepo.Create(ctx, repoargs.CreatePayment{
		OrderID:           args.OrderID,
		Method:            domain.PaymentMethodMpesa,
		Amount:            args.Amount,
		CheckoutRequestID: result.CheckoutRequestID,
		MerchantRequestID: result.MerchantRequestID,
		Phone:             phone,
	})
	if createErr != nil {
		return nil, nil, fmt.Errorf("initiating payment: %w", createErr)
	}
	return payment, result, nil
}

type ReconcileResult struct {
	Payment *domain.Payment
	// Order заполнен, если платеж успешен и привязан к заказу.
	Order *domain.Order
	// Duplicate повторная доставка колбэка, уже обработанного ранее. Ничего не изменено.
	Duplicate bool
}

// ReconcileCallback применяет результат оплаты из колбэка шлюза. Все изменения выполняются в одной транзакции
// под блокировкой строки платежа, поэтому повторная или параллельная доставка того же колбэка не приводит
// ни к повторному переводу заказа, ни к повторным уведомлениям.
func (p *PaymentService) ReconcileCallback(
	ctx context.Context,
	callback domain.PaymentCallback,
) (*ReconcileResult, error) {
	if callback.CheckoutRequestID == "" {
		return nil, domain.NewValidationError("CheckoutRequestID", "is required")
	}

	var result ReconcileResult
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		paymentRepo, paymentRepoErr :=
			uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if paymentRepoErr != nil {
			return paymentRepoErr //nolint:wrapcheck
		}

		payment, findErr := paymentRepo.FindByCheckoutIDForUpdate(c, callback.CheckoutRequestID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if payment.Status != domain.PaymentStatusPending {
			result = ReconcileResult{Payment: payment, Duplicate: true}
			return nil
		}

		status := domain.PaymentStatusFailed
		if callback.IsSuccess() {
			status = domain.PaymentStatusSuccess
		}
		updated, updErr := paymentRepo.UpdateResult(c, payment.ID, repoargs.PaymentResult{
			Status:        status,
			Amount:        callback.Amount,
			ReceiptNumber: callback.ReceiptNumber,
			Phone:         callback.Phone,
			ResultCode:    callback.ResultCode,
			ResultDesc:    callback.ResultDesc,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		result.Payment = updated

		order, customer, orderErr := p.markOrderPaid(c, tx, updated)
		if orderErr != nil {
			return orderErr
		}
		result.Order = order

		return p.enqueueNotifications(c, tx, updated, order, customer)
	})
	if txErr != nil {
		return nil, fmt.Errorf("reconciling callback %s: %w", callback.CheckoutRequestID, txErr)
	}
	return &result, nil
}

// markOrderPaid переводит связанный заказ в статус paid, если он еще ожидает оплаты. Для неуспешного
// или не привязанного к заказу платежа ничего не делает.
func (p *PaymentService) markOrderPaid(
	ctx context.Context,
	tx uow.TX,
	payment *domain.Payment,
) (*domain.Order, *domain.Customer, error) {
	if payment.Status != domain.PaymentStatusSuccess || payment.OrderID == nil {
		return nil, nil, nil
	}
	orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, nil, orderRepoErr //nolint:wrapcheck
	}
	order, updErr := orderRepo.MarkPaid(ctx, *payment.OrderID)
	if updErr != nil {
		return nil, nil, updErr //nolint:wrapcheck
	}

	if !p.notifications.Email {
		return order, nil, nil
	}
	customerRepo, customerRepoErr :=
		uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
	if customerRepoErr != nil {
		return nil, nil, customerRepoErr //nolint:wrapcheck
	}
	customer, customerErr := customerRepo.FindByID(ctx, order.CustomerID)
	if customerErr != nil {
		return nil, nil, customerErr //nolint:wrapcheck
	}
	return order, customer, nil
}

func (p *PaymentService) enqueueNotifications(
	ctx context.Context,
	tx uow.TX,
	payment *domain.Payment,
	order *domain.Order,
	customer *domain.Customer,
) error {
	events, eventsErr := p.notifications.paymentEvents(payment, order, customer, p.now())
	if eventsErr != nil {
		return eventsErr
	}
	if len(events) == 0 {
		return nil
	}
	outboxRepo, outboxRepoErr := uow.GetAs[OutboxRepository](tx, uow.RepositoryName(repoargs.OutboxRepoName))
	if outboxRepoErr != nil {
		return outboxRepoErr //nolint:wrapcheck
	}
	return outboxRepo.Enqueue(ctx, events) //nolint:wrapcheck
}

func (p *PaymentService) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := p.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payment, nil
}

func (p *PaymentService) List(ctx context.Context, filter repoargs.PaymentFilter) ([]domain.Payment, error) {
	payments, err := p.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payments, nil
}
