package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
	}, nil
}

type OrderItemArgs struct {
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

type CreateOrderArgs struct {
	CustomerID int64
	Items      []OrderItemArgs
	// Total если nil, считается как сумма quantity*price по позициям.
	Total           *decimal.Decimal
	PaymentMethod   domain.PaymentMethodType
	ShippingAddress string
}

// Create создает заказ со статусом pending вместе с позициями в одной транзакции.
func (o *OrderService) Create(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	repoArgs, validateErr := o.prepareCreate(args)
	if validateErr != nil {
		return nil, validateErr
	}

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var createErr error
		order, createErr = repo.CreateOrder(c, *repoArgs)
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating order: %w", txErr)
	}
	return order, nil
}

// prepareCreate валидирует входные данные и приводит их к аргументам репозитория.
func (o *OrderService) prepareCreate(args CreateOrderArgs) (*repoargs.CreateOrder, error) {
	if args.CustomerID <= 0 {
		return nil, domain.NewValidationError("customer_id", "is required")
	}
	if len(args.Items) == 0 {
		return nil, domain.NewValidationError("products", "at least one product is required")
	}

	items := make([]repoargs.CreateOrderItem, len(args.Items))
	total := decimal.Zero
	for i, item := range args.Items {
		switch {
		case item.ProductID <= 0:
			return nil, domain.NewValidationError(fmt.Sprintf("products[%d].product_id", i), "is required")
		case item.Quantity <= 0:
			return nil, domain.NewValidationError(fmt.Sprintf("products[%d].quantity", i), "must be positive")
		case item.Price.IsNegative():
			return nil, domain.NewValidationError(fmt.Sprintf("products[%d].price", i), "must not be negative")
		}
		items[i] = repoargs.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	if args.Total != nil {
		if args.Total.IsNegative() {
			return nil, domain.NewValidationError("total", "must not be negative")
		}
		total = *args.Total
	}

	method := args.PaymentMethod
	if method == "" {
		method = domain.PaymentMethodMpesa
	}
	if !method.IsValid() {
		return nil, domain.NewValidationError("payment_method", "unknown payment method")
	}

	return &repoargs.CreateOrder{
		CustomerID:      args.CustomerID,
		Items:           items,
		Total:           total,
		PaymentMethod:   method,
		ShippingAddress: args.ShippingAddress,
	}, nil
}

func (o *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := o.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// List возвращает заказы, отсортированные по дате создания по убыванию.
func (o *OrderService) List(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown order status")
	}
	orders, err := o.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// Update административное изменение заказа. Допустим любой известный статус, таблица переходов не проверяется.
func (o *OrderService) Update(ctx context.Context, id int64, args repoargs.UpdateOrder) (*domain.Order, error) {
	if args.Status != nil && !args.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown order status")
	}
	if args.PaymentMethod != nil && !args.PaymentMethod.IsValid() {
		return nil, domain.NewValidationError("payment_method", "unknown payment method")
	}
	order, err := o.orderRepo.Update(ctx, id, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// Cancel отменяет заказ. Выполненный заказ отменить нельзя: вернется domain.ErrOrderCompleted, статус
// при этом не меняется. Повторная отмена уже отмененного заказа успешна.
func (o *OrderService) Cancel(ctx context.Context, id int64) (*domain.Order, error) {
	order, cancelErr := o.orderRepo.CancelUnlessCompleted(ctx, id)
	if cancelErr == nil {
		return order, nil
	}
	if !errors.Is(cancelErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("cancelling order %d: %w", id, cancelErr)
	}

	// Условный UPDATE ничего не изменил: заказа либо нет, либо он уже выполнен.
	existing, findErr := o.orderRepo.FindByID(ctx, id)
	if findErr != nil {
		return nil, fmt.Errorf("cancelling order %d: %w", id, findErr)
	}
	if existing.Status == domain.OrderStatusCompleted {
		return nil, domain.ErrOrderCompleted
	}
	return nil, fmt.Errorf("cancelling order %d: %w: status `%s`", id, domain.ErrUnknown, existing.Status)
}

func (o *OrderService) Delete(ctx context.Context, id int64) error {
	return o.orderRepo.Delete(ctx, id) //nolint:wrapcheck
}
