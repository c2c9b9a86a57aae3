package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, customer_id, total, status::text, payment_method::text, shipping_address`

const orderItemColumns = `id, order_id, product_id, quantity, price`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// CreateOrder создает заказ и его позиции. Позиции вставляются одним батчем, поэтому вызывать метод нужно
// внутри транзакции.
func (o *OrderRepository) CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders (customer_id, total, payment_method, shipping_address)
		VALUES ($1, $2, $3::payment_method, $4)
		RETURNING `+orderColumns,
		args.CustomerID, args.Total, string(args.PaymentMethod), args.ShippingAddress,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for customer %d", args.CustomerID)
	}

	items, itemsErr := o.insertItems(ctx, order.ID, args.Items)
	if itemsErr != nil {
		return nil, itemsErr
	}
	order.Items = items
	return order, nil
}

func (o *OrderRepository) insertItems(
	ctx context.Context,
	orderID int64,
	items []repoargs.CreateOrderItem,
) (result []domain.OrderItem, err error) {
	batch := new(pgx.Batch)
	for _, item := range items {
		batch.Queue(
			`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)
			RETURNING `+orderItemColumns,
			orderID, item.ProductID, item.Quantity, item.Price,
		)
	}
	br := o.conn.SendBatch(ctx, batch)
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = convertErr(closeErr, "inserting items for order %d", orderID)
		}
	}()

	result = make([]domain.OrderItem, len(items))
	for i := range items {
		item, scanErr := scanOrderItem(br.QueryRow())
		if scanErr != nil {
			return nil, convertErr(scanErr, "inserting item #%d for order %d", i, orderID)
		}
		result[i] = *item
	}
	return result, nil
}

// FindByID возвращает заказ вместе с позициями. Если заказ не найден - domain.ErrRecordNotFound.
func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by id %d", id)
	}
	if attachErr := o.attachItems(ctx, []*domain.Order{order}); attachErr != nil {
		return nil, attachErr
	}
	return order, nil
}

// List возвращает заказы по фильтру, отсортированные по дате создания по убыванию.
func (o *OrderRepository) List(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error) {
	b := newQueryBuilder()
	if filter.CustomerID != 0 {
		b.where("customer_id = $%d", filter.CustomerID)
	}
	if filter.Status != "" {
		b.where("status = $%d::order_status", string(filter.Status))
	}
	page, pageErr := b.paginateSQL(filter.Pagination)
	if pageErr != nil {
		return nil, convertErr(pageErr, "listing orders")
	}

	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders`+b.whereSQL()+` ORDER BY created_at DESC, id DESC`+page,
		b.args...,
	)
	if err != nil {
		return nil, convertErr(err, "listing orders")
	}
	orders, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Order, error) {
		return scanOrder(row)
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing orders")
	}

	if attachErr := o.attachItems(ctx, orders); attachErr != nil {
		return nil, attachErr
	}
	result := make([]domain.Order, len(orders))
	for i, order := range orders {
		result[i] = *order
	}
	return result, nil
}

func (o *OrderRepository) attachItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	byID := make(map[int64]*domain.Order, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
		byID[order.ID] = order
		order.Items = make([]domain.OrderItem, 0)
	}

	rows, err := o.conn.Query(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = ANY($1) ORDER BY id`, ids,
	)
	if err != nil {
		return convertErr(err, "getting items for orders %v", ids)
	}
	items, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.OrderItem, error) {
		return scanOrderItem(row)
	})
	if collectErr != nil {
		return convertErr(collectErr, "getting items for orders %v", ids)
	}
	for _, item := range items {
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, *item)
		}
	}
	return nil
}

// Update частично обновляет заказ. Переход статуса не проверяется.
func (o *OrderRepository) Update(ctx context.Context, id int64, args repoargs.UpdateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE orders SET
			status = COALESCE($2::order_status, status),
			payment_method = COALESCE($3::payment_method, payment_method),
			shipping_address = COALESCE($4, shipping_address),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+orderColumns,
		id, stringPtr(args.Status), stringPtr(args.PaymentMethod), args.ShippingAddress,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating order %d", id)
	}
	if attachErr := o.attachItems(ctx, []*domain.Order{order}); attachErr != nil {
		return nil, attachErr
	}
	return order, nil
}

// MarkPaid переводит ожидающий оплаты заказ в статус paid. Заказ в любом другом статусе не меняется
// и возвращается как есть.
func (o *OrderRepository) MarkPaid(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE orders SET status = 'paid', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+orderColumns,
		id,
	)
	order, err := scanOrder(row)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, convertErr(err, "marking order %d as paid", id)
	}
	return o.FindByID(ctx, id)
}

// CancelUnlessCompleted отменяет заказ одним условным UPDATE. Если заказа нет или он уже выполнен,
// вернется domain.ErrRecordNotFound.
func (o *OrderRepository) CancelUnlessCompleted(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE orders SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status <> 'completed'
		RETURNING `+orderColumns,
		id,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "cancelling order %d", id)
	}
	return order, nil
}

func (o *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := o.conn.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting order %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting order %d", id)
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.CustomerID,
		&order.Total,
		&order.Status,
		&order.PaymentMethod,
		&order.ShippingAddress,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}

func scanOrderItem(row pgx.Row) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := row.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &item, nil
}
