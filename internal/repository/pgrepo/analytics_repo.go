package pgrepo

import (
	"context"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const topProductsLimit = 5

type AnalyticsRepository struct {
	conn uow.DBTX
}

func NewAnalyticsRepository(conn uow.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{conn: conn}
}

// Dashboard собирает сводку по магазину. Выручка считается только по оплаченным заказам
// (paid, shipped, completed), дневная статистика за последние days дней.
func (a *AnalyticsRepository) Dashboard(ctx context.Context, days int) (*domain.Dashboard, error) {
	dashboard := domain.Dashboard{OrdersByStatus: make(map[domain.OrderStatusType]int64)}
	paid := paidStatuses()

	err := a.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COUNT(*) FROM orders WHERE status::text = ANY($1)`, paid,
	).Scan(&dashboard.TotalRevenue, &dashboard.PaidOrders)
	if err != nil {
		return nil, convertErr(err, "calculating revenue")
	}

	err = a.conn.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM customers WHERE role = 'customer'),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM repair_requests WHERE status = 'pending')`,
	).Scan(&dashboard.CustomersTotal, &dashboard.ProductsTotal, &dashboard.PendingRepairs)
	if err != nil {
		return nil, convertErr(err, "counting totals")
	}

	rows, err := a.conn.Query(ctx, `SELECT status::text, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, convertErr(err, "counting orders by status")
	}
	var (
		status domain.OrderStatusType
		count  int64
	)
	_, err = pgx.ForEachRow(rows, []any{&status, &count}, func() error {
		dashboard.OrdersByStatus[status] = count
		return nil
	})
	if err != nil {
		return nil, convertErr(err, "counting orders by status")
	}

	rows, err = a.conn.Query(ctx,
		`SELECT p.id, p.name, SUM(i.quantity)::bigint, SUM(i.quantity * i.price)
		FROM order_items i
			JOIN orders o ON o.id = i.order_id
			JOIN products p ON p.id = i.product_id
		WHERE o.status::text = ANY($1)
		GROUP BY p.id, p.name
		ORDER BY 4 DESC, p.id
		LIMIT $2`,
		paid, topProductsLimit,
	)
	if err != nil {
		return nil, convertErr(err, "calculating top products")
	}
	dashboard.TopProducts, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProductSales, error) {
		var sales domain.ProductSales
		scanErr := row.Scan(&sales.ProductID, &sales.Name, &sales.Quantity, &sales.Revenue)
		return sales, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "calculating top products")
	}

	rows, err = a.conn.Query(ctx,
		`SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE status::text = ANY($1) AND created_at >= NOW() - make_interval(days => $2)
		GROUP BY day
		ORDER BY day`,
		paid, days,
	)
	if err != nil {
		return nil, convertErr(err, "calculating daily sales")
	}
	dashboard.DailySales, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailySales, error) {
		var sales domain.DailySales
		scanErr := row.Scan(&sales.Day, &sales.Orders, &sales.Revenue)
		return sales, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "calculating daily sales")
	}

	return &dashboard, nil
}
