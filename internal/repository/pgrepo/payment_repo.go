package pgrepo

import (
	"context"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, created_at, updated_at, order_id, method::text, amount, status::text,
	checkout_request_id, merchant_request_id, receipt_number, phone, result_code, result_desc`

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

// Create сохраняет платеж в статусе pending. Повтор checkout_request_id вернет domain.ErrDuplicateKey.
func (p *PaymentRepository) Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO payments (order_id, method, amount, checkout_request_id, merchant_request_id, phone)
		VALUES ($1, $2::payment_method, $3, $4, $5, $6)
		RETURNING `+paymentColumns,
		args.OrderID, string(args.Method), args.Amount, args.CheckoutRequestID, args.MerchantRequestID, args.Phone,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment `%s`", args.CheckoutRequestID)
	}
	return payment, nil
}

func (p *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment by id %d", id)
	}
	return payment, nil
}

// FindByCheckoutIDForUpdate ищет платеж по ключу корреляции шлюза и блокирует строку до конца транзакции.
func (p *PaymentRepository) FindByCheckoutIDForUpdate(ctx context.Context, checkoutID string) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE checkout_request_id = $1 FOR UPDATE`, checkoutID,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment by checkout id `%s`", checkoutID)
	}
	return payment, nil
}

// UpdateResult записывает результат платежа из колбэка шлюза.
func (p *PaymentRepository) UpdateResult(
	ctx context.Context,
	id int64,
	result repoargs.PaymentResult,
) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE payments SET
			status = $2::payment_status,
			amount = CASE WHEN $3::numeric > 0 THEN $3::numeric ELSE amount END,
			receipt_number = COALESCE(NULLIF($4, ''), receipt_number),
			phone = COALESCE(NULLIF($5, ''), phone),
			result_code = $6,
			result_desc = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+paymentColumns,
		id, string(result.Status), result.Amount, result.ReceiptNumber, result.Phone, result.ResultCode, result.ResultDesc,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "updating result of payment %d", id)
	}
	return payment, nil
}

func (p *PaymentRepository) List(ctx context.Context, filter repoargs.PaymentFilter) ([]domain.Payment, error) {
	b := newQueryBuilder()
	if filter.OrderID != 0 {
		b.where("order_id = $%d", filter.OrderID)
	}
	if filter.Status != "" {
		b.where("status = $%d::payment_status", string(filter.Status))
	}
	page, pageErr := b.paginateSQL(filter.Pagination)
	if pageErr != nil {
		return nil, convertErr(pageErr, "listing payments")
	}

	rows, err := p.conn.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments`+b.whereSQL()+` ORDER BY created_at DESC, id DESC`+page,
		b.args...,
	)
	if err != nil {
		return nil, convertErr(err, "listing payments")
	}
	payments, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		payment, scanErr := scanPayment(row)
		if scanErr != nil {
			return domain.Payment{}, scanErr
		}
		return *payment, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing payments")
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(
		&payment.ID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
		&payment.OrderID,
		&payment.Method,
		&payment.Amount,
		&payment.Status,
		&payment.CheckoutRequestID,
		&payment.MerchantRequestID,
		&payment.ReceiptNumber,
		&payment.Phone,
		&payment.ResultCode,
		&payment.ResultDesc,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &payment, nil
}
