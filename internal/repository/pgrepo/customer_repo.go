package pgrepo

import (
	"context"
	"strings"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, created_at, updated_at, name, email, phone, password_hash, role::text, status::text`

type CustomerRepository struct {
	conn uow.DBTX
}

func NewCustomerRepository(conn uow.DBTX) *CustomerRepository {
	return &CustomerRepository{conn: conn}
}

// Create создает покупателя. Email приводится к нижнему регистру, при его конфликте вернется
// domain.ErrDuplicateKey.
func (c *CustomerRepository) Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error) {
	role := args.Role
	if role == "" {
		role = domain.CustomerRoleCustomer
	}
	row := c.conn.QueryRow(ctx,
		`INSERT INTO customers (name, email, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5::customer_role)
		RETURNING `+customerColumns,
		args.Name, strings.ToLower(args.Email), args.Phone, args.PasswordHash, string(role),
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "creating customer")
	}
	return customer, nil
}

func (c *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer by id %d", id)
	}
	return customer, nil
}

// FindByEmail ищет покупателя по email без учета регистра.
func (c *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := c.conn.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE email = $1`, strings.ToLower(email),
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer by email %s", email)
	}
	return customer, nil
}

// List возвращает покупателей с количеством оплаченных заказов и суммой покупок.
func (c *CustomerRepository) List(
	ctx context.Context,
	filter repoargs.CustomerFilter,
) ([]domain.CustomerWithStats, error) {
	b := newQueryBuilder(paidStatuses())
	if filter.Search != "" {
		b.where("(c.name ILIKE $%[1]d OR c.email ILIKE $%[1]d)", "%"+filter.Search+"%")
	}
	if filter.Status != "" {
		b.where("c.status = $%d::customer_status", string(filter.Status))
	}
	page, pageErr := b.paginateSQL(filter.Pagination)
	if pageErr != nil {
		return nil, convertErr(pageErr, "listing customers")
	}

	rows, err := c.conn.Query(ctx,
		`SELECT c.id, c.created_at, c.updated_at, c.name, c.email, c.phone, c.password_hash,
			c.role::text, c.status::text, COUNT(o.id), COALESCE(SUM(o.total), 0)
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id AND o.status::text = ANY($1)`+
			b.whereSQL()+
			` GROUP BY c.id ORDER BY c.id DESC`+page,
		b.args...,
	)
	if err != nil {
		return nil, convertErr(err, "listing customers")
	}
	customers, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CustomerWithStats, error) {
		var cs domain.CustomerWithStats
		scanErr := row.Scan(
			&cs.ID, &cs.CreatedAt, &cs.UpdatedAt, &cs.Name, &cs.Email, &cs.Phone, &cs.PasswordHash,
			&cs.Role, &cs.Status, &cs.OrdersCount, &cs.TotalSpent,
		)
		return cs, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing customers")
	}
	return customers, nil
}

func (c *CustomerRepository) Update(
	ctx context.Context,
	id int64,
	args repoargs.UpdateCustomer,
) (*domain.Customer, error) {
	row := c.conn.QueryRow(ctx,
		`UPDATE customers SET
			name = COALESCE($2, name),
			phone = COALESCE($3, phone),
			role = COALESCE($4::customer_role, role),
			status = COALESCE($5::customer_status, status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+customerColumns,
		id, args.Name, args.Phone, stringPtr(args.Role), stringPtr(args.Status),
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "updating customer %d", id)
	}
	return customer, nil
}

func (c *CustomerRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := c.conn.Exec(ctx,
		`UPDATE customers SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash,
	)
	if err != nil {
		return convertErr(err, "updating password of customer %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating password of customer %d", id)
	}
	return nil
}

func (c *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := c.conn.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting customer %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting customer %d", id)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(
		&customer.ID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.PasswordHash,
		&customer.Role,
		&customer.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &customer, nil
}

func paidStatuses() []string {
	statuses := make([]string, len(domain.PaidStatuses))
	for i, s := range domain.PaidStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// TokenRepository хранит отозванные refresh токены.
type TokenRepository struct {
	conn uow.DBTX
}

func NewTokenRepository(conn uow.DBTX) *TokenRepository {
	return &TokenRepository{conn: conn}
}

// Revoke помечает токен с идентификатором jti отозванным. Возвращает false, если токен уже был отозван ранее,
// что позволяет ротации refresh токена выполниться только один раз.
func (t *TokenRepository) Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) (bool, error) {
	tag, err := t.conn.Exec(ctx,
		`INSERT INTO revoked_tokens (jti, expires_at) VALUES ($1, $2) ON CONFLICT (jti) DO NOTHING`,
		jti, expiresAt,
	)
	if err != nil {
		return false, convertErr(err, "revoking token %s", jti)
	}
	return tag.RowsAffected() == 1, nil
}

// PurgeExpired удаляет записи об отозванных токенах, срок которых уже истек.
func (t *TokenRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := t.conn.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, convertErr(err, "purging expired tokens")
	}
	return tag.RowsAffected(), nil
}
