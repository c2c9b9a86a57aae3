package pgrepo

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBuilder(t *testing.T) {
	b := newQueryBuilder(int64(7))
	b.where("status = $%d::order_status", "paid")
	b.where("(name ILIKE $%[1]d OR email ILIKE $%[1]d)", "%john%")

	assert.Equal(t, " WHERE status = $2::order_status AND (name ILIKE $3 OR email ILIKE $3)", b.whereSQL())

	page, err := b.paginateSQL(repoargs.Pagination{Limit: 1000, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, " LIMIT $4 OFFSET $5", page)
	assert.Equal(t, []any{int64(7), "paid", "%john%", int32(maxListLimit), int32(20)}, b.args)
}

func TestQueryBuilder_DefaultLimit(t *testing.T) {
	b := newQueryBuilder()
	assert.Empty(t, b.whereSQL())

	_, err := b.paginateSQL(repoargs.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, []any{int32(defaultListLimit), int32(0)}, b.args)

	_, overflowErr := newQueryBuilder().paginateSQL(repoargs.Pagination{Limit: 10, Offset: math.MaxInt32 + 1})
	assert.Error(t, overflowErr)
}

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique", err: &pgconn.PgError{Code: uniqueViolationCode}, want: domain.ErrDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: foreignKeyViolationCode}, want: domain.ErrValidation},
		{name: "wrapped unique", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: uniqueViolationCode}), want: domain.ErrDuplicateKey},
		{name: "other", err: errors.New("boom"), want: domain.ErrUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := convertErr(c.err, "finding order %d", 1)
			assert.ErrorIs(t, err, c.want)
			assert.Contains(t, err.Error(), "finding order 1")
		})
	}

	assert.NoError(t, convertErr(nil, "noop"))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, stringPtr[domain.OrderStatusType](nil))

	status := domain.OrderStatusPaid
	got := stringPtr(&status)
	require.NotNil(t, got)
	assert.Equal(t, "paid", *got)
}
