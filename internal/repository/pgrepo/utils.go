package pgrepo

import (
	"fmt"
	"math"
	"strings"

	"github.com/fsdevblog/storefront/internal/repository/repoargs"
)

const (
	defaultListLimit uint = 50
	maxListLimit     uint = 200
)

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода значения за рамки диапазона
// возвращает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

// queryBuilder собирает WHERE и LIMIT/OFFSET части запроса с позиционными аргументами.
type queryBuilder struct {
	conds []string
	args  []any
}

func newQueryBuilder(args ...any) *queryBuilder {
	return &queryBuilder{args: args}
}

// where добавляет условие. cond должен содержать ровно один глагол `%[1]d` (или `%d`) для номера аргумента.
func (b *queryBuilder) where(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

func (b *queryBuilder) whereSQL() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

func (b *queryBuilder) paginateSQL(p repoargs.Pagination) (string, error) {
	limit := p.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return "", limitErr
	}
	safeOffset, offsetErr := safeConvertUintToInt32(p.Offset)
	if offsetErr != nil {
		return "", offsetErr
	}
	b.args = append(b.args, safeLimit, safeOffset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(b.args)-1, len(b.args)), nil
}

// stringPtr приводит указатель на строковый тип к *string, nil остается nil.
func stringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
