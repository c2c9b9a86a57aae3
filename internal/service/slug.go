package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
)

const maxSlugAttempts = 100

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify приводит строку к slug: нижний регистр, последовательности любых символов кроме латиницы и цифр
// заменяются на `-`, крайние `-` обрезаются.
func Slugify(s string) string {
	return strings.Trim(slugInvalidChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// withUniqueSlug вызывает save с кандидатами base, base-1, base-2 ... пока save возвращает
// domain.ErrDuplicateKey. Уникальность обеспечивает UNIQUE ограничение в БД.
func withUniqueSlug[T any](name string, save func(slug string) (T, error)) (T, error) {
	var zero T
	base := Slugify(name)
	if base == "" {
		return zero, domain.NewValidationError("name", "must contain letters or digits")
	}

	for i := range maxSlugAttempts {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		saved, err := save(candidate)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return zero, err
		}
	}
	return zero, fmt.Errorf("%w: no free slug for `%s` after %d attempts", domain.ErrDuplicateKey, base, maxSlugAttempts)
}
