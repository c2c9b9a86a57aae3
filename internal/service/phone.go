package service

import (
	"regexp"
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
)

var (
	phoneCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	phoneRegexp  = regexp.MustCompile(`^(?:\+?254|0)?([17]\d{8})$`)
)

// NormalizePhone приводит кенийский мобильный номер к виду 254XXXXXXXXX, который принимает шлюз.
// Принимаются номера вида 07XXXXXXXX, 01XXXXXXXX, +2547XXXXXXXX, 2547XXXXXXXX и 7XXXXXXXX.
func NormalizePhone(phone string) (string, error) {
	cleaned := phoneCleaner.Replace(strings.TrimSpace(phone))
	if cleaned == "" {
		return "", domain.NewValidationError("phone", "is required")
	}
	m := phoneRegexp.FindStringSubmatch(cleaned)
	if m == nil {
		return "", domain.NewValidationError("phone", "must be a valid Kenyan mobile number")
	}
	return "254" + m[1], nil
}
