package notify

import (
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const maxErrorBodyLen = 512

// Границы значения заголовка Retry-After в секундах.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60
)

// Пауза перед повторной доставкой события: удваивается с каждой неудачной попыткой.
const (
	baseRedeliveryDelay = 30 * time.Second
	maxRedeliveryDelay  = 30 * time.Minute
)

// redeliveryDelay пауза после неудачной попытки номер attempt (с 1), с разбросом 15%.
func redeliveryDelay(attempt int32) time.Duration {
	delay := baseRedeliveryDelay
	for i := int32(1); i < attempt && delay < maxRedeliveryDelay; i++ {
		delay *= 2
	}
	delay = min(delay, maxRedeliveryDelay)
	return time.Duration(jitter(float64(delay), 0.15, 0.15)) //nolint:mnd
}

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}

// checkStatus возвращает *StatusCodeError для ответов вне диапазона 2xx или *TooManyRequestError
// для http.StatusTooManyRequests.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(retryAfter(resp.Header.Get("Retry-After")))
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	return NewStatusCodeError(resp.StatusCode, string(body))
}

// retryAfter разбирает заголовок Retry-After в секундах. Пустое или выходящее за границы значение
// заменяется на defaultRetryAfter.
func retryAfter(header string) time.Duration {
	value, parseErr := decimal.NewFromString(header)
	if parseErr != nil ||
		value.LessThan(decimal.NewFromInt(minRetryAfter)) ||
		value.GreaterThan(decimal.NewFromInt(maxRetryAfter)) {
		value = decimal.NewFromInt(defaultRetryAfter)
	}
	return time.Duration(value.IntPart()) * time.Second
}
