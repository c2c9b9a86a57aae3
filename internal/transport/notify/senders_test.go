package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendMailer(t *testing.T) {
	var got sendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer server.Close()

	mailer, err := NewResendMailer("re_test", "shop@example.com")
	require.NoError(t, err)
	mailer.baseURL = server.URL

	payload, _ := json.Marshal(domain.EmailMessage{To: "jane@example.com", Subject: "Hi", HTML: "<p>Hi</p>"})
	require.NoError(t, mailer.Deliver(t.Context(), domain.OutboxEvent{ID: 1, Payload: payload}))

	assert.Equal(t, "shop@example.com", got.From)
	assert.Equal(t, []string{"jane@example.com"}, got.To)
	assert.Equal(t, "Hi", got.Subject)
}

func TestResendMailerErrors(t *testing.T) {
	_, noKeyErr := NewResendMailer("", "shop@example.com")
	require.Error(t, noKeyErr)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid to"}`))
	}))
	defer server.Close()

	mailer, err := NewResendMailer("re_test", "shop@example.com")
	require.NoError(t, err)
	mailer.baseURL = server.URL

	invalidErr := mailer.Deliver(t.Context(), domain.OutboxEvent{ID: 1, Payload: []byte(`{}`)})
	require.ErrorIs(t, invalidErr, ErrInvalidPayload)

	payload, _ := json.Marshal(domain.EmailMessage{To: "x@example.com"})
	sendErr := mailer.Deliver(t.Context(), domain.OutboxEvent{ID: 2, Payload: payload})
	var statusErr *StatusCodeError
	require.ErrorAs(t, sendErr, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
}

func TestWebhookSender(t *testing.T) {
	var (
		body    []byte
		eventID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		eventID = r.Header.Get("X-Event-ID")
		switch eventID {
		case "13":
			w.WriteHeader(http.StatusBadGateway)
		case "14":
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	sender := NewWebhookSender(server.URL)
	payload := []byte(`{"type":"payment.success","payment_id":1}`)

	require.NoError(t, sender.Deliver(t.Context(), domain.OutboxEvent{ID: 12, Payload: payload}))
	assert.JSONEq(t, string(payload), string(body))
	assert.Equal(t, "12", eventID)

	err := sender.Deliver(t.Context(), domain.OutboxEvent{ID: 13, Payload: payload})
	var statusErr *StatusCodeError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)

	err = sender.Deliver(t.Context(), domain.OutboxEvent{ID: 14, Payload: payload})
	var tooManyReq *TooManyRequestError
	require.ErrorAs(t, err, &tooManyReq)
	assert.Equal(t, 2*time.Second, tooManyReq.RetryAfter)
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		header string
		want   time.Duration
	}{
		{header: "5", want: 5 * time.Second},
		{header: "120", want: 120 * time.Second},
		{header: "", want: defaultRetryAfter * time.Second},
		{header: "0", want: defaultRetryAfter * time.Second},
		{header: "3600", want: defaultRetryAfter * time.Second},
		{header: "Wed, 21 Oct 2015 07:28:00 GMT", want: defaultRetryAfter * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, retryAfter(tt.header))
		})
	}
}

func TestRedeliveryDelay(t *testing.T) {
	tests := []struct {
		attempt int32
		want    time.Duration
	}{
		{attempt: 1, want: baseRedeliveryDelay},
		{attempt: 2, want: 2 * baseRedeliveryDelay},
		{attempt: 4, want: 8 * baseRedeliveryDelay},
		{attempt: 50, want: maxRedeliveryDelay},
	}
	for _, tt := range tests {
		got := redeliveryDelay(tt.attempt)
		assert.InDelta(t, float64(tt.want), float64(got), float64(tt.want)*0.16, "attempt %d", tt.attempt)
	}
}

func TestKafkaMessage(t *testing.T) {
	occurred := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	payload, _ := json.Marshal(domain.PaymentEvent{
		Type:              "payment.success",
		CheckoutRequestID: "ws_CO_1",
		OccurredAt:        occurred,
	})

	msg, err := kafkaMessage(domain.OutboxEvent{ID: 1, Payload: payload})
	require.NoError(t, err)
	assert.Equal(t, []byte("ws_CO_1"), msg.Key)
	assert.Equal(t, []byte(payload), msg.Value)
	assert.True(t, occurred.Equal(msg.Time))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "payment.success", string(msg.Headers[0].Value))

	_, badErr := kafkaMessage(domain.OutboxEvent{ID: 2, Payload: []byte(`not json`)})
	require.ErrorIs(t, badErr, ErrInvalidPayload)
}
