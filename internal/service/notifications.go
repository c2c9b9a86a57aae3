package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
)

const (
	PaymentEventSuccess = "payment.success"
	PaymentEventFailed  = "payment.failed"
)

// Notifications какие каналы уведомлений включены. Отключенный канал не получает событий в outbox.
type Notifications struct {
	Email   bool
	Webhook bool
	Kafka   bool
}

var paymentReceiptTmpl = template.Must(template.New("receipt").Parse(`<p>Hi {{.Name}},</p>
<p>We have received your M-Pesa payment of <b>KES {{.Amount}}</b> for order #{{.OrderID}}.</p>
{{if .Receipt}}<p>M-Pesa receipt: <b>{{.Receipt}}</b></p>{{end}}
<p>Your order is now being prepared. Thank you for shopping with us!</p>
`))

// paymentEvents формирует события outbox для первого исхода платежа.
func (n Notifications) paymentEvents(
	payment *domain.Payment,
	order *domain.Order,
	customer *domain.Customer,
	now time.Time,
) ([]repoargs.EnqueueEvent, error) {
	event := domain.PaymentEvent{
		Type:              PaymentEventFailed,
		PaymentID:         payment.ID,
		OrderID:           payment.OrderID,
		CheckoutRequestID: payment.CheckoutRequestID,
		Status:            payment.Status,
		Amount:            payment.Amount,
		ReceiptNumber:     payment.ReceiptNumber,
		Phone:             payment.Phone,
		ResultDesc:        payment.ResultDesc,
		OccurredAt:        now.UTC(),
	}
	if payment.ResultCode != nil {
		event.ResultCode = *payment.ResultCode
	}
	success := payment.Status == domain.PaymentStatusSuccess
	if success {
		event.Type = PaymentEventSuccess
	}
	eventPayload, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		return nil, fmt.Errorf("marshalling payment event: %s", marshalErr.Error())
	}

	var events []repoargs.EnqueueEvent
	if n.Kafka {
		events = append(events, repoargs.EnqueueEvent{Kind: domain.OutboxKindKafka, Payload: eventPayload})
	}
	if !success || order == nil {
		return events, nil
	}

	if n.Webhook {
		events = append(events, repoargs.EnqueueEvent{Kind: domain.OutboxKindWebhook, Payload: eventPayload})
	}
	if n.Email && customer != nil && customer.Email != "" {
		email, emailErr := renderPaymentReceipt(payment, order, customer)
		if emailErr != nil {
			return nil, emailErr
		}
		events = append(events, repoargs.EnqueueEvent{Kind: domain.OutboxKindEmail, Payload: email})
	}
	return events, nil
}

func renderPaymentReceipt(payment *domain.Payment, order *domain.Order, customer *domain.Customer) ([]byte, error) {
	var html bytes.Buffer
	err := paymentReceiptTmpl.Execute(&html, map[string]any{
		"Name":    customer.Name,
		"Amount":  payment.Amount.StringFixed(2),
		"OrderID": order.ID,
		"Receipt": payment.ReceiptNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering payment receipt: %s", err.Error())
	}
	payload, marshalErr := json.Marshal(domain.EmailMessage{
		To:      customer.Email,
		Subject: fmt.Sprintf("Payment received for order #%d", order.ID),
		HTML:    html.String(),
	})
	if marshalErr != nil {
		return nil, fmt.Errorf("marshalling email: %s", marshalErr.Error())
	}
	return payload, nil
}
