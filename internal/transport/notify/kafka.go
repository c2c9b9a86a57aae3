package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher публикует события об оплате в топик кафки. Ключ сообщения - CheckoutRequestID, поэтому
// события одного платежа попадают в одну партицию.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond, //nolint:mnd
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Deliver(ctx context.Context, event domain.OutboxEvent) error {
	msg, msgErr := kafkaMessage(event)
	if msgErr != nil {
		return msgErr
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish event %d: %w", event.ID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close() //nolint:wrapcheck
}

func kafkaMessage(event domain.OutboxEvent) (kafka.Message, error) {
	var payment domain.PaymentEvent
	if err := json.Unmarshal(event.Payload, &payment); err != nil {
		return kafka.Message{}, fmt.Errorf("%w: kafka event %d", ErrInvalidPayload, event.ID)
	}
	return kafka.Message{
		Key:   []byte(payment.CheckoutRequestID),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(payment.Type)},
		},
		Time: payment.OccurredAt,
	}, nil
}
