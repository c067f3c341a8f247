package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/tversen/venue-booking-backend/internal/booking"
)

// Producer wraps a persistent kafka writer. One producer is shared across the
// process; Close must be called on shutdown to flush pending batches.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// KafkaNotifier publishes booking notifications to a topic for asynchronous
// delivery by the worker. Messages are keyed by booking reference so retries
// for one booking stay ordered within a partition.
type KafkaNotifier struct {
	producer *Producer
	timeout  time.Duration
}

func NewKafkaNotifier(producer *Producer) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, timeout: 5 * time.Second}
}

func (n *KafkaNotifier) NotifyRequester(b *booking.Booking, event booking.Event) error {
	return n.publish(newMessage(b, event, RecipientGuest))
}

func (n *KafkaNotifier) NotifyResourceOwner(b *booking.Booking, event booking.Event) error {
	return n.publish(newMessage(b, event, RecipientOwner))
}

func (n *KafkaNotifier) publish(m Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()
	return n.producer.Publish(ctx, m.Reference, m)
}
