package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer reads notification messages from the topic the producer writes to.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks, decoding each record into a Message and passing it to
// handler. It returns on context cancellation or the first handler error.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Message) error) error {
	for {
		rec, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var msg Message
		if err := json.Unmarshal(rec.Value, &msg); err != nil {
			return fmt.Errorf("decode notification %q: %w", string(rec.Key), err)
		}

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}
