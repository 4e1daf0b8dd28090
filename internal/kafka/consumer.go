package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Consumer struct {
	reader *kafka.Reader
	logger *zap.Logger
}

func NewConsumer(brokers []string, groupID, topic string, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		logger: logger,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}

// ConsumeQuoteEvents decodes every message as a QuoteEvent. Undecodable
// messages are logged and skipped.
func (c *Consumer) ConsumeQuoteEvents(ctx context.Context, handler func(context.Context, QuoteEvent) error) error {
	return c.Consume(ctx, func(ctx context.Context, msg kafka.Message) error {
		event, ok := decodeQuoteEvent(msg.Value, c.logger)
		if !ok {
			return nil
		}
		return handler(ctx, event)
	})
}

func decodeQuoteEvent(data []byte, logger *zap.Logger) (QuoteEvent, bool) {
	var event QuoteEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Warn("decode quote event", zap.Error(err), zap.ByteString("payload", data))
		return QuoteEvent{}, false
	}
	return event, true
}
