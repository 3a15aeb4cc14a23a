// Package events publishes booking lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/logger"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// publishTimeout bounds a publish made on the request path after commit.
const publishTimeout = 2 * time.Second

type Producer struct {
	topic   string
	writer  messageWriter
	timeout time.Duration
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: publishTimeout,
		MaxAttempts:  2,
	}
	return &Producer{topic: topic, writer: writer, timeout: publishTimeout}
}

// PublishBookingEvent writes event keyed by booking id, so every event of
// one booking lands on the same partition in order.
func (p *Producer) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	key := strconv.FormatInt(event.BookingID, 10)
	logger.ExternalServiceCall("kafka", "PublishBookingEvent", "topic", p.topic, "key", key, "type", event.Type)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	logger.ExternalServiceResult("kafka", "PublishBookingEvent", err, "topic", p.topic, "key", key)
	if err != nil {
		return fmt.Errorf("write booking event: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
