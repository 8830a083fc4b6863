package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tripdesk/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// BookingEvent mirrors the audit trail onto the bus for downstream
// consumers (notifications, reporting). The database audit row is the
// source of truth; this stream is best effort.
type BookingEvent struct {
	BookingID   string    `json:"booking_id"`
	BookingCode string    `json:"booking_code"`
	Action      string    `json:"action"`
	Kind        string    `json:"kind"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent)
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.AuditTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishBookingEvent is fire and forget. Admission and cancellation
// outcomes are already committed when this runs, so a publish failure is
// logged and dropped rather than surfaced to the caller.
func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Warn("booking event encode failed", "action", event.Action, "error", err.Error())
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingCode),
		Value: data,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Warn("booking event publish failed",
			"action", event.Action,
			"booking_code", event.BookingCode,
			"error", err.Error())
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ Publisher = (*KafkaPublisher)(nil)
