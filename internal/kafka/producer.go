package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// BookingEvent is published after every committed supplier order. The
// booking_unpersisted variant is the reconciliation signal for records that
// exist at the supplier but failed the local write.
type BookingEvent struct {
	Type            string    `json:"type"`
	PNRReference    string    `json:"pnr_reference"`
	SupplierOrderID string    `json:"supplier_order_id"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	DepartureDate   string    `json:"departure_date"`
	TotalPriceDZD   int64     `json:"total_price_dzd"`
	Status          string    `json:"status"`
	Persisted       bool      `json:"persisted"`
	Email           string    `json:"email"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
