package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/avGenie/go-checkout-system/internal/app/converter"
	"github.com/avGenie/go-checkout-system/internal/app/entity"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes checkout events keyed by buyer, so one buyer's events keep
// their order within a partition.
type Kafka struct {
	writer messageWriter
}

func NewKafka(brokers []string, topic string) *Kafka {
	return &Kafka{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (k *Kafka) Publish(ctx context.Context, event entity.CheckoutEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("error while writing checkout event to kafka: %w", err)
	}

	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}

func buildMessage(event entity.CheckoutEvent) (kafka.Message, error) {
	data, err := json.Marshal(converter.ConvertCheckoutEventToOutput(event))
	if err != nil {
		return kafka.Message{}, fmt.Errorf("error while marshalling checkout event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.BuyerID.String()),
		Value: data,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}, nil
}

type Nop struct{}

func (Nop) Publish(context.Context, entity.CheckoutEvent) error { return nil }

func (Nop) Close() error { return nil }
