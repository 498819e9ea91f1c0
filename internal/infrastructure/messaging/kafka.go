package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/sangkips/snacksbunk-pos/internal/application/service"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaBillPublisher writes bill events to a Kafka topic keyed by bill id
type KafkaBillPublisher struct {
	Writer messageWriter
}

// NewKafkaBillPublisher creates a publisher for the given brokers and topic
func NewKafkaBillPublisher(brokers []string, topic string) *KafkaBillPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
	}
	log.Printf("[kafka] publishing bill events to %s on %v", topic, brokers)
	return &KafkaBillPublisher{Writer: writer}
}

func (p *KafkaBillPublisher) Publish(ctx context.Context, event service.BillEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}
	err = p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BillID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event for bill #%d: %w", event.Type, event.BillNumber, err)
	}
	return nil
}

// Close flushes pending messages and closes the writer
func (p *KafkaBillPublisher) Close() error {
	return p.Writer.Close()
}
