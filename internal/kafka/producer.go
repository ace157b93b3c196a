package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"ticketeiro/internal/models"
)

type Producer struct {
	Writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{Writer: writer}
}

// PublishEventCreated streams the created event to Kafka so listing and
// notification consumers can pick it up. Best effort; the caller only
// logs a failure.
func (p *Producer) PublishEventCreated(topic string, event models.Event) error {
	msgBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Topic: topic,
			Key:   []byte(event.ID),
			Value: msgBytes,
		},
	)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
