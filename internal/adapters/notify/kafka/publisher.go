package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dog-sitters/internal/domain/catalog"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher manda los cambios del catálogo al topic. La key es el ID de
// la entidad y el balancer Hash la manda siempre a la misma partición,
// así los cambios de una misma entidad quedan ordenados.
type Publisher struct {
	writer messageWriter
}

var _ catalog.Notifier = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, c catalog.Change) error {
	value, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding change: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(string(c.Kind) + ":" + c.ID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("publishing %s change %s: %w", c.Kind, c.ID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
