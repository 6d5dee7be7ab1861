package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/platform/logger"

	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type partitionReader interface {
	messageReader
	SetOffset(offset int64) error
}

// lookupPartitions y newPartitionReader se reemplazan en tests.
var (
	lookupPartitions   = kafka.LookupPartitions
	newPartitionReader = func(cfg kafka.ReaderConfig) partitionReader { return kafka.NewReader(cfg) }
)

// Listener consume los cambios y llama a onChange por cada uno.
// Sin GroupID: cada instancia tiene que ver todos los mensajes para
// refrescar su propio snapshot, así que hay un reader por partición.
type Listener struct {
	readers  []messageReader
	log      logger.Logger
	onChange func(ctx context.Context, c catalog.Change)
	mu       sync.Mutex
}

func NewListener(ctx context.Context, brokers []string, topic string, log logger.Logger, onChange func(ctx context.Context, c catalog.Change)) (*Listener, error) {
	partitions, err := partitionsOf(ctx, brokers, topic)
	if err != nil {
		return nil, err
	}

	l := &Listener{log: log, onChange: onChange}
	for _, p := range partitions {
		r := newPartitionReader(kafka.ReaderConfig{
			Brokers:   brokers,
			Topic:     topic,
			Partition: p.ID,
			MinBytes:  1,
			MaxBytes:  1 << 20,
		})
		// Solo interesan los cambios desde que arrancamos.
		if err := r.SetOffset(kafka.LastOffset); err != nil {
			_ = r.Close()
			l.close()
			return nil, fmt.Errorf("kafka: setting offset on %s/%d: %w", topic, p.ID, err)
		}
		l.readers = append(l.readers, r)
	}
	return l, nil
}

func partitionsOf(ctx context.Context, brokers []string, topic string) ([]kafka.Partition, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers")
	}
	var lastErr error
	for _, b := range brokers {
		ps, err := lookupPartitions(ctx, "tcp", b, topic)
		if err != nil {
			lastErr = err
			continue
		}
		if len(ps) == 0 {
			return nil, fmt.Errorf("kafka: topic %s has no partitions", topic)
		}
		return ps, nil
	}
	return nil, fmt.Errorf("kafka: looking up partitions of %s: %w", topic, lastErr)
}

// Run bloquea hasta que ctx se cancela o un reader falla; en ese caso
// corta los demás y devuelve el primer error.
func (l *Listener) Run(ctx context.Context) error {
	defer l.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, r := range l.readers {
		wg.Add(1)
		go func(r messageReader) {
			defer wg.Done()
			if err := l.consume(ctx, r); err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}(r)
	}
	wg.Wait()
	return firstErr
}

func (l *Listener) consume(ctx context.Context, r messageReader) error {
	for {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return err
		}

		var c catalog.Change
		if err := json.Unmarshal(msg.Value, &c); err != nil {
			l.log.Warn("kafka: skipping malformed change", map[string]any{
				"partition": msg.Partition,
				"offset":    msg.Offset,
				"error":     err.Error(),
			})
			continue
		}
		l.log.Debug("kafka: catalog change", map[string]any{"kind": string(c.Kind), "id": c.ID})

		l.mu.Lock()
		l.onChange(ctx, c)
		l.mu.Unlock()
	}
}

func (l *Listener) close() {
	for _, r := range l.readers {
		_ = r.Close()
	}
}
