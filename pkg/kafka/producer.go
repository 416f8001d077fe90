package kafka

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	skafka "github.com/segmentio/kafka-go"

	"github.com/Tanmoy095/LogiSynapse/pkg/logger"
	"github.com/Tanmoy095/LogiSynapse/shared/contracts"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Writer defines the subset of segmentio kafka.Writer we need. This makes the producer testable.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// KafkaProducer publishes shipment events to one topic, keyed by shipment id.
type KafkaProducer struct {
	writer Writer
	logger logger.Logger
}

var _ contracts.Publisher = (*KafkaProducer)(nil)

// NewKafkaProducer creates a producer writing to the provided broker/topic.
// Messages are hash-partitioned on their key so one shipment's events stay in order.
func NewKafkaProducer(brokerURL, topic string, log logger.Logger) *KafkaProducer {
	w := &skafka.Writer{
		Addr:         skafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		WriteTimeout: 10 * time.Second,
	}
	return NewKafkaProducerWithWriter(w, log)
}

// NewKafkaProducerWithWriter allows injecting a test writer.
func NewKafkaProducerWithWriter(w Writer, log logger.Logger) *KafkaProducer {
	if log == nil {
		log = logger.Nop()
	}
	return &KafkaProducer{writer: w, logger: log}
}

// Publish marshals the value to JSON and writes a kafka message with the given key.
func (p *KafkaProducer) Publish(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal kafka value: %w", err)
	}
	msg := skafka.Message{
		Key:     []byte(key),
		Value:   b,
		Headers: []skafka.Header{{Key: "content-type", Value: []byte("application/json")}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("kafka write failed", "key", key, "error", err)
		return fmt.Errorf("kafka write error: %w", err)
	}
	p.logger.Debug("kafka message written", "key", key, "bytes", len(b))
	return nil
}

// Close closes the underlying writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
