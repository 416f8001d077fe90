package rabbitmq

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/Tanmoy095/LogiSynapse/pkg/logger"
	"github.com/Tanmoy095/LogiSynapse/shared/contracts"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventPublisher puts shipment events on one durable queue.
type EventPublisher struct {
	client *RabbitmqClient
	queue  string
	logger logger.Logger
}

var _ contracts.Publisher = (*EventPublisher)(nil)

// NewEventPublisher declares queue and returns a publisher bound to it.
// The publisher owns client and closes it on Close.
func NewEventPublisher(client *RabbitmqClient, queue string, log logger.Logger) (*EventPublisher, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := client.CreateQueue(queue); err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return &EventPublisher{client: client, queue: queue, logger: log}, nil
}

func (p *EventPublisher) Publish(ctx context.Context, key string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal rabbitmq body: %w", err)
	}
	if err := p.client.Publish(ctx, p.queue, key, body); err != nil {
		p.logger.Warn("rabbitmq publish failed", "queue", p.queue, "key", key, "error", err)
		return fmt.Errorf("rabbitmq publish error: %w", err)
	}
	return nil
}

func (p *EventPublisher) Close() error {
	return p.client.Close()
}
