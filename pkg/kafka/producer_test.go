package kafka

import (
	"context"
	"errors"
	"testing"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
	"github.com/Tanmoy095/LogiSynapse/shared/contracts"
)

// fakeWriter is a test writer that records messages written.
type fakeWriter struct {
	msgs   []skafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaProducerWithWriter(fw, nil)
	event := contracts.ShipmentEvent{
		Event:      contracts.EventShipmentCreated,
		Payload:    models.Shipment{ID: "ship-1", Status: "pending"},
		OccurredAt: "2025-03-01T09:00:00.000Z",
	}

	err := p.Publish(context.Background(), "ship-1", event)

	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)
	msg := fw.msgs[0]
	assert.Equal(t, "ship-1", string(msg.Key))

	var decoded contracts.ShipmentEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.Event, decoded.Event)
	assert.Equal(t, "ship-1", decoded.Payload.ID)
	assert.Equal(t, event.OccurredAt, decoded.OccurredAt)
}

func TestPublish_WriterError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker unavailable")}
	p := NewKafkaProducerWithWriter(fw, nil)

	err := p.Publish(context.Background(), "ship-1", map[string]string{"a": "b"})

	assert.ErrorIs(t, err, fw.err)
}

func TestPublish_UnencodableValue(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaProducerWithWriter(fw, nil)

	err := p.Publish(context.Background(), "ship-1", make(chan int))

	assert.Error(t, err)
	assert.Empty(t, fw.msgs)
}

func TestClose(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaProducerWithWriter(fw, nil)

	require.NoError(t, p.Close())
	assert.True(t, fw.closed)
}
