package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel the client uses, so tests can fake it.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitmqClient struct {
	//conn is a tcp connection to rabbitmq server, nil when built from a bare channel
	conn *amqp.Connection
	chn  Channel
}

func NewClient(url string) (*RabbitmqClient, error) {
	//Dial the server
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	//Open a channel. This open a logical session inside the connection.
	chn, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return &RabbitmqClient{conn: conn, chn: chn}, nil
}

// NewClientWithChannel wraps an already open channel.
func NewClientWithChannel(chn Channel) *RabbitmqClient {
	return &RabbitmqClient{chn: chn}
}

// Close closes the channel, then the connection.
func (r *RabbitmqClient) Close() error {
	if err := r.chn.Close(); err != nil {
		return err
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// CreateQueue declares a durable queue. Declaring an existing queue is a no-op.
func (r *RabbitmqClient) CreateQueue(queueName string) error {
	_, err := r.chn.QueueDeclare(
		queueName, //name of queue
		true,      //durable
		false,     //delete when unused
		false,     //exclusive
		false,     //no-wait
		nil,       //arguments
	)
	return err
}

// Publish sends a persistent JSON message to queueName through the default exchange.
// key travels in the "key" header.
func (r *RabbitmqClient) Publish(ctx context.Context, queueName, key string, body []byte) error {
	return r.chn.PublishWithContext(
		ctx,
		"",        //exchange
		queueName, //routing key (queue name)
		false,     //mandatory
		false,     //immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Headers:      amqp.Table{"key": key},
			Body:         body,
		},
	)
}
