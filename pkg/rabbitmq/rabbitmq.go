package rabbitmq

import (
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// orderQueue receives every order lifecycle event (order.created,
// order.status_updated). Routing keys travel in the message type field.
const orderQueue = "order_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient creates a new RabbitMQ client. It connects to RabbitMQ, sets up
// a channel, and declares the order event queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		orderQueue, // name
		true,       // durable (persists messages across broker restarts)
		false,      // delete when unused
		false,      // exclusive (only one connection can use it)
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", orderQueue, err)
	}

	log.Printf("RabbitMQ client connected and %s queue declared.", orderQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends an order event to the order event queue. The routing key
// (e.g. "order.created") is carried as the message type so consumers can
// dispatch on it.
func (c *Client) Publish(routingKey string, body []byte) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	err := c.channel.Publish(
		"",         // exchange: default exchange
		orderQueue, // routing key: the queue name
		false,      // mandatory: if true, returns message if it cannot be routed
		false,      // immediate: if true, returns message if it cannot be delivered to any consumer
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         routingKey,
			Body:         body,
			DeliveryMode: amqp.Persistent, // Make message persistent
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Printf(" [x] Sent %s event: %s", routingKey, body)
	return nil
}

// ConsumeOrderEvents starts a goroutine to listen for messages on the order
// event queue. Messages are acked on successful handling and nacked with
// requeue when the handler fails.
func (c *Client) ConsumeOrderEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := c.channel.QueueDeclare(
		orderQueue, // name
		true,       // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag: unique identifier for the consumer
		false,      // auto-ack: set to false to manually acknowledge messages
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf(" [*] Waiting for order events. To exit press CTRL+C")

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				// Careful with requeueing to avoid infinite loops for unprocessable messages.
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}
