// Package rabbitmq delivers ready-for-service alerts to staff over an AMQP
// fanout exchange. Expediter displays and pager bridges consume from queues
// bound to the exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kitchen/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const alertExchange = "ready_alerts"

// Config holds the broker connection parameters.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
}

// alertMessage is the wire form of a ready alert.
type alertMessage struct {
	OrderID  string    `json:"order_id"`
	StaffID  string    `json:"staff_id"`
	Location string    `json:"location"`
	ReadyAt  time.Time `json:"ready_at"`
}

// Notifier publishes ready alerts to RabbitMQ. It implements
// ports.ReadyNotifier.
type Notifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewNotifier connects to the broker and declares the alert exchange.
func NewNotifier(cfg Config) (*Notifier, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(alertExchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", alertExchange, err)
	}

	return &Notifier{conn: conn, ch: ch}, nil
}

// NotifyReady publishes the alert as a persistent JSON message.
func (n *Notifier) NotifyReady(ctx context.Context, alert ports.ReadyAlert) error {
	body, err := json.Marshal(alertMessage{
		OrderID:  alert.OrderID.String(),
		StaffID:  alert.StaffID.String(),
		Location: alert.Location,
		ReadyAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.ch.PublishWithContext(ctx, alertExchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

// Close releases the channel and connection.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}
