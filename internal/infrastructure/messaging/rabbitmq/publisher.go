package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/domain/entity"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// TripPublisher publishes trip.recorded events on the client's exchange.
type TripPublisher struct {
	client *Client
}

var _ port.TripEventPublisher = (*TripPublisher)(nil)

// NewTripPublisher constructs a TripPublisher using the provided client.
func NewTripPublisher(client *Client) *TripPublisher {
	return &TripPublisher{client: client}
}

// PublishTripRecorded announces trip to other processes.
func (p *TripPublisher) PublishTripRecorded(ctx context.Context, trip *entity.Trip) error {
	body, err := json.Marshal(NewTripRecordedEvent(trip))
	if err != nil {
		return fmt.Errorf("failed to encode trip.recorded event: %w", err)
	}
	return p.client.PublishMessage(ctx, RoutingKeyTripRecorded, body)
}

// PublishMessage publishes a persistent JSON message and waits for the
// broker confirm.
func (client *Client) PublishMessage(ctx context.Context, routingKey string, body []byte) error {
	client.mu.RLock()
	ch := client.pubChan
	conn := client.conn
	client.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return errors.New("rabbitmq: connection is not open")
	}
	if ch == nil || ch.IsClosed() {
		return errors.New("rabbitmq: publish channel is not open")
	}

	client.pubMu.Lock()
	defer client.pubMu.Unlock()
	confirms := client.pubConfirms

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := ch.PublishWithContext(ctx, client.exchange, routingKey, false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}

	select {
	case c, ok := <-confirms:
		if !ok {
			return errors.New("rabbitmq: confirm stream closed")
		}
		if !c.Ack {
			return errors.New("rabbitmq: publish not acknowledged")
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
