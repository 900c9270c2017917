package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/logging"
	amqp "github.com/rabbitmq/amqp091-go"
)

const handlerTimeout = 30 * time.Second

// DeliveryHandler processes one message body. A returned error drops the
// message.
type DeliveryHandler func(ctx context.Context, body []byte) error

// newConsumerChannel returns a fresh channel with prefetch (QoS) applied.
func (client *Client) newConsumerChannel(prefetch int) (*amqp.Channel, error) {
	client.mu.RLock()
	conn := client.conn
	client.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return nil, errors.New("rabbitmq: connection is not ready")
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	if prefetch > 0 {
		if err := ch.Qos(prefetch, 0, false); err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("rabbitmq: set QoS (prefetch=%d): %w", prefetch, err)
		}
	}
	return ch, nil
}

// Consume binds queue to routingKey on the client's exchange and delivers
// messages to handler with manual acks until ctx is done or the channel
// closes. An empty queue name declares a server-named exclusive queue.
func (client *Client) Consume(ctx context.Context, queue, routingKey string, prefetch int, handler DeliveryHandler) error {
	ch, err := client.newConsumerChannel(prefetch)
	if err != nil {
		return err
	}
	defer ch.Close()

	exclusive := queue == ""
	q, err := ch.QueueDeclare(queue, !exclusive, exclusive, exclusive, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq: declare queue %q: %w", queue, err)
	}
	if err := ch.QueueBind(q.Name, routingKey, client.exchange, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: bind queue %s to %s: %w", q.Name, client.exchange, err)
	}

	deliveries, err := ch.Consume(q.Name, "", false, exclusive, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq: consume(%s): %w", q.Name, err)
	}

	chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))

	for {
		select {
		case <-ctx.Done():
			return nil

		case cerr := <-chClosed:
			if cerr != nil {
				return fmt.Errorf("rabbitmq: channel closed while consuming %s: %w", q.Name, cerr)
			}
			return nil

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			hCtx, cancel := context.WithTimeout(ctx, handlerTimeout)
			err := handler(hCtx, d.Body)
			cancel()

			if err != nil {
				logging.FromContext(ctx).Warn().Err(err).Str("queue", q.Name).Msg("dropping message")
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// consumeFunc matches Client.Consume.
type consumeFunc func(ctx context.Context, queue, routingKey string, prefetch int, handler DeliveryHandler) error

// InvalidationConsumer drops memoized route prices when another process
// records a trip.
type InvalidationConsumer struct {
	consume    consumeFunc
	lookup     port.RoutePriceLookup
	queue      string
	retryDelay time.Duration
}

// NewInvalidationConsumer wires lookup to trip.recorded events. An empty
// queue gives this process its own exclusive queue.
func NewInvalidationConsumer(client *Client, lookup port.RoutePriceLookup, queue string) *InvalidationConsumer {
	c := &InvalidationConsumer{lookup: lookup, queue: queue, retryDelay: time.Second}
	if client != nil {
		c.consume = client.Consume
	}
	return c
}

// Run consumes until ctx is done, resubscribing after channel failures.
// Events published while unsubscribed are lost, so every resubscription
// first drops the whole memo.
func (c *InvalidationConsumer) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "price-invalidation")
	log := logging.FromContext(ctx)

	if c.consume == nil {
		return errors.New("rabbitmq: invalidation consumer has no client")
	}

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			c.lookup.InvalidateAll()
			log.Debug().Int("attempt", attempt).Msg("resubscribed, route price memo cleared")
		}

		err := c.consume(ctx, c.queue, RoutingKeyTripRecorded, 16, c.Handle)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			log.Warn().Err(err).Msg("invalidation consumer stopped, retrying")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.retryDelay):
		}
	}
}

// Handle invalidates the route named by one trip.recorded body.
func (c *InvalidationConsumer) Handle(ctx context.Context, body []byte) error {
	event, err := DecodeTripRecordedEvent(body)
	if err != nil {
		return err
	}

	route := event.Route()
	c.lookup.InvalidateRoutePrice(route.Origin, route.Destination)
	logging.FromContext(ctx).Debug().
		Str("route", route.String()).
		Int64("trip_id", event.TripID).
		Msg("route price invalidated")
	return nil
}
