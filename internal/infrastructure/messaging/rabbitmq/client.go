// Package rabbitmq fans trip.recorded events out to every tripbook process
// sharing a data store, so each can drop stale route price memos.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/bnema/tripbook/internal/infrastructure/config"
	"github.com/bnema/tripbook/internal/logging"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	dialTimeout       = 30 * time.Second
	heartbeat         = 10 * time.Second
	maxReconnectDelay = 30 * time.Second
)

// Client is a RabbitMQ connection with auto-reconnect and topology setup.
type Client struct {
	url      string
	exchange string
	name     string
	logCtx   context.Context

	mu      sync.RWMutex
	conn    *amqp.Connection
	pubChan *amqp.Channel

	pubMu       sync.Mutex
	pubConfirms chan amqp.Confirmation

	closed    chan struct{}
	closeOnce sync.Once
	reconnect chan struct{}
}

// URL builds the AMQP URL for cfg.
func URL(cfg config.RabbitMQConfig) string {
	u := &url.URL{
		Scheme: "amqp",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		User:   url.UserPassword(cfg.User, cfg.Password),
		Path:   "/",
	}
	if cfg.VHost != "" && cfg.VHost != "/" {
		u.Path = "/" + cfg.VHost
	}
	return u.String()
}

// Connect dials the broker, declares the exchange and starts a background
// watcher that reconnects on failures.
func Connect(ctx context.Context, cfg config.RabbitMQConfig, clientName string) (*Client, error) {
	if cfg.Exchange == "" {
		return nil, errors.New("rabbitmq: exchange is required")
	}

	client := &Client{
		url:       URL(cfg),
		exchange:  cfg.Exchange,
		name:      clientName,
		logCtx:    logging.WithComponent(context.WithoutCancel(ctx), "rabbitmq"),
		closed:    make(chan struct{}),
		reconnect: make(chan struct{}, 1),
	}

	// single attempt here; retries happen in the watcher
	if err := client.connectOnce(); err != nil {
		return nil, err
	}

	go client.watch()

	return client, nil
}

// Exchange returns the topic exchange events are published to.
func (client *Client) Exchange() string {
	return client.exchange
}

// Close stops the watcher and closes AMQP resources. Safe to call twice.
func (client *Client) Close() {
	client.closeOnce.Do(func() { close(client.closed) })

	client.mu.Lock()
	if client.pubChan != nil {
		_ = client.pubChan.Close()
		client.pubChan = nil
	}
	if client.conn != nil {
		_ = client.conn.Close()
		client.conn = nil
	}
	client.mu.Unlock()
}

// dialConfig names the connection so the broker's management UI shows
// which tripbook build holds it.
func (client *Client) dialConfig() amqp.Config {
	props := amqp.NewConnectionProperties()
	if client.name != "" {
		props.SetClientConnectionName(client.name)
	}
	return amqp.Config{
		Heartbeat:  heartbeat,
		Locale:     "en_US",
		Dial:       amqp.DefaultDial(dialTimeout),
		Properties: props,
	}
}

func (client *Client) connectOnce() (err error) {
	log := logging.FromContext(client.logCtx)

	conn, err := amqp.DialConfig(client.url, client.dialConfig())
	if err != nil {
		log.Error().Err(err).Msg("failed to dial rabbitmq")
		return fmt.Errorf("rabbitmq dial failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = conn.Close()
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: failed to open channel: %w", err)
	}
	defer func() {
		if err != nil {
			_ = ch.Close()
		}
	}()

	if err = ch.ExchangeDeclare(client.exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: failed to declare exchange %s: %w", client.exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		return fmt.Errorf("rabbitmq: failed to enable confirms: %w", err)
	}

	// the previous confirms channel belongs to the old amqp channel, which
	// closes it on shutdown
	client.pubMu.Lock()
	client.pubConfirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	client.pubMu.Unlock()

	client.mu.Lock()
	if client.pubChan != nil && !client.pubChan.IsClosed() {
		_ = client.pubChan.Close()
	}
	client.conn = conn
	client.pubChan = ch
	client.mu.Unlock()

	go func(conn *amqp.Connection, ch *amqp.Channel) {
		connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
		chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))
		select {
		case <-client.closed:
			return
		case <-connClosed:
		case <-chClosed:
		}

		select {
		case client.reconnect <- struct{}{}:
		default:
		}
	}(conn, ch)

	log.Info().Str("exchange", client.exchange).Msg("rabbitmq connection established")
	return nil
}

// watch reconnects with exponential backoff until Close.
func (client *Client) watch() {
	log := logging.FromContext(client.logCtx)
	backoff := time.Second

	for {
		select {
		case <-client.closed:
			return
		case <-client.reconnect:
		}

		for {
			err := client.connectOnce()
			if err == nil {
				backoff = time.Second
				log.Info().Msg("reconnected to rabbitmq")
				break
			}
			log.Warn().Err(err).Dur("backoff", backoff).Msg("failed to reconnect to rabbitmq")

			select {
			case <-client.closed:
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxReconnectDelay)
		}
	}
}
