package amqp

import (
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/metrics"
)

// Client manages the RabbitMQ connection and channel used to publish
// claim pipeline events. It tracks connection state so a lost broker shows
// up in liveness and metrics before the next publish fails.
type Client struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	mu        sync.RWMutex
	url       string
	connected bool
}

func NewClient(url string) (*Client, error) {
	client := &Client{
		url: url,
	}

	if err := client.connect(); err != nil {
		return nil, fmt.Errorf("failed to create AMQP client: %w", err)
	}

	return client, nil
}

func (c *Client) connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	c.conn = conn
	c.channel = ch
	c.connected = true
	metrics.BrokerConnected.Set(1)

	go c.watchConnection(conn)

	log.Info("AMQP client connected successfully")
	return nil
}

// watchConnection flips the client to disconnected when the broker drops
// the connection. A nil close error means Close was called locally.
func (c *Client) watchConnection(conn *amqp.Connection) {
	closeErr := make(chan *amqp.Error)
	conn.NotifyClose(closeErr)

	err := <-closeErr
	c.markDisconnected()
	if err != nil {
		log.Errorf("AMQP connection lost: %v", err)
	}
}

func (c *Client) markDisconnected() {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
	metrics.BrokerConnected.Set(0)
}

// Connected reports whether the broker connection is still up.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Channel returns the current channel (prefer Publisher over direct use)
func (c *Client) Channel() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channel
}

// Close closes the channel and connection
func (c *Client) Close() error {
	c.mu.Lock()
	c.connected = false
	metrics.BrokerConnected.Set(0)

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
	c.mu.Unlock()

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}

	log.Info("AMQP client closed successfully")
	return nil
}
