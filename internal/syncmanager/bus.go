package syncmanager

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// Bus is the narrow transport interface the manager publishes and
// subscribes through. The production implementation is Redis pub/sub;
// tests substitute an in-memory bus.
type Bus interface {
	Publish(ctx context.Context, payload []byte) error
	Subscribe(ctx context.Context) (<-chan []byte, error)
	Close() error
}

// RedisBus carries sync messages over one Redis pub/sub channel.
type RedisBus struct {
	client  *redis.Client
	channel string
}

// RedisBusConfig holds the connection parameters for the sync channel.
type RedisBusConfig struct {
	Address  string
	Password string
	TLS      bool
	Channel  string
}

// NewRedisBus connects to Redis and verifies the connection with a ping.
func NewRedisBus(cfg RedisBusConfig) (*RedisBus, error) {
	opts := &redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisBus{client: client, channel: cfg.Channel}, nil
}

// Publish sends one message to the sync channel.
func (b *RedisBus) Publish(ctx context.Context, payload []byte) error {
	return b.client.Publish(ctx, b.channel, payload).Err()
}

// Subscribe returns a channel of raw inbound messages. The channel closes
// when the subscription dies or the bus is closed.
func (b *RedisBus) Subscribe(ctx context.Context) (<-chan []byte, error) {
	sub := b.client.Subscribe(ctx, b.channel)

	// Force the subscription handshake so setup errors surface here
	// instead of inside the listener goroutine.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan []byte)

	go func() {
		defer close(out)

		for msg := range sub.Channel() {
			out <- []byte(msg.Payload)
		}
	}()

	return out, nil
}

// Close shuts the connection down, terminating any subscription.
func (b *RedisBus) Close() error {
	return b.client.Close()
}
