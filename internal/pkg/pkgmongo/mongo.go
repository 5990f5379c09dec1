package pkgmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultTimeout bounds connect and ping when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// ErrMissingURI is returned when no connection string is configured.
var ErrMissingURI = errors.New("mongo: connection uri is empty")

// Client wraps a connected *mongo.Client.
type Client struct {
	client *mongo.Client
}

// Connect dials uri and pings the primary. The timeout covers both steps.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*Client, error) {
	if uri == "" {
		return nil, ErrMissingURI
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	return &Client{client: client}, nil
}

// Close disconnects the client.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
