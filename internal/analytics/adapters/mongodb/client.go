package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClientOptions struct {
	URI            string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// Connect opens a pooled client and pings the primary before returning it.
func Connect(ctx context.Context, opts ClientOptions, log *logrus.Logger) (*mongo.Client, error) {
	if opts.URI == "" {
		return nil, fmt.Errorf("mongodb connection uri is empty")
	}
	if opts.MaxPoolSize == 0 {
		opts.MaxPoolSize = 50
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	clientOptions := options.Client().ApplyURI(opts.URI).
		SetMaxPoolSize(opts.MaxPoolSize).
		SetConnectTimeout(opts.ConnectTimeout)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, 2*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("connected to mongodb")
	return client, nil
}

func Disconnect(ctx context.Context, client *mongo.Client, log *logrus.Logger) error {
	if err := client.Disconnect(ctx); err != nil {
		log.WithError(err).Error("failed to disconnect mongodb client")
		return err
	}
	log.Info("disconnected from mongodb")
	return nil
}
