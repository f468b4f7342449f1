package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"shop-analytics-service/internal/analytics/adapters/mongodb"
	"shop-analytics-service/internal/analytics/adapters/postgres"
	"shop-analytics-service/internal/analytics/core/ports"
	"shop-analytics-service/internal/config"

	_ "github.com/lib/pq"
)

// openStore connects the configured backend. The returned close func
// releases the underlying client.
func openStore(ctx context.Context, cfg *config.Configuration, log *logrus.Logger) (ports.StorePort, func(context.Context) error, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	default:
		return openMongo(ctx, cfg, log)
	}
}

func openMongo(ctx context.Context, cfg *config.Configuration, log *logrus.Logger) (ports.StorePort, func(context.Context) error, error) {
	client, err := mongodb.Connect(ctx, mongodb.ClientOptions{
		URI:         cfg.MongoURI,
		MaxPoolSize: cfg.MongoMaxPoolSize,
	}, log)
	if err != nil {
		return nil, nil, err
	}

	repo := mongodb.NewStoreRepository(
		mongodb.NewDatabase(client.Database(cfg.MongoDatabase)),
		mongodb.CollectionNames{
			Orders:    cfg.MongoCollectionOrders,
			Customers: cfg.MongoCollectionCustomers,
			Products:  cfg.MongoCollectionProducts,
		},
	)

	closeFn := func(ctx context.Context) error {
		return mongodb.Disconnect(ctx, client, log)
	}
	return repo, closeFn, nil
}

func openPostgres(ctx context.Context, cfg *config.Configuration, log *logrus.Logger) (ports.StorePort, func(context.Context) error, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	log.Info("connected to postgres")

	repo := postgres.NewStoreRepository(postgres.NewSQLDB(db), postgres.TableNames{
		Orders:    cfg.PostgresTableOrders,
		Customers: cfg.PostgresTableCustomers,
		Products:  cfg.PostgresTableProducts,
	})

	closeFn := func(context.Context) error {
		return db.Close()
	}
	return repo, closeFn, nil
}
