package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Configuration holds everything the API process needs at startup.
type Configuration struct {
	Address         string        `env:"ADDRESS" envDefault:":8080" validate:"required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	CORSOrigins     string        `env:"CORS_ORIGINS" envDefault:"http://localhost:4200"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo" validate:"oneof=mongo postgres"`

	MongoURI                 string `env:"MONGODB_CONNECTION_URI" validate:"required_if=StoreDriver mongo"`
	MongoDatabase            string `env:"MONGODB_DATABASE" validate:"required_if=StoreDriver mongo"`
	MongoCollectionOrders    string `env:"MONGODB_COLLECTION_ORDERS" envDefault:"shopifyOrders"`
	MongoCollectionCustomers string `env:"MONGODB_COLLECTION_CUSTOMERS" envDefault:"shopifyCustomers"`
	MongoCollectionProducts  string `env:"MONGODB_COLLECTION_PRODUCTS" envDefault:"shopifyProducts"`
	MongoMaxPoolSize         uint64 `env:"MONGODB_MAX_POOL_SIZE" envDefault:"20"`

	PostgresDSN            string `env:"POSTGRES_DSN" validate:"required_if=StoreDriver postgres"`
	PostgresTableOrders    string `env:"POSTGRES_TABLE_ORDERS" envDefault:"shopify_orders"`
	PostgresTableCustomers string `env:"POSTGRES_TABLE_CUSTOMERS" envDefault:"shopify_customers"`
	PostgresTableProducts  string `env:"POSTGRES_TABLE_PRODUCTS" envDefault:"shopify_products"`

	// Buckets for sales and repeat customers are computed in this zone.
	BucketTimezone string `env:"BUCKET_TIMEZONE" envDefault:"UTC" validate:"timezone"`
	CohortYears    []int  `env:"COHORT_YEARS" envDefault:"2020,2021" validate:"min=1,dive,gte=1970"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`
	LogFile   string `env:"LOG_FILE"`
}

// Load reads envFile (if not empty) into the environment, then parses and
// validates the configuration. Variables already set in the environment win.
func Load(envFile string) (*Configuration, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var cfg Configuration
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Location returns the bucket time zone.
func (c *Configuration) Location() (*time.Location, error) {
	return time.LoadLocation(c.BucketTimezone)
}
