package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"storefront-voting/config"
	"storefront-voting/constant"
	"storefront-voting/model"
)

// CounterStore is the postal code counting table. Increment must be a single
// atomic upsert on the backend, never a local read-modify-write.
type CounterStore interface {
	Increment(ctx context.Context, table string, postalCode model.PostalCode) (int64, error)
	Scan(ctx context.Context, table string) ([]model.PostalCodeRecord, error)
	Close() error
}

// NewStore builds the backend named by STORE_DRIVER.
func NewStore(configuration config.Configuration) (CounterStore, error) {
	switch configuration.STORE_DRIVER {
	case constant.STORE_DYNAMODB:
		client, err := NewDynamoClient(configuration)
		if err != nil {
			return nil, err
		}
		return NewDynamoStore(client), nil
	case constant.STORE_MYSQL:
		store, err := OpenMySQL(configuration)
		if err != nil {
			return nil, err
		}
		if configuration.DYNAMODB_TABLE != "" {
			if err := store.Migrate(configuration.DYNAMODB_TABLE); err != nil {
				store.Close()
				return nil, err
			}
		}
		return store, nil
	case constant.STORE_REDIS:
		if configuration.REDIS_ADDR == "" {
			return nil, fmt.Errorf("REDIS_ADDR environment variable not set")
		}
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{configuration.REDIS_ADDR},
		})
		return NewRedisStore(client), nil
	case constant.STORE_MEMORY:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", configuration.STORE_DRIVER)
	}
}
