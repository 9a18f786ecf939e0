package db

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"storefront-voting/model"
)

var _ CounterStore = (*RedisStore)(nil)

// RedisStore keeps each table as one hash: field = postal code, value = count.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Increment(ctx context.Context, table string, postalCode model.PostalCode) (int64, error) {
	n, err := s.client.HIncrBy(ctx, table, postalCode.String(), 1).Result()
	if err != nil {
		return 0, fmt.Errorf("redis hincrby %s: %w", table, err)
	}
	return n, nil
}

// Scan returns records ordered by postal code; hash order is not stable.
func (s *RedisStore) Scan(ctx context.Context, table string) ([]model.PostalCodeRecord, error) {
	fields, err := s.client.HGetAll(ctx, table).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s: %w", table, err)
	}

	records := make([]model.PostalCodeRecord, 0, len(fields))
	for postalCode, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("redis %s field %s: %w", table, postalCode, err)
		}
		records = append(records, model.PostalCodeRecord{PostalCode: model.PostalCode(postalCode), VisitCount: n})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].PostalCode < records[j].PostalCode })
	return records, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
