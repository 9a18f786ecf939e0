package db

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-voting/config"
	"storefront-voting/model"
)

func newTestRedisStore(t *testing.T) (CounterStore, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	store, err := NewStore(config.Configuration{STORE_DRIVER: "redis", REDIS_ADDR: server.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, server
}

func TestRedisStore_ConcurrentIncrements(t *testing.T) {
	store, server := newTestRedisStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	counts := make([]int64, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counts[i], errs[i] = store.Increment(ctx, "votes", "90210")
		}(i)
	}
	wg.Wait()
	_, err := store.Increment(ctx, "votes", "B")
	require.NoError(t, err)

	seen := make(map[int64]bool, n)
	for i := range counts {
		require.NoError(t, errs[i])
		assert.False(t, seen[counts[i]], "visit count %d returned twice", counts[i])
		seen[counts[i]] = true
	}
	assert.Equal(t, "50", server.HGet("votes", "90210"))

	records, err := store.Scan(ctx, "votes")
	require.NoError(t, err)
	assert.Equal(t, []model.PostalCodeRecord{
		{PostalCode: "90210", VisitCount: n},
		{PostalCode: "B", VisitCount: 1},
	}, records)
}

func TestRedisStore_ScanEmptyTable(t *testing.T) {
	store, _ := newTestRedisStore(t)

	records, err := store.Scan(context.Background(), "votes")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRedisStore_ScanRejectsNonNumericCount(t *testing.T) {
	store, server := newTestRedisStore(t)
	server.HSet("votes", "90210", "many")

	_, err := store.Scan(context.Background(), "votes")

	assert.Error(t, err)
}

func TestRedisStore_IncrementFailsWhenServerDown(t *testing.T) {
	store, server := newTestRedisStore(t)
	server.Close()

	_, err := store.Increment(context.Background(), "votes", "90210")

	assert.Error(t, err)
}
