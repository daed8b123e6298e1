package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/tmsim/pkg/adapters/redis"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.ResultStore = (*redis.Store)(nil)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	ports.RunResultStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	rec := &domain.Record{ID: "exp_2_5", Result: domain.Result{Operation: domain.OpExponent, X: 2, Y: 5, Value: 32}}

	require.NoError(t, store.Save(ctx, rec))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "exp_2_5")

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "exp_2_5")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Record{ID: "add_3_5"}))

	assert.True(t, mr.Exists("custom:app:add_3_5"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"add_3_5"}, ids)
}

func TestRedisStore_DeleteError(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Record{ID: "add_3_5"}))

	mr.SetError("ERR backend unavailable")
	err := store.Delete(ctx, "add_3_5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete record add_3_5")
	assert.Contains(t, err.Error(), "backend unavailable")

	mr.SetError("")
	require.NoError(t, store.Delete(ctx, "add_3_5"))
	_, err = store.Load(ctx, "add_3_5")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
