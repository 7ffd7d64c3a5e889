package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateforme/services-api/internal/domain/policy"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(rdb, time.Hour), mr
}

func TestStoreCreateGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	data := Data{
		UserID:    42,
		Username:  "alex",
		Email:     "a@x.com",
		Role:      policy.RoleProvider,
		ProfileID: 7,
		CSRF:      "csrf-token",
	}
	token, err := store.Create(ctx, data)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	actor := got.Actor()
	assert.Equal(t, policy.RoleProvider, actor.Role)
	assert.Equal(t, int64(7), actor.ProfileID)

	// session expires with the configured TTL
	ttl := mr.TTL("session:" + token)
	assert.Equal(t, time.Hour, ttl)
}

func TestStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, Data{UserID: 1, Role: policy.RoleAdmin})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting twice is a no-op
	assert.NoError(t, store.Delete(ctx, token))
}
