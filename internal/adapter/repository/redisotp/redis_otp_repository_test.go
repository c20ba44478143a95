package redisotp

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocart/internal/domain/entity"
	apperrors "nanocart/pkg/errors"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *mockStore) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := value.([]byte); ok {
		m.data[key] = string(b)
	} else {
		m.data[key] = fmt.Sprint(value)
	}
	if ttl != redis.KeepTTL {
		m.ttls[key] = ttl
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *mockStore) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (m *mockStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			n++
		}
		delete(m.data, k)
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisOTPLifecycle(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	store := newMockStore()
	repo := &redisOTPRepository{store: store, now: func() time.Time { return now }}
	ctx := context.Background()

	_, err := repo.Get(ctx, "9876543210")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))

	otp := &entity.PhoneOTP{PhoneNumber: "9876543210", OTP: "123456", ExpiresAt: now.Add(5 * time.Minute)}
	require.NoError(t, repo.Upsert(ctx, otp))
	assert.Equal(t, 5*time.Minute+retention, store.ttls[key("9876543210")])

	require.NoError(t, repo.MarkVerified(ctx, "9876543210"))
	got, err := repo.Get(ctx, "9876543210")
	require.NoError(t, err)
	assert.True(t, got.IsVerified)
	assert.Equal(t, "123456", got.OTP)
	assert.True(t, got.ExpiresAt.Equal(otp.ExpiresAt))
	assert.Equal(t, 5*time.Minute+retention, store.ttls[key("9876543210")], "verification keeps the ttl")

	require.NoError(t, repo.Delete(ctx, "9876543210"))
	_, err = repo.Get(ctx, "9876543210")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestExpiredCodeOutlivesItsExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	store := newMockStore()
	repo := &redisOTPRepository{store: store, now: func() time.Time { return now }}

	otp := &entity.PhoneOTP{PhoneNumber: "1", OTP: "000000", ExpiresAt: now.Add(-time.Minute)}
	require.NoError(t, repo.Upsert(context.Background(), otp))
	assert.Equal(t, retention, store.ttls[key("1")])

	got, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, got.Expired(now))
}
