package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sdgb/internal/client/storage"
	"github.com/iudanet/sdgb/internal/client/storage/storagetest"
)

// newTestStorage подключается к REDIS_ADDR; каждый тест получает свой префикс ключей
func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	prefix := "sdgb-test-" + uuid.NewString()
	s, err := New(context.Background(), Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		Prefix:   prefix,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		iter := s.rdb.Scan(ctx, 0, prefix+":*", 100).Iterator()
		for iter.Next(ctx) {
			_ = s.rdb.Del(ctx, iter.Val()).Err()
		}
		_ = s.Close()
	})
	return s
}

func TestStorage_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStorage(t)
	})
}

func TestNew_Unreachable(t *testing.T) {
	_, err := New(context.Background(), Options{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	s := NewWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), "")
	defer func() {
		_ = s.Close()
	}()

	assert.Equal(t, "sdgb:login:10086", s.loginKey(10086))
	assert.Equal(t, "sdgb:binding:qq:1", s.bindingKey("qq:1"))
}

func TestClosedClient(t *testing.T) {
	s := NewWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), "x")
	require.NoError(t, s.Close())

	err := s.SaveLoginTimestamp(context.Background(), 1, 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
