// Package redis хранит данные клиента в Redis; удобно, когда один аккаунт
// обслуживают несколько экземпляров бота.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/sdgb/internal/client/storage"
)

const (
	defaultPrefix = "sdgb"
	scanBatch     = 100
)

var _ storage.Store = (*Storage)(nil)

// Storage represents Redis storage implementation
type Storage struct {
	rdb    redis.UniversalClient
	prefix string
}

// Options описывает подключение к Redis
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // префикс ключей, по умолчанию "sdgb"
}

// New connects to Redis and checks the connection
func New(ctx context.Context, opts Options) (*Storage, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewWithClient(rdb, opts.Prefix), nil
}

// NewWithClient оборачивает уже созданный клиент
func NewWithClient(rdb redis.UniversalClient, prefix string) *Storage {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Storage{rdb: rdb, prefix: prefix}
}

// Close closes the redis client
func (s *Storage) Close() error {
	return s.rdb.Close()
}

func (s *Storage) loginKey(userID int64) string {
	return s.prefix + ":login:" + strconv.FormatInt(userID, 10)
}

func (s *Storage) bindingKey(owner string) string {
	return s.prefix + ":binding:" + owner
}

// SaveLoginTimestamp stores the login timestamp of the user
func (s *Storage) SaveLoginTimestamp(ctx context.Context, userID, timestamp int64) error {
	if err := s.rdb.Set(ctx, s.loginKey(userID), timestamp, 0).Err(); err != nil {
		return fmt.Errorf("failed to save login timestamp: %w", mapClosed(err))
	}
	return nil
}

// GetLoginTimestamp retrieves the last login timestamp of the user
func (s *Storage) GetLoginTimestamp(ctx context.Context, userID int64) (int64, error) {
	ts, err := s.rdb.Get(ctx, s.loginKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, storage.ErrTimestampNotFound
		}
		return 0, fmt.Errorf("failed to get login timestamp: %w", mapClosed(err))
	}
	return ts, nil
}

// SaveBinding stores or replaces the binding of an owner
func (s *Storage) SaveBinding(ctx context.Context, binding *storage.Binding) error {
	data, err := json.Marshal(binding)
	if err != nil {
		return fmt.Errorf("failed to marshal binding: %w", err)
	}

	if err := s.rdb.Set(ctx, s.bindingKey(binding.Owner), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save binding: %w", mapClosed(err))
	}
	return nil
}

// GetBinding retrieves the binding of an owner
func (s *Storage) GetBinding(ctx context.Context, owner string) (*storage.Binding, error) {
	data, err := s.rdb.Get(ctx, s.bindingKey(owner)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrBindingNotFound
		}
		return nil, fmt.Errorf("failed to get binding: %w", mapClosed(err))
	}

	binding := &storage.Binding{}
	if err := json.Unmarshal(data, binding); err != nil {
		return nil, fmt.Errorf("failed to unmarshal binding: %w", err)
	}
	return binding, nil
}

// DeleteBinding removes the binding of an owner
func (s *Storage) DeleteBinding(ctx context.Context, owner string) error {
	deleted, err := s.rdb.Del(ctx, s.bindingKey(owner)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete binding: %w", mapClosed(err))
	}
	if deleted == 0 {
		return storage.ErrBindingNotFound
	}
	return nil
}

// ListOwners returns owners of all bindings in lexicographic order
func (s *Storage) ListOwners(ctx context.Context) ([]string, error) {
	prefix := s.bindingKey("")

	var owners []string
	iter := s.rdb.Scan(ctx, 0, prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		owners = append(owners, iter.Val()[len(prefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan bindings: %w", mapClosed(err))
	}

	slices.Sort(owners)
	// SCAN может вернуть ключ повторно
	return slices.Compact(owners), nil
}

func mapClosed(err error) error {
	if errors.Is(err, redis.ErrClosed) {
		return fmt.Errorf("%w: %w", storage.ErrStorageClosed, err)
	}
	return err
}
