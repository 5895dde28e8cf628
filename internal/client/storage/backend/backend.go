// Package backend открывает хранилище клиента, выбранное в конфигурации.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/sdgb/internal/client/storage"
	"github.com/iudanet/sdgb/internal/client/storage/boltdb"
	"github.com/iudanet/sdgb/internal/client/storage/redis"
	"github.com/iudanet/sdgb/internal/client/storage/sqlite"
	"github.com/iudanet/sdgb/internal/config"
)

// Open возвращает хранилище для cfg.Backend
func Open(ctx context.Context, cfg config.Recovery) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)

	switch cfg.Backend {
	case config.BackendBolt:
		store, err = boltdb.New(ctx, cfg.Path)
	case config.BackendSQLite:
		store, err = sqlite.New(ctx, cfg.Path)
	case config.BackendRedis:
		store, err = redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Backend, err)
	}

	slog.Debug("storage opened", "backend", cfg.Backend)
	return store, nil
}
