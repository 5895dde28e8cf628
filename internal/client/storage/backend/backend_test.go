package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sdgb/internal/config"
)

func TestOpen_FileBackends(t *testing.T) {
	for _, backend := range []string{config.BackendBolt, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			store, err := Open(ctx, config.Recovery{
				Backend: backend,
				Path:    filepath.Join(t.TempDir(), "sdgb.db"),
			})
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.SaveLoginTimestamp(ctx, 10086, 1700000000))
			ts, err := store.GetLoginTimestamp(ctx, 10086)
			require.NoError(t, err)
			assert.Equal(t, int64(1700000000), ts)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.Recovery{Backend: "mongo"})
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestOpen_BoltInvalidPath(t *testing.T) {
	_, err := Open(context.Background(), config.Recovery{
		Backend: config.BackendBolt,
		Path:    t.TempDir(),
	})
	assert.Error(t, err)
}
