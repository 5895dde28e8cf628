package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sdgb/internal/client/storage"
	"github.com/iudanet/sdgb/internal/client/storage/storagetest"
)

// setupTestStorage creates a file-backed database in a temp dir
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(context.Background(), filepath.Join(t.TempDir(), "sdgb.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestStorage_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return setupTestStorage(t)
	})
}

func TestNew_InMemory(t *testing.T) {
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	var count int
	err = s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('login_timestamps', 'bindings')`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "twice.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SaveLoginTimestamp(ctx, 7, 1700000000))
	require.NoError(t, s.Close())

	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	ts, err := s.GetLoginTimestamp(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), ts)
}

func TestGetBinding_BinarySaltRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.SaveBinding(ctx, &storage.Binding{
		Owner:        "tg:1",
		Salt:         []byte{0x00, 0xff},
		SealedUserID: []byte{0x01},
	}))

	got, err := s.GetBinding(ctx, "tg:1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, got.Salt)
}
