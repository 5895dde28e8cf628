// Package storagetest содержит общий набор проверок для реализаций storage.Store.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sdgb/internal/client/storage"
)

// Run прогоняет контракт storage.Store на хранилище, созданном newStore.
// newStore должен возвращать пустое хранилище и сам регистрировать очистку.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Run("login timestamp not found", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetLoginTimestamp(context.Background(), 10086)
		assert.ErrorIs(t, err, storage.ErrTimestampNotFound)
	})

	t.Run("login timestamp overwrite", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.SaveLoginTimestamp(ctx, 10086, 1700000000))
		require.NoError(t, s.SaveLoginTimestamp(ctx, 10087, 1700000500))
		require.NoError(t, s.SaveLoginTimestamp(ctx, 10086, 1700000100))

		ts, err := s.GetLoginTimestamp(ctx, 10086)
		require.NoError(t, err)
		assert.Equal(t, int64(1700000100), ts)

		ts, err = s.GetLoginTimestamp(ctx, 10087)
		require.NoError(t, err)
		assert.Equal(t, int64(1700000500), ts)
	})

	t.Run("binding lifecycle", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		_, err := s.GetBinding(ctx, "qq:1001")
		assert.ErrorIs(t, err, storage.ErrBindingNotFound)

		binding := &storage.Binding{
			Owner:        "qq:1001",
			Salt:         []byte("0123456789abcdef"),
			SealedUserID: []byte{1, 2, 3, 4, 5},
			UpdatedAt:    1700000000,
		}
		require.NoError(t, s.SaveBinding(ctx, binding))

		got, err := s.GetBinding(ctx, "qq:1001")
		require.NoError(t, err)
		assert.Equal(t, binding, got)

		binding.SealedUserID = []byte{9, 9}
		binding.UpdatedAt = 1700000999
		require.NoError(t, s.SaveBinding(ctx, binding))

		got, err = s.GetBinding(ctx, "qq:1001")
		require.NoError(t, err)
		assert.Equal(t, []byte{9, 9}, got.SealedUserID)
		assert.Equal(t, int64(1700000999), got.UpdatedAt)

		require.NoError(t, s.DeleteBinding(ctx, "qq:1001"))
		_, err = s.GetBinding(ctx, "qq:1001")
		assert.ErrorIs(t, err, storage.ErrBindingNotFound)
		assert.ErrorIs(t, s.DeleteBinding(ctx, "qq:1001"), storage.ErrBindingNotFound)
	})

	t.Run("list owners", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		owners, err := s.ListOwners(ctx)
		require.NoError(t, err)
		assert.Empty(t, owners)

		for _, owner := range []string{"tg:3", "qq:2", "qq:1"} {
			require.NoError(t, s.SaveBinding(ctx, &storage.Binding{
				Owner:        owner,
				Salt:         []byte("salt"),
				SealedUserID: []byte("sealed"),
			}))
		}

		owners, err = s.ListOwners(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"qq:1", "qq:2", "tg:3"}, owners)
	})
}
