package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sdgb/internal/client/binding"
	"github.com/iudanet/sdgb/internal/client/storage"
	"github.com/iudanet/sdgb/internal/client/storage/boltdb"
)

func newBinder(t *testing.T) *binding.Service {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc, err := binding.NewService(store, "correct horse")
	require.NoError(t, err)
	return svc
}

func TestCli_Bindings(t *testing.T) {
	ctx := context.Background()
	out := newCaptureIO()
	c := New(out, WithBinder(newBinder(t)))

	require.NoError(t, c.RunBind(ctx, "tg:42", 10086))
	assert.Contains(t, out.String(), "tg:42 is bound to account 10086")

	userID, err := c.ResolveOwner(ctx, "tg:42")
	require.NoError(t, err)
	assert.Equal(t, int64(10086), userID)

	require.NoError(t, c.RunBindings(ctx))
	assert.Contains(t, out.String(), "Total: 1 binding(s)")

	require.NoError(t, c.RunUnbind(ctx, "tg:42"))

	_, err = c.ResolveOwner(ctx, "tg:42")
	assert.ErrorIs(t, err, storage.ErrBindingNotFound)

	require.NoError(t, c.RunBindings(ctx))
	assert.Contains(t, out.String(), "No bindings found.")
}

func TestCli_BindValidation(t *testing.T) {
	ctx := context.Background()
	c := New(newCaptureIO(), WithBinder(newBinder(t)))

	assert.Error(t, c.RunBind(ctx, "bad owner", 10086))
	assert.ErrorIs(t, c.RunBind(ctx, "tg:1", 0), binding.ErrInvalidUserID)
}

func TestCli_BindingsNotConfigured(t *testing.T) {
	ctx := context.Background()
	c := New(newCaptureIO())

	assert.ErrorIs(t, c.RunBind(ctx, "tg:1", 1), ErrNotConfigured)
	assert.ErrorIs(t, c.RunUnbind(ctx, "tg:1"), ErrNotConfigured)
	assert.ErrorIs(t, c.RunBindings(ctx), ErrNotConfigured)

	_, err := c.ResolveOwner(ctx, "tg:1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
