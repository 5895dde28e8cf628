package cli

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/iudanet/sdgb/internal/client/session"
	"github.com/iudanet/sdgb/internal/client/userall"
)

// withLogin выполняет fn внутри сессии. Выход выполняется всегда,
// ошибка выхода добавляется к ошибке fn.
func (c *Cli) withLogin(ctx context.Context, fn func() error) error {
	if err := c.requireAccount(); err != nil {
		return err
	}
	if _, err := c.account.Login(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	err := fn()
	return multierr.Append(err, c.logout(ctx))
}

// logout выполняет выход даже после отмены ctx, но не дольше session.CleanupTimeout
func (c *Cli) logout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), session.CleanupTimeout)
	defer cancel()
	return c.account.Logout(ctx, session.DefaultLogoutOptions())
}

// withDocument загружает документ аккаунта, применяет mutate и отправляет
// результат через Commit, который сам выполняет выход.
func (c *Cli) withDocument(ctx context.Context, mutate func(doc *userall.Document)) error {
	if err := c.requireAccount(); err != nil {
		return err
	}
	if _, err := c.account.Login(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	doc, err := c.account.FetchDocument(ctx)
	if err != nil {
		return multierr.Append(
			fmt.Errorf("failed to load account: %w", err),
			c.logout(ctx),
		)
	}

	mutate(doc)

	if err := c.account.Commit(ctx, c.maxAttempts); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	return nil
}
