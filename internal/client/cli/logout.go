package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/sdgb/internal/client/session"
)

// RunLogout закрывает сессию аккаунта. timestamp 0 - взять сохраненный при входе.
func (c *Cli) RunLogout(ctx context.Context, timestamp int64) error {
	if err := c.requireAccount(); err != nil {
		return err
	}

	c.io.Println("=== Logout ===")

	opts := session.DefaultLogoutOptions()
	opts.Timestamp = timestamp
	if err := c.account.Logout(ctx, opts); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	return nil
}
