package cli

import (
	"context"
	"fmt"
)

// RunPreview выводит публичную информацию об аккаунте
func (c *Cli) RunPreview(ctx context.Context) error {
	if err := c.requireAccount(); err != nil {
		return err
	}

	preview, err := c.account.Preview(ctx)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	c.io.Println("=== Account Preview ===")
	c.io.Printf("User ID:     %d\n", preview.UserID)
	c.io.Printf("Name:        %s\n", preview.UserName)
	c.io.Printf("Rating:      %d\n", preview.PlayerRating)
	c.io.Printf("Last login:  %s\n", preview.LastLoginDate)
	c.io.Printf("Last play:   %s\n", preview.LastPlayDate)

	if preview.IsLogin {
		c.io.Println("⚠️  Account is logged in. Run 'sdgb logout' if the session was left open.")
	} else {
		c.io.Println("✓ Account is not logged in")
	}
	if preview.BanState != 0 {
		c.io.Printf("⚠️  Ban state: %d\n", preview.BanState)
	}

	return nil
}
