package cli

import (
	"context"
	"fmt"
)

// RunUpdates выводит доступные обновления игры версии titleVer
func (c *Cli) RunUpdates(ctx context.Context, titleVer string) error {
	if c.updates == nil {
		return fmt.Errorf("updates: %w", ErrNotConfigured)
	}

	updates, err := c.updates.Updates(ctx, titleVer)
	if err != nil {
		return fmt.Errorf("failed to get updates: %w", err)
	}

	c.io.Printf("=== Updates for %s ===\n", titleVer)
	if len(updates) == 0 {
		c.io.Println("No updates found.")
		return nil
	}

	for _, u := range updates {
		c.io.Println()
		c.io.Printf("[%s] %s\n", u.Kind, u.Title)
		c.io.Printf("Package:  %s %s\n", u.Install.Name, u.Install.URL)
		c.io.Printf("Release:  %s\n", u.ReleaseTime)
		if len(u.Optional) > 0 {
			c.io.Println("Previous packages:")
			for _, p := range u.Optional {
				c.io.Printf("  %s %s\n", p.Name, p.URL)
			}
		}
	}
	return nil
}
