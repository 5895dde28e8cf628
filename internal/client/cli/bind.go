package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/sdgb/internal/validation"
)

func (c *Cli) requireBinder() error {
	if c.binder == nil {
		return fmt.Errorf("bindings: %w", ErrNotConfigured)
	}
	return nil
}

// RunBind связывает владельца с игровым аккаунтом
func (c *Cli) RunBind(ctx context.Context, owner string, userID int64) error {
	if err := c.requireBinder(); err != nil {
		return err
	}
	if err := validation.ValidateOwner(owner); err != nil {
		return err
	}

	if err := c.binder.Bind(ctx, owner, userID); err != nil {
		return fmt.Errorf("bind failed: %w", err)
	}

	c.io.Printf("✓ %s is bound to account %d\n", owner, userID)
	return nil
}

// RunUnbind удаляет привязку владельца
func (c *Cli) RunUnbind(ctx context.Context, owner string) error {
	if err := c.requireBinder(); err != nil {
		return err
	}

	if err := c.binder.Unbind(ctx, owner); err != nil {
		return fmt.Errorf("unbind failed: %w", err)
	}

	c.io.Printf("✓ Binding of %s removed\n", owner)
	return nil
}

// RunBindings выводит владельцев с привязками
func (c *Cli) RunBindings(ctx context.Context) error {
	if err := c.requireBinder(); err != nil {
		return err
	}

	owners, err := c.binder.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list bindings: %w", err)
	}

	c.io.Println("=== Bindings ===")
	if len(owners) == 0 {
		c.io.Println("No bindings found.")
		return nil
	}
	for _, owner := range owners {
		c.io.Println(owner)
	}
	c.io.Printf("\nTotal: %d binding(s)\n", len(owners))
	return nil
}

// ResolveOwner возвращает userId владельца для построения сессии
func (c *Cli) ResolveOwner(ctx context.Context, owner string) (int64, error) {
	if err := c.requireBinder(); err != nil {
		return 0, err
	}
	userID, err := c.binder.Resolve(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve %s: %w", owner, err)
	}
	return userID, nil
}
