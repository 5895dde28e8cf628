// Package cli содержит логику команд sdgb поверх абстракции iocli.IO.
package cli

import (
	"context"
	"errors"

	"github.com/iudanet/sdgb/internal/client/binding"
	"github.com/iudanet/sdgb/internal/client/iocli"
	"github.com/iudanet/sdgb/internal/client/session"
	"github.com/iudanet/sdgb/internal/client/userall"
	"github.com/iudanet/sdgb/internal/delivery"
	"github.com/iudanet/sdgb/pkg/api"
)

//go:generate moq -out account_mock.go . Account UpdateSource

// Account - операции сессии одного игрового аккаунта
type Account interface {
	Login(ctx context.Context) (*api.UserLoginResponse, error)
	Logout(ctx context.Context, opts session.LogoutOptions) error
	Preview(ctx context.Context) (*api.UserPreviewResponse, error)
	FetchDocument(ctx context.Context) (*userall.Document, error)
	ActiveTickets(ctx context.Context) (*api.UserChargeResponse, error)
	Ticket(ctx context.Context, chargeID, price int) error
	Commit(ctx context.Context, maxAttempts int) error
}

// Binder - хранилище привязок владельцев к аккаунтам
type Binder interface {
	Bind(ctx context.Context, owner string, userID int64) error
	Resolve(ctx context.Context, owner string) (int64, error)
	Unbind(ctx context.Context, owner string) error
	List(ctx context.Context) ([]string, error)
}

// UpdateSource возвращает описания обновлений игры
type UpdateSource interface {
	Updates(ctx context.Context, titleVer string) ([]*delivery.UpdateInfo, error)
}

var (
	_ Account      = (*session.Session)(nil)
	_ Binder       = (*binding.Service)(nil)
	_ UpdateSource = (*delivery.Client)(nil)
)

// ErrNotConfigured is returned when a command needs a dependency the Cli was built without.
var ErrNotConfigured = errors.New("command dependency is not configured")

// Cli выполняет команды. Любая зависимость может быть nil, если
// соответствующие команды не используются.
type Cli struct {
	io          iocli.IO
	account     Account
	binder      Binder
	updates     UpdateSource
	maxAttempts int
}

// Option настраивает Cli
type Option func(*Cli)

// WithAccount задает сессию аккаунта
func WithAccount(account Account) Option {
	return func(c *Cli) {
		c.account = account
	}
}

// WithBinder задает сервис привязок
func WithBinder(binder Binder) Option {
	return func(c *Cli) {
		c.binder = binder
	}
}

// WithUpdates задает источник обновлений
func WithUpdates(updates UpdateSource) Option {
	return func(c *Cli) {
		c.updates = updates
	}
}

// WithMaxAttempts задает число попыток загрузки при Commit
func WithMaxAttempts(n int) Option {
	return func(c *Cli) {
		c.maxAttempts = n
	}
}

func New(io iocli.IO, opts ...Option) *Cli {
	c := &Cli{
		io:          io,
		maxAttempts: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cli) requireAccount() error {
	if c.account == nil {
		return errors.New("account session is not configured: pass --user-id or --owner")
	}
	return nil
}
