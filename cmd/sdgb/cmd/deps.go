package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"

	apiclient "github.com/iudanet/sdgb/internal/client/api"
	"github.com/iudanet/sdgb/internal/client/binding"
	"github.com/iudanet/sdgb/internal/client/cli"
	"github.com/iudanet/sdgb/internal/client/iocli"
	"github.com/iudanet/sdgb/internal/client/session"
	"github.com/iudanet/sdgb/internal/client/storage"
	"github.com/iudanet/sdgb/internal/client/storage/backend"
	"github.com/iudanet/sdgb/internal/validation"
)

// PassphraseEnv - переменная окружения с passphrase хранилища привязок
const PassphraseEnv = "SDGB_PASSPHRASE"

// env собирает зависимости одной команды
type env struct {
	io    iocli.IO
	store storage.Store
}

func openEnv(ctx context.Context) (*env, error) {
	store, err := backend.Open(ctx, cfg.Recovery)
	if err != nil {
		return nil, err
	}
	return &env{io: iocli.NewStdio(), store: store}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

// passphrase берется из окружения, иначе запрашивается без эха
func (e *env) passphrase() (string, error) {
	pass := os.Getenv(PassphraseEnv)
	if pass == "" {
		var err error
		pass, err = e.io.ReadPassword("Passphrase: ")
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase: %w", err)
		}
	}
	if err := validation.ValidatePassphrase(pass); err != nil {
		return "", err
	}
	return pass, nil
}

func (e *env) binder() (*binding.Service, error) {
	pass, err := e.passphrase()
	if err != nil {
		return nil, err
	}
	return binding.NewService(e.store, pass)
}

// userID берется из --user-id или из привязки --owner
func (e *env) userID(ctx context.Context) (int64, error) {
	switch {
	case userIDFlag != "":
		return validation.ParseUserID(userIDFlag)
	case ownerFlag != "":
		b, err := e.binder()
		if err != nil {
			return 0, err
		}
		return b.Resolve(ctx, ownerFlag)
	default:
		return 0, errors.New("either --user-id or --owner is required")
	}
}

func (e *env) account(ctx context.Context) (*session.Session, error) {
	userID, err := e.userID(ctx)
	if err != nil {
		return nil, err
	}

	client, err := apiclient.NewClient(cfg.API())
	if err != nil {
		return nil, err
	}
	return session.New(client, e.store, cfg.Session(userID))
}

// runWithAccount открывает хранилище и сессию и выполняет fn над Cli
func runWithAccount(ctx context.Context, fn func(c *cli.Cli) error) (err error) {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, e.Close())
	}()

	account, err := e.account(ctx)
	if err != nil {
		return err
	}

	return fn(cli.New(e.io, cli.WithAccount(account), cli.WithMaxAttempts(cfg.Server.MaxAttempts)))
}

// runWithBinder открывает хранилище и сервис привязок
func runWithBinder(ctx context.Context, fn func(c *cli.Cli) error) (err error) {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, e.Close())
	}()

	b, err := e.binder()
	if err != nil {
		return err
	}

	return fn(cli.New(e.io, cli.WithBinder(b)))
}
