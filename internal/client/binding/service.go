// Package binding связывает внешнего владельца (id пользователя в мессенджере
// или другом фронтенде) с игровым аккаунтом. Игровой userId хранится
// зашифрованным ключом, полученным из passphrase.
package binding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/iudanet/sdgb/internal/client/storage"
	"github.com/iudanet/sdgb/internal/crypto"
)

var (
	// ErrEmptyOwner - не указан владелец привязки
	ErrEmptyOwner = errors.New("owner cannot be empty")

	// ErrInvalidUserID - userId должен быть положительным
	ErrInvalidUserID = errors.New("user id must be positive")

	// ErrWrongPassphrase is returned when a binding cannot be decrypted
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted binding")
)

// Service управляет привязками владельцев к игровым аккаунтам
type Service struct {
	store      storage.BindingStorage
	passphrase string
	now        func() time.Time
}

// NewService создает сервис привязок. Passphrase используется для
// получения ключа шифрования каждой записи.
func NewService(store storage.BindingStorage, passphrase string) (*Service, error) {
	if passphrase == "" {
		return nil, errors.New("passphrase cannot be empty")
	}
	return &Service{
		store:      store,
		passphrase: passphrase,
		now:        time.Now,
	}, nil
}

// Bind создает или заменяет привязку owner → userID.
// Для каждой записи генерируется новая соль.
func (s *Service) Bind(ctx context.Context, owner string, userID int64) error {
	if owner == "" {
		return ErrEmptyOwner
	}
	if userID <= 0 {
		return ErrInvalidUserID
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}
	key, err := crypto.DeriveKey(s.passphrase, salt)
	if err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}

	// шифротекст привязан к owner через additional data
	sealed, err := crypto.Seal([]byte(strconv.FormatInt(userID, 10)), key, []byte(owner))
	if err != nil {
		return fmt.Errorf("failed to encrypt user id: %w", err)
	}

	b := &storage.Binding{
		Owner:        owner,
		Salt:         salt,
		SealedUserID: sealed,
		UpdatedAt:    s.now().Unix(),
	}
	if err := s.store.SaveBinding(ctx, b); err != nil {
		return fmt.Errorf("failed to save binding: %w", err)
	}

	slog.Info("account bound", "owner", owner)
	return nil
}

// Resolve возвращает игровой userId владельца
func (s *Service) Resolve(ctx context.Context, owner string) (int64, error) {
	if owner == "" {
		return 0, ErrEmptyOwner
	}

	b, err := s.store.GetBinding(ctx, owner)
	if err != nil {
		return 0, err
	}

	key, err := crypto.DeriveKey(s.passphrase, b.Salt)
	if err != nil {
		return 0, fmt.Errorf("failed to derive key: %w", err)
	}

	plain, err := crypto.Open(b.SealedUserID, key, []byte(owner))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}

	userID, err := strconv.ParseInt(string(plain), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed user id", ErrWrongPassphrase)
	}
	return userID, nil
}

// Unbind удаляет привязку владельца
func (s *Service) Unbind(ctx context.Context, owner string) error {
	if owner == "" {
		return ErrEmptyOwner
	}
	if err := s.store.DeleteBinding(ctx, owner); err != nil {
		return err
	}
	slog.Info("account unbound", "owner", owner)
	return nil
}

// List returns all bound owners in lexical order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.store.ListOwners(ctx)
}
