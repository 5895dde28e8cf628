package storage

import "context"

// BindingStorage хранит привязки внешнего владельца (например, id в мессенджере)
// к игровому аккаунту. Слой не шифрует данные сам: UserID уже зашифрован.
type BindingStorage interface {
	// SaveBinding создает или заменяет привязку владельца
	SaveBinding(ctx context.Context, binding *Binding) error

	// GetBinding returns ErrBindingNotFound if the owner has no binding
	GetBinding(ctx context.Context, owner string) (*Binding, error)

	// DeleteBinding returns ErrBindingNotFound if the owner has no binding
	DeleteBinding(ctx context.Context, owner string) error

	// ListOwners возвращает всех владельцев в лексикографическом порядке
	ListOwners(ctx context.Context) ([]string, error)
}

// Binding represents a stored owner → account link.
// SealedUserID is AES-GCM ciphertext; Salt is the Argon2 salt of its key.
type Binding struct {
	Owner        string `json:"owner"`
	Salt         []byte `json:"salt"`
	SealedUserID []byte `json:"sealed_user_id"`
	UpdatedAt    int64  `json:"updated_at"`
}

// Store объединяет все хранилища клиента в одном бэкенде
type Store interface {
	RecoveryStorage
	BindingStorage
	Close() error
}
