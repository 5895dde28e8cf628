package storage

import "context"

//go:generate moq -out recovery_mock.go . RecoveryStorage

// RecoveryStorage хранит timestamp последнего логина по каждому пользователю.
// Запись выполняется до UserLoginApi, чтобы после падения процесса можно было
// выполнить UserLogoutApi с тем же dateTime.
type RecoveryStorage interface {
	// SaveLoginTimestamp перезаписывает timestamp пользователя (unix seconds)
	SaveLoginTimestamp(ctx context.Context, userID, timestamp int64) error

	// GetLoginTimestamp возвращает последний сохраненный timestamp.
	// Returns ErrTimestampNotFound if nothing was saved for userID.
	GetLoginTimestamp(ctx context.Context, userID int64) (int64, error)
}
