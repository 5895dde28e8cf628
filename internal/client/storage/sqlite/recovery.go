package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/sdgb/internal/client/storage"
)

// SaveLoginTimestamp stores the login timestamp of the user
func (s *Storage) SaveLoginTimestamp(ctx context.Context, userID, timestamp int64) error {
	query := `
		INSERT INTO login_timestamps (user_id, timestamp, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			timestamp = excluded.timestamp,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, userID, timestamp, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save login timestamp: %w", err)
	}

	return nil
}

// GetLoginTimestamp retrieves the last login timestamp of the user
func (s *Storage) GetLoginTimestamp(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT timestamp FROM login_timestamps WHERE user_id = ?`

	var timestamp int64
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrTimestampNotFound
		}
		return 0, fmt.Errorf("failed to get login timestamp: %w", err)
	}

	return timestamp, nil
}
