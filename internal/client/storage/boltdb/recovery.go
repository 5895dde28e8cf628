package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/sdgb/internal/client/storage"
)

// userKey кодирует userID в big-endian, чтобы ключи сортировались по числу
func userKey(userID int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(userID))
	return key
}

// SaveLoginTimestamp stores the login timestamp of the user
func (s *Storage) SaveLoginTimestamp(_ context.Context, userID, timestamp int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketLogin)
		if err != nil {
			return err
		}

		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(timestamp))
		if err := b.Put(userKey(userID), value); err != nil {
			return fmt.Errorf("failed to save login timestamp: %w", err)
		}
		return nil
	})
}

// GetLoginTimestamp retrieves the last login timestamp of the user
func (s *Storage) GetLoginTimestamp(_ context.Context, userID int64) (int64, error) {
	var timestamp int64

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketLogin)
		if err != nil {
			return err
		}

		value := b.Get(userKey(userID))
		if value == nil {
			return storage.ErrTimestampNotFound
		}
		if len(value) != 8 {
			return fmt.Errorf("corrupted login timestamp for user %d", userID)
		}
		timestamp = int64(binary.BigEndian.Uint64(value))
		return nil
	})
	if err != nil {
		return 0, err
	}

	return timestamp, nil
}
