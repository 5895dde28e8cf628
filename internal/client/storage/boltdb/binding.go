package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/sdgb/internal/client/storage"
)

// SaveBinding stores or replaces the binding of an owner
func (s *Storage) SaveBinding(_ context.Context, binding *storage.Binding) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBindings)
		if err != nil {
			return err
		}

		// Сериализуем привязку в JSON
		data, err := json.Marshal(binding)
		if err != nil {
			return fmt.Errorf("failed to marshal binding: %w", err)
		}

		if err := b.Put([]byte(binding.Owner), data); err != nil {
			return fmt.Errorf("failed to save binding: %w", err)
		}
		return nil
	})
}

// GetBinding retrieves the binding of an owner
func (s *Storage) GetBinding(_ context.Context, owner string) (*storage.Binding, error) {
	var binding *storage.Binding

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBindings)
		if err != nil {
			return err
		}

		data := b.Get([]byte(owner))
		if data == nil {
			return storage.ErrBindingNotFound
		}

		binding = &storage.Binding{}
		if err := json.Unmarshal(data, binding); err != nil {
			return fmt.Errorf("failed to unmarshal binding: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return binding, nil
}

// DeleteBinding removes the binding of an owner
func (s *Storage) DeleteBinding(_ context.Context, owner string) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBindings)
		if err != nil {
			return err
		}

		if b.Get([]byte(owner)) == nil {
			return storage.ErrBindingNotFound
		}
		if err := b.Delete([]byte(owner)); err != nil {
			return fmt.Errorf("failed to delete binding: %w", err)
		}
		return nil
	})
}

// ListOwners returns owners of all bindings; bbolt keeps keys sorted
func (s *Storage) ListOwners(_ context.Context) ([]string, error) {
	var owners []string

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBindings)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, _ []byte) error {
			owners = append(owners, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return owners, nil
}
