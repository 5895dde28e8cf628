package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/sdgb/internal/client/storage"
)

// SaveBinding stores or replaces the binding of an owner
func (s *Storage) SaveBinding(ctx context.Context, binding *storage.Binding) error {
	query := `
		INSERT INTO bindings (owner, salt, sealed_user_id, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(owner) DO UPDATE SET
			salt = excluded.salt,
			sealed_user_id = excluded.sealed_user_id,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		binding.Owner,
		binding.Salt,
		binding.SealedUserID,
		binding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save binding: %w", err)
	}

	return nil
}

// GetBinding retrieves the binding of an owner
func (s *Storage) GetBinding(ctx context.Context, owner string) (*storage.Binding, error) {
	query := `
		SELECT owner, salt, sealed_user_id, updated_at
		FROM bindings
		WHERE owner = ?
	`

	binding := &storage.Binding{}
	err := s.db.QueryRowContext(ctx, query, owner).Scan(
		&binding.Owner,
		&binding.Salt,
		&binding.SealedUserID,
		&binding.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBindingNotFound
		}
		return nil, fmt.Errorf("failed to get binding: %w", err)
	}

	return binding, nil
}

// DeleteBinding removes the binding of an owner
func (s *Storage) DeleteBinding(ctx context.Context, owner string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bindings WHERE owner = ?`, owner)
	if err != nil {
		return fmt.Errorf("failed to delete binding: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrBindingNotFound
	}

	return nil
}

// ListOwners returns owners of all bindings in lexicographic order
func (s *Storage) ListOwners(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT owner FROM bindings ORDER BY owner`)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var owners []string
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return owners, nil
}
